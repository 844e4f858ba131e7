package merchant

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/validation"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/slug"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/storage"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

const maxImageBytes = 5 << 20

// Products lists the merchant's catalog.
func (h *Handler) Products(c *gin.Context) {
	pages := pagesParam(c)

	list := fetch.NewPagedList(fetch.Filter{Limit: 20}, func(ctx context.Context, f fetch.Filter) (fetch.Page[api.Product], error) {
		items, pg, err := h.client(c).ListMerchantProducts(ctx, api.ListOptions{Page: f.Page, Limit: f.Limit})
		if err != nil {
			return fetch.Page[api.Product]{}, err
		}
		return fetch.Page[api.Product]{Items: items, HasMore: pg.HasMore}, nil
	})
	ctx := c.Request.Context()
	list.Load(ctx)
	for i := 1; i < pages && list.HasMore(); i++ {
		list.LoadMore(ctx)
	}

	rows := make([]view.MerchantProductRow, 0, len(list.Items()))
	for _, p := range list.Items() {
		rows = append(rows, view.MerchantProductRow{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    view.MoneyFromCents(p.PriceCents, p.Currency),
			StockQty: p.StockQty,
			Status:   p.Status,
		})
	}

	render.Page(c, http.StatusOK, "merchant_products", gin.H{
		"Title": "Products",
		"Page": view.MerchantProductsPage{
			Items:   rows,
			Page:    pages,
			HasMore: list.HasMore(),
			Error:   list.ErrMessage(),
		},
	})
}

type productInput struct {
	Name        string `form:"name" binding:"required,min=2,max=150"`
	Slug        string `form:"slug" binding:"omitempty,max=150"`
	Description string `form:"description" binding:"omitempty,max=5000"`
	Category    string `form:"category" binding:"required,min=2,max=60"`
	Price       string `form:"price" binding:"required"`
	StockQty    int    `form:"stock_qty" binding:"gte=0"`
	Status      string `form:"status" binding:"required,oneof=active draft archived"`
}

func (h *Handler) NewProduct(c *gin.Context) {
	h.renderProductForm(c, http.StatusOK, view.ProductForm{Status: "draft"}, nil, "")
}

func (h *Handler) EditProduct(c *gin.Context) {
	res := fetch.NewResource(func(ctx context.Context, key string) (api.Product, error) {
		return h.client(c).GetProductByID(ctx, key)
	})
	res.Load(c.Request.Context(), c.Param("id"))

	p, ok := res.Get()
	if !ok {
		middleware.Fail(c, res.Err())
		return
	}

	form := view.ProductForm{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
		Price:       centsToMajor(p.PriceCents),
		StockQty:    p.StockQty,
		Status:      p.Status,
	}
	if len(p.Images) > 0 {
		form.ImageURL = p.Images[0].URL
	}
	h.renderProductForm(c, http.StatusOK, form, nil, "")
}

// SaveProduct handles both create (no id) and update (id in the route).
// An attached image is stored first; only its public URL travels to the
// backend with the product payload.
func (h *Handler) SaveProduct(c *gin.Context) {
	id := c.Param("id")

	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderProductForm(c, http.StatusBadRequest, formFromInput(id, in), validation.FromBindError(err, &in), "")
		return
	}

	cents, err := parsePriceCents(in.Price)
	if err != nil {
		h.renderProductForm(c, http.StatusBadRequest, formFromInput(id, in),
			validation.FieldErrors{"price": "Enter a price like 1500 or 1500.50."}, "")
		return
	}

	img, err := h.storeImage(c)
	if err != nil {
		h.renderProductForm(c, http.StatusBadRequest, formFromInput(id, in),
			validation.FieldErrors{"image": err.Error()}, "")
		return
	}

	slugVal := strings.TrimSpace(in.Slug)
	if slugVal == "" {
		slugVal = slug.FromName(in.Name)
	}

	payload := api.ProductInput{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugVal,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		PriceCents:  cents,
		StockQty:    in.StockQty,
		Status:      in.Status,
	}
	if img.URL != "" {
		payload.ImageURLs = []string{img.URL}
	}

	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		if id == "" {
			_, err = h.client(c).CreateProduct(ctx, payload)
		} else {
			_, err = h.client(c).UpdateProduct(ctx, id, payload)
		}
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		// The save failed; don't leave the fresh upload orphaned.
		if img.Key != "" {
			_ = h.Uploads.Delete(c.Request.Context(), img.Key)
		}
		h.renderProductForm(c, http.StatusBadRequest, formFromInput(id, in), nil, mut.ErrMessage())
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/merchant/products", view.FlashSuccess, "Product saved.")
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/merchant/products", view.FlashError, "Product not found.")
		return
	}

	mut := fetch.NewMutation(func(ctx context.Context) error {
		return h.client(c).DeleteProduct(ctx, id)
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/merchant/products", view.FlashError, mut.ErrMessage())
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/merchant/products", view.FlashSuccess, "Product deleted.")
}

// storeImage saves an optional uploaded image and returns where it landed,
// or a zero result when no file was attached.
func (h *Handler) storeImage(c *gin.Context) (storage.PutResult, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return storage.PutResult{}, nil // no file field
	}
	if fh.Size > maxImageBytes {
		return storage.PutResult{}, fmt.Errorf("Image is too large (max 5 MB).")
	}

	f, err := fh.Open()
	if err != nil {
		return storage.PutResult{}, fmt.Errorf("Could not read the uploaded image.")
	}
	defer f.Close()

	res, err := h.Uploads.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if errors.Is(err, storage.ErrUnsupportedType) {
		return storage.PutResult{}, fmt.Errorf("Images must be PNG, JPEG, WebP or GIF.")
	}
	if err != nil {
		return storage.PutResult{}, fmt.Errorf("Image upload failed. Try again.")
	}
	return res, nil
}

func (h *Handler) renderProductForm(c *gin.Context, status int, form view.ProductForm, errs validation.FieldErrors, pageErr string) {
	title := "New product"
	if form.ID != "" {
		title = "Edit product"
	}
	render.Page(c, status, "merchant_product_form", gin.H{
		"Title":       title,
		"Form":        form,
		"FieldErrors": errs,
		"Error":       pageErr,
	})
}

func formFromInput(id string, in productInput) view.ProductForm {
	return view.ProductForm{
		ID:          id,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		StockQty:    in.StockQty,
		Status:      in.Status,
	}
}

// parsePriceCents parses a major-unit price ("1500" or "1500.50") into
// cents without going through floats for the integer part.
func parsePriceCents(v string) (int64, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
	if v == "" {
		return 0, fmt.Errorf("empty price")
	}
	major := v
	minor := "0"
	if i := strings.IndexByte(v, '.'); i >= 0 {
		major, minor = v[:i], v[i+1:]
		if len(minor) > 2 {
			minor = minor[:2]
		}
		if minor == "" {
			minor = "0"
		}
	}
	mj, err := strconv.ParseInt(major, 10, 64)
	if err != nil || mj < 0 {
		return 0, fmt.Errorf("invalid price")
	}
	mn, err := strconv.ParseInt(minor, 10, 64)
	if err != nil || mn < 0 || mn > 99 {
		return 0, fmt.Errorf("invalid price")
	}
	if len(minor) == 1 && strings.Contains(v, ".") {
		mn *= 10
	}
	if mj > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("price out of range")
	}
	return mj*100 + mn, nil
}

func centsToMajor(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func pagesParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("pages", "1"))
	if err != nil || n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

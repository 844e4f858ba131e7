package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

type ProductHandler struct {
	API *api.Client
}

func NewProductHandler(client *api.Client) *ProductHandler {
	return &ProductHandler{API: client}
}

// Show renders the product detail page. The store header link is best
// effort: a missing store leaves the product page intact.
func (h *ProductHandler) Show(c *gin.Context) {
	res := fetch.NewResource(func(ctx context.Context, key string) (api.Product, error) {
		return h.API.GetProductByID(ctx, key)
	})
	res.Load(c.Request.Context(), c.Param("id"))

	p, ok := res.Get()
	if !ok {
		middleware.Fail(c, res.Err())
		return
	}

	imgs := make([]string, 0, len(p.Images))
	for _, im := range p.Images {
		imgs = append(imgs, im.URL)
	}

	vm := view.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       view.MoneyFromCents(p.PriceCents, p.Currency),
		InStock:     p.StockQty > 0,
		Images:      imgs,
		StoreName:   p.StoreName,
		StoreSlug:   p.StoreSlug,
	}

	render.Page(c, http.StatusOK, "product", gin.H{
		"Title":   p.Name,
		"Product": vm,
	})
}

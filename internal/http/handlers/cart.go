package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/cartcookie"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// CartHandler drives the cart page and its mutations. The cart lives in
// the backend; this side only keeps a signed cookie with the cart id and
// the badge count.
type CartHandler struct {
	API   *api.Client
	Flash *flash.Codec
	CK    *cartcookie.Codec
}

func NewCartHandler(client *api.Client, fl *flash.Codec, ck *cartcookie.Codec) *CartHandler {
	return &CartHandler{API: client, Flash: fl, CK: ck}
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	ref, ok := h.CK.Get(c)
	if !ok {
		render.Page(c, http.StatusOK, "cart", gin.H{
			"Title": "Your cart",
			"Cart":  view.CartPage{Items: []view.CartItem{}},
		})
		return
	}

	res := fetch.NewResource(func(ctx context.Context, key string) (api.Cart, error) {
		return h.API.GetCart(ctx, key)
	})
	res.Load(c.Request.Context(), ref.CartID)

	cart, ok := res.Get()
	if !ok {
		render.Page(c, http.StatusOK, "cart", gin.H{
			"Title": "Your cart",
			"Cart":  view.CartPage{Items: []view.CartItem{}},
			"Error": res.ErrMessage(),
		})
		return
	}

	h.syncCookie(c, cart)
	render.Page(c, http.StatusOK, "cart", gin.H{
		"Title": "Your cart",
		"Cart":  mapCart(cart),
	})
}

// Add handles POST /cart/add.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	qty := formQty(c.PostForm("qty"), 1)
	returnTo := normalizeReturnTo(c.PostForm("return_to"))
	if returnTo == "" {
		returnTo = "/cart"
	}

	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, returnTo, view.FlashError, "Choose a product first.")
		return
	}

	in := api.AddCartItemInput{ProductID: productID, Quantity: qty}

	var updated api.Cart
	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		if ref, ok := h.CK.Get(c); ok {
			updated, err = h.API.AddCartItem(ctx, ref.CartID, in)
		} else {
			updated, err = h.API.CreateCart(ctx, in)
		}
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.Flash, returnTo, view.FlashError, mut.ErrMessage())
		return
	}

	h.syncCookie(c, updated)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

// Update handles POST /cart/items/update.
func (h *CartHandler) Update(c *gin.Context) {
	itemID := strings.TrimSpace(c.PostForm("item_id"))
	qty := formQty(c.PostForm("qty"), 0)

	ref, ok := h.CK.Get(c)
	if !ok || itemID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}

	var updated api.Cart
	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		updated, err = h.API.UpdateCartItem(ctx, ref.CartID, itemID, api.UpdateCartItemInput{Quantity: qty})
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, mut.ErrMessage())
		return
	}

	h.syncCookie(c, updated)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Quantity updated.")
}

// Remove handles POST /cart/items/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	itemID := strings.TrimSpace(c.PostForm("item_id"))

	ref, ok := h.CK.Get(c)
	if !ok || itemID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}

	var updated api.Cart
	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		updated, err = h.API.RemoveCartItem(ctx, ref.CartID, itemID)
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, mut.ErrMessage())
		return
	}

	h.syncCookie(c, updated)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart.")
}

// syncCookie keeps the cart id and the badge count in step with the
// latest cart snapshot from the backend.
func (h *CartHandler) syncCookie(c *gin.Context, cart api.Cart) {
	if cart.ID == "" {
		return
	}
	n := 0
	for _, it := range cart.Items {
		n += it.Quantity
	}
	if n == 0 {
		h.CK.Clear(c)
		return
	}
	h.CK.Set(c, cartcookie.Ref{CartID: cart.ID, ItemCount: n})
}

func mapCart(cart api.Cart) view.CartPage {
	vm := view.CartPage{
		Items:    make([]view.CartItem, 0, len(cart.Items)),
		Subtotal: view.MoneyFromCents(cart.SubtotalCents, cart.Currency),
		Currency: cart.Currency,
	}
	for _, it := range cart.Items {
		vm.Count += it.Quantity
		vm.Items = append(vm.Items, view.CartItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ImageURL:    it.ImageURL,
			PriceEach:   view.MoneyFromCents(it.PriceCents, it.Currency),
			Qty:         it.Quantity,
			LineTotal:   view.MoneyFromCents(it.PriceCents*int64(it.Quantity), it.Currency),
		})
	}
	return vm
}

func formQty(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 || n > 99 {
		return def
	}
	return n
}

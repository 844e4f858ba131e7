package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/cartcookie"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/validation"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

type CheckoutHandler struct {
	API   *api.Client
	Flash *flash.Codec
	CK    *cartcookie.Codec
}

func NewCheckoutHandler(client *api.Client, fl *flash.Codec, ck *cartcookie.Codec) *CheckoutHandler {
	return &CheckoutHandler{API: client, Flash: fl, CK: ck}
}

type checkoutInput struct {
	FullName string `form:"full_name" binding:"required,min=2,max=100"`
	Phone    string `form:"phone" binding:"required,min=7,max=20"`
	Street   string `form:"street" binding:"required,min=5,max=255"`
	City     string `form:"city" binding:"required,min=2,max=100"`
	Landmark string `form:"landmark" binding:"omitempty,max=255"`
	ZoneID   string `form:"zone_id" binding:"required"`
	Note     string `form:"note" binding:"omitempty,max=500"`
	IdemKey  string `form:"idempotency_key" binding:"omitempty,max=64"`
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	cart, zones, ok := h.loadCheckoutData(c)
	if !ok {
		return
	}

	form := view.CheckoutForm{IdemKey: uuid.NewString()}
	if s, authed := middleware.CurrentSession(c); authed {
		form.FullName = s.Name
	}

	h.renderCheckout(c, http.StatusOK, cart, zones, form, nil, "")
}

func (h *CheckoutHandler) Post(c *gin.Context) {
	cart, zones, ok := h.loadCheckoutData(c)
	if !ok {
		return
	}

	var in checkoutInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderCheckout(c, http.StatusBadRequest, cart, zones, formFromInput(in), errs, "")
		return
	}

	idem := strings.TrimSpace(in.IdemKey)
	if idem == "" {
		idem = uuid.NewString()
	}

	client := h.API
	if s, authed := middleware.CurrentSession(c); authed {
		client = client.WithToken(s.Token)
	}

	var order api.Order
	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		order, err = client.CreateOrder(ctx, api.CreateOrderInput{
			CartID: cart.ID,
			DeliveryAddress: api.DeliveryAddress{
				FullName: strings.TrimSpace(in.FullName),
				Phone:    strings.TrimSpace(in.Phone),
				Street:   strings.TrimSpace(in.Street),
				City:     strings.TrimSpace(in.City),
				Landmark: strings.TrimSpace(in.Landmark),
				ZoneID:   in.ZoneID,
			},
			Note: strings.TrimSpace(in.Note),
		}, idem)
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		h.renderCheckout(c, apperr.HTTPStatus(err), cart, zones, formFromInput(in), nil, mut.ErrMessage())
		return
	}

	h.CK.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/orders/track/"+order.ID, view.FlashSuccess,
		"Order placed. Keep the order number to track delivery.")
}

// loadCheckoutData fetches the cart and the zone list, redirecting away
// when there is nothing to check out. Returns ok=false when it already
// responded.
func (h *CheckoutHandler) loadCheckoutData(c *gin.Context) (api.Cart, []api.DeliveryZone, bool) {
	ref, ok := h.CK.Get(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Your cart is empty.")
		return api.Cart{}, nil, false
	}

	cart, err := h.API.GetCart(c.Request.Context(), ref.CartID)
	if err != nil {
		middleware.Fail(c, err)
		return api.Cart{}, nil, false
	}
	if len(cart.Items) == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Your cart is empty.")
		return api.Cart{}, nil, false
	}

	zones, err := h.API.GetDeliveryZones(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return api.Cart{}, nil, false
	}

	return cart, zones, true
}

func (h *CheckoutHandler) renderCheckout(c *gin.Context, status int, cart api.Cart, zones []api.DeliveryZone, form view.CheckoutForm, errs validation.FieldErrors, pageErr string) {
	opts := make([]view.ZoneOption, 0, len(zones))
	for _, z := range zones {
		opts = append(opts, view.ZoneOption{
			ID:    z.ID,
			Label: z.Name + " — " + z.City,
			Fee:   view.MoneyFromCents(z.FeeCents, z.Currency),
		})
	}

	n := 0
	for _, it := range cart.Items {
		n += it.Quantity
	}

	render.Page(c, status, "checkout", gin.H{
		"Title": "Checkout",
		"Form":  form,
		"Zones": opts,
		"Summary": view.CheckoutSummary{
			Items:    n,
			Subtotal: view.MoneyFromCents(cart.SubtotalCents, cart.Currency),
			Currency: cart.Currency,
		},
		"FieldErrors": errs,
		"Error":       pageErr,
	})
}

func formFromInput(in checkoutInput) view.CheckoutForm {
	return view.CheckoutForm{
		FullName: in.FullName,
		Phone:    in.Phone,
		Street:   in.Street,
		City:     in.City,
		Landmark: in.Landmark,
		ZoneID:   in.ZoneID,
		Note:     in.Note,
		IdemKey:  in.IdemKey,
	}
}

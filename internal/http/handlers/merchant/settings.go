package merchant

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/validation"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// Dashboard is the landing page of the merchant area: store settings
// snapshot plus links into products, orders and customers.
func (h *Handler) Dashboard(c *gin.Context) {
	res := fetch.NewResource(func(ctx context.Context, key string) (api.StoreSettings, error) {
		return h.client(c).GetStoreSettings(ctx)
	})
	res.Load(c.Request.Context(), "settings")

	data := gin.H{"Title": "Dashboard"}
	if s, ok := res.Get(); ok {
		data["Store"] = s
	} else {
		data["Error"] = res.ErrMessage()
	}
	render.Page(c, http.StatusOK, "merchant_dashboard", data)
}

type settingsInput struct {
	Name         string `form:"name" binding:"required,min=2,max=100"`
	Description  string `form:"description" binding:"omitempty,max=2000"`
	City         string `form:"city" binding:"required,min=2,max=100"`
	Country      string `form:"country" binding:"required,min=2,max=60"`
	Currency     string `form:"currency" binding:"required,oneof=NGN GHS KES ZAR XOF USD"`
	IsOpen       bool   `form:"is_open"`
	PayoutBank   string `form:"payout_bank" binding:"omitempty,max=100"`
	PayoutNumber string `form:"payout_number" binding:"omitempty,max=30"`
}

func (h *Handler) Settings(c *gin.Context) {
	res := fetch.NewResource(func(ctx context.Context, key string) (api.StoreSettings, error) {
		return h.client(c).GetStoreSettings(ctx)
	})
	res.Load(c.Request.Context(), "settings")

	s, ok := res.Get()
	if !ok {
		middleware.Fail(c, res.Err())
		return
	}

	h.renderSettings(c, http.StatusOK, view.SettingsForm{
		Name:         s.Name,
		Description:  s.Description,
		City:         s.City,
		Country:      s.Country,
		Currency:     s.Currency,
		IsOpen:       s.IsOpen,
		PayoutBank:   s.PayoutBank,
		PayoutNumber: s.PayoutNumber,
	}, nil, "")
}

func (h *Handler) SaveSettings(c *gin.Context) {
	var in settingsInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderSettings(c, http.StatusBadRequest, settingsFormFromInput(in), validation.FromBindError(err, &in), "")
		return
	}

	mut := fetch.NewMutation(func(ctx context.Context) error {
		_, err := h.client(c).UpdateStoreSettings(ctx, api.StoreSettings{
			Name:         strings.TrimSpace(in.Name),
			Description:  strings.TrimSpace(in.Description),
			City:         strings.TrimSpace(in.City),
			Country:      strings.TrimSpace(in.Country),
			Currency:     in.Currency,
			IsOpen:       in.IsOpen,
			PayoutBank:   strings.TrimSpace(in.PayoutBank),
			PayoutNumber: strings.TrimSpace(in.PayoutNumber),
		})
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		h.renderSettings(c, http.StatusBadRequest, settingsFormFromInput(in), nil, mut.ErrMessage())
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/merchant/settings", view.FlashSuccess, "Settings saved.")
}

func (h *Handler) renderSettings(c *gin.Context, status int, form view.SettingsForm, errs validation.FieldErrors, pageErr string) {
	render.Page(c, status, "merchant_settings", gin.H{
		"Title":       "Store settings",
		"Form":        form,
		"FieldErrors": errs,
		"Error":       pageErr,
	})
}

func settingsFormFromInput(in settingsInput) view.SettingsForm {
	return view.SettingsForm{
		Name:         in.Name,
		Description:  in.Description,
		City:         in.City,
		Country:      in.Country,
		Currency:     in.Currency,
		IsOpen:       in.IsOpen,
		PayoutBank:   in.PayoutBank,
		PayoutNumber: in.PayoutNumber,
	}
}

package merchant

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// Orders lists the store's incoming orders, optionally filtered by status.
func (h *Handler) Orders(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !validStatus(status) {
		status = ""
	}
	pages := pagesParam(c)

	list := fetch.NewPagedList(fetch.Filter{Limit: 20, SortBy: "createdAt", SortOrder: "desc"},
		func(ctx context.Context, f fetch.Filter) (fetch.Page[api.Order], error) {
			items, pg, err := h.client(c).ListMerchantOrders(ctx, status, api.ListOptions{
				Page: f.Page, Limit: f.Limit, SortBy: f.SortBy, SortOrder: f.SortOrder,
			})
			if err != nil {
				return fetch.Page[api.Order]{}, err
			}
			return fetch.Page[api.Order]{Items: items, HasMore: pg.HasMore}, nil
		})
	ctx := c.Request.Context()
	list.Load(ctx)
	for i := 1; i < pages && list.HasMore(); i++ {
		list.LoadMore(ctx)
	}

	rows := make([]view.MerchantOrderRow, 0, len(list.Items()))
	for _, o := range list.Items() {
		rows = append(rows, view.MerchantOrderRow{
			ID:        o.ID,
			Number:    shortID(o.ID),
			Customer:  o.DeliveryAddress.FullName,
			Status:    o.Status,
			Total:     view.MoneyFromCents(o.TotalCents, o.Currency),
			CreatedAt: o.CreatedAt,
		})
	}

	render.Page(c, http.StatusOK, "merchant_orders", gin.H{
		"Title": "Orders",
		"Page": view.MerchantOrdersPage{
			Items:        rows,
			Page:         pages,
			HasMore:      list.HasMore(),
			FilterStatus: status,
			Statuses:     api.OrderStatuses,
			Error:        list.ErrMessage(),
		},
	})
}

// UpdateOrderStatus relays a status change to the backend. Whether the
// transition is legal is the backend's call; a rejection comes back as a
// flash message.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.PostForm("status")

	if id == "" || !validStatus(status) {
		render.RedirectWithFlash(c, h.Flash, "/merchant/orders", view.FlashError, "Choose a valid order status.")
		return
	}

	mut := fetch.NewMutation(func(ctx context.Context) error {
		_, err := h.client(c).UpdateOrderStatus(ctx, id, api.UpdateOrderStatusInput{Status: status})
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/merchant/orders", view.FlashError, mut.ErrMessage())
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/merchant/orders", view.FlashSuccess,
		"Order "+shortID(id)+" is now "+view.StatusLabel(status)+".")
}

func validStatus(s string) bool {
	for _, v := range api.OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

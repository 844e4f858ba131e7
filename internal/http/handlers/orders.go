package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

type OrdersHandler struct {
	API *api.Client
}

func NewOrdersHandler(client *api.Client) *OrdersHandler {
	return &OrdersHandler{API: client}
}

// Detail renders an order for its owner (account area).
func (h *OrdersHandler) Detail(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	res := fetch.NewResource(func(ctx context.Context, key string) (api.Order, error) {
		return h.API.WithToken(s.Token).GetOrder(ctx, key)
	})
	res.Load(c.Request.Context(), c.Param("id"))

	o, ok := res.Get()
	if !ok {
		middleware.Fail(c, res.Err())
		return
	}

	render.Page(c, http.StatusOK, "order", gin.H{
		"Title": "Order " + shortID(o.ID),
		"Order": mapOrderDetail(o),
	})
}

// Track is the public tracking page: anyone with the order number can see
// its delivery status. The error is rendered inline so the page keeps the
// lookup form.
func (h *OrdersHandler) Track(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		id = strings.TrimSpace(c.Query("order_id"))
	}

	data := gin.H{"Title": "Track your order", "OrderID": id}

	if id != "" {
		res := fetch.NewResource(func(ctx context.Context, key string) (api.Order, error) {
			return h.API.TrackOrder(ctx, key)
		})
		res.Load(c.Request.Context(), id)

		if o, ok := res.Get(); ok {
			data["Order"] = mapOrderDetail(o)
		} else {
			data["Error"] = res.ErrMessage()
		}
	}

	render.Page(c, http.StatusOK, "track", data)
}

func mapOrderDetail(o api.Order) view.OrderDetail {
	vm := view.OrderDetail{
		ID:        o.ID,
		StoreName: o.StoreName,
		Status:    o.Status,
		Subtotal:  view.MoneyFromCents(o.SubtotalCents, o.Currency),
		Delivery:  view.MoneyFromCents(o.DeliveryCents, o.Currency),
		Total:     view.MoneyFromCents(o.TotalCents, o.Currency),
		CreatedAt: o.CreatedAt,
		Address:   formatAddress(o.DeliveryAddress),
	}
	for _, it := range o.Items {
		vm.Items = append(vm.Items, view.OrderItem{
			ProductName: it.ProductName,
			Qty:         it.Quantity,
			PriceEach:   view.MoneyFromCents(it.PriceCents, o.Currency),
			LineTotal:   view.MoneyFromCents(it.PriceCents*int64(it.Quantity), o.Currency),
		})
	}
	return vm
}

func formatAddress(a api.DeliveryAddress) string {
	parts := []string{a.FullName, a.Street, a.City}
	if a.Landmark != "" {
		parts = append(parts, "near "+a.Landmark)
	}
	parts = append(parts, a.Phone)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

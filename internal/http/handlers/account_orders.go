package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

type AccountOrdersHandler struct {
	API *api.Client
}

func NewAccountOrdersHandler(client *api.Client) *AccountOrdersHandler {
	return &AccountOrdersHandler{API: client}
}

// List shows the customer's orders, newest first, with Load More
// accumulation like the storefront grids.
func (h *AccountOrdersHandler) List(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	pages := intQuery(c, "pages", 1, 10)

	filter := listFilter(c, 20)
	filter.SortBy = "createdAt"
	filter.SortOrder = "desc"

	list := fetch.NewPagedList(filter, pagedLoader(h.API.WithToken(s.Token).ListMyOrders))
	runPages(c, list, pages)

	items := make([]view.OrderListItem, 0, len(list.Items()))
	for _, o := range list.Items() {
		n := 0
		for _, it := range o.Items {
			n += it.Quantity
		}
		items = append(items, view.OrderListItem{
			ID:        o.ID,
			Number:    shortID(o.ID),
			StoreName: o.StoreName,
			Status:    o.Status,
			Total:     view.MoneyFromCents(o.TotalCents, o.Currency),
			ItemCount: n,
			CreatedAt: o.CreatedAt,
		})
	}

	render.Page(c, http.StatusOK, "account_orders", gin.H{
		"Title": "My orders",
		"Page": view.OrderListPage{
			Items:    items,
			Page:     pages,
			HasMore:  list.HasMore(),
			Statuses: api.OrderStatuses,
			Error:    list.ErrMessage(),
		},
	})
}

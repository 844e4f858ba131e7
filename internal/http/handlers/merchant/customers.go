package merchant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// Customers lists everyone who has ordered from the store.
func (h *Handler) Customers(c *gin.Context) {
	pages := pagesParam(c)

	list := fetch.NewPagedList(fetch.Filter{Limit: 25, SortBy: "lastOrderAt", SortOrder: "desc"},
		func(ctx context.Context, f fetch.Filter) (fetch.Page[api.Customer], error) {
			items, pg, err := h.client(c).ListMerchantCustomers(ctx, api.ListOptions{
				Page: f.Page, Limit: f.Limit, SortBy: f.SortBy, SortOrder: f.SortOrder,
			})
			if err != nil {
				return fetch.Page[api.Customer]{}, err
			}
			return fetch.Page[api.Customer]{Items: items, HasMore: pg.HasMore}, nil
		})
	ctx := c.Request.Context()
	list.Load(ctx)
	for i := 1; i < pages && list.HasMore(); i++ {
		list.LoadMore(ctx)
	}

	rows := make([]view.CustomerRow, 0, len(list.Items()))
	for _, cu := range list.Items() {
		rows = append(rows, view.CustomerRow{
			Name:       cu.Name,
			Email:      cu.Email,
			Phone:      cu.Phone,
			OrderCount: cu.OrderCount,
			Spent:      view.MoneyFromCents(cu.SpentCents, cu.Currency),
			LastOrder:  cu.LastOrder,
		})
	}

	render.Page(c, http.StatusOK, "merchant_customers", gin.H{
		"Title":     "Customers",
		"Customers": rows,
		"Pages":     pages,
		"HasMore":   list.HasMore(),
		"Error":     list.ErrMessage(),
	})
}

package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
)

// normalizeReturnTo keeps login redirects on-site.
func normalizeReturnTo(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
		return ""
	}
	return v
}

func intQuery(c *gin.Context, name string, def, max int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// listFilter reads the shared list query parameters.
func listFilter(c *gin.Context, limit int) fetch.Filter {
	order := c.Query("sortOrder")
	if order != "asc" && order != "desc" {
		order = ""
	}
	return fetch.Filter{
		Page:      1,
		Limit:     limit,
		Category:  strings.TrimSpace(c.Query("category")),
		SortBy:    strings.TrimSpace(c.Query("sortBy")),
		SortOrder: order,
	}
}

// apiOpts translates a controller filter into API query options.
func apiOpts(f fetch.Filter) api.ListOptions {
	return api.ListOptions{
		Page:      f.Page,
		Limit:     f.Limit,
		Category:  f.Category,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
	}
}

// pagedLoader adapts a paged API call to a PagedList loader.
func pagedLoader[T any](fn func(ctx context.Context, o api.ListOptions) ([]T, api.Pagination, error)) func(context.Context, fetch.Filter) (fetch.Page[T], error) {
	return func(ctx context.Context, f fetch.Filter) (fetch.Page[T], error) {
		items, pg, err := fn(ctx, apiOpts(f))
		if err != nil {
			return fetch.Page[T]{}, err
		}
		return fetch.Page[T]{Items: items, HasMore: pg.HasMore}, nil
	}
}

// runPages runs the initial load then follows Load More up to the page
// count the URL asked for. The list stops early when the backend says
// there is nothing more.
func runPages[T any](c *gin.Context, list *fetch.PagedList[T], pages int) {
	ctx := c.Request.Context()
	list.Load(ctx)
	for i := 1; i < pages && list.HasMore(); i++ {
		list.LoadMore(ctx)
	}
}

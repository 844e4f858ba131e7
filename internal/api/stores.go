package api

import (
	"context"
	"net/url"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

// GetStoreBySlug fetches one store by its route slug.
func (c *Client) GetStoreBySlug(ctx context.Context, slug string) (Store, error) {
	return get[Store](ctx, c, "/stores/"+url.PathEscape(slug), nil)
}

// GetStoreProducts lists a store's products one page at a time.
func (c *Client) GetStoreProducts(ctx context.Context, slug string, opts ListOptions) ([]Product, Pagination, error) {
	return getPaged[Product](ctx, c, "/stores/"+url.PathEscape(slug)+"/products", opts.query())
}

// GetStoreCategories returns the distinct product categories of a store,
// for the filter bar.
func (c *Client) GetStoreCategories(ctx context.Context, slug string) ([]string, error) {
	return get[[]string](ctx, c, "/stores/"+url.PathEscape(slug)+"/categories", nil)
}

type RateStoreInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// RateStore submits a rating for a store. Fire-and-forget: the rendered
// store snapshot is not refreshed here.
func (c *Client) RateStore(ctx context.Context, slug string, in RateStoreInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return apperr.InvalidErr("Choose a rating from 1 to 5.", nil)
	}
	_, err := send[struct{}](ctx, c, "POST", "/stores/"+url.PathEscape(slug)+"/ratings", in, nil)
	return err
}

// ListStores lists marketplace stores for the landing and browse pages.
func (c *Client) ListStores(ctx context.Context, opts ListOptions) ([]Store, Pagination, error) {
	return getPaged[Store](ctx, c, "/stores", opts.query())
}

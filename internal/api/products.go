package api

import (
	"context"
	"net/url"
)

// GetProductByID fetches a single product.
func (c *Client) GetProductByID(ctx context.Context, id string) (Product, error) {
	return get[Product](ctx, c, "/products/"+url.PathEscape(id), nil)
}

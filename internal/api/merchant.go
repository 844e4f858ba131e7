package api

import (
	"context"
	"net/http"
	"net/url"
)

// Merchant dashboard operations. All of these require a merchant session
// token; the backend scopes them to the merchant's own store.

func (c *Client) ListMerchantProducts(ctx context.Context, opts ListOptions) ([]Product, Pagination, error) {
	return getPaged[Product](ctx, c, "/merchant/products", opts.query())
}

type ProductInput struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"priceCents"`
	StockQty    int      `json:"stockQty"`
	Status      string   `json:"status"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	return send[Product](ctx, c, http.MethodPost, "/merchant/products", in, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	return send[Product](ctx, c, http.MethodPut, "/merchant/products/"+url.PathEscape(id), in, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := send[struct{}](ctx, c, http.MethodDelete, "/merchant/products/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ListMerchantOrders(ctx context.Context, status string, opts ListOptions) ([]Order, Pagination, error) {
	q := opts.query()
	if status != "" {
		q.Set("status", status)
	}
	return getPaged[Order](ctx, c, "/merchant/orders", q)
}

type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}

// UpdateOrderStatus asks the backend to move an order to the given status.
// Transition rules are the backend's; an illegal move comes back as a
// success:false envelope.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (Order, error) {
	return send[Order](ctx, c, http.MethodPatch, "/merchant/orders/"+url.PathEscape(orderID)+"/status", in, nil)
}

func (c *Client) ListMerchantCustomers(ctx context.Context, opts ListOptions) ([]Customer, Pagination, error) {
	return getPaged[Customer](ctx, c, "/merchant/customers", opts.query())
}

func (c *Client) GetStoreSettings(ctx context.Context) (StoreSettings, error) {
	return get[StoreSettings](ctx, c, "/merchant/settings", nil)
}

func (c *Client) UpdateStoreSettings(ctx context.Context, in StoreSettings) (StoreSettings, error) {
	return send[StoreSettings](ctx, c, http.MethodPut, "/merchant/settings", in, nil)
}

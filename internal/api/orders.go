package api

import (
	"context"
	"net/http"
	"net/url"
)

type CreateOrderInput struct {
	CartID          string          `json:"cartId"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	Note            string          `json:"note,omitempty"`
}

// CreateOrder places an order from a cart. The idempotency key guards
// against double submission; the backend deduplicates on it.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput, idempotencyKey string) (Order, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{headerIdempotencyKey: idempotencyKey}
	}
	return send[Order](ctx, c, http.MethodPost, "/orders", in, headers)
}

// GetOrder fetches one order by id. Requires the session token of the
// order's owner.
func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	return get[Order](ctx, c, "/orders/"+url.PathEscape(id), nil)
}

// TrackOrder is the public tracking lookup: order id only, no session.
func (c *Client) TrackOrder(ctx context.Context, id string) (Order, error) {
	return get[Order](ctx, c, "/orders/"+url.PathEscape(id)+"/track", nil)
}

// ListMyOrders lists the authenticated customer's orders.
func (c *Client) ListMyOrders(ctx context.Context, opts ListOptions) ([]Order, Pagination, error) {
	return getPaged[Order](ctx, c, "/account/orders", opts.query())
}

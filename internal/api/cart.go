package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetCart fetches the whole cart. The client never patches a cart locally;
// every mutation returns the updated cart from the backend.
func (c *Client) GetCart(ctx context.Context, cartID string) (Cart, error) {
	return get[Cart](ctx, c, "/carts/"+url.PathEscape(cartID), nil)
}

type AddCartItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateCart creates a cart with an initial item and returns it. Used when
// a guest adds to cart without an existing cart cookie.
func (c *Client) CreateCart(ctx context.Context, in AddCartItemInput) (Cart, error) {
	return send[Cart](ctx, c, http.MethodPost, "/carts", in, nil)
}

// AddCartItem adds an item to an existing cart.
func (c *Client) AddCartItem(ctx context.Context, cartID string, in AddCartItemInput) (Cart, error) {
	return send[Cart](ctx, c, http.MethodPost, "/carts/"+url.PathEscape(cartID)+"/items", in, nil)
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets an item's quantity. Quantity 0 removes the item.
func (c *Client) UpdateCartItem(ctx context.Context, cartID, itemID string, in UpdateCartItemInput) (Cart, error) {
	return send[Cart](ctx, c, http.MethodPatch, "/carts/"+url.PathEscape(cartID)+"/items/"+url.PathEscape(itemID), in, nil)
}

// RemoveCartItem removes an item from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, cartID, itemID string) (Cart, error) {
	return send[Cart](ctx, c, http.MethodDelete, "/carts/"+url.PathEscape(cartID)+"/items/"+url.PathEscape(itemID), nil, nil)
}

package api

import (
	"context"
	"net/http"
)

// Credential checking, token issuance and expiry live entirely in the
// backend. These calls just relay the forms and hand back the session
// payload for the cookie.

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, in LoginInput) (Session, error) {
	return send[Session](ctx, c, http.MethodPost, "/auth/login", in, nil)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (Session, error) {
	return send[Session](ctx, c, http.MethodPost, "/auth/register", in, nil)
}

// GetProfile returns the account profile for the session token.
func (c *Client) GetProfile(ctx context.Context) (Customer, error) {
	return get[Customer](ctx, c, "/account/profile", nil)
}

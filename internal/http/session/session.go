// Package session carries the backend-issued auth token through a signed
// cookie. Presence and expiry are checked here; the token itself is opaque
// and validated by the backend on every API call.
package session

import (
	"strings"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
)

// Session is the explicit session context handed to every handler that
// needs it. No handler reads auth state from anywhere else.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid reports whether the session is usable: token present and, when the
// backend sent an expiry, not past it.
func (s Session) Valid() bool {
	if strings.TrimSpace(s.Token) == "" {
		return false
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		return false
	}
	return true
}

func (s Session) IsMerchant() bool { return s.Role == RoleMerchant }

// FirstName is the display name for the header greeting.
func (s Session) FirstName() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return "there"
	}
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

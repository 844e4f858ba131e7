// Package cartcookie tracks which backend cart belongs to this browser.
// The cart itself lives behind the API; the cookie only holds the cart id
// plus an item count for the header badge, HMAC-signed so neither can be
// tampered with.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid cart cookie")

const maxAge = 30 * 24 * time.Hour

// Ref is the cookie payload.
type Ref struct {
	CartID    string `json:"id"`
	ItemCount int    `json:"n"`
}

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(r Ref) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (Ref, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return Ref{}, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return Ref{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Ref{}, ErrInvalid
	}
	var r Ref
	if err := json.Unmarshal(raw, &r); err != nil {
		return Ref{}, ErrInvalid
	}
	if r.CartID == "" {
		return Ref{}, ErrInvalid
	}
	return r, nil
}

// Get reads the cart reference for this browser. A broken cookie is
// cleared so the next add-to-cart starts a fresh cart.
func (c *Codec) Get(ctx *gin.Context) (Ref, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return Ref{}, false
	}
	r, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return Ref{}, false
	}
	return r, true
}

func (c *Codec) Set(ctx *gin.Context, r Ref) {
	val, err := c.Encode(r)
	if err != nil {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, int(maxAge.Seconds()), "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/session"
)

const ctxKeySession = "session"

// Session decodes the signed session cookie into an explicit session
// object on the request context. This is a presence and expiry check only;
// the backend rejects stale or forged tokens on the first API call, which
// the error handler turns into a forced logout.
func Session(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := c.Cookie(codec.CookieName)
		if err != nil || v == "" {
			c.Next()
			return
		}

		s, err := codec.Decode(v)
		if err != nil || !s.Valid() {
			// Broken or expired cookie: clear it so we stop trying.
			codec.Clear(c)
			c.Next()
			return
		}

		c.Set(ctxKeySession, s)
		c.Next()
	}
}

// CurrentSession returns the session on the request, if any.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	if !ok || !s.Valid() {
		return session.Session{}, false
	}
	return s, true
}

// Package render draws pages through html/template with the shared layout
// data (site chrome, session, flash, cart badge) filled in once.
package render

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/config"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

const ctxKeySite = "site"

// Templates parses every page and partial under dir.
func Templates(dir string) (*template.Template, error) {
	funcs := template.FuncMap{
		"statusLabel": view.StatusLabel,
		"add1":        func(n int) int { return n + 1 },
	}
	t, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(dir, "pages", "*.tmpl"))
	if err != nil {
		return nil, err
	}
	return t.ParseGlob(filepath.Join(dir, "partials", "*.tmpl"))
}

// SiteContext makes the site chrome available to every page render.
func SiteContext(site config.Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeySite, site)
		c.Next()
	}
}

// Page renders a named page template, layering in the data every layout
// partial expects.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if v, ok := c.Get(ctxKeySite); ok {
		data["Site"] = v
	} else {
		data["Site"] = config.Site{Name: "GoFromA2zAfrica"}
	}
	if f := middleware.GetFlash(c); f != nil {
		data["Flash"] = f
	}
	if s, ok := middleware.CurrentSession(c); ok {
		data["User"] = s
	}
	data["CartCount"] = middleware.GetCartCount(c)
	data["RequestID"] = middleware.GetRequestID(c)

	c.HTML(status, name, data)
}

// ErrorPage is the SSR error surface used by the centralized error handler.
func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	Page(c, status, "error", gin.H{
		"Title":      http.StatusText(status),
		"Status":     status,
		"StatusText": http.StatusText(status),
		"Message":    msg,
		"RequestID":  requestID,
	})
}

// RedirectWithFlash sets a one-shot flash and redirects.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}

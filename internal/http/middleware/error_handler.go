package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/session"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

func WantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return false
}

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandlerCfg wires the pieces the centralized error handler needs to
// render or redirect.
type ErrorHandlerCfg struct {
	Logger     *slog.Logger
	Sessions   *session.Codec
	Flash      *flash.Codec
	RenderPage func(c *gin.Context, status int, msg string, requestID string)
}

// ErrorHandler is the single place unhandled errors become responses.
// An Unauthorized error while a session cookie is present means the
// backend rejected the token: the session is cleared and the user is sent
// back to /login (forced logout).
func ErrorHandler(cfg ErrorHandlerCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		publicMsg := apperr.PublicMessage(err)
		rid := GetRequestID(c)

		cfg.Logger.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		if WantsJSON(c) {
			payload := gin.H{
				"error":      publicMsg,
				"request_id": rid,
			}
			if ae, ok := apperr.As(err); ok && len(ae.Fields) > 0 {
				payload["fields"] = ae.Fields
			}
			c.AbortWithStatusJSON(status, payload)
			return
		}

		if apperr.IsKind(err, apperr.Unauthorized) {
			if _, hadSession := CurrentSession(c); hadSession {
				cfg.Sessions.Clear(c)
				SetFlashCookie(c, cfg.Flash, view.Flash{
					Kind:    view.FlashWarning,
					Message: "Your session has expired. Please sign in again.",
				})
				returnTo := c.Request.URL.RequestURI()
				c.Abort()
				c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
				return
			}
		}

		c.Abort()
		cfg.RenderPage(c, status, publicMsg, rid)
	}
}

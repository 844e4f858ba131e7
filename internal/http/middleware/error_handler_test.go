package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/session"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

type renderCall struct {
	status int
	msg    string
}

func errorTestRouter(t *testing.T, rendered *renderCall, fail error) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewCodec(testSecret, "sess", false)
	flashes := flash.NewCodec(testSecret, "flash", false)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(
		RequestID(),
		ErrorHandler(ErrorHandlerCfg{
			Logger:   logger,
			Sessions: sessions,
			Flash:    flashes,
			RenderPage: func(c *gin.Context, status int, msg string, requestID string) {
				*rendered = renderCall{status: status, msg: msg}
				c.Status(status)
			},
		}),
		Session(sessions),
	)
	r.GET("/boom", func(c *gin.Context) {
		Fail(c, fail)
	})
	return r
}

func TestErrorHandlerRendersErrorPage(t *testing.T) {
	var rendered renderCall
	r := errorTestRouter(t, &rendered, apperr.NotFoundErr("Order not found."))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, rendered.status)
	assert.Equal(t, "Order not found.", rendered.msg)
}

func TestErrorHandlerJSON(t *testing.T) {
	var rendered renderCall
	r := errorTestRouter(t, &rendered, apperr.ConflictErr("Item is out of stock."))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Item is out of stock.")
	assert.Zero(t, rendered, "JSON errors never go through the page renderer")
}

func TestErrorHandlerForcesLogoutOnUnauthorized(t *testing.T) {
	var rendered renderCall
	r := errorTestRouter(t, &rendered, apperr.UnauthorizedErr("Token expired."))

	codec := session.NewCodec(testSecret, "sess", false)
	val, err := codec.Encode(session.Session{Token: "stale", ExpiresAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.AddCookie(&http.Cookie{Name: "sess", Value: val})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?return_to=%2Fboom", w.Header().Get("Location"))

	var sessionCleared, flashSet bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sess" && ck.MaxAge < 0 {
			sessionCleared = true
		}
		if ck.Name == "flash" && ck.Value != "" {
			flashSet = true
		}
	}
	assert.True(t, sessionCleared, "the rejected session must be cleared")
	assert.True(t, flashSet, "the user should see why they were signed out")
}

func TestErrorHandlerUnauthorizedWithoutSessionRenders(t *testing.T) {
	var rendered renderCall
	r := errorTestRouter(t, &rendered, apperr.UnauthorizedErr("Sign in required."))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// No session to revoke: plain error page, no redirect loop.
	assert.Equal(t, http.StatusUnauthorized, rendered.status)
}

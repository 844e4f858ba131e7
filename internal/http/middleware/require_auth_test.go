package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/session"
)

var testSecret = []byte("test-secret")

func authTestRouter(t *testing.T, handlerRan *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewCodec(testSecret, "sess", false)
	flashes := flash.NewCodec(testSecret, "flash", false)

	r := gin.New()
	r.Use(Session(sessions))
	r.GET("/account/orders", RequireAuth(flashes), func(c *gin.Context) {
		*handlerRan = true
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	ran := false
	r := authTestRouter(t, &ran)

	req := httptest.NewRequest(http.MethodGet, "/account/orders?pages=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?return_to=%2Faccount%2Forders%3Fpages%3D2", w.Header().Get("Location"))
	assert.False(t, ran, "the guarded handler must never run without a session")

	cookies := w.Result().Cookies()
	var flashSet bool
	for _, ck := range cookies {
		if ck.Name == "flash" && ck.Value != "" {
			flashSet = true
		}
	}
	assert.True(t, flashSet, "the sign-in prompt rides a flash cookie")
}

func TestRequireAuthJSONGets401(t *testing.T) {
	ran := false
	r := authTestRouter(t, &ran)

	req := httptest.NewRequest(http.MethodGet, "/account/orders", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, ran)
}

func TestRequireAuthPassesWithSession(t *testing.T) {
	ran := false
	r := authTestRouter(t, &ran)

	codec := session.NewCodec(testSecret, "sess", false)
	val, err := codec.Encode(session.Session{
		Token:     "tok",
		Name:      "Ada",
		Role:      session.RoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/account/orders", nil)
	req.AddCookie(&http.Cookie{Name: "sess", Value: val})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ran)
}

func TestSessionMiddlewareClearsExpiredCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	codec := session.NewCodec(testSecret, "sess", false)

	r := gin.New()
	r.Use(Session(codec))
	r.GET("/", func(c *gin.Context) {
		_, ok := CurrentSession(c)
		assert.False(t, ok, "an expired session must not be visible to handlers")
		c.String(http.StatusOK, "ok")
	})

	val, err := codec.Encode(session.Session{Token: "tok", ExpiresAt: time.Now().Add(-time.Hour)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sess", Value: val})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sess" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "the broken cookie should be cleared")
}

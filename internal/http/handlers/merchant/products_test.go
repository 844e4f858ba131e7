package merchant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/storage"
)

const productFormTmpl = `{{define "merchant_product_form"}}{{if .Error}}<p class="error">{{.Error}}</p>{{end}}{{end}}`

// uploadsSpy records puts and deletes without touching disk.
type uploadsSpy struct {
	puts    []string
	deleted []string
}

func (s *uploadsSpy) Put(ctx context.Context, r io.Reader, in storage.PutInput) (storage.PutResult, error) {
	key := fmt.Sprintf("2026/08/img-%d.png", len(s.puts))
	s.puts = append(s.puts, key)
	return storage.PutResult{Key: key, URL: "/uploads/" + key}, nil
}

func (s *uploadsSpy) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func saveProductRouter(t *testing.T, backend http.Handler) (*gin.Engine, *uploadsSpy) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	spy := &uploadsSpy{}
	client := api.New(api.Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	h := New(client, flash.NewCodec([]byte("test-secret"), "flash", false), spy)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(productFormTmpl)))
	r.POST("/merchant/products/new", h.SaveProduct)
	return r, spy
}

func productFormRequest(t *testing.T, withImage bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Shea Butter"))
	require.NoError(t, mw.WriteField("category", "Beauty"))
	require.NoError(t, mw.WriteField("price", "1500"))
	require.NoError(t, mw.WriteField("stock_qty", "5"))
	require.NoError(t, mw.WriteField("status", "active"))
	if withImage {
		fw, err := mw.CreateFormFile("image", "shea.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("not-a-real-png"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/merchant/products/new", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSaveProductDeletesUploadWhenSaveRejected(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Duplicate product"})
	})
	r, spy := saveProductRouter(t, backend)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, productFormRequest(t, true))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate product")
	require.Len(t, spy.puts, 1)
	assert.Equal(t, spy.puts, spy.deleted, "a rejected save must not leave the image behind")
}

func TestSaveProductKeepsUploadOnSuccess(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "p1"}})
	})
	r, spy := saveProductRouter(t, backend)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, productFormRequest(t, true))

	require.Equal(t, http.StatusFound, w.Code)
	require.Len(t, spy.puts, 1)
	assert.Empty(t, spy.deleted)
}

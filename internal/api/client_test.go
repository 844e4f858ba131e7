package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		RetryMax:  2,
		RetryBase: time.Millisecond,
	}), srv
}

func writeEnvelope(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestGetStoreBySlugDecodesEnvelope(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stores/mama-nkechi", r.URL.Path)
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "s1", "slug": "mama-nkechi", "name": "Mama Nkechi", "isOpen": true},
		})
	})

	st, err := client.GetStoreBySlug(context.Background(), "mama-nkechi")

	require.NoError(t, err)
	assert.Equal(t, "Mama Nkechi", st.Name)
	assert.True(t, st.IsOpen)
}

func TestListStoresQueryAndPagination(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "12", q.Get("limit"))
		assert.Equal(t, "spices", q.Get("category"))
		assert.Equal(t, "name", q.Get("sortBy"))
		assert.Equal(t, "asc", q.Get("sortOrder"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success":    true,
			"data":       []map[string]any{{"id": "s1"}, {"id": "s2"}},
			"pagination": map[string]any{"page": 2, "limit": 12, "total": 30, "hasMore": true},
		})
	})

	stores, pg, err := client.ListStores(context.Background(), ListOptions{
		Page: 2, Limit: 12, Category: "spices", SortBy: "name", SortOrder: "asc",
	})

	require.NoError(t, err)
	assert.Len(t, stores, 2)
	assert.True(t, pg.HasMore)
	assert.Equal(t, 30, pg.Total)
}

func TestMissingPaginationMeansNoMore(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "s1"}},
		})
	})

	_, pg, err := client.ListStores(context.Background(), ListOptions{})

	require.NoError(t, err)
	assert.False(t, pg.HasMore)
}

func TestFailureEnvelopeUsesPayloadMessage(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Order not found",
		})
	})

	_, err := client.GetOrder(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, "Order not found", apperr.PublicMessage(err))
}

func TestFailureEnvelopeEmptyMessageGetsDefault(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]any{"success": false})
	})

	_, err := client.GetProductByID(context.Background(), "p1")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
	assert.Equal(t, "The request could not be completed.", apperr.PublicMessage(err))
}

func TestStatusKindMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   apperr.Kind
	}{
		{http.StatusBadRequest, apperr.Invalid},
		{http.StatusUnauthorized, apperr.Unauthorized},
		{http.StatusForbidden, apperr.Forbidden},
		{http.StatusNotFound, apperr.NotFound},
		{http.StatusConflict, apperr.Conflict},
		{http.StatusUnprocessableEntity, apperr.Invalid},
		{http.StatusServiceUnavailable, apperr.Unavailable},
	}
	for _, tc := range cases {
		err := failureError(tc.status, "", "GET", "/x")
		assert.True(t, apperr.IsKind(err, tc.kind), "status %d", tc.status)
	}
}

func TestGetRetriesOn5xx(t *testing.T) {
	var hits int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			writeEnvelope(w, http.StatusBadGateway, map[string]any{"success": false})
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "p1", "name": "Shea butter"},
		})
	})

	p, err := client.GetProductByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Shea butter", p.Name)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestGetDoesNotRetryOn4xx(t *testing.T) {
	var hits int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false})
	})

	_, err := client.GetProductByID(context.Background(), "p1")

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "a 4xx must not be retried")
}

func TestWritesAreNeverRetried(t *testing.T) {
	var hits int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeEnvelope(w, http.StatusBadGateway, map[string]any{"success": false})
	})

	_, err := client.CreateCart(context.Background(), AddCartItemInput{ProductID: "p1", Quantity: 1})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unavailable))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "a POST goes out exactly once")
}

func TestWithTokenSendsBearer(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "u1", "name": "Ada"},
		})
	})

	_, err := client.WithToken("tok-123").GetProfile(context.Background())
	require.NoError(t, err)
}

func TestAnonymousClientSendsNoAuthHeader(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": "s1"}})
	})

	_, err := client.GetStoreBySlug(context.Background(), "any")
	require.NoError(t, err)
}

func TestCreateOrderSendsIdempotencyKey(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "idem-42", r.Header.Get("X-Idempotency-Key"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "o1", "status": "PENDING"},
		})
	})

	o, err := client.CreateOrder(context.Background(), CreateOrderInput{CartID: "c1"}, "idem-42")

	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
}

func TestMalformedBodyIsUnavailable(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.CreateCart(context.Background(), AddCartItemInput{ProductID: "p1", Quantity: 1})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unavailable))
}

func TestRateStoreValidatesRange(t *testing.T) {
	var hits int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true})
	})

	err := client.RateStore(context.Background(), "s", RateStoreInput{Rating: 9})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
	assert.Zero(t, atomic.LoadInt32(&hits), "an out-of-range rating never reaches the backend")
}

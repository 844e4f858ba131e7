package fetch

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

func TestResourceLoadSuccess(t *testing.T) {
	res := NewResource(func(ctx context.Context, key string) (string, error) {
		return "store-" + key, nil
	})

	assert.Equal(t, StateIdle, res.State())

	res.Load(context.Background(), "mama-nkechi")

	require.Equal(t, StateReady, res.State())
	got, ok := res.Get()
	require.True(t, ok)
	assert.Equal(t, "store-mama-nkechi", got)
	assert.NoError(t, res.Err())
	assert.Empty(t, res.ErrMessage())
}

func TestResourceLoadFailure(t *testing.T) {
	res := NewResource(func(ctx context.Context, key string) (string, error) {
		return "", apperr.NotFoundErr("Order not found.")
	})

	res.Load(context.Background(), "missing")

	assert.Equal(t, StateFailed, res.State())
	_, ok := res.Get()
	assert.False(t, ok)
	assert.True(t, apperr.IsKind(res.Err(), apperr.NotFound))
	assert.Equal(t, "Order not found.", res.ErrMessage())
}

func TestResourceEmptyKeyFailsWithoutLoader(t *testing.T) {
	var calls int32
	res := NewResource(func(ctx context.Context, key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	})

	res.Load(context.Background(), "")

	assert.Equal(t, StateFailed, res.State())
	assert.True(t, apperr.IsKind(res.Err(), apperr.NotFound))
	assert.Zero(t, atomic.LoadInt32(&calls), "loader must not run for an empty key")
}

func TestResourceFailureClearsPreviousData(t *testing.T) {
	fail := false
	res := NewResource(func(ctx context.Context, key string) (string, error) {
		if fail {
			return "", apperr.UnavailableErr("Backend down.")
		}
		return "fresh", nil
	})

	res.Load(context.Background(), "k")
	_, ok := res.Get()
	require.True(t, ok)

	fail = true
	res.Load(context.Background(), "k")

	got, ok := res.Get()
	assert.False(t, ok)
	assert.Empty(t, got, "stale data must not survive a failed reload")
}

func TestResourceStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	res := NewResource(func(ctx context.Context, key string) (string, error) {
		if key == "slow" {
			close(started)
			<-release
			return "slow-result", nil
		}
		return "fast-result", nil
	})

	done := make(chan struct{})
	go func() {
		res.Load(context.Background(), "slow")
		close(done)
	}()
	<-started

	// A newer load lands while the first is still in flight.
	res.Load(context.Background(), "fast")
	close(release)
	<-done

	got, ok := res.Get()
	require.True(t, ok)
	assert.Equal(t, "fast-result", got, "the slow response must not overwrite the newer one")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
}

// Package fetch holds the shared fetch-lifecycle controllers every page is
// built on: a keyed single-resource controller, an incremental paged-list
// controller and a one-shot mutation. Each owns the usual
// loading/error/data triad once, instead of every handler re-growing it.
//
// Controllers are safe for concurrent use. A generation counter tied to
// each controller discards responses that resolve after a newer load
// started, so a slow response never overwrites fresher state.
package fetch

import (
	"context"
	"sync"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

// State is the view state a controller is in.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resource drives exactly one entity keyed by a route parameter.
type Resource[T any] struct {
	mu    sync.Mutex
	gen   uint64
	state State
	data  T
	err   error

	load func(ctx context.Context, key string) (T, error)
}

// NewResource builds a resource controller around a loader. The loader is
// called with the key passed to Load.
func NewResource[T any](load func(ctx context.Context, key string) (T, error)) *Resource[T] {
	return &Resource[T]{load: load}
}

// Load fetches the entity for key. An empty key fails synchronously with a
// not-found error and never touches the network. Starting a new Load
// invalidates any load still in flight.
func (r *Resource[T]) Load(ctx context.Context, key string) {
	r.mu.Lock()
	r.gen++
	gen := r.gen

	if key == "" {
		var zero T
		r.data = zero
		r.err = apperr.NotFoundErr("Not found.")
		r.state = StateFailed
		r.mu.Unlock()
		return
	}

	r.state = StateLoading
	r.mu.Unlock()

	data, err := r.load(ctx, key)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// A newer load started while this one was in flight.
		return
	}
	if err != nil {
		var zero T
		r.data = zero
		r.err = err
		r.state = StateFailed
		return
	}
	r.data = data
	r.err = nil
	r.state = StateReady
}

func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Get returns the entity and whether the controller is Ready.
func (r *Resource[T]) Get() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.state == StateReady
}

func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// ErrMessage is the user-facing message of the last failure, or "".
func (r *Resource[T]) ErrMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		return ""
	}
	return apperr.PublicMessage(r.err)
}

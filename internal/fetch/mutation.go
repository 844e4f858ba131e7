package fetch

import (
	"context"
	"sync"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

// Status is the lifecycle of a one-shot write.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// Mutation is a fire-and-forget write: add to cart, submit a rating,
// place an order. It never refreshes any list or detail snapshot; callers
// that need fresh data re-fetch explicitly.
type Mutation struct {
	mu        sync.Mutex
	status    Status
	err       error
	run       func(ctx context.Context) error
	onSuccess func()
}

func NewMutation(run func(ctx context.Context) error) *Mutation {
	return &Mutation{run: run}
}

// OnSuccess registers a callback invoked after a successful Do, outside
// the controller lock.
func (m *Mutation) OnSuccess(fn func()) *Mutation {
	m.mu.Lock()
	m.onSuccess = fn
	m.mu.Unlock()
	return m
}

// Do executes the write once. A Do while another is in flight is ignored
// and returns nil.
func (m *Mutation) Do(ctx context.Context) error {
	m.mu.Lock()
	if m.status == StatusLoading {
		m.mu.Unlock()
		return nil
	}
	m.status = StatusLoading
	m.err = nil
	run := m.run
	m.mu.Unlock()

	err := run(ctx)

	m.mu.Lock()
	if err != nil {
		m.status = StatusError
		m.err = err
		m.mu.Unlock()
		return err
	}
	m.status = StatusSuccess
	cb := m.onSuccess
	m.mu.Unlock()

	if cb != nil {
		cb()
	}
	return nil
}

func (m *Mutation) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Mutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Mutation) ErrMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err == nil {
		return ""
	}
	return apperr.PublicMessage(m.err)
}

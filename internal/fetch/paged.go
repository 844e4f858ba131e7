package fetch

import (
	"context"
	"sync"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

const defaultPageLimit = 24

// Filter is the query state of a paged list.
type Filter struct {
	Page      int
	Limit     int
	Category  string
	SortBy    string
	SortOrder string
}

func (f Filter) normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = defaultPageLimit
	}
	return f
}

// sameExceptPage reports whether only the page differs.
func (f Filter) sameExceptPage(o Filter) bool {
	f.Page, o.Page = 0, 0
	return f == o
}

// Page is one page of a list response.
type Page[T any] struct {
	Items   []T
	HasMore bool
}

// PagedList accumulates pages of a list endpoint in server order. The
// initial load replaces the items; LoadMore appends the next page after
// them, never re-sorting and never deduplicating. HasMore always reflects
// the most recent response only.
type PagedList[T any] struct {
	mu      sync.Mutex
	gen     uint64
	state   State
	items   []T
	hasMore bool
	err     error
	filter  Filter

	load func(ctx context.Context, f Filter) (Page[T], error)
}

func NewPagedList[T any](filter Filter, load func(ctx context.Context, f Filter) (Page[T], error)) *PagedList[T] {
	return &PagedList[T]{filter: filter.normalized(), load: load}
}

// SetFilter replaces the filter. Changing anything other than the page
// resets the page to 1 and discards the accumulated items, so a category
// or sort switch never renders a list stitched from two different queries.
func (l *PagedList[T]) SetFilter(f Filter) {
	f = f.normalized()
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.filter.sameExceptPage(f) {
		f.Page = 1
		l.items = nil
		l.hasMore = false
		l.state = StateIdle
		l.err = nil
		l.gen++ // anything in flight is stale now
	}
	l.filter = f
}

// Load runs the initial fetch for the current filter, replacing whatever
// is displayed.
func (l *PagedList[T]) Load(ctx context.Context) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	f := l.filter
	l.state = StateLoading
	l.mu.Unlock()

	page, err := l.load(ctx, f)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	if err != nil {
		l.items = nil
		l.hasMore = false
		l.err = err
		l.state = StateFailed
		return
	}
	l.items = append([]T(nil), page.Items...)
	l.hasMore = page.HasMore
	l.err = nil
	l.state = StateReady
}

// LoadMore fetches the page after the last loaded one and appends it.
// It is a no-op while a fetch is in flight or when the last response said
// there is nothing more.
func (l *PagedList[T]) LoadMore(ctx context.Context) {
	l.mu.Lock()
	if l.state == StateLoading || !l.hasMore {
		l.mu.Unlock()
		return
	}
	l.gen++
	gen := l.gen
	f := l.filter
	f.Page++
	l.state = StateLoading
	l.mu.Unlock()

	page, err := l.load(ctx, f)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	if err != nil {
		// Keep what is already rendered; only the append failed.
		l.err = err
		l.state = StateFailed
		return
	}
	l.filter = f
	l.items = append(l.items, page.Items...)
	l.hasMore = page.HasMore
	l.err = nil
	l.state = StateReady
}

func (l *PagedList[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Items returns a copy of the accumulated list in display order.
func (l *PagedList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

func (l *PagedList[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

func (l *PagedList[T]) Filter() Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

func (l *PagedList[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *PagedList[T]) ErrMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err == nil {
		return ""
	}
	return apperr.PublicMessage(l.err)
}

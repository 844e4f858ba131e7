package fetch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

// pagedBackend fakes a list endpoint with a fixed item count.
type pagedBackend struct {
	total int
	calls []Filter
	err   error
}

func (b *pagedBackend) load(ctx context.Context, f Filter) (Page[string], error) {
	b.calls = append(b.calls, f)
	if b.err != nil {
		return Page[string]{}, b.err
	}
	start := (f.Page - 1) * f.Limit
	var items []string
	for i := start; i < start+f.Limit && i < b.total; i++ {
		items = append(items, fmt.Sprintf("item-%d", i))
	}
	return Page[string]{Items: items, HasMore: start+f.Limit < b.total}, nil
}

func TestPagedListLoadThenLoadMore(t *testing.T) {
	b := &pagedBackend{total: 30}
	list := NewPagedList(Filter{Limit: 12}, b.load)

	list.Load(context.Background())

	require.Equal(t, StateReady, list.State())
	assert.Len(t, list.Items(), 12)
	assert.True(t, list.HasMore())

	list.LoadMore(context.Background())

	items := list.Items()
	require.Len(t, items, 24)
	assert.Equal(t, "item-0", items[0])
	assert.Equal(t, "item-12", items[12], "page two must append after page one in order")
	assert.True(t, list.HasMore())
	assert.Equal(t, 2, list.Filter().Page)

	list.LoadMore(context.Background())

	assert.Len(t, list.Items(), 30)
	assert.False(t, list.HasMore(), "HasMore reflects the latest response")
}

func TestPagedListLoadMoreNoopWhenExhausted(t *testing.T) {
	b := &pagedBackend{total: 5}
	list := NewPagedList(Filter{Limit: 12}, b.load)

	list.Load(context.Background())
	require.False(t, list.HasMore())

	list.LoadMore(context.Background())

	assert.Len(t, b.calls, 1, "LoadMore must not fetch when the last response said no more")
	assert.Len(t, list.Items(), 5)
}

func TestPagedListLoadMoreErrorKeepsItems(t *testing.T) {
	b := &pagedBackend{total: 30}
	list := NewPagedList(Filter{Limit: 12}, b.load)

	list.Load(context.Background())
	require.Len(t, list.Items(), 12)

	b.err = apperr.UnavailableErr("Backend down.")
	list.LoadMore(context.Background())

	assert.Equal(t, StateFailed, list.State())
	assert.Len(t, list.Items(), 12, "a failed append keeps what is already rendered")
	assert.Equal(t, "Backend down.", list.ErrMessage())
	assert.Equal(t, 1, list.Filter().Page, "the filter page must not advance on failure")
}

func TestPagedListSetFilterResetsOnNonPageChange(t *testing.T) {
	b := &pagedBackend{total: 30}
	list := NewPagedList(Filter{Limit: 12}, b.load)

	list.Load(context.Background())
	list.LoadMore(context.Background())
	require.Len(t, list.Items(), 24)

	f := list.Filter()
	f.Category = "spices"
	list.SetFilter(f)

	assert.Empty(t, list.Items(), "a category switch discards accumulated items")
	assert.Equal(t, 1, list.Filter().Page, "a category switch resets to page 1")
	assert.Equal(t, StateIdle, list.State())
	assert.False(t, list.HasMore())
}

func TestPagedListSetFilterSamePageOnlyKeepsItems(t *testing.T) {
	b := &pagedBackend{total: 30}
	list := NewPagedList(Filter{Limit: 12}, b.load)

	list.Load(context.Background())
	require.Len(t, list.Items(), 12)

	f := list.Filter()
	f.Page = 2
	list.SetFilter(f)

	assert.Len(t, list.Items(), 12, "a page-only change must not discard items")
	assert.Equal(t, 2, list.Filter().Page)
}

func TestPagedListLoadErrorClearsItems(t *testing.T) {
	b := &pagedBackend{total: 30}
	list := NewPagedList(Filter{Limit: 12}, b.load)

	list.Load(context.Background())
	require.Len(t, list.Items(), 12)

	b.err = apperr.UnavailableErr("Backend down.")
	list.Load(context.Background())

	assert.Equal(t, StateFailed, list.State())
	assert.Empty(t, list.Items(), "a failed initial load replaces the display")
}

func TestFilterNormalization(t *testing.T) {
	list := NewPagedList(Filter{Page: -3, Limit: 500}, (&pagedBackend{}).load)

	f := list.Filter()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageLimit, f.Limit)
}

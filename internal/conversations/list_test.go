// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/model"
)

// fakeBackend serves fixed pages and records calls.
type fakeBackend struct {
	pages     map[int]*api.ConversationPage
	listErr   error
	deleteErr error

	listCalls   int
	deleteCalls []string
}

func (f *fakeBackend) ListConversations(_ context.Context, page, limit int) (*api.ConversationPage, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if p, ok := f.pages[page]; ok {
		return p, nil
	}
	return &api.ConversationPage{}, nil
}

func (f *fakeBackend) DeleteConversation(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func summaries(prefix string, n int) []model.ConversationSummary {
	out := make([]model.ConversationSummary, n)
	for i := range out {
		out[i] = model.ConversationSummary{ID: fmt.Sprintf("%s%d", prefix, i)}
	}
	return out
}

func twoPageBackend() *fakeBackend {
	return &fakeBackend{pages: map[int]*api.ConversationPage{
		1: {Conversations: summaries("a", 10), HasNext: true},
		2: {Conversations: summaries("b", 3), HasNext: false},
	}}
}

func TestPager_Transitions(t *testing.T) {
	p := NewPager()
	assert.Equal(t, Pager{Page: 1, HasMore: true}, p)

	p2, page, ok := p.BeginNext()
	require.True(t, ok)
	assert.Equal(t, 1, page)
	assert.True(t, p2.InFlight)
	assert.False(t, p.InFlight, "transitions must not modify the receiver")

	_, _, ok = p2.BeginNext()
	assert.False(t, ok)

	p3 := p2.Fail()
	assert.Equal(t, 1, p3.Page)
	assert.False(t, p3.InFlight)

	p4 := p2.Succeed(1, false)
	assert.Equal(t, Pager{Page: 2, HasMore: false}, p4)

	_, _, ok = p4.BeginNext()
	assert.False(t, ok)

	p5, page := p4.BeginFirst()
	assert.Equal(t, 1, page)
	assert.True(t, p5.InFlight)
}

func TestShouldLoadMore(t *testing.T) {
	tests := []struct {
		name                   string
		top, content, viewport int
		want                   bool
	}{
		{"top of long list", 0, 100, 10, false},
		{"just outside margin", 75, 100, 10, false},
		{"inside margin", 76, 100, 10, true},
		{"at bottom", 90, 100, 10, true},
		{"content shorter than viewport", 0, 5, 10, true},
		{"no viewport", 0, 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldLoadMore(tt.top, tt.content, tt.viewport))
		})
	}
}

func TestList_Pagination(t *testing.T) {
	ctx := context.Background()
	b := twoPageBackend()
	l := NewList(b)

	require.NoError(t, l.LoadNextPage(ctx))
	require.NoError(t, l.LoadNextPage(ctx))
	assert.Equal(t, 13, l.Len())
	assert.False(t, l.Pager().HasMore)
	assert.Equal(t, 2, b.listCalls)

	require.NoError(t, l.LoadNextPage(ctx))
	assert.Equal(t, 2, b.listCalls, "no fetch once has-more is false")
}

func TestList_ConcurrencyGuard(t *testing.T) {
	b := twoPageBackend()
	l := NewList(b)

	req, ok := l.BeginNext()
	require.True(t, ok)
	_, ok = l.BeginNext()
	assert.False(t, ok, "second call while in flight must not start a fetch")

	require.NoError(t, l.Apply(req.Fetch(context.Background(), b)))
	assert.Equal(t, 1, b.listCalls)
	assert.Equal(t, 10, l.Len())
}

func TestList_LoadFirstPageReplaces(t *testing.T) {
	ctx := context.Background()
	b := twoPageBackend()
	l := NewList(b)

	require.NoError(t, l.LoadFirstPage(ctx))
	require.NoError(t, l.LoadNextPage(ctx))
	assert.Equal(t, 13, l.Len())

	require.NoError(t, l.LoadFirstPage(ctx))
	assert.Equal(t, 10, l.Len())
	assert.Equal(t, 2, l.Pager().Page)
	assert.True(t, l.Pager().HasMore)
}

func TestList_FirstPageSupersedesInFlightNext(t *testing.T) {
	b := twoPageBackend()
	l := NewList(b)
	require.NoError(t, l.LoadFirstPage(context.Background()))

	next, ok := l.BeginNext()
	require.True(t, ok)
	first := l.BeginFirst()

	require.NoError(t, l.Apply(first.Fetch(context.Background(), b)))
	require.NoError(t, l.Apply(next.Fetch(context.Background(), b)))

	assert.Equal(t, 10, l.Len(), "stale next-page result must be dropped")
	assert.Equal(t, 2, l.Pager().Page)
	assert.False(t, l.Loading())
}

func TestList_FetchFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	b := twoPageBackend()
	l := NewList(b)
	require.NoError(t, l.LoadFirstPage(ctx))

	b.listErr = errors.New("connection refused")
	assert.Error(t, l.LoadNextPage(ctx))
	assert.Equal(t, 10, l.Len())
	assert.Equal(t, 2, l.Pager().Page)
	assert.False(t, l.Loading())

	b.listErr = nil
	require.NoError(t, l.LoadNextPage(ctx))
	assert.Equal(t, 13, l.Len())
}

func TestList_LoadAll(t *testing.T) {
	l := NewList(twoPageBackend())
	require.NoError(t, l.LoadAll(context.Background()))
	assert.Equal(t, 13, l.Len())
}

func TestList_DeleteFlow(t *testing.T) {
	ctx := context.Background()
	b := twoPageBackend()
	l := NewList(b)
	require.NoError(t, l.LoadFirstPage(ctx))

	require.True(t, l.RequestDelete("a3"))
	assert.False(t, l.RequestDelete("a4"), "only one delete may be pending")

	id, err := l.ConfirmDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a3", id)
	assert.Equal(t, 9, l.Len())
	for _, c := range l.Items() {
		assert.NotEqual(t, "a3", c.ID)
	}
	_, pending := l.PendingDelete()
	assert.False(t, pending)
	assert.Equal(t, []string{"a3"}, b.deleteCalls)
}

func TestList_DeleteFailureKeepsEntryAndPending(t *testing.T) {
	ctx := context.Background()
	b := twoPageBackend()
	l := NewList(b)
	require.NoError(t, l.LoadFirstPage(ctx))

	b.deleteErr = errors.New("boom")
	require.True(t, l.RequestDelete("a0"))
	_, err := l.ConfirmDelete(ctx)
	require.Error(t, err)

	assert.Equal(t, 10, l.Len())
	id, pending := l.PendingDelete()
	assert.True(t, pending)
	assert.Equal(t, "a0", id)
	assert.False(t, l.Deleting())

	// Retry succeeds.
	b.deleteErr = nil
	_, err = l.ConfirmDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, l.Len())
}

func TestList_CancelDelete(t *testing.T) {
	b := twoPageBackend()
	l := NewList(b)

	require.True(t, l.RequestDelete("a1"))
	l.CancelDelete()
	_, pending := l.PendingDelete()
	assert.False(t, pending)
	assert.Empty(t, b.deleteCalls)

	_, err := l.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingDelete)
}

func TestList_DeleteInFlightGuards(t *testing.T) {
	l := NewList(twoPageBackend())
	require.True(t, l.RequestDelete("a1"))

	_, err := l.BeginDelete()
	require.NoError(t, err)
	_, err = l.BeginDelete()
	assert.ErrorIs(t, err, ErrDeleteInFlight)

	l.CancelDelete()
	id, pending := l.PendingDelete()
	assert.True(t, pending, "cancel is ignored while the request is in flight")
	assert.Equal(t, "a1", id)
}

// TestList_AgainstHTTPBackend runs the pagination scenario against the real
// client and a fake server.
func TestList_AgainstHTTPBackend(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		resp := api.ConversationPage{Page: page, Limit: 10}
		switch page {
		case 1:
			resp.Conversations = summaries("a", 10)
			resp.HasNext = true
		case 2:
			resp.Conversations = summaries("b", 3)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	l := NewList(api.New(srv.URL))
	ctx := context.Background()
	require.NoError(t, l.LoadNextPage(ctx))
	require.NoError(t, l.LoadNextPage(ctx))
	require.NoError(t, l.LoadNextPage(ctx))

	assert.Equal(t, 13, l.Len())
	assert.False(t, l.Pager().HasMore)
	assert.Equal(t, int32(2), calls.Load())
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversations

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/model"
)

// DefaultPageSize is the number of summaries requested per page.
const DefaultPageSize = 10

// Error variables for delete flow misuse.
var (
	// ErrNoPendingDelete is returned by ConfirmDelete with no pending target.
	ErrNoPendingDelete = errors.New("no delete pending")

	// ErrDeleteInFlight is returned while a delete request is outstanding.
	ErrDeleteInFlight = errors.New("delete already in progress")
)

// Lister fetches pages of conversation summaries.
type Lister interface {
	ListConversations(ctx context.Context, page, limit int) (*api.ConversationPage, error)
}

// Deleter deletes a conversation on the server.
type Deleter interface {
	DeleteConversation(ctx context.Context, id string) error
}

// Backend is the subset of *api.Client the list needs.
type Backend interface {
	Lister
	Deleter
}

// =============================================================================
// REQUESTS AND RESULTS
// =============================================================================

// PageRequest describes a page fetch started by BeginFirst or BeginNext.
type PageRequest struct {
	Page  int
	Limit int
	Reset bool

	gen uint64
}

// Fetch performs the request. It touches no List state and may run on any
// goroutine.
func (r PageRequest) Fetch(ctx context.Context, l Lister) PageResult {
	page, err := l.ListConversations(ctx, r.Page, r.Limit)
	return PageResult{Request: r, Page: page, Err: err}
}

// PageResult is the outcome of a PageRequest.
type PageResult struct {
	Request PageRequest
	Page    *api.ConversationPage
	Err     error
}

// DeleteRequest describes a confirmed delete.
type DeleteRequest struct {
	ID string
}

// Execute performs the delete.
func (r DeleteRequest) Execute(ctx context.Context, d Deleter) DeleteResult {
	return DeleteResult{ID: r.ID, Err: d.DeleteConversation(ctx, r.ID)}
}

// DeleteResult is the outcome of a DeleteRequest.
type DeleteResult struct {
	ID  string
	Err error
}

// =============================================================================
// LIST
// =============================================================================

// List is the in-memory conversation list. It is not safe for concurrent
// mutation; drive it from one goroutine.
type List struct {
	backend  Backend
	pageSize int
	logger   *log.Logger

	items []model.ConversationSummary
	pager Pager

	// gen identifies the latest first-page load. Results from older
	// generations are dropped.
	gen uint64

	pendingDelete string
	deleting      bool
}

// Option configures a List.
type Option func(*List)

// WithPageSize sets the page size.
func WithPageSize(n int) Option {
	return func(l *List) {
		if n > 0 {
			l.pageSize = n
		}
	}
}

// WithLogger sets the logger for read-path failures.
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		l.logger = logger
	}
}

// NewList creates an empty list over backend.
func NewList(backend Backend, opts ...Option) *List {
	l := &List{
		backend:  backend,
		pageSize: DefaultPageSize,
		logger:   log.Default(),
		pager:    NewPager(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Backend returns the backend the list talks to.
func (l *List) Backend() Backend {
	return l.backend
}

// Items returns a copy of the current summaries.
func (l *List) Items() []model.ConversationSummary {
	out := make([]model.ConversationSummary, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of summaries.
func (l *List) Len() int {
	return len(l.items)
}

// Pager returns the pagination cursor.
func (l *List) Pager() Pager {
	return l.pager
}

// Loading reports whether a page fetch is in flight.
func (l *List) Loading() bool {
	return l.pager.InFlight
}

// WantsMore combines ShouldLoadMore with the cursor state.
func (l *List) WantsMore(scrollTop, contentHeight, viewportHeight int) bool {
	return l.pager.HasMore && !l.pager.InFlight &&
		ShouldLoadMore(scrollTop, contentHeight, viewportHeight)
}

// BeginFirst starts a first-page load. It always succeeds and supersedes
// any fetch still in flight.
func (l *List) BeginFirst() PageRequest {
	var page int
	l.pager, page = l.pager.BeginFirst()
	l.gen++
	return PageRequest{Page: page, Limit: l.pageSize, Reset: true, gen: l.gen}
}

// BeginNext starts a next-page load. ok is false when nothing should be fetched.
func (l *List) BeginNext() (PageRequest, bool) {
	next, page, ok := l.pager.BeginNext()
	if !ok {
		return PageRequest{}, false
	}
	l.pager = next
	return PageRequest{Page: page, Limit: l.pageSize, gen: l.gen}, true
}

// Apply merges a fetch result. Superseded results are ignored. Failures
// leave the list untouched and are returned for logging.
func (l *List) Apply(res PageResult) error {
	if res.Request.gen != l.gen {
		return nil
	}
	if res.Err != nil {
		l.pager = l.pager.Fail()
		l.logger.Warn("failed to load conversations", "page", res.Request.Page, "err", res.Err)
		return res.Err
	}

	var fetched []model.ConversationSummary
	hasNext := false
	if res.Page != nil {
		fetched = res.Page.Conversations
		hasNext = res.Page.HasNext
	}

	if res.Request.Reset {
		l.items = append([]model.ConversationSummary(nil), fetched...)
	} else {
		l.items = append(l.items, fetched...)
	}
	l.pager = l.pager.Succeed(res.Request.Page, hasNext)
	return nil
}

// LoadFirstPage fetches page 1 and replaces the list.
func (l *List) LoadFirstPage(ctx context.Context) error {
	req := l.BeginFirst()
	return l.Apply(req.Fetch(ctx, l.backend))
}

// LoadNextPage fetches and appends the next page, if any.
func (l *List) LoadNextPage(ctx context.Context) error {
	req, ok := l.BeginNext()
	if !ok {
		return nil
	}
	return l.Apply(req.Fetch(ctx, l.backend))
}

// LoadAll pages until the server reports no more pages.
func (l *List) LoadAll(ctx context.Context) error {
	if err := l.LoadFirstPage(ctx); err != nil {
		return err
	}
	for l.pager.HasMore {
		before := l.Len()
		if err := l.LoadNextPage(ctx); err != nil {
			return err
		}
		if l.Len() == before {
			return nil
		}
	}
	return nil
}

// =============================================================================
// DELETE FLOW
// =============================================================================

// RequestDelete records id as the pending delete target. It returns false
// if another target is already pending or a delete is in flight.
func (l *List) RequestDelete(id string) bool {
	if l.pendingDelete != "" || l.deleting || id == "" {
		return false
	}
	l.pendingDelete = id
	return true
}

// PendingDelete returns the pending target, if any.
func (l *List) PendingDelete() (string, bool) {
	return l.pendingDelete, l.pendingDelete != ""
}

// Deleting reports whether a delete request is in flight.
func (l *List) Deleting() bool {
	return l.deleting
}

// CancelDelete clears the pending target without any network call. It is
// ignored while the delete request is in flight.
func (l *List) CancelDelete() {
	if l.deleting {
		return
	}
	l.pendingDelete = ""
}

// BeginDelete starts the confirmed delete of the pending target.
func (l *List) BeginDelete() (DeleteRequest, error) {
	if l.deleting {
		return DeleteRequest{}, ErrDeleteInFlight
	}
	if l.pendingDelete == "" {
		return DeleteRequest{}, ErrNoPendingDelete
	}
	l.deleting = true
	return DeleteRequest{ID: l.pendingDelete}, nil
}

// ApplyDelete merges a delete result. On success the entry is removed and
// the pending target cleared; on failure both remain and the error is returned.
func (l *List) ApplyDelete(res DeleteResult) error {
	l.deleting = false
	if res.Err != nil {
		l.logger.Error("failed to delete conversation", "id", res.ID, "err", res.Err)
		return res.Err
	}

	kept := l.items[:0:0]
	for _, c := range l.items {
		if c.ID != res.ID {
			kept = append(kept, c)
		}
	}
	l.items = kept
	if l.pendingDelete == res.ID {
		l.pendingDelete = ""
	}
	return nil
}

// ConfirmDelete deletes the pending target and returns its id.
func (l *List) ConfirmDelete(ctx context.Context) (string, error) {
	req, err := l.BeginDelete()
	if err != nil {
		return "", err
	}
	return req.ID, l.ApplyDelete(req.Execute(ctx, l.backend))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sidebar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/conversations"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/logging"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/ui/components"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeBackend struct {
	pages     map[int]*api.ConversationPage
	listErr   error
	deleteErr error
	requested []int
	deleted   []string
}

func (f *fakeBackend) ListConversations(_ context.Context, page, _ int) (*api.ConversationPage, error) {
	f.requested = append(f.requested, page)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if p, ok := f.pages[page]; ok {
		return p, nil
	}
	return &api.ConversationPage{Page: page}, nil
}

func (f *fakeBackend) DeleteConversation(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for _, p := range f.pages {
		kept := p.Conversations[:0:0]
		for _, c := range p.Conversations {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		p.Conversations = kept
	}
	return nil
}

func summary(id, text string, count int) model.ConversationSummary {
	return model.ConversationSummary{
		ID:                   id,
		LastMessage:          text,
		LastMessageTimestamp: model.Timestamp{Time: now.Add(-2 * time.Hour)},
		MessageCount:         count,
		LastRole:             model.RoleUser,
	}
}

func twoPages() *fakeBackend {
	return &fakeBackend{pages: map[int]*api.ConversationPage{
		1: {Page: 1, HasNext: true, Conversations: []model.ConversationSummary{
			summary("c1", "Who is speaking Tuesday?", 4),
			summary("c2", "Dinner options", 2),
		}},
		2: {Page: 2, Conversations: []model.ConversationSummary{
			summary("c3", "Badge pickup", 1),
		}},
	}}
}

func newModel(b *fakeBackend) *Model {
	list := conversations.NewList(b, conversations.WithPageSize(2), conversations.WithLogger(logging.Discard()))
	m := New(list, i18n.New("en"), styles.NewTheme(styles.ThemeDark),
		WithClock(func() time.Time { return now }),
		WithLogger(logging.Discard()),
	)
	m.SetSize(30, 40)
	return m
}

// run executes cmd and feeds internal messages back into m until none are
// left, returning the messages meant for other components.
func run(m *Model, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case pageLoadedMsg, deleteDoneMsg, components.ConfirmedMsg, components.CancelledMsg:
			queue = append(queue, m.Update(msg))
		case nil:
		default:
			out = append(out, msg)
		}
	}
	return out
}

func press(m *Model, keys ...string) []tea.Msg {
	var out []tea.Msg
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		out = append(out, run(m, m.Update(msg))...)
	}
	return out
}

func TestInit_FillsViewport(t *testing.T) {
	b := twoPages()
	m := newModel(b)

	run(m, m.Init())

	assert.Equal(t, []int{1, 2}, b.requested)
	assert.Equal(t, 3, m.List().Len())
	assert.False(t, m.List().Pager().HasMore)
}

func TestFocus_RefetchesFirstPage(t *testing.T) {
	b := twoPages()
	m := newModel(b)
	run(m, m.Init())

	b.pages[1].Conversations = append(b.pages[1].Conversations, summary("c9", "Fresh", 1))
	run(m, m.Focus())

	assert.True(t, m.Focused())
	assert.Equal(t, 1, b.requested[2])
	ids := []string{}
	for _, c := range m.List().Items() {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "c9")
}

func TestKeys_IgnoredWhenBlurred(t *testing.T) {
	m := newModel(twoPages())
	run(m, m.Init())

	out := press(m, "down", "enter")
	assert.Empty(t, out)
	assert.Equal(t, 0, m.Cursor())
}

func TestOpenConversation(t *testing.T) {
	m := newModel(twoPages())
	run(m, m.Focus())

	out := press(m, "down", "down", "enter")
	require.Len(t, out, 1)
	assert.Equal(t, SelectedMsg{ID: "c2"}, out[0])

	out = press(m, "up", "up", "enter")
	require.Len(t, out, 1)
	assert.Equal(t, NewConversationMsg{}, out[0])
}

func TestNewConversationKey(t *testing.T) {
	m := newModel(twoPages())
	run(m, m.Focus())
	press(m, "down")

	out := press(m, "n")
	require.Len(t, out, 1)
	assert.Equal(t, NewConversationMsg{}, out[0])
	assert.Equal(t, 0, m.Cursor())
}

func TestDelete_Confirmed(t *testing.T) {
	b := twoPages()
	m := newModel(b)
	run(m, m.Focus())
	m.SetActive("c1")

	press(m, "down", "d")
	require.True(t, m.Modal())
	id, ok := m.List().PendingDelete()
	require.True(t, ok)
	assert.Equal(t, "c1", id)

	out := press(m, "y")
	assert.Contains(t, out, DeletedMsg{ID: "c1"})
	assert.Contains(t, out, components.ToastMsg{Kind: components.ToastSuccess, Message: "Conversation deleted"})
	assert.False(t, m.Modal())
	assert.Equal(t, []string{"c1"}, b.deleted)
	assert.Equal(t, 2, m.List().Len())
	_, ok = m.List().PendingDelete()
	assert.False(t, ok)
}

func TestDelete_FailureKeepsDialog(t *testing.T) {
	b := twoPages()
	b.deleteErr = &api.Error{Status: 500, Message: "database locked"}
	m := newModel(b)
	run(m, m.Focus())

	press(m, "down", "d", "y")
	require.True(t, m.Modal())
	assert.Equal(t, "Failed to delete conversation: database locked", m.Dialog().Error)
	assert.False(t, m.Dialog().Busy)
	assert.Equal(t, 3, m.List().Len())

	out := press(m, "esc")
	assert.Empty(t, out)
	assert.False(t, m.Modal())
	_, ok := m.List().PendingDelete()
	assert.False(t, ok)
}

func TestDelete_NewRowIgnored(t *testing.T) {
	m := newModel(twoPages())
	run(m, m.Focus())

	press(m, "d")
	assert.False(t, m.Modal())
}

func TestView(t *testing.T) {
	m := newModel(twoPages())
	run(m, m.Focus())

	view := m.View()
	assert.Contains(t, view, "Conversations")
	assert.Contains(t, view, "New conversation")
	assert.Contains(t, view, "Dinner options")
	assert.Contains(t, view, "2 hours ago")
	assert.Contains(t, view, "4 messages")
	assert.Contains(t, view, "1 message")
}

func TestView_LoadFailed(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		toast string
	}{
		{"server error", &api.Error{Status: 500, Detail: "db down"}, "Could not load conversations"},
		{"unreachable", fmt.Errorf("%w: dial: %w", api.ErrTransport, errors.New("refused")), "Cannot reach the server. Check your connection and try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(&fakeBackend{listErr: tt.err})
			out := run(m, m.Init())

			assert.Contains(t, out, components.ToastMsg{Kind: components.ToastError, Message: tt.toast})
			assert.Contains(t, m.View(), "Could not load conversations")
			assert.Equal(t, 0, m.List().Len())
		})
	}
}

func TestView_Empty(t *testing.T) {
	m := newModel(&fakeBackend{})
	run(m, m.Init())

	assert.Contains(t, m.View(), "No conversations yet")
}

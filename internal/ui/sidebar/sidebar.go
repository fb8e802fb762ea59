// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sidebar is the conversation list panel. It pages summaries in as
// the cursor nears the bottom and owns the delete confirmation dialog.
package sidebar

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/conversations"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/ui/components"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// DefaultRequestTimeout bounds each list or delete request.
const DefaultRequestTimeout = 30 * time.Second

// rowHeight is the number of lines a conversation row takes.
const rowHeight = 2

// =============================================================================
// MESSAGES
// =============================================================================

// SelectedMsg asks the chat panel to open a conversation.
type SelectedMsg struct {
	ID string
}

// NewConversationMsg asks the chat panel to start over.
type NewConversationMsg struct{}

// DeletedMsg reports a conversation removed on the server.
type DeletedMsg struct {
	ID string
}

type pageLoadedMsg struct {
	res conversations.PageResult
}

type deleteDoneMsg struct {
	res conversations.DeleteResult
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the sidebar panel.
type Model struct {
	list    *conversations.List
	printer *i18n.Printer
	theme   *styles.Theme
	keys    KeyMap
	confirm *components.ConfirmDialog
	logger  *log.Logger

	timeout time.Duration
	now     func() time.Time

	// cursor 0 is the "new conversation" row; i+1 is list item i.
	cursor   int
	offset   int
	activeID string
	loadErr  bool

	focused bool
	width   int
	height  int
}

// Option configures a Model.
type Option func(*Model)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithClock overrides the clock used for relative times.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates a sidebar over list.
func New(list *conversations.List, printer *i18n.Printer, theme *styles.Theme, opts ...Option) *Model {
	m := &Model{
		list:    list,
		printer: printer,
		theme:   theme,
		keys:    DefaultKeyMap(),
		confirm: components.NewConfirmDialog(theme),
		logger:  log.Default(),
		timeout: DefaultRequestTimeout,
		now:     time.Now,
		width:   30,
		height:  20,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.confirm.ConfirmLabel = printer.T(i18n.SidebarDeleteConfirm)
	m.confirm.CancelLabel = printer.T(i18n.SidebarCancel)
	return m
}

// Init loads the first page.
func (m *Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads from page 1.
func (m *Model) Refresh() tea.Cmd {
	return m.fetch(m.list.BeginFirst())
}

// Focus gives the sidebar keyboard focus and refreshes it.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.Refresh()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the sidebar has focus.
func (m *Model) Focused() bool {
	return m.focused
}

// SetActive marks the conversation shown in the chat panel.
func (m *Model) SetActive(id string) {
	m.activeID = id
}

// SetSize sets the panel size including borders.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Keys returns the key map, for status bar hints.
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Dialog returns the delete confirmation dialog.
func (m *Model) Dialog() *components.ConfirmDialog {
	return m.confirm
}

// Modal reports whether the confirmation dialog is open.
func (m *Model) Modal() bool {
	return m.confirm.IsVisible()
}

// List returns the underlying conversation list.
func (m *Model) List() *conversations.List {
	return m.list
}

// Cursor returns the cursor row. 0 is the "new conversation" row.
func (m *Model) Cursor() int {
	return m.cursor
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles sidebar messages. Keys are only handled while focused or
// while the dialog is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if cmd, handled := m.confirm.Update(msg); handled {
		return cmd
	}

	switch msg := msg.(type) {
	case pageLoadedMsg:
		return m.applyPage(msg.res)

	case deleteDoneMsg:
		return m.applyDelete(msg.res)

	case components.ConfirmedMsg:
		req, err := m.list.BeginDelete()
		if err != nil {
			m.logger.Debug("delete not started", "err", err)
			m.confirm.Hide()
			return nil
		}
		return m.delete(req)

	case components.CancelledMsg:
		m.list.CancelDelete()
		return nil

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureVisible()
		return nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len() {
			m.cursor++
		}
		m.ensureVisible()
		return m.maybeLoadMore()

	case key.Matches(msg, m.keys.Open):
		if m.cursor == 0 {
			return m.newConversation()
		}
		id := m.list.Items()[m.cursor-1].ID
		m.activeID = id
		return func() tea.Msg { return SelectedMsg{ID: id} }

	case key.Matches(msg, m.keys.New):
		return m.newConversation()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor == 0 {
			return nil
		}
		id := m.list.Items()[m.cursor-1].ID
		if m.list.RequestDelete(id) {
			m.confirm.Show(id, m.printer.T(i18n.SidebarDeleteTitle), m.printer.T(i18n.SidebarDeleteBody))
		}
		return nil

	case key.Matches(msg, m.keys.Refresh):
		return m.Refresh()
	}
	return nil
}

func (m *Model) newConversation() tea.Cmd {
	m.activeID = ""
	m.cursor = 0
	m.ensureVisible()
	return func() tea.Msg { return NewConversationMsg{} }
}

func (m *Model) applyPage(res conversations.PageResult) tea.Cmd {
	if err := m.list.Apply(res); err != nil {
		m.loadErr = true
		return components.FailureToast(m.printer, i18n.SidebarLoadFailed, err)
	}
	m.loadErr = false
	m.clampCursor()
	return m.maybeLoadMore()
}

func (m *Model) applyDelete(res conversations.DeleteResult) tea.Cmd {
	if err := m.list.ApplyDelete(res); err != nil {
		detail := api.ServerMessage(err)
		if detail == "" {
			detail = err.Error()
		}
		m.confirm.Busy = false
		m.confirm.Error = m.printer.T(i18n.SidebarDeleteFailed, detail)
		return nil
	}
	m.confirm.Hide()
	m.clampCursor()
	if m.activeID == res.ID {
		m.activeID = ""
	}
	id := res.ID
	return tea.Batch(
		func() tea.Msg { return DeletedMsg{ID: id} },
		components.ShowToast(components.ToastSuccess, m.printer.T(i18n.SidebarDeleted)),
		m.maybeLoadMore(),
	)
}

// maybeLoadMore requests the next page when the visible window is within
// one and a half viewports of the end of the loaded rows.
func (m *Model) maybeLoadMore() tea.Cmd {
	viewport := m.listHeight()
	if !m.list.WantsMore(m.offset*rowHeight, m.list.Len()*rowHeight, viewport) {
		return nil
	}
	req, ok := m.list.BeginNext()
	if !ok {
		return nil
	}
	return m.fetch(req)
}

func (m *Model) fetch(req conversations.PageRequest) tea.Cmd {
	backend := m.list.Backend()
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return pageLoadedMsg{res: req.Fetch(ctx, backend)}
	}
}

func (m *Model) delete(req conversations.DeleteRequest) tea.Cmd {
	backend := m.list.Backend()
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return deleteDoneMsg{res: req.Execute(ctx, backend)}
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

// listHeight is the number of lines available for conversation rows: the
// panel minus borders, title and the "new conversation" row.
func (m *Model) listHeight() int {
	h := m.height - 2 - 2 - 1
	if h < rowHeight {
		h = rowHeight
	}
	return h
}

func (m *Model) visibleRows() int {
	return m.listHeight() / rowHeight
}

func (m *Model) clampCursor() {
	if m.cursor > m.list.Len() {
		m.cursor = m.list.Len()
	}
	m.ensureVisible()
}

// ensureVisible scrolls so the cursor row is on screen.
func (m *Model) ensureVisible() {
	if m.cursor == 0 {
		m.offset = 0
		return
	}
	item := m.cursor - 1
	rows := m.visibleRows()
	if item < m.offset {
		m.offset = item
	} else if item >= m.offset+rows {
		m.offset = item - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the panel.
func (m *Model) View() string {
	inner := m.width - 4
	if inner < 8 {
		inner = 8
	}

	var b strings.Builder
	b.WriteString(m.theme.SidebarTitle.Render(m.printer.T(i18n.SidebarTitle)))
	b.WriteString("\n\n")

	newRow := "+ " + m.printer.T(i18n.SidebarNewChat)
	if m.cursor == 0 && m.focused {
		b.WriteString(m.theme.SessionSelected.Width(inner).Render(util.Truncate(newRow, inner)))
	} else {
		b.WriteString(m.theme.NewChatButton.Render(util.Truncate(newRow, inner)))
	}
	b.WriteString("\n")

	items := m.list.Items()
	switch {
	case len(items) == 0 && m.list.Loading():
		b.WriteString(m.theme.SessionMeta.Render(m.printer.T(i18n.SidebarLoading)))
	case len(items) == 0 && m.loadErr:
		b.WriteString(styles.RenderError(util.Truncate(m.printer.T(i18n.SidebarLoadFailed), inner-4)))
	case len(items) == 0:
		b.WriteString(m.theme.SessionMeta.Render(m.printer.T(i18n.SidebarEmpty)))
	default:
		now := m.now()
		end := m.offset + m.visibleRows()
		if end > len(items) {
			end = len(items)
		}
		for i := m.offset; i < end; i++ {
			c := items[i]
			title := util.Preview(c.Title(), inner)
			meta := m.printer.RelativeTime(c.LastMessageTimestamp.Time, now) +
				" · " + m.printer.T(i18n.SidebarMessages, c.MessageCount)
			row := title + "\n" + m.theme.SessionMeta.Render(util.Truncate(meta, inner))

			style := m.theme.SessionItem
			switch {
			case m.focused && m.cursor == i+1:
				style = m.theme.SessionSelected
			case c.ID == m.activeID:
				style = m.theme.SessionActive
			}
			b.WriteString("\n")
			b.WriteString(style.Width(inner).Render(row))
		}
		if m.list.Loading() {
			b.WriteString("\n")
			b.WriteString(m.theme.SessionMeta.Render(m.printer.T(i18n.SidebarLoading)))
		}
	}

	frame := m.theme.Sidebar
	if m.focused {
		frame = m.theme.SidebarFocused
	}
	return frame.Width(m.width - 2).Height(m.height - 2).Render(b.String())
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/render"
	"github.com/jeranaias/concierge-tui/internal/session"
	"github.com/jeranaias/concierge-tui/internal/ui/components"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

// Defaults for zero Options fields.
const (
	DefaultRequestTimeout     = 60 * time.Second
	DefaultTranscriptPageSize = 100
	maxInputLength            = 4096
)

// Backend is the subset of *api.Client the chat panel needs.
type Backend interface {
	session.Sender
	session.TranscriptFetcher
}

// =============================================================================
// MESSAGES
// =============================================================================

// ConversationAdoptedMsg reports that the first reply of a new conversation
// assigned it an id.
type ConversationAdoptedMsg struct {
	ID string
}

type sendDoneMsg struct {
	res session.SendResult
}

type historyLoadedMsg struct {
	res session.HistoryResult
}

// statusTickMsg advances the status phrase. gen guards against ticks armed
// for an earlier send.
type statusTickMsg struct {
	gen uint64
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures the chat panel.
type Options struct {
	// Timeout bounds each send or transcript request
	Timeout time.Duration
	// TranscriptPageSize is the page size for transcript loads
	TranscriptPageSize int
	// StatusInterval is how long each status phrase is shown
	StatusInterval time.Duration
	// ShowTimestamps adds relative times under messages
	ShowTimestamps bool
	// WordWrap fixes the markdown wrap width (0 = panel width)
	WordWrap int
	// Hyperlinks wraps reference glyphs in OSC 8 links
	Hyperlinks bool
	// ASCIIGlyphs uses [doc], [event], [person] instead of emoji
	ASCIIGlyphs bool
	// MarkdownStyle is the glamour style name; resolved before the program starts
	MarkdownStyle string
	// UserName is the onboarded display name, used in the greeting
	UserName string

	Logger *log.Logger
	Now    func() time.Time
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat panel.
type Model struct {
	session *session.Session
	backend Backend
	printer *i18n.Printer
	theme   *styles.Theme
	opts    Options
	logger  *log.Logger

	// Rendering
	renderer    *render.Renderer
	renderWidth int

	// UI Components
	viewport    viewport.Model
	input       textinput.Model
	spinner     spinner.Model
	header      *components.Header
	suggestions *components.SuggestionList

	keys KeyMap

	// Status phrase rotation while a reply is pending
	status    session.StatusRotator
	statusGen uint64

	focused bool
	width   int
	height  int
}

// New creates a chat panel in the Empty state.
func New(backend Backend, printer *i18n.Printer, theme *styles.Theme, opts Options) Model {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultRequestTimeout
	}
	if opts.TranscriptPageSize <= 0 {
		opts.TranscriptPageSize = DefaultTranscriptPageSize
	}
	if opts.StatusInterval <= 0 {
		opts.StatusInterval = session.DefaultStatusInterval
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = render.StyleFor(theme.IsDark)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.Placeholder = printer.T(i18n.ChatPlaceholder)
	ti.CharLimit = maxInputLength

	sp := spinner.New()
	sp.Spinner = styles.LineSpinner.Bubble()
	sp.Style = theme.Spinner

	m := Model{
		session:     session.New(printer.T(i18n.ChatError)),
		backend:     backend,
		printer:     printer,
		theme:       theme,
		opts:        opts,
		logger:      opts.Logger,
		viewport:    viewport.New(80, 20),
		input:       ti,
		spinner:     sp,
		header:      components.NewHeader(theme),
		suggestions: components.NewSuggestionList(theme, printer.T(i18n.ChatSuggestions), printer.Suggestions()),
		keys:        DefaultKeyMap(),
		status:      session.NewStatusRotator(printer.StatusPhrases()),
		width:       80,
		height:      24,
	}
	m.SetSize(m.width, m.height)
	return m
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Session returns the underlying session.
func (m Model) Session() *session.Session {
	return m.session
}

// ConversationID returns the open conversation, empty for a new one.
func (m Model) ConversationID() string {
	return m.session.ConversationID
}

// State returns the session state.
func (m Model) State() session.State {
	return m.session.State
}

// Keys returns the key map, for status bar hints.
func (m Model) Keys() KeyMap {
	return m.keys
}

// Status returns the current status phrase, empty when idle.
func (m Model) Status() string {
	if !m.status.Active() {
		return ""
	}
	return m.status.Current()
}

// InputValue returns the text in the input field.
func (m Model) InputValue() string {
	return m.input.Value()
}

// Focused reports whether the panel has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// =============================================================================
// MUTATORS
// =============================================================================

// Focus gives the panel keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.session.CanSubmit() {
		return m.input.Focus()
	}
	return nil
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// SetSize sets the panel size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.input.Width = width - 8
	if m.input.Width < 10 {
		m.input.Width = 10
	}

	chrome := 1 + 1 + 3 // header, status line, bordered input
	vpHeight := height - chrome
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.ensureRenderer()
	m.refresh(true)
}

// SetPrinter switches the UI locale.
func (m *Model) SetPrinter(p *i18n.Printer) {
	m.printer = p
	m.session.SetFallback(p.T(i18n.ChatError))
	m.input.Placeholder = p.T(i18n.ChatPlaceholder)
	m.suggestions.SetItems(p.T(i18n.ChatSuggestions), p.Suggestions())
	active := m.status.Active()
	m.status = session.NewStatusRotator(p.StatusPhrases())
	if active {
		m.status = m.status.Start()
	}
	m.refresh(false)
}

// SetShowTimestamps toggles relative times under messages.
func (m *Model) SetShowTimestamps(show bool) {
	m.opts.ShowTimestamps = show
	m.refresh(false)
}

// SetUserName sets the name used in the greeting.
func (m *Model) SetUserName(name string) {
	m.opts.UserName = name
	m.refresh(false)
}

// Select opens conversation id and loads its transcript.
func (m *Model) Select(id string) tea.Cmd {
	req := m.session.Select(id)
	m.stopStatus()
	m.input.Blur()
	m.header.SetSubtitle("")
	m.refresh(true)

	backend, limit, timeout := m.backend, m.opts.TranscriptPageSize, m.opts.Timeout
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return historyLoadedMsg{res: req.Execute(ctx, backend, limit)}
	}
	return tea.Batch(load, m.spinner.Tick)
}

// Reset starts a new conversation. Pending results for the old one are
// dropped when they arrive.
func (m *Model) Reset() tea.Cmd {
	m.session.Reset()
	m.stopStatus()
	m.header.SetSubtitle("")
	m.suggestions.SetItems(m.printer.T(i18n.ChatSuggestions), m.printer.Suggestions())
	m.refresh(true)
	if m.focused {
		return m.input.Focus()
	}
	return nil
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init returns the cursor blink command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		out := m.session.ApplyHistory(msg.res)
		if !out.Applied {
			return m, nil
		}
		var toast tea.Cmd
		if out.Err != nil {
			m.logger.Warn("failed to load transcript", "id", msg.res.ConversationID, "err", out.Err)
			toast = components.FailureToast(m.printer, i18n.ChatHistoryFailed, out.Err)
		}
		m.updateSubtitle()
		m.refresh(true)
		if m.focused {
			return m, tea.Batch(toast, m.input.Focus())
		}
		return m, toast

	case sendDoneMsg:
		out := m.session.ApplySend(msg.res)
		if !out.Applied {
			return m, nil
		}
		m.stopStatus()
		if out.Err != nil {
			m.logger.Error("send failed", "id", m.session.ConversationID, "err", out.Err)
		}
		m.updateSubtitle()
		m.refresh(true)

		var cmds []tea.Cmd
		if m.focused {
			cmds = append(cmds, m.input.Focus())
		}
		if out.Adopted {
			id := m.session.ConversationID
			cmds = append(cmds, func() tea.Msg { return ConversationAdoptedMsg{ID: id} })
		}
		return m, tea.Batch(cmds...)

	case statusTickMsg:
		if msg.gen != m.statusGen || !m.status.Active() {
			return m, nil
		}
		m.status = m.status.Advance()
		return m, m.statusTick()

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.focused && m.session.CanSubmit() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	showingSuggestions := m.session.State == session.StateEmpty && strings.TrimSpace(m.input.Value()) == ""

	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		if strings.TrimSpace(text) == "" && showingSuggestions {
			text, _ = m.suggestions.Selected()
		}
		return m, m.submit(text)

	case showingSuggestions && key.Matches(msg, m.keys.NextSuggestion):
		m.suggestions.Next()
		m.refresh(false)
		return m, nil

	case showingSuggestions && key.Matches(msg, m.keys.PrevSuggestion):
		m.suggestions.Prev()
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	if !m.session.CanSubmit() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit appends text as a user message and starts the send.
func (m *Model) submit(text string) tea.Cmd {
	req, ok := m.session.Submit(text)
	if !ok {
		return nil
	}
	m.input.Reset()
	m.input.Blur()
	m.status = m.status.Start()
	m.statusGen++
	m.updateSubtitle()
	m.refresh(true)

	backend, timeout := m.backend, m.opts.Timeout
	send := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return sendDoneMsg{res: req.Execute(ctx, backend)}
	}
	return tea.Batch(send, m.statusTick(), m.spinner.Tick)
}

func (m *Model) statusTick() tea.Cmd {
	gen := m.statusGen
	return tea.Tick(m.opts.StatusInterval, func(time.Time) tea.Msg {
		return statusTickMsg{gen: gen}
	})
}

func (m *Model) stopStatus() {
	m.status = m.status.Stop()
	m.statusGen++
}

func (m Model) busy() bool {
	return m.session.State == session.StateSending || m.session.State == session.StateLoadingHistory
}

// updateSubtitle shows the first user message as the conversation title.
func (m *Model) updateSubtitle() {
	for _, msg := range m.session.Messages {
		if msg.Role == model.RoleUser {
			m.header.SetSubtitle(msg.Content)
			return
		}
	}
	m.header.SetSubtitle("")
}

// ensureRenderer rebuilds the markdown renderer when the wrap width changes.
func (m *Model) ensureRenderer() {
	width := m.opts.WordWrap
	if width <= 0 {
		width = m.width - 8
	}
	if width < 20 {
		width = 20
	}
	if m.renderer != nil && width == m.renderWidth {
		return
	}

	glyphs := render.UnicodeGlyphs
	if m.opts.ASCIIGlyphs {
		glyphs = render.ASCIIGlyphs
	}
	m.renderer = render.New(
		render.WithWidth(width),
		render.WithStyle(m.opts.MarkdownStyle),
		render.WithGlyphs(glyphs),
		render.WithHyperlinks(m.opts.Hyperlinks),
	)
	m.renderWidth = width
}

// refresh re-renders the transcript into the viewport.
func (m *Model) refresh(toBottom bool) {
	m.viewport.SetContent(m.renderContent())
	if toBottom {
		m.viewport.GotoBottom()
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model. It shows the onboarding form
// until the profile gate is passed, then the sidebar and chat panels, and
// routes messages between them.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jeranaias/concierge-tui/internal/config"
	"github.com/jeranaias/concierge-tui/internal/conversations"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	gate "github.com/jeranaias/concierge-tui/internal/onboarding"
	"github.com/jeranaias/concierge-tui/internal/ui/chat"
	"github.com/jeranaias/concierge-tui/internal/ui/components"
	onboardview "github.com/jeranaias/concierge-tui/internal/ui/onboarding"
	"github.com/jeranaias/concierge-tui/internal/ui/sidebar"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// State is the top-level screen.
type State int

const (
	StateOnboarding State = iota
	StateMain
)

// Focus is the panel receiving keys on the main screen.
type Focus int

const (
	FocusChat Focus = iota
	FocusSidebar
)

// Backend is everything the panels need from the API client.
type Backend interface {
	conversations.Backend
	chat.Backend
}

// Deps are the collaborators of the root model.
type Deps struct {
	Backend Backend
	Gate    onboardview.Submitter
	Printer *i18n.Printer
	Theme   *styles.Theme

	// Onboarded is the persisted gate state read at startup.
	Onboarded gate.State

	PageSize int
	Chat     chat.Options

	// Reloads delivers configs re-read by a config.Watcher. May be nil.
	Reloads <-chan *config.Config

	Logger *log.Logger
}

// configReloadedMsg carries a config read from disk after startup.
type configReloadedMsg struct {
	cfg *config.Config
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the root model.
type Model struct {
	deps    Deps
	theme   *styles.Theme
	printer *i18n.Printer
	logger  *log.Logger
	keys    KeyMap

	state State
	focus Focus

	onboarding *onboardview.Model
	sidebar    *sidebar.Model
	chat       chat.Model
	statusBar  *components.StatusBar
	toasts     *components.ToastStack

	width  int
	height int
}

// New creates the root model.
func New(deps Deps) *Model {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Chat.Logger == nil {
		deps.Chat.Logger = deps.Logger
	}
	deps.Chat.UserName = deps.Onboarded.DisplayName

	list := conversations.NewList(deps.Backend,
		conversations.WithPageSize(deps.PageSize),
		conversations.WithLogger(deps.Logger),
	)
	sbOpts := []sidebar.Option{sidebar.WithLogger(deps.Logger)}
	if deps.Chat.Timeout > 0 {
		sbOpts = append(sbOpts, sidebar.WithTimeout(deps.Chat.Timeout))
	}
	if deps.Chat.Now != nil {
		sbOpts = append(sbOpts, sidebar.WithClock(deps.Chat.Now))
	}

	m := &Model{
		deps:       deps,
		theme:      deps.Theme,
		printer:    deps.Printer,
		logger:     deps.Logger,
		keys:       DefaultKeyMap(),
		onboarding: onboardview.New(deps.Gate, deps.Printer, deps.Theme),
		sidebar:    sidebar.New(list, deps.Printer, deps.Theme, sbOpts...),
		chat:       chat.New(deps.Backend, deps.Printer, deps.Theme, deps.Chat),
		statusBar:  components.NewStatusBar(deps.Theme),
		toasts:     components.NewToastStack(),
		width:      80,
		height:     24,
	}
	if deps.Chat.Timeout > 0 {
		m.onboarding.SetTimeout(deps.Chat.Timeout)
	}
	if deps.Onboarded.Complete {
		m.state = StateMain
	}
	return m
}

// State returns the current screen.
func (m *Model) State() State {
	return m.state
}

// Focus returns the focused panel.
func (m *Model) Focus() Focus {
	return m.focus
}

// Chat returns the chat panel.
func (m *Model) Chat() chat.Model {
	return m.chat
}

// Toasts returns the visible toasts.
func (m *Model) Toasts() *components.ToastStack {
	return m.toasts
}

// Sidebar returns the sidebar panel.
func (m *Model) Sidebar() *sidebar.Model {
	return m.sidebar
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the first screen.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForReload()}
	if m.state == StateOnboarding {
		cmds = append(cmds, m.onboarding.Init())
	} else {
		cmds = append(cmds, m.enterMain())
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the active screen and between panels.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, m.waitForReload()

	case components.ToastMsg:
		return m, m.toasts.Push(msg)

	case components.ToastExpiredMsg:
		m.toasts.Dismiss(msg.ID)
		return m, nil

	case onboardview.CompletedMsg:
		m.state = StateMain
		m.chat.SetUserName(msg.State.DisplayName)
		m.statusBar.SetMessage(m.printer.T(i18n.OnboardingWelcome, gate.FirstName(msg.State.DisplayName)))
		return m, m.enterMain()

	case sidebar.SelectedMsg:
		m.sidebar.SetActive(msg.ID)
		m.statusBar.Clear()
		cmd := m.chat.Select(msg.ID)
		return m, tea.Batch(cmd, m.setFocus(FocusChat))

	case sidebar.NewConversationMsg:
		m.sidebar.SetActive("")
		m.statusBar.Clear()
		cmd := m.chat.Reset()
		return m, tea.Batch(cmd, m.setFocus(FocusChat))

	case sidebar.DeletedMsg:
		if msg.ID == m.chat.ConversationID() {
			return m, m.chat.Reset()
		}
		return m, nil

	case chat.ConversationAdoptedMsg:
		m.sidebar.SetActive(msg.ID)
		return m, m.sidebar.Refresh()
	}

	if m.state == StateOnboarding {
		return m, m.onboarding.Update(msg)
	}

	// Panel-internal messages go to both panels; each ignores the other's.
	sbCmd := m.sidebar.Update(msg)
	var chatCmd tea.Cmd
	m.chat, chatCmd = m.chat.Update(msg)
	return m, tea.Batch(sbCmd, chatCmd)
}

// handleKeyPress handles global keys, then forwards to the focused screen.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.state == StateOnboarding {
		return m, m.onboarding.Update(msg)
	}

	// The delete dialog is modal.
	if m.sidebar.Modal() {
		return m, m.sidebar.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == FocusChat && m.theme.SidebarWidth() > 0 {
			return m, m.setFocus(FocusSidebar)
		}
		return m, m.setFocus(FocusChat)

	case key.Matches(msg, m.keys.NewConversation):
		m.sidebar.SetActive("")
		return m, tea.Batch(m.chat.Reset(), m.setFocus(FocusChat))

	case m.focus == FocusSidebar && key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case m.focus == FocusSidebar && key.Matches(msg, m.keys.Back):
		return m, m.setFocus(FocusChat)
	}

	if m.focus == FocusSidebar {
		return m, m.sidebar.Update(msg)
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// enterMain shows the main screen with the chat focused and loads the list.
func (m *Model) enterMain() tea.Cmd {
	m.resize(m.width, m.height)
	return tea.Batch(m.sidebar.Init(), m.setFocus(FocusChat), m.chat.Init())
}

// setFocus moves keyboard focus. Focusing the sidebar refreshes it.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusSidebar {
		m.chat.Blur()
		return m.sidebar.Focus()
	}
	m.sidebar.Blur()
	return m.chat.Focus()
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.onboarding.SetSize(width, height)
	m.statusBar.SetWidth(width)

	body := height - 1
	sw := m.theme.SidebarWidth()
	if sw == 0 && m.focus == FocusSidebar {
		m.setFocus(FocusChat)
	}
	m.sidebar.SetSize(sw, body)
	m.sidebar.Dialog().SetSize(width, height)
	m.chat.SetSize(width-sw, body)
}

// applyConfig applies the settings that can change while running.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if m.printer.Tag() != i18n.Match(cfg.UI.Locale) {
		m.printer = i18n.New(cfg.UI.Locale)
		m.chat.SetPrinter(m.printer)
		m.logger.Info("locale changed", "locale", m.printer.Tag())
	}
	m.chat.SetShowTimestamps(cfg.UI.ShowTimestamps)
}

// waitForReload blocks on the next config reload.
func (m *Model) waitForReload() tea.Cmd {
	ch := m.deps.Reloads
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the active screen.
func (m *Model) View() string {
	if m.state == StateOnboarding {
		return m.onboarding.View()
	}
	if m.sidebar.Modal() {
		return m.sidebar.Dialog().View()
	}

	var body string
	if m.theme.SidebarWidth() > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.chat.View())
	} else {
		body = m.chat.View()
	}

	m.statusBar.Toast = nil
	if t, ok := m.toasts.Latest(); ok {
		m.statusBar.Toast = &t
	}
	if m.focus == FocusSidebar {
		m.statusBar.Hints = append(m.sidebar.Keys().ShortHelp(), m.keys.SwitchFocus, m.keys.Quit)
	} else {
		m.statusBar.Hints = append(m.chat.Keys().ShortHelp(), m.keys.SwitchFocus, m.keys.NewConversation)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.View())
}

// Run starts the TUI and blocks until it exits.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

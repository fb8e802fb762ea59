// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/onboarding"
	"github.com/jeranaias/concierge-tui/internal/session"
	"github.com/jeranaias/concierge-tui/internal/ui/components"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat panel.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.viewport.View(),
		m.renderStatusLine(),
		m.renderInput(),
	)
}

// renderContent renders the transcript, or the welcome screen when empty.
func (m *Model) renderContent() string {
	if m.session.State == session.StateEmpty && len(m.session.Messages) == 0 {
		return m.renderEmptyState()
	}

	parts := make([]string, 0, len(m.session.Messages))
	for i := range m.session.Messages {
		parts = append(parts, m.renderMessage(&m.session.Messages[i]))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderMessage(msg *model.Message) string {
	bubble := components.NewMessageBubble(msg, m.theme, m.renderer)
	bubble.Width = m.width
	bubble.Timestamp = m.timestamp(msg)
	return bubble.View()
}

func (m *Model) timestamp(msg *model.Message) string {
	if !m.opts.ShowTimestamps || msg.CreatedAt.IsZero() {
		return ""
	}
	return m.printer.RelativeTime(msg.CreatedAt, m.opts.Now())
}

// renderEmptyState renders the greeting and starter prompts.
func (m *Model) renderEmptyState() string {
	greeting := m.printer.T(i18n.ChatWelcome)
	if first := onboarding.FirstName(m.opts.UserName); first != "" {
		greeting = m.printer.T(i18n.ChatWelcomeName, first)
	}

	title := m.theme.HeaderTitle.Render(greeting)
	// Greeting, blank line and the suggestion title.
	rows := (m.viewport.Height - 3) / 3
	if rows < 1 {
		rows = 1
	}
	width := m.width - 4
	if width > 72 {
		width = 72
	}
	list := m.suggestions.View(width, rows)
	return lipgloss.NewStyle().MarginLeft(2).Render(title + "\n\n" + list)
}

// renderStatusLine renders the spinner line while busy.
func (m Model) renderStatusLine() string {
	switch m.session.State {
	case session.StateSending:
		return " " + m.spinner.View() + " " + m.theme.ThinkingText.Render(m.status.Current())
	case session.StateLoadingHistory:
		return " " + m.spinner.View() + " " + m.theme.ThinkingText.Render(m.printer.T(i18n.ChatLoadingHistory))
	}
	return ""
}

// renderInput renders the bordered input box, dimmed while disabled.
func (m Model) renderInput() string {
	style := m.theme.InputContainer
	if !m.session.CanSubmit() {
		style = m.theme.InputDisabled
	}
	if m.focused && m.session.CanSubmit() {
		style = style.BorderForeground(styles.Cyan)
	}
	return style.Width(m.width - 2).Render(m.input.View())
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/render"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one transcript message.
type MessageBubble struct {
	Message *model.Message
	Width   int

	// Timestamp is the pre-formatted time label. Empty hides it.
	Timestamp string

	theme    *styles.Theme
	renderer *render.Renderer
}

// NewMessageBubble creates a bubble for msg. renderer turns assistant
// content and its references into terminal text.
func NewMessageBubble(msg *model.Message, theme *styles.Theme, renderer *render.Renderer) *MessageBubble {
	if msg == nil {
		msg = &model.Message{Role: model.RoleSystem}
	}
	return &MessageBubble{
		Message:  msg,
		Width:    80,
		theme:    theme,
		renderer: renderer,
	}
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	switch {
	case b.Message.Synthetic:
		return b.renderErrorBubble()
	case b.Message.IsUser():
		return b.renderUserBubble()
	case b.Message.IsAssistant():
		return b.renderAssistantBubble()
	default:
		return b.renderSystemBubble()
	}
}

// ==========================================================================
// USER BUBBLE - right-aligned
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	text := util.Wrap(b.Message.Content, b.maxWidth()-4)
	lines := []string{b.theme.UserBubble.Render(text)}
	if b.Timestamp != "" {
		lines = append(lines, b.theme.Timestamp.Render(b.Timestamp))
	}
	block := lipgloss.JoinVertical(lipgloss.Right, lines...)
	return lipgloss.NewStyle().MarginTop(1).Render(
		lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, block))
}

// ==========================================================================
// ASSISTANT BUBBLE - left-aligned, references as glyphs
// ==========================================================================

func (b *MessageBubble) renderAssistantBubble() string {
	body := b.Message.Content
	if b.renderer != nil {
		body = b.renderer.Render(b.Message.Content, b.Message.References)
	}
	return lipgloss.NewStyle().MarginTop(1).MarginLeft(1).Render(
		b.header() + "\n" + b.theme.AssistantBubble.MaxWidth(b.Width-2).Render(body))
}

// ==========================================================================
// ERROR BUBBLE - synthetic send failures
// ==========================================================================

func (b *MessageBubble) renderErrorBubble() string {
	text := util.Wrap(b.Message.Content, b.maxWidth()-4)
	return lipgloss.NewStyle().MarginTop(1).MarginLeft(1).Render(
		b.theme.RoleLabel.Render(b.Message.Role.DisplayName()) + "\n" +
			b.theme.ErrorBubble.Render(styles.StatusIndicators.Error+" "+text))
}

// ==========================================================================
// SYSTEM BUBBLE - centered, muted
// ==========================================================================

// renderSystemBubble covers system and developer messages that come back in
// a stored transcript. They are shown as plain text.
func (b *MessageBubble) renderSystemBubble() string {
	text := util.Wrap(b.Message.Content, b.maxWidth()-4)
	block := lipgloss.JoinVertical(lipgloss.Center, b.header(), b.theme.Timestamp.Render(text))
	return lipgloss.NewStyle().MarginTop(1).Render(
		lipgloss.PlaceHorizontal(b.Width, lipgloss.Center, block))
}

// header is the role label followed by the timestamp.
func (b *MessageBubble) header() string {
	label := b.theme.RoleLabel.Render(b.Message.Role.DisplayName())
	if b.Timestamp != "" {
		label += " " + b.theme.Timestamp.Render(b.Timestamp)
	}
	return label
}

// maxWidth is the widest a wrapped bubble may be: three quarters of the
// panel, never under 20 columns.
func (b *MessageBubble) maxWidth() int {
	w := b.Width * 3 / 4
	if w < 20 {
		w = 20
	}
	return w
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the one-line title bar above the chat panel.
type Header struct {
	Title    string // Main title (default: "Concierge")
	Subtitle string // Conversation title or greeting
	Width    int    // Available width
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "Concierge",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSubtitle updates the text shown after the title.
func (h *Header) SetSubtitle(s string) {
	h.Subtitle = util.FirstLine(s)
}

// View renders the header. The subtitle is truncated to fit.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.Title)
	if h.Subtitle == "" {
		return h.theme.Header.Width(h.Width).Render(title)
	}

	// Title, separator and horizontal padding.
	room := h.Width - lipgloss.Width(title) - 3 - 2
	if room < 4 {
		return h.theme.Header.Width(h.Width).Render(title)
	}
	sub := h.theme.HeaderSubtitle.Render(util.Truncate(h.Subtitle, room))
	return h.theme.Header.Width(h.Width).Render(title + " - " + sub)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: a status message or toast on the left and
// key hints on the right.
type StatusBar struct {
	Message string        // Left-hand text
	Toast   *Toast        // Shown instead of Message while set
	Hints   []key.Binding // Right-hand shortcut hints
	Width   int
	theme   *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetMessage shows an informational message.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
}

// Clear removes the message. A toast stays until it expires.
func (s *StatusBar) Clear() {
	s.Message = ""
}

// View renders the status bar. Hints are dropped from the right until the
// message fits.
func (s *StatusBar) View() string {
	inner := s.Width - 2
	if inner < 1 {
		inner = 1
	}

	hints := s.renderHints(s.Hints)
	for n := len(s.Hints); n > 0 && lipgloss.Width(hints) > inner/2; n-- {
		hints = s.renderHints(s.Hints[:n-1])
	}

	room := inner - lipgloss.Width(hints) - 1
	left := ""
	switch {
	case room <= 0:
	case s.Toast != nil:
		left = RenderToast(*s.Toast, room)
	case s.Message != "":
		left = util.Truncate(s.Message, room)
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 0 {
		gap = 0
	}
	return s.theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + hints)
}

func (s *StatusBar) renderHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, s.theme.ShortcutKey.Render(h.Key)+" "+s.theme.ShortcutDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// SUGGESTION LIST
// =============================================================================

// SuggestionList shows starter prompts for an empty conversation. The cursor
// wraps around, so the list reads as an endless loop.
type SuggestionList struct {
	Title string
	Items []string

	cursor int
	theme  *styles.Theme
}

// NewSuggestionList creates a list over items.
func NewSuggestionList(theme *styles.Theme, title string, items []string) *SuggestionList {
	return &SuggestionList{Title: title, Items: items, theme: theme}
}

// SetItems replaces the prompts and resets the cursor.
func (s *SuggestionList) SetItems(title string, items []string) {
	s.Title = title
	s.Items = items
	s.cursor = 0
}

// Next moves the cursor down, wrapping at the end.
func (s *SuggestionList) Next() {
	if len(s.Items) > 0 {
		s.cursor = (s.cursor + 1) % len(s.Items)
	}
}

// Prev moves the cursor up, wrapping at the start.
func (s *SuggestionList) Prev() {
	if len(s.Items) > 0 {
		s.cursor = (s.cursor - 1 + len(s.Items)) % len(s.Items)
	}
}

// Cursor returns the focused index.
func (s *SuggestionList) Cursor() int {
	return s.cursor
}

// Selected returns the focused prompt.
func (s *SuggestionList) Selected() (string, bool) {
	if len(s.Items) == 0 {
		return "", false
	}
	return s.Items[s.cursor], true
}

// View renders up to rows prompts starting at the cursor.
func (s *SuggestionList) View(width, rows int) string {
	if len(s.Items) == 0 || rows <= 0 {
		return ""
	}
	if rows > len(s.Items) {
		rows = len(s.Items)
	}
	// Each item takes a bordered box of three lines.
	textWidth := width - 4
	if textWidth < 8 {
		textWidth = 8
	}

	var b strings.Builder
	b.WriteString(s.theme.SuggestionTitle.Render(s.Title))
	for i := 0; i < rows; i++ {
		idx := (s.cursor + i) % len(s.Items)
		style := s.theme.SuggestionItem
		if i == 0 {
			style = s.theme.SuggestionSelected
		}
		b.WriteString("\n")
		b.WriteString(style.Width(textWidth + 2).Render(util.Preview(s.Items[idx], textWidth)))
	}
	return b.String()
}

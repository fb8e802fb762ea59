// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// CONFIRM DIALOG
// =============================================================================

// ConfirmedMsg is sent when the user accepts the dialog.
type ConfirmedMsg struct {
	Tag string
}

// CancelledMsg is sent when the user dismisses the dialog.
type CancelledMsg struct {
	Tag string
}

// Button options
const (
	ButtonCancel  = 0
	ButtonConfirm = 1
	ButtonCount   = 2
)

// ConfirmDialog is a modal yes/no prompt for destructive actions. While Busy
// it ignores input; the owner hides it when the action finishes.
type ConfirmDialog struct {
	Tag          string
	Title        string
	Body         string
	ConfirmLabel string
	CancelLabel  string

	// Error is shown under the body, e.g. after a failed attempt.
	Error string

	// Busy disables the buttons while the confirmed action runs.
	Busy bool

	visible  bool
	selected int
	width    int
	height   int
	theme    *styles.Theme
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog(theme *styles.Theme) *ConfirmDialog {
	return &ConfirmDialog{
		theme:        theme,
		ConfirmLabel: "Delete",
		CancelLabel:  "Cancel",
	}
}

// Show displays the dialog. Focus starts on Cancel.
func (d *ConfirmDialog) Show(tag, title, body string) {
	d.Tag = tag
	d.Title = title
	d.Body = body
	d.Error = ""
	d.Busy = false
	d.visible = true
	d.selected = ButtonCancel
}

// Hide hides the dialog.
func (d *ConfirmDialog) Hide() {
	d.visible = false
	d.Busy = false
	d.Error = ""
}

// IsVisible returns whether the dialog is visible.
func (d *ConfirmDialog) IsVisible() bool {
	return d.visible
}

// Selected returns the focused button.
func (d *ConfirmDialog) Selected() int {
	return d.selected
}

// SetSize updates the dialog dimensions.
func (d *ConfirmDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// =============================================================================
// BUBBLE TEA METHODS
// =============================================================================

// Update handles key events. handled reports whether the dialog consumed msg.
func (d *ConfirmDialog) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	if !d.visible {
		return nil, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	if d.Busy {
		return nil, true
	}

	switch keyMsg.String() {
	case "left", "h", "right", "l", "tab", "shift+tab":
		d.selected = (d.selected + 1) % ButtonCount
		return nil, true

	case "enter", " ":
		if d.selected == ButtonConfirm {
			return d.confirm(), true
		}
		return d.cancel(), true

	case "y":
		return d.confirm(), true

	case "esc", "n", "q":
		return d.cancel(), true
	}
	return nil, true
}

func (d *ConfirmDialog) confirm() tea.Cmd {
	tag := d.Tag
	d.Busy = true
	d.Error = ""
	return func() tea.Msg { return ConfirmedMsg{Tag: tag} }
}

func (d *ConfirmDialog) cancel() tea.Cmd {
	tag := d.Tag
	d.Hide()
	return func() tea.Msg { return CancelledMsg{Tag: tag} }
}

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the dialog centered in its area.
func (d *ConfirmDialog) View() string {
	if !d.visible {
		return ""
	}

	boxWidth := 56
	if d.width > 0 && d.width < boxWidth+4 {
		boxWidth = d.width - 4
	}
	if boxWidth < 24 {
		boxWidth = 24
	}
	inner := boxWidth - 6

	var content strings.Builder
	content.WriteString(d.theme.DialogTitle.Render(d.Title))
	content.WriteString("\n\n")
	content.WriteString(d.theme.DialogBody.Render(util.Wrap(d.Body, inner)))
	if d.Error != "" {
		content.WriteString("\n\n")
		content.WriteString(styles.RenderError(util.Wrap(d.Error, inner)))
	}
	content.WriteString("\n\n")
	content.WriteString(d.renderButtons())

	box := d.theme.DialogBox.Width(boxWidth).Render(content.String())
	if d.width > 0 && d.height > 0 {
		return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// renderButtons renders the button row.
func (d *ConfirmDialog) renderButtons() string {
	cancel := d.theme.Button
	confirm := d.theme.ButtonDanger
	if d.selected == ButtonCancel {
		cancel = d.theme.ButtonActive
	} else {
		confirm = d.theme.ButtonDangerActive
	}

	label := d.ConfirmLabel
	if d.Busy {
		label += "..."
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		cancel.Render(d.CancelLabel),
		confirm.Render(label),
	)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file implements non-blocking toasts. Panels report background
// failures by returning a ToastMsg; the root model keeps the stack and shows
// the newest toast in the status bar until it expires.

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastStatus is an informational toast
	ToastStatus ToastKind = iota
	// ToastError is an error toast
	ToastError
	// ToastWarning is a warning toast
	ToastWarning
	// ToastSuccess is a success toast
	ToastSuccess
)

// DefaultToastDuration is the auto-dismiss duration for status and success toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts (longer to read).
const ErrorToastDuration = 8 * time.Second

// maxToasts bounds the stack; the oldest toast is dropped first.
const maxToasts = 3

// Toast is one notification.
type Toast struct {
	ID       int
	Message  string
	Kind     ToastKind
	Duration time.Duration
}

// ToastMsg asks the root model to show a toast.
type ToastMsg struct {
	Message string
	Kind    ToastKind
}

// ToastExpiredMsg dismisses the toast with the given ID.
type ToastExpiredMsg struct {
	ID int
}

// ShowToast returns a command that emits a ToastMsg.
func ShowToast(kind ToastKind, message string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Kind: kind}
	}
}

// FailureToast reports a failed background read. Connection failures get
// the unreachable-server text; anything else gets the text under key.
func FailureToast(printer *i18n.Printer, key string, err error) tea.Cmd {
	text := printer.T(key)
	if api.IsTransport(err) {
		text = printer.T(i18n.ErrorUnreachable)
	}
	return ShowToast(ToastError, text)
}

// =============================================================================
// TOAST STACK
// =============================================================================

// ToastStack holds the visible toasts. It is owned by the Bubble Tea event
// loop and is not safe for concurrent use.
type ToastStack struct {
	toasts []Toast
	nextID int
}

// NewToastStack creates an empty stack.
func NewToastStack() *ToastStack {
	return &ToastStack{}
}

// Push adds a toast and returns the command that expires it.
func (s *ToastStack) Push(msg ToastMsg) tea.Cmd {
	s.nextID++
	t := Toast{ID: s.nextID, Message: msg.Message, Kind: msg.Kind, Duration: DefaultToastDuration}
	if msg.Kind == ToastError || msg.Kind == ToastWarning {
		t.Duration = ErrorToastDuration
	}

	s.toasts = append(s.toasts, t)
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}

	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Dismiss removes the toast with id. Unknown ids are ignored.
func (s *ToastStack) Dismiss(id int) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Latest returns the newest toast.
func (s *ToastStack) Latest() (Toast, bool) {
	if len(s.toasts) == 0 {
		return Toast{}, false
	}
	return s.toasts[len(s.toasts)-1], true
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderToast renders t on one line no wider than width.
// ACCESSIBILITY: every kind but status carries a shape indicator.
func RenderToast(t Toast, width int) string {
	var indicator string
	switch t.Kind {
	case ToastError:
		indicator = styles.StatusIndicators.Error
	case ToastWarning:
		indicator = styles.StatusIndicators.Warning
	case ToastSuccess:
		indicator = styles.StatusIndicators.Success
	}

	room := width
	if indicator != "" {
		room -= lipgloss.Width(indicator) + 1
	}
	text := util.Truncate(t.Message, room)

	switch t.Kind {
	case ToastError:
		return styles.RenderError(text)
	case ToastSuccess:
		return styles.RenderSuccess(text)
	case ToastWarning:
		return lipgloss.NewStyle().Foreground(styles.Amber).Bold(true).Render(indicator + " " + text)
	default:
		return lipgloss.NewStyle().Foreground(styles.Cyan).Render(text)
	}
}

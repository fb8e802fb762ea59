// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Slate - Brand color, headers, primary buttons
var Slate = lipgloss.AdaptiveColor{Light: "#334155", Dark: "#CBD5E1"}

// SlateDeep - Darker slate for selected rows
var SlateDeep = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#334155"}

// Purple - Assistant messages, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Info, user highlights, focus
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, destructive actions
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, pending states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// SurfaceDim - Headers, footers, sidebar
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#111827"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"}

// OverlayDim - Dimmer overlay for unfocused borders
var OverlayDim = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"}

// TextSecondary - Labels, previews
var TextSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"}

// =============================================================================
// MESSAGE COLORS
// =============================================================================

// User messages - Slate bubble, right aligned
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#334155", Dark: "#334155"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#F8FAFC"}

// Assistant messages - Bordered, left aligned
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#475569"}

// ErrorBubbleBorder frames synthetic failure messages.
var ErrorBubbleBorder = Rose

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Pending string
}

// StatusIndicators provides ASCII shape indicators alongside colors.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Pending: "[ ]",
}

// RenderError renders an error message with the X mark indicator.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderError(message string) string {
	return lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderSuccess renders a success message with the checkmark indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

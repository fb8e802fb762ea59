// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewTheme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar         lipgloss.Style
	SidebarFocused  lipgloss.Style
	SidebarTitle    lipgloss.Style
	SessionItem     lipgloss.Style
	SessionSelected lipgloss.Style
	SessionActive   lipgloss.Style
	SessionMeta     lipgloss.Style
	NewChatButton   lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style
	RoleLabel       lipgloss.Style
	Timestamp       lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputDisabled  lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// STATUS AND SPINNER STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// SUGGESTION STYLES
	// ==========================================================================

	SuggestionTitle    lipgloss.Style
	SuggestionItem     lipgloss.Style
	SuggestionSelected lipgloss.Style

	// ==========================================================================
	// DIALOG STYLES
	// ==========================================================================

	DialogBox          lipgloss.Style
	DialogTitle        lipgloss.Style
	DialogBody         lipgloss.Style
	Button             lipgloss.Style
	ButtonActive       lipgloss.Style
	ButtonDanger       lipgloss.Style
	ButtonDangerActive lipgloss.Style

	// ==========================================================================
	// ONBOARDING STYLES
	// ==========================================================================

	OnboardingBox   lipgloss.Style
	OnboardingTitle lipgloss.Style
	FieldError      lipgloss.Style
	Hint            lipgloss.Style

	// ErrorStyle and SuccessStyle pair with the StatusIndicators shapes.
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
}

// NewTheme creates a theme. name is "auto", "dark" or "light"; auto asks the
// terminal for its background color.
func NewTheme(name string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch name {
	case ThemeDark:
		isDark = true
	case ThemeLight:
		isDark = false
	default: // ThemeAuto
		isDark = termenv.HasDarkBackground()
	}
	// AdaptiveColor resolves against lipgloss' own notion of the background.
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Slate)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.SidebarFocused = t.Sidebar.
		BorderForeground(Cyan)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextMuted).
		MarginBottom(1)

	t.SessionItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		PaddingLeft(1)

	t.SessionSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SlateDeep).
		Bold(true).
		PaddingLeft(1)

	t.SessionActive = lipgloss.NewStyle().
		Foreground(Cyan).
		PaddingLeft(1)

	t.SessionMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.NewChatButton = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 1)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 2)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)

	t.ErrorBubble = t.AssistantBubble.
		BorderForeground(ErrorBubbleBorder).
		Foreground(Rose)

	t.RoleLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.InputDisabled = t.InputContainer.
		Foreground(TextMuted)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Suggestions
	t.SuggestionTitle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)

	t.SuggestionItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SuggestionSelected = t.SuggestionItem.
		Foreground(TextPrimary).
		BorderForeground(Cyan)

	// Dialogs
	t.DialogBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(1, 2)

	t.DialogTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.DialogBody = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(1)

	t.ButtonActive = t.Button.
		Foreground(TextInverse).
		Background(Slate).
		Bold(true)

	t.ButtonDanger = t.Button.
		Foreground(Rose)

	t.ButtonDangerActive = t.Button.
		Foreground(TextInverse).
		Background(Rose).
		Bold(true)

	// Onboarding
	t.OnboardingBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(1, 3)

	t.OnboardingTitle = lipgloss.NewStyle().
		Foreground(Slate).
		Bold(true)

	t.FieldError = lipgloss.NewStyle().
		Foreground(Rose)

	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// ACCESSIBILITY: use with StatusIndicators shapes
	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, sidebar hidden
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// SidebarWidth returns the sidebar column count for the layout, 0 when hidden.
func (t *Theme) SidebarWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		return 0
	case LayoutMedium:
		return 26
	default:
		return 34
	}
}

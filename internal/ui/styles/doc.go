// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the concierge TUI.

All colors use Lip Gloss AdaptiveColor so the same palette works on light and
dark terminals. The Theme detects the terminal background with termenv unless
the configured theme forces one.

# Color System (colors.go)

  - Slate - Brand color for headers and primary buttons
  - Purple - Assistant accents and selections
  - Cyan - Focus rings and user highlights
  - Emerald - Success states
  - Amber - Pending states
  - Rose - Errors and destructive actions

# Theme (theme.go)

	theme := styles.NewTheme(styles.ThemeAuto)
	header := theme.Header.Render("Concierge")

# Spinners (animations.go)

ASCII spinner frame sets, convertible to bubbles spinners with Bubble().
*/
package styles

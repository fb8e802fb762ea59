// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable widgets of the concierge TUI.
//
//   - Header: title bar with the active conversation
//   - StatusBar: status message, latest toast and key hints
//   - MessageBubble: one transcript message, references rendered as glyphs
//   - ToastStack: short-lived notifications for background failures
//   - ConfirmDialog: modal yes/no prompt for deletes
//   - SuggestionList: starter prompts for an empty conversation
//
// Components are plain structs with a View method. Interactive ones take
// tea.Msg in Update and report whether they consumed it.
package components

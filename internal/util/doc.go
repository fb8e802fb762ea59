// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across concierge.
//
// # Key Functions
//
// Text layout (terminal cells, via go-runewidth and reflow):
//   - Width, Truncate, PadRight: width-aware measuring and fitting
//   - Wrap: word wrap with hard breaks for long words
//   - Preview: single-line summary for list rows
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	row := util.Preview(summary.LastMessage, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat panel of the TUI.
//
// The panel owns a session.Session and drives it from Update: transcript
// loads and sends run as tea.Cmds and come back as messages, which the
// session merges or drops as stale. While a reply is pending the input is
// disabled and a rotating status phrase is shown under the transcript.
//
// An empty conversation shows a greeting and localized starter prompts.
// Up and down move through the prompts; enter on a blank input sends the
// highlighted one.
package chat

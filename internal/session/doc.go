// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides the chat session controller.
//
// A Session owns the active conversation id and its message list and moves
// through four states:
//
//	Empty ──Select──▶ LoadingHistory ──HistoryLoaded──▶ Active
//	  │                                                  │  ▲
//	  └──────────────Submit────────▶ Sending ◀──Submit───┘  │
//	                                   └──Reply/Failure─────┘
//
// Reset returns to Empty from any state. Each Select and Reset bumps the
// session epoch, and asynchronous results carrying an older epoch are
// dropped, so a late reply can never land in a different conversation.
//
// # Usage
//
//	s := session.New(printer.T(i18n.ChatError))
//	req, ok := s.Submit("Hello")
//	if ok {
//	    s.ApplySend(req.Execute(ctx, client))
//	}
package session

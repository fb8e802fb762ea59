// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types shared by the API client, the
// session controller, the renderer and the exporters.
//
// # Key Types
//
//   - ConversationSummary: Immutable snapshot of a conversation in the sidebar
//   - Message: Single message with a local sequence number, role and content
//   - Reference: Typed link (document, event, person) embedded in a reply
//   - Content: Tagged union of plain and structured message payloads
//
// # Usage
//
// Interpret a raw assistant payload:
//
//	content := model.ParseContent(raw)
//	fmt.Println(content.Text())
//	for key, ref := range content.References() {
//	    fmt.Println(key, ref.Type, ref.Link)
//	}
//
// Issue stable local identities:
//
//	var seq model.Sequence
//	msg := model.NewUserMessage(seq.Next(), "Hello")
package model

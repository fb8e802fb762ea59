// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// ConversationSummary is the sidebar view of a server-side conversation.
// Summaries are snapshots: they are replaced wholesale on re-fetch and never
// patched field by field.
type ConversationSummary struct {
	ID                   string    `json:"id"`
	LastMessage          string    `json:"last_message"`
	LastMessageTimestamp Timestamp `json:"last_message_timestamp"`
	MessageCount         int       `json:"message_count"`
	LastRole             Role      `json:"last_role"`
}

// Title returns a single-line label for the conversation. Assistant replies
// stored as JSON envelopes are reduced to their text.
func (c ConversationSummary) Title() string {
	text := strings.TrimSpace(ParseContent(c.LastMessage).Text())
	if text == "" {
		return "New conversation"
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return text
}

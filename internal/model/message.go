// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"sync/atomic"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of the roles the backend emits.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem, RoleDeveloper:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Concierge"
	case RoleSystem:
		return "System"
	case RoleDeveloper:
		return "Developer"
	default:
		return string(r)
	}
}

// =============================================================================
// SEQUENCE
// =============================================================================

// Sequence issues monotonic local message identities. The zero value is ready
// to use and the first issued value is 1.
//
// Local identities are independent of server ids: the server may assign the
// same id to several messages, or none at all to a message still in flight.
type Sequence struct {
	n atomic.Uint64
}

// Next returns the next sequence number.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
type Message struct {
	// Seq is the local identity used for list keys. Never zero once issued.
	Seq uint64 `json:"-"`

	// ServerID is whatever identifier the server reported, possibly empty.
	ServerID string `json:"id,omitempty"`

	Role    Role   `json:"role"`
	Content string `json:"content"`

	// References maps placeholder keys in Content to their targets.
	References map[string]Reference `json:"references,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`

	// Synthetic marks client-generated messages, such as send failures.
	Synthetic bool `json:"-"`
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(seq uint64, text string) Message {
	return Message{
		Seq:       seq,
		Role:      RoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message from a decoded payload.
func NewAssistantMessage(seq uint64, serverID string, content Content) Message {
	return Message{
		Seq:        seq,
		ServerID:   serverID,
		Role:       RoleAssistant,
		Content:    content.Text(),
		References: content.References(),
		CreatedAt:  time.Now(),
	}
}

// NewErrorMessage creates the synthetic assistant message shown when a send fails.
func NewErrorMessage(seq uint64, text string) Message {
	return Message{
		Seq:       seq,
		Role:      RoleAssistant,
		Content:   text,
		CreatedAt: time.Now(),
		Synthetic: true,
	}
}

// IsUser returns true if this is a user message.
func (m *Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsAssistant returns true if this is an assistant message.
func (m *Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// HasReferences reports whether the message carries any reference.
func (m *Message) HasReferences() bool {
	return len(m.References) > 0
}

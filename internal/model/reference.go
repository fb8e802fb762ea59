// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// ReferenceType tags the kind of entity a reference points to.
type ReferenceType string

const (
	ReferenceDocument ReferenceType = "document"
	ReferenceEvent    ReferenceType = "event"
	ReferencePerson   ReferenceType = "person"
)

// Valid reports whether t is a known reference type.
func (t ReferenceType) Valid() bool {
	switch t {
	case ReferenceDocument, ReferenceEvent, ReferencePerson:
		return true
	}
	return false
}

// Reference is a typed, linkable pointer embedded in an assistant message.
// References are always nested under a message and never stored on their own.
type Reference struct {
	Type       ReferenceType `json:"type" yaml:"type"`
	Link       string        `json:"link" yaml:"link"`
	EventID    string        `json:"eventId,omitempty" yaml:"event_id,omitempty"`
	DocumentID string        `json:"documentId,omitempty" yaml:"document_id,omitempty"`
}

// ID returns the type-specific identifier, if any.
func (r Reference) ID() string {
	switch r.Type {
	case ReferenceEvent:
		return r.EventID
	case ReferenceDocument:
		return r.DocumentID
	}
	return ""
}

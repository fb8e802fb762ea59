// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// CONTENT (TAGGED UNION)
// =============================================================================

// Content is a decoded message payload. It is either Plain or Structured.
type Content interface {
	// Text returns the display text, which may contain {key} placeholders.
	Text() string

	// References returns the placeholder map. Never nil.
	References() map[string]Reference

	isContent()
}

// Plain is a payload shown verbatim.
type Plain struct {
	Body string
}

func (p Plain) Text() string                     { return p.Body }
func (p Plain) References() map[string]Reference { return map[string]Reference{} }
func (Plain) isContent()                         {}

// Structured is a `{message, references}` envelope.
type Structured struct {
	Body string
	Refs map[string]Reference
}

func (s Structured) Text() string { return s.Body }

func (s Structured) References() map[string]Reference {
	out := make(map[string]Reference, len(s.Refs))
	for k, v := range s.Refs {
		out[k] = v
	}
	return out
}

func (Structured) isContent() {}

// envelope is the wire shape of a structured reply.
type envelope struct {
	Message    *string              `json:"message"`
	References map[string]Reference `json:"references"`
}

// ParseContent decodes raw as a structured envelope, falling back to Plain.
//
// The payload is Structured only when it is a JSON object carrying a
// non-empty string "message" and an object "references". Anything else,
// including malformed JSON, yields Plain with the whole input as text.
// ParseContent never fails.
func ParseContent(raw string) Content {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return Plain{Body: raw}
	}

	var env envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return Plain{Body: raw}
	}
	if env.Message == nil || *env.Message == "" || env.References == nil {
		return Plain{Body: raw}
	}
	return Structured{Body: *env.Message, Refs: env.References}
}

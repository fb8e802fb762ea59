// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// ErrEmptyTranscript is returned when there is nothing to export.
var ErrEmptyTranscript = errors.New("transcript has no messages")

// titleWidth caps titles derived from the first user message.
const titleWidth = 60

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is a conversation prepared for export.
type Transcript struct {
	ID         string    `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	Source     string    `json:"source,omitempty" yaml:"source,omitempty"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Messages   []Entry   `json:"messages" yaml:"messages"`
}

// Entry is one exported message. Content keeps its {key} placeholders so the
// structured form survives the export.
type Entry struct {
	Role       model.Role                 `json:"role" yaml:"role"`
	Content    string                     `json:"content" yaml:"content"`
	References map[string]model.Reference `json:"references,omitempty" yaml:"references,omitempty"`
	Timestamp  time.Time                  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// FromMessages builds a transcript from session messages. Synthetic failure
// messages are skipped.
func FromMessages(id string, msgs []model.Message) *Transcript {
	t := &Transcript{ID: id, ExportedAt: time.Now()}
	for _, m := range msgs {
		if m.Synthetic {
			continue
		}
		e := Entry{Role: m.Role, Content: m.Content, Timestamp: m.CreatedAt}
		if m.HasReferences() {
			e.References = m.References
		}
		t.Messages = append(t.Messages, e)
	}
	t.Title = deriveTitle(id, t.Messages)
	return t
}

// FromStored builds a transcript from persisted backend messages, parsing
// structured assistant envelopes.
func FromStored(id string, msgs []api.StoredMessage) *Transcript {
	t := &Transcript{ID: id, ExportedAt: time.Now()}
	for _, m := range msgs {
		e := Entry{Role: m.Role, Content: m.Content, Timestamp: m.Timestamp.Time}
		if m.Role == model.RoleAssistant {
			c := model.ParseContent(m.Content)
			e.Content = c.Text()
			if refs := c.References(); len(refs) > 0 {
				e.References = refs
			}
		}
		t.Messages = append(t.Messages, e)
	}
	t.Title = deriveTitle(id, t.Messages)
	return t
}

// deriveTitle uses the first line of the first user message, else the id.
func deriveTitle(id string, entries []Entry) string {
	for _, e := range entries {
		if e.Role != model.RoleUser {
			continue
		}
		if line := util.FirstLine(strings.TrimSpace(e.Content)); line != "" {
			return util.Truncate(line, titleWidth)
		}
	}
	if id == "" {
		return "Conversation"
	}
	return id
}

// validate checks the transcript before an exporter writes it.
func (t *Transcript) validate() error {
	if t == nil {
		return errors.New("transcript is nil")
	}
	if len(t.Messages) == 0 {
		return ErrEmptyTranscript
	}
	return nil
}

// sortedKeys returns the reference keys in stable order.
func sortedKeys(refs map[string]model.Reference) []string {
	keys := make([]string, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

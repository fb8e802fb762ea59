// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/render"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown format.
type MarkdownExporter struct {
	options *Options
	glyphs  render.Glyphs
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts, glyphs: render.UnicodeGlyphs}
}

// Export converts a transcript to Markdown format.
func (e *MarkdownExporter) Export(t *Transcript) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder

	// YAML frontmatter with metadata
	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", escapeYAML(t.Title)))
		if t.ID != "" {
			sb.WriteString(fmt.Sprintf("conversation: %s\n", escapeYAML(t.ID)))
		}
		if t.Source != "" {
			sb.WriteString(fmt.Sprintf("source: %s\n", escapeYAML(t.Source)))
		}
		sb.WriteString(fmt.Sprintf("messages: %d\n", len(t.Messages)))
		sb.WriteString(fmt.Sprintf("exported: %s\n", t.ExportedAt.Format(time.RFC3339)))
		sb.WriteString("generator: concierge\n")
		sb.WriteString("---\n\n")
	}

	sb.WriteString(fmt.Sprintf("# %s\n\n", escapeMarkdown(t.Title)))

	for i := range t.Messages {
		msg := &t.Messages[i]

		label := msg.Role.DisplayName()
		if e.options.IncludeTimestamps && !msg.Timestamp.IsZero() {
			sb.WriteString(fmt.Sprintf("### %s <sub>%s</sub>\n\n", label, formatShortTimestamp(msg.Timestamp)))
		} else {
			sb.WriteString(fmt.Sprintf("### %s\n\n", label))
		}

		sb.WriteString(e.MessageBody(msg))
		sb.WriteString("\n\n")

		if refs := e.referenceList(msg); refs != "" {
			sb.WriteString(refs)
			sb.WriteString("\n")
		}

		if i < len(t.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString(fmt.Sprintf("*Exported from concierge on %s*\n",
		t.ExportedAt.Format("January 2, 2006 at 3:04 PM")))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// MessageBody returns the message text with resolved references written as
// Markdown links. Unknown placeholders stay literal.
func (e *MarkdownExporter) MessageBody(msg *Entry) string {
	var sb strings.Builder
	for _, seg := range render.Segments(msg.Content, msg.References) {
		if seg.Kind == render.SegmentText {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(markdownLink(e.glyphs[seg.Ref.Type]+" "+seg.Key, seg.Ref.Link,
			render.AffordanceTitle(seg.Ref.Type, seg.Key)))
	}
	return strings.TrimSpace(sb.String())
}

// referenceList renders the message's references as a bullet list.
func (e *MarkdownExporter) referenceList(msg *Entry) string {
	if len(msg.References) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("**References**\n\n")
	for _, key := range sortedKeys(msg.References) {
		ref := msg.References[key]
		line := fmt.Sprintf("- %s %s", e.glyphs[ref.Type], markdownLink(key, ref.Link, ""))
		if id := ref.ID(); id != "" {
			line += fmt.Sprintf(" (`%s`)", strings.ReplaceAll(id, "`", "'"))
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// markdownLink builds [text](<link> "title"). The angle-bracket destination
// keeps parentheses and spaces in URLs intact.
func markdownLink(text, link, title string) string {
	text = escapeMarkdown(text)
	if link == "" {
		return text
	}
	dest := "<" + strings.NewReplacer("<", "%3C", ">", "%3E", "\n", "").Replace(link) + ">"
	if title == "" {
		return fmt.Sprintf("[%s](%s)", text, dest)
	}
	return fmt.Sprintf("[%s](%s \"%s\")", text, dest, strings.ReplaceAll(title, `"`, `\"`))
}

// =============================================================================
// ESCAPING HELPERS
// =============================================================================

// escapeMarkdown escapes special Markdown characters in plain text.
func escapeMarkdown(s string) string {
	// Only escape characters that would break formatting in titles/headings
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}

// escapeYAML escapes special YAML characters in values.
func escapeYAML(s string) string {
	if strings.ContainsAny(s, ":#|>@`\"'[]{}!%&*\n\r\\") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
		s = strings.ReplaceAll(s, "\n", "\\n")
		s = strings.ReplaceAll(s, "\r", "\\r")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}

// roleClass returns a CSS-safe class name for a role.
func roleClass(r model.Role) string {
	if r.Valid() {
		return string(r)
	}
	return "unknown"
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes conversation transcripts to files.
//
// # Key Types
//
//   - Transcript: a conversation prepared for export
//   - Exporter: the per-format interface
//   - Options: export configuration options
//
// # Supported Formats
//
//   - Markdown: frontmatter, role headings and reference links
//   - HTML: goldmark output with chroma-highlighted code, sanitized
//   - JSON and YAML: the full transcript, references included
//
// # Usage
//
//	t := export.FromStored(id, messages)
//	exp, err := export.ForFormat("html", export.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	path, err := export.ExportToFile(t, exp, export.DefaultOptions())
package export

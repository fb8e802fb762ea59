// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns assistant payloads into displayable terminal text.
//
// Rendering happens in three pure steps:
//
//  1. Substitute replaces each {key} placeholder whose key exists in the
//     reference map with a typed marker such as [EVENT_key].
//  2. Split cuts the result into alternating text and reference segments.
//     Markers whose key is absent degrade back to their literal {key} text.
//  3. Renderer formats text segments as markdown with glamour and reference
//     segments as a glyph wrapped in an OSC 8 hyperlink.
//
// Nothing here mutates its inputs, and identical inputs render identically.
package render

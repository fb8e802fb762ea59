// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"regexp"
	"strings"

	"github.com/jeranaias/concierge-tui/internal/model"
)

var (
	// placeholderPattern matches {key} tokens in message text.
	placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

	// markerPattern matches the typed markers produced by Substitute.
	markerPattern = regexp.MustCompile(`\[(DOCUMENT|EVENT|PERSON)_([^\]]+)\]`)
)

// SegmentKind distinguishes text spans from reference spans.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentReference
)

// Segment is one span of a split message.
type Segment struct {
	Kind SegmentKind

	// Text holds the span for SegmentText.
	Text string

	// Key and Ref describe a SegmentReference.
	Key string
	Ref model.Reference
}

// markerTag returns the marker prefix for a reference type.
func markerTag(t model.ReferenceType) string {
	switch t {
	case model.ReferenceDocument:
		return "DOCUMENT"
	case model.ReferenceEvent:
		return "EVENT"
	case model.ReferencePerson:
		return "PERSON"
	}
	return ""
}

// Marker returns the typed marker for key.
func Marker(t model.ReferenceType, key string) string {
	return "[" + markerTag(t) + "_" + key + "]"
}

// Resolve applies the structured-parse step: when refs is empty, raw is
// interpreted with model.ParseContent; otherwise raw and refs are used as given.
func Resolve(raw string, refs map[string]model.Reference) (string, map[string]model.Reference) {
	if len(refs) > 0 {
		return raw, refs
	}
	c := model.ParseContent(raw)
	return c.Text(), c.References()
}

// Substitute replaces {key} placeholders that resolve to a known reference
// with typed markers. Unresolved placeholders are left as they are.
func Substitute(text string, refs map[string]model.Reference) string {
	if len(refs) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		key := token[1 : len(token)-1]
		ref, ok := refs[key]
		// Keys containing ']' could not be recovered from a marker.
		if !ok || !ref.Type.Valid() || strings.ContainsRune(key, ']') {
			return token
		}
		return Marker(ref.Type, key)
	})
}

// Split cuts marked text into segments. Adjacent text is merged, so text and
// reference segments alternate except where two references touch.
func Split(text string, refs map[string]model.Reference) []Segment {
	var segs []Segment
	appendText := func(s string) {
		if s == "" {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].Kind == SegmentText {
			segs[n-1].Text += s
			return
		}
		segs = append(segs, Segment{Kind: SegmentText, Text: s})
	}

	last := 0
	for _, m := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		appendText(text[last:m[0]])
		last = m[1]

		tag, key := text[m[2]:m[3]], text[m[4]:m[5]]
		ref, ok := refs[key]
		if !ok || markerTag(ref.Type) != tag {
			appendText("{" + key + "}")
			continue
		}
		segs = append(segs, Segment{Kind: SegmentReference, Key: key, Ref: ref})
	}
	appendText(text[last:])
	return segs
}

// Segments runs Resolve, Substitute and Split in order.
func Segments(raw string, refs map[string]model.Reference) []Segment {
	text, resolved := Resolve(raw, refs)
	return Split(Substitute(text, resolved), resolved)
}

// AffordanceTitle returns the hover text for a reference link.
func AffordanceTitle(t model.ReferenceType, key string) string {
	switch t {
	case model.ReferenceDocument:
		return "View document: " + key
	case model.ReferenceEvent:
		return "View event: " + key
	case model.ReferencePerson:
		return "View profile: " + key
	}
	return key
}

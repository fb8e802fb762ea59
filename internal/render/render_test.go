// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/model"
)

func docRef(link string) model.Reference {
	return model.Reference{Type: model.ReferenceDocument, Link: link}
}

func TestSubstitute(t *testing.T) {
	refs := map[string]model.Reference{
		"a": docRef("https://x/y"),
		"e": {Type: model.ReferenceEvent, Link: "https://ev"},
		"p": {Type: model.ReferencePerson, Link: "https://in/p"},
		"z": {Type: "venue", Link: "https://v"},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"document", "See {a}", "See [DOCUMENT_a]"},
		{"event and person", "{e} with {p}", "[EVENT_e] with [PERSON_p]"},
		{"unresolved", "See {b}", "See {b}"},
		{"unknown type", "See {z}", "See {z}"},
		{"repeated", "{a}{a}", "[DOCUMENT_a][DOCUMENT_a]"},
		{"no placeholders", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.in, refs))
		})
	}
}

func TestSplit(t *testing.T) {
	refs := map[string]model.Reference{"a": docRef("https://x/y")}

	segs := Split("See [DOCUMENT_a] now", refs)
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Kind: SegmentText, Text: "See "}, segs[0])
	assert.Equal(t, SegmentReference, segs[1].Kind)
	assert.Equal(t, "a", segs[1].Key)
	assert.Equal(t, "https://x/y", segs[1].Ref.Link)
	assert.Equal(t, " now", segs[2].Text)
}

func TestSplit_UnresolvedMarkerDegrades(t *testing.T) {
	refs := map[string]model.Reference{"a": docRef("https://x/y")}

	segs := Split("x [EVENT_b] y [EVENT_a]", refs)
	require.Len(t, segs, 1)
	assert.Equal(t, "x {b} y {a}", segs[0].Text)
}

func TestSegments_RoundTrip(t *testing.T) {
	raw := `{"message":"See {a}","references":{"a":{"type":"document","link":"https://x/y"}}}`

	segs := Segments(raw, nil)
	require.Len(t, segs, 2)
	assert.Equal(t, "See ", segs[0].Text)
	assert.Equal(t, SegmentReference, segs[1].Kind)
	assert.Equal(t, model.ReferenceDocument, segs[1].Ref.Type)
}

func TestSegments_PlainKeepsPlaceholder(t *testing.T) {
	segs := Segments("See {a}", map[string]model.Reference{})
	require.Len(t, segs, 1)
	assert.Equal(t, "See {a}", segs[0].Text)
}

func TestSegments_DoesNotMutateInputs(t *testing.T) {
	refs := map[string]model.Reference{"a": docRef("https://x/y")}
	_ = Segments("See {a}", refs)
	assert.Equal(t, map[string]model.Reference{"a": docRef("https://x/y")}, refs)
}

func TestRenderer_Render(t *testing.T) {
	r := New(WithStyle(StyleNoTTY), WithWidth(60))
	raw := `{"message":"See {a}","references":{"a":{"type":"document","link":"https://x/y"}}}`

	out := r.Render(raw, nil)
	assert.Contains(t, out, "See")
	assert.Contains(t, out, "8;;https://x/y")
	assert.Contains(t, out, UnicodeGlyphs[model.ReferenceDocument])
	assert.NotContains(t, out, "{a}")
	assert.NotContains(t, out, tokenOpen)

	assert.Equal(t, out, r.Render(raw, nil), "rendering must be deterministic")
}

func TestRenderer_RenderStyles(t *testing.T) {
	raw := `{"message":"# Agenda\n\n- Keynote in ` + "`room 4`" + ` with {p}\n- Slides: {a}\n\nSee **{e}** for details.","references":{` +
		`"a":{"type":"document","link":"https://x/y"},` +
		`"e":{"type":"event","link":"https://ev/1"},` +
		`"p":{"type":"person","link":"https://in/p"}}}`

	for _, style := range []string{StyleDark, StyleLight, StyleNoTTY} {
		t.Run(style, func(t *testing.T) {
			r := New(WithStyle(style), WithWidth(60))
			out := r.Render(raw, nil)

			for _, word := range []string{"Agenda", "Keynote", "room", "Slides", "details"} {
				assert.Contains(t, out, word)
			}
			for _, ref := range []model.ReferenceType{model.ReferenceDocument, model.ReferenceEvent, model.ReferencePerson} {
				assert.Contains(t, out, UnicodeGlyphs[ref])
			}
			assert.Contains(t, out, "8;;https://x/y")
			assert.Contains(t, out, "8;;https://ev/1")
			assert.Contains(t, out, "8;;https://in/p")
			assert.NotContains(t, out, tokenOpen)
			assert.NotContains(t, out, tokenClose)
			assert.NotContains(t, out, "{a}")
			assert.Equal(t, out, r.Render(raw, nil))
		})
	}
}

func TestRenderer_RenderUnresolved(t *testing.T) {
	r := New(WithStyle(StyleNoTTY))
	out := r.Render("See {a}", map[string]model.Reference{})
	assert.Contains(t, out, "See {a}")
}

func TestRenderer_WithoutHyperlinks(t *testing.T) {
	r := New(WithStyle(StyleNoTTY), WithHyperlinks(false), WithGlyphs(ASCIIGlyphs))
	out := r.Render("Meet {p}", map[string]model.Reference{
		"p": {Type: model.ReferencePerson, Link: "https://in/p"},
	})
	assert.Contains(t, out, "[person]")
	assert.NotContains(t, out, "8;;")
}

func TestRenderer_RenderPlain(t *testing.T) {
	r := New()
	out := r.RenderPlain("Go to {e}.", map[string]model.Reference{
		"e": {Type: model.ReferenceEvent, Link: "https://ev/1"},
	})
	assert.Equal(t, "Go to [event] <https://ev/1>.", out)
}

func TestAffordanceTitle(t *testing.T) {
	assert.Equal(t, "View document: a", AffordanceTitle(model.ReferenceDocument, "a"))
	assert.Equal(t, "View event: a", AffordanceTitle(model.ReferenceEvent, "a"))
	assert.Equal(t, "View profile: a", AffordanceTitle(model.ReferencePerson, "a"))
}

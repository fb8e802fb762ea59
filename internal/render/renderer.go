// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/concierge-tui/internal/model"
)

// Glyphs maps each reference type to its compact affordance.
type Glyphs map[model.ReferenceType]string

// UnicodeGlyphs are used on terminals that can show emoji.
var UnicodeGlyphs = Glyphs{
	model.ReferenceDocument: "📄",
	model.ReferenceEvent:    "📅",
	model.ReferencePerson:   "👤",
}

// ASCIIGlyphs are used on limited terminals and in plain output.
var ASCIIGlyphs = Glyphs{
	model.ReferenceDocument: "[doc]",
	model.ReferenceEvent:    "[event]",
	model.ReferencePerson:   "[person]",
}

// Standard glamour style names accepted by WithStyle.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Reference affordance colors per type.
var referenceColors = map[model.ReferenceType]lipgloss.AdaptiveColor{
	model.ReferenceDocument: {Light: "#2563EB", Dark: "#60A5FA"},
	model.ReferenceEvent:    {Light: "#16A34A", Dark: "#4ADE80"},
	model.ReferencePerson:   {Light: "#9333EA", Dark: "#C084FC"},
}

// Token delimiters stand in for references while markdown is rendered.
// They are plain runes that markdown leaves alone.
const (
	tokenOpen  = "⟦"
	tokenClose = "⟧"
)

// Renderer renders message payloads for the terminal.
type Renderer struct {
	width      int
	style      string
	glyphs     Glyphs
	hyperlinks bool
	md         *glamour.TermRenderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the word-wrap width. Non-positive widths keep glamour's default.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// WithStyle selects a glamour standard style (dark, light, notty, ...).
func WithStyle(style string) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// WithGlyphs replaces the reference glyph set.
func WithGlyphs(g Glyphs) Option {
	return func(r *Renderer) {
		r.glyphs = g
	}
}

// WithHyperlinks toggles OSC 8 hyperlinks around reference glyphs.
func WithHyperlinks(enabled bool) Option {
	return func(r *Renderer) {
		r.hyperlinks = enabled
	}
}

// StyleFor returns the glamour style for a background.
func StyleFor(dark bool) string {
	if dark {
		return StyleDark
	}
	return StyleLight
}

// New creates a Renderer. If glamour cannot be initialized, text spans are
// emitted unformatted.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:      80,
		style:      StyleDark,
		glyphs:     UnicodeGlyphs,
		hyperlinks: true,
	}
	for _, opt := range opts {
		opt(r)
	}

	mdOpts := []glamour.TermRendererOption{glamour.WithStandardStyle(r.style)}
	if r.width > 0 {
		mdOpts = append(mdOpts, glamour.WithWordWrap(r.width))
	}
	md, err := glamour.NewTermRenderer(mdOpts...)
	if err == nil {
		r.md = md
	}
	return r
}

// Width returns the configured wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render formats raw for the terminal. refs may be empty, in which case raw
// is first interpreted as a possible structured envelope.
func (r *Renderer) Render(raw string, refs map[string]model.Reference) string {
	segs := Segments(raw, refs)

	var src strings.Builder
	var affordances []string
	for _, s := range segs {
		if s.Kind == SegmentText {
			src.WriteString(s.Text)
			continue
		}
		src.WriteString(token(len(affordances)))
		affordances = append(affordances, r.affordance(s))
	}

	out := src.String()
	if r.md != nil {
		if rendered, err := r.md.Render(out); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}

	for i, a := range affordances {
		out = strings.Replace(out, token(i), a, 1)
	}
	return out
}

// RenderPlain formats raw without ANSI sequences. References are written as
// their glyph followed by the link.
func (r *Renderer) RenderPlain(raw string, refs map[string]model.Reference) string {
	var b strings.Builder
	for _, s := range Segments(raw, refs) {
		if s.Kind == SegmentText {
			b.WriteString(s.Text)
			continue
		}
		fmt.Fprintf(&b, "%s <%s>", ASCIIGlyphs[s.Ref.Type], s.Ref.Link)
	}
	return b.String()
}

// affordance renders a reference segment as a colored glyph, linked when
// hyperlinks are enabled and the reference has a link.
func (r *Renderer) affordance(s Segment) string {
	glyph := r.glyphs[s.Ref.Type]
	if glyph == "" {
		glyph = ASCIIGlyphs[s.Ref.Type]
	}
	styled := lipgloss.NewStyle().
		Foreground(referenceColors[s.Ref.Type]).
		Bold(true).
		Render(glyph)

	if !r.hyperlinks || s.Ref.Link == "" {
		return styled
	}
	return termenv.Hyperlink(s.Ref.Link, styled)
}

func token(i int) string {
	return tokenOpen + strconv.Itoa(i) + tokenClose
}

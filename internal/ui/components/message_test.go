// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/render"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

func TestMessageBubble_View(t *testing.T) {
	theme := styles.NewTheme(styles.ThemeDark)
	r := render.New(
		render.WithStyle(render.StyleNoTTY),
		render.WithGlyphs(render.ASCIIGlyphs),
		render.WithHyperlinks(false),
	)

	user := model.NewUserMessage(1, "Where is the keynote?")
	assistant := model.NewAssistantMessage(2, "m2", model.Structured{
		Body: "The keynote is {e}.",
		Refs: map[string]model.Reference{
			"e": {Type: model.ReferenceEvent, Link: "https://ev/1"},
		},
	})
	failed := model.NewErrorMessage(3, "Failed to send message")
	system := model.Message{Seq: 4, Role: model.RoleSystem, Content: "Conversation started"}

	tests := []struct {
		name     string
		msg      *model.Message
		contains []string
		missing  []string
	}{
		{"user", &user, []string{"Where is the keynote?", "5m ago"}, nil},
		{"assistant", &assistant, []string{"The keynote is", render.ASCIIGlyphs[model.ReferenceEvent]}, []string{"{e}"}},
		{"synthetic", &failed, []string{styles.StatusIndicators.Error, "Failed to send message"}, nil},
		{"system", &system, []string{"Conversation started"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMessageBubble(tt.msg, theme, r)
			b.Width = 80
			b.Timestamp = "5m ago"

			view := b.View()
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, view, s)
			}
		})
	}
}

func TestMessageBubble_NilMessage(t *testing.T) {
	b := NewMessageBubble(nil, styles.NewTheme(styles.ThemeLight), nil)
	assert.NotPanics(t, func() { _ = b.View() })
}

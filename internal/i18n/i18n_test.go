// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"fr", language.French},
		{"fr-CA", language.French},
		{"de", language.English},
		{"not a locale!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, _ := Match(tt.in).Base()
			want, _ := tt.want.Base()
			assert.Equal(t, want, base)
		})
	}
}

func TestPrinter_T(t *testing.T) {
	en := New("en")
	fr := New("fr")

	assert.Equal(t, "Sorry, I encountered an error. Please try again.", en.T(ChatError))
	assert.Equal(t, "Désolé, une erreur s'est produite. Veuillez réessayer.", fr.T(ChatError))
	assert.Equal(t, "Welcome, Ada Lovelace!", en.T(OnboardingWelcome, "Ada Lovelace"))
}

func TestPrinter_Plurals(t *testing.T) {
	en := New("en")
	assert.Equal(t, "1 minute ago", en.T(TimeMinutesAgo, 1))
	assert.Equal(t, "5 minutes ago", en.T(TimeMinutesAgo, 5))
	assert.Equal(t, "1 message", en.T(SidebarMessages, 1))
	assert.Equal(t, "3 messages", en.T(SidebarMessages, 3))

	fr := New("fr")
	assert.Equal(t, "il y a 2 heures", fr.T(TimeHoursAgo, 2))
}

func TestRelativeTime(t *testing.T) {
	p := New("en")
	now := time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", now.Add(-61 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-23 * time.Hour), "23 hours ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"old", time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), "5/1/2025"},
		{"future same year", now.Add(time.Hour), "just now"},
		{"wrong year, minutes", time.Date(2026, 6, 12, 11, 50, 0, 0, time.UTC), "10 minutes ago"},
		{"wrong year, hours", time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC), "3 hours ago"},
		{"wrong year, older", time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), "just now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.RelativeTime(tt.at, now))
		})
	}
}

func TestRelativeTime_French(t *testing.T) {
	p := New("fr")
	now := time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "à l'instant", p.RelativeTime(now, now))
	assert.Equal(t, "01/05/2025", p.RelativeTime(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), now))
}

func TestSuggestions(t *testing.T) {
	en := New("en").Suggestions()
	fr := New("fr").Suggestions()
	assert.Len(t, en, 20)
	assert.Len(t, fr, 20)
	assert.Equal(t, "When does the event start?", en[0])
	assert.NotEqual(t, en[0], fr[0])
	for _, s := range en {
		assert.NotContains(t, s, "prompts.")
	}
}

func TestStatusPhrases(t *testing.T) {
	assert.Equal(t, []string{"Thinking...", "Searching documents...", "Finding events..."}, New("en").StatusPhrases())
}

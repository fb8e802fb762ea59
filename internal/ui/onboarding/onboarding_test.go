// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package onboarding

import (
	"context"
	"net/http"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/logging"
	gate "github.com/jeranaias/concierge-tui/internal/onboarding"
	"github.com/jeranaias/concierge-tui/internal/storage"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

type fakeVerifier struct {
	profile *api.Profile
	err     error
	calls   int
}

func (f *fakeVerifier) SubmitProfile(_ context.Context, _ string) (*api.Profile, error) {
	f.calls++
	return f.profile, f.err
}

func newForm(v *fakeVerifier) (*Model, *storage.Memory) {
	store := storage.NewMemory()
	printer := i18n.New("en")
	g := gate.NewGate(v, store, printer, logging.Discard())
	m := New(g, printer, styles.NewTheme(styles.ThemeDark))
	m.input.Cursor.SetMode(cursor.CursorStatic)
	m.SetSize(100, 30)
	return m, store
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// run executes cmd, feeding results back into m, and returns the messages
// meant for the parent.
func run(m *Model, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case submitDoneMsg:
			queue = append(queue, m.Update(msg))
		case spinner.TickMsg, nil:
		default:
			out = append(out, msg)
		}
	}
	return out
}

func TestSubmit_Success(t *testing.T) {
	v := &fakeVerifier{profile: &api.Profile{FirstName: "Ada", LastName: "Lovelace"}}
	m, store := newForm(v)

	typeText(m, "  https://www.linkedin.com/in/ada-lovelace/ ")
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Submitting())
	assert.Contains(t, m.View(), "Validating profile...")

	out := run(m, cmd)
	require.Len(t, out, 1)
	done, ok := out[0].(CompletedMsg)
	require.True(t, ok)
	assert.True(t, done.State.Complete)
	assert.Equal(t, "Ada Lovelace", done.State.DisplayName)
	assert.Equal(t, "https://www.linkedin.com/in/ada-lovelace/", done.State.ProfileURL)

	saved, err := gate.Load(context.Background(), store)
	require.NoError(t, err)
	assert.True(t, saved.Complete)
}

func TestSubmit_InvalidURLNoNetwork(t *testing.T) {
	v := &fakeVerifier{}
	m, _ := newForm(v)

	typeText(m, "https://example.com/ada")
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Zero(t, v.calls)
	assert.False(t, m.Submitting())
	assert.Contains(t, m.Err(), "valid LinkedIn profile URL")
}

func TestSubmit_Required(t *testing.T) {
	m, _ := newForm(&fakeVerifier{})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "LinkedIn profile URL is required", m.Err())
}

func TestSubmit_ServerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &api.Error{Status: 422, Message: "Profile is private"}, "Profile is private"},
		{"not found", &api.Error{Status: http.StatusNotFound}, "LinkedIn profile not found. Please check the URL and try again."},
		{"bad request", &api.Error{Status: http.StatusBadRequest}, "Invalid LinkedIn profile URL. Please check and try again."},
		{"other", &api.Error{Status: 500}, "Failed to validate LinkedIn profile. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := newForm(&fakeVerifier{err: tt.err})

			typeText(m, "https://linkedin.com/in/ada")
			out := run(m, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

			assert.Empty(t, out)
			assert.False(t, m.Submitting())
			assert.Equal(t, tt.want, m.Err())

			st, err := gate.Load(context.Background(), store)
			require.NoError(t, err)
			assert.False(t, st.Complete)
		})
	}
}

func TestEditingClearsError(t *testing.T) {
	m, _ := newForm(&fakeVerifier{})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, m.Err())

	typeText(m, "h")
	assert.Empty(t, m.Err())
}

func TestKeysIgnoredWhileSubmitting(t *testing.T) {
	m, _ := newForm(&fakeVerifier{profile: &api.Profile{FirstName: "Ada"}})
	typeText(m, "https://linkedin.com/in/ada")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typeText(m, "x")
	assert.Equal(t, "https://linkedin.com/in/ada", m.Value())
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package onboarding is the first-run screen that asks for the user's
// LinkedIn profile URL before the chat becomes available.
package onboarding

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/concierge-tui/internal/i18n"
	gate "github.com/jeranaias/concierge-tui/internal/onboarding"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// DefaultSubmitTimeout bounds the profile verification request.
const DefaultSubmitTimeout = 60 * time.Second

// Submitter validates and submits a profile URL. *onboarding.Gate
// implements it.
type Submitter interface {
	Validate(raw string) (string, error)
	Submit(ctx context.Context, raw string) (gate.State, error)
}

// CompletedMsg is sent once the profile has been verified and saved.
type CompletedMsg struct {
	State gate.State
}

type submitDoneMsg struct {
	state gate.State
	err   error
}

// Model is the onboarding form.
type Model struct {
	submitter Submitter
	printer   *i18n.Printer
	theme     *styles.Theme
	timeout   time.Duration

	input   textinput.Model
	spinner spinner.Model

	err        string
	submitting bool

	width  int
	height int
}

// New creates the form with the input focused.
func New(s Submitter, printer *i18n.Printer, theme *styles.Theme) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.Placeholder = printer.T(i18n.OnboardingPlaceholder)
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = styles.DotsSpinner.Bubble()
	sp.Style = theme.Spinner

	return &Model{
		submitter: s,
		printer:   printer,
		theme:     theme,
		timeout:   DefaultSubmitTimeout,
		input:     ti,
		spinner:   sp,
	}
}

// SetTimeout sets the verification timeout.
func (m *Model) SetTimeout(d time.Duration) {
	if d > 0 {
		m.timeout = d
	}
}

// SetSize sets the screen size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 16
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	m.input.Width = w
}

// Err returns the inline error, empty when none.
func (m *Model) Err() string {
	return m.err
}

// Submitting reports whether verification is in flight.
func (m *Model) Submitting() bool {
	return m.submitting
}

// Value returns the text in the input field.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			// Validation and submit errors both carry display text.
			m.err = msg.err.Error()
			return m.input.Focus()
		}
		st := msg.state
		return func() tea.Msg { return CompletedMsg{State: st} }

	case spinner.TickMsg:
		if !m.submitting {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if m.submitting {
			return nil
		}
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.err = ""
		}
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submit validates locally, then verifies with the backend in a command.
func (m *Model) submit() tea.Cmd {
	raw := m.input.Value()
	if _, err := m.submitter.Validate(raw); err != nil {
		m.err = err.Error()
		return nil
	}

	m.err = ""
	m.submitting = true
	m.input.Blur()

	s, timeout := m.submitter, m.timeout
	verify := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		st, err := s.Submit(ctx, raw)
		return submitDoneMsg{state: st, err: err}
	}
	return tea.Batch(verify, m.spinner.Tick)
}

// View renders the centered form.
func (m *Model) View() string {
	inner := m.input.Width + 4

	var b strings.Builder
	b.WriteString(m.theme.OnboardingTitle.Render(m.printer.T(i18n.OnboardingTitle)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Hint.Render(util.Wrap(m.printer.T(i18n.OnboardingSubtitle), inner)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(m.spinner.View() + " " + m.theme.ThinkingText.Render(m.printer.T(i18n.OnboardingValidating)))
	case m.err != "":
		b.WriteString(m.theme.FieldError.Render(util.Wrap(styles.StatusIndicators.Error+" "+m.err, inner)))
	default:
		b.WriteString(m.theme.Hint.Render("enter: " + m.printer.T(i18n.OnboardingSubmit)))
	}

	box := m.theme.OnboardingBox.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

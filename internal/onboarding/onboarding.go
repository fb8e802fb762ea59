// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package onboarding

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/storage"
)

// Storage keys.
const (
	KeyComplete    = "onboardingComplete"
	KeyProfileURL  = "linkedinUrl"
	KeyDisplayName = "fullName"
)

// profileURLPattern matches public LinkedIn profile URLs.
var profileURLPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[\w-]+/?$`)

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError is a profile URL rejected before any network call.
type ValidationError struct {
	// Key is the i18n message key describing the problem.
	Key string

	// Message is the localized text.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateProfileURL checks raw after trimming surrounding whitespace. It
// returns the trimmed URL. p may be nil for English messages.
func ValidateProfileURL(p *i18n.Printer, raw string) (string, error) {
	if p == nil {
		p = i18n.New("en")
	}
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", &ValidationError{Key: i18n.OnboardingRequired, Message: p.T(i18n.OnboardingRequired)}
	}
	if !profileURLPattern.MatchString(u) {
		return "", &ValidationError{Key: i18n.OnboardingInvalidURL, Message: p.T(i18n.OnboardingInvalidURL)}
	}
	return u, nil
}

// =============================================================================
// PERSISTED STATE
// =============================================================================

// State is the persisted onboarding result.
type State struct {
	Complete    bool
	ProfileURL  string
	DisplayName string
}

// Load reads the onboarding state. Missing keys yield the zero State.
func Load(ctx context.Context, store storage.Store) (State, error) {
	var st State
	complete, _, err := store.Get(ctx, KeyComplete)
	if err != nil {
		return State{}, fmt.Errorf("load onboarding state: %w", err)
	}
	st.Complete = complete == "true"

	if st.ProfileURL, _, err = store.Get(ctx, KeyProfileURL); err != nil {
		return State{}, fmt.Errorf("load onboarding state: %w", err)
	}
	if st.DisplayName, _, err = store.Get(ctx, KeyDisplayName); err != nil {
		return State{}, fmt.Errorf("load onboarding state: %w", err)
	}
	return st, nil
}

// Save persists st. An incomplete state is never written over a complete one.
func Save(ctx context.Context, store storage.Store, st State) error {
	if !st.Complete {
		return nil
	}
	pairs := [][2]string{
		{KeyProfileURL, st.ProfileURL},
		{KeyDisplayName, st.DisplayName},
		// The flag goes last so a partial write never reads as complete.
		{KeyComplete, "true"},
	}
	for _, kv := range pairs {
		if err := store.Set(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save onboarding state: %w", err)
		}
	}
	return nil
}

// DisplayName joins the profile's first and last name.
func DisplayName(p *api.Profile) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// FirstName returns the first word of a display name, for greetings.
func FirstName(displayName string) string {
	if f := strings.Fields(displayName); len(f) > 0 {
		return f[0]
	}
	return ""
}

// =============================================================================
// GATE
// =============================================================================

// Verifier submits a profile URL to the backend.
type Verifier interface {
	SubmitProfile(ctx context.Context, profileURL string) (*api.Profile, error)
}

// Gate runs the onboarding submit flow.
type Gate struct {
	verifier Verifier
	store    storage.Store
	printer  *i18n.Printer
	logger   *log.Logger
}

// NewGate creates a Gate. printer and logger may be nil.
func NewGate(v Verifier, store storage.Store, printer *i18n.Printer, logger *log.Logger) *Gate {
	if printer == nil {
		printer = i18n.New("en")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Gate{verifier: v, store: store, printer: printer, logger: logger}
}

// SetPrinter switches the message locale.
func (g *Gate) SetPrinter(p *i18n.Printer) {
	if p != nil {
		g.printer = p
	}
}

// Validate checks raw without any network call.
func (g *Gate) Validate(raw string) (string, error) {
	return ValidateProfileURL(g.printer, raw)
}

// Submit validates raw, verifies it with the backend and persists the
// result. The returned error message is suitable for display.
func (g *Gate) Submit(ctx context.Context, raw string) (State, error) {
	u, err := g.Validate(raw)
	if err != nil {
		return State{}, err
	}

	profile, err := g.verifier.SubmitProfile(ctx, u)
	if err != nil {
		g.logger.Error("profile verification failed", "err", err)
		return State{}, &SubmitError{Message: g.errorMessage(err), Err: err}
	}

	st := State{Complete: true, ProfileURL: u, DisplayName: DisplayName(profile)}
	if err := Save(ctx, g.store, st); err != nil {
		g.logger.Error("failed to persist onboarding state", "err", err)
		return State{}, &SubmitError{Message: g.printer.T(i18n.OnboardingFailed), Err: err}
	}
	g.logger.Info("onboarding complete", "name", st.DisplayName)
	return st, nil
}

func (g *Gate) errorMessage(err error) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	switch api.StatusCode(err) {
	case http.StatusBadRequest:
		return g.printer.T(i18n.OnboardingBadRequest)
	case http.StatusNotFound:
		return g.printer.T(i18n.OnboardingNotFound)
	default:
		return g.printer.T(i18n.OnboardingFailed)
	}
}

// SubmitError is a failed verification or persistence step.
type SubmitError struct {
	// Message is the localized text to show.
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

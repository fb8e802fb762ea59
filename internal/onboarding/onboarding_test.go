// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package onboarding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/storage"
)

type fakeVerifier struct {
	profile *api.Profile
	err     error
	calls   []string
}

func (f *fakeVerifier) SubmitProfile(_ context.Context, u string) (*api.Profile, error) {
	f.calls = append(f.calls, u)
	return f.profile, f.err
}

func TestValidateProfileURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantKey string
		want    string
	}{
		{"https://linkedin.com/in/jane-doe", "", "https://linkedin.com/in/jane-doe"},
		{"  https://www.linkedin.com/in/jane_doe/ ", "", "https://www.linkedin.com/in/jane_doe/"},
		{"http://linkedin.com/in/j123", "", "http://linkedin.com/in/j123"},
		{"", i18n.OnboardingRequired, ""},
		{"   ", i18n.OnboardingRequired, ""},
		{"https://linkedin.com/company/acme", i18n.OnboardingInvalidURL, ""},
		{"https://linkedin.com/in/", i18n.OnboardingInvalidURL, ""},
		{"https://evil.com/in/jane", i18n.OnboardingInvalidURL, ""},
		{"linkedin.com/in/jane", i18n.OnboardingInvalidURL, ""},
		{"https://linkedin.com/in/jane/posts", i18n.OnboardingInvalidURL, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ValidateProfileURL(nil, tt.raw)
			if tt.wantKey == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKey, verr.Key)
		})
	}
}

func TestValidateProfileURL_Localized(t *testing.T) {
	_, err := ValidateProfileURL(i18n.New("fr"), "")
	require.Error(t, err)
	assert.NotEqual(t, "LinkedIn profile URL is required", err.Error())

	_, err = ValidateProfileURL(i18n.New("en"), "")
	assert.EqualError(t, err, "LinkedIn profile URL is required")
}

func TestGate_SubmitSuccess(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	v := &fakeVerifier{profile: &api.Profile{FirstName: "Jane", LastName: "Doe"}}
	g := NewGate(v, store, nil, nil)

	st, err := g.Submit(ctx, " https://linkedin.com/in/jane ")
	require.NoError(t, err)
	assert.Equal(t, State{Complete: true, ProfileURL: "https://linkedin.com/in/jane", DisplayName: "Jane Doe"}, st)
	assert.Equal(t, []string{"https://linkedin.com/in/jane"}, v.calls)

	loaded, err := Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, st, loaded)
}

func TestGate_InvalidURLMakesNoCall(t *testing.T) {
	store := storage.NewMemory()
	v := &fakeVerifier{}
	g := NewGate(v, store, nil, nil)

	_, err := g.Submit(context.Background(), "https://example.com")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, v.calls)

	st, err := Load(context.Background(), store)
	require.NoError(t, err)
	assert.False(t, st.Complete)
}

func TestGate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message wins", &api.Error{Status: 400, Message: "Profile is private"}, "Profile is private"},
		{"bad request", &api.Error{Status: 400}, "Invalid LinkedIn profile URL. Please check and try again."},
		{"not found", &api.Error{Status: 404}, "LinkedIn profile not found. Please check the URL and try again."},
		{"server error", &api.Error{Status: 500}, "Failed to validate LinkedIn profile. Please try again."},
		{"transport", fmt.Errorf("%w: refused", api.ErrTransport), "Failed to validate LinkedIn profile. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			g := NewGate(&fakeVerifier{err: tt.err}, store, i18n.New("en"), nil)

			_, err := g.Submit(context.Background(), "https://linkedin.com/in/jane")
			var serr *SubmitError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.want, serr.Message)
			assert.True(t, errors.Is(err, tt.err))

			st, _ := Load(context.Background(), store)
			assert.False(t, st.Complete, "failures must not complete onboarding")
		})
	}
}

func TestSave_IncompleteIsNoop(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, Save(ctx, store, State{Complete: true, ProfileURL: "u", DisplayName: "n"}))
	require.NoError(t, Save(ctx, store, State{}))

	st, err := Load(ctx, store)
	require.NoError(t, err)
	assert.True(t, st.Complete)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", DisplayName(&api.Profile{FirstName: "Jane", LastName: "Doe"}))
	assert.Equal(t, "Jane", DisplayName(&api.Profile{FirstName: "Jane"}))
	assert.Equal(t, "", DisplayName(nil))
	assert.Equal(t, "Jane", FirstName("Jane Doe"))
	assert.Equal(t, "", FirstName(""))
}

func TestGate_AgainstHTTPBackendAndSQLite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linkedin-profile", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"firstName":"Ada","lastName":"Lovelace","headline":"ignored"}`)
	}))
	defer srv.Close()

	store, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer store.Close()

	g := NewGate(api.New(srv.URL), store, nil, nil)
	_, err = g.Submit(context.Background(), "https://linkedin.com/in/ada")
	require.NoError(t, err)

	st, err := Load(context.Background(), store)
	require.NoError(t, err)
	assert.True(t, st.Complete)
	assert.Equal(t, "Ada Lovelace", st.DisplayName)
}

func TestGate_FastAPIErrorBodies(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   string
	}{
		{http.StatusBadRequest, `{"detail":"Not Found","error_code":"404"}`, "Invalid LinkedIn profile URL. Please check and try again."},
		{http.StatusNotFound, `{"detail":"Not Found","error_code":"404"}`, "LinkedIn profile not found. Please check the URL and try again."},
		{http.StatusInternalServerError, `{"detail":"KeyError('firstName')","error_code":"HTTP_500"}`, "Failed to validate LinkedIn profile. Please try again."},
		{http.StatusBadRequest, `{"message":"Profile is private","detail":"Bad Request"}`, "Profile is private"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d %s", tt.status, tt.want), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			g := NewGate(api.New(srv.URL), storage.NewMemory(), i18n.New("en"), nil)
			_, err := g.Submit(context.Background(), "https://linkedin.com/in/ada")

			var serr *SubmitError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.want, serr.Message)
			assert.Equal(t, tt.status, api.StatusCode(err))
		})
	}
}

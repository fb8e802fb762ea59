// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/config"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/logging"
)

// =============================================================================
// FAKE BACKEND
// =============================================================================

const agendaReply = `{"message":"See {agenda}","references":{"agenda":{"type":"document","link":"https://d/1","documentId":"d1"}}}`

type fakeBackend struct {
	mu sync.Mutex

	// pages are served for GET /chat, indexed by page number - 1
	pages []string
	// transcripts are served for GET /chat/{id} as a single page
	transcripts map[string]string

	deleteStatus  int
	sendStatus    int
	profileStatus int

	sent     []api.SendRequest
	deleted  []string
	profiles []string
	calls    int
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{transcripts: map[string]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /chat", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		page := 1
		if p := r.URL.Query().Get("page"); p == "2" {
			page = 2
		}
		fb.mu.Lock()
		defer fb.mu.Unlock()
		if page > len(fb.pages) {
			io.WriteString(w, `{"conversations":[],"page":1,"has_next":false}`)
			return
		}
		io.WriteString(w, fb.pages[page-1])
	})
	mux.HandleFunc("GET /chat/{id}", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		fb.mu.Lock()
		body, ok := fb.transcripts[r.PathValue("id")]
		fb.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail":"Conversation not found"}`)
			return
		}
		io.WriteString(w, body)
	})
	mux.HandleFunc("DELETE /chat/{id}", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		fb.mu.Lock()
		defer fb.mu.Unlock()
		if fb.deleteStatus != 0 {
			w.WriteHeader(fb.deleteStatus)
			io.WriteString(w, `{"message":"nope"}`)
			return
		}
		fb.deleted = append(fb.deleted, r.PathValue("id"))
		io.WriteString(w, `{"message":"deleted"}`)
	})
	mux.HandleFunc("POST /messages", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		var req api.SendRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fb.mu.Lock()
		defer fb.mu.Unlock()
		fb.sent = append(fb.sent, req)
		if fb.sendStatus != 0 {
			w.WriteHeader(fb.sendStatus)
			io.WriteString(w, `{"detail":"model unavailable"}`)
			return
		}
		id := req.ID
		if id == "" {
			id = "c-new"
		}
		json.NewEncoder(w).Encode(api.SendResponse{ID: id, Message: agendaReply})
	})
	mux.HandleFunc("POST /linkedin-profile", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		var req api.ProfileRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fb.mu.Lock()
		defer fb.mu.Unlock()
		fb.profiles = append(fb.profiles, req.LinkedInURL)
		if fb.profileStatus != 0 {
			w.WriteHeader(fb.profileStatus)
			io.WriteString(w, `{}`)
			return
		}
		io.WriteString(w, `{"firstName":"Ada","lastName":"Lovelace"}`)
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		io.WriteString(w, `{"status":"healthy","openai_client":"initialized","api_key_configured":true,"timestamp":"2025-03-01T10:00:00"}`)
	})
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		fb.hit()
		io.WriteString(w, `{"name":"Ada Lovelace","interests":["compilers","poetry"]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) hit() {
	fb.mu.Lock()
	fb.calls++
	fb.mu.Unlock()
}

func (fb *fakeBackend) callCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls
}

// =============================================================================
// HARNESS
// =============================================================================

type harness struct {
	t       *testing.T
	home    string
	cfgPath string
	backend string
	stdin   io.Reader
}

func newHarness(t *testing.T, backend string) *harness {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"CONCIERGE_BACKEND_URL", "VITE_BACKEND_URL", "CONCIERGE_LOCALE",
		"CONCIERGE_THEME", "CONCIERGE_LOG_LEVEL", "CONCIERGE_STATE_DB",
	} {
		t.Setenv(k, "")
	}
	return &harness{
		t:       t,
		home:    home,
		cfgPath: filepath.Join(home, "config.toml"),
		backend: backend,
		stdin:   strings.NewReader(""),
	}
}

func (h *harness) run(args ...string) (stdout, stderr string, err error) {
	h.t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(h.stdin)

	full := append(args, "--config", h.cfgPath, "--ephemeral")
	if h.backend != "" {
		full = append(full, "--backend", h.backend)
	}
	cmd.SetArgs(full)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func decodeResponse(t *testing.T, out string) JSONResponse {
	t.Helper()
	var resp JSONResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

// =============================================================================
// ASK
// =============================================================================

func TestAsk_PrintsReplyAndConversationID(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, errOut, err := h.run("ask", "what's", "on", "today?")
	require.NoError(t, err)

	assert.Contains(t, out, "See [doc] <https://d/1>")
	assert.Contains(t, errOut, "conversation: c-new")
	require.Len(t, fb.sent, 1)
	assert.Equal(t, "what's on today?", fb.sent[0].Message)
	assert.Empty(t, fb.sent[0].ID)
}

func TestAsk_JSON(t *testing.T) {
	_, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("ask", "--json", "hello")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.True(t, resp.Success)
	assert.Equal(t, "ask", resp.Command)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "c-new", data["conversation_id"])
	assert.Equal(t, "See {agenda}", data["reply"])
	assert.Contains(t, data["references"], "agenda")
}

func TestAsk_ContinuesConversation(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.transcripts["c1"] = `{"messages":[
		{"id":"m1","role":"user","content":"hi","timestamp":"2025-03-01T10:00:00"},
		{"id":"m2","role":"assistant","content":"Hello!","timestamp":"2025-03-01T10:00:01"}
	],"has_next":false}`
	h := newHarness(t, srv.URL)

	_, _, err := h.run("ask", "-c", "c1", "and tomorrow?")
	require.NoError(t, err)

	require.Len(t, fb.sent, 1)
	assert.Equal(t, "c1", fb.sent[0].ID)
}

func TestAsk_UnknownConversation(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	_, _, err := h.run("ask", "-c", "missing", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load conversation missing")
	assert.Empty(t, fb.sent)
}

func TestAsk_ServerError(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.sendStatus = http.StatusInternalServerError
	h := newHarness(t, srv.URL)

	out, _, err := h.run("ask", "--json", "hello")
	require.Error(t, err)

	resp := decodeResponse(t, out)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "model unavailable")
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

const (
	pageOne = `{"conversations":[
		{"id":"c1","last_message":"Agenda for Friday","last_message_timestamp":"2025-03-01T10:00:00","message_count":4,"last_role":"user"}
	],"total_conversations":2,"page":1,"limit":1,"total_pages":2,"has_next":true,"has_previous":false}`
	pageTwo = `{"conversations":[
		{"id":"c2","last_message":"Speaker list","last_message_timestamp":"2025-02-28T10:00:00","message_count":2,"last_role":"user"}
	],"total_conversations":2,"page":2,"limit":1,"total_pages":2,"has_next":false,"has_previous":true}`
)

func TestConversationsList_Table(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.pages = []string{pageOne, pageTwo}
	h := newHarness(t, srv.URL)

	out, _, err := h.run("conversations", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "Agenda for Friday")
	assert.NotContains(t, out, "c2")
	assert.Contains(t, out, "--page 2")
}

func TestConversationsList_AllJSON(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.pages = []string{pageOne, pageTwo}
	h := newHarness(t, srv.URL)

	out, _, err := h.run("conversations", "list", "--all", "--json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	require.True(t, resp.Success)
	convs := resp.Data.(map[string]interface{})["conversations"].([]interface{})
	require.Len(t, convs, 2)
	assert.Equal(t, "c2", convs[1].(map[string]interface{})["id"])
}

func TestConversationsList_Empty(t *testing.T) {
	_, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("conversations", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No conversations yet")
}

func TestConversationsList_RejectsBadPage(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	_, _, err := h.run("conversations", "list", "--page", "0")
	require.Error(t, err)
	assert.Zero(t, fb.callCount())
}

func TestConversationsShow(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.transcripts["c1"] = `{"messages":[
		{"id":"m1","role":"user","content":"What is on?","timestamp":"2025-03-01T10:00:00"},
		{"id":"m2","role":"assistant","content":` + jsonString(agendaReply) + `,"timestamp":"2025-03-01T10:00:01"}
	],"has_next":false}`
	h := newHarness(t, srv.URL)

	out, _, err := h.run("conversations", "show", "c1")
	require.NoError(t, err)

	assert.Contains(t, out, "You")
	assert.Contains(t, out, "What is on?")
	assert.Contains(t, out, "Concierge")
	assert.Contains(t, out, "See [doc] <https://d/1>")
}

func TestConversationsDelete_NeedsConfirmationWithoutTTY(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	_, _, err := h.run("conversations", "delete", "c1")
	require.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Zero(t, fb.callCount())
}

func TestConversationsDelete_Yes(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("conversations", "delete", "c1", "--yes")
	require.NoError(t, err)

	assert.Equal(t, []string{"c1"}, fb.deleted)
	assert.Contains(t, out, "Deleted conversation c1")
}

func TestConversationsDelete_ServerMessage(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.deleteStatus = http.StatusInternalServerError
	h := newHarness(t, srv.URL)

	_, _, err := h.run("conversations", "delete", "c1", "-y")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete conversation: nope", err.Error())
}

func TestConversationsExport(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.transcripts["c1"] = `{"messages":[
		{"id":"m1","role":"user","content":"What is on?","timestamp":"2025-03-01T10:00:00"},
		{"id":"m2","role":"assistant","content":` + jsonString(agendaReply) + `,"timestamp":"2025-03-01T10:00:01"}
	],"has_next":false}`
	h := newHarness(t, srv.URL)

	t.Run("stdout", func(t *testing.T) {
		out, _, err := h.run("conversations", "export", "c1", "--format", "json", "--stdout")
		require.NoError(t, err)
		assert.Contains(t, out, "https://d/1")
		assert.Contains(t, out, "What is on?")
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		out, _, err := h.run("conversations", "export", "c1", "--format", "md", "--output", dir)
		require.NoError(t, err)

		path := strings.TrimSpace(out)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.Equal(t, ".md", filepath.Ext(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "What is on?")
	})

	t.Run("unknown format", func(t *testing.T) {
		before := fb.callCount()
		_, _, err := h.run("conversations", "export", "c1", "--format", "pdf")
		require.Error(t, err)
		assert.Equal(t, before, fb.callCount())
	})
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// =============================================================================
// ONBOARD
// =============================================================================

func TestOnboard_Success(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("onboard", "https://www.linkedin.com/in/ada-lovelace")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome, Ada Lovelace!")
	assert.Equal(t, []string{"https://www.linkedin.com/in/ada-lovelace"}, fb.profiles)
}

func TestOnboard_InvalidURLMakesNoRequest(t *testing.T) {
	fb, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	_, _, err := h.run("onboard", "https://example.com/ada")
	require.Error(t, err)
	assert.Zero(t, fb.callCount())
}

func TestOnboard_NotFound(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.profileStatus = http.StatusNotFound
	h := newHarness(t, srv.URL)

	out, _, err := h.run("onboard", "https://www.linkedin.com/in/nobody", "--json")
	require.Error(t, err)

	resp := decodeResponse(t, out)
	assert.False(t, resp.Success)
}

func TestOnboard_ShowsStateWhenNotOnboarded(t *testing.T) {
	_, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("onboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Not onboarded")
}

// =============================================================================
// STATUS AND PROFILE
// =============================================================================

func TestStatus(t *testing.T) {
	_, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("status")
	require.NoError(t, err)
	assert.Contains(t, out, srv.URL)
	assert.Contains(t, out, "healthy")
	assert.Contains(t, out, "API key present: yes")

	out, _, err = h.run("status", "--json")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	assert.True(t, resp.Success)
	assert.Equal(t, srv.URL, resp.Data.(map[string]interface{})["backend"])
}

func TestStatus_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	h := newHarness(t, url)

	_, _, err := h.run("status")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrTransport)
}

func TestProfile_YAML(t *testing.T) {
	_, srv := newFakeBackend(t)
	h := newHarness(t, srv.URL)

	out, _, err := h.run("profile")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Ada Lovelace")
	assert.Contains(t, out, "interests:")
	assert.Contains(t, out, "- compilers")
}

// =============================================================================
// CONFIG AND VERSION
// =============================================================================

func TestConfig_SetThenGet(t *testing.T) {
	h := newHarness(t, "")

	out, _, err := h.run("config", "set", "ui.locale", "fr")
	require.NoError(t, err)
	assert.Equal(t, "ui.locale = fr\n", out)
	assert.FileExists(t, h.cfgPath)

	out, _, err = h.run("config", "get", "ui.locale")
	require.NoError(t, err)
	assert.Equal(t, "fr\n", out)

	out, _, err = h.run("config", "set", "api.timeout", "90s")
	require.NoError(t, err)
	assert.Equal(t, "api.timeout = 1m30s\n", out)
}

func TestConfig_SetDoesNotPersistFlagOverrides(t *testing.T) {
	h := newHarness(t, "http://override.invalid")

	_, _, err := h.run("config", "set", "ui.theme", "dark")
	require.NoError(t, err)

	cfg, err := config.LoadFromPath(h.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default().API.BaseURL, cfg.API.BaseURL)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestConfig_SetRejectsInvalidValue(t *testing.T) {
	h := newHarness(t, "")

	_, _, err := h.run("config", "set", "ui.locale", "de")
	require.Error(t, err)
	assert.NoFileExists(t, h.cfgPath)
}

func TestConfig_ShowAndPath(t *testing.T) {
	h := newHarness(t, "http://backend.test:9000")

	out, _, err := h.run("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `base_url = "http://backend.test:9000"`)

	out, _, err = h.run("config", "path")
	require.NoError(t, err)
	assert.Equal(t, h.cfgPath+"\n", out)
}

func TestInvalidBackendFlag(t *testing.T) {
	h := newHarness(t, "not a url")

	_, _, err := h.run("status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "")

	out, _, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "concierge "+Version)
	assert.Contains(t, out, "commit:")
}

// =============================================================================
// REPL
// =============================================================================

type scriptedInput struct {
	lines   []string
	prompts int
}

func (s *scriptedInput) ReadInput(string) (string, error) {
	s.prompts++
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newTestREPL(t *testing.T, srv *httptest.Server) (*repl, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	client := api.New(srv.URL, api.WithLogger(logging.Discard()))
	return newREPL(&out, client, i18n.New("en"), config.Default()), &out
}

func TestREPL_SendsAndKeepsConversation(t *testing.T) {
	fb, srv := newFakeBackend(t)
	r, out := newTestREPL(t, srv)

	in := &scriptedInput{lines: []string{"first", "   ", "second", "/quit", "never sent"}}
	require.NoError(t, r.run(context.Background(), in))

	require.Len(t, fb.sent, 2)
	assert.Empty(t, fb.sent[0].ID)
	assert.Equal(t, "c-new", fb.sent[1].ID)
	assert.Contains(t, out.String(), "See [doc] <https://d/1>")
	assert.Equal(t, 4, in.prompts)
}

func TestREPL_NewStartsFreshConversation(t *testing.T) {
	fb, srv := newFakeBackend(t)
	r, _ := newTestREPL(t, srv)

	in := &scriptedInput{lines: []string{"first", "/new", "second"}}
	require.NoError(t, r.run(context.Background(), in))

	require.Len(t, fb.sent, 2)
	assert.Empty(t, fb.sent[1].ID)
}

func TestREPL_FailedSendPrintsFallbackAndContinues(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.sendStatus = http.StatusServiceUnavailable
	r, out := newTestREPL(t, srv)

	in := &scriptedInput{lines: []string{"hello", "again"}}
	require.NoError(t, r.run(context.Background(), in))

	assert.Len(t, fb.sent, 2)
	assert.Contains(t, out.String(), "[X]")
}

func TestREPL_OpenAndHelp(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.transcripts["c9"] = `{"messages":[{"id":"m1","role":"user","content":"old question","timestamp":"2025-03-01T10:00:00"}],"has_next":false}`
	r, out := newTestREPL(t, srv)

	in := &scriptedInput{lines: []string{"/help", "/open", "/open c9", "/open missing", "/bogus", "follow up"}}
	require.NoError(t, r.run(context.Background(), in))

	s := out.String()
	assert.Contains(t, s, "/history")
	assert.Contains(t, s, "usage: /open <conversation-id>")
	assert.Contains(t, s, "old question")
	assert.Contains(t, s, "unknown command: /bogus")
	require.Len(t, fb.sent, 1)
	// The failed /open switched away from c9.
	assert.Equal(t, "missing", fb.sent[0].ID)
}

func TestREPL_ListFeedsOpenCompletion(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.pages = []string{pageOne}
	r, out := newTestREPL(t, srv)

	in := &scriptedInput{lines: []string{"/ls"}}
	require.NoError(t, r.run(context.Background(), in))

	assert.Contains(t, out.String(), "Agenda for Friday")
	assert.Equal(t, []string{"/open c1"}, r.commands.Complete("/open c"))
	assert.Equal(t, []string{"/list"}, r.commands.Complete("/li"))
}

// =============================================================================
// CONFIRMATION AND JSON
// =============================================================================

func TestRequireConfirmation(t *testing.T) {
	ok, err := RequireConfirmation(strings.NewReader(""), io.Discard, "delete", ConfirmationOptions{Yes: true})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = RequireConfirmation(strings.NewReader(""), io.Discard, "delete", ConfirmationOptions{JSONMode: true})
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	_, err = RequireConfirmation(strings.NewReader("y\n"), io.Discard, "delete", ConfirmationOptions{})
	assert.ErrorIs(t, err, ErrConfirmationRequired)
}

func TestRequireConfirmation_Prompt(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "stdin")
			require.NoError(t, os.WriteFile(path, []byte(tt.answer), 0600))
			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			var prompt bytes.Buffer
			ok, err := RequireConfirmation(f, &prompt, "delete conversation c1", ConfirmationOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, prompt.String(), "delete conversation c1? [y/N]")
		})
	}
}

func TestPrintJSONResult_ErrorEnvelope(t *testing.T) {
	var out bytes.Buffer
	boom := io.ErrUnexpectedEOF
	err := printJSONResult(&out, "status", map[string]string{"ignored": "x"}, boom)
	assert.Equal(t, boom, err)

	resp := decodeResponse(t, out.String())
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, boom.Error(), *resp.Error)
	assert.NotEmpty(t, resp.Timestamp)
}

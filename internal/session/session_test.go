// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/model"
)

type fakeSender struct {
	resp  *api.SendResponse
	err   error
	calls []api.SendRequest
}

func (f *fakeSender) SendMessage(_ context.Context, text, id string) (*api.SendResponse, error) {
	f.calls = append(f.calls, api.SendRequest{Message: text, ID: id})
	return f.resp, f.err
}

type fakeFetcher struct {
	msgs []api.StoredMessage
	err  error
}

func (f *fakeFetcher) FetchTranscript(context.Context, string, int) ([]api.StoredMessage, error) {
	return f.msgs, f.err
}

func TestSession_SendAdoptsConversationID(t *testing.T) {
	s := New("")
	sender := &fakeSender{resp: &api.SendResponse{OpenAIID: "conv-1", Message: "Hi!"}}

	req, ok := s.Submit("Hello")
	require.True(t, ok)
	assert.Equal(t, StateSending, s.State)
	assert.False(t, s.CanSubmit())
	require.Len(t, s.Messages, 1, "user message is appended immediately")
	assert.Equal(t, model.RoleUser, s.Messages[0].Role)
	assert.Equal(t, "Hello", s.Messages[0].Content)
	assert.Equal(t, "", req.ConversationID)

	out := s.ApplySend(req.Execute(context.Background(), sender))
	assert.True(t, out.Applied)
	assert.True(t, out.Adopted)
	assert.Equal(t, StateActive, s.State)
	assert.Equal(t, "conv-1", s.ConversationID)
	require.Len(t, s.Messages, 2)
	assert.Equal(t, model.RoleAssistant, s.Messages[1].Role)
	assert.Equal(t, "Hi!", s.Messages[1].Content)

	// Second turn keeps the adopted id.
	sender.resp = &api.SendResponse{ID: "other", Message: "Again"}
	_, err := s.Send(context.Background(), sender, "More")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", s.ConversationID)
	assert.Equal(t, "conv-1", sender.calls[1].ID)
}

func TestSession_SendParsesStructuredReply(t *testing.T) {
	s := New("")
	sender := &fakeSender{resp: &api.SendResponse{
		ID:      "c",
		Message: `{"message":"See {a}","references":{"a":{"type":"document","link":"https://x/y"}}}`,
	}}

	msg, err := s.Send(context.Background(), sender, "docs?")
	require.NoError(t, err)
	assert.Equal(t, "See {a}", msg.Content)
	require.Contains(t, msg.References, "a")
	assert.Equal(t, model.ReferenceDocument, msg.References["a"].Type)
}

func TestSession_SendFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &api.Error{Status: 500, Message: "Failed to process message"}, "Failed to process message"},
		{"no message", &api.Error{Status: 502}, "fallback text"},
		{"transport", fmt.Errorf("%w: dial", api.ErrTransport), "fallback text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("fallback text")
			msg, err := s.Send(context.Background(), &fakeSender{err: tt.err}, "Hello")
			require.Error(t, err)

			require.Len(t, s.Messages, 2, "exactly one synthetic message is appended")
			assert.Equal(t, model.RoleAssistant, msg.Role)
			assert.True(t, msg.Synthetic)
			assert.Equal(t, tt.want, msg.Content)
			assert.Equal(t, StateActive, s.State)
			assert.True(t, s.CanSubmit(), "input is enabled again")
			assert.Equal(t, "", s.ConversationID)
		})
	}
}

func TestSession_SubmitGuards(t *testing.T) {
	s := New("")
	_, ok := s.Submit("   ")
	assert.False(t, ok)

	_, ok = s.Submit("one")
	require.True(t, ok)
	_, ok = s.Submit("two")
	assert.False(t, ok, "at most one send in flight")
	assert.Len(t, s.Messages, 1)

	_, err := s.Send(context.Background(), &fakeSender{}, "three")
	assert.ErrorIs(t, err, ErrCannotSubmit)
}

func TestSession_ResetDropsLateReply(t *testing.T) {
	s := New("")
	req, ok := s.Submit("Hello")
	require.True(t, ok)

	s.Reset()
	assert.Equal(t, StateEmpty, s.State)
	assert.Empty(t, s.Messages)
	assert.Equal(t, "", s.ConversationID)

	out := s.ApplySend(req.Execute(context.Background(), &fakeSender{resp: &api.SendResponse{ID: "late", Message: "late"}}))
	assert.False(t, out.Applied)
	assert.Empty(t, s.Messages)
	assert.Equal(t, "", s.ConversationID)
}

func TestSession_SelectLoadsHistory(t *testing.T) {
	s := New("")
	f := &fakeFetcher{msgs: []api.StoredMessage{
		{ID: "m1", Role: model.RoleUser, Content: "Where?"},
		{ID: "m2", Role: model.RoleAssistant, Content: `{"message":"At {e}","references":{"e":{"type":"event","link":"https://ev"}}}`},
		{ID: "m2", Role: model.RoleAssistant, Content: "duplicate server id"},
	}}

	req := s.Select("conv-9")
	assert.Equal(t, StateLoadingHistory, s.State)
	assert.False(t, s.CanSubmit())

	out := s.ApplyHistory(req.Execute(context.Background(), f, 100))
	require.True(t, out.Applied)
	assert.Equal(t, StateActive, s.State)
	assert.Equal(t, "conv-9", s.ConversationID)
	require.Len(t, s.Messages, 3)

	assert.Equal(t, "At {e}", s.Messages[1].Content)
	assert.Equal(t, model.ReferenceEvent, s.Messages[1].References["e"].Type)

	// Duplicate server ids are kept; local sequence numbers stay unique.
	assert.Equal(t, s.Messages[1].ServerID, s.Messages[2].ServerID)
	assert.NotEqual(t, s.Messages[1].Seq, s.Messages[2].Seq)
	assert.Less(t, s.Messages[0].Seq, s.Messages[1].Seq)
}

func TestSession_StaleHistoryIgnored(t *testing.T) {
	s := New("")
	f := &fakeFetcher{msgs: []api.StoredMessage{{ID: "x", Role: model.RoleUser, Content: "old"}}}

	first := s.Select("a")
	second := s.Select("b")

	assert.False(t, s.ApplyHistory(first.Execute(context.Background(), f, 10)).Applied)
	assert.Equal(t, StateLoadingHistory, s.State)

	assert.True(t, s.ApplyHistory(second.Execute(context.Background(), f, 10)).Applied)
	assert.Equal(t, "b", s.ConversationID)
}

func TestSession_HistoryFailure(t *testing.T) {
	s := New("")
	err := s.Open(context.Background(), &fakeFetcher{err: errors.New("boom")}, "c", 10)
	require.Error(t, err)
	assert.Equal(t, StateActive, s.State)
	assert.Equal(t, "c", s.ConversationID)
	assert.Empty(t, s.Messages)
	assert.Error(t, s.HistoryErr)
}

func TestSession_AgainstHTTPBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/messages":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"detail":"Failed to process message: upstream timeout","error_code":"HTTP_500"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := New("fallback")
	msg, err := s.Send(context.Background(), api.New(srv.URL, api.WithHTTPClient(srv.Client())), "Hello")
	require.Error(t, err)
	assert.Equal(t, "fallback", msg.Content, "FastAPI detail is not shown to the user")
	assert.True(t, msg.Synthetic)
	assert.Len(t, s.Messages, 2)
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestStatusRotator(t *testing.T) {
	r := NewStatusRotator([]string{"a", "b", "c"})
	assert.False(t, r.Active())
	assert.Equal(t, "a", r.Advance().Current(), "idle rotator does not move")

	r = r.Start()
	assert.Equal(t, "a", r.Current())
	r = r.Advance()
	assert.Equal(t, "b", r.Current())
	r = r.Advance().Advance()
	assert.Equal(t, "a", r.Current(), "cycles after the last phrase")
	r = r.Advance()
	assert.Equal(t, 1, r.Index())

	r = r.Stop()
	assert.Equal(t, 0, r.Index())
	assert.False(t, r.Active())

	assert.Equal(t, "", NewStatusRotator(nil).Start().Advance().Current())
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"strings"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/model"
)

// =============================================================================
// STATE
// =============================================================================

// State is the controller state.
type State int

const (
	// StateEmpty has no conversation selected and shows suggestions.
	StateEmpty State = iota

	// StateLoadingHistory waits for a selected conversation's transcript.
	StateLoadingHistory

	// StateActive accepts new input.
	StateActive

	// StateSending waits for the assistant's reply. Input is disabled.
	StateSending
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoadingHistory:
		return "loading-history"
	case StateActive:
		return "active"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}

// ErrCannotSubmit is returned by Send when the text is blank or a reply is
// still pending.
var ErrCannotSubmit = errors.New("cannot submit while a reply is pending")

// DefaultFallbackError is shown when a send fails without a server message.
const DefaultFallbackError = "Sorry, I encountered an error. Please try again."

// =============================================================================
// COLLABORATORS
// =============================================================================

// Sender posts a message to the assistant.
type Sender interface {
	SendMessage(ctx context.Context, text, id string) (*api.SendResponse, error)
}

// TranscriptFetcher loads a conversation's stored messages.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, id string, limit int) ([]api.StoredMessage, error)
}

// SendRequest is an outgoing message started by Submit.
type SendRequest struct {
	Epoch          uint64
	Text           string
	ConversationID string
}

// Execute performs the request.
func (r SendRequest) Execute(ctx context.Context, s Sender) SendResult {
	resp, err := s.SendMessage(ctx, r.Text, r.ConversationID)
	return SendResult{Epoch: r.Epoch, Response: resp, Err: err}
}

// SendResult is the outcome of a SendRequest.
type SendResult struct {
	Epoch    uint64
	Response *api.SendResponse
	Err      error
}

// HistoryRequest is a transcript load started by Select.
type HistoryRequest struct {
	Epoch          uint64
	ConversationID string
}

// Execute performs the request with the given page size.
func (r HistoryRequest) Execute(ctx context.Context, f TranscriptFetcher, limit int) HistoryResult {
	msgs, err := f.FetchTranscript(ctx, r.ConversationID, limit)
	return HistoryResult{Epoch: r.Epoch, ConversationID: r.ConversationID, Messages: msgs, Err: err}
}

// HistoryResult is the outcome of a HistoryRequest.
type HistoryResult struct {
	Epoch          uint64
	ConversationID string
	Messages       []api.StoredMessage
	Err            error
}

// Outcome reports how an asynchronous result was merged.
type Outcome struct {
	// Applied is false when the result was stale and dropped.
	Applied bool

	// Adopted is true when a reply promoted a new conversation to a named one.
	Adopted bool

	// Err is the request error, if any.
	Err error
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the owned chat state. It is not safe for concurrent use.
type Session struct {
	State          State
	ConversationID string
	Messages       []model.Message

	// Epoch increases on Select and Reset.
	Epoch uint64

	// HistoryErr holds the last transcript load failure, cleared on Select.
	HistoryErr error

	fallback string
	seq      model.Sequence
}

// New creates an empty session. fallback is the synthetic error text used
// when a send fails without a server message.
func New(fallback string) *Session {
	if fallback == "" {
		fallback = DefaultFallbackError
	}
	return &Session{fallback: fallback}
}

// SetFallback replaces the synthetic error text, e.g. after a locale change.
func (s *Session) SetFallback(fallback string) {
	if fallback != "" {
		s.fallback = fallback
	}
}

// CanSubmit reports whether input is enabled.
func (s *Session) CanSubmit() bool {
	return s.State == StateEmpty || s.State == StateActive
}

// Reset clears the conversation unconditionally and returns to Empty.
func (s *Session) Reset() {
	s.Epoch++
	s.State = StateEmpty
	s.ConversationID = ""
	s.Messages = nil
	s.HistoryErr = nil
}

// Select starts loading conversation id.
func (s *Session) Select(id string) HistoryRequest {
	s.Epoch++
	s.State = StateLoadingHistory
	s.ConversationID = id
	s.Messages = nil
	s.HistoryErr = nil
	return HistoryRequest{Epoch: s.Epoch, ConversationID: id}
}

// ApplyHistory merges a transcript load. On failure the session becomes
// Active with no messages, so the user can still continue the conversation.
func (s *Session) ApplyHistory(res HistoryResult) Outcome {
	if res.Epoch != s.Epoch || s.State != StateLoadingHistory {
		return Outcome{}
	}
	s.State = StateActive
	if res.Err != nil {
		s.HistoryErr = res.Err
		return Outcome{Applied: true, Err: res.Err}
	}

	s.Messages = make([]model.Message, 0, len(res.Messages))
	for _, m := range res.Messages {
		s.Messages = append(s.Messages, s.fromStored(m))
	}
	return Outcome{Applied: true}
}

// fromStored converts a stored message, pre-parsing assistant envelopes.
func (s *Session) fromStored(m api.StoredMessage) model.Message {
	msg := model.Message{
		Seq:       s.seq.Next(),
		ServerID:  m.ID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.Timestamp.Time,
	}
	if m.Role == model.RoleAssistant {
		c := model.ParseContent(m.Content)
		msg.Content = c.Text()
		msg.References = c.References()
	}
	return msg
}

// Submit appends a user message and moves to Sending. ok is false when the
// text is blank or input is disabled.
func (s *Session) Submit(text string) (SendRequest, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !s.CanSubmit() {
		return SendRequest{}, false
	}
	s.Messages = append(s.Messages, model.NewUserMessage(s.seq.Next(), text))
	s.State = StateSending
	return SendRequest{Epoch: s.Epoch, Text: text, ConversationID: s.ConversationID}, true
}

// ApplySend merges a send result. A reply is appended as an assistant
// message and its id adopted when the session had none; a failure appends
// exactly one synthetic error message. Either way the session returns to
// Active.
func (s *Session) ApplySend(res SendResult) Outcome {
	if res.Epoch != s.Epoch || s.State != StateSending {
		return Outcome{}
	}
	s.State = StateActive

	if res.Err != nil || res.Response == nil {
		text := api.ServerMessage(res.Err)
		if text == "" {
			text = s.fallback
		}
		s.Messages = append(s.Messages, model.NewErrorMessage(s.seq.Next(), text))
		return Outcome{Applied: true, Err: res.Err}
	}

	out := Outcome{Applied: true}
	replyID := res.Response.ReplyID()
	if s.ConversationID == "" && replyID != "" {
		s.ConversationID = replyID
		out.Adopted = true
	}
	content := model.ParseContent(res.Response.Message)
	s.Messages = append(s.Messages, model.NewAssistantMessage(s.seq.Next(), replyID, content))
	return out
}

// =============================================================================
// ONE-SHOT HELPERS
// =============================================================================

// Open selects id and loads its transcript.
func (s *Session) Open(ctx context.Context, f TranscriptFetcher, id string, limit int) error {
	req := s.Select(id)
	return s.ApplyHistory(req.Execute(ctx, f, limit)).Err
}

// Send submits text and waits for the reply. It returns the appended
// assistant message, which is a synthetic error message on failure.
func (s *Session) Send(ctx context.Context, sender Sender, text string) (model.Message, error) {
	req, ok := s.Submit(text)
	if !ok {
		return model.Message{}, ErrCannotSubmit
	}
	out := s.ApplySend(req.Execute(ctx, sender))
	return s.Messages[len(s.Messages)-1], out.Err
}

// Last returns the most recent message, if any.
func (s *Session) Last() (model.Message, bool) {
	if len(s.Messages) == 0 {
		return model.Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

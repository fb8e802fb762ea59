// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jeranaias/concierge-tui/internal/model"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// ConversationPage is one page of GET /chat.
type ConversationPage struct {
	Conversations      []model.ConversationSummary `json:"conversations"`
	TotalConversations int                         `json:"total_conversations"`
	Page               int                         `json:"page"`
	Limit              int                         `json:"limit"`
	TotalPages         int                         `json:"total_pages"`
	HasNext            bool                        `json:"has_next"`
	HasPrevious        bool                        `json:"has_previous"`
}

// StoredMessage is a message as persisted by the backend.
type StoredMessage struct {
	ID        string          `json:"id"`
	Role      model.Role      `json:"role"`
	Content   string          `json:"content"`
	Timestamp model.Timestamp `json:"timestamp"`
	OpenAIID  string          `json:"openai_id,omitempty"`
}

// TranscriptPage is one page of GET /chat/{id}.
type TranscriptPage struct {
	Messages      []StoredMessage `json:"messages"`
	TotalMessages int             `json:"total_messages"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
	TotalPages    int             `json:"total_pages"`
	HasNext       bool            `json:"has_next"`
	HasPrevious   bool            `json:"has_previous"`
}

// SendRequest is the body of POST /messages.
type SendRequest struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// SendResponse is the reply to POST /messages.
type SendResponse struct {
	ID       string `json:"id,omitempty"`
	OpenAIID string `json:"openai_id,omitempty"`
	Message  string `json:"message"`
}

// ReplyID returns the conversation id the reply belongs to, preferring id
// over openai_id.
func (r SendResponse) ReplyID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.OpenAIID
}

// ProfileRequest is the body of POST /linkedin-profile.
type ProfileRequest struct {
	LinkedInURL string `json:"linkedinUrl"`
}

// Profile is the verified identity returned for a profile URL.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Health is the reply to GET /health.
type Health struct {
	Status           string          `json:"status"`
	OpenAIClient     string          `json:"openai_client"`
	APIKeyConfigured bool            `json:"api_key_configured"`
	Timestamp        model.Timestamp `json:"timestamp"`
}

// =============================================================================
// ENDPOINTS
// =============================================================================

// MaxPageLimit is the largest page size the backend accepts.
const MaxPageLimit = 100

// ListConversations fetches one page of conversation summaries.
func (c *Client) ListConversations(ctx context.Context, page, limit int) (*ConversationPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out ConversationPage
	if err := c.Get(ctx, pathWithQuery("/chat", q), &out); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return &out, nil
}

// GetTranscript fetches one page of a conversation's messages.
func (c *Client) GetTranscript(ctx context.Context, id string, page, limit int) (*TranscriptPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out TranscriptPage
	if err := c.Get(ctx, pathWithQuery("/chat/"+url.PathEscape(id), q), &out); err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	return &out, nil
}

// FetchTranscript pages through GET /chat/{id} until has_next is false and
// returns every message in server order.
func (c *Client) FetchTranscript(ctx context.Context, id string, limit int) ([]StoredMessage, error) {
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	var all []StoredMessage
	for page := 1; ; page++ {
		p, err := c.GetTranscript(ctx, id, page, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Messages...)
		if !p.HasNext || len(p.Messages) == 0 {
			return all, nil
		}
	}
}

// DeleteConversation deletes a conversation on the server.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	if err := c.Delete(ctx, "/chat/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}

// SendMessage posts text to the assistant. An empty id starts a new conversation.
func (c *Client) SendMessage(ctx context.Context, text, id string) (*SendResponse, error) {
	var out SendResponse
	if err := c.Post(ctx, "/messages", SendRequest{Message: text, ID: id}, &out); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	return &out, nil
}

// SubmitProfile posts a profile URL for verification.
func (c *Client) SubmitProfile(ctx context.Context, profileURL string) (*Profile, error) {
	var out Profile
	if err := c.Post(ctx, "/linkedin-profile", ProfileRequest{LinkedInURL: profileURL}, &out); err != nil {
		return nil, fmt.Errorf("submit profile: %w", err)
	}
	return &out, nil
}

// Health reports backend readiness.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.Get(ctx, "/health", &out); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return &out, nil
}

// UserProfile returns the stored profile document as loosely typed JSON.
func (c *Client) UserProfile(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.Get(ctx, "/user-profile", &out); err != nil {
		return nil, fmt.Errorf("user profile: %w", err)
	}
	return out, nil
}

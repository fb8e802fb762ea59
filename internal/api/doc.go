// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the concierge backend.
//
// The client is a thin JSON wrapper exposing Get, Post and Delete against a
// configured base URL, plus typed calls for each backend endpoint. It does not
// retry on its own; wrap its transport with NewRetryDoer when resilience is
// wanted.
//
// # Endpoints
//
//   - ListConversations: GET /chat?page=N&limit=L
//   - GetTranscript / FetchTranscript: GET /chat/{id}
//   - DeleteConversation: DELETE /chat/{id}
//   - SendMessage: POST /messages
//   - SubmitProfile: POST /linkedin-profile
//   - Health: GET /health
//   - UserProfile: GET /user-profile
//
// # Errors
//
// Non-2xx responses surface as *Error carrying the HTTP status and the
// server-provided message. Connection failures wrap ErrTransport and
// undecodable bodies wrap ErrDecode.
//
// # Usage
//
//	client := api.New("http://localhost:8000", api.WithTimeout(30*time.Second))
//	page, err := client.ListConversations(ctx, 1, 10)
//	if err != nil {
//	    if api.StatusCode(err) == http.StatusNotFound { ... }
//	}
package api

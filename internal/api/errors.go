// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error variables for failures that never reached a usable response.
var (
	// ErrTransport indicates a connection, DNS or timeout failure.
	ErrTransport = errors.New("transport error")

	// ErrDecode indicates a 2xx response whose body could not be decoded.
	ErrDecode = errors.New("decode error")

	// ErrResponseTooLarge indicates the body exceeded MaxResponseSize.
	ErrResponseTooLarge = errors.New("response too large")
)

// Error is a non-2xx response from the backend.
type Error struct {
	// Status is the HTTP status code.
	Status int

	// Message is the user-facing message from the body's "message" field,
	// empty when none was sent.
	Message string

	// Detail is FastAPI's "detail" text. It describes the server-side
	// failure and is meant for logs, not for users.
	Detail string

	// Code is the backend's error_code, if any.
	Code string

	// RequestID is the X-Request-ID sent with the failing request.
	RequestID string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Detail
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("api error [%s] (HTTP %d): %s", e.Code, e.Status, msg)
	}
	return fmt.Sprintf("api error (HTTP %d): %s", e.Status, msg)
}

// errorBody covers both the client-facing {"message"} shape and FastAPI's
// {"detail"} shape. detail may also be a list of validation issues.
type errorBody struct {
	Message   string          `json:"message"`
	Detail    json.RawMessage `json:"detail"`
	ErrorCode string          `json:"error_code"`
}

// parseError builds an *Error from a non-2xx response body.
func parseError(status int, body []byte, requestID string) *Error {
	apiErr := &Error{Status: status, RequestID: requestID}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}
	apiErr.Code = eb.ErrorCode
	apiErr.Message = strings.TrimSpace(eb.Message)
	apiErr.Detail = detailMessage(eb.Detail)
	return apiErr
}

func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var issues []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &issues); err == nil && len(issues) > 0 {
		return strings.TrimSpace(issues[0].Msg)
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a backend response.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// ServerMessage returns the user-facing message carried by err, if any.
// FastAPI's detail is never returned here; callers fall back to their own
// localized text.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsTransport reports whether err is a connection-level failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversations manages the paginated conversation list.
//
// The list is filled page by page from GET /chat. LoadFirstPage always
// replaces the list wholesale; LoadNextPage appends and is a no-op while a
// fetch is in flight or when the server reported no further pages.
// Deletion is server-confirmed: an entry is removed only after the backend
// acknowledges the delete, and a failed delete leaves both the list and the
// pending target in place so the user can retry or cancel.
//
// Every operation is split into Begin (synchronous state check), a fetch
// that may run on another goroutine, and Apply (synchronous merge). The
// Bubble Tea sidebar calls the parts separately; the CLI uses the one-shot
// wrappers.
package conversations

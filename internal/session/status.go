// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import "time"

// DefaultStatusInterval is how long each status phrase is shown.
const DefaultStatusInterval = 2 * time.Second

// StatusRotator cycles through a fixed, ordered set of phrases while a reply
// is pending. Methods return the next value and leave the receiver alone.
type StatusRotator struct {
	phrases []string
	index   int
	active  bool
}

// NewStatusRotator returns an idle rotator over phrases.
func NewStatusRotator(phrases []string) StatusRotator {
	return StatusRotator{phrases: append([]string(nil), phrases...)}
}

// Start activates the rotator at the first phrase.
func (r StatusRotator) Start() StatusRotator {
	r.active = true
	r.index = 0
	return r
}

// Stop deactivates the rotator and rewinds it to the first phrase.
func (r StatusRotator) Stop() StatusRotator {
	r.active = false
	r.index = 0
	return r
}

// Advance moves to the next phrase, wrapping after the last. Idle rotators
// do not move.
func (r StatusRotator) Advance() StatusRotator {
	if !r.active || len(r.phrases) == 0 {
		return r
	}
	r.index = (r.index + 1) % len(r.phrases)
	return r
}

// Active reports whether the rotator is running.
func (r StatusRotator) Active() bool {
	return r.active
}

// Index returns the current phrase index.
func (r StatusRotator) Index() int {
	return r.index
}

// Current returns the phrase to display.
func (r StatusRotator) Current() string {
	if len(r.phrases) == 0 {
		return ""
	}
	return r.phrases[r.index]
}

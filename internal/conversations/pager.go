// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversations

// Pager is the pagination cursor. All methods are pure: they return the next
// state and never modify the receiver.
//
// Invariants: at most one fetch is in flight, and Page only moves forward on
// a successful fetch.
type Pager struct {
	// Page is the next page to request.
	Page int

	// HasMore is false once the server reports no further pages.
	HasMore bool

	// InFlight is true while a fetch is outstanding.
	InFlight bool
}

// NewPager returns the initial cursor.
func NewPager() Pager {
	return Pager{Page: 1, HasMore: true}
}

// BeginFirst starts a first-page fetch. It is always allowed.
func (p Pager) BeginFirst() (Pager, int) {
	p.InFlight = true
	return p, 1
}

// BeginNext starts a fetch of the current page. ok is false, and the state
// unchanged, when a fetch is in flight or no pages remain.
func (p Pager) BeginNext() (next Pager, page int, ok bool) {
	if p.InFlight || !p.HasMore {
		return p, 0, false
	}
	p.InFlight = true
	return p, p.Page, true
}

// Succeed records a successful fetch of page.
func (p Pager) Succeed(page int, hasNext bool) Pager {
	p.InFlight = false
	p.Page = page + 1
	p.HasMore = hasNext
	return p
}

// Fail records a failed fetch. The cursor does not move.
func (p Pager) Fail() Pager {
	p.InFlight = false
	return p
}

// ShouldLoadMore reports whether the remaining distance to the bottom of the
// scrolled content is below 1.5 viewport heights.
func ShouldLoadMore(scrollTop, contentHeight, viewportHeight int) bool {
	if viewportHeight <= 0 {
		return false
	}
	remaining := contentHeight - (scrollTop + viewportHeight)
	return float64(remaining) < 1.5*float64(viewportHeight)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"time"

	"golang.org/x/text/language"
)

// RelativeTime formats t relative to now: "just now", "N minutes ago",
// "N hours ago", "N days ago" for less than a week, otherwise a short date.
//
// Timestamps in the future usually carry a wrong year. They are moved into
// the current year and, if that lands in the past day, formatted as minutes
// or hours ago; anything else in the future reads "just now".
func (p *Printer) RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)
	if diff < 0 {
		corrected := time.Date(now.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		cdiff := now.Sub(corrected)
		if cdiff >= 0 {
			minutes := int(cdiff / time.Minute)
			hours := int(cdiff / time.Hour)
			switch {
			case hours < 1 && minutes <= 1:
				return p.T(TimeJustNow)
			case hours < 1:
				return p.T(TimeMinutesAgo, minutes)
			case hours < 24:
				return p.T(TimeHoursAgo, hours)
			}
		}
		return p.T(TimeJustNow)
	}

	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))
	switch {
	case minutes < 1:
		return p.T(TimeJustNow)
	case hours < 1:
		return p.T(TimeMinutesAgo, minutes)
	case hours < 24:
		return p.T(TimeHoursAgo, hours)
	case days < 7:
		return p.T(TimeDaysAgo, days)
	}
	return p.Date(t.In(now.Location()))
}

// Date formats t as a short locale date.
func (p *Printer) Date(t time.Time) string {
	if base, _ := p.tag.Base(); base == frenchBase {
		return t.Format("02/01/2006")
	}
	return t.Format("1/2/2006")
}

var frenchBase, _ = language.French.Base()

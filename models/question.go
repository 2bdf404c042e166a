// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecentWindow is how far back a publication still counts as recent.
const RecentWindow = 24 * time.Hour

// WasPublishedRecently reports whether the question went live within the
// last day relative to now: now-24h < PubDate <= now.
// Future questions are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	if q.PubDate.After(now) {
		return false
	}
	return q.PubDate.After(now.Add(-RecentWindow))
}

// IsPublished reports whether the question is visible at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"testing"
	"time"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"now", now, true},
		{"one hour ago", now.Add(-time.Hour), true},
		{"just inside a day", now.Add(-RecentWindow + time.Second), true},
		{"exactly one day ago", now.Add(-RecentWindow), false},
		{"just over a day ago", now.Add(-RecentWindow - time.Second), false},
		{"two days ago", now.AddDate(0, 0, -2), false},
		{"thirty days ago", now.AddDate(0, 0, -30), false},
		{"one second in the future", now.Add(time.Second), false},
		{"two days in the future", now.AddDate(0, 0, 2), false},
		{"thirty days in the future", now.AddDate(0, 0, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{QuestionText: "Question test", PubDate: tt.pubDate}
			if got := q.WasPublishedRecently(now); got != tt.want {
				t.Errorf("WasPublishedRecently() = %v, want %v (pub_date %v, now %v)", got, tt.want, tt.pubDate, now)
			}
		})
	}
}

func TestWasPublishedRecently_IgnoresTimeZone(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	// Same instant as now-1h, expressed in another zone.
	q := Question{PubDate: now.Add(-time.Hour).In(tokyo)}
	if !q.WasPublishedRecently(now) {
		t.Error("Expected question published an hour ago in another zone to be recent")
	}
}

func TestIsPublished(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	if !(Question{PubDate: now}).IsPublished(now) {
		t.Error("Expected question published now to be visible")
	}
	if !(Question{PubDate: now.AddDate(0, 0, -30)}).IsPublished(now) {
		t.Error("Expected past question to be visible")
	}
	if (Question{PubDate: now.Add(time.Nanosecond)}).IsPublished(now) {
		t.Error("Expected future question to be hidden")
	}
}

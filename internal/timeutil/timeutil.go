// Package timeutil normalizes all timestamps the server stores or compares.
// Everything is UTC at second precision in the canonical MySQL DATETIME
// layout, so string-formatted and parsed values round-trip exactly.
package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// Layout is the canonical storage/wire layout for timestamps.
const Layout = "2006-01-02 15:04:05"

// DayLayout is the shape of client-supplied day/month selectors.
const DayLayout = "2006-01-02"

var selectorRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Now returns the current wall-clock time in canonical precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Parse accepts a client-supplied timestamp in the canonical layout,
// RFC 3339, or a bare date (midnight).
func Parse(s string) (time.Time, error) {
	for _, layout := range []string{Layout, time.RFC3339, DayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseSelector validates a YYYY-MM-DD day selector. The shape check runs
// first so "2024-1-5" fails even though time.Parse would accept variants.
func ParseSelector(s string) (time.Time, error) {
	if !selectorRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date format %q, use YYYY-MM-DD", s)
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// DayBounds returns the half-open interval [00:00:00, next day 00:00:00)
// covering the day of t.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.UTC().Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// MonthBounds returns the closed interval from the first of the month
// 00:00:00 through the last day 23:59:59, handling variable month lengths
// and leap years.
func MonthBounds(t time.Time) (start, end time.Time) {
	y, m, _ := t.UTC().Date()
	start = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-time.Second)
}

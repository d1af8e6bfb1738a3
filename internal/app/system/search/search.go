// internal/app/system/search/search.go

// Package search holds the in-memory filter primitives shared by the
// list pages. Filters are always conjunctive: a row must pass every
// active filter to appear.
package search

import (
	"strings"
	"time"
)

// Matches reports whether the query is a case-insensitive substring of
// any of the fields. An empty query matches everything.
func Matches(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// EnumMatches reports whether value equals the selected enum filter.
// Empty or "all" selections match everything; otherwise the comparison
// is exact and case-sensitive, the way enum values are stored.
func EnumMatches(selected, value string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" || strings.EqualFold(selected, "all") {
		return true
	}
	return selected == value
}

// DateRange is an inclusive [From, To] day filter. Zero bounds are
// open ends.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses "2006-01-02" bounds. Malformed bounds are
// treated as absent rather than failing the whole request.
func ParseDateRange(from, to string) DateRange {
	var r DateRange
	if t, err := time.Parse("2006-01-02", from); err == nil {
		r.From = t
	}
	if t, err := time.Parse("2006-01-02", to); err == nil {
		// Inclusive: cover the whole To day.
		r.To = t.Add(24*time.Hour - time.Second)
	}
	return r
}

// Contains reports whether the RFC 3339 timestamp falls inside the
// range. Timestamps that fail to parse are excluded once any bound is
// set; with no bounds everything passes.
func (r DateRange) Contains(timestamp string) bool {
	if r.From.IsZero() && r.To.IsZero() {
		return true
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return false
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// Filter returns the rows for which keep is true, preserving order.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

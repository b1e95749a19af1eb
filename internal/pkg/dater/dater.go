// Package dater handles the calendar dates used by exercise entries.
//
// Dates are stored and compared in a canonical YYYY-MM-DD form, normalized to
// UTC, and rendered to clients in a human-readable day-of-week form. The
// display form is one-way: re-parsing it is not required to round-trip.
package dater

import (
	"errors"
	"strings"
	"time"
)

// CanonicalLayout is the storage and comparison form of a calendar date.
const CanonicalLayout = "2006-01-02"

// DisplayLayout is the human-readable form returned to clients.
const DisplayLayout = "Mon Jan 02 2006"

// ErrInvalidDate indicates the input could not be parsed as a calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// parseLayouts lists the accepted input formats, most common first. Inputs
// carrying a time component or zone offset are normalized to UTC before the
// date is taken.
var parseLayouts = []string{
	CanonicalLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2 2006",
	"January 2, 2006",
	DisplayLayout,
}

// Parse interprets s as a calendar date and returns it normalized to UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// Canonical returns the UTC calendar date of t in YYYY-MM-DD form.
func Canonical(t time.Time) string {
	return t.UTC().Format(CanonicalLayout)
}

// Display renders the UTC calendar date of t in the human-readable form.
func Display(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

// DisplayCanonical re-renders a stored canonical date for client output.
// A value that is not in canonical form is returned unchanged.
func DisplayCanonical(s string) string {
	t, err := time.Parse(CanonicalLayout, s)
	if err != nil {
		return s
	}
	return Display(t)
}

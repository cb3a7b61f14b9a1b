// Package view renders the server-side HTML pages from templates embedded in
// the binary, and owns all date/time presentation.
package view

import (
	"fmt"
	"time"
)

// Layouts accepted when parsing user- or database-supplied timestamps.
// Tried in order; the first match wins.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04", // HTML datetime-local input
	"2006-01-02",
}

const (
	fullLayout   = "Monday January 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01/02/2006 3:04PM"

	// showTimeLayout is the fixed format of the shows listing page.
	showTimeLayout = "01/02/2006, 15:04:05"
)

// ParseTimestamp parses a timestamp string against the accepted layouts.
// Returns an error when the input matches none of them.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("view.ParseTimestamp: unrecognized timestamp %q", value)
}

// FormatDatetime parses value and renders it in the requested style.
// Style is "full" or "medium"; anything else falls back to medium.
// Pure function — same input always yields the same output.
func FormatDatetime(value, style string) (string, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return "", err
	}
	if style == "full" {
		return t.Format(fullLayout), nil
	}
	return t.Format(mediumLayout), nil
}

// FormatShowTime renders a show start time as MM/DD/YYYY, HH:MM:SS.
func FormatShowTime(t time.Time) string {
	return t.Format(showTimeLayout)
}

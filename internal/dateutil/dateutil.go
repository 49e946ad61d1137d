// Package dateutil provides the date formatting policy for invoice documents.
//
// Invoice dates arrive as strings from the remote API and from user-supplied
// files, in a handful of layouts. Formatting never fails: anything that does
// not parse renders as the Missing placeholder.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Missing is rendered for absent or unparseable dates.
const Missing = "N/A"

// Display layouts.
const (
	// LongLayout is used in the rendered document, e.g. "January 15, 2025".
	LongLayout = "January 2, 2006"

	// ShortLayout is used in compact contexts, e.g. "Jan 15, 2025".
	ShortLayout = "Jan 2, 2006"
)

// inputLayouts are tried in order when parsing a date value.
var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Parse parses a date value using the known input layouts.
// Returns the zero time and false if the value is empty or unparseable.
func Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatLong formats a date value as "January 2, 2006", or Missing.
func FormatLong(value string) string {
	t, ok := Parse(value)
	if !ok {
		return Missing
	}
	return t.Format(LongLayout)
}

// FormatShort formats a date value as "Jan 2, 2006", or Missing.
func FormatShort(value string) string {
	t, ok := Parse(value)
	if !ok {
		return Missing
	}
	return t.Format(ShortLayout)
}

// DaysRemaining describes how far a due date is from now, in whole days:
// "3 days left", "1 days overdue", or "Due today".
//
// The plural is intentionally not corrected for n == 1; this matches the
// billing UI's long-standing output and downstream snapshots depend on it.
// Returns "" when the due date is missing or unparseable.
func DaysRemaining(dueDate string, now time.Time) string {
	due, ok := Parse(dueDate)
	if !ok {
		return ""
	}

	// Compare calendar days, not instants.
	y1, m1, d1 := now.Date()
	y2, m2, d2 := due.Date()
	today := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	days := int(dueDay.Sub(today).Hours() / 24)
	switch {
	case days > 0:
		return fmt.Sprintf("%d days left", days)
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	default:
		return "Due today"
	}
}

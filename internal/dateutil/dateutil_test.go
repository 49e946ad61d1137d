package dateutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"ISO date", "2025-01-15", true},
		{"RFC3339", "2025-01-15T10:30:00Z", true},
		{"millisecond timestamp", "2025-01-15T10:30:00.000Z", true},
		{"space separated", "2025-01-15 10:30:00", true},
		{"US slashes", "01/15/2025", true},
		{"padded whitespace", "  2025-01-15  ", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"garbage", "next tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && (got.Year() != 2025 || got.Month() != time.January || got.Day() != 15) {
				t.Errorf("Parse(%q) = %v", tt.input, got)
			}
		})
	}
}

func TestFormatLong(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-01-15", "January 15, 2025"},
		{"2025-12-01T08:00:00Z", "December 1, 2025"},
		{"", Missing},
		{"not-a-date", Missing},
	}

	for _, tt := range tests {
		if got := FormatLong(tt.input); got != tt.want {
			t.Errorf("FormatLong(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatShort(t *testing.T) {
	if got := FormatShort("2025-01-15"); got != "Jan 15, 2025" {
		t.Errorf("FormatShort() = %q", got)
	}
	if got := FormatShort(""); got != Missing {
		t.Errorf("FormatShort(empty) = %q, want %q", got, Missing)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate string
		want    string
	}{
		{"due today", "2025-01-15", "Due today"},
		{"one day left keeps plural", "2025-01-16", "1 days left"},
		{"three days left", "2025-01-18", "3 days left"},
		{"one day overdue keeps plural", "2025-01-14", "1 days overdue"},
		{"a week overdue", "2025-01-08", "7 days overdue"},
		{"crosses month boundary", "2025-02-01", "17 days left"},
		{"missing date", "", ""},
		{"unparseable date", "soon", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(tt.dueDate, now); got != tt.want {
				t.Errorf("DaysRemaining(%q) = %q, want %q", tt.dueDate, got, tt.want)
			}
		})
	}
}

// Calendar-day comparison: late in the evening before the due date is still
// a full day out.
func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2025, time.January, 14, 23, 59, 0, 0, time.UTC)
	if got := DaysRemaining("2025-01-15", now); got != "1 days left" {
		t.Errorf("DaysRemaining() = %q, want %q", got, "1 days left")
	}
}

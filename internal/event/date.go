package event

import (
	"strings"
	"time"
)

// ParseDate attempts to parse an event date as an ISO-8601 timestamp,
// tolerating a trailing "Z" designator and date-only values.
// Returns time.Time{} (zero value) if parsing fails.
func ParseDate(date string) time.Time {
	if date == "" {
		return time.Time{}
	}

	s := strings.TrimSuffix(date, "Z")

	// Try "2025-03-05T22:00:00" format
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err == nil {
		return t
	}

	// Try "2025-03-05" format (date only)
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t
	}

	// Could not parse, return zero time
	return time.Time{}
}

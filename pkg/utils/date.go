package utils

import "time"

// DateLayout is the calendar date format used across request boundaries.
const DateLayout = "2006-01-02"

// DefaultDateRange returns a trailing 365-day window ending at now, formatted
// as calendar dates.
func DefaultDateRange(now time.Time) (string, string) {
	start := now.AddDate(0, 0, -365)
	return start.Format(DateLayout), now.Format(DateLayout)
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

package model

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date form used on every external
// surface (CLI arguments, state files, exports).
const DateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DayFloor truncates an instant to UTC midnight. All schedule comparisons
// happen at day granularity.
func DayFloor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

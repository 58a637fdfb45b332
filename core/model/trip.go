package model

import (
	"fmt"
	"time"
)

// Trip is a planned visit to a Destination over an inclusive date range.
// IDs are sequential, assigned by the store, and never reused within a
// schedule. Start == End represents a single-day trip.
// JSON encoding goes through trip_json.go so dates serialize as plain
// calendar dates.
type Trip struct {
	ID          int64
	Destination string
	Start       time.Time
	End         time.Time
	Notes       string
}

// Validate checks the trip's own invariants. Referential integrity against
// the destination set is the store's concern.
func (t Trip) Validate() error {
	if t.Destination == "" {
		return fmt.Errorf("trip destination must not be empty")
	}
	if t.Start.IsZero() || t.End.IsZero() {
		return fmt.Errorf("trip start and end dates are required")
	}
	if t.Start.After(t.End) {
		return fmt.Errorf("trip start %s is after end %s", FormatDate(t.Start), FormatDate(t.End))
	}
	return nil
}

// Overlaps reports whether the two trips' inclusive date ranges intersect.
// A shared boundary day counts as an overlap.
func (t Trip) Overlaps(other Trip) bool {
	return t.OverlapsRange(other.Start, other.End)
}

// OverlapsRange reports whether the trip intersects [from, to] inclusive.
func (t Trip) OverlapsRange(from, to time.Time) bool {
	return !t.Start.After(to) && !t.End.Before(from)
}

// Days returns the trip length in days, counting both endpoints.
func (t Trip) Days() int {
	return int(t.End.Sub(t.Start).Hours()/24) + 1
}

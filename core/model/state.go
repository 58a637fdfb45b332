package model

// State is the full serialized form of a schedule: every destination keyed
// by name, every trip keyed by id, and the next trip id to assign. The
// encoding of this structure (JSON file, SQLite rows) is the front end's
// decision; the core only defines the shape.
type State struct {
	Destinations map[string]Destination `json:"destinations"`
	Trips        map[int64]Trip         `json:"trips"`
	NextTripID   int64                  `json:"next_trip_id"`
}

// NewState returns an empty state with initialized maps.
func NewState() State {
	return State{
		Destinations: make(map[string]Destination),
		Trips:        make(map[int64]Trip),
		NextTripID:   1,
	}
}

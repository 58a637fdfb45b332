package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kilianp07/tripsched/core/model"
)

// Config defines the store's policy knobs, decided once at construction.
type Config struct {
	// AllowOverlap permits trips with intersecting date ranges. When false
	// (the default), AddTrip rejects any trip whose inclusive range touches
	// an existing one.
	AllowOverlap bool `json:"allow_overlap" yaml:"allow_overlap"`
}

// Store holds the set of destinations and trips and enforces validation and
// conflict rules. It performs no locking and no I/O: embedders running it
// from multiple goroutines must serialize access externally, and
// persistence goes through Snapshot/Restore.
type Store struct {
	cfg          Config
	destinations map[string]model.Destination
	trips        map[int64]model.Trip
	nextTripID   int64
}

// New creates an empty store with the given policy.
func New(cfg Config) *Store {
	return &Store{
		cfg:          cfg,
		destinations: make(map[string]model.Destination),
		trips:        make(map[int64]model.Trip),
		nextTripID:   1,
	}
}

// AddDestination registers a new destination. The name is the unique key;
// region is optional descriptive text.
func (s *Store) AddDestination(name, region string) (model.Destination, error) {
	if strings.TrimSpace(name) == "" {
		return model.Destination{}, fmt.Errorf("add destination: empty name: %w", ErrInvalidInput)
	}
	if _, ok := s.destinations[name]; ok {
		return model.Destination{}, fmt.Errorf("add destination %q: %w", name, ErrDuplicateDestination)
	}
	d := model.Destination{Name: name, Region: region}
	s.destinations[name] = d
	return d, nil
}

// RemoveDestination deletes a destination. A destination referenced by any
// trip cannot be removed; that check runs before existence so the caller
// sees the stronger error.
func (s *Store) RemoveDestination(name string) error {
	for _, t := range s.trips {
		if t.Destination == name {
			return fmt.Errorf("remove destination %q: referenced by trip %d: %w", name, t.ID, ErrDestinationInUse)
		}
	}
	if _, ok := s.destinations[name]; !ok {
		return fmt.Errorf("remove destination %q: %w", name, ErrNotFound)
	}
	delete(s.destinations, name)
	return nil
}

// Destination looks up a destination by name.
func (s *Store) Destination(name string) (model.Destination, error) {
	d, ok := s.destinations[name]
	if !ok {
		return model.Destination{}, fmt.Errorf("destination %q: %w", name, ErrNotFound)
	}
	return d, nil
}

// Destinations returns all destinations sorted by name.
func (s *Store) Destinations() []model.Destination {
	out := make([]model.Destination, 0, len(s.destinations))
	for _, d := range s.destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddTrip plans a visit to an existing destination over the inclusive range
// [start, end]. start == end is a valid single-day trip. When overlaps are
// disallowed the new range must not touch any existing trip's range, shared
// boundary days included.
func (s *Store) AddTrip(destination string, start, end time.Time, notes string) (model.Trip, error) {
	if _, ok := s.destinations[destination]; !ok {
		return model.Trip{}, fmt.Errorf("add trip: destination %q: %w", destination, ErrNotFound)
	}
	start, end = model.DayFloor(start), model.DayFloor(end)
	if start.After(end) {
		return model.Trip{}, fmt.Errorf("add trip: start %s after end %s: %w",
			model.FormatDate(start), model.FormatDate(end), ErrInvalidDateRange)
	}
	t := model.Trip{
		ID:          s.nextTripID,
		Destination: destination,
		Start:       start,
		End:         end,
		Notes:       notes,
	}
	if !s.cfg.AllowOverlap {
		for _, existing := range s.trips {
			if existing.Overlaps(t) {
				return model.Trip{}, fmt.Errorf("add trip: %s..%s overlaps trip %d (%s..%s): %w",
					model.FormatDate(start), model.FormatDate(end),
					existing.ID, model.FormatDate(existing.Start), model.FormatDate(existing.End),
					ErrScheduleConflict)
			}
		}
	}
	s.trips[t.ID] = t
	s.nextTripID++
	return t, nil
}

// RemoveTrip deletes a trip by id.
func (s *Store) RemoveTrip(id int64) error {
	if _, ok := s.trips[id]; !ok {
		return fmt.Errorf("remove trip %d: %w", id, ErrNotFound)
	}
	delete(s.trips, id)
	return nil
}

// Trip looks up a trip by id.
func (s *Store) Trip(id int64) (model.Trip, error) {
	t, ok := s.trips[id]
	if !ok {
		return model.Trip{}, fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	return t, nil
}

// ListTrips returns a snapshot of all trips sorted ascending by start date,
// ties broken by id. Each call reflects the current state.
func (s *Store) ListTrips() []model.Trip {
	out := make([]model.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, t)
	}
	sortTrips(out)
	return out
}

// TripsInRange returns the trips whose inclusive date range intersects
// [from, to], using the same overlap test as conflict detection, in
// ListTrips order.
func (s *Store) TripsInRange(from, to time.Time) []model.Trip {
	from, to = model.DayFloor(from), model.DayFloor(to)
	var out []model.Trip
	for _, t := range s.trips {
		if t.OverlapsRange(from, to) {
			out = append(out, t)
		}
	}
	sortTrips(out)
	return out
}

// Snapshot serializes the full store state. The returned maps are copies;
// mutating them does not affect the store.
func (s *Store) Snapshot() model.State {
	st := model.State{
		Destinations: make(map[string]model.Destination, len(s.destinations)),
		Trips:        make(map[int64]model.Trip, len(s.trips)),
		NextTripID:   s.nextTripID,
	}
	for k, v := range s.destinations {
		st.Destinations[k] = v
	}
	for k, v := range s.trips {
		st.Trips[k] = v
	}
	return st
}

// Restore replaces the store contents with the given state after validating
// it: every trip must be well formed, reference a present destination, and
// respect the store's overlap policy. On error the store is left unchanged.
func (s *Store) Restore(st model.State) error {
	trips := make([]model.Trip, 0, len(st.Trips))
	for id, t := range st.Trips {
		if id != t.ID {
			return fmt.Errorf("restore: trip keyed %d carries id %d: %w", id, t.ID, ErrInvalidInput)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("restore trip %d: %v: %w", id, err, ErrInvalidDateRange)
		}
		if _, ok := st.Destinations[t.Destination]; !ok {
			return fmt.Errorf("restore trip %d: destination %q: %w", id, t.Destination, ErrNotFound)
		}
		trips = append(trips, t)
	}
	for name, d := range st.Destinations {
		if name != d.Name || d.Validate() != nil {
			return fmt.Errorf("restore destination %q: %w", name, ErrInvalidInput)
		}
	}
	if !s.cfg.AllowOverlap {
		sortTrips(trips)
		// Walk in start order carrying the latest end seen so far: any trip
		// starting at or before it overlaps some earlier trip.
		var maxEnd time.Time
		var maxID int64
		for i, t := range trips {
			if i > 0 && !t.Start.After(maxEnd) {
				return fmt.Errorf("restore: trips %d and %d overlap: %w",
					maxID, t.ID, ErrScheduleConflict)
			}
			if i == 0 || t.End.After(maxEnd) {
				maxEnd, maxID = t.End, t.ID
			}
		}
	}
	next := st.NextTripID
	for id := range st.Trips {
		if id >= next {
			next = id + 1
		}
	}
	if next < 1 {
		next = 1
	}

	s.destinations = make(map[string]model.Destination, len(st.Destinations))
	for k, v := range st.Destinations {
		s.destinations[k] = v
	}
	s.trips = make(map[int64]model.Trip, len(st.Trips))
	for k, v := range st.Trips {
		s.trips[k] = v
	}
	s.nextTripID = next
	return nil
}

func sortTrips(trips []model.Trip) {
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].Start.Equal(trips[j].Start) {
			return trips[i].Start.Before(trips[j].Start)
		}
		return trips[i].ID < trips[j].ID
	})
}

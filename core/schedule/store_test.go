package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/tripsched/core/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func TestAddDestinationRoundTrip(t *testing.T) {
	s := New(Config{})
	d, err := s.AddDestination("Ranchi", "Chota Nagpur plateau")
	require.NoError(t, err)
	assert.Equal(t, "Ranchi", d.Name)
	assert.Equal(t, "Chota Nagpur plateau", d.Region)

	got, err := s.Destination("Ranchi")
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestAddDestinationValidation(t *testing.T) {
	s := New(Config{})
	if _, err := s.AddDestination("", "anywhere"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.AddDestination("   ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	_, err := s.AddDestination("Deoghar", "Santhal Pargana")
	require.NoError(t, err)
	_, err = s.AddDestination("Deoghar", "somewhere else entirely")
	if !errors.Is(err, ErrDuplicateDestination) {
		t.Fatalf("expected ErrDuplicateDestination regardless of region, got %v", err)
	}
}

func TestAddTripBoundaryDayConflict(t *testing.T) {
	s := New(Config{AllowOverlap: false})
	_, err := s.AddDestination("Ranchi", "")
	require.NoError(t, err)

	first, err := s.AddTrip("Ranchi", date(t, "2024-01-01"), date(t, "2024-01-05"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	// Shared boundary day 01-05 counts as a conflict: both ends inclusive.
	_, err = s.AddTrip("Ranchi", date(t, "2024-01-05"), date(t, "2024-01-10"), "")
	if !errors.Is(err, ErrScheduleConflict) {
		t.Fatalf("expected ErrScheduleConflict on shared boundary day, got %v", err)
	}

	// The day after the boundary is free.
	second, err := s.AddTrip("Ranchi", date(t, "2024-01-06"), date(t, "2024-01-10"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestAddTripAllowOverlap(t *testing.T) {
	s := New(Config{AllowOverlap: true})
	_, err := s.AddDestination("Jamshedpur", "")
	require.NoError(t, err)

	_, err = s.AddTrip("Jamshedpur", date(t, "2024-03-01"), date(t, "2024-03-10"), "")
	require.NoError(t, err)
	_, err = s.AddTrip("Jamshedpur", date(t, "2024-03-05"), date(t, "2024-03-07"), "")
	require.NoError(t, err)
}

func TestAddTripErrors(t *testing.T) {
	s := New(Config{})
	_, err := s.AddDestination("Dhanbad", "")
	require.NoError(t, err)

	_, err = s.AddTrip("Bokaro", date(t, "2024-01-01"), date(t, "2024-01-02"), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent destination, got %v", err)
	}

	_, err = s.AddTrip("Dhanbad", date(t, "2024-01-05"), date(t, "2024-01-01"), "")
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	assert.Empty(t, s.ListTrips(), "failed AddTrip must not create a trip")
}

func TestSingleDayTrip(t *testing.T) {
	s := New(Config{})
	_, err := s.AddDestination("Deoghar", "")
	require.NoError(t, err)
	trip, err := s.AddTrip("Deoghar", date(t, "2024-02-10"), date(t, "2024-02-10"), "darshan")
	require.NoError(t, err)
	assert.Equal(t, 1, trip.Days())
}

func TestRemoveDestinationInUse(t *testing.T) {
	s := New(Config{})
	_, err := s.AddDestination("Deoghar", "")
	require.NoError(t, err)
	trip, err := s.AddTrip("Deoghar", date(t, "2024-02-10"), date(t, "2024-02-12"), "")
	require.NoError(t, err)

	if err := s.RemoveDestination("Deoghar"); !errors.Is(err, ErrDestinationInUse) {
		t.Fatalf("expected ErrDestinationInUse, got %v", err)
	}
	require.NoError(t, s.RemoveTrip(trip.ID))
	require.NoError(t, s.RemoveDestination("Deoghar"))

	if err := s.RemoveDestination("Deoghar"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestRemoveTripNotFound(t *testing.T) {
	s := New(Config{})
	if err := s.RemoveTrip(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListTripsOrdering(t *testing.T) {
	s := New(Config{AllowOverlap: true})
	_, err := s.AddDestination("Ranchi", "")
	require.NoError(t, err)

	// Insert out of chronological order, with two trips sharing a start date.
	_, err = s.AddTrip("Ranchi", date(t, "2024-05-01"), date(t, "2024-05-03"), "")
	require.NoError(t, err)
	_, err = s.AddTrip("Ranchi", date(t, "2024-01-01"), date(t, "2024-01-02"), "")
	require.NoError(t, err)
	_, err = s.AddTrip("Ranchi", date(t, "2024-01-01"), date(t, "2024-01-05"), "")
	require.NoError(t, err)

	trips := s.ListTrips()
	require.Len(t, trips, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{trips[0].ID, trips[1].ID, trips[2].ID})

	// Repeated calls with no mutation return the same ordering.
	assert.Equal(t, trips, s.ListTrips())

	// The snapshot does not track later mutations.
	require.NoError(t, s.RemoveTrip(1))
	assert.Len(t, trips, 3)
	assert.Len(t, s.ListTrips(), 2)
}

func TestTripsInRange(t *testing.T) {
	s := New(Config{})
	_, err := s.AddDestination("Ranchi", "")
	require.NoError(t, err)
	trip, err := s.AddTrip("Ranchi", date(t, "2024-01-01"), date(t, "2024-01-05"), "")
	require.NoError(t, err)

	got := s.TripsInRange(date(t, "2024-01-03"), date(t, "2024-01-04"))
	require.Len(t, got, 1)
	assert.Equal(t, trip.ID, got[0].ID)

	assert.Empty(t, s.TripsInRange(date(t, "2024-01-06"), date(t, "2024-01-09")))

	// Inclusive at both ends: a range touching only the last trip day matches.
	assert.Len(t, s.TripsInRange(date(t, "2024-01-05"), date(t, "2024-01-05")), 1)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := New(Config{})
	_, err := s.AddDestination("Ranchi", "Chota Nagpur")
	require.NoError(t, err)
	_, err = s.AddDestination("Deoghar", "Santhal Pargana")
	require.NoError(t, err)
	_, err = s.AddTrip("Ranchi", date(t, "2024-01-01"), date(t, "2024-01-05"), "falls")
	require.NoError(t, err)
	_, err = s.AddTrip("Deoghar", date(t, "2024-02-10"), date(t, "2024-02-12"), "")
	require.NoError(t, err)

	st := s.Snapshot()
	restored := New(Config{})
	require.NoError(t, restored.Restore(st))

	assert.Equal(t, s.ListTrips(), restored.ListTrips())
	assert.Equal(t, s.Destinations(), restored.Destinations())

	// IDs keep counting from where the snapshot left off.
	next, err := restored.AddTrip("Ranchi", date(t, "2024-03-01"), date(t, "2024-03-02"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), next.ID)
}

func TestRestoreRejectsBadState(t *testing.T) {
	base := model.NewState()
	base.Destinations["Ranchi"] = model.Destination{Name: "Ranchi"}

	t.Run("dangling destination", func(t *testing.T) {
		st := base
		st.Trips = map[int64]model.Trip{
			1: {ID: 1, Destination: "Bokaro", Start: date(t, "2024-01-01"), End: date(t, "2024-01-02")},
		}
		if err := New(Config{}).Restore(st); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		st := base
		st.Trips = map[int64]model.Trip{
			1: {ID: 1, Destination: "Ranchi", Start: date(t, "2024-01-05"), End: date(t, "2024-01-01")},
		}
		if err := New(Config{}).Restore(st); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("conflicting trips", func(t *testing.T) {
		st := base
		st.Trips = map[int64]model.Trip{
			1: {ID: 1, Destination: "Ranchi", Start: date(t, "2024-01-01"), End: date(t, "2024-01-10")},
			2: {ID: 2, Destination: "Ranchi", Start: date(t, "2024-01-02"), End: date(t, "2024-01-03")},
		}
		if err := New(Config{}).Restore(st); !errors.Is(err, ErrScheduleConflict) {
			t.Fatalf("expected ErrScheduleConflict, got %v", err)
		}
		// The same state restores fine when the store allows overlaps.
		require.NoError(t, New(Config{AllowOverlap: true}).Restore(st))
	})
}

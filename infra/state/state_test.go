package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/tripsched/core/model"
)

func sampleState(t *testing.T) model.State {
	t.Helper()
	start, err := model.ParseDate("2024-01-01")
	require.NoError(t, err)
	end, err := model.ParseDate("2024-01-05")
	require.NoError(t, err)

	st := model.NewState()
	st.Destinations["Ranchi"] = model.Destination{Name: "Ranchi", Region: "Chota Nagpur"}
	st.Destinations["Deoghar"] = model.Destination{Name: "Deoghar"}
	st.Trips[1] = model.Trip{ID: 1, Destination: "Ranchi", Start: start, End: end, Notes: "waterfalls"}
	st.NextTripID = 2
	return st
}

func TestStoreRoundTrip(t *testing.T) {
	cases := []struct {
		backend string
		file    string
	}{
		{"json", "tripsched.json"},
		{"sqlite", "tripsched.db"},
	}
	for _, c := range cases {
		t.Run(c.backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), c.file)
			s, err := Open(c.backend, path)
			require.NoError(t, err)
			defer func() { assert.NoError(t, s.Close()) }()

			// Fresh store: nothing persisted yet, not an error.
			_, ok, err := s.Load()
			require.NoError(t, err)
			assert.False(t, ok)

			want := sampleState(t)
			require.NoError(t, s.Save(want))

			got, ok, err := s.Load()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, want.NextTripID, got.NextTripID)
			assert.Equal(t, want.Destinations, got.Destinations)
			require.Len(t, got.Trips, 1)
			assert.Equal(t, want.Trips[1].Destination, got.Trips[1].Destination)
			assert.True(t, want.Trips[1].Start.Equal(got.Trips[1].Start))
			assert.True(t, want.Trips[1].End.Equal(got.Trips[1].End))
			assert.Equal(t, want.Trips[1].Notes, got.Trips[1].Notes)
		})
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state")
			s, err := Open(backend, path)
			require.NoError(t, err)
			defer func() { assert.NoError(t, s.Close()) }()

			require.NoError(t, s.Save(sampleState(t)))

			smaller := model.NewState()
			smaller.Destinations["Dhanbad"] = model.Destination{Name: "Dhanbad"}
			smaller.NextTripID = 7
			require.NoError(t, s.Save(smaller))

			got, ok, err := s.Load()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Empty(t, got.Trips)
			assert.Equal(t, int64(7), got.NextTripID)
			assert.Len(t, got.Destinations, 1)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("mongodb", "x")
	require.Error(t, err)
}

func TestJSONStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{half a document"), 0o644))
	s, err := NewJSONStore(path)
	require.NoError(t, err)
	_, _, err = s.Load()
	require.Error(t, err)
}

func TestJSONStoreDefaultEmptyState(t *testing.T) {
	// An empty JSON object loads as an initialized, empty state.
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	s, err := NewJSONStore(path)
	require.NoError(t, err)
	st, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, st.Destinations)
	assert.NotNil(t, st.Trips)
}

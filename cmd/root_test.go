package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kilianp07/tripsched/core/schedule"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"not found", schedule.ErrNotFound, 2},
		{"wrapped not found", fmt.Errorf("remove: %w", schedule.ErrNotFound), 2},
		{"validation", schedule.ErrInvalidDateRange, 1},
		{"other", errors.New("boom"), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestSplitPlace(t *testing.T) {
	name, stay, err := splitPlace("Hundru Falls:90")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Hundru Falls" || stay != 90 {
		t.Fatalf("got %q/%d", name, stay)
	}

	// the split is on the last colon
	name, stay, err = splitPlace("Gate A: East Wing:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Gate A: East Wing" || stay != 45 {
		t.Fatalf("got %q/%d", name, stay)
	}

	for _, bad := range []string{"NoDuration", ":30", "Place:", "Place:abc", "Place:-5"} {
		if _, _, err := splitPlace(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

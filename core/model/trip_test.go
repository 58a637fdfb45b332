package model

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d := mustDate(t, "2024-01-05")
	if got := FormatDate(d); got != "2024-01-05" {
		t.Fatalf("round trip: got %s", got)
	}
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Fatalf("expected UTC midnight, got %v", d)
	}
	if _, err := ParseDate("05/01/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
	if _, err := ParseDate("2024-13-40"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestTripOverlaps(t *testing.T) {
	trip := Trip{ID: 1, Destination: "Ranchi", Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-01-05")}
	cases := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"inside", "2024-01-03", "2024-01-04", true},
		{"shared start boundary", "2023-12-28", "2024-01-01", true},
		{"shared end boundary", "2024-01-05", "2024-01-10", true},
		{"covering", "2023-12-01", "2024-02-01", true},
		{"before", "2023-12-01", "2023-12-31", false},
		{"after", "2024-01-06", "2024-01-10", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := trip.OverlapsRange(mustDate(t, c.from), mustDate(t, c.to)); got != c.want {
				t.Fatalf("OverlapsRange(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
			}
		})
	}
}

func TestTripValidate(t *testing.T) {
	good := Trip{ID: 1, Destination: "Ranchi", Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-01-01")}
	if err := good.Validate(); err != nil {
		t.Fatalf("single-day trip should be valid: %v", err)
	}
	bad := good
	bad.Start, bad.End = bad.End.Add(24*time.Hour), bad.Start
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestTripDays(t *testing.T) {
	trip := Trip{Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-01-05")}
	if got := trip.Days(); got != 5 {
		t.Fatalf("Days() = %d, want 5", got)
	}
}

// Package itinerary builds single-day visit plans: given an origin, an
// ordered list of places with stay durations, and a travel-time estimator,
// it computes arrival and departure clock times, trip totals, and whether
// the day fits the desired finish time. The planner is pure; travel times
// come in through a function so callers decide between a routing service
// and a fixed estimate.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/tripsched/core/model"
)

// ClockLayout is the 24h wall-clock format used for start and finish times.
const ClockLayout = "15:04"

// TravelTimeFunc estimates driving minutes between two points.
type TravelTimeFunc func(ctx context.Context, from, to model.Point) (int, error)

// Waypoint is a named location taking part in the plan.
type Waypoint struct {
	Name  string
	Point model.Point
}

// Visit is a requested stop with its planned stay duration.
type Visit struct {
	Waypoint
	StayMinutes int
}

// Stop is a visit with computed timings.
type Stop struct {
	Visit
	TravelMinutes int       // minutes from the previous point
	ArriveAt      time.Time // clock times on a synthetic reference day
	LeaveAt       time.Time
}

// Plan is a computed day itinerary.
type Plan struct {
	ID                 uuid.UUID
	Origin             Waypoint
	Return             Waypoint
	Stops              []Stop
	ReturnTravel       int
	ReturnAt           time.Time
	TotalTravelMinutes int
	TotalStayMinutes   int
	// FitsFinish is false when the computed return time runs past the
	// requested finish time; the caller should suggest trimming places or
	// stays.
	FitsFinish bool
}

// TotalMinutes is the overall time spent travelling and visiting.
func (p Plan) TotalMinutes() int { return p.TotalTravelMinutes + p.TotalStayMinutes }

// Build computes the plan. start and finish are wall-clock times in
// ClockLayout form; visits are honored in the given order, as the user
// chose them.
func Build(ctx context.Context, origin, ret Waypoint, visits []Visit, start, finish string, travel TravelTimeFunc) (Plan, error) {
	if len(visits) == 0 {
		return Plan{}, errors.New("itinerary needs at least one place to visit")
	}
	if travel == nil {
		return Plan{}, errors.New("travel time estimator is required")
	}
	clock, err := time.Parse(ClockLayout, start)
	if err != nil {
		return Plan{}, fmt.Errorf("invalid start time %q: expected HH:MM", start)
	}
	finishAt, err := time.Parse(ClockLayout, finish)
	if err != nil {
		return Plan{}, fmt.Errorf("invalid finish time %q: expected HH:MM", finish)
	}
	for _, v := range visits {
		if v.StayMinutes < 0 {
			return Plan{}, fmt.Errorf("negative stay duration for %s", v.Name)
		}
	}

	plan := Plan{ID: uuid.New(), Origin: origin, Return: ret}
	last := origin.Point
	for _, v := range visits {
		mins, err := travel(ctx, last, v.Point)
		if err != nil {
			return Plan{}, fmt.Errorf("travel time to %s: %w", v.Name, err)
		}
		clock = clock.Add(time.Duration(mins) * time.Minute)
		stop := Stop{
			Visit:         v,
			TravelMinutes: mins,
			ArriveAt:      clock,
			LeaveAt:       clock.Add(time.Duration(v.StayMinutes) * time.Minute),
		}
		clock = stop.LeaveAt
		plan.TotalTravelMinutes += mins
		plan.TotalStayMinutes += v.StayMinutes
		plan.Stops = append(plan.Stops, stop)
		last = v.Point
	}

	back, err := travel(ctx, last, ret.Point)
	if err != nil {
		return Plan{}, fmt.Errorf("travel time back to %s: %w", ret.Name, err)
	}
	plan.ReturnTravel = back
	plan.TotalTravelMinutes += back
	plan.ReturnAt = clock.Add(time.Duration(back) * time.Minute)
	plan.FitsFinish = !plan.ReturnAt.After(finishAt)
	return plan, nil
}

package itinerary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/tripsched/core/model"
)

func fixedTravel(mins int) TravelTimeFunc {
	return func(context.Context, model.Point, model.Point) (int, error) {
		return mins, nil
	}
}

func TestBuildTimings(t *testing.T) {
	origin := Waypoint{Name: "Hotel", Point: model.Point{Lat: 23.36, Lon: 85.33}}
	visits := []Visit{
		{Waypoint: Waypoint{Name: "Hundru Falls"}, StayMinutes: 60},
		{Waypoint: Waypoint{Name: "Tagore Hill"}, StayMinutes: 30},
	}

	plan, err := Build(context.Background(), origin, origin, visits, "09:00", "18:00", fixedTravel(25))
	require.NoError(t, err)

	require.Len(t, plan.Stops, 2)
	assert.Equal(t, "09:25", plan.Stops[0].ArriveAt.Format(ClockLayout))
	assert.Equal(t, "10:25", plan.Stops[0].LeaveAt.Format(ClockLayout))
	assert.Equal(t, "10:50", plan.Stops[1].ArriveAt.Format(ClockLayout))
	assert.Equal(t, "11:20", plan.Stops[1].LeaveAt.Format(ClockLayout))
	assert.Equal(t, "11:45", plan.ReturnAt.Format(ClockLayout))

	assert.Equal(t, 75, plan.TotalTravelMinutes)
	assert.Equal(t, 90, plan.TotalStayMinutes)
	assert.Equal(t, 165, plan.TotalMinutes())
	assert.True(t, plan.FitsFinish)
	assert.NotEqual(t, plan.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestBuildFinishOverrun(t *testing.T) {
	origin := Waypoint{Name: "Hotel"}
	visits := []Visit{{Waypoint: Waypoint{Name: "Jubilee Park"}, StayMinutes: 120}}

	plan, err := Build(context.Background(), origin, origin, visits, "16:00", "17:00", fixedTravel(45))
	require.NoError(t, err)
	assert.False(t, plan.FitsFinish)

	// Finishing exactly on time still fits.
	plan, err = Build(context.Background(), origin, origin, visits, "13:00", "16:30", fixedTravel(45))
	require.NoError(t, err)
	assert.Equal(t, "16:30", plan.ReturnAt.Format(ClockLayout))
	assert.True(t, plan.FitsFinish)
}

func TestBuildValidation(t *testing.T) {
	origin := Waypoint{Name: "Hotel"}
	visit := []Visit{{Waypoint: Waypoint{Name: "X"}, StayMinutes: 10}}

	_, err := Build(context.Background(), origin, origin, nil, "09:00", "18:00", fixedTravel(1))
	require.Error(t, err)

	_, err = Build(context.Background(), origin, origin, visit, "9 am", "18:00", fixedTravel(1))
	require.Error(t, err)

	_, err = Build(context.Background(), origin, origin, visit, "09:00", "six", fixedTravel(1))
	require.Error(t, err)

	_, err = Build(context.Background(), origin, origin,
		[]Visit{{Waypoint: Waypoint{Name: "X"}, StayMinutes: -5}}, "09:00", "18:00", fixedTravel(1))
	require.Error(t, err)

	_, err = Build(context.Background(), origin, origin, visit, "09:00", "18:00", nil)
	require.Error(t, err)
}

package routing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kilianp07/tripsched/core/model"
)

// MapsURL builds a Google Maps directions link visiting waypoints in order,
// starting at origin and ending at ret. No API key is needed; the link only
// encodes coordinates.
func MapsURL(origin model.Point, waypoints []model.Point, ret model.Point) string {
	dest := ret
	if len(waypoints) > 0 && ret == (model.Point{}) {
		dest = waypoints[len(waypoints)-1]
	}
	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", pointParam(origin))
	params.Set("destination", pointParam(dest))
	params.Set("travelmode", "driving")
	if len(waypoints) > 0 {
		parts := make([]string, len(waypoints))
		for i, w := range waypoints {
			parts[i] = pointParam(w)
		}
		params.Set("waypoints", strings.Join(parts, "|"))
	}
	return "https://www.google.com/maps/dir/?" + params.Encode()
}

func pointParam(p model.Point) string {
	return fmt.Sprintf("%v,%v", p.Lat, p.Lon)
}

package model

// Point is a WGS84 coordinate pair used by geocoding, routing and the
// itinerary planner.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

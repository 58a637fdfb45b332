// Package guide carries the curated tourism knowledge shipped with the
// tool: notable places per covered city and the recommended season for each.
package guide

import (
	"sort"
	"strings"
)

// BestTimeUnknown is returned when no curated entry matches a place.
const BestTimeUnknown = "Information not available."

// City groups the curated places of one covered city.
type City struct {
	Name   string
	Places []string
}

var cities = []City{
	{Name: "Ranchi", Places: []string{
		"Hundru Falls",
		"Dassam Falls",
		"Ranchi Lake and Rock Garden",
		"Tagore Hill",
	}},
	{Name: "Jamshedpur", Places: []string{
		"Jubilee Park",
		"Tata Steel Zoological Park",
		"HUDCO Lake",
	}},
	{Name: "Deoghar", Places: []string{
		"Satsang Ashram",
		"Harila Jori",
		"Trikut Parvat",
		"Shree Baba Baidyanath Jyotirlinga Mandir Deoghar",
	}},
	{Name: "Dhanbad", Places: []string{
		"Birsa Munda Park",
		"Topchanchi Lake",
		"Panchet Dam",
		"Indian Institute of Technology(IIT)Dhanbad - ISM",
	}},
}

var bestTimes = map[string]string{
	"Hundru Falls":                "July – September (monsoon for waterfall view)",
	"Dassam Falls":                "July – September",
	"Ranchi Lake and Rock Garden": "October – February",
	"Tagore Hill":                 "October – March",
	"Jubilee Park":                "October – March (pleasant weather)",
	"Tata Steel Zoological Park":  "November – February",
	"HUDCO Lake":                  "October – February",
	"Satsang Ashram":              "October – March",
	"Harila Jori":                 "October – March",
	"Trikut Parvat":               "October – March",
	"Shree Baba Baidyanath Jyotirlinga Mandir Deoghar": "July (Shravani Mela) or October – March",
	"Birsa Munda Park": "October – February",
	"Topchanchi Lake":  "October – March",
	"Panchet Dam":      "November – February",
	"Indian Institute of Technology(IIT)Dhanbad - ISM": "October – February",
}

// Cities returns all covered cities in alphabetical order.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the curated city entry matching name, case-insensitively.
func Lookup(name string) (City, bool) {
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}

// BestTime returns the recommended season for a place. Matching is a
// case-insensitive substring test so that fully qualified addresses such as
// "Hundru Falls, Ranchi, Jharkhand, India" still resolve.
func BestTime(place string) string {
	lower := strings.ToLower(place)
	for key, when := range bestTimes {
		if strings.Contains(lower, strings.ToLower(key)) {
			return when
		}
	}
	return BestTimeUnknown
}

// Package geo resolves addresses to coordinates. Nominatim (OpenStreetMap)
// is queried first; on miss or failure the ArcGIS public geocoder is tried.
// Both endpoints are configurable so tests can point them at local fakes.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kilianp07/tripsched/core/logger"
	"github.com/kilianp07/tripsched/core/model"
	infralog "github.com/kilianp07/tripsched/infra/logger"
)

// Config defines geocoder endpoints and limits.
type Config struct {
	// UserAgent is sent to Nominatim, which rejects anonymous clients.
	UserAgent      string `json:"user_agent" yaml:"user_agent"`
	NominatimURL   string `json:"nominatim_url" yaml:"nominatim_url"`
	ArcGISURL      string `json:"arcgis_url" yaml:"arcgis_url"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// SetDefaults applies the public endpoints and a conservative timeout.
func (c *Config) SetDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = "tripsched"
	}
	if c.NominatimURL == "" {
		c.NominatimURL = "https://nominatim.openstreetmap.org"
	}
	if c.ArcGISURL == "" {
		c.ArcGISURL = "https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
}

// Location is a resolved address.
type Location struct {
	Point       model.Point
	DisplayName string
}

// BBox is a latitude/longitude bounding box.
type BBox struct {
	South, North, West, East float64
}

// Contains reports whether p lies inside the box, borders included.
func (b BBox) Contains(p model.Point) bool {
	return b.South <= p.Lat && p.Lat <= b.North && b.West <= p.Lon && p.Lon <= b.East
}

// CityArea is a resolved city with its bounding box.
type CityArea struct {
	Center model.Point
	BBox   BBox
}

// Geocoder resolves addresses and city areas.
type Geocoder struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// New creates a Geocoder. A nil logger is replaced with a no-op one.
func New(cfg Config, log logger.Logger) *Geocoder {
	cfg.SetDefaults()
	if log == nil {
		log = infralog.NopLogger{}
	}
	return &Geocoder{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    log,
	}
}

// Geocode resolves an address, trying Nominatim then ArcGIS.
func (g *Geocoder) Geocode(ctx context.Context, address string) (Location, error) {
	loc, err := g.nominatim(ctx, address)
	if err == nil {
		return loc, nil
	}
	g.log.Warnf("nominatim lookup for %q failed: %v, trying arcgis", address, err)
	loc, err2 := g.arcgis(ctx, address)
	if err2 != nil {
		return Location{}, fmt.Errorf("geocode %q: nominatim: %v; arcgis: %w", address, err, err2)
	}
	return loc, nil
}

type nominatimResult struct {
	Lat         string    `json:"lat"`
	Lon         string    `json:"lon"`
	DisplayName string    `json:"display_name"`
	BoundingBox [4]string `json:"boundingbox"` // south, north, west, east
}

func (g *Geocoder) nominatim(ctx context.Context, q string) (Location, error) {
	results, err := g.nominatimSearch(ctx, q)
	if err != nil {
		return Location{}, err
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("no match")
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("bad latitude %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("bad longitude %q", results[0].Lon)
	}
	return Location{Point: model.Point{Lat: lat, Lon: lon}, DisplayName: results[0].DisplayName}, nil
}

func (g *Geocoder) nominatimSearch(ctx context.Context, q string) ([]nominatimResult, error) {
	u, err := url.Parse(g.cfg.NominatimURL + "/search")
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.cfg.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim status %d", resp.StatusCode)
	}
	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}

type arcgisResponse struct {
	Candidates []struct {
		Address  string `json:"address"`
		Location struct {
			X float64 `json:"x"` // longitude
			Y float64 `json:"y"` // latitude
		} `json:"location"`
	} `json:"candidates"`
}

func (g *Geocoder) arcgis(ctx context.Context, q string) (Location, error) {
	u, err := url.Parse(g.cfg.ArcGISURL + "/findAddressCandidates")
	if err != nil {
		return Location{}, err
	}
	params := url.Values{}
	params.Set("SingleLine", q)
	params.Set("f", "json")
	params.Set("maxLocations", "1")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Location{}, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("arcgis status %d", resp.StatusCode)
	}
	var body arcgisResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, err
	}
	if len(body.Candidates) == 0 {
		return Location{}, fmt.Errorf("no match")
	}
	c := body.Candidates[0]
	return Location{
		Point:       model.Point{Lat: c.Location.Y, Lon: c.Location.X},
		DisplayName: c.Address,
	}, nil
}

// CityInfo resolves a city's center and bounding box via Nominatim. The box
// is used to verify that user-supplied start and return addresses actually
// lie inside the chosen city.
func (g *Geocoder) CityInfo(ctx context.Context, city string) (CityArea, error) {
	results, err := g.nominatimSearch(ctx, city)
	if err != nil {
		return CityArea{}, fmt.Errorf("city lookup %q: %w", city, err)
	}
	if len(results) == 0 {
		return CityArea{}, fmt.Errorf("city lookup %q: no match", city)
	}
	r := results[0]
	var area CityArea
	var box [4]float64
	for i, s := range r.BoundingBox {
		if box[i], err = strconv.ParseFloat(s, 64); err != nil {
			return CityArea{}, fmt.Errorf("city lookup %q: bad bounding box", city)
		}
	}
	area.BBox = BBox{South: box[0], North: box[1], West: box[2], East: box[3]}
	if area.Center.Lat, err = strconv.ParseFloat(r.Lat, 64); err != nil {
		return CityArea{}, fmt.Errorf("city lookup %q: bad latitude", city)
	}
	if area.Center.Lon, err = strconv.ParseFloat(r.Lon, 64); err != nil {
		return CityArea{}, fmt.Errorf("city lookup %q: bad longitude", city)
	}
	return area, nil
}

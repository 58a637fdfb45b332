// Package weather fetches current conditions from the Open-Meteo API (no
// key required) and turns them into packing advice for travellers.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kilianp07/tripsched/core/model"
)

// Config defines the weather endpoint and limits.
type Config struct {
	APIURL         string `json:"api_url" yaml:"api_url"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// SetDefaults applies the public endpoint and a conservative timeout.
func (c *Config) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://api.open-meteo.com/v1/forecast"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
}

// Current is a current-weather observation.
type Current struct {
	Temperature float64 `json:"temperature"` // °C
	WindSpeed   float64 `json:"windspeed"`   // km/h
	Code        int     `json:"weathercode"` // WMO weather code
}

// Client queries the Open-Meteo current-weather endpoint.
type Client struct {
	cfg    Config
	client *http.Client
}

// New creates a weather Client.
func New(cfg Config) *Client {
	cfg.SetDefaults()
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Current fetches the current weather at p.
func (c *Client) Current(ctx context.Context, p model.Point) (Current, error) {
	u, err := url.Parse(c.cfg.APIURL)
	if err != nil {
		return Current{}, err
	}
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(p.Lon, 'f', -1, 64))
	params.Set("current_weather", "true")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Current{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Current{}, fmt.Errorf("weather request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return Current{}, fmt.Errorf("weather status %d", resp.StatusCode)
	}
	var body struct {
		CurrentWeather *Current `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Current{}, err
	}
	if body.CurrentWeather == nil {
		return Current{}, fmt.Errorf("no current weather in response")
	}
	return *body.CurrentWeather, nil
}

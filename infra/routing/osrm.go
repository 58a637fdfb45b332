// Package routing estimates driving times between points using an OSRM
// server and builds Google Maps direction links for finished plans. When the
// routing service is unreachable a configured fixed estimate is used so that
// planning still works offline.
package routing

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

// Config defines the routing endpoint and the offline fallback.
type Config struct {
	OSRMURL        string `json:"osrm_url" yaml:"osrm_url"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
	// FallbackMinutes is used for any leg whose routing lookup fails.
	FallbackMinutes int `json:"fallback_minutes" yaml:"fallback_minutes"`
}

// SetDefaults applies the public OSRM demo server and a 25 minute fallback.
func (c *Config) SetDefaults() {
	if c.OSRMURL == "" {
		c.OSRMURL = "http://router.project-osrm.org"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	if c.FallbackMinutes <= 0 {
		c.FallbackMinutes = 25
	}
}

// Client estimates driving times.
type Client struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// New creates a routing Client. A nil logger is replaced with a no-op one.
func New(cfg Config, log logger.Logger) *Client {
	cfg.SetDefaults()
	if log == nil {
		log = infralog.NopLogger{}
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    log,
	}
}

// DriveMinutes returns the estimated driving time between two points in
// whole minutes. Lookup failures log a warning and fall back to the
// configured estimate rather than failing the plan.
func (c *Client) DriveMinutes(ctx context.Context, from, to model.Point) (int, error) {
	mins, err := c.query(ctx, from, to)
	if err != nil {
		c.log.Warnf("osrm lookup failed, using %d min fallback: %v", c.cfg.FallbackMinutes, err)
		return c.cfg.FallbackMinutes, nil
	}
	return mins, nil
}

func (c *Client) query(ctx context.Context, from, to model.Point) (int, error) {
	// OSRM wants lon,lat pairs.
	path := fmt.Sprintf("%s/route/v1/driving/%s,%s;%s,%s",
		c.cfg.OSRMURL,
		coord(from.Lon), coord(from.Lat),
		coord(to.Lon), coord(to.Lat))
	u, err := url.Parse(path)
	if err != nil {
		return 0, err
	}
	q := url.Values{}
	q.Set("overview", "false")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("osrm status %d", resp.StatusCode)
	}
	var body struct {
		Routes []struct {
			Duration float64 `json:"duration"` // seconds
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if len(body.Routes) == 0 {
		return 0, fmt.Errorf("no route")
	}
	return int(body.Routes[0].Duration / 60), nil
}

func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

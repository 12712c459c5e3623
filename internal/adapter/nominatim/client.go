// Package nominatim implements domain.CityResolver using the OSM Nominatim
// search API.
package nominatim

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/rest"
	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client resolves city names to coordinates.
type Client struct {
	rest   *rest.Client
	logger *slog.Logger
}

// NewClient creates a Nominatim client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		rest:   rest.NewClient(defaultBaseURL, timeout),
		logger: logger,
	}
}

// ResolveCity looks up a city by name. The first candidate wins; an empty
// result set is a "not found" error.
func (c *Client) ResolveCity(ctx context.Context, name string) (domain.Location, error) {
	params := url.Values{
		"q":      {name},
		"format": {"json"},
		"limit":  {"1"},
	}

	var places []place
	if _, err := c.rest.GetJSON(ctx, "/search", params, &places); err != nil {
		return domain.Location{}, fmt.Errorf("%s: %w", domain.AdapterCityLookup, err)
	}
	if len(places) == 0 {
		return domain.Location{}, fmt.Errorf("%s: city %q not found", domain.AdapterCityLookup, name)
	}

	p := places[0]
	if p.Lat == "" || p.Lon == "" || p.DisplayName == "" {
		return domain.Location{}, fmt.Errorf("%s: validation failed: incomplete candidate", domain.AdapterCityLookup)
	}
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%s: validation failed: latitude %q", domain.AdapterCityLookup, p.Lat)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%s: validation failed: longitude %q", domain.AdapterCityLookup, p.Lon)
	}

	return domain.Location{
		Query:       name,
		DisplayName: p.DisplayName,
		Lat:         lat,
		Lon:         lon,
	}, nil
}

// Nominatim API response types. Coordinates arrive as strings.

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

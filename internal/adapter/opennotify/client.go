// Package opennotify implements domain.SatelliteTracker using the Open Notify
// ISS tracking API.
package opennotify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/rest"
	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
)

const defaultBaseURL = "http://api.open-notify.org"

// Client reports the current ISS position.
type Client struct {
	rest   *rest.Client
	logger *slog.Logger
}

// NewClient creates an Open Notify client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		rest:   rest.NewClient(defaultBaseURL, timeout),
		logger: logger,
	}
}

// CurrentPosition fetches the current ISS position and observation time.
func (c *Client) CurrentPosition(ctx context.Context) (domain.SatellitePosition, error) {
	var resp issResponse
	if _, err := c.rest.GetJSON(ctx, "/iss-now.json", nil, &resp); err != nil {
		return domain.SatellitePosition{}, fmt.Errorf("%s: %w", domain.AdapterSatellitePosition, err)
	}

	if resp.Message != "success" {
		return domain.SatellitePosition{}, fmt.Errorf("%s: validation failed: message %q", domain.AdapterSatellitePosition, resp.Message)
	}
	lat, err := strconv.ParseFloat(resp.Position.Latitude, 64)
	if err != nil {
		return domain.SatellitePosition{}, fmt.Errorf("%s: validation failed: latitude %q", domain.AdapterSatellitePosition, resp.Position.Latitude)
	}
	lon, err := strconv.ParseFloat(resp.Position.Longitude, 64)
	if err != nil {
		return domain.SatellitePosition{}, fmt.Errorf("%s: validation failed: longitude %q", domain.AdapterSatellitePosition, resp.Position.Longitude)
	}

	return domain.SatellitePosition{
		Lat:        lat,
		Lon:        lon,
		ObservedAt: resp.Timestamp,
	}, nil
}

// Open Notify API response types. Coordinates arrive as strings.

type issResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Position  struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

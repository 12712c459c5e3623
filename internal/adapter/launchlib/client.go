// Package launchlib implements domain.LaunchSchedule using the Launch Library
// upcoming-launches API.
package launchlib

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/rest"
	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
)

const defaultBaseURL = "https://ll.thespacedevs.com/2.2.0"

// Client reports the soonest scheduled launch.
type Client struct {
	rest   *rest.Client
	logger *slog.Logger
}

// NewClient creates a Launch Library client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		rest:   rest.NewClient(defaultBaseURL, timeout),
		logger: logger,
	}
}

// NextLaunch fetches the soonest upcoming launch. The media link is optional:
// the launch image wins, falling back to the first webcast URL.
func (c *Client) NextLaunch(ctx context.Context) (domain.LaunchEvent, error) {
	params := url.Values{
		"limit": {"1"},
	}

	var resp upcomingResponse
	if _, err := c.rest.GetJSON(ctx, "/launch/upcoming/", params, &resp); err != nil {
		return domain.LaunchEvent{}, fmt.Errorf("%s: %w", domain.AdapterNextLaunch, err)
	}
	if len(resp.Results) == 0 {
		return domain.LaunchEvent{}, fmt.Errorf("%s: validation failed: no upcoming launches", domain.AdapterNextLaunch)
	}

	l := resp.Results[0]
	if l.Name == "" || l.Net == "" {
		return domain.LaunchEvent{}, fmt.Errorf("%s: validation failed: incomplete launch record", domain.AdapterNextLaunch)
	}

	media := l.Image
	if media == "" && len(l.VidURLs) > 0 {
		media = l.VidURLs[0].URL
	}

	return domain.LaunchEvent{
		Name:     l.Name,
		NET:      l.Net,
		MediaURL: media,
	}, nil
}

// Launch Library API response types.

type upcomingResponse struct {
	Results []launch `json:"results"`
}

type launch struct {
	Name    string   `json:"name"`
	Net     string   `json:"net"` // RFC3339 UTC
	Image   string   `json:"image"`
	VidURLs []vidURL `json:"vidURLs"`
}

type vidURL struct {
	URL string `json:"url"`
}

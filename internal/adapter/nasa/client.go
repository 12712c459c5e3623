// Package nasa implements the two keyed adapters against api.nasa.gov:
// the astronomy picture of the day (domain.SkyImageSource) and the
// near-earth-object feed (domain.NEOFeedSource). Both share one API key;
// the well-known DEMO_KEY works with tight rate limits.
package nasa

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

const defaultBaseURL = "https://api.nasa.gov"

// Client serves both NASA adapters.
type Client struct {
	rest   *rest.Client
	apiKey string
	logger *slog.Logger
}

// NewClient creates a NASA API client.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		rest:   rest.NewClient(defaultBaseURL, timeout),
		apiKey: apiKey,
		logger: logger,
	}
}

// ImageOfDay fetches the astronomy picture for the given calendar date.
func (c *Client) ImageOfDay(ctx context.Context, date time.Time) (domain.SkyImage, error) {
	params := url.Values{
		"api_key": {c.apiKey},
		"date":    {date.UTC().Format(domain.DateLayout)},
	}

	var resp apodResponse
	if _, err := c.rest.GetJSON(ctx, "/planetary/apod", params, &resp); err != nil {
		return domain.SkyImage{}, fmt.Errorf("%s: %w", domain.AdapterSkyImage, err)
	}

	if resp.Title == "" || resp.URL == "" {
		return domain.SkyImage{}, fmt.Errorf("%s: validation failed: incomplete record", domain.AdapterSkyImage)
	}
	if resp.MediaType != "image" && resp.MediaType != "video" {
		return domain.SkyImage{}, fmt.Errorf("%s: validation failed: media type %q", domain.AdapterSkyImage, resp.MediaType)
	}

	return domain.SkyImage{
		Date:      resp.Date,
		Title:     resp.Title,
		MediaType: resp.MediaType,
		URL:       resp.URL,
	}, nil
}

// Feed fetches the near-earth-object feed for an inclusive date range.
// Close-approach miss distances arrive as strings; unparseable or missing
// values become nil so the summary can exclude them.
func (c *Client) Feed(ctx context.Context, start, end time.Time) (domain.NEOFeed, error) {
	params := url.Values{
		"api_key":    {c.apiKey},
		"start_date": {start.UTC().Format(domain.DateLayout)},
		"end_date":   {end.UTC().Format(domain.DateLayout)},
	}

	var resp feedResponse
	if _, err := c.rest.GetJSON(ctx, "/neo/rest/v1/feed", params, &resp); err != nil {
		return domain.NEOFeed{}, fmt.Errorf("%s: %w", domain.AdapterNEOFeed, err)
	}
	if resp.NearEarthObjects == nil {
		return domain.NEOFeed{}, fmt.Errorf("%s: validation failed: missing near_earth_objects", domain.AdapterNEOFeed)
	}

	feed := domain.NEOFeed{
		ElementCount: resp.ElementCount,
		Objects:      make(map[string][]domain.NearEarthObject, len(resp.NearEarthObjects)),
	}
	for date, objects := range resp.NearEarthObjects {
		converted := make([]domain.NearEarthObject, 0, len(objects))
		for _, o := range objects {
			converted = append(converted, convertObject(o))
		}
		feed.Objects[date] = converted
	}
	return feed, nil
}

func convertObject(o neoObject) domain.NearEarthObject {
	out := domain.NearEarthObject{
		Name:         o.Name,
		Hazardous:    o.Hazardous,
		DiameterMinM: o.EstimatedDiameter.Meters.Min,
		DiameterMaxM: o.EstimatedDiameter.Meters.Max,
	}
	for _, ca := range o.CloseApproachData {
		approach := domain.CloseApproach{Date: ca.Date}
		if km, err := strconv.ParseFloat(ca.MissDistance.Kilometers, 64); err == nil {
			approach.MissKm = &km
		}
		out.Approaches = append(out.Approaches, approach)
	}
	return out
}

// NASA API response types.

type apodResponse struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
}

type feedResponse struct {
	ElementCount     int                    `json:"element_count"`
	NearEarthObjects map[string][]neoObject `json:"near_earth_objects"`
}

type neoObject struct {
	Name              string `json:"name"`
	Hazardous         bool   `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter struct {
		Meters struct {
			Min float64 `json:"estimated_diameter_min"`
			Max float64 `json:"estimated_diameter_max"`
		} `json:"meters"`
	} `json:"estimated_diameter"`
	CloseApproachData []closeApproach `json:"close_approach_data"`
}

type closeApproach struct {
	Date         string `json:"close_approach_date"`
	MissDistance struct {
		Kilometers string `json:"kilometers"`
	} `json:"miss_distance"`
}

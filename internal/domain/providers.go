package domain

import (
	"context"
	"time"
)

// Adapter names, used to tag timing logs and upstream errors.
const (
	AdapterCityLookup        = "city-lookup"
	AdapterSatellitePosition = "satellite-position"
	AdapterNextLaunch        = "next-launch"
	AdapterSkyImage          = "sky-image-of-day"
	AdapterNEOFeed           = "near-earth-object-feed"
)

// CityResolver turns a city name into an observer location.
// Implementations return an error when the search yields no candidates.
type CityResolver interface {
	ResolveCity(ctx context.Context, name string) (Location, error)
}

// SatelliteTracker reports the current ISS position.
type SatelliteTracker interface {
	CurrentPosition(ctx context.Context) (SatellitePosition, error)
}

// LaunchSchedule reports the soonest upcoming rocket launch.
type LaunchSchedule interface {
	NextLaunch(ctx context.Context) (LaunchEvent, error)
}

// SkyImageSource fetches the astronomy picture for a calendar date.
type SkyImageSource interface {
	ImageOfDay(ctx context.Context, date time.Time) (SkyImage, error)
}

// NEOFeedSource fetches the near-earth-object feed for an inclusive
// date range. Upstream caps the range at seven days; callers derive the
// range with FeedDateRange.
type NEOFeedSource interface {
	Feed(ctx context.Context, start, end time.Time) (NEOFeed, error)
}

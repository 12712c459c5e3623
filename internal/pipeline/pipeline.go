// Package pipeline orchestrates one briefing run: resolve the observer
// location, fan out the four independent upstream calls, derive metrics,
// and assemble the briefing record.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
	"github.com/AnuragAmbekar741/mission-briefing/internal/observability"
)

// Output modes. Verbose additionally emits per-call debug timing.
const (
	ModeStealth = "stealth"
	ModeVerbose = "verbose"
)

// Params are the validated arguments for one run.
type Params struct {
	City string
	Days int
	Mode string
	Date time.Time // calendar date for the sky image and the feed start
}

// Pipeline fans out the upstream adapters and assembles the briefing.
type Pipeline struct {
	cities     domain.CityResolver
	satellites domain.SatelliteTracker
	launches   domain.LaunchSchedule
	skyImages  domain.SkyImageSource
	neoFeeds   domain.NEOFeedSource
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates a Pipeline with the given adapters and observability.
func New(
	cities domain.CityResolver,
	satellites domain.SatelliteTracker,
	launches domain.LaunchSchedule,
	skyImages domain.SkyImageSource,
	neoFeeds domain.NEOFeedSource,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Pipeline {
	return &Pipeline{
		cities:     cities,
		satellites: satellites,
		launches:   launches,
		skyImages:  skyImages,
		neoFeeds:   neoFeeds,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run executes one fetch-compute-assemble pass. Any adapter failure aborts
// the run with that adapter's error; no partial briefing is produced.
func (p *Pipeline) Run(ctx context.Context, params Params) (domain.Briefing, error) {
	p.logger.Info("briefing run starting",
		"city", params.City,
		"days", params.Days,
		"date", params.Date.Format(domain.DateLayout),
	)

	// The city lookup is independent of the other four calls, but it runs
	// first so a bad city aborts before spending four more round-trips.
	location, err := observability.Timed(ctx, domain.AdapterCityLookup, p.logger, p.metrics,
		func(ctx context.Context) (domain.Location, error) {
			return p.cities.ResolveCity(ctx, params.City)
		})
	if err != nil {
		return domain.Briefing{}, err
	}

	feedStart, feedEnd := domain.FeedDateRange(params.Date, params.Days)

	var (
		satellite domain.SatellitePosition
		launch    domain.LaunchEvent
		image     domain.SkyImage
		feed      domain.NEOFeed
	)

	// The remaining four calls are independent of each other: wait for all,
	// abort on the first failure. The group context cancels in-flight
	// siblings once one call fails.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		satellite, err = observability.Timed(gctx, domain.AdapterSatellitePosition, p.logger, p.metrics,
			func(ctx context.Context) (domain.SatellitePosition, error) {
				return p.satellites.CurrentPosition(ctx)
			})
		return err
	})
	g.Go(func() error {
		var err error
		launch, err = observability.Timed(gctx, domain.AdapterNextLaunch, p.logger, p.metrics,
			func(ctx context.Context) (domain.LaunchEvent, error) {
				return p.launches.NextLaunch(ctx)
			})
		return err
	})
	g.Go(func() error {
		var err error
		image, err = observability.Timed(gctx, domain.AdapterSkyImage, p.logger, p.metrics,
			func(ctx context.Context) (domain.SkyImage, error) {
				return p.skyImages.ImageOfDay(ctx, params.Date)
			})
		return err
	})
	g.Go(func() error {
		var err error
		feed, err = observability.Timed(gctx, domain.AdapterNEOFeed, p.logger, p.metrics,
			func(ctx context.Context) (domain.NEOFeed, error) {
				return p.neoFeeds.Feed(ctx, feedStart, feedEnd)
			})
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Briefing{}, err
	}

	distanceKm := domain.HaversineKm(location.Lat, location.Lon, satellite.Lat, satellite.Lon)
	hoursToLaunch := domain.HoursUntilLaunch(launch.NET)
	summary := domain.SummarizeNEOs(feed)
	threat := domain.AssessThreat(summary, distanceKm, hoursToLaunch)

	briefing := domain.Briefing{
		GeneratedAt: domain.Now(),
		Input: domain.RunInput{
			City: params.City,
			Days: params.Days,
			Mode: params.Mode,
			Date: params.Date.Format(domain.DateLayout),
		},
		Location:            location,
		Satellite:           satellite,
		SatelliteDistanceKm: distanceKm,
		NextLaunch:          launch,
		HoursToLaunch:       hoursToLaunch,
		SkyImage:            image,
		NeoSummary:          summary,
		Threat:              threat,
	}

	p.logger.Info("briefing run complete",
		"iss_distance_km", distanceKm,
		"neo_count", summary.TotalCount,
		"threat_score", threat.Score,
		"threat_level", string(threat.Level),
	)
	return briefing, nil
}

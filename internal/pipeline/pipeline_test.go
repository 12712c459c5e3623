package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
	"github.com/AnuragAmbekar741/mission-briefing/internal/observability"
	"github.com/AnuragAmbekar741/mission-briefing/internal/pipeline"
)

// --- fakes ---

type fakeCities struct {
	loc   domain.Location
	err   error
	calls atomic.Int64
}

func (f *fakeCities) ResolveCity(_ context.Context, _ string) (domain.Location, error) {
	f.calls.Add(1)
	return f.loc, f.err
}

type fakeSatellites struct {
	pos   domain.SatellitePosition
	err   error
	calls atomic.Int64
}

func (f *fakeSatellites) CurrentPosition(_ context.Context) (domain.SatellitePosition, error) {
	f.calls.Add(1)
	return f.pos, f.err
}

type fakeLaunches struct {
	launch domain.LaunchEvent
	err    error
	calls  atomic.Int64
}

func (f *fakeLaunches) NextLaunch(_ context.Context) (domain.LaunchEvent, error) {
	f.calls.Add(1)
	return f.launch, f.err
}

type fakeSkyImages struct {
	img   domain.SkyImage
	err   error
	calls atomic.Int64
}

func (f *fakeSkyImages) ImageOfDay(_ context.Context, _ time.Time) (domain.SkyImage, error) {
	f.calls.Add(1)
	return f.img, f.err
}

type fakeNEOFeeds struct {
	feed  domain.NEOFeed
	err   error
	calls atomic.Int64

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeNEOFeeds) Feed(_ context.Context, start, end time.Time) (domain.NEOFeed, error) {
	f.calls.Add(1)
	f.gotStart = start
	f.gotEnd = end
	return f.feed, f.err
}

type fixture struct {
	cities     *fakeCities
	satellites *fakeSatellites
	launches   *fakeLaunches
	skyImages  *fakeSkyImages
	neoFeeds   *fakeNEOFeeds
	pipeline   *pipeline.Pipeline
}

func missKm(v float64) *float64 { return &v }

func newFixture() *fixture {
	f := &fixture{
		cities: &fakeCities{loc: domain.Location{
			Query:       "Paris",
			DisplayName: "Paris, Ile-de-France, France",
			Lat:         48.8566,
			Lon:         2.3522,
		}},
		satellites: &fakeSatellites{pos: domain.SatellitePosition{
			Lat:        10.0,
			Lon:        20.0,
			ObservedAt: 1709294400,
		}},
		launches: &fakeLaunches{launch: domain.LaunchEvent{
			Name: "Falcon 9 | Starlink",
			NET:  "2024-03-03T00:00:00Z",
		}},
		skyImages: &fakeSkyImages{img: domain.SkyImage{
			Date:      "2024-03-01",
			Title:     "Pillars of Creation",
			MediaType: "image",
			URL:       "https://apod.nasa.gov/pillars.jpg",
		}},
		neoFeeds: &fakeNEOFeeds{feed: domain.NEOFeed{
			ElementCount: 1,
			Objects: map[string][]domain.NearEarthObject{
				"2024-03-01": {
					{Name: "(2024 AA)", DiameterMaxM: 50, Approaches: []domain.CloseApproach{{MissKm: missKm(5_000_000)}}},
				},
			},
		}},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.pipeline = pipeline.New(f.cities, f.satellites, f.launches, f.skyImages, f.neoFeeds, logger, observability.NewMetrics())
	return f
}

func testParams() pipeline.Params {
	return pipeline.Params{
		City: "Paris",
		Days: 3,
		Mode: pipeline.ModeStealth,
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(nil) })

	f := newFixture()
	briefing, err := f.pipeline.Run(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, now, briefing.GeneratedAt)
	assert.Equal(t, domain.RunInput{City: "Paris", Days: 3, Mode: "stealth", Date: "2024-03-01"}, briefing.Input)
	assert.Equal(t, "Paris, Ile-de-France, France", briefing.Location.DisplayName)

	// Haversine Paris -> (10, 20), computed independently.
	assert.InDelta(t, 4621.613, briefing.SatelliteDistanceKm, 0.01)

	assert.Equal(t, "Falcon 9 | Starlink", briefing.NextLaunch.Name)
	assert.InDelta(t, 36.0, briefing.HoursToLaunch, 1e-9)

	assert.Equal(t, "Pillars of Creation", briefing.SkyImage.Title)
	assert.Equal(t, 1, briefing.NeoSummary.TotalCount)
	assert.Equal(t, 0, briefing.NeoSummary.HazardousCount)
	assert.Equal(t, domain.ThreatLow, briefing.Threat.Level)

	assert.EqualValues(t, 1, f.cities.calls.Load())
	assert.EqualValues(t, 1, f.satellites.calls.Load())
	assert.EqualValues(t, 1, f.launches.calls.Load())
	assert.EqualValues(t, 1, f.skyImages.calls.Load())
	assert.EqualValues(t, 1, f.neoFeeds.calls.Load())
}

func TestPipeline_Run_FeedRangeClamped(t *testing.T) {
	f := newFixture()
	params := testParams()
	params.Days = 10

	_, err := f.pipeline.Run(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), f.neoFeeds.gotStart)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), f.neoFeeds.gotEnd)
}

func TestPipeline_Run_CityLookupFailureAbortsEarly(t *testing.T) {
	f := newFixture()
	f.cities.err = errors.New("city \"Atlantis\" not found")

	_, err := f.pipeline.Run(context.Background(), testParams())
	require.Error(t, err)
	assert.EqualError(t, err, "city-lookup: operation failed")

	// None of the remaining four adapters may have been invoked.
	assert.Zero(t, f.satellites.calls.Load())
	assert.Zero(t, f.launches.calls.Load())
	assert.Zero(t, f.skyImages.calls.Load())
	assert.Zero(t, f.neoFeeds.calls.Load())
}

func TestPipeline_Run_FanOutFailureAborts(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*fixture)
		wantErr string
	}{
		{
			"satellite failure",
			func(f *fixture) { f.satellites.err = errors.New("boom") },
			"satellite-position: operation failed",
		},
		{
			"launch failure",
			func(f *fixture) { f.launches.err = errors.New("boom") },
			"next-launch: operation failed",
		},
		{
			"sky image failure",
			func(f *fixture) { f.skyImages.err = errors.New("boom") },
			"sky-image-of-day: operation failed",
		},
		{
			"feed failure",
			func(f *fixture) { f.neoFeeds.err = errors.New("boom") },
			"near-earth-object-feed: operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.prepare(f)

			_, err := f.pipeline.Run(context.Background(), testParams())
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPipeline_Run_ThreatUsesDerivedInputs(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(nil) })

	f := newFixture()
	// A hazardous swarm close by pushes the score into HIGH territory.
	f.neoFeeds.feed = domain.NEOFeed{
		Objects: map[string][]domain.NearEarthObject{
			"2024-03-01": {
				{Name: "a", Hazardous: true, DiameterMaxM: 900, Approaches: []domain.CloseApproach{{MissKm: missKm(200_000)}}},
				{Name: "b", Hazardous: true, DiameterMaxM: 300, Approaches: []domain.CloseApproach{{MissKm: missKm(450_000)}}},
			},
		},
	}

	briefing, err := f.pipeline.Run(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, 2, briefing.NeoSummary.HazardousCount)
	assert.Equal(t, 200_000.0, briefing.NeoSummary.MinMissKm)
	assert.Equal(t, domain.ThreatHigh, briefing.Threat.Level)
}

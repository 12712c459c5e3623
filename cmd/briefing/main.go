// Command briefing resolves a city, fans out four public-API calls (ISS
// position, next launch, astronomy picture, NEO feed), computes derived
// metrics and a composite threat score, and writes briefing.json plus a
// console summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/launchlib"
	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/nasa"
	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/nominatim"
	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/opennotify"
	"github.com/AnuragAmbekar741/mission-briefing/internal/config"
	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
	"github.com/AnuragAmbekar741/mission-briefing/internal/observability"
	"github.com/AnuragAmbekar741/mission-briefing/internal/pipeline"
	"github.com/AnuragAmbekar741/mission-briefing/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	params, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid arguments:", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return 1
	}

	level := cfg.LogLevel
	if params.Mode == pipeline.ModeVerbose {
		level = "debug"
	}
	logger := observability.NewLogger(level, cfg.LogFormat)
	metrics := observability.NewMetrics()

	nasaClient := nasa.NewClient(cfg.NASAAPIKey, cfg.HTTPTimeout, logger)
	p := pipeline.New(
		nominatim.NewClient(cfg.HTTPTimeout, logger),
		opennotify.NewClient(cfg.HTTPTimeout, logger),
		launchlib.NewClient(cfg.HTTPTimeout, logger),
		nasaClient,
		nasaClient,
		logger,
		metrics,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	briefing, err := p.Run(ctx, params)
	if err != nil {
		logger.Error("briefing failed", "error", err)
		return 1
	}

	writer := report.NewWriter(cfg.OutputPath, os.Stdout, logger)
	if err := writer.Write(briefing); err != nil {
		logger.Error("briefing write failed", "error", err)
		return 1
	}

	if params.Mode == pipeline.ModeVerbose {
		metrics.LogSnapshot(logger)
	}
	return 0
}

// parseArgs parses and validates the command line into run parameters.
// All validation happens here, before any network call.
func parseArgs(args []string) (pipeline.Params, error) {
	fs := flag.NewFlagSet("briefing", flag.ContinueOnError)
	city := fs.String("city", "", "city to resolve as the observer location (required)")
	days := fs.Int("days", 3, "NEO feed window in days (upstream caps at 7)")
	mode := fs.String("mode", pipeline.ModeStealth, "output mode: stealth or verbose")
	date := fs.String("date", "", "calendar date YYYY-MM-DD (default: today UTC)")

	if err := fs.Parse(args); err != nil {
		return pipeline.Params{}, err
	}

	if strings.TrimSpace(*city) == "" {
		return pipeline.Params{}, errors.New("--city is required")
	}
	if *days < 1 {
		return pipeline.Params{}, fmt.Errorf("--days must be a positive integer, got %d", *days)
	}
	if *mode != pipeline.ModeStealth && *mode != pipeline.ModeVerbose {
		return pipeline.Params{}, fmt.Errorf("--mode must be %q or %q", pipeline.ModeStealth, pipeline.ModeVerbose)
	}

	day := todayUTC()
	if *date != "" {
		parsed, err := time.Parse(domain.DateLayout, *date)
		if err != nil {
			return pipeline.Params{}, fmt.Errorf("--date must match YYYY-MM-DD: %w", err)
		}
		day = parsed
	}

	return pipeline.Params{
		City: strings.TrimSpace(*city),
		Days: *days,
		Mode: *mode,
		Date: day,
	}, nil
}

func todayUTC() time.Time {
	now := domain.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

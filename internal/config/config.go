// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	NASAAPIKey  string        // shared by the APOD and NEO-feed adapters
	HTTPTimeout time.Duration // per-call timeout shared by all adapters
	OutputPath  string        // where briefing.json is written
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables, applying defaults
// where unset. DEMO_KEY is the public NASA demo key; it works with tight
// rate limits.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("HTTP_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}

	cfg := &Config{
		NASAAPIKey:  envOrDefault("NASA_API_KEY", "DEMO_KEY"),
		HTTPTimeout: timeout,
		OutputPath:  envOrDefault("OUTPUT_PATH", "briefing.json"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.NASAAPIKey == "" {
		return nil, errors.New("NASA_API_KEY must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

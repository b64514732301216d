package testsupport

import (
	"path/filepath"
	"testing"

	"dugout/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Source.ScanDelayMS = 0

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithMinConfidence overrides the similarity floor on the test config.
func WithMinConfidence(value int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.MinConfidence = value
	}
}

// WithFreshnessHours overrides the cache freshness window on the test config.
func WithFreshnessHours(hours int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.FreshnessHours = hours
	}
}

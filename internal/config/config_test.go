package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dugout/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DATA_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Source.BaseURL != "https://www.playoba.ca/stats" {
		t.Fatalf("unexpected base url: %q", cfg.Source.BaseURL)
	}
	if cfg.Matching.MinConfidence != config.DefaultMinConfidence {
		t.Fatalf("unexpected min confidence: %d", cfg.Matching.MinConfidence)
	}
	if cfg.Cache.FreshnessHours != 24 {
		t.Fatalf("unexpected freshness window: %d", cfg.Cache.FreshnessHours)
	}
	if !strings.HasPrefix(cfg.Paths.DataDir, tempHome) {
		t.Fatalf("expected data dir under temp HOME, got %q", cfg.Paths.DataDir)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[source]
base_url = "https://stats.example.org/"
request_timeout_seconds = 5

[matching]
min_confidence = 45
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Source.BaseURL != "https://stats.example.org" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Source.BaseURL)
	}
	if cfg.Source.RequestTimeout != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.Source.RequestTimeout)
	}
	if cfg.Matching.MinConfidence != 45 {
		t.Fatalf("unexpected min confidence: %d", cfg.Matching.MinConfidence)
	}
	// Untouched sections keep defaults.
	if cfg.Source.ScanStride != 5 {
		t.Fatalf("unexpected scan stride: %d", cfg.Source.ScanStride)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"confidence too high", func(c *config.Config) { c.Matching.MinConfidence = 101 }, "min_confidence"},
		{"negative delay", func(c *config.Config) { c.Source.ScanDelayMS = -1 }, "scan_delay_ms"},
		{"zero stride", func(c *config.Config) { c.Source.ScanStride = 0 }, "scan_stride"},
		{"zero freshness", func(c *config.Config) { c.Cache.FreshnessHours = 0 }, "freshness_hours"},
		{"bad url", func(c *config.Config) { c.Source.BaseURL = "ftp://example.org" }, "base_url"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "yaml" }, "logging.format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Matching.MinConfidence != config.DefaultMinConfidence {
		t.Fatalf("sample config changed defaults: %d", cfg.Matching.MinConfidence)
	}
}

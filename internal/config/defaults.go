package config

import (
	"os"
	"path/filepath"
)

const (
	defaultBaseURL   = "https://www.playoba.ca/stats"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultMinConfidence is the similarity floor applied when the config
	// does not override it. The duplicated upstream scrapers disagreed on
	// this value; it is a single knob here.
	DefaultMinConfidence = 60

	defaultRequestTimeout = 15
	defaultScanDelayMS    = 100
	defaultScanStride     = 5
	defaultFreshnessHours = 24
	defaultMaxCandidates  = 10
)

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir(),
			LogDir:  filepath.Join(defaultDataDir(), "logs"),
		},
		Source: Source{
			BaseURL:        defaultBaseURL,
			UserAgent:      defaultUserAgent,
			RequestTimeout: defaultRequestTimeout,
			ScanDelayMS:    defaultScanDelayMS,
			ScanStride:     defaultScanStride,
		},
		Matching: Matching{
			MinConfidence: DefaultMinConfidence,
			MaxCandidates: defaultMaxCandidates,
		},
		Cache: Cache{
			FreshnessHours: defaultFreshnessHours,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}

func defaultDataDir() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && base != "" {
		return filepath.Join(base, "dugout")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/dugout"
	}
	return filepath.Join(home, ".local", "share", "dugout")
}

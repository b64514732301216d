package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Source.BaseURL) == "" {
		return errors.New("source.base_url must be set")
	}
	if !strings.HasPrefix(c.Source.BaseURL, "http://") && !strings.HasPrefix(c.Source.BaseURL, "https://") {
		return fmt.Errorf("source.base_url must be an http(s) URL, got %q", c.Source.BaseURL)
	}
	if c.Source.RequestTimeout <= 0 {
		return fmt.Errorf("source.request_timeout_seconds must be positive, got %d", c.Source.RequestTimeout)
	}
	if c.Source.ScanDelayMS < 0 {
		return fmt.Errorf("source.scan_delay_ms must not be negative, got %d", c.Source.ScanDelayMS)
	}
	if c.Source.ScanStride <= 0 {
		return fmt.Errorf("source.scan_stride must be positive, got %d", c.Source.ScanStride)
	}
	if c.Matching.MinConfidence < 0 || c.Matching.MinConfidence > 100 {
		return fmt.Errorf("matching.min_confidence must be between 0 and 100, got %d", c.Matching.MinConfidence)
	}
	if c.Matching.MaxCandidates <= 0 {
		return fmt.Errorf("matching.max_candidates must be positive, got %d", c.Matching.MaxCandidates)
	}
	if c.Cache.FreshnessHours <= 0 {
		return fmt.Errorf("cache.freshness_hours must be positive, got %d", c.Cache.FreshnessHours)
	}
	for i, target := range c.Scan.Targets {
		if strings.TrimSpace(target.Affiliate) == "" {
			return fmt.Errorf("scan.targets[%d].affiliate must be set", i)
		}
		if len(target.Ranges) == 0 {
			return fmt.Errorf("scan.targets[%d] must have at least one range", i)
		}
		for j, r := range target.Ranges {
			if r.Start <= 0 || r.End < r.Start {
				return fmt.Errorf("scan.targets[%d].ranges[%d] is invalid: start %d end %d", i, j, r.Start, r.End)
			}
		}
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PutRoster stores the payload under the cache key, replacing any previous
// entry and resetting its age. Entries are never evicted; staleness is
// decided at read time.
func (s *Store) PutRoster(ctx context.Context, cacheKey string, payload []byte) error {
	if cacheKey == "" {
		return errors.New("empty cache key")
	}
	cachedAt := s.clock.Now().UTC().Format(timeFormat)
	_, err := s.execWithRetry(ensureContext(ctx), `
		INSERT INTO roster_cache (cache_key, payload, cached_at)
		VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload   = excluded.payload,
			cached_at = excluded.cached_at`,
		cacheKey, payload, cachedAt)
	if err != nil {
		return fmt.Errorf("put roster %s: %w", cacheKey, err)
	}
	return nil
}

// GetRoster returns the cached payload when an entry exists and is still
// within the freshness window. A missing entry and a stale entry look the
// same to the caller: ok is false and the payload is nil.
func (s *Store) GetRoster(ctx context.Context, cacheKey string) ([]byte, bool, error) {
	var (
		payload  []byte
		cachedAt string
	)
	err := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT payload, cached_at FROM roster_cache WHERE cache_key = ?", cacheKey).
		Scan(&payload, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get roster %s: %w", cacheKey, err)
	}

	stamp, err := time.Parse(timeFormat, cachedAt)
	if err != nil {
		return nil, false, fmt.Errorf("parse cached_at for %s: %w", cacheKey, err)
	}
	if s.clock.Now().UTC().Sub(stamp) >= s.freshness {
		return nil, false, nil
	}
	return payload, true, nil
}

// RosterCacheStats counts cache entries split by freshness.
func (s *Store) RosterCacheStats(ctx context.Context) (CacheStats, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), "SELECT cached_at FROM roster_cache")
	if err != nil {
		return CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats CacheStats
	now := s.clock.Now().UTC()
	for rows.Next() {
		var cachedAt string
		if scanErr := rows.Scan(&cachedAt); scanErr != nil {
			return CacheStats{}, fmt.Errorf("cache stats: %w", scanErr)
		}
		stats.Total++
		stamp, parseErr := time.Parse(timeFormat, cachedAt)
		if parseErr != nil {
			stats.Stale++
			continue
		}
		if now.Sub(stamp) < s.freshness {
			stats.Fresh++
		} else {
			stats.Stale++
		}
	}
	if err := rows.Err(); err != nil {
		return CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}
	return stats, nil
}

package teamid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"dugout/internal/config"
	"dugout/internal/logging"
	"dugout/internal/roster"
	"dugout/internal/services/obastats"
	"dugout/internal/store"
)

// ErrNoMatch indicates the query resolved to no registered team. The
// accompanying Import still carries the Resolution with its candidate list.
var ErrNoMatch = errors.New("no team matched query")

// ImportOptions adjusts import behavior.
type ImportOptions struct {
	// Refresh forces a live fetch even when a fresh cache entry exists.
	Refresh bool
}

// Import is the outcome of a roster import.
type Import struct {
	Resolution *Resolution    `json:"resolution"`
	Roster     *roster.Roster `json:"roster,omitempty"`
	// FromCache reports whether the roster was served from a fresh cache
	// entry instead of a live fetch.
	FromCache bool `json:"from_cache"`
}

// Importer resolves a team and loads its roster, reading through the cache.
type Importer struct {
	resolver *Resolver
	store    *store.Store
	source   obastats.PageSource
	baseURL  string
	clock    clockwork.Clock
	log      *slog.Logger
}

// NewImporter wires an importer with the real clock.
func NewImporter(resolver *Resolver, st *store.Store, source obastats.PageSource, cfg *config.Config, logger *slog.Logger) *Importer {
	return NewImporterWithClock(resolver, st, source, cfg, logger, clockwork.NewRealClock())
}

// NewImporterWithClock is NewImporter with an injected clock for tests.
func NewImporterWithClock(resolver *Resolver, st *store.Store, source obastats.PageSource, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *Importer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{
		resolver: resolver,
		store:    st,
		source:   source,
		baseURL:  cfg.Source.BaseURL,
		clock:    clock,
		log:      logging.NewComponentLogger(logger, "importer"),
	}
}

// ImportRoster resolves query to a team and returns its roster. Fresh cache
// entries short-circuit the fetch unless opts.Refresh is set; a live fetch
// writes back to the cache and updates the team's roster stats.
func (im *Importer) ImportRoster(ctx context.Context, query string, hints Hints, opts ImportOptions) (*Import, error) {
	resolution, err := im.resolver.Resolve(ctx, query, hints)
	if err != nil {
		return nil, err
	}
	if !resolution.Matched {
		return &Import{Resolution: resolution}, ErrNoMatch
	}

	team := resolution.Team
	cacheKey := rosterCacheKey(team.TeamID)

	if payload, ok, cacheErr := im.store.GetRoster(ctx, cacheKey); cacheErr != nil {
		return nil, cacheErr
	} else if ok && !opts.Refresh {
		var cached roster.Roster
		if unmarshalErr := json.Unmarshal(payload, &cached); unmarshalErr == nil {
			im.log.Debug("roster served from cache",
				slog.String(logging.FieldTeamID, team.TeamID),
				slog.String(logging.FieldCacheKey, cacheKey),
			)
			return &Import{Resolution: resolution, Roster: &cached, FromCache: true}, nil
		}
		// A corrupt entry falls through to a live fetch that overwrites it.
		im.log.Warn("discarding unreadable cache entry",
			slog.String(logging.FieldCacheKey, cacheKey),
		)
	}

	fetched, err := im.fetchRoster(ctx, team)
	if err != nil {
		return &Import{Resolution: resolution}, err
	}

	payload, err := json.Marshal(fetched)
	if err != nil {
		return nil, fmt.Errorf("encode roster for cache: %w", err)
	}
	if err := im.store.PutRoster(ctx, cacheKey, payload); err != nil {
		return nil, err
	}
	if err := im.store.SetRosterStats(ctx, team.TeamID, len(fetched.Players)); err != nil {
		return nil, err
	}

	im.log.Info("roster imported",
		slog.String(logging.FieldTeamID, team.TeamID),
		slog.Int("players", len(fetched.Players)),
	)
	return &Import{Resolution: resolution, Roster: fetched}, nil
}

func (im *Importer) fetchRoster(ctx context.Context, team *store.TeamRecord) (*roster.Roster, error) {
	pageURL := team.RosterURL
	if pageURL == "" {
		pageURL = obastats.RosterURL(im.baseURL, team.Affiliate, team.TeamID)
	}

	page, err := im.source.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch roster page: %w", err)
	}

	extracted, err := roster.Extract(page)
	if err != nil {
		return nil, err
	}
	if extracted.TeamName == "" {
		extracted.TeamName = team.TeamName
	}
	extracted.FetchedAt = im.clock.Now().UTC()
	return extracted, nil
}

func rosterCacheKey(teamID string) string {
	return "roster:" + teamID
}

// Package scan discovers teams by probing affiliate ID ranges on the stats
// site. Probing is sequential and rate limited; the site is a shared
// community resource, not an API.
package scan

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"dugout/internal/config"
	"dugout/internal/logging"
	"dugout/internal/nameparse"
	"dugout/internal/roster"
	"dugout/internal/services/obastats"
	"dugout/internal/store"
)

// Report summarizes one scan run.
type Report struct {
	RunID        string         `json:"run_id"`
	Started      time.Time      `json:"started"`
	Duration     time.Duration  `json:"duration"`
	Probed       int            `json:"probed"`
	Discovered   int            `json:"discovered"`
	PerAffiliate map[string]int `json:"per_affiliate"`
}

// Scanner probes team ID ranges and registers every page that turns out to
// be a real team.
type Scanner struct {
	store   *store.Store
	source  obastats.PageSource
	baseURL string
	stride  int
	delay   time.Duration
	clock   clockwork.Clock
	log     *slog.Logger
}

// NewScanner wires a scanner with the real clock.
func NewScanner(st *store.Store, source obastats.PageSource, cfg *config.Config, logger *slog.Logger) *Scanner {
	return NewScannerWithClock(st, source, cfg, logger, clockwork.NewRealClock())
}

// NewScannerWithClock is NewScanner with an injected clock so tests can skip
// the inter-request delay.
func NewScannerWithClock(st *store.Store, source obastats.PageSource, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	stride := cfg.Source.ScanStride
	if stride < 1 {
		stride = 1
	}
	return &Scanner{
		store:   st,
		source:  source,
		baseURL: cfg.Source.BaseURL,
		stride:  stride,
		delay:   time.Duration(cfg.Source.ScanDelayMS) * time.Millisecond,
		clock:   clock,
		log:     logging.NewComponentLogger(logger, "scanner"),
	}
}

// Run probes every target sequentially, striding through each ID range.
// Pages that fail to fetch or parse are skipped; discovery is best-effort.
// Cancelling the context stops the run and returns the partial report with
// the context's error.
func (s *Scanner) Run(ctx context.Context, targets []Target) (*Report, error) {
	report := &Report{
		RunID:        uuid.NewString(),
		Started:      s.clock.Now().UTC(),
		PerAffiliate: make(map[string]int, len(targets)),
	}
	log := s.log.With(slog.String(logging.FieldRunID, report.RunID))
	log.Info("scan started", slog.Int("targets", len(targets)), slog.Int("stride", s.stride))

	for _, target := range targets {
		report.PerAffiliate[target.Name] = 0
		for _, idRange := range target.Ranges {
			for teamID := idRange.Start; teamID <= idRange.End; teamID += s.stride {
				if err := ctx.Err(); err != nil {
					report.Duration = s.clock.Now().UTC().Sub(report.Started)
					return report, err
				}
				if report.Probed > 0 {
					if err := s.pause(ctx); err != nil {
						report.Duration = s.clock.Now().UTC().Sub(report.Started)
						return report, err
					}
				}
				report.Probed++

				if s.probe(ctx, log, target, strconv.Itoa(teamID)) {
					report.Discovered++
					report.PerAffiliate[target.Name]++
				}
			}
		}
		log.Info("affiliate scanned",
			slog.String(logging.FieldAffiliate, target.Affiliate),
			slog.String("name", target.Name),
			slog.Int("discovered", report.PerAffiliate[target.Name]),
		)
	}

	report.Duration = s.clock.Now().UTC().Sub(report.Started)
	log.Info("scan finished",
		slog.Int("probed", report.Probed),
		slog.Int("discovered", report.Discovered),
		logging.Duration("duration", report.Duration),
	)
	return report, nil
}

// probe fetches one team page and registers it when it holds a real roster.
func (s *Scanner) probe(ctx context.Context, log *slog.Logger, target Target, teamID string) bool {
	pageURL := obastats.RosterURL(s.baseURL, target.Affiliate, teamID)

	page, err := s.source.FetchPage(ctx, pageURL)
	if err != nil {
		log.Debug("probe fetch failed", slog.String("url", pageURL), logging.Error(err))
		return false
	}

	extracted, err := roster.Extract(page)
	if err != nil {
		if !errors.Is(err, roster.ErrNoPlayers) {
			log.Debug("probe parse failed", slog.String("url", pageURL), logging.Error(err))
		}
		return false
	}
	if extracted.TeamName == "" {
		return false
	}
	extracted.FetchedAt = s.clock.Now().UTC()

	parsed := nameparse.Parse(extracted.TeamName)
	rec := &store.TeamRecord{
		TeamID:       teamID,
		TeamName:     extracted.TeamName,
		Organization: parsed.Organization,
		Division:     parsed.Division,
		Level:        parsed.Level,
		Affiliate:    target.Affiliate,
		RosterURL:    pageURL,
		HasRoster:    true,
		PlayerCount:  len(extracted.Players),
		IsActive:     true,
	}
	if err := s.store.UpsertTeam(ctx, rec); err != nil {
		log.Warn("register discovered team failed",
			slog.String(logging.FieldTeamID, teamID), logging.Error(err))
		return false
	}

	if payload, marshalErr := json.Marshal(extracted); marshalErr == nil {
		if cacheErr := s.store.PutRoster(ctx, "roster:"+teamID, payload); cacheErr != nil {
			log.Warn("cache discovered roster failed",
				slog.String(logging.FieldTeamID, teamID), logging.Error(cacheErr))
		}
	}

	log.Info("team discovered",
		slog.String(logging.FieldTeamID, teamID),
		slog.String("team_name", extracted.TeamName),
		slog.Int("players", len(extracted.Players)),
	)
	return true
}

func (s *Scanner) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-s.clock.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

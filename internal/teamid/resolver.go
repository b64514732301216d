package teamid

import (
	"context"
	"fmt"
	"log/slog"

	"dugout/internal/config"
	"dugout/internal/fuzzymatch"
	"dugout/internal/logging"
	"dugout/internal/nameparse"
	"dugout/internal/store"
)

// Hints narrow resolution when the caller knows more than the raw name.
type Hints struct {
	// Division overrides the division parsed from the query.
	Division string
	// Affiliate restricts candidates to one affiliate's teams.
	Affiliate string
}

// Resolution is the structured outcome of a lookup. Matched is false on a
// miss; Candidates then lists registered names the caller may have meant.
type Resolution struct {
	Matched     bool              `json:"matched"`
	Team        *store.TeamRecord `json:"team,omitempty"`
	MatchedName string            `json:"matched_name,omitempty"`
	Confidence  int               `json:"confidence"`
	SearchTerm  string            `json:"search_term,omitempty"`
	Candidates  []string          `json:"candidates,omitempty"`
}

// Resolver matches query names against registered teams.
type Resolver struct {
	store         *store.Store
	log           *slog.Logger
	minConfidence int
	maxCandidates int
}

// NewResolver builds a resolver over the registry using the configured
// similarity floor.
func NewResolver(st *store.Store, cfg *config.Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		store:         st,
		log:           logging.NewComponentLogger(logger, "resolver"),
		minConfidence: cfg.Matching.MinConfidence,
		maxCandidates: cfg.Matching.MaxCandidates,
	}
}

// Resolve finds the registered team best matching query. The division hint
// (explicit or parsed from the query) first narrows the candidate pool; when
// no registered team carries that division the pool widens to every active
// team so a sloppy division token cannot hide an otherwise clear match.
func (r *Resolver) Resolve(ctx context.Context, query string, hints Hints) (*Resolution, error) {
	parsed := nameparse.Parse(query)
	division := hints.Division
	if division == "" {
		division = parsed.Division
	}

	teams, err := r.store.FindTeams(ctx, store.Filter{
		Division:   division,
		Affiliate:  hints.Affiliate,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if len(teams) == 0 && division != "" {
		teams, err = r.store.FindTeams(ctx, store.Filter{
			Affiliate:  hints.Affiliate,
			ActiveOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("load candidates: %w", err)
		}
	}

	candidates := make([]fuzzymatch.Candidate, len(teams))
	for i, team := range teams {
		candidates[i] = fuzzymatch.Candidate{Name: team.TeamName, Ref: team}
	}

	match, ok := fuzzymatch.Resolve(query, candidates, fuzzymatch.Options{
		MinConfidence: r.minConfidence,
		Division:      division,
	})
	if !ok {
		r.log.Info("no match above confidence floor",
			slog.String("query", query),
			slog.Int("floor", r.minConfidence),
			slog.Int("candidates", len(teams)),
		)
		return &Resolution{Candidates: r.candidateNames(teams)}, nil
	}

	team := match.Ref.(*store.TeamRecord)
	r.log.Info("resolved team",
		slog.String("query", query),
		slog.String(logging.FieldTeamID, team.TeamID),
		slog.String("matched_name", match.Name),
		slog.Int("confidence", match.Confidence),
		slog.String("search_term", match.SearchTerm),
	)
	return &Resolution{
		Matched:     true,
		Team:        team,
		MatchedName: match.Name,
		Confidence:  match.Confidence,
		SearchTerm:  match.SearchTerm,
	}, nil
}

func (r *Resolver) candidateNames(teams []*store.TeamRecord) []string {
	limit := r.maxCandidates
	if limit <= 0 || limit > len(teams) {
		limit = len(teams)
	}
	names := make([]string, 0, limit)
	for _, team := range teams[:limit] {
		names = append(names, team.TeamName)
	}
	return names
}

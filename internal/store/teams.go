package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// UpsertTeam inserts the record or, when the team ID already exists, updates
// its mutable fields in place. first_seen is set once on insert and never
// changes afterward.
func (s *Store) UpsertTeam(ctx context.Context, rec *TeamRecord) error {
	if rec == nil {
		return errors.New("nil team record")
	}
	if strings.TrimSpace(rec.TeamID) == "" {
		return errors.New("team record missing team_id")
	}
	if strings.TrimSpace(rec.TeamName) == "" {
		return errors.New("team record missing team_name")
	}

	firstSeen := rec.FirstSeen
	if firstSeen.IsZero() {
		firstSeen = s.clock.Now().UTC()
	}

	_, err := s.execWithRetry(ensureContext(ctx), `
		INSERT INTO teams (
			team_id, team_name, organization, division, level, affiliate,
			roster_url, has_roster, player_count, is_active, first_seen, last_scanned
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(team_id) DO UPDATE SET
			team_name    = excluded.team_name,
			organization = excluded.organization,
			division     = excluded.division,
			level        = excluded.level,
			affiliate    = excluded.affiliate,
			roster_url   = excluded.roster_url,
			has_roster   = excluded.has_roster,
			player_count = excluded.player_count,
			is_active    = excluded.is_active,
			last_scanned = excluded.last_scanned`,
		rec.TeamID,
		rec.TeamName,
		nullableString(rec.Organization),
		nullableString(rec.Division),
		nullableString(rec.Level),
		nullableString(rec.Affiliate),
		nullableString(rec.RosterURL),
		boolToInt(rec.HasRoster),
		rec.PlayerCount,
		boolToInt(rec.IsActive),
		firstSeen.Format(timeFormat),
		nullableTime(rec.LastScanned),
	)
	if err != nil {
		return fmt.Errorf("upsert team %s: %w", rec.TeamID, err)
	}
	return nil
}

// GetTeam returns the team with the given ID, or nil when it is not
// registered.
func (s *Store) GetTeam(ctx context.Context, teamID string) (*TeamRecord, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		fmt.Sprintf("SELECT %s FROM teams WHERE team_id = ?", teamColumns), teamID)
	rec, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get team %s: %w", teamID, err)
	}
	return rec, nil
}

// FindTeams returns registry rows matching the filter exactly, in stable
// registration order.
func (s *Store) FindTeams(ctx context.Context, filter Filter) ([]*TeamRecord, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Division != "" {
		conditions = append(conditions, "division = ?")
		args = append(args, filter.Division)
	}
	if filter.Organization != "" {
		conditions = append(conditions, "organization = ?")
		args = append(args, filter.Organization)
	}
	if filter.Affiliate != "" {
		conditions = append(conditions, "affiliate = ?")
		args = append(args, filter.Affiliate)
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = 1")
	}

	query := fmt.Sprintf("SELECT %s FROM teams", teamColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY first_seen, rowid"

	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("find teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*TeamRecord
	for rows.Next() {
		rec, scanErr := scanTeam(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("find teams: %w", scanErr)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find teams: %w", err)
	}
	return records, nil
}

// DeactivateTeam marks a team inactive without deleting its history.
func (s *Store) DeactivateTeam(ctx context.Context, teamID string) error {
	res, err := s.execWithRetry(ensureContext(ctx),
		"UPDATE teams SET is_active = 0 WHERE team_id = ?", teamID)
	if err != nil {
		return fmt.Errorf("deactivate team %s: %w", teamID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate team %s: %w", teamID, err)
	}
	if affected == 0 {
		return fmt.Errorf("team %s not found", teamID)
	}
	return nil
}

// SetRosterStats records a successful roster import against the team row.
func (s *Store) SetRosterStats(ctx context.Context, teamID string, playerCount int) error {
	now := s.clock.Now().UTC().Format(timeFormat)
	_, err := s.execWithRetry(ensureContext(ctx), `
		UPDATE teams
		SET has_roster = 1, player_count = ?, last_scanned = ?
		WHERE team_id = ?`,
		playerCount, now, teamID)
	if err != nil {
		return fmt.Errorf("set roster stats for %s: %w", teamID, err)
	}
	return nil
}

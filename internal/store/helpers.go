package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// timeFormat is the storage representation for all timestamps.
const timeFormat = time.RFC3339Nano

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

type rowScanner interface {
	Scan(dest ...any) error
}

const teamColumns = `team_id, team_name, organization, division, level, affiliate,
	roster_url, has_roster, player_count, is_active, first_seen, last_scanned`

func scanTeam(row rowScanner) (*TeamRecord, error) {
	var (
		rec          TeamRecord
		organization sql.NullString
		division     sql.NullString
		level        sql.NullString
		affiliate    sql.NullString
		rosterURL    sql.NullString
		hasRoster    int
		isActive     int
		firstSeen    string
		lastScanned  sql.NullString
	)
	if err := row.Scan(
		&rec.TeamID,
		&rec.TeamName,
		&organization,
		&division,
		&level,
		&affiliate,
		&rosterURL,
		&hasRoster,
		&rec.PlayerCount,
		&isActive,
		&firstSeen,
		&lastScanned,
	); err != nil {
		return nil, err
	}

	rec.Organization = organization.String
	rec.Division = division.String
	rec.Level = level.String
	rec.Affiliate = affiliate.String
	rec.RosterURL = rosterURL.String
	rec.HasRoster = hasRoster != 0
	rec.IsActive = isActive != 0

	parsedFirstSeen, err := time.Parse(time.RFC3339Nano, firstSeen)
	if err != nil {
		return nil, fmt.Errorf("parse first_seen %q: %w", firstSeen, err)
	}
	rec.FirstSeen = parsedFirstSeen

	if lastScanned.Valid && lastScanned.String != "" {
		parsed, err := time.Parse(time.RFC3339Nano, lastScanned.String)
		if err != nil {
			return nil, fmt.Errorf("parse last_scanned %q: %w", lastScanned.String, err)
		}
		rec.LastScanned = &parsed
	}

	return &rec, nil
}

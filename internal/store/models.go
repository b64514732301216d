package store

import "time"

// TeamRecord is one canonical team in the registry, keyed by the
// source-assigned team ID.
type TeamRecord struct {
	TeamID       string     `json:"team_id"`
	TeamName     string     `json:"team_name"`
	Organization string     `json:"organization,omitempty"`
	Division     string     `json:"division,omitempty"`
	Level        string     `json:"level,omitempty"`
	Affiliate    string     `json:"affiliate,omitempty"`
	RosterURL    string     `json:"roster_url,omitempty"`
	HasRoster    bool       `json:"has_roster"`
	PlayerCount  int        `json:"player_count"`
	IsActive     bool       `json:"is_active"`
	FirstSeen    time.Time  `json:"first_seen"`
	LastScanned  *time.Time `json:"last_scanned,omitempty"`
}

// Filter selects registry rows by exact field match. Empty fields match
// everything; partial or fuzzy matching is the resolver's job, not the
// registry's.
type Filter struct {
	Division     string
	Organization string
	Affiliate    string
	ActiveOnly   bool
}

// CacheStats summarizes roster cache contents against the freshness window.
type CacheStats struct {
	Total int `json:"total"`
	Fresh int `json:"fresh"`
	Stale int `json:"stale"`
}

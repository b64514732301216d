package roster

import "time"

// Player is one roster entry. Numbers are sequence positions assigned during
// extraction, not jersey numbers; the source does not expose those.
type Player struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// Roster is the structured result of extracting a team page.
type Roster struct {
	TeamName  string    `json:"team_name"`
	Players   []Player  `json:"players"`
	FetchedAt time.Time `json:"fetched_at"`
}

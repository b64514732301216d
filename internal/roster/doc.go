// Package roster turns fetched team pages into structured rosters. Pages
// arrive as HTML or markdown-rendered text; a small ordered rule set pulls
// out the team name and player bio links, then a filter discards navigation
// noise before numbering the surviving players.
package roster

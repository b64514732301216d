package roster

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// skipWords mark link text that is site chrome rather than a player. The
// stats site emits these inside the same anchors as real bio links, so the
// check is substring containment over the whole name.
var skipWords = []string{"skip", "content", "tournament"}

// filterPlayers deduplicates by exact name, validates candidates, then
// assigns sequence numbers in discovery order.
func filterPlayers(names []string) []Player {
	seen := make(map[string]struct{}, len(names))
	var players []Player
	for _, raw := range names {
		name := collapseSpace(raw)
		if !plausiblePlayerName(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		players = append(players, Player{
			Number: strconv.Itoa(len(players) + 1),
			Name:   name,
		})
	}
	return players
}

// plausiblePlayerName accepts names with at least two capitalized-looking
// tokens and none of the navigation words.
func plausiblePlayerName(name string) bool {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return false
	}
	lower := strings.ToLower(name)
	for _, word := range skipWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

package roster

import (
	"errors"
	"strings"
	"testing"
)

const rosterPage = `<html>
<head><title>Windsor Selects 11U AA - Ontario Baseball</title></head>
<body>
<h1>Windsor Selects 11U AA</h1>
<a href="/stats#/2100/player/9001/bio">John Smith</a>
<a href="/stats#/2100/player/9002/bio">Maria Garcia</a>
<a href="/stats#/2100/player/9002/bio">Maria Garcia</a>
<a href="/stats#/2100/schedule">Schedule</a>
<a href="/stats#/2100/player/9003/bio">Skip Content</a>
<a href="/stats#/2100/player/9004/bio">A</a>
</body>
</html>`

func TestExtractParsesHTMLRoster(t *testing.T) {
	got, err := Extract(rosterPage)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.TeamName != "Windsor Selects 11U AA" {
		t.Fatalf("team name = %q", got.TeamName)
	}
	if len(got.Players) != 2 {
		t.Fatalf("expected 2 players after filtering, got %d: %+v", len(got.Players), got.Players)
	}
	if got.Players[0].Name != "John Smith" || got.Players[0].Number != "1" {
		t.Fatalf("first player = %+v", got.Players[0])
	}
	if got.Players[1].Name != "Maria Garcia" || got.Players[1].Number != "2" {
		t.Fatalf("second player = %+v", got.Players[1])
	}
}

func TestExtractParsesMarkdownRoster(t *testing.T) {
	page := strings.Join([]string{
		"# Tecumseh Thunder 12U AA",
		"",
		"[Alex Chen](https://www.playoba.ca/stats#/2100/player/51/bio)",
		"[Sam Tremblay](https://www.playoba.ca/stats#/2100/player/52/bio)",
		"[Tournament Info](https://www.playoba.ca/stats#/2100/player/53/bio)",
	}, "\n")

	got, err := Extract(page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.TeamName != "Tecumseh Thunder 12U AA" {
		t.Fatalf("team name = %q", got.TeamName)
	}
	if len(got.Players) != 2 {
		t.Fatalf("expected 2 players, got %+v", got.Players)
	}
}

func TestExtractRejectsPlaceholderTitle(t *testing.T) {
	page := `<html><head><title>Stats - Ontario Baseball</title></head><body>
<a href="/stats#/2100/player/1/bio">John Smith</a></body></html>`

	got, err := Extract(page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.TeamName != "" {
		t.Fatalf("expected empty team name for placeholder page, got %q", got.TeamName)
	}
}

func TestExtractHeadingWinsOverTitle(t *testing.T) {
	page := `<html><head><title>Other Name - Ontario Baseball</title></head><body>
<h1>Milton Mets 10U A</h1>
<a href="/player/7/bio">Jamie Fox</a></body></html>`

	got, err := Extract(page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.TeamName != "Milton Mets 10U A" {
		t.Fatalf("team name = %q", got.TeamName)
	}
}

func TestExtractNoPlayers(t *testing.T) {
	page := `<html><body><h1>Empty Team</h1><a href="/schedule">Schedule</a></body></html>`
	_, err := Extract(page)
	if !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestFilterPlayers(t *testing.T) {
	players := filterPlayers([]string{"John Smith", "skip content", "A"})
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %+v", players)
	}
	if players[0].Number != "1" || players[0].Name != "John Smith" {
		t.Fatalf("unexpected player %+v", players[0])
	}
}

func TestFilterPlayersDedupesByExactName(t *testing.T) {
	players := filterPlayers([]string{"John Smith", "JOHN SMITH", "John Smith"})
	if len(players) != 2 {
		t.Fatalf("expected both case-distinct names kept, got %+v", players)
	}
	if players[0].Name != "John Smith" || players[1].Name != "JOHN SMITH" {
		t.Fatalf("unexpected players %+v", players)
	}
	if players[1].Number != "2" {
		t.Fatalf("unexpected number %q", players[1].Number)
	}
}

func TestFilterPlayersRejectsEmbeddedSkipWords(t *testing.T) {
	players := filterPlayers([]string{"Skipper Jones", "Tournament Committee", "Jane Doe"})
	if len(players) != 1 || players[0].Name != "Jane Doe" {
		t.Fatalf("unexpected players %+v", players)
	}
}

func TestFilterPlayersRejectsLowercase(t *testing.T) {
	players := filterPlayers([]string{"view roster", "Jane Doe"})
	if len(players) != 1 || players[0].Name != "Jane Doe" {
		t.Fatalf("unexpected players %+v", players)
	}
}

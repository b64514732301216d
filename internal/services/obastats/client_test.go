package obastats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchPageSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithUserAgent("dugout-test/1.0"))
	body, err := client.FetchPage(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if body != "<html>ok</html>" {
		t.Fatalf("body = %q", body)
	}
	if gotAgent != "dugout-test/1.0" {
		t.Fatalf("user agent = %q", gotAgent)
	}
}

func TestFetchPageNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchPage(context.Background(), server.URL)
	if !errors.Is(err, ErrPageUnavailable) {
		t.Fatalf("expected ErrPageUnavailable, got %v", err)
	}
}

func TestRosterURL(t *testing.T) {
	got := RosterURL("https://www.playoba.ca/stats/", "2100", "217541")
	want := "https://www.playoba.ca/stats#/2100/team/217541/roster"
	if got != want {
		t.Fatalf("RosterURL = %q, want %q", got, want)
	}
}

func TestTeamIDFromRosterLink(t *testing.T) {
	affiliate, teamID, ok := TeamIDFromRosterLink("https://www.playoba.ca/stats#/2100/team/217541/roster")
	if !ok || affiliate != "2100" || teamID != "217541" {
		t.Fatalf("got %q %q %v", affiliate, teamID, ok)
	}

	if _, _, ok := TeamIDFromRosterLink("https://www.playoba.ca/stats#/2100/schedule"); ok {
		t.Fatal("expected no match for schedule link")
	}
}

func TestStaticSourceRecordsFetches(t *testing.T) {
	source := NewStaticSource(map[string]string{"u1": "body"})

	if _, err := source.FetchPage(context.Background(), "u1"); err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if _, err := source.FetchPage(context.Background(), "u2"); !errors.Is(err, ErrPageUnavailable) {
		t.Fatalf("expected ErrPageUnavailable, got %v", err)
	}
	fetched := source.Fetched()
	if len(fetched) != 2 || fetched[0] != "u1" || fetched[1] != "u2" {
		t.Fatalf("fetched = %v", fetched)
	}
}

package store_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"dugout/internal/testsupport"
)

func TestRosterCacheRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	payload := []byte(`{"team_name":"Windsor Selects 11U AA"}`)
	if err := st.PutRoster(ctx, "roster:217541", payload); err != nil {
		t.Fatalf("PutRoster: %v", err)
	}

	got, ok, err := st.GetRoster(ctx, "roster:217541")
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if !ok {
		t.Fatal("expected fresh cache hit immediately after put")
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: got %q", got)
	}
}

func TestRosterCacheMissWhenAbsent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	_, ok, err := st.GetRoster(context.Background(), "roster:unknown")
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestRosterCacheExpiresAfterFreshnessWindow(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	clock := clockwork.NewFakeClock()
	st := testsupport.MustOpenStoreWithClock(t, cfg, clock)
	ctx := context.Background()

	if err := st.PutRoster(ctx, "roster:100", []byte("payload")); err != nil {
		t.Fatalf("PutRoster: %v", err)
	}

	clock.Advance(23 * time.Hour)
	if _, ok, err := st.GetRoster(ctx, "roster:100"); err != nil || !ok {
		t.Fatalf("expected hit inside window, ok=%v err=%v", ok, err)
	}

	clock.Advance(2 * time.Hour)
	if _, ok, err := st.GetRoster(ctx, "roster:100"); err != nil || ok {
		t.Fatalf("expected miss after window, ok=%v err=%v", ok, err)
	}
}

func TestRosterCachePutResetsAge(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	clock := clockwork.NewFakeClock()
	st := testsupport.MustOpenStoreWithClock(t, cfg, clock)
	ctx := context.Background()

	if err := st.PutRoster(ctx, "roster:5", []byte("old")); err != nil {
		t.Fatalf("PutRoster: %v", err)
	}
	clock.Advance(30 * time.Hour)
	if err := st.PutRoster(ctx, "roster:5", []byte("new")); err != nil {
		t.Fatalf("PutRoster refresh: %v", err)
	}

	got, ok, err := st.GetRoster(ctx, "roster:5")
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if !ok {
		t.Fatal("expected fresh entry after refresh")
	}
	if string(got) != "new" {
		t.Fatalf("expected refreshed payload, got %q", got)
	}
}

func TestRosterCacheStats(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	clock := clockwork.NewFakeClock()
	st := testsupport.MustOpenStoreWithClock(t, cfg, clock)
	ctx := context.Background()

	if err := st.PutRoster(ctx, "roster:old", []byte("a")); err != nil {
		t.Fatalf("PutRoster: %v", err)
	}
	clock.Advance(25 * time.Hour)
	if err := st.PutRoster(ctx, "roster:new", []byte("b")); err != nil {
		t.Fatalf("PutRoster: %v", err)
	}

	stats, err := st.RosterCacheStats(ctx)
	if err != nil {
		t.Fatalf("RosterCacheStats: %v", err)
	}
	if stats.Total != 2 || stats.Fresh != 1 || stats.Stale != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

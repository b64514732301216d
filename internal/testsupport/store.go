package testsupport

import (
	"testing"

	"github.com/jonboulle/clockwork"

	"dugout/internal/config"
	"dugout/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// MustOpenStoreWithClock opens a store with an injected clock so tests can
// advance time without sleeping.
func MustOpenStoreWithClock(t testing.TB, cfg *config.Config, clock clockwork.Clock) *store.Store {
	t.Helper()

	st, err := store.OpenWithClock(cfg, clock)
	if err != nil {
		t.Fatalf("store.OpenWithClock: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

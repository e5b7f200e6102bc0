package testsupport

import (
	"context"
	"testing"

	"cinelog/internal/config"
	"cinelog/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config, lookup library.Lookup) *library.Store {
	t.Helper()

	store, err := library.Open(cfg, lookup, nil)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddMovie inserts a movie through the store's enrichment path using the
// provided stub lookup.
func AddMovie(t testing.TB, store *library.Store, title string) *library.Movie {
	t.Helper()

	movie, err := store.Add(context.Background(), title)
	if err != nil {
		t.Fatalf("store.Add(%q): %v", title, err)
	}
	return movie
}

package library_test

import (
	"context"
	"errors"
	"testing"

	"cinelog/internal/library"
	"cinelog/internal/testsupport"
)

var inception = library.Movie{
	Title:     "Inception",
	Year:      2010,
	Rating:    8.8,
	PosterURL: "https://img.example/inception.jpg",
}

func TestAddListRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	stub := testsupport.NewStubLookup(inception)
	store := testsupport.MustOpenStore(t, cfg, stub)

	ctx := context.Background()
	added, err := store.Add(ctx, "inception")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if *added != inception {
		t.Fatalf("Add returned %+v, want the enriched record", added)
	}

	snapshot, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	movie, ok := snapshot.Movie("Inception")
	if !ok {
		t.Fatal("expected Inception in snapshot")
	}
	if movie != inception {
		t.Fatalf("snapshot record %+v, want enriched fields", movie)
	}

	removed, err := store.Delete(ctx, "Inception")
	if err != nil || !removed {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", removed, err)
	}
	snapshot, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List after delete failed: %v", err)
	}
	if _, ok := snapshot["Inception"]; ok {
		t.Fatal("deleted movie still present in snapshot")
	}
}

func TestAddDuplicateSkipsLookup(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	stub := testsupport.NewStubLookup(inception)
	store := testsupport.MustOpenStore(t, cfg, stub)

	ctx := context.Background()
	testsupport.AddMovie(t, store, "Inception")
	callsAfterFirst := stub.Calls

	_, err := store.Add(ctx, "Inception")
	if !errors.Is(err, library.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if stub.Calls != callsAfterFirst {
		t.Fatal("duplicate add must not consult the lookup")
	}

	snapshot, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("uniqueness violated: %d rows for one title", len(snapshot))
	}
}

func TestAddLookupMissWritesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg, testsupport.NewStubLookup())

	ctx := context.Background()
	_, err := store.Add(ctx, "Unknown Film")
	if !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	snapshot, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshot) != 0 {
		t.Fatalf("lookup miss must not write, got %v", snapshot)
	}
}

func TestAddTransportFailureWritesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	stub := &testsupport.StubLookup{Err: errors.New("connection refused")}
	store := testsupport.MustOpenStore(t, cfg, stub)

	ctx := context.Background()
	_, err := store.Add(ctx, "Inception")
	if !errors.Is(err, library.ErrTransport) {
		t.Fatalf("expected ErrTransport classification, got %v", err)
	}

	snapshot, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshot) != 0 {
		t.Fatalf("failed lookup must not write, got %v", snapshot)
	}
}

func TestAddWithoutLookupIsConfigurationError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg, nil)

	if _, err := store.Add(context.Background(), "Inception"); !errors.Is(err, library.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg, testsupport.NewStubLookup(inception))

	if _, err := store.Add(context.Background(), "   "); !errors.Is(err, library.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteAbsentTitleIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg, nil)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		removed, err := store.Delete(ctx, "Never Added")
		if err != nil {
			t.Fatalf("Delete attempt %d errored: %v", i+1, err)
		}
		if removed {
			t.Fatalf("Delete attempt %d reported a removed row", i+1)
		}
	}
}

func TestUpdateRating(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg, testsupport.NewStubLookup(inception))

	ctx := context.Background()
	testsupport.AddMovie(t, store, "Inception")

	updated, err := store.UpdateRating(ctx, "Inception", 9.5)
	if err != nil || !updated {
		t.Fatalf("UpdateRating = (%v, %v), want (true, nil)", updated, err)
	}

	snapshot, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got := snapshot["Inception"].Rating; got != 9.5 {
		t.Fatalf("rating = %v, want 9.5", got)
	}
	if snapshot["Inception"].Year != inception.Year {
		t.Fatal("update must only touch the rating column")
	}

	updated, err = store.UpdateRating(ctx, "Absent", 5)
	if err != nil {
		t.Fatalf("UpdateRating on absent title errored: %v", err)
	}
	if updated {
		t.Fatal("UpdateRating on absent title reported success")
	}
}

func TestValidateRating(t *testing.T) {
	for _, rating := range []float64{0, 5.5, 10} {
		if err := library.ValidateRating(rating); err != nil {
			t.Fatalf("ValidateRating(%v) = %v, want nil", rating, err)
		}
	}
	for _, rating := range []float64{-0.1, 10.1, 42} {
		if err := library.ValidateRating(rating); !errors.Is(err, library.ErrValidation) {
			t.Fatalf("ValidateRating(%v) = %v, want ErrValidation", rating, err)
		}
	}
}

func TestSnapshotIsNotLive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg, testsupport.NewStubLookup(inception))

	ctx := context.Background()
	testsupport.AddMovie(t, store, "Inception")

	before, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if _, err := store.UpdateRating(ctx, "Inception", 2.0); err != nil {
		t.Fatalf("UpdateRating failed: %v", err)
	}
	if before["Inception"].Rating != inception.Rating {
		t.Fatal("snapshot mutated by a later write")
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind string
	}{
		{library.ErrDuplicate, "duplicate"},
		{library.ErrNotFound, "not_found"},
		{library.ErrTransport, "transport"},
		{library.ErrStorageUnavailable, "storage"},
		{library.ErrValidation, "validation"},
		{library.ErrConfiguration, "configuration"},
		{errors.New("anything else"), "internal"},
	}
	for _, tc := range cases {
		if got := library.Kind(tc.err); got != tc.kind {
			t.Fatalf("Kind(%v) = %q, want %q", tc.err, got, tc.kind)
		}
	}
}

package testsupport

import (
	"context"
	"strings"

	"cinelog/internal/library"
)

// StubLookup is an in-memory library.Lookup for tests. Titles resolve
// case-insensitively against Movies; absent titles report not-found.
type StubLookup struct {
	Movies map[string]library.Movie
	Err    error
	Calls  int
}

// Resolve implements library.Lookup.
func (s *StubLookup) Resolve(_ context.Context, title string) (library.Resolution, error) {
	s.Calls++
	if s.Err != nil {
		return library.Resolution{}, s.Err
	}
	for candidate, movie := range s.Movies {
		if strings.EqualFold(candidate, title) {
			return library.Resolution{Found: true, Movie: movie}, nil
		}
	}
	return library.Resolution{}, nil
}

// NewStubLookup builds a StubLookup from fully-formed movies keyed by
// their titles.
func NewStubLookup(movies ...library.Movie) *StubLookup {
	stub := &StubLookup{Movies: make(map[string]library.Movie, len(movies))}
	for _, movie := range movies {
		stub.Movies[movie.Title] = movie
	}
	return stub
}

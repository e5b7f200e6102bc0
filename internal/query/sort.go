package query

import (
	"sort"

	"cinelog/internal/library"
)

// SortByRating orders the snapshot highest rating first. Equal ratings are
// broken by title, lexicographically descending to match the primary sort
// direction.
func SortByRating(snapshot library.Snapshot) []library.Movie {
	movies := collect(snapshot)
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].Rating != movies[j].Rating {
			return movies[i].Rating > movies[j].Rating
		}
		return movies[i].Title > movies[j].Title
	})
	return movies
}

// SortByYear orders the snapshot by release year. newestFirst controls the
// direction of both the year key and the title tie-break.
func SortByYear(snapshot library.Snapshot, newestFirst bool) []library.Movie {
	movies := collect(snapshot)
	sort.Slice(movies, func(i, j int) bool {
		a, b := movies[i], movies[j]
		if newestFirst {
			a, b = b, a
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Title < b.Title
	})
	return movies
}

func collect(snapshot library.Snapshot) []library.Movie {
	movies := make([]library.Movie, 0, len(snapshot))
	for title, attrs := range snapshot {
		movies = append(movies, library.Movie{
			Title:     title,
			Year:      attrs.Year,
			Rating:    attrs.Rating,
			PosterURL: attrs.PosterURL,
		})
	}
	return movies
}

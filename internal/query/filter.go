package query

import "cinelog/internal/library"

// FilterOptions bound the filter pass. The zero value admits every movie:
// MinRating 0 imposes no rating floor, StartYear 0 no lower year bound,
// and EndYear 0 is treated as unset (no upper year bound).
type FilterOptions struct {
	MinRating float64
	StartYear int
	EndYear   int
}

// Filter returns the movies passing all bounds. Bounds are inclusive on
// both ends: a movie from StartYear or EndYear itself is kept, as is one
// rated exactly MinRating.
func Filter(snapshot library.Snapshot, opts FilterOptions) library.Snapshot {
	filtered := make(library.Snapshot)
	for title, attrs := range snapshot {
		if attrs.Rating < opts.MinRating {
			continue
		}
		if attrs.Year < opts.StartYear {
			continue
		}
		if opts.EndYear != 0 && attrs.Year > opts.EndYear {
			continue
		}
		filtered[title] = attrs
	}
	return filtered
}

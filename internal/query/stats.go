package query

import (
	"errors"
	"math"
	"sort"

	"cinelog/internal/library"
)

// ErrEmptyCollection reports an operation that is undefined on an empty
// snapshot. Callers must handle it; there are no placeholder statistics.
var ErrEmptyCollection = errors.New("collection is empty")

// Statistics summarizes the ratings in a snapshot. Best and Worst list
// every title tied at the maximum and minimum rating.
type Statistics struct {
	Mean   float64
	Median float64
	Best   []string
	Worst  []string
}

// ComputeStatistics calculates mean and median rating (both rounded to two
// decimal places) plus the best- and worst-rated titles.
func ComputeStatistics(snapshot library.Snapshot) (Statistics, error) {
	if len(snapshot) == 0 {
		return Statistics{}, ErrEmptyCollection
	}

	ratings := make([]float64, 0, len(snapshot))
	for _, attrs := range snapshot {
		ratings = append(ratings, attrs.Rating)
	}
	sort.Float64s(ratings)

	var sum float64
	for _, rating := range ratings {
		sum += rating
	}
	mean := sum / float64(len(ratings))

	var median float64
	mid := len(ratings) / 2
	if len(ratings)%2 == 1 {
		median = ratings[mid]
	} else {
		median = (ratings[mid-1] + ratings[mid]) / 2
	}

	best := ratings[len(ratings)-1]
	worst := ratings[0]

	stats := Statistics{
		Mean:   roundToCents(mean),
		Median: roundToCents(median),
	}
	for title, attrs := range snapshot {
		if attrs.Rating == best {
			stats.Best = append(stats.Best, title)
		}
		if attrs.Rating == worst {
			stats.Worst = append(stats.Worst, title)
		}
	}
	sort.Strings(stats.Best)
	sort.Strings(stats.Worst)
	return stats, nil
}

func roundToCents(value float64) float64 {
	return math.Round(value*100) / 100
}

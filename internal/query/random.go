package query

import (
	"math/rand"
	"sort"

	"cinelog/internal/library"
)

// RandomPick chooses one title uniformly at random and returns it with its
// rating.
func RandomPick(snapshot library.Snapshot) (string, float64, error) {
	if len(snapshot) == 0 {
		return "", 0, ErrEmptyCollection
	}
	titles := make([]string, 0, len(snapshot))
	for title := range snapshot {
		titles = append(titles, title)
	}
	// Map iteration order is randomized but not uniform; sort first so the
	// draw below is the only source of randomness.
	sort.Strings(titles)
	title := titles[rand.Intn(len(titles))]
	return title, snapshot[title].Rating, nil
}

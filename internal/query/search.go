package query

import (
	"sort"
	"strings"

	"cinelog/internal/library"
	"cinelog/internal/search"
)

// DefaultFuzzyThreshold is the minimum token-set score for a title to
// count as a near match.
const DefaultFuzzyThreshold = 80

// Match is a near-miss candidate with its similarity score.
type Match struct {
	Title string
	Score int
}

// SearchResult is the consolidated outcome of one full-table
// classification pass. Titles absent from both buckets did not match.
type SearchResult struct {
	Exact   []string
	Similar []Match
}

// Empty reports whether the search produced no matches at all. The CLI
// uses this to offer adding the query to the collection exactly once.
func (r SearchResult) Empty() bool {
	return len(r.Exact) == 0 && len(r.Similar) == 0
}

// Search classifies every title in the snapshot against the query. A title
// whose lowercased form contains the lowercased query is exact; otherwise
// it is similar when its token-set score reaches the threshold, and
// unmatched below that. No candidate aborts the pass. threshold values
// outside (0,100] fall back to DefaultFuzzyThreshold.
func Search(query string, snapshot library.Snapshot, threshold int) SearchResult {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultFuzzyThreshold
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	var result SearchResult
	for title := range snapshot {
		if strings.Contains(strings.ToLower(title), needle) {
			result.Exact = append(result.Exact, title)
			continue
		}
		if score := search.TokenSetRatio(needle, title); score >= threshold {
			result.Similar = append(result.Similar, Match{Title: title, Score: score})
		}
	}

	sort.Strings(result.Exact)
	// Score is the primary key; the lexicographically-descending title
	// tie-break keeps equal-score ordering deterministic.
	sort.Slice(result.Similar, func(i, j int) bool {
		if result.Similar[i].Score != result.Similar[j].Score {
			return result.Similar[i].Score > result.Similar[j].Score
		}
		return result.Similar[i].Title > result.Similar[j].Title
	})
	return result
}

package search

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// TokenSetRatio scores the similarity of two strings on a 0-100 scale
// using order-independent token-set comparison. Shared tokens dominate the
// score, which makes the measure robust to word reordering and to one
// title being a token subset of the other ("dark knight" scores 100
// against "The Dark Knight Rises").
func TokenSetRatio(a, b string) int {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 0
	}

	var shared, onlyA, onlyB []string
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			shared = append(shared, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range tokensB {
		if _, ok := tokensA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(shared, " ")
	combinedA := joinNonEmpty(base, strings.Join(onlyA, " "))
	combinedB := joinNonEmpty(base, strings.Join(onlyB, " "))

	score := ratio(base, combinedA)
	if r := ratio(base, combinedB); r > score {
		score = r
	}
	if r := ratio(combinedA, combinedB); r > score {
		score = r
	}
	return score
}

// ratio is a Levenshtein-based similarity on a 0-100 scale with
// substitutions counted at twice the cost of insertions and deletions, so
// that a replaced rune hurts as much as a delete plus an insert.
func ratio(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)
	lengthSum := len(runesA) + len(runesB)
	if lengthSum == 0 {
		return 0
	}
	distance := editDistance(runesA, runesB)
	return int(math.Round(100 * float64(lengthSum-distance) / float64(lengthSum)))
}

func editDistance(a, b []rune) int {
	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}
	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			substitution := previous[j-1]
			if a[i-1] != b[j-1] {
				substitution += 2
			}
			deletion := previous[j] + 1
			insertion := current[j-1] + 1
			current[j] = min(substitution, min(deletion, insertion))
		}
		previous, current = current, previous
	}
	return previous[len(b)]
}

func tokenSet(value string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

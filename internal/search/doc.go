// Package search scores approximate title matches.
//
// The scoring is pure and deterministic: the same pair of strings always
// yields the same value, which the query layer relies on for stable
// result ordering.
package search

package library

import (
	"errors"
	"fmt"
)

// Sentinel errors classify every failure the store and its collaborators
// can surface. Callers branch with errors.Is; the CLI uses Kind to decide
// how to present a failure (for example offering to add a title after a
// lookup miss versus just reporting a transport problem).
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrDuplicate          = errors.New("movie already exists")
	ErrNotFound           = errors.New("movie not found")
	ErrTransport          = errors.New("metadata lookup failed")
	ErrValidation         = errors.New("validation error")
	ErrConfiguration      = errors.New("configuration error")
)

// Kind returns a stable classification string for an error produced by this
// package, or "internal" when the error carries no known marker.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDuplicate):
		return "duplicate"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrStorageUnavailable):
		return "storage"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "internal"
	}
}

// Rating bounds accepted by the update path. The store trusts callers to
// validate; the CLI runs ValidateRating before calling UpdateRating.
const (
	RatingMin = 0.0
	RatingMax = 10.0
)

// ValidateRating checks the caller-facing [0,10] rating constraint.
func ValidateRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return fmt.Errorf("%w: rating %.2f outside [%.0f,%.0f]", ErrValidation, rating, RatingMin, RatingMax)
	}
	return nil
}

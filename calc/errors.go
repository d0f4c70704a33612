package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is the single distinguished cancellation/timeout error
	// kind spec.md §7 requires: "propagate as a single distinguished error
	// kind; not retryable inside the core."
	ErrCancelled = errors.New("calc: calculation cancelled")
	// ErrConfig marks configuration errors: missing IMT model curves, a GMM
	// not registered for a required IMT, non-finite GMM output, or a weight
	// set that does not sum to 1 (spec.md §7). The calculation aborts with
	// no partial result.
	ErrConfig = errors.New("calc: configuration error")
	// ErrModelData marks model-data errors scoped to one SourceSet: a
	// source with zero ruptures, a rupture with non-positive rate or
	// non-finite magnitude, or geometry producing non-finite distances
	// (spec.md §7). The error names the offending source; ComputeHazard
	// returns it with no result, so the whole calculation ends.
	ErrModelData = errors.New("calc: model data error")
)

// configErrorf wraps err with ErrConfig and a stage-identifying message.
func configErrorf(stage string, err error) error {
	return fmt.Errorf("calc: %s: %w: %w", stage, ErrConfig, err)
}

// modelDataErrorf wraps err with ErrModelData and the offending source's
// identity, per spec.md §7's "surface with source identity".
func modelDataErrorf(sourceID string, err error) error {
	return fmt.Errorf("calc: source %q: %w: %w", sourceID, ErrModelData, err)
}

package model

import "errors"

var (
	// ErrSealed indicates a mutating call was made against an already-sealed
	// builder. Per spec.md §4.8 and §9 this is a fatal programmer error:
	// builder setters panic with it, and a second Seal call returns it. As a
	// sentinel, the panic value can still be matched with errors.Is in a
	// recover() handler if a caller chooses to convert it back to an error.
	ErrSealed = errors.New("model: builder is sealed")
	// ErrNotSealed indicates a read accessor that requires a sealed,
	// validated instance was called before Seal().
	ErrNotSealed = errors.New("model: builder is not sealed")
	// ErrWeightsNotNormalized indicates a GmmSet's weights for one distance
	// regime do not sum to 1 within the configured tolerance.
	ErrWeightsNotNormalized = errors.New("model: gmm weights do not sum to 1")
	// ErrEmptyWeights indicates a GmmSet distance regime has no entries.
	ErrEmptyWeights = errors.New("model: gmm weight map is empty")
	// ErrInvalidBand indicates a negative interpolation band width.
	ErrInvalidBand = errors.New("model: interpolation band width must be >= 0")
	// ErrMissingCurve indicates CalcConfig has no model curve registered for
	// a declared Imt.
	ErrMissingCurve = errors.New("model: missing model curve for imt")
	// ErrInvalidTruncation indicates a non-positive truncation level.
	ErrInvalidTruncation = errors.New("model: truncation level must be > 0")
	// ErrInvalidTimespan indicates a non-positive exposure window.
	ErrInvalidTimespan = errors.New("model: timespan must be > 0")
	// ErrInvalidWeight indicates a SourceSet weight outside (0, 1].
	ErrInvalidWeight = errors.New("model: set weight must be in (0, 1]")
)

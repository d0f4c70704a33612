package gmm

import "errors"

var (
	// ErrNonFinite indicates a GroundMotionModel returned a non-finite
	// logMean or a non-finite or negative sigma (sigma 0 is accepted as the
	// step-function case) — a fatal configuration error per
	// spec.md §4.2, never a recoverable per-input condition.
	ErrNonFinite = errors.New("gmm: non-finite ground motion output")
	// ErrNotRegistered indicates Table.Lookup was asked for a (Gmm, Imt)
	// pair that was never registered.
	ErrNotRegistered = errors.New("gmm: model not registered for (gmm, imt)")
	// ErrEmptyInputs indicates InputsToGroundMotions was given an empty
	// InputList — a zero-rupture source is a model-data error, not a
	// silently-empty result (spec.md §7).
	ErrEmptyInputs = errors.New("gmm: input list has no entries")
	// ErrUnknownExceedanceModel indicates an ExceedanceModel value outside
	// the four named variants.
	ErrUnknownExceedanceModel = errors.New("gmm: unknown exceedance model variant")
)

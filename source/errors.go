package source

import "errors"

var (
	// ErrZeroRuptures indicates a Source with no ruptures — a model-data
	// error per spec.md §7, failed at the enclosing SourceSet.
	ErrZeroRuptures = errors.New("source: source has zero ruptures")
	// ErrNonPositiveRate indicates a rupture with rate <= 0.
	ErrNonPositiveRate = errors.New("source: rupture rate must be > 0")
	// ErrNonFiniteMagnitude indicates a rupture with a non-finite magnitude.
	ErrNonFiniteMagnitude = errors.New("source: rupture magnitude must be finite")
	// ErrNonFiniteGeometry indicates a RuptureSurface produced a non-finite
	// distance or geometric attribute.
	ErrNonFiniteGeometry = errors.New("source: rupture surface produced a non-finite value")
	// ErrEmptySourceSet indicates a SourceSet with no sources was sealed;
	// SourceSetBuilder.Seal also returns it when the added sources do not
	// all share one SourceType.
	ErrEmptySourceSet = errors.New("source: source set has no sources")
	// ErrInvalidWeight indicates a SourceSet weight outside (0, 1].
	ErrInvalidWeight = errors.New("source: set weight must be in (0, 1]")
	// ErrInvalidMFDRange indicates a Gutenberg-Richter MFD with mMax <= mMin
	// or a non-positive magnitude bin width.
	ErrInvalidMFDRange = errors.New("source: invalid magnitude-frequency range")
	// ErrEmptyCluster indicates a ClusterSource built with zero segments.
	ErrEmptyCluster = errors.New("source: cluster has zero segments")
	// ErrSectionCountMismatch indicates a SystemSource whose rupture-section
	// list count differs from its rupture count, or whose rupture-section
	// list names a section index outside its per-section distance slice.
	ErrSectionCountMismatch = errors.New("source: section distance count mismatch")
)

package region

import "errors"

var (
	// ErrEmptyGrid indicates the density grid has no rows or no columns.
	ErrEmptyGrid = errors.New("region: density grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("region: all rows must have the same length")
	// ErrNoComponents indicates BridgeComponents was called with an empty side.
	ErrNoComponents = errors.New("region: source and destination cell sets must be non-empty")
	// ErrNoSamples indicates DefaultProperties has no property samples to propagate from.
	ErrNoSamples = errors.New("region: no property samples registered")
)

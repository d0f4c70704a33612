package curve

import "errors"

var (
	// ErrInvalidLength indicates a non-positive template/curve length.
	ErrInvalidLength = errors.New("curve: length must be positive")
	// ErrLengthMismatch indicates two curves/templates of differing length were combined.
	ErrLengthMismatch = errors.New("curve: length mismatch")
	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("curve: index out of range")
	// ErrUnknownKey indicates a Table row lookup for a key never registered.
	ErrUnknownKey = errors.New("curve: unknown key")
	// ErrDuplicateKey indicates NewTable was given the same row key twice.
	ErrDuplicateKey = errors.New("curve: duplicate key")
	// ErrNaN indicates a Set call was given a NaN value; hazard rates are
	// never legitimately NaN and a NaN reaching this layer is a modeling bug
	// upstream (GMM evaluation or MFD rate computation), not a numeric edge
	// case to silently tolerate.
	ErrNaN = errors.New("curve: NaN value")
)

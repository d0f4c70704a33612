package testvectors

import "errors"

var (
	// ErrMalformedRow marks a CSV row that does not split into the
	// site_name, lon, lat, value-list shape spec.md §6 specifies.
	ErrMalformedRow = errors.New("testvectors: malformed row")
	// ErrUnknownSite marks a comparison against a site absent from the
	// expected-value file.
	ErrUnknownSite = errors.New("testvectors: unknown site")
	// ErrLengthMismatch marks an actual/expected value count mismatch.
	ErrLengthMismatch = errors.New("testvectors: value count mismatch")
)

package config

import "errors"

var (
	// ErrNoImts marks an overlay with no configured IMTs.
	ErrNoImts = errors.New("config: no imts configured")
	// ErrUnknownExceedance marks an overlay naming an exceedance-model
	// variant outside gmm's four closed variants.
	ErrUnknownExceedance = errors.New("config: unknown exceedance model")
)

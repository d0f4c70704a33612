package model

import (
	"sync"

	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
)

// DefaultTimespan is the exposure window used for Poisson conversion when a
// CalcConfig does not set one (spec.md §9: "assume t = 1 year unless the
// config provides a timespan").
const DefaultTimespan = 1.0

// CalcConfig is the immutable per-calculation configuration: the set of
// IMTs to compute, each one's model curve (x-axis of log amplitudes), the
// exceedance-model variant, truncation level, per-IMT distance cutoffs, and
// the Poisson exposure window (spec.md §3).
type CalcConfig struct {
	imts            []gmm.Imt
	curves          map[gmm.Imt]*curve.Template
	exceedance      gmm.ExceedanceModel
	truncationLevel float64
	distanceCutoff  map[gmm.Imt]float64
	timespan        float64
}

// Imts returns the configured IMTs in declaration order.
func (c *CalcConfig) Imts() []gmm.Imt {
	cp := make([]gmm.Imt, len(c.imts))
	copy(cp, c.imts)

	return cp
}

// Curve returns the model curve template for imt, or ErrMissingCurve.
func (c *CalcConfig) Curve(imt gmm.Imt) (*curve.Template, error) {
	t, ok := c.curves[imt]
	if !ok {
		return nil, ErrMissingCurve
	}

	return t, nil
}

// Exceedance returns the configured exceedance-model variant.
func (c *CalcConfig) Exceedance() gmm.ExceedanceModel { return c.exceedance }

// TruncationLevel returns the truncation level in standard deviations.
func (c *CalcConfig) TruncationLevel() float64 { return c.truncationLevel }

// DistanceCutoff returns the near/far-field distance cutoff for imt, or 0
// if none was configured for that IMT; with 0, GmmSet.WeightAt treats every
// positive distance as far-field outside any interpolation band.
func (c *CalcConfig) DistanceCutoff(imt gmm.Imt) float64 { return c.distanceCutoff[imt] }

// Timespan returns the Poisson exposure window in years.
func (c *CalcConfig) Timespan() float64 { return c.timespan }

// CalcConfigBuilder accumulates IMTs, curves, and calculation parameters
// before Seal validates and freezes them.
type CalcConfigBuilder struct {
	mu              sync.Mutex
	imts            []gmm.Imt
	seen            map[gmm.Imt]struct{}
	curves          map[gmm.Imt]*curve.Template
	exceedance      gmm.ExceedanceModel
	truncationLevel float64
	distanceCutoff  map[gmm.Imt]float64
	timespan        float64
	sealed          bool
}

// NewCalcConfigBuilder returns an open CalcConfigBuilder with the default
// 1-year timespan.
func NewCalcConfigBuilder() *CalcConfigBuilder {
	return &CalcConfigBuilder{
		seen:           make(map[gmm.Imt]struct{}),
		curves:         make(map[gmm.Imt]*curve.Template),
		distanceCutoff: make(map[gmm.Imt]float64),
		timespan:       DefaultTimespan,
	}
}

// AddImt registers imt with its model curve template. Calling it twice for
// the same imt overwrites the template without reordering declaration
// index. Panics if already sealed.
func (b *CalcConfigBuilder) AddImt(imt gmm.Imt, tmpl *curve.Template) *CalcConfigBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		panic(ErrSealed)
	}
	if _, ok := b.seen[imt]; !ok {
		b.seen[imt] = struct{}{}
		b.imts = append(b.imts, imt)
	}
	b.curves[imt] = tmpl

	return b
}

// SetDistanceCutoff records imt's near/far-field distance cutoff.
func (b *CalcConfigBuilder) SetDistanceCutoff(imt gmm.Imt, rcut float64) *CalcConfigBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		panic(ErrSealed)
	}
	b.distanceCutoff[imt] = rcut

	return b
}

// SetExceedance records the exceedance-model variant and truncation level.
func (b *CalcConfigBuilder) SetExceedance(m gmm.ExceedanceModel, truncationLevel float64) *CalcConfigBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		panic(ErrSealed)
	}
	b.exceedance = m
	b.truncationLevel = truncationLevel

	return b
}

// SetTimespan overrides the default 1-year Poisson exposure window.
func (b *CalcConfigBuilder) SetTimespan(t float64) *CalcConfigBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		panic(ErrSealed)
	}
	b.timespan = t

	return b
}

// Seal validates the accumulated configuration and returns an immutable
// CalcConfig. Further builder calls panic.
func (b *CalcConfigBuilder) Seal() (*CalcConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		return nil, ErrSealed
	}
	if len(b.imts) == 0 {
		return nil, ErrMissingCurve
	}
	if b.truncationLevel <= 0 {
		return nil, ErrInvalidTruncation
	}
	if b.timespan <= 0 {
		return nil, ErrInvalidTimespan
	}
	for _, imt := range b.imts {
		if _, ok := b.curves[imt]; !ok {
			return nil, ErrMissingCurve
		}
	}

	b.sealed = true
	imts := make([]gmm.Imt, len(b.imts))
	copy(imts, b.imts)
	curves := make(map[gmm.Imt]*curve.Template, len(b.curves))
	for k, v := range b.curves {
		curves[k] = v
	}
	cutoffs := make(map[gmm.Imt]float64, len(b.distanceCutoff))
	for k, v := range b.distanceCutoff {
		cutoffs[k] = v
	}

	return &CalcConfig{
		imts:            imts,
		curves:          curves,
		exceedance:      b.exceedance,
		truncationLevel: b.truncationLevel,
		distanceCutoff:  cutoffs,
		timespan:        b.timespan,
	}, nil
}

package curve

import "math"

// Curve is a single sequence of exceedance frequencies (or intermediate
// ground-motion values) aligned to a Template's amplitude axis. It is the
// scratch/result unit CurveConsolidator and CurveSetConsolidator accumulate
// into (spec.md §4.4): one HazardCurve per IMT per SourceSet, and per
// HazardModel after weighted combination across SourceSets.
type Curve struct {
	tmpl *Template
	y    []float64
}

// NewCurve returns a zero-valued Curve bound to tmpl.
func NewCurve(tmpl *Template) *Curve {
	return &Curve{tmpl: tmpl, y: make([]float64, tmpl.Len())}
}

// NewCurveFrom returns a Curve bound to tmpl with y as its initial values.
// Returns ErrLengthMismatch if len(y) != tmpl.Len().
func NewCurveFrom(tmpl *Template, y []float64) (*Curve, error) {
	if len(y) != tmpl.Len() {
		return nil, ErrLengthMismatch
	}
	cp := make([]float64, len(y))
	copy(cp, y)

	return &Curve{tmpl: tmpl, y: cp}, nil
}

// Template returns the amplitude axis this curve is aligned to.
func (c *Curve) Template() *Template { return c.tmpl }

// Len returns the number of amplitude points.
func (c *Curve) Len() int { return len(c.y) }

// At returns the y-value at index i. Returns ErrOutOfRange if i is outside
// [0, Len()).
func (c *Curve) At(i int) (float64, error) {
	if i < 0 || i >= len(c.y) {
		return 0, ErrOutOfRange
	}

	return c.y[i], nil
}

// Set writes v at index i. Returns ErrOutOfRange if i is outside
// [0, Len()), or ErrNaN if v is NaN.
func (c *Curve) Set(i int, v float64) error {
	if i < 0 || i >= len(c.y) {
		return ErrOutOfRange
	}
	if math.IsNaN(v) {
		return ErrNaN
	}
	c.y[i] = v

	return nil
}

// Values returns a defensive copy of the y-values.
func (c *Curve) Values() []float64 {
	cp := make([]float64, len(c.y))
	copy(cp, c.y)

	return cp
}

// Clone returns a deep copy sharing the same Template.
func (c *Curve) Clone() *Curve {
	cp := make([]float64, len(c.y))
	copy(cp, c.y)

	return &Curve{tmpl: c.tmpl, y: cp}
}

// AddScaled adds weight*other into c in place: c[i] += weight*other[i].
// Returns ErrLengthMismatch if other is bound to a different Template.
// This is the core kernel logic-tree weighting and cluster/system
// consolidation reduce to (spec.md §4.4, §5.1's 1-Π(1-Pᵢ) combination is
// layered on top in package calc).
func (c *Curve) AddScaled(other *Curve, weight float64) error {
	if !c.tmpl.sameAs(other.tmpl) {
		return ErrLengthMismatch
	}
	for i, v := range other.y {
		c.y[i] += weight * v
	}

	return nil
}

// Clip bounds every value in place to [lo, hi], matching matrix's
// ewReplaceInfNaN/Clip policy of never letting a numeric degeneracy
// propagate silently downstream.
func (c *Curve) Clip(lo, hi float64) {
	for i, v := range c.y {
		switch {
		case v < lo:
			c.y[i] = lo
		case v > hi:
			c.y[i] = hi
		}
	}
}

// Zero resets every value to 0 in place.
func (c *Curve) Zero() {
	for i := range c.y {
		c.y[i] = 0
	}
}

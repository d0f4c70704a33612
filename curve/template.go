package curve

// Template is the shared amplitude axis every Curve and Table row in one
// IMT is aligned to — spec.md §4.3's "gmmCurve"/"utilCurve" x-sequence. It
// is immutable after construction so every Curve built against it can
// safely assume index i always refers to the same amplitude.
type Template struct {
	x []float64
}

// NewTemplate copies x into an immutable Template. Returns ErrInvalidLength
// if x is empty.
func NewTemplate(x []float64) (*Template, error) {
	if len(x) == 0 {
		return nil, ErrInvalidLength
	}
	cp := make([]float64, len(x))
	copy(cp, x)

	return &Template{x: cp}, nil
}

// Len returns the number of amplitude points.
func (t *Template) Len() int { return len(t.x) }

// X returns the amplitude value at index i.
func (t *Template) X(i int) float64 { return t.x[i] }

// XValues returns a defensive copy of the full amplitude axis.
func (t *Template) XValues() []float64 {
	cp := make([]float64, len(t.x))
	copy(cp, t.x)

	return cp
}

// sameAs reports whether other is the identical Template instance. Curves
// built from different Templates of equal length are never implicitly
// combined — doing so would silently misalign two different amplitude axes.
func (t *Template) sameAs(other *Template) bool { return t == other }

package gmm

// HazardInput is the fixed per-rupture, per-site geometric and source
// attribute bundle a GroundMotionModel.Calc consumes (spec.md §3). It is a
// plain value: SourceToInputs in package calc computes one per rupture and
// never mutates it afterward.
type HazardInput struct {
	Rate float64 // annual occurrence rate of the originating rupture
	Mag  float64
	RJB  float64
	RRup float64
	RX   float64
	Dip  float64
	Width float64
	ZTop  float64
	ZHyp  float64
	Rake  float64

	Vs30         float64
	Vs30Inferred bool
	Z1p0         float64
	Z2p5         float64
}

// InputList is the ordered sequence of HazardInputs produced by
// SourceToInputs for one Source against one Site, plus a back-reference to
// the source identity for error reporting (spec.md §9's "lifetime-narrow"
// back-reference — dropped once the enclosing HazardCurveSet is sealed).
type InputList struct {
	SourceID string
	Inputs   []HazardInput
}

// Len returns the number of inputs.
func (l *InputList) Len() int { return len(l.Inputs) }

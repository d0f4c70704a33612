package gmm

import "fmt"

// Imt identifies an intensity measure type: PGA, PGV, or spectral
// acceleration at a period in seconds. Two Imts are equal iff their Label
// and Period fields are equal, so SA instances at different periods compare
// distinct and can key a map safely.
type Imt struct {
	Label  string
	Period float64 // seconds; meaningless (0) for PGA/PGV
}

// PGA is peak ground acceleration.
var PGA = Imt{Label: "PGA"}

// PGV is peak ground velocity.
var PGV = Imt{Label: "PGV"}

// SA returns the spectral-acceleration Imt at the given period in seconds.
func SA(period float64) Imt {
	return Imt{Label: "SA", Period: period}
}

// String renders "PGA", "PGV", or "SA(0.200)".
func (i Imt) String() string {
	if i.Label != "SA" {
		return i.Label
	}

	return fmt.Sprintf("SA(%.3f)", i.Period)
}

// Gmm identifies a named ground-motion model (e.g. "BA08", "CB08"); the
// core treats it as an opaque logic-tree branch label, never parsing it.
type Gmm string

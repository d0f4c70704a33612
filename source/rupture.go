package source

import (
	"math"

	"github.com/karim5623/seismhaz/model"
)

// Rupture is one potential earthquake: an annual rate, magnitude, rake,
// and geometry (spec.md §3, glossary). Validate enforces the model-data
// invariants spec.md §7 requires before it reaches the pipeline.
type Rupture struct {
	Rate    float64
	Mag     float64
	Rake    float64
	Surface RuptureSurface
}

// Validate checks rate > 0 and a finite magnitude (spec.md §7's
// "model-data errors": non-positive rate, non-finite magnitude).
func (r Rupture) Validate() error {
	if r.Rate <= 0 {
		return ErrNonPositiveRate
	}
	if math.IsNaN(r.Mag) || math.IsInf(r.Mag, 0) {
		return ErrNonFiniteMagnitude
	}

	return nil
}

// Source is the closed, tagged polymorphic variant spec.md §3 and §9
// describe: an ordered iterable of Ruptures plus a SourceType tag and a
// stable identity for error reporting.
type Source interface {
	ID() string
	Type() model.SourceType
	Ruptures() []Rupture
}

// baseSource implements ID/Type/Ruptures for every concrete variant below;
// each variant embeds it and adds only the fields specific to its
// geometry (spec.md §9: "each variant carries its own rupture iterator").
type baseSource struct {
	id       string
	typ      model.SourceType
	ruptures []Rupture
}

func (s baseSource) ID() string               { return s.id }
func (s baseSource) Type() model.SourceType   { return s.typ }
func (s baseSource) Ruptures() []Rupture {
	cp := make([]Rupture, len(s.ruptures))
	copy(cp, s.ruptures)

	return cp
}

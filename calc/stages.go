package calc

import (
	"math"

	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/model"
	"github.com/karim5623/seismhaz/source"
)

// SourceToInputs expands src into one HazardInput per rupture, querying
// each rupture's RuptureSurface for distances, dip, width, and top depth
// against the fixed site, then deriving hypocentral depth (spec.md §4.1).
// Ruptures are walked in declared order and none are dropped: no distance
// filter applies to the sources this stage handles. A SourceSet's distance
// cutoff is used only for SystemSource ruptures, by SourceToInputsSystem.
func SourceToInputs(src source.Source, site model.Site) (*gmm.InputList, error) {
	ruptures := src.Ruptures()
	if len(ruptures) == 0 {
		return nil, modelDataErrorf(src.ID(), source.ErrZeroRuptures)
	}

	inputs := make([]gmm.HazardInput, len(ruptures))
	for i, r := range ruptures {
		if err := r.Validate(); err != nil {
			return nil, modelDataErrorf(src.ID(), err)
		}
		in, err := ruptureToInput(r, site)
		if err != nil {
			return nil, modelDataErrorf(src.ID(), err)
		}
		inputs[i] = in
	}

	return &gmm.InputList{SourceID: src.ID(), Inputs: inputs}, nil
}

// SourceToInputsSystem is the bulk stage-1/stage-3-entry variant for a
// SystemSource (spec.md §4.7): a bitset (here, a plain index slice) first
// selects ruptures within cutoff using per-section distance data, then
// only the selected ruptures are materialized into an InputList.
func SourceToInputsSystem(sys *source.SystemSource, site model.Site, cutoff float64) (*gmm.InputList, error) {
	selected := sys.SelectWithinCutoff(cutoff)
	ruptures := sys.Ruptures()
	inputs := make([]gmm.HazardInput, 0, len(selected))
	for _, idx := range selected {
		r := ruptures[idx]
		if err := r.Validate(); err != nil {
			return nil, modelDataErrorf(sys.ID(), err)
		}
		in, err := ruptureToInput(r, site)
		if err != nil {
			return nil, modelDataErrorf(sys.ID(), err)
		}
		inputs = append(inputs, in)
	}

	return &gmm.InputList{SourceID: sys.ID(), Inputs: inputs}, nil
}

func ruptureToInput(r source.Rupture, site model.Site) (gmm.HazardInput, error) {
	rJB, rRup, rX := r.Surface.DistanceTo(site)
	dip := r.Surface.Dip()
	width := r.Surface.Width()
	zTop := r.Surface.DepthTop()

	if nonFinite(rJB) || nonFinite(rRup) || nonFinite(rX) || nonFinite(dip) || nonFinite(width) || nonFinite(zTop) {
		return gmm.HazardInput{}, source.ErrNonFiniteGeometry
	}

	// Hypocentral depth: top of rupture plus half the down-dip projection
	// of width, clamped so it never exceeds the surface's bottom edge
	// depth (spec.md §4.1). The half-width term already keeps zHyp within
	// [zTop, zTop+width*sin(dip)] for any width >= 0, so the clamp is a
	// defensive bound against an out-of-range dip rather than a normal
	// code path.
	zHyp := zTop + math.Sin(dip*math.Pi/180)*width/2
	bottom := zTop + width*math.Sin(dip*math.Pi/180)
	if zHyp > bottom {
		zHyp = bottom
	}
	if zHyp < zTop {
		zHyp = zTop
	}

	return gmm.HazardInput{
		Rate:         r.Rate,
		Mag:          r.Mag,
		RJB:          rJB,
		RRup:         rRup,
		RX:           rX,
		Dip:          dip,
		Width:        width,
		ZTop:         zTop,
		ZHyp:         zHyp,
		Rake:         r.Rake,
		Vs30:         site.Vs30,
		Vs30Inferred: site.Vs30Inferred,
		Z1p0:         site.Z1p0,
		Z2p5:         site.Z2p5,
	}, nil
}

func nonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

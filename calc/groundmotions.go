package calc

import "github.com/karim5623/seismhaz/gmm"

// GroundMotions is stage 2's output: a back-reference to the InputList it
// was computed from, plus a table keyed (IMT, GMM) of aligned log-mean and
// sigma lists (spec.md §3).
type GroundMotions struct {
	Inputs *gmm.InputList
	means  map[gmm.Imt]map[gmm.Gmm][]float64
	sigmas map[gmm.Imt]map[gmm.Gmm][]float64
}

// Means returns the aligned log-mean list for (imt, g).
func (g *GroundMotions) Means(imt gmm.Imt, gm gmm.Gmm) []float64 { return g.means[imt][gm] }

// Sigmas returns the aligned sigma list for (imt, g).
func (g *GroundMotions) Sigmas(imt gmm.Imt, gm gmm.Gmm) []float64 { return g.sigmas[imt][gm] }

// InputsToGroundMotions calls every (gmm, imt) model against every input in
// order, appending to aligned result lists (spec.md §4.2). It fails with
// ErrConfig on the first non-finite logMean/sigma or unregistered (g, imt)
// pair — a fatal configuration error, not a per-input condition to skip.
// An empty InputList fails with ErrModelData naming the source.
func InputsToGroundMotions(il *gmm.InputList, table *gmm.Table, gmms []gmm.Gmm, imts []gmm.Imt) (*GroundMotions, error) {
	if il.Len() == 0 {
		return nil, modelDataErrorf(il.SourceID, gmm.ErrEmptyInputs)
	}

	means := make(map[gmm.Imt]map[gmm.Gmm][]float64, len(imts))
	sigmas := make(map[gmm.Imt]map[gmm.Gmm][]float64, len(imts))
	for _, imt := range imts {
		means[imt] = make(map[gmm.Gmm][]float64, len(gmms))
		sigmas[imt] = make(map[gmm.Gmm][]float64, len(gmms))
		for _, g := range gmms {
			model, err := table.Lookup(g, imt)
			if err != nil {
				return nil, configErrorf("InputsToGroundMotions", err)
			}
			ms := make([]float64, il.Len())
			ss := make([]float64, il.Len())
			for i, in := range il.Inputs {
				lm, sig, err := model.Calc(in)
				if err != nil {
					return nil, modelDataErrorf(il.SourceID, err)
				}
				if err := gmm.Validate(lm, sig); err != nil {
					return nil, configErrorf("InputsToGroundMotions", err)
				}
				ms[i] = lm
				ss[i] = sig
			}
			means[imt][g] = ms
			sigmas[imt][g] = ss
		}
	}

	return &GroundMotions{Inputs: il, means: means, sigmas: sigmas}, nil
}

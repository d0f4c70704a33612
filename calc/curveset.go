package calc

import (
	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/model"
	"github.com/karim5623/seismhaz/source"
)

// HazardCurveSet is stage 4's output: one SourceSet's consolidated
// per-IMT total curve and per-GMM breakdown, with the SourceSet's own
// weight not yet applied (spec.md §3, §4.4). PerCluster retains, keyed by
// ClusterSource ID, the per-segment HazardCurves ClusterConsolidate
// combined, so disaggregation can trace the set's total back to individual
// cluster segments (spec.md §4.6).
type HazardCurveSet struct {
	SourceSet  *source.SourceSet
	Total      map[gmm.Imt]*curve.Curve
	PerGmm     map[gmm.Imt]map[gmm.Gmm]*curve.Curve
	PerCluster map[string][]*HazardCurves
}

// SourceContribution pairs one source's stage-3 output with the
// representative distance CurveConsolidator uses to resolve the GMM's
// near/far logic-tree weight for that source (spec.md §4.4's "choosing the
// weight for the near-field or far-field branch").
type SourceContribution struct {
	SourceID    string
	RepDistance float64
	Curves      *HazardCurves
}

// CurveConsolidator merges all per-source HazardCurves within one
// SourceSet, applying the set's GMM logic-tree weight per curve before
// rolling into the per-IMT total. It does not apply the SourceSet's own
// weight (spec.md §4.4: "do not apply the SourceSet weight here" — that
// happens in CurveSetConsolidator).
func CurveConsolidator(contribs []SourceContribution, ss *source.SourceSet, cfg *model.CalcConfig) (*HazardCurveSet, error) {
	total := make(map[gmm.Imt]*curve.Curve, len(cfg.Imts()))
	perGmm := make(map[gmm.Imt]map[gmm.Gmm]*curve.Curve, len(cfg.Imts()))
	var perCluster map[string][]*HazardCurves
	for _, sc := range contribs {
		if sc.Curves.Segments == nil {
			continue
		}
		if perCluster == nil {
			perCluster = make(map[string][]*HazardCurves)
		}
		perCluster[sc.SourceID] = sc.Curves.Segments
	}

	for _, imt := range cfg.Imts() {
		tmpl, err := cfg.Curve(imt)
		if err != nil {
			return nil, configErrorf("CurveConsolidator", err)
		}
		totalCurve := curve.NewCurve(tmpl)
		perGmmCurves := make(map[gmm.Gmm]*curve.Curve, len(ss.Gmms().Gmms()))
		for _, g := range ss.Gmms().Gmms() {
			perGmmCurves[g] = curve.NewCurve(tmpl)
		}

		rcut := cfg.DistanceCutoff(imt)
		for _, sc := range contribs {
			tbl, ok := sc.Curves.Tables[imt]
			if !ok {
				return nil, configErrorf("CurveConsolidator", ErrConfig)
			}
			for _, g := range ss.Gmms().Gmms() {
				row, err := tbl.Row(string(g))
				if err != nil {
					return nil, configErrorf("CurveConsolidator", err)
				}
				weight := ss.Gmms().WeightAt(g, sc.RepDistance, rcut)
				if err := perGmmCurves[g].AddScaled(row, weight); err != nil {
					return nil, configErrorf("CurveConsolidator", err)
				}
				if err := totalCurve.AddScaled(row, weight); err != nil {
					return nil, configErrorf("CurveConsolidator", err)
				}
			}
		}

		total[imt] = totalCurve
		perGmm[imt] = perGmmCurves
	}

	return &HazardCurveSet{SourceSet: ss, Total: total, PerGmm: perGmm, PerCluster: perCluster}, nil
}

package calc

import (
	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/model"
)

// HazardCurves is stage 3's output: a back-reference to the GroundMotions
// it was integrated from, plus a per-IMT curve.Table keyed by GMM name
// (spec.md §3). Segments is nil except for a ClusterSource's combined
// output, where it retains each segment's own pre-combination HazardCurves
// so disaggregation downstream can trace the combined curve back to
// individual cluster segments (spec.md §4.6).
type HazardCurves struct {
	GroundMotions *GroundMotions
	Tables        map[gmm.Imt]*curve.Table
	Segments      []*HazardCurves
}

// GroundMotionsToCurves integrates a truncated-normal exceedance model
// against each IMT's model curve, scales by each input's rupture rate, and
// sums across inputs per (IMT, GMM) (spec.md §4.3). Per-task scratch
// (utilCurve) is allocated fresh per call and never shared (spec.md §5).
func GroundMotionsToCurves(gms *GroundMotions, cfg *model.CalcConfig, gmms []gmm.Gmm) (*HazardCurves, error) {
	names := make([]string, len(gmms))
	for i, g := range gmms {
		names[i] = string(g)
	}

	tables := make(map[gmm.Imt]*curve.Table, len(cfg.Imts()))
	for _, imt := range cfg.Imts() {
		tmpl, err := cfg.Curve(imt)
		if err != nil {
			return nil, configErrorf("GroundMotionsToCurves", err)
		}
		tbl, err := curve.NewTable(tmpl, names)
		if err != nil {
			return nil, configErrorf("GroundMotionsToCurves", err)
		}

		for _, g := range gmms {
			gmmCurve := curve.NewCurve(tmpl)
			means := gms.Means(imt, g)
			sigmas := gms.Sigmas(imt, g)
			for i, in := range gms.Inputs.Inputs {
				utilCurve := curve.NewCurve(tmpl)
				if err := gmm.Exceed(cfg.Exceedance(), means[i], sigmas[i], cfg.TruncationLevel(), tmpl, utilCurve); err != nil {
					return nil, configErrorf("GroundMotionsToCurves", err)
				}
				if err := gmmCurve.AddScaled(utilCurve, in.Rate); err != nil {
					return nil, configErrorf("GroundMotionsToCurves", err)
				}
			}
			if err := tbl.SetRow(string(g), gmmCurve.Values()); err != nil {
				return nil, configErrorf("GroundMotionsToCurves", err)
			}
		}
		tables[imt] = tbl
	}

	return &HazardCurves{GroundMotions: gms, Tables: tables}, nil
}

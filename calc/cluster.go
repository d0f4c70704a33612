package calc

import (
	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/model"
)

// ClusterConsolidate implements the stage-3 override for cluster sources
// (spec.md §4.6): each element of segmentCurves is one segment's ordinary
// per-(IMT, GMM) rate curve (produced by running stages 1-3 on that
// segment exactly like any other source). They are combined by
//
//	P_cluster(exceed@x) = 1 - Prod_i (1 - P_i(exceed@x))
//
// treated pointwise per (IMT, GMM), then the combined curve is scaled by
// the cluster's parent recurrence rate. The result is itself a HazardCurves
// so it can re-enter CurveConsolidator exactly like a non-cluster source's
// output (spec.md §4.6: "the consolidator for clusters retains the
// per-cluster curves... so disaggregation downstream can trace back").
func ClusterConsolidate(segmentCurves []*HazardCurves, clusterID string, clusterRate float64, cfg *model.CalcConfig, gmms []gmm.Gmm) (*HazardCurves, error) {
	if len(segmentCurves) == 0 {
		return nil, modelDataErrorf(clusterID, ErrModelData)
	}

	names := make([]string, len(gmms))
	for i, g := range gmms {
		names[i] = string(g)
	}

	tables := make(map[gmm.Imt]*curve.Table, len(cfg.Imts()))
	for _, imt := range cfg.Imts() {
		tmpl, err := cfg.Curve(imt)
		if err != nil {
			return nil, configErrorf("ClusterConsolidate", err)
		}
		tbl, err := curve.NewTable(tmpl, names)
		if err != nil {
			return nil, configErrorf("ClusterConsolidate", err)
		}

		for _, g := range gmms {
			survival := make([]float64, tmpl.Len())
			for i := range survival {
				survival[i] = 1
			}
			for _, seg := range segmentCurves {
				segTbl, ok := seg.Tables[imt]
				if !ok {
					return nil, configErrorf("ClusterConsolidate", ErrConfig)
				}
				row, err := segTbl.Row(string(g))
				if err != nil {
					return nil, configErrorf("ClusterConsolidate", err)
				}
				for i, p := range row.Values() {
					survival[i] *= 1 - p
				}
			}
			combined := make([]float64, tmpl.Len())
			for i, s := range survival {
				combined[i] = (1 - s) * clusterRate
			}
			if err := tbl.SetRow(string(g), combined); err != nil {
				return nil, configErrorf("ClusterConsolidate", err)
			}
		}
		tables[imt] = tbl
	}

	return &HazardCurves{Tables: tables, Segments: segmentCurves}, nil
}

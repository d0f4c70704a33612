package calc

import (
	"math"

	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/model"
	"github.com/karim5623/seismhaz/source"
)

// HazardResult is the terminal, stage-5 output: per-IMT total curves in
// both log-x-rate and linear-x-Poisson-probability forms, plus a
// per-SourceType roll-up so callers can inspect individual contributions
// (spec.md §3, §4.5).
type HazardResult struct {
	Site          model.Site
	Model         *source.HazardModel
	Config        *model.CalcConfig
	TotalLogX     map[gmm.Imt]*curve.Curve
	TotalLinearX  map[gmm.Imt]*curve.Curve
	PerSourceType map[gmm.Imt]map[model.SourceType]*curve.Curve
}

// CurveSetConsolidator merges every SourceSet's HazardCurveSet into one
// HazardResult, applying each set's own weight exactly once here (spec.md
// §4.5). For each IMT it also produces the linear-x, Poisson-probability
// curve form P = 1 - exp(-lambda*t) for the configured exposure window.
func CurveSetConsolidator(sets []*HazardCurveSet, hm *source.HazardModel, site model.Site) (*HazardResult, error) {
	cfg := hm.Config()
	totalLogX := make(map[gmm.Imt]*curve.Curve, len(cfg.Imts()))
	totalLinearX := make(map[gmm.Imt]*curve.Curve, len(cfg.Imts()))
	perType := make(map[gmm.Imt]map[model.SourceType]*curve.Curve, len(cfg.Imts()))

	for _, imt := range cfg.Imts() {
		tmpl, err := cfg.Curve(imt)
		if err != nil {
			return nil, configErrorf("CurveSetConsolidator", err)
		}
		modelTotal := curve.NewCurve(tmpl)
		byType := make(map[model.SourceType]*curve.Curve)

		for _, hcs := range sets {
			c, ok := hcs.Total[imt]
			if !ok {
				return nil, configErrorf("CurveSetConsolidator", ErrConfig)
			}
			if err := modelTotal.AddScaled(c, hcs.SourceSet.Weight()); err != nil {
				return nil, configErrorf("CurveSetConsolidator", err)
			}

			typ := hcs.SourceSet.Type()
			if _, ok := byType[typ]; !ok {
				byType[typ] = curve.NewCurve(tmpl)
			}
			if err := byType[typ].AddScaled(c, hcs.SourceSet.Weight()); err != nil {
				return nil, configErrorf("CurveSetConsolidator", err)
			}
		}

		totalLogX[imt] = modelTotal
		perType[imt] = byType
		totalLinearX[imt] = toLinearPoisson(modelTotal, cfg.Timespan())
	}

	return &HazardResult{
		Site:          site,
		Model:         hm,
		Config:        cfg,
		TotalLogX:     totalLogX,
		TotalLinearX:  totalLinearX,
		PerSourceType: perType,
	}, nil
}

// toLinearPoisson converts a log-x annual-rate curve to a linear-x curve
// of Poisson exceedance probabilities: x' = exp(x), y' = 1 - exp(-y*t)
// (spec.md §4.5, §8's log/linear consistency property).
func toLinearPoisson(logCurve *curve.Curve, t float64) *curve.Curve {
	tmpl := logCurve.Template()
	linearX := make([]float64, tmpl.Len())
	y := make([]float64, tmpl.Len())
	for i := 0; i < tmpl.Len(); i++ {
		linearX[i] = math.Exp(tmpl.X(i))
		rate, _ := logCurve.At(i)
		y[i] = 1 - math.Exp(-rate*t)
	}
	linTmpl, _ := curve.NewTemplate(linearX)
	out, _ := curve.NewCurveFrom(linTmpl, y)

	return out
}

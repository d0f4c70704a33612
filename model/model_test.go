package model_test

import (
	"testing"

	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/model"
	"github.com/stretchr/testify/require"
)

func TestSourceTypeStringer(t *testing.T) {
	require.Equal(t, "cluster", model.SourceTypeCluster.String())
	require.Equal(t, "system", model.SourceTypeSystem.String())
}

func TestGmmSetBuilderSealValidatesWeightClosure(t *testing.T) {
	b := model.NewGmmSetBuilder()
	b.SetWeights("BA08", 0.6, 0.5)
	b.SetWeights("CB08", 0.4, 0.5)
	b.SetBand(10)
	set, err := b.Seal()
	require.NoError(t, err)
	require.Equal(t, 0.6, set.Near("BA08"))
	require.Equal(t, 0.5, set.Far("CB08"))
}

func TestGmmSetBuilderRejectsUnnormalizedWeights(t *testing.T) {
	b := model.NewGmmSetBuilder()
	b.SetWeights("BA08", 0.3, 1)
	_, err := b.Seal()
	require.ErrorIs(t, err, model.ErrWeightsNotNormalized)
}

func TestGmmSetBuilderPanicsAfterSeal(t *testing.T) {
	b := model.NewGmmSetBuilder()
	b.SetWeights("BA08", 1, 1)
	_, err := b.Seal()
	require.NoError(t, err)

	require.Panics(t, func() { b.SetWeights("CB08", 1, 1) })
}

func TestGmmSetWeightAtBlendsWithinBand(t *testing.T) {
	b := model.NewGmmSetBuilder()
	b.SetWeights("BA08", 1, 0)
	b.SetBand(10)
	set, err := b.Seal()
	require.NoError(t, err)

	rcut := 100.0
	require.Equal(t, 1.0, set.WeightAt("BA08", rcut-10, rcut))
	require.Equal(t, 0.0, set.WeightAt("BA08", rcut+10, rcut))
	require.InDelta(t, 0.5, set.WeightAt("BA08", rcut, rcut), 1e-9)
}

func TestCalcConfigBuilderSeal(t *testing.T) {
	tmpl, err := curve.NewTemplate([]float64{-2, -1, 0})
	require.NoError(t, err)

	b := model.NewCalcConfigBuilder()
	b.AddImt(gmm.PGA, tmpl)
	b.SetExceedance(gmm.TRUNCATION_LOWER_UPPER, 3)
	cfg, err := b.Seal()
	require.NoError(t, err)
	require.Equal(t, model.DefaultTimespan, cfg.Timespan())
	require.Equal(t, []gmm.Imt{gmm.PGA}, cfg.Imts())

	got, err := cfg.Curve(gmm.PGA)
	require.NoError(t, err)
	require.Equal(t, tmpl, got)
}

func TestCalcConfigBuilderRejectsMissingImt(t *testing.T) {
	b := model.NewCalcConfigBuilder()
	b.SetExceedance(gmm.NONE, 3)
	_, err := b.Seal()
	require.ErrorIs(t, err, model.ErrMissingCurve)
}

func TestCalcConfigBuilderRejectsBadTruncation(t *testing.T) {
	tmpl, err := curve.NewTemplate([]float64{0, 1})
	require.NoError(t, err)
	b := model.NewCalcConfigBuilder()
	b.AddImt(gmm.PGA, tmpl)
	b.SetExceedance(gmm.NONE, 0)
	_, err = b.Seal()
	require.ErrorIs(t, err, model.ErrInvalidTruncation)
}

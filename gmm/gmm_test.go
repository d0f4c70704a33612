package gmm_test

import (
	"math"
	"testing"

	"github.com/karim5623/seismhaz/curve"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/stretchr/testify/require"
)

func TestImtStringer(t *testing.T) {
	require.Equal(t, "PGA", gmm.PGA.String())
	require.Equal(t, "SA(0.200)", gmm.SA(0.2).String())
}

func TestValidateRejectsNonFinite(t *testing.T) {
	require.ErrorIs(t, gmm.Validate(math.NaN(), 0.5), gmm.ErrNonFinite)
	require.ErrorIs(t, gmm.Validate(0, math.Inf(1)), gmm.ErrNonFinite)
	require.ErrorIs(t, gmm.Validate(0, -1), gmm.ErrNonFinite)
	require.NoError(t, gmm.Validate(0, 0))
}

func TestTableLookup(t *testing.T) {
	tbl := gmm.NewTable()
	m := gmm.Func(func(in gmm.HazardInput) (float64, float64, error) { return -1, 0.5, nil })
	tbl.Register("BA08", gmm.PGA, m)

	got, err := tbl.Lookup("BA08", gmm.PGA)
	require.NoError(t, err)
	lm, sig, err := got.Calc(gmm.HazardInput{})
	require.NoError(t, err)
	require.Equal(t, -1.0, lm)
	require.Equal(t, 0.5, sig)

	_, err = tbl.Lookup("BA08", gmm.PGV)
	require.ErrorIs(t, err, gmm.ErrNotRegistered)
}

func TestTableHasAll(t *testing.T) {
	tbl := gmm.NewTable()
	tbl.Register("BA08", gmm.PGA, gmm.Func(func(gmm.HazardInput) (float64, float64, error) { return 0, 1, nil }))
	require.NoError(t, tbl.HasAll([]gmm.Gmm{"BA08"}, []gmm.Imt{gmm.PGA}))
	require.Error(t, tbl.HasAll([]gmm.Gmm{"BA08"}, []gmm.Imt{gmm.PGV}))
}

func TestExceedMonotoneNonNegative(t *testing.T) {
	tmpl, err := curve.NewTemplate([]float64{-3, -2, -1, 0, 1, 2, 3})
	require.NoError(t, err)
	out := curve.NewCurve(tmpl)
	require.NoError(t, gmm.Exceed(gmm.NONE, 0, 1, 3, tmpl, out))

	vals := out.Values()
	for i, v := range vals {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
		if i > 0 {
			require.LessOrEqual(t, v, vals[i-1], "exceedance must be non-increasing in amplitude")
		}
	}
}

func TestExceedZeroSigmaStepFunction(t *testing.T) {
	tmpl, err := curve.NewTemplate([]float64{-1, 0, 1})
	require.NoError(t, err)
	out := curve.NewCurve(tmpl)
	require.NoError(t, gmm.Exceed(gmm.NONE, 0, 0, 3, tmpl, out))
	require.Equal(t, []float64{1, 0, 0}, out.Values())
}

func TestExceedUnknownVariant(t *testing.T) {
	tmpl, err := curve.NewTemplate([]float64{0, 1})
	require.NoError(t, err)
	out := curve.NewCurve(tmpl)
	require.ErrorIs(t, gmm.Exceed(gmm.ExceedanceModel(99), 0, 1, 3, tmpl, out), gmm.ErrUnknownExceedanceModel)
}

func TestExceedTruncationBoundsClampToZeroAndOne(t *testing.T) {
	tmpl, err := curve.NewTemplate([]float64{-10, 10})
	require.NoError(t, err)
	out := curve.NewCurve(tmpl)
	require.NoError(t, gmm.Exceed(gmm.TRUNCATION_LOWER_UPPER, 0, 1, 2, tmpl, out))
	require.InDelta(t, 1.0, out.Values()[0], 1e-9)
	require.InDelta(t, 0.0, out.Values()[1], 1e-9)
}

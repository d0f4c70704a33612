package curve_test

import (
	"testing"

	"github.com/karim5623/seismhaz/curve"
	"github.com/stretchr/testify/require"
)

func testTemplate(t *testing.T) *curve.Template {
	t.Helper()
	tmpl, err := curve.NewTemplate([]float64{0.01, 0.1, 1.0})
	require.NoError(t, err)

	return tmpl
}

func TestNewTemplateRejectsEmpty(t *testing.T) {
	_, err := curve.NewTemplate(nil)
	require.ErrorIs(t, err, curve.ErrInvalidLength)
}

func TestCurveSetAndAt(t *testing.T) {
	tmpl := testTemplate(t)
	c := curve.NewCurve(tmpl)
	require.NoError(t, c.Set(1, 0.5))
	v, err := c.At(1)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
}

func TestCurveSetOutOfRange(t *testing.T) {
	c := curve.NewCurve(testTemplate(t))
	require.ErrorIs(t, c.Set(9, 1), curve.ErrOutOfRange)
}

func TestCurveAddScaled(t *testing.T) {
	tmpl := testTemplate(t)
	a, err := curve.NewCurveFrom(tmpl, []float64{1, 2, 3})
	require.NoError(t, err)
	b, err := curve.NewCurveFrom(tmpl, []float64{10, 10, 10})
	require.NoError(t, err)

	require.NoError(t, a.AddScaled(b, 0.5))
	require.Equal(t, []float64{6, 7, 8}, a.Values())
}

func TestCurveAddScaledRejectsMismatchedTemplate(t *testing.T) {
	a := curve.NewCurve(testTemplate(t))
	other, err := curve.NewTemplate([]float64{1, 2, 3})
	require.NoError(t, err)
	b := curve.NewCurve(other)
	require.ErrorIs(t, a.AddScaled(b, 1), curve.ErrLengthMismatch)
}

func TestCurveClip(t *testing.T) {
	tmpl := testTemplate(t)
	c, err := curve.NewCurveFrom(tmpl, []float64{-1, 0.5, 2})
	require.NoError(t, err)
	c.Clip(0, 1)
	require.Equal(t, []float64{0, 0.5, 1}, c.Values())
}

func TestTableWeightedSum(t *testing.T) {
	tmpl := testTemplate(t)
	tbl, err := curve.NewTable(tmpl, []string{"BA08", "CB08"})
	require.NoError(t, err)

	require.NoError(t, tbl.SetRow("BA08", []float64{1, 1, 1}))
	require.NoError(t, tbl.SetRow("CB08", []float64{3, 3, 3}))

	sum := tbl.WeightedSum(map[string]float64{"BA08": 0.5, "CB08": 0.5})
	require.Equal(t, []float64{2, 2, 2}, sum.Values())
}

func TestTableWeightedSumZeroMissingWeights(t *testing.T) {
	tmpl := testTemplate(t)
	tbl, err := curve.NewTable(tmpl, []string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, tbl.SetRow("A", []float64{1, 1, 1}))
	require.NoError(t, tbl.SetRow("B", []float64{5, 5, 5}))

	sum := tbl.WeightedSum(map[string]float64{"A": 1})
	require.Equal(t, []float64{1, 1, 1}, sum.Values())
}

func TestTableRejectsDuplicateKey(t *testing.T) {
	_, err := curve.NewTable(testTemplate(t), []string{"A", "A"})
	require.ErrorIs(t, err, curve.ErrDuplicateKey)
}

func TestTableUnknownKey(t *testing.T) {
	tbl, err := curve.NewTable(testTemplate(t), []string{"A"})
	require.NoError(t, err)
	_, err = tbl.Row("missing")
	require.ErrorIs(t, err, curve.ErrUnknownKey)
}

func TestTableAddRowScaled(t *testing.T) {
	tmpl := testTemplate(t)
	tbl, err := curve.NewTable(tmpl, []string{"A"})
	require.NoError(t, err)
	src, err := curve.NewCurveFrom(tmpl, []float64{1, 1, 1})
	require.NoError(t, err)

	require.NoError(t, tbl.AddRowScaled("A", src, 2))
	row, err := tbl.Row("A")
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, 2}, row.Values())
}

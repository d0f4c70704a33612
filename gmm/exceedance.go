package gmm

import (
	"math"

	"github.com/karim5623/seismhaz/curve"
)

// ExceedanceModel selects how a log-normal (logMean, sigma) distribution is
// truncated before its exceedance probability is integrated against a
// model curve's x-axis (spec.md §4.3, §9: "a small closed set, four named
// variants... tagged dispatch, no virtual inheritance needed").
type ExceedanceModel int

const (
	// NONE applies no truncation: a standard log-normal tail.
	NONE ExceedanceModel = iota
	// TRUNCATION_UPPER_ONLY caps epsilon at +truncation, modeling a maximum
	// physically plausible ground motion above the mean.
	TRUNCATION_UPPER_ONLY
	// TRUNCATION_LOWER_UPPER caps epsilon at ±truncation symmetrically.
	TRUNCATION_LOWER_UPPER
	// NSHM_CEUS_MAX_INTENSITY is the NSHM Central/Eastern US one-sided
	// maximum-intensity variant: like TRUNCATION_UPPER_ONLY, but additionally
	// clamps every point of the resulting curve to at most the previous
	// point's value, so the curve is monotonic non-increasing across the
	// whole template, matching the NSHM convention of never reporting a
	// locally increasing exceedance rate.
	NSHM_CEUS_MAX_INTENSITY
)

func (m ExceedanceModel) valid() bool {
	return m >= NONE && m <= NSHM_CEUS_MAX_INTENSITY
}

// phi is the standard normal CDF.
func phi(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// bounds returns the (lower, upper) truncation bounds in epsilon units for
// the variant, where +/-Inf means "not truncated on that side".
func (m ExceedanceModel) bounds(truncation float64) (lo, hi float64) {
	switch m {
	case TRUNCATION_UPPER_ONLY, NSHM_CEUS_MAX_INTENSITY:
		return math.Inf(-1), truncation
	case TRUNCATION_LOWER_UPPER:
		return -truncation, truncation
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// Exceed writes P(exceed x) into out for every x in tmpl, for a log-normal
// distribution with the given logMean and sigma, truncated per m at
// +/-truncation standard deviations from the mean. sigma==0 is treated as
// a Dirac delta at logMean: a step function (spec.md §7).
func Exceed(m ExceedanceModel, logMean, sigma, truncation float64, tmpl *curve.Template, out *curve.Curve) error {
	if !m.valid() {
		return ErrUnknownExceedanceModel
	}
	if sigma == 0 {
		for i := 0; i < tmpl.Len(); i++ {
			v := 0.0
			if tmpl.X(i) < logMean {
				v = 1
			}
			if err := out.Set(i, v); err != nil {
				return err
			}
		}

		return nil
	}

	lo, hi := m.bounds(truncation)
	philo, phihi := phi(lo), phi(hi)
	denom := phihi - philo
	if denom <= 0 {
		denom = 1
	}

	prevExceed := math.Inf(1)
	for i := 0; i < tmpl.Len(); i++ {
		z := (tmpl.X(i) - logMean) / sigma
		var cdf float64
		switch {
		case z <= lo:
			cdf = 0
		case z >= hi:
			cdf = 1
		default:
			cdf = (phi(z) - philo) / denom
		}
		exceed := 1 - cdf
		if m == NSHM_CEUS_MAX_INTENSITY && exceed > prevExceed {
			exceed = prevExceed
		}
		prevExceed = exceed
		if err := out.Set(i, exceed); err != nil {
			return err
		}
	}

	return nil
}

package gmm

import "math"

// GroundMotionModel predicts one IMT's log-normal ground-motion
// distribution for a given HazardInput. Calc must return a finite logMean
// and a finite, non-negative sigma (0 yields a step-function exceedance);
// the core treats any other outcome as a
// fatal configuration error rather than attempting recovery (spec.md §4.2).
type GroundMotionModel interface {
	Calc(in HazardInput) (logMean, sigma float64, err error)
}

// Func adapts a plain function to GroundMotionModel, mirroring the
// http.HandlerFunc idiom for the common case of a stateless GMM.
type Func func(in HazardInput) (logMean, sigma float64, err error)

// Calc calls f.
func (f Func) Calc(in HazardInput) (float64, float64, error) { return f(in) }

// Validate checks the fatal-configuration-error conditions spec.md §4.2
// and §7 require GMM output to satisfy.
func Validate(logMean, sigma float64) error {
	if math.IsNaN(logMean) || math.IsInf(logMean, 0) {
		return ErrNonFinite
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return ErrNonFinite
	}

	return nil
}

// Package curve provides the flat-buffer numeric primitives backing
// GroundMotions and HazardCurves: a shared log-amplitude x-axis (Template)
// paired with per-key y-value rows (Table), and single aligned curves
// (Curve) for scratch accumulation in CurveConsolidator and
// CurveSetConsolidator (spec.md §4.3, §4.4).
//
// It is grounded on matrix.Dense's row-major flat-slice storage and
// matrix's private ew* elementwise kernels, narrowed to the one shape a
// hazard curve ever takes: a fixed-length sequence of exceedance
// frequencies aligned to a shared amplitude axis. The general Matrix
// interface, views, induced submatrices, and linear-algebra decompositions
// in package matrix have no analogue in this domain and are not ported —
// see DESIGN.md.
package curve

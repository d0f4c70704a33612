// Package calc implements the five-stage hazard calculation pipeline:
// SourceToInputs, InputsToGroundMotions, GroundMotionsToCurves,
// CurveConsolidator, and CurveSetConsolidator (spec.md §2, §4), plus the
// cluster-source and system-source stage-3 specializations (§4.6, §4.7)
// and the ComputeHazard entry point that fans the pipeline out
// sequentially or across a worker pool with bitwise-identical results
// either way (§5).
//
// Every stage is a pure function of its inputs and the captured
// model.Site/model.CalcConfig; the only state this package owns at runtime
// is per-task scratch (curve.Curve values), which is never shared across
// goroutines (spec.md §5's "Per-task scratch buffers are not shared").
package calc

// Package gmm models ground-motion prediction models (GMMs): the empirical
// log-normal predictors that turn one HazardInput into a (logMean, sigma)
// pair for one intensity measure type, plus the per-rupture exceedance
// integration that consumes that pair (spec.md §4.2, §4.3).
//
// It owns Imt, Gmm, HazardInput and InputList because those are the shapes
// a GroundMotionModel's Calc method is defined in terms of; package model
// (CalcConfig, GmmSet) sits a layer above and imports gmm rather
// than the reverse, keeping the dependency graph acyclic: curve -> gmm ->
// model -> source -> calc.
package gmm

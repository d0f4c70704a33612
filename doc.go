// Package seismhaz computes probabilistic seismic hazard curves at
// geographic sites.
//
// Given a fully materialized earthquake-source model (every potential
// rupture in a region, with its annual rate and geometry) and a set of
// ground-motion prediction models, seismhaz produces, for each intensity
// measure type of interest, a curve giving the annual rate (and Poisson
// probability) at which ground motion at a site exceeds each of a
// predefined set of amplitude levels.
//
// The calculation is a five-stage pipeline:
//
//	Source -> InputList -> GroundMotions -> HazardCurves -> HazardCurveSet -> HazardResult
//
// implemented in package calc, with specialized stage-3 combination rules
// for clustered fault sources (independent-event exceedance) and
// fault-system sources (bulk, pre-indexed rupture tables). The pipeline
// runs sequentially or fanned out across goroutines with bitwise-identical
// results either way.
//
// Subpackages:
//
//	curve/      — Template/Curve/Table: the flat numeric buffers every stage accumulates into
//	gmm/        — Imt, Gmm, HazardInput, GroundMotionModel, truncated-normal exceedance integration
//	model/      — Site, SourceType, GmmSet, CalcConfig
//	source/     — the Source taxonomy (Grid, Fault, Cluster, Interface, System, Area) and HazardModel
//	region/     — GriddedRegion discretization and default-property propagation for Grid/Area sources
//	calc/       — the calculation pipeline and its ComputeHazard entry point
//	config/     — YAML CalcConfig overlay loading
//	cmd/hazctl/ — a thin demonstration CLI around calc.ComputeHazard
//
// This module is a self-contained calculation core: on-disk model loading,
// the empirical GMM coefficient library, geodetic distance computation, and
// CLI UX beyond the bundled demonstration command are treated as external
// collaborators referenced only by their interface contracts.
package seismhaz

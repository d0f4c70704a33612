// Package model holds the immutable value types shared across a whole
// hazard calculation: Site, SourceType, GmmSet, and CalcConfig (spec.md §3).
// It sits above package gmm (it reuses gmm.Imt, gmm.Gmm, and
// gmm.ExceedanceModel) and below package source and package calc.
//
// Every sealable type here follows the same open -> populated -> sealed
// discipline the teacher's builder package applies to graph construction:
// a builder accumulates state, Seal() validates and freezes it, and any
// further mutation after sealing is a programmer error that panics rather
// than silently no-opping (spec.md §4.8, §9).
package model

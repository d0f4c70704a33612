// Package region models a GriddedRegion: a 2D grid of earthquake-occurrence
// density used by Grid and Area sources, plus on-demand Site materialization
// with default vs30/z1p0/z2p5 values propagated from sparse samples.
//
// It is the concrete form of the "GriddedRegion + default-property builder"
// collaborator spec.md §6 describes only as an interface contract — a real
// implementation is useful for exercising Set1-Case10 (5-site grid source)
// and Set1-Case11 (area source integrated over gridded sub-sources) without
// a second, separate site-file loader.
package region

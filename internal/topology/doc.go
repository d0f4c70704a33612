// Package topology provides a small thread-safe weighted-graph engine used
// internally by two unrelated parts of the hazard core:
//
//   - source.SystemSource.ConnectedSectionGroups uses it to represent which
//     fault sections share geometry, so connected multi-fault rupture groups
//     can be recovered with BFS/DFS (spec.md §4.7, §9).
//   - region.DefaultProperties uses it (via a sparse sample graph) to propagate
//     default site properties (vs30, z1p0, z2p5) from sampled grid nodes to an
//     arbitrary site location with Dijkstra's algorithm.
//
// Graph is generic on purpose — it carries no seismic-specific fields — so
// both callers can reuse the same locking and traversal primitives instead of
// hand-rolling adjacency bookkeeping twice.
package topology

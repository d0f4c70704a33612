// Package source models the closed, tagged Source variant (Grid, Fault,
// Cluster, Interface, System, Area) and the SourceSet logic-tree branch
// that bundles sources sharing one GmmSet (spec.md §3, §9).
//
// Each variant carries its own Rupture iterator; nothing here dispatches
// through an interface hierarchy beyond the flat Source interface itself —
// per spec.md §9, "the pipeline dispatches on the variant tag at stage 1",
// not through virtual method overrides. Package calc performs that
// dispatch with a type switch on the concrete variant type.
package source

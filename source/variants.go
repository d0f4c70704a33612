package source

import (
	"sort"
	"strconv"

	"github.com/karim5623/seismhaz/internal/topology"
	"github.com/karim5623/seismhaz/model"
)

// FaultSource is a single-surface source whose ruptures come from a
// Gutenberg-Richter magnitude-frequency distribution applied to one fixed
// rupture geometry (spec.md §3, Set1-Case1's "single fault, GR MFD").
type FaultSource struct{ baseSource }

// NewFaultSource builds a FaultSource from a GR MFD over [mMin, mMax],
// applying the same surface and rake to every magnitude bin.
func NewFaultSource(id string, surface RuptureSurface, rake, aValue, bValue, mMin, mMax, dMag float64) (*FaultSource, error) {
	mags, rates, err := GutenbergRichter(aValue, bValue, mMin, mMax, dMag)
	if err != nil {
		return nil, err
	}
	ruptures := make([]Rupture, len(mags))
	for i := range mags {
		ruptures[i] = Rupture{Rate: rates[i], Mag: mags[i], Rake: rake, Surface: surface}
	}
	if err := validateAll(ruptures); err != nil {
		return nil, err
	}

	return &FaultSource{baseSource{id: id, typ: model.SourceTypeFault, ruptures: ruptures}}, nil
}

// InterfaceSource is a subduction-interface source: geometrically identical
// to FaultSource but tagged separately so CurveSetConsolidator's
// per-SourceType roll-up (spec.md §4.5) can distinguish the two.
type InterfaceSource struct{ baseSource }

// NewInterfaceSource builds an InterfaceSource from a GR MFD, identically
// to NewFaultSource but tagged SourceTypeInterface.
func NewInterfaceSource(id string, surface RuptureSurface, rake, aValue, bValue, mMin, mMax, dMag float64) (*InterfaceSource, error) {
	mags, rates, err := GutenbergRichter(aValue, bValue, mMin, mMax, dMag)
	if err != nil {
		return nil, err
	}
	ruptures := make([]Rupture, len(mags))
	for i := range mags {
		ruptures[i] = Rupture{Rate: rates[i], Mag: mags[i], Rake: rake, Surface: surface}
	}
	if err := validateAll(ruptures); err != nil {
		return nil, err
	}

	return &InterfaceSource{baseSource{id: id, typ: model.SourceTypeInterface, ruptures: ruptures}}, nil
}

// GridCell is one active grid cell's pre-materialized rupture parameters:
// GridSource and AreaSource both expand a region.GriddedRegion's active
// cells into one point rupture per cell, scaled by the cell's density.
type GridCell struct {
	Lon, Lat, Depth float64
	Density         float64 // events/year/cell
}

// NewGridSource builds a GridSource with one PointSurface rupture per
// cell, at a single characteristic magnitude and rake shared across all
// cells, rate = cell density (spec.md §4.1, Set1-Case10's "grid source at
// 5 sites"). A per-cell MFD is not modeled: the PEER grid test cases drive
// every cell from one characteristic magnitude, so a richer per-cell MFD
// would add machinery with no exercised caller.
func NewGridSource(id string, cells []GridCell, mag, rake float64) (*GridSource, error) {
	ruptures := make([]Rupture, len(cells))
	for i, c := range cells {
		ruptures[i] = Rupture{
			Rate:    c.Density,
			Mag:     mag,
			Rake:    rake,
			Surface: PointSurface{Lon: c.Lon, Lat: c.Lat, Depth: c.Depth},
		}
	}
	if err := validateAll(ruptures); err != nil {
		return nil, err
	}

	return &GridSource{baseSource{id: id, typ: model.SourceTypeGrid, ruptures: ruptures}}, nil
}

// GridSource is a regularly-gridded point-source collection (spec.md §4.1).
type GridSource struct{ baseSource }

// AreaSource is an areally-distributed source integrated over a
// region.GriddedRegion's active sub-cells (spec.md §4.1, Set1-Case11).
// Geometrically it is a GridSource once expanded; it is kept as a distinct
// type purely for the SourceType tag CurveSetConsolidator's per-type
// roll-up relies on.
type AreaSource struct{ baseSource }

// NewAreaSource builds an AreaSource identically to NewGridSource, tagged
// SourceTypeArea.
func NewAreaSource(id string, cells []GridCell, mag, rake float64) (*AreaSource, error) {
	ruptures := make([]Rupture, len(cells))
	for i, c := range cells {
		ruptures[i] = Rupture{
			Rate:    c.Density,
			Mag:     mag,
			Rake:    rake,
			Surface: PointSurface{Lon: c.Lon, Lat: c.Lat, Depth: c.Depth},
		}
	}
	if err := validateAll(ruptures); err != nil {
		return nil, err
	}

	return &AreaSource{baseSource{id: id, typ: model.SourceTypeArea, ruptures: ruptures}}, nil
}

// ClusterSource groups N mutually exclusive fault-segment sources that
// occur independently within one Poisson recurrence envelope (spec.md
// §4.6). Rate is the cluster's parent recurrence rate; Ruptures() exposes
// the flattened segment ruptures (rate fields unscaled by Rate — stage 3's
// cluster specialization in package calc applies Rate after combining
// segments' exceedance probabilities, not before).
type ClusterSource struct {
	baseSource
	Rate     float64
	Segments []Source
}

// NewClusterSource builds a ClusterSource from its segment sources and
// parent recurrence rate. Returns ErrEmptyCluster if segments is empty.
func NewClusterSource(id string, segments []Source, rate float64) (*ClusterSource, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyCluster
	}
	var flattened []Rupture
	for _, seg := range segments {
		flattened = append(flattened, segToRuptures(seg)...)
	}

	return &ClusterSource{
		baseSource: baseSource{id: id, typ: model.SourceTypeCluster, ruptures: flattened},
		Rate:       rate,
		Segments:   append([]Source(nil), segments...),
	}, nil
}

func segToRuptures(s Source) []Rupture { return s.Ruptures() }

// SystemSource is one fault system's pre-indexed bulk rupture table
// (spec.md §4.7): its own ruptures plus the
// per-section distances used to select ruptures within a configured
// cutoff without per-rupture geometric recomputation.
type SystemSource struct {
	baseSource
	SectionDistances []float64 // rRup-equivalent distance per fault section, index = section ID
	RuptureSections  [][]int   // per-rupture list of participating section indices
}

// NewSystemSource builds a SystemSource. Returns ErrSectionCountMismatch if
// any entry of ruptureSections references a section index outside
// sectionDistances, or if len(ruptureSections) != len(ruptures).
func NewSystemSource(id string, ruptures []Rupture, sectionDistances []float64, ruptureSections [][]int) (*SystemSource, error) {
	if len(ruptureSections) != len(ruptures) {
		return nil, ErrSectionCountMismatch
	}
	for _, secs := range ruptureSections {
		for _, s := range secs {
			if s < 0 || s >= len(sectionDistances) {
				return nil, ErrSectionCountMismatch
			}
		}
	}
	if err := validateAll(ruptures); err != nil {
		return nil, err
	}

	return &SystemSource{
		baseSource:       baseSource{id: id, typ: model.SourceTypeSystem, ruptures: ruptures},
		SectionDistances: append([]float64(nil), sectionDistances...),
		RuptureSections:  append([][]int(nil), ruptureSections...),
	}, nil
}

// SelectWithinCutoff returns the indices of ruptures whose nearest
// participating section lies within cutoff — the bitset selection spec.md
// §4.7 and §9 describe ("a bitset selects ruptures within the configured
// distance cutoff using per-section distance data... the exact encoding
// is... an implementation choice of the model loader"); here it is a plain
// []int of selected indices rather than a packed bitset, since the system
// holds the section table directly and a packed encoding has no other
// consumer. cutoff <= 0 means unfiltered: every rupture is selected,
// matching SourceSet.DistanceCutoff's "0 means no filtering" default.
func (s *SystemSource) SelectWithinCutoff(cutoff float64) []int {
	if cutoff <= 0 {
		selected := make([]int, len(s.RuptureSections))
		for i := range selected {
			selected[i] = i
		}

		return selected
	}

	var selected []int
	for i, secs := range s.RuptureSections {
		minDist := -1.0
		for _, sec := range secs {
			d := s.SectionDistances[sec]
			if minDist < 0 || d < minDist {
				minDist = d
			}
		}
		if minDist >= 0 && minDist <= cutoff {
			selected = append(selected, i)
		}
	}

	return selected
}

// ConnectedSectionGroups groups this system's fault sections into
// connected multi-fault rupture groups: two sections are linked whenever
// some rupture participates in both (spec.md §4.7's "system sources report
// connected multi-fault rupture groups"), using internal/topology's
// BFS-based connected-components query over a graph built from
// RuptureSections' co-participation.
func (s *SystemSource) ConnectedSectionGroups() [][]int {
	g := topology.NewGraph()
	for i := range s.SectionDistances {
		_ = g.AddNode(sectionNodeID(i))
	}
	for _, secs := range s.RuptureSections {
		for i := 0; i < len(secs); i++ {
			for j := i + 1; j < len(secs); j++ {
				_, _ = g.AddLink(sectionNodeID(secs[i]), sectionNodeID(secs[j]), 1)
			}
		}
	}

	groups := make([][]int, 0, len(s.SectionDistances))
	for _, comp := range g.ConnectedComponents() {
		group := make([]int, len(comp))
		for i, id := range comp {
			group[i] = sectionIndexFromID(id)
		}
		sort.Ints(group)
		groups = append(groups, group)
	}

	return groups
}

func sectionNodeID(i int) string { return strconv.Itoa(i) }

func sectionIndexFromID(id string) int {
	n, _ := strconv.Atoi(id)

	return n
}

func validateAll(ruptures []Rupture) error {
	if len(ruptures) == 0 {
		return ErrZeroRuptures
	}
	for _, r := range ruptures {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	return nil
}

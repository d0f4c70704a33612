package region

import (
	"fmt"
	"math"

	"github.com/karim5623/seismhaz/internal/topology"
)

// PropertySample is a sparse observation of default site properties at a
// named location — e.g. a Vs30 terrain-model sample point.
type PropertySample struct {
	Name              string
	Lon, Lat          float64
	Vs30              float64
	Vs30Inferred      bool
	Z1p0, Z2p5        float64
}

// DefaultProperties propagates PropertySample attributes to arbitrary query
// locations by building a complete weighted graph of samples (edge weight =
// great-circle-ish planar distance) and walking the shortest path from an
// injected query node to every sample with topology.Graph.ShortestPaths,
// returning the nearest sample's properties (spec.md §6: "a GriddedRegion +
// default-property builder from which Sites are materialized on demand").
type DefaultProperties struct {
	samples []PropertySample
}

// NewDefaultProperties returns a DefaultProperties propagator over samples.
// Returns ErrNoSamples if samples is empty.
func NewDefaultProperties(samples []PropertySample) (*DefaultProperties, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	cp := make([]PropertySample, len(samples))
	copy(cp, samples)

	return &DefaultProperties{samples: cp}, nil
}

// At returns the property sample nearest to (lon, lat), along with the
// planar distance to it in the same units as the sample coordinates.
//
// Complexity: O(N^2) to build the sample graph (cached per call is not
// attempted — N is expected to be small, tens to low hundreds of terrain
// control points, not a dense grid) plus O(N log N) for the shortest-path
// query from the injected site node.
func (d *DefaultProperties) At(lon, lat float64) (PropertySample, float64, error) {
	g := topology.NewGraph()
	for i, s := range d.samples {
		_ = g.AddNode(s.Name)
		for j := i + 1; j < len(d.samples); j++ {
			other := d.samples[j]
			dist := planarDistance(s.Lon, s.Lat, other.Lon, other.Lat)
			if _, err := g.AddLink(s.Name, other.Name, dist); err != nil {
				return PropertySample{}, 0, fmt.Errorf("region: building sample graph: %w", err)
			}
		}
	}

	const siteNode = "__site__"
	byName := make(map[string]PropertySample, len(d.samples))
	names := make([]string, 0, len(d.samples))
	for _, s := range d.samples {
		byName[s.Name] = s
		names = append(names, s.Name)
		dist := planarDistance(lon, lat, s.Lon, s.Lat)
		if _, err := g.AddLink(siteNode, s.Name, dist); err != nil {
			return PropertySample{}, 0, fmt.Errorf("region: linking query site: %w", err)
		}
	}

	nearest, dist, ok := g.Nearest(siteNode, names)
	if !ok {
		return PropertySample{}, math.Inf(1), fmt.Errorf("region: no reachable property sample")
	}

	return byName[nearest], dist, nil
}

// planarDistance is a flat-earth approximation adequate for nearest-sample
// lookup over a local terrain model; geodetic precision is the out-of-scope
// geodesy collaborator's responsibility (spec.md §1).
func planarDistance(lon1, lat1, lon2, lat2 float64) float64 {
	dLon := lon1 - lon2
	dLat := lat1 - lat2

	return math.Hypot(dLon, dLat)
}

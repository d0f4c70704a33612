package source

import (
	"math"

	"github.com/karim5623/seismhaz/model"
)

// RuptureSurface is the geometric collaborator SourceToInputs queries for
// every rupture (spec.md §4.1). The core never parses a fault trace or
// computes geodetic distance itself — that is the geodesy collaborator's
// job (spec.md §1's "referenced only by their interface contracts"); the
// implementations here are flat-earth approximations adequate for a
// self-contained, testable local model, not a production geodesy library.
type RuptureSurface interface {
	DistanceTo(site model.Site) (rJB, rRup, rX float64)
	Dip() float64
	Width() float64
	DepthTop() float64
}

func planarDistance(lon1, lat1, lon2, lat2 float64) float64 {
	return math.Hypot(lon1-lon2, lat1-lat2)
}

// PointSurface is a degenerate, zero-width surface at one location and
// depth: the natural rupture geometry for a Grid source's per-cell point
// sources (spec.md §4.1's "surfaces of zero width produce zHyp = zTop").
type PointSurface struct {
	Lon, Lat, Depth float64
}

// DistanceTo returns the planar distance to the site as rJB and rRup (a
// point source has no rupture extent to distinguish Joyner-Boore from
// rupture distance) and rX=0 (the site cannot be on a hanging-wall side of
// a point).
func (s PointSurface) DistanceTo(site model.Site) (rJB, rRup, rX float64) {
	d := planarDistance(s.Lon, s.Lat, site.Lon, site.Lat)
	r := math.Hypot(d, s.Depth)

	return d, r, 0
}

// Dip returns 90 degrees: a point has no dip direction, and the convention
// adopted here (vertical) makes DepthTop's hypocentral-depth formula in
// package calc degenerate to zTop, matching spec.md §4.1's zero-width case.
func (s PointSurface) Dip() float64 { return 90 }

// Width returns 0.
func (s PointSurface) Width() float64 { return 0 }

// DepthTop returns the point's depth.
func (s PointSurface) DepthTop() float64 { return s.Depth }

// PlanarSurface is a single rectangular rupture plane defined by its
// surface trace (two endpoints), dip, down-dip width, and the depth of its
// upper edge (spec.md §4.1).
type PlanarSurface struct {
	Lon1, Lat1 float64
	Lon2, Lat2 float64
	DipDeg     float64
	WidthKm    float64
	TopDepthKm float64
}

// DistanceTo projects the site onto the trace segment for rJB, derives rX
// as the signed perpendicular offset (positive on the hanging-wall side),
// and approximates rRup by combining rJB with the down-dip half-width.
func (s PlanarSurface) DistanceTo(site model.Site) (rJB, rRup, rX float64) {
	dx, dy := s.Lon2-s.Lon1, s.Lat2-s.Lat1
	length2 := dx*dx + dy*dy
	var t float64
	if length2 > 0 {
		t = ((site.Lon-s.Lon1)*dx + (site.Lat-s.Lat1)*dy) / length2
	}
	tc := t
	if tc < 0 {
		tc = 0
	}
	if tc > 1 {
		tc = 1
	}
	projLon := s.Lon1 + tc*dx
	projLat := s.Lat1 + tc*dy
	rJB = planarDistance(projLon, projLat, site.Lon, site.Lat)

	cross := dy*(site.Lon-s.Lon1) - dx*(site.Lat-s.Lat1)
	rX = cross
	if length2 > 0 {
		rX = cross / math.Sqrt(length2)
	}

	halfWidth := s.WidthKm / 2
	rRup = math.Hypot(rJB, halfWidth*math.Sin(s.DipDeg*math.Pi/180))

	return rJB, rRup, rX
}

// Dip returns the dip angle in degrees.
func (s PlanarSurface) Dip() float64 { return s.DipDeg }

// Width returns the down-dip width in kilometers.
func (s PlanarSurface) Width() float64 { return s.WidthKm }

// DepthTop returns the depth of the rupture's upper edge.
func (s PlanarSurface) DepthTop() float64 { return s.TopDepthKm }

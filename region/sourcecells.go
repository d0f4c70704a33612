package region

import "github.com/karim5623/seismhaz/source"

// ToSourceCells maps active grid cells onto geographic coordinates,
// producing the []source.GridCell a GridSource or AreaSource consumes
// (spec.md §4.1, Set1-Case10/Case11): cell (x,y) maps to
// (originLon + x*cellDeg, originLat + y*cellDeg) at a fixed depth. cells is
// typically the output of ActiveCells or one ConnectedComponents patch.
func ToSourceCells(cells []Cell, originLon, originLat, cellDeg, depthKm float64) []source.GridCell {
	out := make([]source.GridCell, len(cells))
	for i, c := range cells {
		out[i] = source.GridCell{
			Lon:     originLon + float64(c.X)*cellDeg,
			Lat:     originLat + float64(c.Y)*cellDeg,
			Depth:   depthKm,
			Density: c.Density,
		}
	}

	return out
}

package region

import "fmt"

// Connectivity selects neighbor connectivity for grid traversal.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, adding the diagonals.
	Conn8
)

// Cell identifies one grid node and the occurrence-rate density sampled
// there (events/year/cell, before magnitude-frequency distribution scaling).
type Cell struct {
	X, Y    int
	Density float64
}

// Options tunes grid traversal and the active-cell threshold.
type Options struct {
	// MinDensity is the minimum density for a cell to count as an active
	// earthquake-source cell rather than empty background.
	MinDensity float64
	Conn       Connectivity
}

// DefaultOptions returns Options with MinDensity=0 (any positive density is
// active) and 4-connectivity.
func DefaultOptions() Options {
	return Options{MinDensity: 0, Conn: Conn4}
}

// GriddedRegion is an immutable, deep-copied 2D grid of occurrence-rate
// density, used to discretize Grid and Area sources into per-cell
// sub-sources (spec.md §4.1, §9).
type GriddedRegion struct {
	Width, Height int
	density       [][]float64
	opts          Options
	offsets       [][2]int
}

// NewGriddedRegion builds a GriddedRegion from a non-empty rectangular
// density grid, deep-copying it to guarantee immutability.
// Complexity: O(W×H).
func NewGriddedRegion(density [][]float64, opts Options) (*GriddedRegion, error) {
	if len(density) == 0 || len(density[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(density), len(density[0])
	for _, row := range density {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], density[y])
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GriddedRegion{Width: w, Height: h, density: cells, opts: opts, offsets: offsets}, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (r *GriddedRegion) InBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// At returns the density sampled at (x,y).
func (r *GriddedRegion) At(x, y int) float64 {
	return r.density[y][x]
}

func (r *GriddedRegion) index(x, y int) int  { return y*r.Width + x }
func (r *GriddedRegion) coord(i int) (x, y int) { return i % r.Width, i / r.Width }

func (r *GriddedRegion) cellID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// active reports whether density d marks an active cell: positive and at
// least MinDensity.
func (r *GriddedRegion) active(d float64) bool { return d > 0 && d >= r.opts.MinDensity }

// ActiveCells returns every cell whose density meets the MinDensity
// threshold — the candidate point-source locations a Grid or Area source
// expands into (spec.md §4.1).
func (r *GriddedRegion) ActiveCells() []Cell {
	var out []Cell
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if d := r.density[y][x]; r.active(d) {
				out = append(out, Cell{X: x, Y: y, Density: d})
			}
		}
	}

	return out
}

// ConnectedComponents groups active cells into contiguous patches using BFS
// over the configured connectivity. Used to identify distinct area-source
// sub-regions before per-patch integration (Set1-Case11).
// Complexity: O(W×H×d).
func (r *GriddedRegion) ConnectedComponents() [][]Cell {
	total := r.Width * r.Height
	visited := make([]bool, total)
	var components [][]Cell

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if !r.active(r.density[y][x]) {
				continue
			}
			start := r.index(x, y)
			if visited[start] {
				continue
			}
			queue := []int{start}
			visited[start] = true
			var comp []Cell
			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				x0, y0 := r.coord(idx)
				comp = append(comp, Cell{X: x0, Y: y0, Density: r.density[y0][x0]})
				for _, d := range r.offsets {
					nx, ny := x0+d[0], y0+d[1]
					if !r.InBounds(nx, ny) || !r.active(r.density[ny][nx]) {
						continue
					}
					nIdx := r.index(nx, ny)
					if !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}
			components = append(components, comp)
		}
	}

	return components
}

// BridgeComponents finds the minimum number of below-threshold cells that
// must be promoted to active to connect any cell of src to any cell of dst,
// using 0-1 BFS (moving into an already-active cell costs 0, into a
// below-threshold cell costs 1). It lets an area-source builder merge two
// sub-patches discovered by ConnectedComponents into one contiguous
// footprint before integrating over it.
// Complexity: O(W×H×d).
func (r *GriddedRegion) BridgeComponents(src, dst []Cell) (path []Cell, cost int, err error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrNoComponents
	}
	n := r.Width * r.Height
	dstSet := make(map[int]struct{}, len(dst))
	for _, c := range dst {
		dstSet[r.index(c.X, c.Y)] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	capDeque := n + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0
	for _, c := range src {
		i := r.index(c.X, c.Y)
		dist[i] = 0
		head = (head - 1 + capDeque) % capDeque
		deque[head] = i
	}

	target := -1
	for head != tail {
		idx := deque[head]
		head = (head + 1) % capDeque
		if _, ok := dstSet[idx]; ok {
			target = idx
			break
		}
		x0, y0 := r.coord(idx)
		for _, d := range r.offsets {
			nx, ny := x0+d[0], y0+d[1]
			if !r.InBounds(nx, ny) {
				continue
			}
			nIdx := r.index(nx, ny)
			stepCost := 0
			if !r.active(r.density[ny][nx]) {
				stepCost = 1
			}
			nd := dist[idx] + stepCost
			if nd < dist[nIdx] {
				dist[nIdx] = nd
				prev[nIdx] = idx
				if stepCost == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = nIdx
				} else {
					deque[tail] = nIdx
					tail = (tail + 1) % capDeque
				}
			}
		}
	}
	if target == -1 {
		return nil, 0, ErrComponentsUnreachable
	}

	for cur := target; cur != -1; cur = prev[cur] {
		x, y := r.coord(cur)
		path = append([]Cell{{X: x, Y: y, Density: r.density[y][x]}}, path...)
	}

	return path, dist[target], nil
}

// ErrComponentsUnreachable indicates no bridging path exists between the two
// component sets (should not occur on a finite bounded grid, but guarded
// fail-fast rather than returning a misleading zero-cost path).
var ErrComponentsUnreachable = fmt.Errorf("region: no path between component sets")

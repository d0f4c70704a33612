package topology

import (
	"container/heap"
	"errors"
	"math"
)

// ErrSourceNotFound is returned when ShortestPaths is asked to start from a
// node absent from the graph.
var ErrSourceNotFound = errors.New("topology: source node not found")

// ShortestPaths runs Dijkstra's algorithm from source over undirected link
// weights (link direction is ignored — region sample graphs are symmetric
// geographic adjacency). Returns the minimum distance to every reachable
// node; unreachable nodes are omitted.
//
// Complexity: O((V+E) log V) via a binary heap with lazy decrease-key.
func (g *Graph) ShortestPaths(source string) (map[string]float64, error) {
	if _, err := g.Node(source); err != nil {
		return nil, ErrSourceNotFound
	}

	dist := map[string]float64{source: 0}
	pq := &pathHeap{{node: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pathItem)
		if d, ok := dist[cur.node]; ok && cur.dist > d {
			continue // stale entry
		}
		for _, nb := range g.undirectedNeighbors(cur.node) {
			w, ok := g.NeighborWeight(cur.node, nb)
			if !ok {
				w, ok = g.NeighborWeight(nb, cur.node)
			}
			if !ok {
				continue
			}
			nd := cur.dist + w
			if old, seen := dist[nb]; !seen || nd < old {
				dist[nb] = nd
				heap.Push(pq, pathItem{node: nb, dist: nd})
			}
		}
	}

	return dist, nil
}

// Nearest returns the node in candidates closest to source by shortest-path
// distance, along with that distance. Returns ("", +Inf, false) if none of
// candidates is reachable.
func (g *Graph) Nearest(source string, candidates []string) (string, float64, bool) {
	dist, err := g.ShortestPaths(source)
	if err != nil {
		return "", math.Inf(1), false
	}
	best := ""
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if d, ok := dist[c]; ok && d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return "", math.Inf(1), false
	}

	return best, bestDist, true
}

type pathItem struct {
	node string
	dist float64
}

type pathHeap []pathItem

func (h pathHeap) Len() int            { return len(h) }
func (h pathHeap) Less(i, j int) bool   { return h[i].dist < h[j].dist }
func (h pathHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x interface{})  { *h = append(*h, x.(pathItem)) }
func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

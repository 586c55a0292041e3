// Package pathcost implements travel_cost: a best-first search
// over the composite graph of a hexgrid.HexMap's six-neighborhood
// edges plus its air-route edges, sharing a single edge-cost rule —
// traversing out of a cell costs that cell's exit cost, and a
// zero-exit-cost cell is a dead end with no outgoing edges at all.
//
// The search uses pqueue's lazy decrease-key heap and hexgrid's
// generation-tagged scratch for its distance array, so repeated
// queries against the same *hexgrid.HexMap never pay an O(N) reset.
package pathcost

import (
	"github.com/kestrelmap/hexroute/hexgrid"
	"github.com/kestrelmap/hexroute/pqueue"
)

// Engine runs shortest-path queries against a *hexgrid.HexMap, owning
// a reusable heap so that successive Query calls avoid reallocating
// it. Engine is not safe for concurrent use; the command stream this
// is built for serializes all operations by construction.
type Engine struct {
	heap *pqueue.Heap
}

// New returns an Engine with its heap pre-sized to capHint entries.
func New(capHint int) *Engine {
	return &Engine{heap: pqueue.New(capHint)}
}

// Query returns the minimum total cost from src to dst in m, or -1 if
// dst is unreachable. Callers are responsible for the src == dst
// degenerate case and for consulting/populating any result cache;
// Query always performs the full search and advances m's generation
// counter exactly once.
//
// Determinism: edges are relaxed in the fixed neighbor order of
// hexgrid.HexMap.Neighbors, then in air-route list order. The heap
// does not pop equal-distance entries in insertion order, but the
// result is the distance of the first non-stale extraction of dst,
// which is the minimum cost whatever the order among ties.
// Complexity: O((N+E) log N) amortized across the lazily-reset heap.
func (e *Engine) Query(m *hexgrid.HexMap, src, dst int32) int64 {
	m.NextGen()
	e.heap.Reset()

	m.SetDist(int(src), 0)
	e.heap.Push(src, 0)

	var nbrs []int
	for {
		item, ok := e.heap.PopMin()
		if !ok {
			return -1
		}
		u, d := item.Node, item.Dist

		cur, _ := m.Dist(int(u))
		if d != cur {
			continue // stale heap entry: a cheaper relax already won
		}
		if u == dst {
			return d
		}

		cost := m.ExitCost(int(u))
		if cost == 0 {
			continue // dead-end rule: no edges leave a zero-cost cell
		}

		ux, uy := m.Coord(int(u))
		nbrs = m.Neighbors(ux, uy, nbrs[:0])
		for _, v := range nbrs {
			e.relax(m, int32(v), d+int64(cost))
		}
		for _, v := range m.AirRoutes(int(u)) {
			e.relax(m, v, d+int64(cost))
		}
	}
}

// relax offers newDist, the tentative distance of v via the cell being
// expanded, updating v's scratch distance and pushing a fresh heap
// entry only on strict improvement.
func (e *Engine) relax(m *hexgrid.HexMap, v int32, newDist int64) {
	if cur, ok := m.Dist(int(v)); ok && newDist >= cur {
		return
	}
	m.SetDist(int(v), newDist)
	e.heap.Push(v, newDist)
}

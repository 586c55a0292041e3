package radialcost

import "github.com/kestrelmap/hexroute/hexgrid"

// floorDiv computes the mathematical floor of a/b (toward negative
// infinity) for b > 0. Go's native integer division truncates toward
// zero, which differs from floor for negative a
// (e.g. floorDiv(-1,3) == -1, floorDiv(-3,3) == -1).
func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}

	return -(((-a) + (b - 1)) / b)
}

// delta returns the piecewise-linear cost delta applied to a cell at
// BFS-depth d within a disk of radius r, given magnitude v.
func delta(v, r, d int) int {
	return floorDiv(v*(r-d), r)
}

// Apply implements change_cost(x, y, v, r): an unweighted BFS from
// (x,y) bounded to depth < r, applying delta(d) to each visited
// cell's exit cost and clamping into hexgrid's valid range. Cells at
// depth r are not visited (the disk is half-open on its rim).
//
// queue is caller-owned scratch reused across calls to avoid
// per-query allocation; its contents on entry are ignored and it is
// truncated to length 0 before use.
//
// Returns ErrBadRadius if r <= 0, ErrBadDelta if v is outside
// [-10,10], or hexgrid.ErrOutOfBounds if (x,y) is not a valid cell.
// On success, m's generation counter is advanced exactly once.
// Complexity: O(N) worst case, bounded by the disk actually visited.
func Apply(m *hexgrid.HexMap, queue *[]int32, x, y, v, r int) error {
	if r <= 0 {
		return ErrBadRadius
	}
	if v < -10 || v > 10 {
		return ErrBadDelta
	}
	if !m.InBounds(x, y) {
		return hexgrid.ErrOutOfBounds
	}

	m.NextGen()
	*queue = (*queue)[:0]

	center := m.Index(x, y)
	m.SetDist(center, 0)
	*queue = append(*queue, int32(center))

	var nbrs []int
	for head := 0; head < len(*queue); head++ {
		u := int((*queue)[head])
		d, _ := m.Dist(u) // always defined: only ever enqueued after SetDist

		if d >= int64(r) {
			continue
		}
		m.SetExitCost(u, m.ExitCost(u)+delta(v, r, int(d)))

		if d+1 < int64(r) {
			ux, uy := m.Coord(u)
			nbrs = m.Neighbors(ux, uy, nbrs[:0])
			for _, nb := range nbrs {
				if _, seen := m.Dist(nb); !seen {
					m.SetDist(nb, d+1)
					*queue = append(*queue, int32(nb))
				}
			}
		}
	}

	return nil
}

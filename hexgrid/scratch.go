package hexgrid

// NextGen advances the generation counter, virtually resetting every
// cell's dist field to +infinity in O(1). Any operation that consults
// the scratch (radial cost modification, a shortest-path query) must
// call NextGen exactly once at entry, before any Dist/SetDist call.
//
// Overflow policy: curGen is a uint64; at the rate of one increment
// per command this cannot realistically wrap within a process
// lifetime, so wraparound is not handled.
// Complexity: O(1).
func (m *HexMap) NextGen() {
	m.curGen++
}

// CurGen returns the active generation counter.
func (m *HexMap) CurGen() uint64 {
	return m.curGen
}

// Dist returns the tentative distance of cell idx and whether it is
// defined (gen == curGen). An undefined distance must be treated as
// +infinity by the caller.
// Complexity: O(1).
func (m *HexMap) Dist(idx int) (dist int64, ok bool) {
	c := &m.cells[idx]
	if c.gen != m.curGen {
		return 0, false
	}

	return c.dist, true
}

// SetDist writes dist as the tentative distance of cell idx and tags
// it with the current generation, making it defined until the next
// NextGen call.
// Complexity: O(1).
func (m *HexMap) SetDist(idx int, dist int64) {
	c := &m.cells[idx]
	c.dist = dist
	c.gen = m.curGen
}

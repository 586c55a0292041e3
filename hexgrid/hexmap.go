package hexgrid

// evenRowOffsets and oddRowOffsets give the six neighbor offsets for a
// pointy/odd-offset hex grid, keyed by the parity of the cell's row.
// Order is fixed and observable via tie-breaking in the shortest-path
// search (see pathcost); it must never be reordered.
var (
	evenRowOffsets = [6][2]int{{-1, -1}, {0, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}}
	oddRowOffsets  = [6][2]int{{0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// NewHexMap allocates a Cols x Rows grid with every exit cost set to
// InitialExitCost and no air routes. Returns ErrInvalidDimensions if
// either dimension is not strictly positive.
// Complexity: O(Cols*Rows).
func NewHexMap(cols, rows int) (*HexMap, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := cols * rows
	cells := make([]Cell, n)
	for i := range cells {
		cells[i].ExitCost = InitialExitCost
	}

	return &HexMap{Cols: cols, Rows: rows, cells: cells, curGen: 1}, nil
}

// N returns the total cell count Cols*Rows.
func (m *HexMap) N() int {
	return m.Cols * m.Rows
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (m *HexMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Cols && y >= 0 && y < m.Rows
}

// Index maps (x,y) to its row-major cell index. Caller must ensure
// InBounds(x,y) beforehand; Index does not itself validate.
// Complexity: O(1).
func (m *HexMap) Index(x, y int) int {
	return y*m.Cols + x
}

// Coord converts a row-major index back to (x,y).
// Complexity: O(1).
func (m *HexMap) Coord(idx int) (x, y int) {
	return idx % m.Cols, idx / m.Cols
}

// Neighbors appends the in-bounds six-neighborhood of (x,y) onto dst
// and returns the result, in a fixed parity-dependent order. Reusing
// dst across calls avoids per-call allocation.
// Complexity: O(1).
func (m *HexMap) Neighbors(x, y int, dst []int) []int {
	offsets := &evenRowOffsets
	if y%2 != 0 {
		offsets = &oddRowOffsets
	}
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if m.InBounds(nx, ny) {
			dst = append(dst, m.Index(nx, ny))
		}
	}

	return dst
}

// ExitCost returns the current exit cost of cell idx.
// Complexity: O(1).
func (m *HexMap) ExitCost(idx int) int {
	return m.cells[idx].ExitCost
}

// SetExitCost clamps v into [MinExitCost,MaxExitCost] and stores it as
// the exit cost of cell idx.
// Complexity: O(1).
func (m *HexMap) SetExitCost(idx, v int) {
	if v < MinExitCost {
		v = MinExitCost
	} else if v > MaxExitCost {
		v = MaxExitCost
	}
	m.cells[idx].ExitCost = v
}

// AirRoutes returns the outgoing air-route destinations of cell idx.
// Complexity: O(1).
func (m *HexMap) AirRoutes(idx int) []int32 {
	return m.cells[idx].AirRoutes()
}

// ToggleAirRoute toggles a directed shortcut: if dst is already among
// src's air routes it is removed (swap-with-last); otherwise it is appended if
// src's route count is below MaxAirRoutes. Returns added=true when a
// route was inserted, added=false when one was removed, and
// ErrRouteTableFull when the list is full and dst is absent.
// Complexity: O(MaxAirRoutes) (bounded constant).
func (m *HexMap) ToggleAirRoute(src, dst int32) (added bool, err error) {
	c := &m.cells[src]
	for i, r := range c.airRoutes {
		if r == dst {
			last := len(c.airRoutes) - 1
			c.airRoutes[i] = c.airRoutes[last]
			c.airRoutes = c.airRoutes[:last]
			return false, nil
		}
	}
	if len(c.airRoutes) >= MaxAirRoutes {
		return false, ErrRouteTableFull
	}
	c.airRoutes = append(c.airRoutes, dst)

	return true, nil
}

package hexgrid

// Tunable bounds from the data model.
const (
	// MinExitCost and MaxExitCost bound Cell.ExitCost at all times.
	MinExitCost = 0
	MaxExitCost = 100

	// InitialExitCost is the value every cell starts with at Init.
	InitialExitCost = 1

	// MaxAirRoutes caps the number of outgoing air routes per cell.
	MaxAirRoutes = 5
)

// Cell holds the per-vertex state of the hex grid: the cost of
// traversing out of it, its outgoing air routes, and the two scratch
// fields (dist/gen) used by the generation-tagged virtual reset.
//
// dist is meaningful only while gen equals the owning HexMap's curGen;
// otherwise it must be treated as +∞. Callers never read dist/gen
// directly — use HexMap.Dist and HexMap.SetDist.
type Cell struct {
	ExitCost  int
	airRoutes []int32

	dist int64
	gen  uint64
}

// AirRoutes returns the cell's outgoing air-route destinations in
// insertion order. The returned slice must not be mutated by callers.
func (c *Cell) AirRoutes() []int32 {
	return c.airRoutes
}

// HexMap owns the dense cell array for a Cols x Rows hex grid plus the
// current generation counter used to virtually reset the dist/gen
// scratch in O(1) amortized time.
type HexMap struct {
	Cols, Rows int
	cells      []Cell
	curGen     uint64
}

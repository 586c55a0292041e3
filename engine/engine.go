package engine

import (
	"github.com/kestrelmap/hexroute/hexgrid"
	"github.com/kestrelmap/hexroute/pathcost"
	"github.com/kestrelmap/hexroute/radialcost"
	"github.com/kestrelmap/hexroute/rcache"
)

// Config tunes the resources an Engine allocates.
type Config struct {
	// CacheCapacity is the result cache's slot count. Zero selects
	// rcache.DefaultCapacity.
	CacheCapacity int
}

// Engine is the in-process, single-threaded backend behind the three
// mutating/query operations (change_cost, toggle_air_route,
// travel_cost) plus init. It is not safe for concurrent use; the
// command stream it backs serializes all calls.
type Engine struct {
	cfg      Config
	m        *hexgrid.HexMap
	cache    *rcache.Cache
	searcher *pathcost.Engine
	bfsQueue []int32
}

// New returns an Engine with no map initialized; Init must be called
// before any other operation.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Init replaces any existing map with a fresh cols x rows grid: every
// exit cost reset to hexgrid.InitialExitCost, no air routes, and a
// brand-new (empty) result cache. Returns hexgrid.ErrInvalidDimensions
// if cols or rows is not positive.
// Complexity: O(cols*rows).
func (e *Engine) Init(cols, rows int) error {
	m, err := hexgrid.NewHexMap(cols, rows)
	if err != nil {
		return err
	}

	e.m = m
	e.cache = rcache.New(e.cfg.CacheCapacity)
	e.searcher = pathcost.New(m.N())
	e.bfsQueue = make([]int32, 0, m.N())

	return nil
}

// ChangeCost applies the radial cost modifier centered at (x,y). On success the result
// cache is invalidated. Returns ErrNoMap if Init has not succeeded,
// or the sentinel error from hexgrid/radialcost on invalid input.
func (e *Engine) ChangeCost(x, y, v, r int) error {
	if e.m == nil {
		return ErrNoMap
	}
	if err := radialcost.Apply(e.m, &e.bfsQueue, x, y, v, r); err != nil {
		return err
	}
	e.cache.Invalidate()

	return nil
}

// ToggleAirRoute toggles the directed air route (x1,y1) -> (x2,y2).
// On success the result cache is invalidated. Returns ErrNoMap if Init
// has not succeeded, hexgrid.ErrOutOfBounds for an invalid coordinate,
// or hexgrid.ErrRouteTableFull if the source's route list is full and
// the destination is absent.
func (e *Engine) ToggleAirRoute(x1, y1, x2, y2 int) error {
	if e.m == nil {
		return ErrNoMap
	}
	if !e.m.InBounds(x1, y1) || !e.m.InBounds(x2, y2) {
		return hexgrid.ErrOutOfBounds
	}

	src := int32(e.m.Index(x1, y1))
	dst := int32(e.m.Index(x2, y2))
	if _, err := e.m.ToggleAirRoute(src, dst); err != nil {
		return err
	}
	e.cache.Invalidate()

	return nil
}

// TravelCost returns the least total cost for (xs,ys) -> (xd,yd),
// or -1 if unreachable or if any input is invalid
// (uninitialized map, out-of-bounds coordinate). The source == dest
// degenerate case returns 0 without consulting or populating the
// cache; every other query is served from cache on a hit and both
// computed and cached on a miss.
func (e *Engine) TravelCost(xs, ys, xd, yd int) int64 {
	if e.m == nil {
		return -1
	}
	if !e.m.InBounds(xs, ys) || !e.m.InBounds(xd, yd) {
		return -1
	}

	src := int32(e.m.Index(xs, ys))
	dst := int32(e.m.Index(xd, yd))
	if src == dst {
		return 0
	}

	if cost, ok := e.cache.Lookup(src, dst); ok {
		return cost
	}

	cost := e.searcher.Query(e.m, src, dst)
	e.cache.Store(src, dst, cost)

	return cost
}

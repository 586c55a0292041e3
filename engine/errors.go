// Package engine is the façade gluing hexgrid, radialcost, pathcost,
// and rcache into the three mutating/query operations and the init
// lifecycle they support. It owns the one long-lived hexgrid.HexMap,
// its result cache, and the scratch buffers the other packages reuse
// across calls.
package engine

import "errors"

// ErrNoMap indicates an operation was attempted before Init succeeded.
var ErrNoMap = errors.New("engine: no map initialized")

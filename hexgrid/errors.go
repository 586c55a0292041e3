package hexgrid

import "errors"

// Sentinel errors for hexgrid operations.
var (
	// ErrInvalidDimensions indicates a non-positive column or row count.
	ErrInvalidDimensions = errors.New("hexgrid: columns and rows must both be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,Cols)x[0,Rows).
	ErrOutOfBounds = errors.New("hexgrid: coordinate out of bounds")
	// ErrRouteTableFull indicates an air-route insert when the source's
	// route list is already at its cap and the destination is absent.
	ErrRouteTableFull = errors.New("hexgrid: air-route table full")
)

// Package radialcost implements the radial cost modifier: an
// unweighted BFS flood from a center cell, bounded by radius, that
// applies a piecewise-linear integer delta to each visited cell's
// exit cost and clamps the result into hexgrid's valid range.
package radialcost

import "errors"

// ErrBadRadius indicates a non-positive radius.
var ErrBadRadius = errors.New("radialcost: radius must be positive")

// ErrBadDelta indicates a delta magnitude outside [-10, 10].
var ErrBadDelta = errors.New("radialcost: delta must be within [-10,10]")

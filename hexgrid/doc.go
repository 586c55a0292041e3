// Package hexgrid treats a rectangular grid of hexagonal cells as the
// graph substrate for the rest of hexroute. It supports:
//
//   - Parity-dependent six-neighborhood adjacency (pointy/odd-offset
//     layout).
//   - Per-cell exit cost, bounded to [0,100].
//   - Per-cell, capped, directed air routes (outgoing shortcuts).
//   - A generation-tagged distance scratch shared by the radial cost
//     modifier and the shortest-path engine, avoiding an O(N) reset
//     per operation.
//
// hexgrid owns no algorithms of its own; radialcost and pathcost read
// and mutate a *HexMap through the methods declared here.
package hexgrid

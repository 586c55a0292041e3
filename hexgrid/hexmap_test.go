package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewHexMap_Errors verifies rejection of non-positive dimensions.
func TestNewHexMap_Errors(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
	}{
		{"ZeroCols", 0, 3},
		{"ZeroRows", 3, 0},
		{"NegativeCols", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHexMap(tc.cols, tc.rows)
			require.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

// TestNewHexMap_InitialState checks every cell starts at the default
// exit cost with no air routes.
func TestNewHexMap_InitialState(t *testing.T) {
	m, err := NewHexMap(3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, m.N())

	for i := 0; i < m.N(); i++ {
		require.Equal(t, InitialExitCost, m.ExitCost(i))
		require.Empty(t, m.AirRoutes(i))
	}
}

// TestInBounds_IndexCoord round-trips coordinates through Index/Coord.
func TestInBounds_IndexCoord(t *testing.T) {
	m, err := NewHexMap(4, 3)
	require.NoError(t, err)

	require.True(t, m.InBounds(0, 0))
	require.True(t, m.InBounds(3, 2))
	require.False(t, m.InBounds(4, 0))
	require.False(t, m.InBounds(-1, 0))
	require.False(t, m.InBounds(0, 3))

	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			idx := m.Index(x, y)
			gx, gy := m.Coord(idx)
			require.Equal(t, x, gx)
			require.Equal(t, y, gy)
		}
	}
}

// TestNeighbors_Parity verifies the fixed even/odd row offset tables
// by checking a known interior cell on each parity.
func TestNeighbors_Parity(t *testing.T) {
	m, err := NewHexMap(5, 5)
	require.NoError(t, err)

	// (2,2): even row. Expected in-bounds neighbors per evenRowOffsets.
	got := m.Neighbors(2, 2, nil)
	want := []int{m.Index(1, 1), m.Index(2, 1), m.Index(1, 2), m.Index(3, 2), m.Index(1, 3), m.Index(2, 3)}
	require.Equal(t, want, got)

	// (2,3): odd row. Expected in-bounds neighbors per oddRowOffsets.
	got = m.Neighbors(2, 3, nil)
	want = []int{m.Index(2, 2), m.Index(3, 2), m.Index(1, 3), m.Index(3, 3), m.Index(2, 4), m.Index(3, 4)}
	require.Equal(t, want, got)
}

// TestNeighbors_Corner verifies out-of-bounds offsets are dropped.
func TestNeighbors_Corner(t *testing.T) {
	m, err := NewHexMap(2, 2)
	require.NoError(t, err)

	got := m.Neighbors(0, 0, nil)
	// (0,0) even row: only (1,0) and (0,1) (via even offsets) survive bounds.
	require.ElementsMatch(t, []int{m.Index(1, 0), m.Index(0, 1)}, got)
}

// TestSetExitCost_Clamps confirms exit cost is clamped to [0,100].
func TestSetExitCost_Clamps(t *testing.T) {
	m, err := NewHexMap(2, 2)
	require.NoError(t, err)

	m.SetExitCost(0, 500)
	require.Equal(t, MaxExitCost, m.ExitCost(0))

	m.SetExitCost(0, -50)
	require.Equal(t, MinExitCost, m.ExitCost(0))

	m.SetExitCost(0, 42)
	require.Equal(t, 42, m.ExitCost(0))
}

// TestToggleAirRoute_InsertRemove exercises the insert/remove toggle semantics.
func TestToggleAirRoute_InsertRemove(t *testing.T) {
	m, err := NewHexMap(3, 3)
	require.NoError(t, err)

	added, err := m.ToggleAirRoute(0, 5)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, []int32{5}, m.AirRoutes(0))

	added, err = m.ToggleAirRoute(0, 5)
	require.NoError(t, err)
	require.False(t, added)
	require.Empty(t, m.AirRoutes(0))
}

// TestToggleAirRoute_CapacityFull confirms ErrRouteTableFull once the
// bounded list is saturated with distinct destinations.
func TestToggleAirRoute_CapacityFull(t *testing.T) {
	m, err := NewHexMap(3, 3)
	require.NoError(t, err)

	for i := int32(0); i < MaxAirRoutes; i++ {
		_, err := m.ToggleAirRoute(0, i+1)
		require.NoError(t, err)
	}
	require.Len(t, m.AirRoutes(0), MaxAirRoutes)

	_, err = m.ToggleAirRoute(0, 99)
	require.ErrorIs(t, err, ErrRouteTableFull)

	// Removing an existing route still succeeds once full.
	added, err := m.ToggleAirRoute(0, 1)
	require.NoError(t, err)
	require.False(t, added)
	require.Len(t, m.AirRoutes(0), MaxAirRoutes-1)
}

// TestToggleAirRoute_SelfLoop confirms self-loops are permitted.
func TestToggleAirRoute_SelfLoop(t *testing.T) {
	m, err := NewHexMap(2, 2)
	require.NoError(t, err)

	added, err := m.ToggleAirRoute(3, 3)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, []int32{3}, m.AirRoutes(3))
}

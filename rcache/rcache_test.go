package rcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCache_MissThenHit verifies a fresh table misses, Store makes it
// hit, and the stored cost round-trips exactly (including -1).
func TestCache_MissThenHit(t *testing.T) {
	c := New(16)

	_, ok := c.Lookup(1, 2)
	require.False(t, ok)

	c.Store(1, 2, 7)
	cost, ok := c.Lookup(1, 2)
	require.True(t, ok)
	require.EqualValues(t, 7, cost)
}

// TestCache_NegativeResultCached confirms unreachable (-1) results
// cache identically to positive ones.
func TestCache_NegativeResultCached(t *testing.T) {
	c := New(16)
	c.Store(3, 4, -1)

	cost, ok := c.Lookup(3, 4)
	require.True(t, ok)
	require.EqualValues(t, -1, cost)
}

// TestCache_Invalidate confirms all entries miss after invalidation,
// in O(1), without having been individually cleared.
func TestCache_Invalidate(t *testing.T) {
	c := New(16)
	c.Store(1, 2, 5)
	c.Store(3, 4, 9)

	c.Invalidate()

	_, ok := c.Lookup(1, 2)
	require.False(t, ok)
	_, ok = c.Lookup(3, 4)
	require.False(t, ok)

	// A fresh Store after invalidation is observable again.
	c.Store(1, 2, 11)
	cost, ok := c.Lookup(1, 2)
	require.True(t, ok)
	require.EqualValues(t, 11, cost)
}

// TestCache_FullTableOverwritesHomeSlot verifies that when a full probe
// cycle finds no free slot and no key match, Store overwrites the home
// slot and the newest key is the one retrievable.
func TestCache_FullTableOverwritesHomeSlot(t *testing.T) {
	c := New(1) // force every key into slot 0
	c.Store(1, 1, 100)
	c.Store(2, 2, 200)

	// With capacity 1 there is only one slot; the last Store wins and
	// the probe sequence always lands on slot 0.
	cost, ok := c.Lookup(2, 2)
	require.True(t, ok)
	require.EqualValues(t, 200, cost)
}

// TestCache_UpdateInPlace verifies re-storing the same key updates
// its cost rather than creating a duplicate slot entry.
func TestCache_UpdateInPlace(t *testing.T) {
	c := New(16)
	c.Store(5, 6, 1)
	c.Store(5, 6, 2)

	cost, ok := c.Lookup(5, 6)
	require.True(t, ok)
	require.EqualValues(t, 2, cost)
}

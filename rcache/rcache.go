// Package rcache implements the fixed-size, open-addressed,
// linear-probing result cache that makes the shortest-path engine's
// repeated (source, destination) queries O(1) after the first. The
// whole table is invalidated in O(1) by bumping a version counter;
// no entry is ever scanned or cleared on invalidation.
package rcache

// DefaultCapacity is the default slot count used when no capacity is given.
const DefaultCapacity = 32768

// entry is one (source, destination) -> cost record, valid iff ver
// equals the cache's current version.
type entry struct {
	src, dst int32
	cost     int64
	ver      uint64
}

// Cache is a fixed-capacity linear-probing hash table keyed by
// (source, destination). Zero value is not usable; construct with
// New. The zero entry has ver == 0, which never matches a live
// version (version starts at 1), so a freshly allocated table starts
// fully "empty" without any initialization pass.
type Cache struct {
	slots    []entry
	version  uint64
	capacity int
}

// New returns an empty Cache with the given slot capacity. A
// non-positive capacity selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Cache{slots: make([]entry, capacity), version: 1, capacity: capacity}
}

// hash computes the home slot for (src, dst): (src*31+dst) mod capacity.
func (c *Cache) hash(src, dst int32) int {
	h := (int64(src)*31 + int64(dst)) % int64(c.capacity)
	if h < 0 {
		h += int64(c.capacity)
	}

	return int(h)
}

// Lookup probes from (src, dst)'s home slot for up to capacity steps.
// A slot whose version differs from the cache's current version is
// treated as empty and ends the probe as a miss. A slot with a
// matching key and the current version is a hit.
// Complexity: O(1) expected, O(capacity) worst case.
func (c *Cache) Lookup(src, dst int32) (cost int64, ok bool) {
	home := c.hash(src, dst)
	for i := 0; i < c.capacity; i++ {
		idx := home + i
		if idx >= c.capacity {
			idx -= c.capacity
		}
		e := &c.slots[idx]
		if e.ver != c.version {
			return 0, false
		}
		if e.src == src && e.dst == dst {
			return e.cost, true
		}
	}

	return 0, false
}

// Store inserts or updates the (src, dst) -> cost record. The first
// slot along the probe sequence that is logically empty (stale
// version) or an exact key match is claimed. If a full cycle finds
// neither, the home slot is overwritten as a last-resort eviction.
// Complexity: O(1) expected, O(capacity) worst case.
func (c *Cache) Store(src, dst int32, cost int64) {
	home := c.hash(src, dst)
	for i := 0; i < c.capacity; i++ {
		idx := home + i
		if idx >= c.capacity {
			idx -= c.capacity
		}
		e := &c.slots[idx]
		if e.ver != c.version || (e.src == src && e.dst == dst) {
			*e = entry{src: src, dst: dst, cost: cost, ver: c.version}
			return
		}
	}
	c.slots[home] = entry{src: src, dst: dst, cost: cost, ver: c.version}
}

// Invalidate bulk-invalidates every entry in O(1) by advancing the
// cache's version counter. Must be called on any successful mutation
// to exit cost or air routes.
// Complexity: O(1).
func (c *Cache) Invalidate() {
	c.version++
}

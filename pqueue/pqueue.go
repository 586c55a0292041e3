// Package pqueue implements the array-backed binary min-heap used by
// the shortest-path engine: a zero-indexed heap of (cell index,
// tentative distance) entries, keyed by ascending distance, with no
// decrease-key operation — stale entries are filtered on pop by the
// caller (lazy decrease-key, per container/heap convention).
package pqueue

import "container/heap"

// Item is one (node, distance) record stored in the heap.
type Item struct {
	Node int32
	Dist int64
}

// Heap is a min-heap of Item ordered by ascending Dist. The order in
// which entries with equal Dist are popped is not insertion order:
// container/heap's sift is not stable for equal keys, and no tie-break
// is applied. Capacity grows geometrically via the
// underlying slice; Reset truncates it for reuse across queries
// without releasing the backing array.
type Heap struct {
	items []Item
}

// New returns an empty Heap with capacity reserved for cap0 entries.
func New(cap0 int) *Heap {
	return &Heap{items: make([]Item, 0, cap0)}
}

// Reset empties the heap while retaining its backing array, so a
// single Heap instance can be reused across many shortest-path
// queries without per-query allocation.
// Complexity: O(1).
func (h *Heap) Reset() {
	h.items = h.items[:0]
}

// Push inserts (node, dist) into the heap.
// Complexity: O(log n).
func (h *Heap) Push(node int32, dist int64) {
	heap.Push((*innerHeap)(h), Item{Node: node, Dist: dist})
}

// PopMin removes and returns the entry with the smallest Dist. ok is
// false iff the heap is empty.
// Complexity: O(log n).
func (h *Heap) PopMin() (item Item, ok bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}

	return heap.Pop((*innerHeap)(h)).(Item), true
}

// Len reports the number of entries currently held.
func (h *Heap) Len() int {
	return len(h.items)
}

// innerHeap adapts *Heap to container/heap.Interface without exposing
// Push/Pop's interface{} signature on the public type.
type innerHeap Heap

func (h *innerHeap) Len() int           { return len(h.items) }
func (h *innerHeap) Less(i, j int) bool { return h.items[i].Dist < h.items[j].Dist }
func (h *innerHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *innerHeap) Push(x interface{}) { h.items = append(h.items, x.(Item)) }
func (h *innerHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}

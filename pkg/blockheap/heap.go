// Package blockheap implements the BlockHeap priority structure spec.md
// §4.2 describes: a frontier keyed by tentative distance, supporting
// decrease-key and batched extraction of the k lowest-keyed vertices, with
// two interchangeable implementations that must agree bit-for-bit on pop
// order under the tie-break rule (key ascending, then vertex ascending).
package blockheap

import "github.com/tripp-smith/bmssp/pkg/csr"

// Entry is one (vertex, key) pair as returned by PopBlock, in non-decreasing
// key order.
type Entry[T csr.Weight] struct {
	Vertex uint32
	Key    T
}

// BlockHeap is the decrease-key frontier structure the BMSSP engine and the
// Dijkstra oracle drive. Implementations: LazyHeap (default, preferred) and
// OrderedHeap (the ordered-set variant spec.md §4.2(a) describes).
type BlockHeap[T csr.Weight] interface {
	// Push inserts v with key d, or lowers its key if v is already present
	// and d is smaller than its current key. No-op if v is present with a
	// key <= d.
	Push(v uint32, d T)
	// MinKey returns the smallest key currently in the heap.
	MinKey() (T, bool)
	// PopBlock removes and returns up to k entries with the smallest keys,
	// in non-decreasing key order, tie-broken by ascending vertex index.
	PopBlock(k int) []Entry[T]
	// IsEmpty reports whether the heap holds no live entries.
	IsEmpty() bool
	// Reset clears the heap for reuse without reallocating its backing storage.
	Reset()
}

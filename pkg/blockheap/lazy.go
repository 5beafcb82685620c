package blockheap

import (
	"container/heap"

	"github.com/tripp-smith/bmssp/pkg/csr"
)

// lazyEntry is one proposal in the underlying binary heap: a (key, vertex)
// pair stamped with the version it was pushed at. A popped entry is stale —
// superseded by a later decrease-key — if its (key, version) doesn't match
// the pair recorded for that vertex in LazyHeap.current.
type lazyEntry[T csr.Weight] struct {
	key     T
	vertex  uint32
	version uint32
}

// lazyHeapData is the concrete container/heap.Interface implementation
// backing LazyHeap, in the same shape as the teacher's own container/heap
// users (pkg/routing.MinHeap, pkg/ch's priorityQueue): a plain slice with
// Less enforcing the spec's tie-break (key ascending, then vertex ascending).
type lazyHeapData[T csr.Weight] []lazyEntry[T]

func (h lazyHeapData[T]) Len() int { return len(h) }
func (h lazyHeapData[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].vertex < h[j].vertex
}
func (h lazyHeapData[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *lazyHeapData[T]) Push(x any)   { *h = append(*h, x.(lazyEntry[T])) }
func (h *lazyHeapData[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

type versionedKey[T csr.Weight] struct {
	key     T
	version uint32
}

// staleRebuildFraction is the stale-entry fraction (spec.md §4.2/§9: "e.g.
// 25%") past which LazyHeap compacts its backing slice instead of letting
// Pop keep skipping dead entries.
const staleRebuildFraction = 0.25

// LazyHeap is the preferred, default BlockHeap implementation: a min-heap of
// (key, vertex, version) triples plus a vertex -> (key, version) map.
// decrease-key writes a new version and pushes a fresh triple rather than
// mutating the existing heap node in place; stale triples are discovered and
// discarded lazily, on pop.
type LazyHeap[T csr.Weight] struct {
	items      lazyHeapData[T]
	current    map[uint32]versionedKey[T]
	staleCount int
}

// NewLazyHeap creates an empty LazyHeap. capHint sizes the initial backing
// slice and map to avoid reallocation for graphs with around that many live
// frontier vertices.
func NewLazyHeap[T csr.Weight](capHint int) *LazyHeap[T] {
	return &LazyHeap[T]{
		items:   make(lazyHeapData[T], 0, capHint),
		current: make(map[uint32]versionedKey[T], capHint),
	}
}

func (h *LazyHeap[T]) Push(v uint32, d T) {
	if cur, ok := h.current[v]; ok {
		if d >= cur.key {
			return
		}
		h.staleCount++ // the entry at cur.version is now dead weight in the heap
	}
	next := h.current[v].version + 1
	h.current[v] = versionedKey[T]{key: d, version: next}
	heap.Push(&h.items, lazyEntry[T]{key: d, vertex: v, version: next})
}

func (h *LazyHeap[T]) MinKey() (T, bool) {
	for len(h.items) > 0 {
		top := h.items[0]
		cur, ok := h.current[top.vertex]
		if !ok || cur.version != top.version || cur.key != top.key {
			heap.Pop(&h.items)
			h.staleCount--
			continue
		}
		return top.key, true
	}
	var zero T
	return zero, false
}

func (h *LazyHeap[T]) PopBlock(k int) []Entry[T] {
	if k <= 0 {
		return nil
	}
	result := make([]Entry[T], 0, k)
	for len(result) < k && len(h.items) > 0 {
		e := heap.Pop(&h.items).(lazyEntry[T])
		cur, ok := h.current[e.vertex]
		if !ok || cur.version != e.version || cur.key != e.key {
			h.staleCount--
			continue // stale: superseded by a later decrease-key, or already popped
		}
		delete(h.current, e.vertex)
		result = append(result, Entry[T]{Vertex: e.vertex, Key: e.key})
	}
	h.maybeCompact()
	return result
}

func (h *LazyHeap[T]) IsEmpty() bool {
	_, ok := h.MinKey()
	return !ok
}

func (h *LazyHeap[T]) Reset() {
	h.items = h.items[:0]
	for k := range h.current {
		delete(h.current, k)
	}
	h.staleCount = 0
}

// maybeCompact rebuilds the backing slice from the authoritative `current`
// map once stale entries cross staleRebuildFraction of the heap's size,
// bounding memory growth under heavy decrease-key churn.
func (h *LazyHeap[T]) maybeCompact() {
	if len(h.items) == 0 || float64(h.staleCount) < staleRebuildFraction*float64(len(h.items)) {
		return
	}
	fresh := make(lazyHeapData[T], 0, len(h.current))
	for v, vk := range h.current {
		fresh = append(fresh, lazyEntry[T]{key: vk.key, vertex: v, version: vk.version})
	}
	h.items = fresh
	heap.Init(&h.items)
	h.staleCount = 0
}

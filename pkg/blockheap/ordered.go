package blockheap

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/tripp-smith/bmssp/pkg/csr"
)

// orderedKey is the composite (key, vertex) ordering the red-black tree is
// keyed on; the vertex tiebreak is baked into the comparator rather than
// carried as a separate tree dimension, so Left() alone gives the next
// entry in the exact order spec.md §4.2 requires.
type orderedKey[T csr.Weight] struct {
	key    T
	vertex uint32
}

// OrderedHeap is the "ordered-set variant" BlockHeap spec.md §4.2(a)
// describes: a balanced ordered container of (key, vertex) pairs — here a
// red-black tree from github.com/emirpasic/gods — plus a vertex -> key map
// for decrease-key. decrease-key removes the old tree node and inserts a
// new one, exactly as the spec prescribes, rather than the lazy-heap's
// version-stamped pending-delete scheme.
type OrderedHeap[T csr.Weight] struct {
	tree    *redblacktree.Tree
	current map[uint32]T
}

// NewOrderedHeap creates an empty OrderedHeap.
func NewOrderedHeap[T csr.Weight](capHint int) *OrderedHeap[T] {
	cmp := func(a, b interface{}) int {
		ka, kb := a.(orderedKey[T]), b.(orderedKey[T])
		switch {
		case ka.key < kb.key:
			return -1
		case ka.key > kb.key:
			return 1
		case ka.vertex < kb.vertex:
			return -1
		case ka.vertex > kb.vertex:
			return 1
		default:
			return 0
		}
	}
	return &OrderedHeap[T]{
		tree:    redblacktree.NewWith(utils.Comparator(cmp)),
		current: make(map[uint32]T, capHint),
	}
}

func (h *OrderedHeap[T]) Push(v uint32, d T) {
	if cur, ok := h.current[v]; ok {
		if d >= cur {
			return
		}
		h.tree.Remove(orderedKey[T]{key: cur, vertex: v})
	}
	h.current[v] = d
	h.tree.Put(orderedKey[T]{key: d, vertex: v}, struct{}{})
}

func (h *OrderedHeap[T]) MinKey() (T, bool) {
	node := h.tree.Left()
	if node == nil {
		var zero T
		return zero, false
	}
	return node.Key.(orderedKey[T]).key, true
}

func (h *OrderedHeap[T]) PopBlock(k int) []Entry[T] {
	if k <= 0 {
		return nil
	}
	result := make([]Entry[T], 0, k)
	for len(result) < k {
		node := h.tree.Left()
		if node == nil {
			break
		}
		ok := node.Key.(orderedKey[T])
		h.tree.Remove(node.Key)
		delete(h.current, ok.vertex)
		result = append(result, Entry[T]{Vertex: ok.vertex, Key: ok.key})
	}
	return result
}

func (h *OrderedHeap[T]) IsEmpty() bool {
	return h.tree.Empty()
}

func (h *OrderedHeap[T]) Reset() {
	h.tree.Clear()
	for k := range h.current {
		delete(h.current, k)
	}
}

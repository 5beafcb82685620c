package sssp

import (
	"math"

	"github.com/tripp-smith/bmssp/pkg/blockheap"
	"github.com/tripp-smith/bmssp/pkg/bmssperr"
	"github.com/tripp-smith/bmssp/pkg/csr"
)

// NoVertex is the invalid-predecessor sentinel: ^uint32(0), never a valid
// vertex index for any graph this engine accepts.
const NoVertex = ^uint32(0)

// NoEdge is the invalid-predecessor-edge sentinel.
const NoEdge = ^uint32(0)

// State is the reusable per-query buffer bundle of spec.md §4.5: distance,
// predecessor, predecessor-edge, and settled buffers, plus the block-heap's
// internal storage. Sized once for nMax, reset (not reallocated) by prepare.
type State[T csr.Weight] struct {
	nMax int

	dist     []T
	pred     []uint32
	predEdge []uint32
	settled  []bool
	touched  []uint32

	heap    blockheap.BlockHeap[T]
	variant HeapVariant
}

// NewState preallocates a State for graphs with at most nMax vertices.
func NewState[T csr.Weight](nMax uint32, variant HeapVariant) *State[T] {
	n := int(nMax)
	s := &State[T]{
		nMax:     n,
		dist:     make([]T, n),
		pred:     make([]uint32, n),
		predEdge: make([]uint32, n),
		settled:  make([]bool, n),
		touched:  make([]uint32, 0, n),
		variant:  variant,
	}
	switch variant {
	case HeapOrdered:
		s.heap = blockheap.NewOrderedHeap[T](n)
	default:
		s.heap = blockheap.NewLazyHeap[T](n)
	}
	s.prepareFull(n)
	return s
}

// prepare resets the buffers for a query against a graph with n ≤ nMax
// vertices. Only the previously touched entries are reset, bounding the
// cost to O(touched) in the steady state rather than O(nMax).
func (s *State[T]) prepare(n uint32) error {
	if int(n) > s.nMax {
		return bmssperr.Invalid(bmssperr.ErrShapeMismatch, "query graph has %d vertices, state capacity is %d", n, s.nMax)
	}
	posInf := T(math.Inf(1))
	for _, v := range s.touched {
		s.dist[v] = posInf
		s.pred[v] = NoVertex
		s.predEdge[v] = NoEdge
		s.settled[v] = false
	}
	s.touched = s.touched[:0]
	s.heap.Reset()
	return nil
}

// prepareFull resets every slot up to n, used only at construction time
// before any query has touched anything.
func (s *State[T]) prepareFull(n int) {
	posInf := T(math.Inf(1))
	for i := 0; i < n; i++ {
		s.dist[i] = posInf
		s.pred[i] = NoVertex
		s.predEdge[i] = NoEdge
		s.settled[i] = false
	}
}

// discover records v as touched the first time a query writes a finite
// distance to it, so prepare can reset only what this query actually
// disturbed.
func (s *State[T]) discover(v uint32) {
	if s.dist[v] == T(math.Inf(1)) {
		s.touched = append(s.touched, v)
	}
}

// Dist returns a borrow of the distance buffer valid until the next prepare.
func (s *State[T]) Dist(n uint32) []T { return s.dist[:n] }

// Pred returns a borrow of the predecessor buffer valid until the next
// prepare.
func (s *State[T]) Pred(n uint32) []uint32 { return s.pred[:n] }

// PredEdge returns a borrow of the predecessor-edge buffer valid until the
// next prepare.
func (s *State[T]) PredEdge(n uint32) []uint32 { return s.predEdge[:n] }

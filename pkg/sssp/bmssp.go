package sssp

import (
	"github.com/tripp-smith/bmssp/pkg/blockheap"
	"github.com/tripp-smith/bmssp/pkg/csr"
)

// Run executes the blocked-frontier BMSSP engine of spec.md §4.4 against g,
// writing into st. st must have been constructed with the heap variant
// opts.HeapVariant expects; mixing variants across calls on the same State
// is the caller's mistake to avoid, not something this engine re-checks per
// call.
//
// Each popped block settles only the entries whose key equals the block's
// smallest key; the other entries are pushed back into the heap and settled
// in a later block, once their key is the smallest one left.
//
// Validation happens before any mutation of st, so a failed call leaves the
// state exactly as it was — the fail-fast contract of spec.md §7.
func Run[T csr.Weight](g *csr.Graph, weights []T, source uint32, enabled []bool, opts Options, st *State[T]) error {
	if err := validateQuery(g, weights, source, enabled); err != nil {
		return err
	}
	if err := st.prepare(g.N); err != nil {
		return err
	}

	st.discover(source)
	st.dist[source] = 0
	st.heap.Push(source, 0)

	b := opts.blockSize(g.N)

	relax := relaxSerial[T]
	if opts.Parallel {
		relax = relaxParallel[T]
	}

	settled := make([]blockheap.Entry[T], 0, b)
	for !st.heap.IsEmpty() {
		block := st.heap.PopBlock(b)
		if len(block) == 0 {
			break
		}

		settled = settled[:0]
		for _, e := range block {
			if st.settled[e.Vertex] || e.Key > st.dist[e.Vertex] {
				continue // stale: a prior block already settled this vertex with a lower key
			}
			if e.Key > block[0].Key {
				// Not final yet: a vertex settled in this block can still lower
				// its distance, so it goes back to the heap.
				st.heap.Push(e.Vertex, e.Key)
				continue
			}
			st.settled[e.Vertex] = true
			st.dist[e.Vertex] = e.Key
			settled = append(settled, e)
		}

		relax(g, weights, enabled, opts, st, settled)
	}
	return nil
}

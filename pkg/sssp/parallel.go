package sssp

import (
	"golang.org/x/sync/errgroup"

	"github.com/tripp-smith/bmssp/pkg/blockheap"
	"github.com/tripp-smith/bmssp/pkg/csr"
)

// candidate is a proposed relaxation computed by a worker goroutine without
// touching shared state; it is applied serially after the fan-out barrier.
type candidate[T csr.Weight] struct {
	u, v, e uint32
	dNew    T
}

// relaxParallel fans the relaxation phase of a block out across
// opts.ParallelWorkers goroutines per spec.md §5: each worker computes
// candidate relaxations for its share of the just-settled vertices into a
// private buffer, touching neither st.dist nor st.heap. After the errgroup
// barrier, candidates are merged back in original settled order and applied
// serially — identical to relaxSerial's write pattern — so the settled-once
// invariant and the tie-break determinism of spec.md §4.4 hold exactly as in
// the single-threaded path.
func relaxParallel[T csr.Weight](g *csr.Graph, weights []T, enabled []bool, opts Options, st *State[T], settled []blockheap.Entry[T]) {
	workers := opts.ParallelWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(settled) {
		workers = len(settled)
	}
	if workers <= 1 {
		relaxSerial(g, weights, enabled, opts, st, settled)
		return
	}

	buffers := make([][]candidate[T], workers)
	chunk := (len(settled) + workers - 1) / workers

	var group errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if lo >= len(settled) {
			continue
		}
		if hi > len(settled) {
			hi = len(settled)
		}
		group.Go(func() error {
			buffers[w] = collectCandidates(g, weights, enabled, settled[lo:hi])
			return nil
		})
	}
	_ = group.Wait()

	for _, buf := range buffers {
		for _, c := range buf {
			if st.settled[c.v] {
				continue
			}
			if c.dNew < st.dist[c.v] {
				st.discover(c.v)
				st.dist[c.v] = c.dNew
				if opts.ReturnPredecessors {
					st.pred[c.v] = c.u
					if opts.ReturnPredecessorEdges {
						st.predEdge[c.v] = c.e
					}
				}
				st.heap.Push(c.v, c.dNew)
			}
		}
	}
}

// collectCandidates computes relaxations for a slice of settled entries
// without writing any shared state, so it is safe to run concurrently with
// other workers over disjoint slices.
func collectCandidates[T csr.Weight](g *csr.Graph, weights []T, enabled []bool, entries []blockheap.Entry[T]) []candidate[T] {
	var out []candidate[T]
	for _, entry := range entries {
		start, end := g.EdgesFrom(entry.Vertex)
		for e := start; e < end; e++ {
			if enabled != nil && !enabled[e] {
				continue
			}
			v := g.Neighbors[e]
			out = append(out, candidate[T]{u: entry.Vertex, v: v, e: e, dNew: entry.Key + weights[e]})
		}
	}
	return out
}

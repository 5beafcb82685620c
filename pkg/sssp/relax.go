package sssp

import (
	"github.com/tripp-smith/bmssp/pkg/blockheap"
	"github.com/tripp-smith/bmssp/pkg/csr"
)

// relaxSerial is the default, single-threaded relaxation phase of spec.md
// §4.4d: for each just-settled vertex, walk its out-edges in CSR order and
// push improvements into the heap.
func relaxSerial[T csr.Weight](g *csr.Graph, weights []T, enabled []bool, opts Options, st *State[T], settled []blockheap.Entry[T]) {
	for _, e := range settled {
		relaxVertex(g, weights, enabled, opts, st, e.Vertex, e.Key)
	}
}

// relaxVertex relaxes every enabled out-edge of u, whose settled distance is
// d. Shared by the serial and parallel relaxation phases.
func relaxVertex[T csr.Weight](g *csr.Graph, weights []T, enabled []bool, opts Options, st *State[T], u uint32, d T) {
	start, end := g.EdgesFrom(u)
	for e := start; e < end; e++ {
		if enabled != nil && !enabled[e] {
			continue
		}
		v := g.Neighbors[e]
		if st.settled[v] {
			continue
		}
		dNew := d + weights[e]
		if dNew < st.dist[v] {
			st.discover(v)
			st.dist[v] = dNew
			if opts.ReturnPredecessors {
				st.pred[v] = u
				if opts.ReturnPredecessorEdges {
					st.predEdge[v] = e
				}
			}
			st.heap.Push(v, dNew)
		}
	}
}

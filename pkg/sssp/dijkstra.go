package sssp

import (
	"github.com/tripp-smith/bmssp/pkg/csr"
)

// Dijkstra runs the classic label-setting oracle of spec.md §4.3 against st,
// which must already be sized for g. It is the correctness reference for
// BMSSP and the fallback path when callers want the simplest possible
// traversal. opts.HeapVariant selects the priority structure; predecessor
// and predecessor-edge tracking follow opts exactly as BMSSP does.
func Dijkstra[T csr.Weight](g *csr.Graph, weights []T, source uint32, enabled []bool, opts Options, st *State[T]) error {
	if err := validateQuery(g, weights, source, enabled); err != nil {
		return err
	}
	if err := st.prepare(g.N); err != nil {
		return err
	}

	st.discover(source)
	st.dist[source] = 0
	st.heap.Push(source, 0)

	for !st.heap.IsEmpty() {
		block := st.heap.PopBlock(1)
		if len(block) == 0 {
			break
		}
		u, d := block[0].Vertex, block[0].Key
		if st.settled[u] || d > st.dist[u] {
			continue // stale: already settled with a lower or equal key
		}
		st.settled[u] = true
		st.dist[u] = d

		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			if enabled != nil && !enabled[e] {
				continue
			}
			v := g.Neighbors[e]
			if st.settled[v] {
				continue
			}
			w := weights[e]
			dNew := d + w
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
	return nil
}

package sssp

import (
	"testing"

	"github.com/tripp-smith/bmssp/pkg/csr"
)

// buildGraph constructs a CSR graph and parallel weight array from an edge
// list via csr.Build, failing the test on any validation error. Edges are
// (u, v, weight) triples; edge identity in the returned weight slice matches
// the graph's own edge indexing, not the input order.
func buildGraph(t *testing.T, n uint32, edges [][3]float64) (*csr.Graph, []float64) {
	t.Helper()
	es := make([]csr.Edge[float64], len(edges))
	for i, e := range edges {
		es[i] = csr.Edge[float64]{U: uint32(e[0]), V: uint32(e[1]), Weight: e[2]}
	}
	g, w, err := csr.Build(n, es, csr.DedupeMinWeight)
	if err != nil {
		t.Fatalf("csr.Build: %v", err)
	}
	return g, w
}

// edgeIndex finds the CSR edge index for (u, v), failing the test if no
// such edge exists. Graphs built with parallel edges would need the caller
// to disambiguate further; none of the test graphs here do.
func edgeIndex(t *testing.T, g *csr.Graph, u, v uint32) uint32 {
	t.Helper()
	start, end := g.EdgesFrom(u)
	for e := start; e < end; e++ {
		if g.Neighbors[e] == v {
			return e
		}
	}
	t.Fatalf("no edge (%d, %d) in graph", u, v)
	return 0
}

package sssp

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// TestGonumCrossCheck certifies BMSSP's output against a second, independent
// Dijkstra implementation (gonum's graph/path.DijkstraFrom) rather than this
// module's own oracle, closing the risk that both engines here share a bug.
func TestGonumCrossCheck(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := uint32(5 + r.Intn(30))
		g, w := randomGraph(r, n, int(n)*3)
		source := uint32(r.Intn(int(n)))

		gn := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for v := uint32(0); v < n; v++ {
			gn.AddNode(simple.Node(int64(v)))
		}
		for u := uint32(0); u < n; u++ {
			start, end := g.EdgesFrom(u)
			for e := start; e < end; e++ {
				v := g.Neighbors[e]
				if u == v {
					continue // self-loops never shorten a path, and gonum's simple graphs reject them
				}
				weight := w[e]
				if existing := gn.WeightedEdge(int64(u), int64(v)); existing != nil && existing.Weight() <= weight {
					continue
				}
				gn.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(u)), T: simple.Node(int64(v)), W: weight})
			}
		}

		shortest := path.DijkstraFrom(simple.Node(int64(source)), gn)

		opts := DefaultOptions()
		st := NewState[float64](n, opts.HeapVariant)
		if err := Run(g, w, source, nil, opts, st); err != nil {
			t.Fatalf("trial %d: Run: %v", trial, err)
		}
		dist := st.Dist(n)

		for v := uint32(0); v < n; v++ {
			want := shortest.WeightTo(int64(v))
			got := float64(dist[v])
			if math.IsInf(want, 1) || math.IsInf(got, 1) {
				if math.IsInf(want, 1) != math.IsInf(got, 1) {
					t.Fatalf("trial %d vertex %d: reachability mismatch gonum=%v bmssp=%v", trial, v, want, got)
				}
				continue
			}
			if !scalar.EqualWithinAbsOrRel(want, got, doubleTol, doubleTol) {
				t.Fatalf("trial %d vertex %d: gonum=%v bmssp=%v exceeds tolerance", trial, v, want, got)
			}
		}
	}
}

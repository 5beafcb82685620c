// Package csr implements the compressed-sparse-row adjacency representation
// the engine queries run against: an immutable offset vector plus a
// concatenated neighbor vector, built once and shared read-only across any
// number of queries.
package csr

import (
	"math"

	"github.com/tripp-smith/bmssp/pkg/bmssperr"
)

// Weight is the numeric precision the engine is generic over. Callers select
// single or double precision by the type of the weight array; mixing
// precisions within one query is a compile-time error, not a runtime check.
type Weight interface {
	~float32 | ~float64
}

// Graph is a directed graph in CSR (Compressed Sparse Row) format. It holds
// topology only — edge weights and the enabled-mask are supplied per query,
// since the engine is designed for a fixed topology queried repeatedly
// against changing weight vectors.
type Graph struct {
	N         uint32   // vertex count
	Offsets   []uint32 // length N+1, monotonically non-decreasing, Offsets[0]=0, Offsets[N]=len(Neighbors)
	Neighbors []uint32 // length m, each entry in [0, N)
}

// NumVertices returns the vertex count n.
func (g *Graph) NumVertices() uint32 { return g.N }

// NumEdges returns the edge count m.
func (g *Graph) NumEdges() int { return len(g.Neighbors) }

// EdgesFrom returns the half-open edge-index range [start, end) for vertex u's
// out-edges into Neighbors (and therefore into any parallel weight/enabled array).
func (g *Graph) EdgesFrom(u uint32) (start, end uint32) {
	return g.Offsets[u], g.Offsets[u+1]
}

// NewFromArrays builds a Graph from pre-built CSR arrays and validates its
// shape per spec: Offsets has length n+1, is monotonically non-decreasing,
// starts at 0, ends at len(neighbors), and every neighbor is in [0, n).
func NewFromArrays(n uint32, offsets, neighbors []uint32) (*Graph, error) {
	if n == 0 {
		return nil, bmssperr.Invalid(bmssperr.ErrEmptyGraph, "n must be >= 1")
	}
	if len(offsets) != int(n)+1 {
		return nil, bmssperr.Invalid(bmssperr.ErrShapeMismatch,
			"offsets length %d != n+1 (%d)", len(offsets), n+1)
	}
	if offsets[0] != 0 {
		return nil, bmssperr.Invalid(bmssperr.ErrShapeMismatch,
			"offsets[0] = %d, want 0", offsets[0])
	}
	if int(offsets[n]) != len(neighbors) {
		return nil, bmssperr.Invalid(bmssperr.ErrShapeMismatch,
			"offsets[n] = %d != len(neighbors) = %d", offsets[n], len(neighbors))
	}
	for i := uint32(0); i < n; i++ {
		if offsets[i] > offsets[i+1] {
			return nil, bmssperr.Invalid(bmssperr.ErrShapeMismatch,
				"offsets not monotonic at %d: %d > %d", i, offsets[i], offsets[i+1])
		}
	}
	for e, v := range neighbors {
		if v >= n {
			return nil, bmssperr.InvalidAt(bmssperr.ErrInvalidVertex, e, float64(v))
		}
	}
	return &Graph{N: n, Offsets: offsets, Neighbors: neighbors}, nil
}

// ValidateWeights checks that weights has length NumEdges() and every entry
// is finite and non-negative, per spec.md §4.1's per-query validation pass.
func ValidateWeights[T Weight](g *Graph, weights []T) error {
	if len(weights) != g.NumEdges() {
		return bmssperr.Invalid(bmssperr.ErrShapeMismatch,
			"weights length %d != num edges %d", len(weights), g.NumEdges())
	}
	for i, w := range weights {
		f := float64(w)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return bmssperr.InvalidAt(bmssperr.ErrNonFiniteWeight, i, f)
		}
		if w < 0 {
			return bmssperr.InvalidAt(bmssperr.ErrNegativeWeight, i, f)
		}
	}
	return nil
}

// ValidateEnabled checks that an optional enabled-mask, when present, has
// length NumEdges().
func ValidateEnabled(g *Graph, enabled []bool) error {
	if enabled == nil {
		return nil
	}
	if len(enabled) != g.NumEdges() {
		return bmssperr.Invalid(bmssperr.ErrShapeMismatch,
			"enabled mask length %d != num edges %d", len(enabled), g.NumEdges())
	}
	return nil
}

// ValidateSource checks that source is a valid vertex index.
func ValidateSource(g *Graph, source uint32) error {
	if source >= g.N {
		return bmssperr.Invalid(bmssperr.ErrInvalidSource,
			"source %d, num vertices %d", source, g.N)
	}
	return nil
}

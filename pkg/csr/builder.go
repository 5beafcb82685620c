package csr

import (
	"log"
	"sort"

	"github.com/tripp-smith/bmssp/pkg/bmssperr"
)

// DedupePolicy selects how Build collapses parallel (u, v) edges in an input
// edge list into a single CSR entry.
type DedupePolicy int

const (
	// DedupeMinWeight keeps the smallest-weighted occurrence of (u, v); when
	// weights are absent, behaves like DedupeFirst.
	DedupeMinWeight DedupePolicy = iota
	// DedupeFirst keeps the first occurrence of (u, v) in input order.
	DedupeFirst
	// DedupeLast keeps the last occurrence of (u, v) in input order.
	DedupeLast
)

// Edge is one entry of the edge list Build consumes: a directed (u, v) pair
// and its weight.
type Edge[T Weight] struct {
	U, V   uint32
	Weight T
}

// largeInputLogThreshold is the edge count above which Build logs progress
// through the sort/dedupe pass — the one phase of the library expensive
// enough to be worth narrating, mirroring how the teacher only logs around
// its own slow one-shot preprocessing step.
const largeInputLogThreshold = 1_000_000

// Build constructs a Graph and its parallel weight array from an edge list,
// per spec.md §4.1: validate vertex bounds, sort stably by (u, v), collapse
// duplicates per policy, then emit offsets/neighbors/weights in sorted order.
func Build[T Weight](n uint32, edges []Edge[T], policy DedupePolicy) (*Graph, []T, error) {
	if n == 0 {
		return nil, nil, bmssperr.Invalid(bmssperr.ErrEmptyGraph, "n must be >= 1")
	}
	for i, e := range edges {
		if e.U >= n || e.V >= n {
			return nil, nil, bmssperr.InvalidAt(bmssperr.ErrInvalidVertex, i, float64(e.U))
		}
	}

	large := len(edges) > largeInputLogThreshold
	if large {
		log.Printf("csr: sorting %d edges for CSR construction", len(edges))
	}

	// Stable sort by (u, v); ties preserve input order so DedupeFirst/Last
	// can rely on position alone.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ei, ej := edges[order[i]], edges[order[j]]
		if ei.U != ej.U {
			return ei.U < ej.U
		}
		return ei.V < ej.V
	})

	type kept struct {
		v uint32
		w T
	}
	var deduped []struct {
		u uint32
		kept
	}

	i := 0
	for i < len(order) {
		j := i
		u, v := edges[order[i]].U, edges[order[i]].V
		for j < len(order) && edges[order[j]].U == u && edges[order[j]].V == v {
			j++
		}
		chosen := pickDuplicate(edges, order[i:j], policy)
		deduped = append(deduped, struct {
			u uint32
			kept
		}{u: u, kept: kept{v: v, w: chosen}})
		i = j
	}

	if large {
		log.Printf("csr: %d unique edges after dedupe", len(deduped))
	}

	numEdges := uint32(len(deduped))
	offsets := make([]uint32, n+1)
	neighbors := make([]uint32, numEdges)
	weights := make([]T, numEdges)

	for _, d := range deduped {
		offsets[d.u+1]++
	}
	for u := uint32(1); u <= n; u++ {
		offsets[u] += offsets[u-1]
	}
	for idx, d := range deduped {
		neighbors[idx] = d.v
		weights[idx] = d.w
	}

	g := &Graph{N: n, Offsets: offsets, Neighbors: neighbors}
	return g, weights, nil
}

// pickDuplicate selects which occurrence among a run of identical (u, v)
// pairs survives, per policy.
func pickDuplicate[T Weight](edges []Edge[T], idxs []int, policy DedupePolicy) T {
	switch policy {
	case DedupeFirst:
		return edges[idxs[0]].Weight
	case DedupeLast:
		return edges[idxs[len(idxs)-1]].Weight
	default: // DedupeMinWeight
		best := edges[idxs[0]].Weight
		for _, idx := range idxs[1:] {
			if edges[idx].Weight < best {
				best = edges[idx].Weight
			}
		}
		return best
	}
}

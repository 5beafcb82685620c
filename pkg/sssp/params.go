package sssp

import "math"

// minBlockSize and maxBlockSize bound the derived block size regardless of n,
// matching the "tunable floor and ceiling" spec.md §4.4 calls for.
const (
	minBlockSize = 1
	maxBlockSize = 256
)

// blockSizeFor derives B = max(1, ceil(log2(max(n, 2)))), clamped to
// [minBlockSize, maxBlockSize]. n is the vertex count of the query, not the
// state's n_max.
func blockSizeFor(n uint32) int {
	nn := n
	if nn < 2 {
		nn = 2
	}
	b := int(math.Ceil(math.Log2(float64(nn))))
	if b < minBlockSize {
		b = minBlockSize
	}
	if b > maxBlockSize {
		b = maxBlockSize
	}
	return b
}

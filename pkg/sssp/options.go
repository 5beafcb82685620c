package sssp

import "runtime"

// HeapVariant selects which BlockHeap implementation backs a query.
type HeapVariant int

const (
	// HeapLazy is the default: the lazy binary-heap with version-stamped
	// decrease-key, per spec.md §4.2(b).
	HeapLazy HeapVariant = iota
	// HeapOrdered is the balanced-ordered-container variant, §4.2(a).
	HeapOrdered
)

// Options holds per-query configuration for the BMSSP engine.
type Options struct {
	ReturnPredecessors     bool
	ReturnPredecessorEdges bool
	HeapVariant            HeapVariant
	// BlockSize overrides the derived block size when > 0.
	BlockSize int
	// Parallel enables fan-out of the relaxation phase across ParallelWorkers
	// goroutines. The default is single-threaded, per spec.md §9: block
	// boundaries are the only safe parallel region and small graphs lose to
	// synchronization overhead.
	Parallel        bool
	ParallelWorkers int
}

// DefaultOptions returns the engine's default configuration: lazy heap,
// predecessors off, single-threaded.
func DefaultOptions() Options {
	return Options{
		ReturnPredecessors:     false,
		ReturnPredecessorEdges: false,
		HeapVariant:            HeapLazy,
		BlockSize:              0,
		Parallel:               false,
		ParallelWorkers:        runtime.NumCPU(),
	}
}

func (o Options) blockSize(n uint32) int {
	if o.BlockSize > 0 {
		return o.BlockSize
	}
	return blockSizeFor(n)
}

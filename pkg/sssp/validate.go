package sssp

import "github.com/tripp-smith/bmssp/pkg/csr"

// validateQuery runs the full entry validation spec.md §4.1/§7 requires on
// every query path: graph shape, weight finiteness and sign, mask length,
// and source range. It touches nothing in the reusable state, so a failure
// here leaves st untouched per the fail-fast contract.
func validateQuery[T csr.Weight](g *csr.Graph, weights []T, source uint32, enabled []bool) error {
	if _, err := csr.NewFromArrays(g.N, g.Offsets, g.Neighbors); err != nil {
		return err
	}
	if err := csr.ValidateWeights(g, weights); err != nil {
		return err
	}
	if err := csr.ValidateEnabled(g, enabled); err != nil {
		return err
	}
	if err := csr.ValidateSource(g, source); err != nil {
		return err
	}
	return nil
}

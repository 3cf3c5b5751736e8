package tsp

// Solve routes to the solver selected by opts.Algo, validating the selector
// at the boundary.
//
// Contracts:
//   - g must hold ≥ 2 cities and ≥ 1 edge (ErrTooFewCities / ErrNoEdges).
//   - opts.Algo must be one of the closed enumeration; anything else is
//     ErrUnknownAlgorithm.
//   - opts.Seed only affects Genetic.
//
// The call is synchronous and runs to completion: the genetic solver always
// spends its full generation budget, and Held–Karp above its size guard
// transparently substitutes the greedy result. Callers needing
// responsiveness must run Solve off their interactive thread.
func Solve(g *Graph, opts Options) (Result, error) {
	switch opts.Algo {
	case NearestNeighbor:
		return SolveNearestNeighbor(g)
	case Genetic:
		return SolveGenetic(g, opts.Seed)
	case DynamicProgramming:
		return SolveHeldKarp(g)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}

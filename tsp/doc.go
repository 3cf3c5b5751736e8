// Package tsp provides Travelling Salesman Problem solvers over a bounded,
// user-built city graph.
//
// It includes three algorithms on a symmetric weighted graph:
//
//   - SolveNearestNeighbor — greedy tour construction.
//
//   - Complexity: O(n²)
//
//   - Degrades to a partial tour (len(Tour) < CityCount) on a
//     disconnected graph instead of failing.
//
//   - SolveGenetic — population-based metaheuristic.
//
//   - Population 100, 500 generations, swap mutation at 0.01,
//     tournament selection of 5, single-elite survival.
//
//   - SolveHeldKarp — exact dynamic programming over bitmask subsets.
//
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory
//
//   - Above 20 cities it transparently defers to SolveNearestNeighbor
//     (fallback, not failure).
//
// The Graph stores a dense weight matrix plus a parallel existence matrix;
// a logically absent edge reads as math.Inf(1) through Distance, never as
// zero, so solvers never special-case existence. City indices are compacted
// on deletion: removing city i shifts every index above i down by one and
// invalidates previously stored indices.
//
// Solve(g, opts) dispatches on the closed Algorithm enumeration
// {NearestNeighbor, Genetic, DynamicProgramming}; unknown selectors are
// rejected with ErrUnknownAlgorithm.
//
// All solvers are synchronous, allocate their working buffers per call, and
// share no state between invocations. Randomized search is deterministic
// per Options.Seed (seed 0 selects a fixed default stream).
package tsp

package tsp

// Test-bridge (white-box): expose the evolutionary loop and its operators
// to tsp_test without widening the production API. The wrappers are thin
// pass-throughs; keep all test-only bridges co-located here.

// EvolveObserved runs the genetic search with a per-generation observer so
// tests can assert the elitism invariant (population best never worsens).
func EvolveObserved(g *Graph, seed int64, onGeneration func(gen int, bestFitness float64)) []int {
	n, err := validateInstance(g)
	if err != nil {
		return nil
	}
	return evolve(g, n, rngFromSeed(seed), onGeneration).tour
}

// CrossoverForTest exposes the contiguous-segment crossover operator.
var CrossoverForTest = crossover

// FitnessForTest exposes the 1/(cost+1) fitness mapping.
var FitnessForTest = fitnessOf

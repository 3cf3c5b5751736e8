package tsp

import "math/rand"

// SolveGenetic approximates the minimum-cost Hamiltonian cycle by
// evolutionary search with a fixed budget: population 100, 500 generations,
// tournament selection of 5, single contiguous-segment crossover, swap
// mutation at probability 0.01 per offspring, and single-elite survival.
//
// An individual is a permutation of all city indices with cached fitness
// 1/(cost+1): strictly positive, monotonically decreasing in cost, and
// naturally 0 for tours that cross an absent (+Inf) edge. Elitism copies
// the best individual seen so far into slot 0 of every new generation, so
// the population's best fitness never decreases. The best genome across
// the whole run is returned with its cost recomputed independently.
//
// Determinism: the search stream derives entirely from seed (0 ⇒ fixed
// default), so equal inputs and seeds reproduce the same tour.
//
// Complexity: O(generations · population · n) time, O(population · n) space.
func SolveGenetic(g *Graph, seed int64) (Result, error) {
	n, err := validateInstance(g)
	if err != nil {
		return Result{}, err
	}

	best := evolve(g, n, rngFromSeed(seed), nil)
	cost, err := TourCost(g, best.tour)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: best.tour, Cost: cost}, nil
}

// individual is one candidate tour with cached fitness.
type individual struct {
	tour    []int
	fitness float64
}

// evolve runs the full generation budget and returns the best individual
// seen across the run. onGeneration, when non-nil, observes the population
// best after every generation (used by the elitism invariant tests).
func evolve(g *Graph, n int, rng *rand.Rand, onGeneration func(gen int, bestFitness float64)) individual {
	// --- 1. Seed the population with uniform random permutations ---
	population := make([]individual, populationSize)
	for i := range population {
		tour := identityPerm(n)
		shuffleIntsInPlace(tour, rng)
		population[i] = individual{tour: tour, fitness: fitnessOf(g, tour)}
	}

	best := cloneIndividual(fittest(population))

	// --- 2. Fixed generation budget, no convergence check ---
	next := make([]individual, populationSize)
	for gen := 0; gen < generations; gen++ {
		// Elitism: the best-so-far survives unmodified in slot 0.
		next[0] = cloneIndividual(best)

		for i := 1; i < populationSize; i++ {
			parent1 := tournament(population, rng)
			parent2 := tournament(population, rng)

			child := crossover(parent1.tour, parent2.tour, n, rng)
			mutate(child, rng)
			next[i] = individual{tour: child, fitness: fitnessOf(g, child)}
		}

		population, next = next, population

		if top := fittest(population); top.fitness > best.fitness {
			best = cloneIndividual(top)
		}
		if onGeneration != nil {
			onGeneration(gen, fittest(population).fitness)
		}
	}

	return best
}

// fitnessOf computes 1/(cost+1): positive, finite, decreasing in cost.
func fitnessOf(g *Graph, tour []int) float64 {
	cost, err := TourCost(g, tour)
	if err != nil {
		return 0 // unreachable for in-range permutations; defensive only
	}
	return 1.0 / (cost + 1.0)
}

// fittest returns the individual with the highest cached fitness.
func fittest(population []individual) individual {
	best := population[0]
	for _, ind := range population[1:] {
		if ind.fitness > best.fitness {
			best = ind
		}
	}
	return best
}

// cloneIndividual deep-copies the genome so later generations cannot
// mutate the elite or the tracked best through slice aliasing.
func cloneIndividual(ind individual) individual {
	tour := make([]int, len(ind.tour))
	copy(tour, ind.tour)
	return individual{tour: tour, fitness: ind.fitness}
}

// tournament draws tournamentSize individuals with replacement and keeps
// the fittest.
func tournament(population []individual, rng *rand.Rand) individual {
	best := population[rng.Intn(len(population))]
	for i := 1; i < tournamentSize; i++ {
		if ind := population[rng.Intn(len(population))]; ind.fitness > best.fitness {
			best = ind
		}
	}
	return best
}

// crossover copies the random contiguous slice [start,end) of parent1 into
// the child at the same positions, then fills the remaining slots scanning
// parent2 cyclically from end, skipping cities already placed, inserting in
// encountered order starting at position end mod n. The child is always a
// valid permutation: the free slots are exactly the cyclic complement of
// [start,end) and exactly that many parent2 cities survive the skip.
func crossover(parent1, parent2 []int, n int, rng *rand.Rand) []int {
	start := rng.Intn(n)
	end := start + 1 + rng.Intn(n-start) // (start, n]

	child := make([]int, n)
	used := make([]bool, n)
	for i := start; i < end; i++ {
		child[i] = parent1[i]
		used[parent1[i]] = true
	}

	pos := end % n
	for i := 0; i < n; i++ {
		city := parent2[(end+i)%n]
		if used[city] {
			continue
		}
		child[pos] = city
		used[city] = true
		pos = (pos + 1) % n
	}

	return child
}

// mutate swaps two uniformly random positions with probability mutationRate
// per offspring.
func mutate(tour []int, rng *rand.Rand) {
	if rng.Float64() >= mutationRate {
		return
	}
	i, j := rng.Intn(len(tour)), rng.Intn(len(tour))
	tour[i], tour[j] = tour[j], tour[i]
}

package tsp

import "math"

// SolveNearestNeighbor constructs a tour greedily: starting at city 0, it
// repeatedly moves to the nearest unvisited city reachable by an existing
// edge. Absent edges cost +Inf and are never chosen.
//
// When no reachable unvisited city remains, the tour terminates early and
// covers only the reached subset — graceful degradation on a disconnected
// graph, not a failure. Callers needing a complete tour must compare
// len(Tour) against g.CityCount(). Cost always includes the implicit
// closing edge, which is +Inf when that edge is absent.
//
// Errors: ErrTooFewCities (n < 2), ErrNoEdges (no edge at all).
//
// Complexity: O(n²) time, O(n) space.
func SolveNearestNeighbor(g *Graph) (Result, error) {
	n, err := validateInstance(g)
	if err != nil {
		return Result{}, err
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n)

	current := 0
	tour = append(tour, current)
	visited[current] = true

	for len(tour) < n {
		nearest := -1
		minDist := math.Inf(1)
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			if d := g.Distance(current, i); d < minDist {
				minDist = d
				nearest = i
			}
		}
		if nearest < 0 {
			break // no reachable unvisited city: partial tour
		}
		tour = append(tour, nearest)
		visited[nearest] = true
		current = nearest
	}

	cost, err := TourCost(g, tour)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: cost}, nil
}

// validateInstance checks the shared solver preconditions and returns the
// city count.
func validateInstance(g *Graph) (int, error) {
	n := g.CityCount()
	if n < 2 {
		return 0, ErrTooFewCities
	}
	if g.EdgeCount() == 0 {
		return 0, ErrNoEdges
	}
	return n, nil
}

package tsp

// TourCost sums the edge weights along tour, including the implicit closing
// edge tour[len-1]→tour[0]. Absent edges contribute math.Inf(1), so a tour
// crossing a missing edge costs +Inf rather than erroring.
//
// Contract:
//   - every index must be a valid city (ErrCityNotFound otherwise);
//   - len(tour) ≥ 1; the closing edge of a single-city tour is a self-pair
//     and reads as +Inf like any absent edge.
//
// Complexity: O(len(tour)).
func TourCost(g *Graph, tour []int) (float64, error) {
	n := g.CityCount()
	for _, c := range tour {
		if c < 0 || c >= n {
			return 0, ErrCityNotFound
		}
	}
	if len(tour) == 0 {
		return 0, nil
	}

	var cost float64
	for i := range tour {
		next := (i + 1) % len(tour)
		cost += g.Distance(tour[i], tour[next])
	}

	return cost, nil
}

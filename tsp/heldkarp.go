package tsp

import "math"

// SolveHeldKarp finds the exact minimum-cost Hamiltonian cycle by dynamic
// programming over vertex subsets, fixing city 0 as the start (valid
// because cycle cost is rotation-invariant).
//
// dp[mask][last] is the minimum cost of starting at 0, visiting exactly the
// cities in bitmask mask (which must contain 0 and last), and ending at
// last. parent[mask][last] records the predecessor for reconstruction.
// The answer closes the cycle by minimizing dp[full][last] + w(last, 0).
//
// Two graceful degradations, neither an error:
//   - more than 20 cities: the 2ⁿ·n state space is prohibitive, so the call
//     defers entirely to SolveNearestNeighbor;
//   - no Hamiltonian cycle exists (disconnected instance): the greedy
//     solver's partial tour is returned instead.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space, bounded by the size guard.
func SolveHeldKarp(g *Graph) (Result, error) {
	n, err := validateInstance(g)
	if err != nil {
		return Result{}, err
	}
	if n > heldKarpMaxCities {
		return SolveNearestNeighbor(g)
	}

	// --- 1. Allocate DP and parent tables ---
	size := 1 << n
	dp := make([][]float64, size)
	parent := make([][]int, size)
	for mask := 0; mask < size; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}

	// Base case: standing at 0 having visited only {0}.
	const startMask = 1
	dp[startMask][0] = 0

	// --- 2. Fill DP over all masks containing city 0 ---
	for mask := startMask; mask < size; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for last := 0; last < n; last++ {
			if mask&(1<<last) == 0 || math.IsInf(dp[mask][last], 1) {
				continue
			}
			for next := 0; next < n; next++ {
				if mask&(1<<next) != 0 {
					continue
				}
				d := g.Distance(last, next)
				if math.IsInf(d, 1) {
					continue
				}
				nextMask := mask | 1<<next
				if cand := dp[mask][last] + d; cand < dp[nextMask][next] {
					dp[nextMask][next] = cand
					parent[nextMask][next] = last
				}
			}
		}
	}

	// --- 3. Close the cycle back to city 0 ---
	fullMask := size - 1
	bestCost := math.Inf(1)
	bestLast := -1
	for last := 1; last < n; last++ {
		if cost := dp[fullMask][last] + g.Distance(last, 0); cost < bestCost {
			bestCost = cost
			bestLast = last
		}
	}
	if bestLast < 0 || math.IsInf(bestCost, 1) {
		// No Hamiltonian cycle: degrade to the greedy partial tour.
		return SolveNearestNeighbor(g)
	}

	// --- 4. Reconstruct the tour by walking parents back to city 0 ---
	tour := make([]int, n)
	mask := fullMask
	cur := bestLast
	for i := n - 1; i >= 1; i-- {
		tour[i] = cur
		prev := parent[mask][cur]
		mask ^= 1 << cur
		cur = prev
	}
	tour[0] = 0

	return Result{Tour: tour, Cost: bestCost}, nil
}

package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solvkit/tsp"
)

// requirePermutation asserts tour visits each of 0..n-1 exactly once.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n)
	seen := make([]bool, n)
	for _, c := range tour {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, n)
		require.False(t, seen[c], "city %d visited twice", c)
		seen[c] = true
	}
}

func TestSolveNearestNeighbor_Validation(t *testing.T) {
	g := tsp.NewGraph()
	_, err := tsp.SolveNearestNeighbor(g)
	require.ErrorIs(t, err, tsp.ErrTooFewCities)

	_, _ = g.AddCity(0, 0)
	_, err = tsp.SolveNearestNeighbor(g)
	require.ErrorIs(t, err, tsp.ErrTooFewCities)

	_, _ = g.AddCity(1, 0)
	_, err = tsp.SolveNearestNeighbor(g)
	require.ErrorIs(t, err, tsp.ErrNoEdges)
}

func TestSolveNearestNeighbor_StartsAtZeroAndIsGreedy(t *testing.T) {
	g := square4(t, 10)
	res, err := tsp.SolveNearestNeighbor(g)
	require.NoError(t, err)

	// from 0 the cheapest moves are always the unit sides
	require.Equal(t, []int{0, 1, 2, 3}, res.Tour)
	require.InDelta(t, 4.0, res.Cost, 1e-12)
}

// TestSolveNearestNeighbor_PermutationOnComplete: on any fully connected
// instance the greedy tour is a full permutation of the city indices.
func TestSolveNearestNeighbor_PermutationOnComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 10; trial++ {
		n := 2 + rng.Intn(19)
		g, err := tsp.RandomInstance(n, 100, 100, rng.Int63()+1)
		require.NoError(t, err)

		res, err := tsp.SolveNearestNeighbor(g)
		require.NoError(t, err)
		requirePermutation(t, res.Tour, n)
		require.Equal(t, 0, res.Tour[0])

		// round-trip: reported cost equals independent recomputation
		recomputed, err := tsp.TourCost(g, res.Tour)
		require.NoError(t, err)
		require.Equal(t, recomputed, res.Cost)
	}
}

// TestSolveNearestNeighbor_DisconnectedPartial: two components joined by no
// edge yield a short tour over the reachable subset, not an error.
func TestSolveNearestNeighbor_DisconnectedPartial(t *testing.T) {
	g := tsp.NewGraph()
	for i := 0; i < 4; i++ {
		_, err := g.AddCity(float64(i), 0)
		require.NoError(t, err)
	}
	// component {0,1} and component {2,3}
	require.NoError(t, g.SetEdge(0, 1, 1))
	require.NoError(t, g.SetEdge(2, 3, 1))

	res, err := tsp.SolveNearestNeighbor(g)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Tour)
	require.Less(t, len(res.Tour), g.CityCount())

	// the closing edge 1→0 exists here, so the partial cost is finite
	require.InDelta(t, 2.0, res.Cost, 1e-12)
}

func TestSolveNearestNeighbor_PartialWithInfiniteClosing(t *testing.T) {
	g := tsp.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddCity(float64(i), 0)
		require.NoError(t, err)
	}
	// a path 0–1–2 with no way back and city 2 dead-ending the greedy walk
	require.NoError(t, g.SetEdge(0, 1, 1))
	require.NoError(t, g.SetEdge(1, 2, 1))

	res, err := tsp.SolveNearestNeighbor(g)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Tour)
	require.True(t, math.IsInf(res.Cost, 1)) // closing edge 2→0 is absent
}

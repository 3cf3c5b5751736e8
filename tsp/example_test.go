package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/solvkit/tsp"
)

// ExampleSolve builds a unit square with expensive diagonals and solves it
// exactly: the optimal cycle walks the four sides.
func ExampleSolve() {
	g := tsp.NewGraph()
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		g.AddCity(p[0], p[1])
	}
	for _, e := range [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1},
		{0, 2, 9}, {1, 3, 9},
	} {
		g.SetEdge(int(e[0]), int(e[1]), e[2])
	}

	res, err := tsp.Solve(g, tsp.Options{Algo: tsp.DynamicProgramming})
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("tour:", res.Tour)
	fmt.Println("cost:", res.Cost)
	// Output:
	// tour: [0 3 2 1]
	// cost: 4
}

// ExampleGraph_RemoveCity shows index compaction: deleting a city shifts
// every later index down by one and keeps surviving edges attached to the
// same cities.
func ExampleGraph_RemoveCity() {
	g := tsp.NewGraph()
	g.AddCity(0, 0) // index 0
	g.AddCity(1, 0) // index 1
	g.AddCity(2, 0) // index 2
	g.SetEdge(1, 2, 5)

	g.RemoveCity(0) // former cities 1 and 2 are now 0 and 1

	fmt.Println("cities:", g.CityCount())
	fmt.Println("weight:", g.Distance(0, 1))
	// Output:
	// cities: 2
	// weight: 5
}

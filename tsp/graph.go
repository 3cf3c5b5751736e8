package tsp

import (
	"fmt"
	"math"
)

// City is one vertex of the tour graph. X and Y exist for the rendering
// collaborator and for auto-connect weights; no solver reads them.
type City struct {
	Name string
	X, Y float64
}

// Graph is a caller-owned weighted city graph: an insertion-ordered city
// sequence plus dense symmetric weight and existence matrices over the
// bounded index universe [0, MaxCities).
//
// Indices are positional: RemoveCity compacts the sequence, shifting every
// subsequent index down by one. Any index held across a removal is invalid.
//
// The zero value is not ready for use; construct with NewGraph.
type Graph struct {
	cities  []City
	nameSeq int // monotonic counter for auto-assigned names

	weight [MaxCities][MaxCities]float64
	exists [MaxCities][MaxCities]bool

	autoConnect bool
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithAutoConnect makes AddCity connect each new city to every existing one
// with the Euclidean distance between their positions as the weight.
func WithAutoConnect() GraphOption {
	return func(g *Graph) { g.autoConnect = true }
}

// NewGraph returns an empty Graph with the given options applied in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{cities: make([]City, 0, 8)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddCity appends a city at (x, y) and returns its index. Names are
// auto-assigned "C0", "C1", ... from a counter that never reuses a name,
// even after deletions.
// Returns ErrTooManyCities when the universe is full.
// Complexity: O(n) with auto-connect, O(1) otherwise.
func (g *Graph) AddCity(x, y float64) (int, error) {
	if len(g.cities) >= MaxCities {
		return 0, ErrTooManyCities
	}

	idx := len(g.cities)
	g.cities = append(g.cities, City{
		Name: fmt.Sprintf("C%d", g.nameSeq),
		X:    x,
		Y:    y,
	})
	g.nameSeq++

	if g.autoConnect {
		for i := 0; i < idx; i++ {
			d := math.Hypot(x-g.cities[i].X, y-g.cities[i].Y)
			g.weight[idx][i], g.weight[i][idx] = d, d
			g.exists[idx][i], g.exists[i][idx] = true, true
		}
	}

	return idx, nil
}

// RemoveCity deletes the city at index i, compacting the sequence: every
// city after i shifts down one index, and the weight/existence matrices
// shift with it, so surviving edges keep joining the same cities. All
// previously stored indices are invalidated by this call.
// Complexity: O(n²).
func (g *Graph) RemoveCity(i int) error {
	n := len(g.cities)
	if i < 0 || i >= n {
		return ErrCityNotFound
	}

	g.cities = append(g.cities[:i], g.cities[i+1:]...)

	// Shift rows up over the removed one.
	for r := i; r < n-1; r++ {
		g.weight[r] = g.weight[r+1]
		g.exists[r] = g.exists[r+1]
	}
	// Shift columns left over the removed one.
	for r := 0; r < n-1; r++ {
		copy(g.weight[r][i:n-1], g.weight[r][i+1:n])
		copy(g.exists[r][i:n-1], g.exists[r][i+1:n])
	}
	// Clear the vacated last row and column.
	for k := 0; k < n; k++ {
		g.weight[n-1][k], g.weight[k][n-1] = 0, 0
		g.exists[n-1][k], g.exists[k][n-1] = false, false
	}

	return nil
}

// SetEdge creates or updates the symmetric edge between i and j.
func (g *Graph) SetEdge(i, j int, w float64) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	g.weight[i][j], g.weight[j][i] = w, w
	g.exists[i][j], g.exists[j][i] = true, true

	return nil
}

// RemoveEdge deletes the symmetric edge between i and j; removing an absent
// edge is a no-op.
func (g *Graph) RemoveEdge(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	g.exists[i][j], g.exists[j][i] = false, false
	g.weight[i][j], g.weight[j][i] = 0, 0

	return nil
}

// HasEdge reports whether the edge between i and j logically exists.
// Out-of-range indices report false.
func (g *Graph) HasEdge(i, j int) bool {
	n := len(g.cities)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}
	return g.exists[i][j]
}

// Distance returns the weight of the edge i–j, or math.Inf(1) when the edge
// is logically absent or either index is out of range. Solvers rely on the
// infinite sentinel and never consult existence directly.
// Complexity: O(1).
func (g *Graph) Distance(i, j int) float64 {
	if !g.HasEdge(i, j) {
		return math.Inf(1)
	}
	return g.weight[i][j]
}

// CityCount returns the number of cities.
func (g *Graph) CityCount() int { return len(g.cities) }

// Cities returns a copy of the city sequence in index order.
func (g *Graph) Cities() []City {
	out := make([]City, len(g.cities))
	copy(out, g.cities)
	return out
}

// City returns the city at index i.
func (g *Graph) City(i int) (City, error) {
	if i < 0 || i >= len(g.cities) {
		return City{}, ErrCityNotFound
	}
	return g.cities[i], nil
}

// EdgeCount returns the number of existing undirected edges.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	var count int
	n := len(g.cities)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.exists[i][j] {
				count++
			}
		}
	}
	return count
}

// checkPair validates an index pair for edge operations.
func (g *Graph) checkPair(i, j int) error {
	n := len(g.cities)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrCityNotFound
	}
	if i == j {
		return ErrSelfEdge
	}
	return nil
}

// RandomInstance builds an auto-connected Graph of n cities placed
// uniformly at random on a width×height canvas. Deterministic per seed
// (seed 0 selects the default stream). Returns ErrTooFewCities for n < 2
// and ErrTooManyCities for n > MaxCities.
func RandomInstance(n int, width, height float64, seed int64) (*Graph, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if n > MaxCities {
		return nil, ErrTooManyCities
	}

	rng := rngFromSeed(seed)
	g := NewGraph(WithAutoConnect())
	for i := 0; i < n; i++ {
		if _, err := g.AddCity(rng.Float64()*width, rng.Float64()*height); err != nil {
			return nil, err
		}
	}

	return g, nil
}

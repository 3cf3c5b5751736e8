package tsp

import "errors"

// MaxCities bounds the city universe of a Graph.
const MaxCities = 50

// heldKarpMaxCities is the exact solver's feasibility bound: beyond it the
// 2ⁿ·n state space is prohibitive and SolveHeldKarp defers to the greedy
// heuristic.
const heldKarpMaxCities = 20

// Genetic-search hyperparameters. Fixed by design: the solver is a
// non-adaptive fixed-budget search.
const (
	populationSize = 100
	generations    = 500
	mutationRate   = 0.01
	tournamentSize = 5
)

// Algorithm selects the solver used by Solve.
type Algorithm uint8

const (
	// NearestNeighbor runs the greedy O(n²) heuristic.
	NearestNeighbor Algorithm = iota

	// Genetic runs the fixed-budget evolutionary search.
	Genetic

	// DynamicProgramming runs exact Held–Karp, with the size-based
	// fallback to NearestNeighbor above 20 cities.
	DynamicProgramming
)

// String implements fmt.Stringer for diagnostics.
func (a Algorithm) String() string {
	switch a {
	case NearestNeighbor:
		return "nearest-neighbor"
	case Genetic:
		return "genetic"
	case DynamicProgramming:
		return "dynamic-programming"
	default:
		return "unknown"
	}
}

// Options configures a Solve call.
type Options struct {
	// Algo selects the solver. The zero value is NearestNeighbor.
	Algo Algorithm

	// Seed drives the genetic solver's random stream. 0 selects a fixed
	// default seed; results are deterministic per seed.
	Seed int64
}

// DefaultOptions returns the canonical defaults: greedy solver, default seed.
func DefaultOptions() Options {
	return Options{Algo: NearestNeighbor}
}

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the visiting order as city indices starting at city 0. The
	// closing edge back to Tour[0] is implicit. A disconnected instance
	// yields len(Tour) < Graph.CityCount() from the greedy solver; callers
	// needing completeness must check the length.
	Tour []int

	// Cost is the total cycle cost including the implicit closing edge.
	// It is +Inf when the tour is partial and its closing edge is absent.
	Cost float64
}

// Sentinel errors for graph construction and solving.
var (
	// ErrTooManyCities indicates the city universe is full (MaxCities).
	ErrTooManyCities = errors.New("tsp: city limit reached")

	// ErrTooFewCities indicates a solve over fewer than 2 cities.
	ErrTooFewCities = errors.New("tsp: need at least 2 cities")

	// ErrCityNotFound indicates an index outside the current city sequence.
	ErrCityNotFound = errors.New("tsp: city index out of range")

	// ErrSelfEdge indicates an edge from a city to itself.
	ErrSelfEdge = errors.New("tsp: self-edges are not allowed")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("tsp: edge weight must be non-negative")

	// ErrNoEdges indicates a solve over a graph with no existing edge.
	ErrNoEdges = errors.New("tsp: graph has no edges")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed set.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm selector")
)

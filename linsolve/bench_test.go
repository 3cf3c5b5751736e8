package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/solvkit/linsolve"
	"github.com/katalvlaran/solvkit/matrix"
)

// benchSystem builds a diagonally dominant n×n system so every benchmark
// iteration solves successfully.
func benchSystem(n int, seed int64) (*matrix.Dense, []float64) {
	rng := rand.New(rand.NewSource(seed))
	a, _ := matrix.NewSquare(n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = a.Set(i, j, rng.Float64())
			}
		}
		_ = a.Set(i, i, float64(n)+1)
		b[i] = rng.Float64() * 10
	}
	return a, b
}

func BenchmarkSolve20(b *testing.B) {
	a, rhs := benchSystem(20, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linsolve.Solve(a, rhs); err != nil {
			b.Fatal(err)
		}
	}
}

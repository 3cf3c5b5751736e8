package linsolve

import (
	"errors"
	"math"

	"github.com/katalvlaran/solvkit/matrix"
)

// ErrSingular is returned when elimination meets a pivot whose magnitude is
// below pivotTol (or not finite): the system is singular or ill-conditioned.
var ErrSingular = errors.New("linsolve: matrix is singular or ill-conditioned")

// ErrDimensionMismatch is returned when a is nil or non-square, or when
// len(b) differs from the matrix order.
var ErrDimensionMismatch = errors.New("linsolve: dimension mismatch")

// pivotTol is the minimum acceptable pivot magnitude. Below it, division
// would blow up and the result would be numerically meaningless.
const pivotTol = 1e-10

// Solve computes x such that a·x = b using Gaussian elimination with
// partial pivoting.
//
// Contract:
//   - a must be a non-nil n×n matrix with n ≥ 1; len(b) == n.
//   - Neither a nor b is mutated; elimination works on a private augmented
//     copy of a|b.
//   - Returns ErrSingular when any selected pivot has magnitude < 1e-10 or
//     is NaN/±Inf (e.g. a zero-resistance conductance stamped as +Inf).
//
// Complexity: O(n³) time, O(n²) space.
func Solve(a *matrix.Dense, b []float64) ([]float64, error) {
	// --- 1. Validate shape ---
	if a == nil {
		return nil, ErrDimensionMismatch
	}
	n := a.Rows()
	if n != a.Cols() || len(b) != n {
		return nil, ErrDimensionMismatch
	}

	// --- 2. Build the private augmented matrix aug = [a | b] ---
	aug := make([][]float64, n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		for j = 0; j < n; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, err
			}
			aug[i][j] = v
		}
		aug[i][n] = b[i]
	}

	// --- 3. Forward elimination with partial pivoting ---
	var (
		maxRow int
		factor float64
		k      int
	)
	for i = 0; i < n; i++ {
		// Select the row with the largest absolute value in column i.
		maxRow = i
		for k = i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		// A vanishing or non-finite pivot means the system cannot be solved.
		pivot := aug[i][i]
		if math.IsNaN(pivot) || math.IsInf(pivot, 0) || math.Abs(pivot) < pivotTol {
			return nil, ErrSingular
		}

		// Eliminate column i from all rows below.
		for k = i + 1; k < n; k++ {
			factor = aug[k][i] / pivot
			if factor == 0 {
				continue
			}
			for j = i; j <= n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	// --- 4. Back substitution ---
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		x[i] = aug[i][n]
		for j = i + 1; j < n; j++ {
			x[i] -= aug[i][j] * x[j]
		}
		x[i] /= aug[i][i]
	}

	return x, nil
}

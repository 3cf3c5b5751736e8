// Package linsolve solves dense real linear systems A·x = b by Gaussian
// elimination with partial pivoting.
//
// It is the numeric backend of the circuit package, but has no knowledge of
// circuits: the contract is purely algebraic.
//
//   - Complexity: O(n³) time, O(n²) extra memory for the augmented copy.
//   - The caller's matrix and vector are never mutated; elimination runs on
//     a private augmented copy of A|b.
//   - A pivot whose magnitude falls below 1e-10 (or is NaN/±Inf) makes the
//     system unsolvable and is reported as ErrSingular. This single check
//     covers both genuinely singular systems and ill-posed inputs such as a
//     zero-resistance branch, whose conductance arrives here as +Inf.
//
// All arithmetic is IEEE double precision; no symbolic exactness is
// guaranteed. Threshold comparisons use absolute values.
package linsolve

// Package matrix provides the dense float64 matrix primitive shared by the
// solvkit solvers.
//
// Dense is a value-typed, row-major buffer with automatic lifetime: each
// solver allocates the matrix it needs for one call and lets it go out of
// scope afterwards. There is no pooling and no sharing between calls.
//
// The API is intentionally small:
//
//   - NewDense / NewSquare — allocation with validated shape
//   - At / Set / AddAt     — bounds-checked element access and accumulation
//   - ZeroRow              — clear a full row (identity-row overwrites)
//   - Clone / String       — deep copy and debug formatting
//
// All indexing errors are reported via sentinel errors (ErrIndexOutOfBounds,
// ErrInvalidDimensions) matched with errors.Is; no method panics on user
// input.
package matrix

// Package tsp_test shared helpers. Kept intentionally minimal and
// stdlib-only; assertion helpers live next to the tests that own them.
package tsp_test

import "math/rand"

// newTestRNG returns a deterministic RNG for test-local randomness.
func newTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

package assigner

import "math/rand"

// Rand is the random source used to resolve ties between equally good
// groups. It is injected rather than global so runs can be reproduced
// from a seed and tests can script exact tie resolution.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n)
	Intn(n int) int
}

// NewSeededRand returns a Rand backed by math/rand with the given seed.
// The same seed and input order always reproduce the same assignment.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

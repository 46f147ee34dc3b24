package composer

import "math/rand/v2"

// Rand is the random source threaded through every composition step.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// pcgStream decorrelates the second PCG word from the seed
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic random source for a seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// NewSeed draws a fresh seed for requests that don't supply one
func NewSeed() uint64 {
	return rand.Uint64()
}

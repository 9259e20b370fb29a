package simulation

import "math/rand"

// NormalSampler draws independent standard-normal variates. *rand.Rand
// satisfies it, which keeps simulations reproducible when the caller seeds
// the source, and lets tests substitute a fixed sequence.
type NormalSampler interface {
	NormFloat64() float64
}

// NewSeededSampler returns a pseudo-random sampler with its own state.
// Nothing in this package touches the global math/rand source.
func NewSeededSampler(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

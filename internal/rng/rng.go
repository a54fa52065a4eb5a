package rng

import "math/rand"

// Source is the randomness capability consumed by the stochastic
// operators: uniform integers, uniform floats in [0,1) and
// standard-normal draws. *rand.Rand satisfies it, and every operator
// takes it as an explicit parameter so reproducibility and parallel
// isolation stay under caller control.
type Source interface {
	Intn(n int) int
	Float64() float64
	NormFloat64() float64
}

// New returns a stream seeded with the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Fork derives an independent stream for the given id from a base seed.
// Workers either fork their own stream or share one under a lock;
// mixing the two breaks reproducibility.
func Fork(seed int64, id int) *rand.Rand {
	return New(seed + int64(id+1)*2654435761)
}

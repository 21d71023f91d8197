package testutil

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Ints generates n pseudo-random values in [0, max).
func (r *RNG) Ints(n, max int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = r.rand.Intn(max)
	}
	return vals
}

// DistinctInts generates n unique values in shuffled order. Useful for
// lookup tests where every element must be found at exactly one index.
func (r *RNG) DistinctInts(n int) []int {
	vals := r.rand.Perm(n)
	return vals
}

// Shuffle permutes vals in place.
func (r *RNG) Shuffle(vals []int) {
	r.rand.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
}

// Package testutil provides testing utilities for small-list.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG for generating deterministic element workloads.
//
//	rng := testutil.NewRNG(4711)
//	vals := rng.DistinctInts(16)   // unique values, shuffled
//	sizes := rng.Ints(100, 1000)   // arbitrary values in [0, 1000)
package testutil

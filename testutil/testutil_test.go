package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	assert.Equal(t, a.Ints(32, 1000), b.Ints(32, 1000))
	assert.Equal(t, a.DistinctInts(32), b.DistinctInts(32))
}

func TestRNG_DistinctInts(t *testing.T) {
	rng := NewRNG(1)

	vals := rng.DistinctInts(64)
	assert.Len(t, vals, 64)

	seen := make(map[int]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	assert.Len(t, seen, 64)
}

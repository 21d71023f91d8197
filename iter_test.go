package smalllist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_StrategySelection(t *testing.T) {
	// Inline lists get one strategy per element count.
	for n := range 5 {
		var l List[int]
		for i := range n {
			l.Add(i)
		}
		it := l.Iter()
		assert.Equal(t, iterKind(n), it.kind)
	}

	// A spill buffer forces the buffer-backed strategy...
	var l List[int]
	for i := range 6 {
		l.Add(i)
	}
	assert.Equal(t, iterSpill, l.Iter().kind)

	// ...even after the count drops back below the inline threshold,
	// because the buffer stays authoritative until Clear.
	for range 4 {
		require.NoError(t, l.RemoveAt(0))
	}
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, iterSpill, l.Iter().kind)

	l.Clear()
	assert.Equal(t, iterEmpty, l.Iter().kind)
}

func TestIterator_Equivalence(t *testing.T) {
	for size := range 11 {
		var l List[int]
		for i := range size {
			l.Add(i * 10)
		}

		want := make([]int, 0, size)
		for i := range l.Len() {
			v, err := l.Get(i)
			require.NoError(t, err)
			want = append(want, v)
		}

		got := make([]int, 0, size)
		it := l.Iter()
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, want, got, "size %d", size)
	}
}

func TestIterator_Exhausted(t *testing.T) {
	l := Of2("a", "b")

	it := l.Iter()
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.True(t, ok)

	for range 3 {
		v, ok := it.Next()
		assert.False(t, ok)
		assert.Zero(t, v)
	}
}

func TestList_All(t *testing.T) {
	for size := range 11 {
		var l List[int]
		for i := range size {
			l.Add(i * 10)
		}

		idx := 0
		for i, v := range l.All() {
			assert.Equal(t, idx, i)
			assert.Equal(t, idx*10, v)
			idx++
		}
		assert.Equal(t, size, idx)
	}
}

func TestList_All_EarlyBreak(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})

	seen := 0
	for _, v := range l.All() {
		seen++
		if v == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestList_Values(t *testing.T) {
	l := Of3(7, 8, 9)

	var got []int
	for v := range l.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 8, 9}, got)
}

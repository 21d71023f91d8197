package smalllist

import (
	"iter"
	"math/bits"
)

// Of1 builds a one-element list, inline.
func Of1[T comparable](v0 T) List[T] {
	return List[T]{slots: [inlineCap]T{v0}, count: 1}
}

// Of2 builds a two-element list, inline.
func Of2[T comparable](v0, v1 T) List[T] {
	return List[T]{slots: [inlineCap]T{v0, v1}, count: 2}
}

// Of3 builds a three-element list, inline.
func Of3[T comparable](v0, v1, v2 T) List[T] {
	return List[T]{slots: [inlineCap]T{v0, v1, v2}, count: 3}
}

// Of4 builds a four-element list, inline.
func Of4[T comparable](v0, v1, v2, v3 T) List[T] {
	return List[T]{slots: [inlineCap]T{v0, v1, v2, v3}, count: 4}
}

// FromSlice builds a list holding a copy of src. Up to four elements
// stay inline; longer sources get a spill buffer sized exactly to
// len(src), with doubling growth from there.
func FromSlice[T comparable](src []T) List[T] {
	var l List[T]
	n := len(src)
	if n == 0 {
		return l
	}
	if n <= inlineCap {
		copy(l.slots[:], src)
		l.count = n
		return l
	}
	l.buf = make([]T, n)
	copy(l.buf, src)
	l.count = n
	return l
}

// Collect drains seq into a new list one Add at a time. Use CollectSized
// when the element count is known up front.
func Collect[T comparable](seq iter.Seq[T]) List[T] {
	var l List[T]
	for v := range seq {
		l.Add(v)
	}
	return l
}

// CollectSized drains seq into a new list. When size exceeds the inline
// slots a spill buffer of the next power of two >= size is allocated up
// front, so a correctly sized seq triggers exactly one allocation. size
// is a hint: the list holds exactly the elements seq yields.
func CollectSized[T comparable](seq iter.Seq[T], size int) List[T] {
	if size <= inlineCap {
		return Collect(seq)
	}
	l := List[T]{buf: make([]T, nextPow2(size))}
	for v := range seq {
		if l.count == len(l.buf) {
			l.grow(l.count * 2)
		}
		l.buf[l.count] = v
		l.count++
	}
	return l
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

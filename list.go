package smalllist

const (
	// inlineCap is the number of elements stored directly in the List value.
	inlineCap = 4

	// spillCap is the length of the first spill buffer (2x the inline slots).
	spillCap = 2 * inlineCap
)

// List is a growable sequence that keeps up to four elements inline and
// spills to a heap buffer beyond that. The zero value is an empty list
// ready to use.
//
// Once the spill buffer exists it is the authoritative store for every
// position; the inline slots are zeroed and ignored until Clear restores
// the inline-only state.
//
// List is a value aggregate: copying one duplicates the inline slots and
// the count but shares the spill buffer. List is not safe for concurrent
// use and has no modification guard for in-flight iterations.
type List[T comparable] struct {
	slots [inlineCap]T
	buf   []T // authoritative for all positions once non-nil
	count int
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.count }

// Cap returns the number of positions available without reallocation.
func (l *List[T]) Cap() int {
	if l.buf == nil {
		return inlineCap
	}
	return len(l.buf)
}

// Add appends v. The first four elements are written into the inline
// slots; the fifth add allocates the spill buffer and moves the inline
// values into it. A full spill buffer doubles in length.
func (l *List[T]) Add(v T) {
	if l.buf == nil {
		if l.count < inlineCap {
			l.slots[l.count] = v
			l.count++
			return
		}
		l.spill(spillCap)
	} else if l.count == len(l.buf) {
		l.grow(l.count * 2)
	}
	l.buf[l.count] = v
	l.count++
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if uint(i) >= uint(l.count) {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Count: l.count}
	}
	if l.buf != nil {
		return l.buf[i], nil
	}
	return l.slots[i], nil
}

// Set overwrites the element at index i.
func (l *List[T]) Set(i int, v T) error {
	if uint(i) >= uint(l.count) {
		return &ErrIndexOutOfRange{Index: i, Count: l.count}
	}
	if l.buf != nil {
		l.buf[i] = v
	} else {
		l.slots[i] = v
	}
	return nil
}

// Insert places v at index i, shifting the elements at i and beyond one
// position to the right. i == Len() appends.
func (l *List[T]) Insert(i int, v T) error {
	if uint(i) > uint(l.count) {
		return &ErrIndexOutOfRange{Index: i, Count: l.count}
	}
	if l.buf == nil {
		if l.count < inlineCap {
			copy(l.slots[i+1:l.count+1], l.slots[i:l.count])
			l.slots[i] = v
			l.count++
			return nil
		}
		l.spill(spillCap)
	} else if l.count == len(l.buf) {
		l.grow(l.count * 2)
	}
	copy(l.buf[i+1:l.count+1], l.buf[i:l.count])
	l.buf[i] = v
	l.count++
	return nil
}

// RemoveAt deletes the element at index i, shifting the tail left to
// close the gap. The vacated position is zeroed so element references do
// not outlive their removal.
func (l *List[T]) RemoveAt(i int) error {
	if uint(i) >= uint(l.count) {
		return &ErrIndexOutOfRange{Index: i, Count: l.count}
	}
	l.count--
	var zero T
	if l.buf != nil {
		copy(l.buf[i:l.count], l.buf[i+1:l.count+1])
		l.buf[l.count] = zero
		return nil
	}
	copy(l.slots[i:l.count], l.slots[i+1:l.count+1])
	l.slots[l.count] = zero
	return nil
}

// Remove deletes the first element equal to v and reports whether one
// was found.
func (l *List[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	_ = l.RemoveAt(i) // i is in range
	return true
}

// Clear empties the list and drops the spill buffer, restoring the
// allocation-free inline state. The buffer is reclaimed by the GC once
// no copy of the list still shares it.
func (l *List[T]) Clear() {
	l.slots = [inlineCap]T{}
	l.buf = nil
	l.count = 0
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	if l.buf == nil {
		// Inline path: count is at most four, compare unrolled.
		if l.count > 0 && l.slots[0] == v {
			return 0
		}
		if l.count > 1 && l.slots[1] == v {
			return 1
		}
		if l.count > 2 && l.slots[2] == v {
			return 2
		}
		if l.count > 3 && l.slots[3] == v {
			return 3
		}
		return -1
	}
	for i := range l.count {
		if l.buf[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds an element equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.count != 0 && l.IndexOf(v) >= 0
}

// CopyTo copies the live elements into dst starting at offset.
//
// The bound check compares offset+len(dst) against the source count, not
// against the room left in dst. This asymmetry is part of the contract:
// destinations are expected to be sized to the live region.
func (l *List[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset+len(dst) > l.count {
		return &ErrCopyOutOfRange{Offset: offset, DestLen: len(dst), Count: l.count}
	}
	if l.buf != nil {
		copy(dst[offset:], l.buf[:l.count])
	} else {
		copy(dst[offset:], l.slots[:l.count])
	}
	return nil
}

// spill moves the inline values into a fresh buffer of length n. The
// inline slots are zeroed; the buffer is authoritative from here on.
func (l *List[T]) spill(n int) {
	buf := make([]T, n)
	copy(buf, l.slots[:l.count])
	l.buf = buf
	l.slots = [inlineCap]T{}
}

// grow replaces the spill buffer with one of length n. Capacity never
// shrinks.
func (l *List[T]) grow(n int) {
	buf := make([]T, n)
	copy(buf, l.buf[:l.count])
	l.buf = buf
}

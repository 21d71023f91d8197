package smalllist

import "iter"

// iterKind selects the traversal strategy. It is chosen once when the
// iterator is created and never re-checked mid-iteration.
type iterKind uint8

const (
	iterEmpty iterKind = iota
	iterOne
	iterTwo
	iterThree
	iterFour
	iterSpill
)

// Iterator walks a List front to back. Each inline element count gets
// its own strategy with a fixed trip count; lists with a spill buffer
// use the buffer-backed strategy. Mutating the list while an Iterator is
// live is undefined behavior.
type Iterator[T comparable] struct {
	list *List[T]
	kind iterKind
	pos  int
}

// Iter returns an iterator specialized for the list's current state.
func (l *List[T]) Iter() Iterator[T] {
	kind := iterSpill
	if l.buf == nil {
		kind = iterKind(l.count) // iterEmpty through iterFour
	}
	return Iterator[T]{list: l, kind: kind}
}

// Next returns the next element and true, or the zero value and false
// once the walk is done.
func (it *Iterator[T]) Next() (T, bool) {
	switch it.kind {
	case iterOne:
		if it.pos < 1 {
			return it.inline()
		}
	case iterTwo:
		if it.pos < 2 {
			return it.inline()
		}
	case iterThree:
		if it.pos < 3 {
			return it.inline()
		}
	case iterFour:
		if it.pos < 4 {
			return it.inline()
		}
	case iterSpill:
		if it.pos < it.list.count {
			v := it.list.buf[it.pos]
			it.pos++
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (it *Iterator[T]) inline() (T, bool) {
	v := it.list.slots[it.pos]
	it.pos++
	return v, true
}

// All returns an index/value sequence over the list. It binds directly
// to the authoritative storage, with no per-step dispatch.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.buf != nil {
			for i := range l.count {
				if !yield(i, l.buf[i]) {
					return
				}
			}
			return
		}
		for i := range l.count {
			if !yield(i, l.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value-only sequence over the list.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Package smalllist provides a generic list optimized for very small
// element counts.
//
// A List stores up to four elements inline in the struct itself and only
// allocates a spill buffer on the heap once a fifth element arrives. Call
// sites that predominantly hold 0-4 items pay no per-instance heap
// allocation and no pointer indirection during traversal.
//
// # Quick Start
//
//	var l smalllist.List[int]
//	l.Add(1)
//	l.Add(2)
//	l.Add(3)            // still inline, zero allocations
//
//	for i, v := range l.All() {
//	    fmt.Println(i, v)
//	}
//
//	l = smalllist.FromSlice([]int{1, 2, 3, 4, 5})  // spills to a buffer
//
// # Storage Model
//
// While the element count has never exceeded four, elements live in the
// inline slots and the zero value of List is ready to use. Once the spill
// buffer exists it is the authoritative store for every position and is
// only released by Clear. Capacity never shrinks.
//
// # Copy Semantics
//
// List is a value type. Copying one duplicates the inline slots and the
// count but shares the spill buffer, so two copies of a spilled list are
// not independent. Pass a *List across mutation boundaries.
//
// # Concurrency
//
// A List has no internal synchronization and no modification guard:
// concurrent use, or mutation while an iteration is in progress, is
// undefined behavior. This is a deliberate trade for speed.
package smalllist

package ringbuf

import "iter"

// Iterator walks a snapshot of the live elements taken when it was created.
// Later writes, reads or resizes of the buffer are not observed.
//
//	it := buf.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
type Iterator[T any] struct {
	items []T
	pos   int
}

// Iterator returns an iterator over the current live elements, oldest first.
func (b *Buffer[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{items: b.ring.toSlice(), pos: -1}
}

// Next advances to the next element and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.pos+1 >= len(it.items) {
		it.pos = len(it.items)
		return false
	}
	it.pos++
	return true
}

// Value returns the current element. It must only be called after Next
// returned true.
func (it *Iterator[T]) Value() T {
	return it.items[it.pos]
}

// Len returns the number of elements in the snapshot.
func (it *Iterator[T]) Len() int { return len(it.items) }

// Reset rewinds the iterator to the start of the same snapshot.
func (it *Iterator[T]) Reset() { it.pos = -1 }

// All returns a sequence over the live elements, oldest first. Each range
// over the sequence takes a fresh snapshot at the moment it starts, so the
// sequence can be ranged over repeatedly and mutations made inside the loop
// body do not affect the current pass.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.ring.toSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

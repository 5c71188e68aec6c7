package ringbuf

// ReadCursor returns the physical slot the next Read or Dump will visit.
func (b *Buffer[T]) ReadCursor() int { return b.ring.readCursor }

// WriteCursor returns the physical slot the next accepted Write will fill.
func (b *Buffer[T]) WriteCursor() int { return b.ring.writeCursor }

// Resize changes the capacity to n, keeping the live elements in order and
// placing the oldest at slot 0. Shrinking returns a *CapacityShrinkError and
// leaves the buffer untouched; use ResizeForce to truncate instead.
//
// Only the elements ToSlice reports are carried over. After Read has rotated
// the read cursor onto unset slots of a partly filled buffer, the elements
// behind the cursor are not part of that view and are dropped, even when
// growing.
func (b *Buffer[T]) Resize(n int) error {
	return b.resize(n, false)
}

// ResizeForce is Resize that allows shrinking. Only the first n live elements
// (oldest first) survive.
func (b *Buffer[T]) ResizeForce(n int) error {
	return b.resize(n, true)
}

func (b *Buffer[T]) resize(n int, force bool) error {
	if err := b.ring.resize(n, force); err != nil {
		return err
	}
	b.observe()
	return nil
}

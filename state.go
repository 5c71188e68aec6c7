package ringbuf

// slot holds one stored value. set is false for a slot that was never written
// or has been cleared, which keeps "no value" distinct from any T.
type slot[T any] struct {
	value T
	set   bool
}

// ringState owns the backing slots, the cursor pair and the live counter.
//
// count is tracked on its own rather than derived from the cursor distance:
// with overwrite enabled both cursors keep advancing once the ring is full,
// so writeCursor-readCursor wraps to zero while count stays at capacity.
type ringState[T any] struct {
	slots       []slot[T]
	writeCursor int // next slot to write
	readCursor  int // next slot to read
	count       int // live elements, 0..capacity
}

func newRingState[T any](capacity int) *ringState[T] {
	return &ringState[T]{slots: make([]slot[T], capacity)}
}

func (r *ringState[T]) capacity() int { return len(r.slots) }

func (r *ringState[T]) full() bool  { return r.count == len(r.slots) }
func (r *ringState[T]) empty() bool { return r.count == 0 }

// writeAt stores v at index modulo capacity without touching cursors or count.
func (r *ringState[T]) writeAt(index int, v T) {
	r.slots[r.wrap(index)] = slot[T]{value: v, set: true}
}

// clearAt marks the slot at index modulo capacity as empty.
func (r *ringState[T]) clearAt(index int) {
	r.slots[r.wrap(index)] = slot[T]{}
}

// readAt loads the slot at index modulo capacity. ok is false for an empty slot.
func (r *ringState[T]) readAt(index int) (T, bool) {
	s := r.slots[r.wrap(index)]
	return s.value, s.set
}

func (r *ringState[T]) advanceRead() {
	r.readCursor = (r.readCursor + 1) % len(r.slots)
}

func (r *ringState[T]) advanceWrite() {
	r.writeCursor = (r.writeCursor + 1) % len(r.slots)
}

// write stores v at the write cursor. The caller decides whether a write on a
// full ring is allowed; here it simply replaces whatever the slot held.
func (r *ringState[T]) write(v T) {
	r.writeAt(r.writeCursor, v)
	if !r.full() {
		r.count++
	}
	r.advanceWrite()
}

// read returns the slot at the read cursor and advances it. count is left
// alone, so repeated reads rotate through the ring.
func (r *ringState[T]) read() (T, bool) {
	v, ok := r.readAt(r.readCursor)
	r.advanceRead()
	return v, ok
}

// dump removes the element at the read cursor. An unset slot holds nothing
// to remove, so count is left alone; the cursor still advances, as in read.
func (r *ringState[T]) dump() (T, bool) {
	v, ok := r.readAt(r.readCursor)
	if ok {
		r.clearAt(r.readCursor)
		r.count--
	}
	r.advanceRead()
	return v, ok
}

func (r *ringState[T]) clear() {
	r.slots = make([]slot[T], len(r.slots))
	r.writeCursor = 0
	r.readCursor = 0
	r.count = 0
}

// resize moves the live elements into fresh storage of n slots, oldest first
// from index 0. Elements beyond n are dropped. On error the state is untouched.
func (r *ringState[T]) resize(n int, force bool) error {
	if n <= 0 {
		return ErrInvalidCapacity
	}
	if n < len(r.slots) && !force {
		return &CapacityShrinkError{Requested: n, Current: len(r.slots)}
	}

	live := r.toSlice()
	if len(live) > n {
		live = live[:n]
	}

	slots := make([]slot[T], n)
	for i, v := range live {
		slots[i] = slot[T]{value: v, set: true}
	}
	r.slots = slots
	r.readCursor = 0
	r.writeCursor = len(live) % n
	r.count = len(live)
	return nil
}

// toSlice returns the live elements from the read cursor onward. Slots that a
// rotating read has walked past into empty territory are skipped.
func (r *ringState[T]) toSlice() []T {
	out := make([]T, 0, r.count)
	for i := 0; i < r.count; i++ {
		if v, ok := r.readAt(r.readCursor + i); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *ringState[T]) wrap(index int) int {
	n := len(r.slots)
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

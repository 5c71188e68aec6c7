package ringbuf

// Clear mengosongkan semua slot dan mengembalikan kursor serta Len ke nol.
// Kapasitas tidak berubah.
func (b *Buffer[T]) Clear() {
	b.ring.clear()
	b.observe()
}

// ToSlice mengembalikan salinan elemen hidup, terlama lebih dulu, dihitung
// dari kursor baca. Buffer tidak berubah.
func (b *Buffer[T]) ToSlice() []T {
	return b.ring.toSlice()
}

// Drain sama dengan ToSlice lalu Clear.
func (b *Buffer[T]) Drain() []T {
	out := b.ring.toSlice()
	b.Clear()
	return out
}

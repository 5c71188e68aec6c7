package ringbuf

// Stats menyimpan penghitung operasi sejak buffer dibuat atau ResetStats.
//
//   - Writes:      nilai yang benar-benar disimpan
//   - Rejected:    tulisan yang dibuang karena buffer penuh
//   - Overwritten: tulisan yang menimpa nilai hidup
//   - Reads:       Read (tidak menghapus)
//   - Dumps:       Dump yang mengembalikan nilai
type Stats struct {
	Writes      uint64
	Rejected    uint64
	Overwritten uint64
	Reads       uint64
	Dumps       uint64
}

// RejectRatio mengembalikan persentase tulisan yang ditolak (0-100).
func (s Stats) RejectRatio() float64 {
	total := s.Writes + s.Rejected
	if total == 0 {
		return 0
	}
	return float64(s.Rejected) / float64(total) * 100.0
}

// GetStats mengambil snapshot statistik.
func (b *Buffer[T]) GetStats() Stats { return b.stats }

// ResetStats mengatur ulang semua penghitung.
func (b *Buffer[T]) ResetStats() { b.stats = Stats{} }

// Cap mengembalikan jumlah slot saat ini.
func (b *Buffer[T]) Cap() int { return b.ring.capacity() }

// Len mengembalikan jumlah elemen hidup.
func (b *Buffer[T]) Len() int { return b.ring.count }

// IsEmpty melaporkan apakah buffer tidak berisi elemen hidup.
func (b *Buffer[T]) IsEmpty() bool { return b.ring.empty() }

// IsFull melaporkan apakah setiap slot berisi elemen hidup.
func (b *Buffer[T]) IsFull() bool { return b.ring.full() }

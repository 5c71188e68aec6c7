package ringbuf

import "log/slog"

// Write menulis v sesuai kebijakan buffer.
//
// Bila Overwrite mati dan buffer penuh, v dibuang (dengan peringatan bila
// WarnOnFull). Selain itu v ditulis di kursor tulis; pada buffer penuh dengan
// Overwrite, slot di kursor tersebut ditimpa. Setelah penulisan, bila
// NotifyOnOverwrite aktif dan kursor tulis kembali ke slot 0, peringatan
// putaran penuh dikirim.
func (b *Buffer[T]) Write(v T) {
	full := b.ring.full()

	if !b.options.Overwrite && full {
		b.stats.Rejected++
		if b.metrics != nil {
			b.metrics.rejected.Inc()
		}
		if b.options.WarnOnFull {
			b.warn(MsgFullRejected)
		}
		return
	}

	b.ring.write(v)

	b.stats.Writes++
	if full {
		b.stats.Overwritten++
	}
	if b.metrics != nil {
		b.metrics.writes.Inc()
		if full {
			b.metrics.overwrites.Inc()
		}
	}
	b.observe()

	if b.options.Overwrite && b.options.NotifyOnOverwrite && b.ring.writeCursor == 0 {
		b.warn(MsgOverwrite)
	}
}

// WriteAll menulis setiap nilai secara berurutan lewat Write.
func (b *Buffer[T]) WriteAll(values ...T) {
	for _, v := range values {
		b.Write(v)
	}
}

// Read mengembalikan elemen di kursor baca lalu memajukan kursor tanpa
// mengurangi Len. Panggilan berulang pada buffer penuh berputar melewati
// semua elemen tanpa henti; gunakan Dump untuk mengambil sekaligus menghapus.
// ok bernilai false bila buffer kosong atau slot di kursor belum terisi.
func (b *Buffer[T]) Read() (v T, ok bool) {
	if b.ring.empty() {
		return v, false
	}
	v, ok = b.ring.read()
	b.stats.Reads++
	if b.metrics != nil {
		b.metrics.reads.Inc()
	}
	return v, ok
}

// Dump mengambil elemen terlama dan menghapusnya: slot dikosongkan, Len
// berkurang satu, kursor baca maju. ok false bila buffer kosong, atau bila
// Read sebelumnya memindahkan kursor ke slot yang belum terisi; dalam kasus
// itu Len tidak berubah dan kursor tetap maju.
func (b *Buffer[T]) Dump() (v T, ok bool) {
	if b.ring.empty() {
		return v, false
	}
	v, ok = b.ring.dump()
	if ok {
		b.stats.Dumps++
		if b.metrics != nil {
			b.metrics.dumps.Inc()
		}
	}
	b.observe()
	return v, ok
}

func (b *Buffer[T]) warn(msg string) {
	b.sink.Warn(msg,
		slog.Int("capacity", b.ring.capacity()),
		slog.Int("size", b.ring.count),
	)
}

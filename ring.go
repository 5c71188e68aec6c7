package ringbuf

import "fmt"

// Buffer adalah ring berkapasitas tetap yang memakai ulang slot secara
// melingkar. Kebijakan saat penuh (tolak atau timpa) diatur lewat Options.
//
// Buffer TIDAK aman untuk goroutine: setiap operasi selesai seketika tanpa
// lock internal. Pemanggil yang berbagi satu Buffer antar goroutine wajib
// membungkus seluruh instance dengan mutex sendiri.
type Buffer[T any] struct {
	ring    *ringState[T]  // Slot, kursor, dan penghitung
	options Options        // Kebijakan, tidak berubah setelah dibuat
	sink    Sink           // Tujuan diagnostik efektif
	metrics *bufferMetrics // nil bila Options.Metrics kosong
	stats   Stats
}

// New membuat buffer dengan opsi default (lihat DefaultOptions).
func New[T any](capacity int) (*Buffer[T], error) {
	return NewWithOptions[T](capacity, DefaultOptions())
}

// NewWithOptions membuat buffer dengan opsi kustom.
func NewWithOptions[T any](capacity int, opts Options) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new buffer with capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	b := &Buffer[T]{
		ring:    newRingState[T](capacity),
		options: opts,
		sink:    opts.sink(),
	}

	if opts.Metrics != nil {
		m, err := newBufferMetrics(opts.Metrics, opts.MetricsName)
		if err != nil {
			return nil, err
		}
		b.metrics = m
		b.metrics.observe(0, capacity)
	}
	return b, nil
}

// From membuat buffer baru lalu mengisinya dengan values lewat WriteAll,
// sehingga kebijakan penuh berlaku sama seperti penulisan biasa.
func From[T any](values []T, capacity int, opts Options) (*Buffer[T], error) {
	b, err := NewWithOptions[T](capacity, opts)
	if err != nil {
		return nil, err
	}
	b.WriteAll(values...)
	return b, nil
}

// Options mengembalikan konfigurasi yang dipakai buffer.
func (b *Buffer[T]) Options() Options { return b.options }

func (b *Buffer[T]) observe() {
	if b.metrics != nil {
		b.metrics.observe(b.ring.count, b.ring.capacity())
	}
}

package ringbuf

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Options menyediakan opsi konfigurasi untuk Buffer.
//
//   - Overwrite:         saat penuh, tulis menimpa data terlama (default false)
//   - WarnOnFull:        kirim peringatan ke Sink bila tulisan ditolak (default true)
//   - NotifyOnOverwrite: kirim peringatan setiap kursor tulis kembali ke slot 0
//   - Sink:              tujuan diagnostik (nil = slog ke stderr)
//   - Metrics:           registry Prometheus opsional
//
// WarnOnFull hanya berlaku bila Overwrite false, NotifyOnOverwrite hanya
// berlaku bila Overwrite true. Opsi tidak dapat diubah setelah Buffer dibuat.
type Options struct {
	Overwrite         bool // Timpa data terlama saat penuh
	WarnOnFull        bool // Peringatan saat tulisan ditolak
	NotifyOnOverwrite bool // Peringatan saat satu putaran penuh selesai

	Sink Sink // Tujuan diagnostik (nil = DefaultSink)

	// Metrics, bila tidak nil, menerima collector Prometheus milik buffer.
	// MetricsName dipakai sebagai label "buffer" dan wajib diisi bersama Metrics.
	Metrics     prometheus.Registerer
	MetricsName string
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan New.
func DefaultOptions() Options {
	return Options{
		Overwrite:         false,
		WarnOnFull:        true,
		NotifyOnOverwrite: false,
	}
}

// String returns a compact description of the policy flags, suitable for logs.
func (o Options) String() string {
	return fmt.Sprintf("overwrite=%t warn_on_full=%t notify_on_overwrite=%t",
		o.Overwrite, o.WarnOnFull, o.NotifyOnOverwrite)
}

func (o Options) sink() Sink {
	if o.Sink == nil {
		return DefaultSink()
	}
	return o.Sink
}

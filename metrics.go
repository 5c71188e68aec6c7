package ringbuf

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// bufferMetrics holds the optional Prometheus collectors of one buffer.
type bufferMetrics struct {
	writes     prometheus.Counter
	rejected   prometheus.Counter
	overwrites prometheus.Counter
	reads      prometheus.Counter
	dumps      prometheus.Counter

	size     prometheus.Gauge
	capacity prometheus.Gauge
}

func newBufferMetrics(reg prometheus.Registerer, name string) (*bufferMetrics, error) {
	if name == "" {
		return nil, errors.New("metrics name must be set when a registry is given")
	}
	labels := prometheus.Labels{"buffer": name}
	counter := func(n, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuf",
			Name:        n,
			Help:        help,
			ConstLabels: labels,
		})
	}
	gauge := func(n, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuf",
			Name:        n,
			Help:        help,
			ConstLabels: labels,
		})
	}

	m := &bufferMetrics{
		writes:     counter("writes_total", "Total number of values stored in the buffer"),
		rejected:   counter("rejected_total", "Total number of writes discarded because the buffer was full"),
		overwrites: counter("overwrites_total", "Total number of writes that replaced a live value"),
		reads:      counter("reads_total", "Total number of non-consuming reads"),
		dumps:      counter("dumps_total", "Total number of consuming reads"),
		size:       gauge("size", "Current number of live values"),
		capacity:   gauge("capacity", "Current slot count"),
	}

	collectors := []prometheus.Collector{
		m.writes, m.rejected, m.overwrites, m.reads, m.dumps, m.size, m.capacity,
	}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			// roll back so a retry with another name starts clean
			for j := 0; j < i; j++ {
				reg.Unregister(collectors[j])
			}
			return nil, fmt.Errorf("register buffer metrics %q: %w", name, err)
		}
	}
	return m, nil
}

func (m *bufferMetrics) observe(size, capacity int) {
	m.size.Set(float64(size))
	m.capacity.Set(float64(capacity))
}

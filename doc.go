// Package ringbuf provides a fixed-capacity, in-memory ring buffer that reuses
// its slots in a circle, with a configurable policy for writes on a full
// buffer (reject with a warning, or overwrite with an optional notice).
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	config.go      – decoding options from YAML/JSON
//	state.go       – slots, cursors & live counter
//	ring.go        – constructors & core fields
//	io.go          – write policy, Read & Dump
//	head_tail.go   – cursor accessors & resize
//	clear_drain.go – clear, ToSlice & Drain
//	iter.go        – snapshot iteration
//	stats.go       – counters & size accessors
//	metrics.go     – optional Prometheus collectors
//	sink.go        – diagnostic sinks
//	errors.go      – error values
//
// Read and Dump differ on purpose: Read advances the read cursor without
// removing anything, so repeated calls on a full buffer cycle through it,
// while Dump removes the element it returns.
//
// A Buffer is not safe for concurrent use.
package ringbuf

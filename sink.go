package ringbuf

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// Diagnostic messages emitted by the write policy. The wording is kept stable
// because downstream log filters match on it.
const (
	MsgFullRejected = "Buffer is full. Data is being ignored. Consider increasing buffer size or enabling overwrite."
	MsgOverwrite    = "Buffer is full. Oldest data is being overwritten."
)

// Sink receives the buffer's diagnostics. Implementations must not call back
// into the buffer that emitted the message.
type Sink interface {
	Warn(msg string, attrs ...slog.Attr)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(msg string, attrs ...slog.Attr)

// Warn calls f.
func (f SinkFunc) Warn(msg string, attrs ...slog.Attr) { f(msg, attrs...) }

type nopSink struct{}

func (nopSink) Warn(string, ...slog.Attr) {}

// NopSink discards every diagnostic.
var NopSink Sink = nopSink{}

type slogSink struct {
	logger *slog.Logger
}

// SlogSink sends diagnostics to logger at Warn level. A nil logger falls back
// to slog.Default().
func SlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogSink{logger: logger}
}

func (s *slogSink) Warn(msg string, attrs ...slog.Attr) {
	s.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

var (
	defaultSinkOnce sync.Once
	defaultSink     Sink
)

// DefaultSink returns the sink used when Options.Sink is nil: a text slog
// handler on stderr tagged with component=ringbuf.
func DefaultSink() Sink {
	defaultSinkOnce.Do(func() {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		defaultSink = SlogSink(slog.New(h).With("component", "ringbuf"))
	})
	return defaultSink
}

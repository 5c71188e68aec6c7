// Package sinks adapts third-party loggers to ringbuf.Sink.
package sinks

import (
	"log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/luhtfiimanal/go-ringbuf"
)

type zapSink struct {
	logger *zap.Logger
}

// Zap sends buffer diagnostics to logger at warn level. Attributes become
// zap fields with the same keys. A nil logger yields ringbuf.NopSink.
func Zap(logger *zap.Logger) ringbuf.Sink {
	if logger == nil {
		return ringbuf.NopSink
	}
	return &zapSink{logger: logger}
}

func (s *zapSink) Warn(msg string, attrs ...slog.Attr) {
	fields := make([]zap.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = append(fields, zap.Any(a.Key, a.Value.Resolve().Any()))
	}
	s.logger.Warn(msg, fields...)
}

type logrusSink struct {
	logger logrus.FieldLogger
}

// Logrus sends buffer diagnostics to logger at warn level. Attributes become
// logrus fields. A nil logger yields ringbuf.NopSink.
func Logrus(logger logrus.FieldLogger) ringbuf.Sink {
	if logger == nil {
		return ringbuf.NopSink
	}
	return &logrusSink{logger: logger}
}

func (s *logrusSink) Warn(msg string, attrs ...slog.Attr) {
	fields := make(logrus.Fields, len(attrs))
	for _, a := range attrs {
		fields[a.Key] = a.Value.Resolve().Any()
	}
	s.logger.WithFields(fields).Warn(msg)
}

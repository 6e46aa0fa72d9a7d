package filez

import (
	"log/slog"
	"os"

	"github.com/hupe1980/filez/codec"
	"github.com/hupe1980/filez/internal/fs"
)

type options struct {
	codec            codec.Codec
	fsync            bool
	fileMode         os.FileMode
	dirMode          os.FileMode
	mmapThreshold    int64
	fs               fs.FileSystem
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Live/NewLocalStore behavior.
type Option func(*options)

// WithCodec configures a content codec applied transparently on write and
// read. Payloads are encoded before they hit the disk and decoded before
// UTF-8 validation on the way back.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithFsync forces an fsync of the temp file before it is renamed into
// place. Without it a write is atomic with respect to concurrent readers
// but not durable across power loss.
func WithFsync(enabled bool) Option {
	return func(o *options) {
		o.fsync = enabled
	}
}

// WithFileMode sets the permission bits for files created by Write.
// Defaults to 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithDirMode sets the permission bits for parent directories created by
// Write. Defaults to 0755.
func WithDirMode(mode os.FileMode) Option {
	return func(o *options) {
		o.dirMode = mode
	}
}

// WithMmapThreshold sets the file size, in bytes, at which Read switches
// from buffered reads to a memory-mapped read. Zero disables mmap entirely.
// Defaults to 1 MiB.
func WithMmapThreshold(threshold int64) Option {
	return func(o *options) {
		o.mmapThreshold = threshold
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// withFileSystem injects an alternative filesystem. Used by tests for
// fault injection.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		fileMode:         0o644,
		dirMode:          0o755,
		mmapThreshold:    1 << 20,
		fs:               fs.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

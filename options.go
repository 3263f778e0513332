package mmlog

import "github.com/hupe1980/mmlog/internal/fs"

type options struct {
	fs               fs.FileSystem
	logger           *Logger
	metricsCollector MetricsCollector
	sync             bool
	locking          bool
}

func defaultOptions() options {
	return options{
		fs:               fs.Default,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		locking:          true,
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures how log operations run.
type Option func(*options)

// WithLogger configures structured logging of log operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &mmlog.BasicMetricsCollector{}
//	_, _ = mmlog.Append(rec, "events", "data", mmlog.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithSync flushes every write to disk (msync) before the mapping is released.
//
// Without it, durability relies on the kernel's ordinary page-cache write-back.
func WithSync(enabled bool) Option {
	return func(o *options) {
		o.sync = enabled
	}
}

// WithoutLocking disables the advisory file lock.
//
// Appends then perform an unprotected read-modify-write of the header: two
// concurrent appenders can both claim the same slot. Only use this when a
// single writer per log is guaranteed by other means.
func WithoutLocking() Option {
	return func(o *options) {
		o.locking = false
	}
}

// withFileSystem swaps the filesystem, for fault injection in tests.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

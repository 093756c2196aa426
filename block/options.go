package block

import (
	"log/slog"
	"runtime"
)

const defaultChunkSize = 64 * 1024

type options struct {
	parallelism int
	chunkSize   int
	logger      *slog.Logger
}

// Option configures a Converter.
type Option func(*options)

// WithParallelism sets the maximum number of chunks converted
// concurrently. Values below 1 force sequential conversion. The default is
// runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithChunkSize sets the number of samples handed to one worker at a time.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = defaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithLogger attaches a structured logger. Converters log at debug level
// only; nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		parallelism: runtime.GOMAXPROCS(0),
		chunkSize:   defaultChunkSize,
	}
}

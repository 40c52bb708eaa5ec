package wordvec

import (
	"github.com/born-ml/wordvec/internal/log"
	"github.com/born-ml/wordvec/internal/tensor"
)

const (
	// DefaultProgressEvery is how many lines pass between progress callbacks.
	DefaultProgressEvery = 100_000

	// DefaultMaxLineBytes bounds a single input line. A 300-d line is ~3 KB.
	DefaultMaxLineBytes = 1 << 20
)

type config struct {
	dtype        tensor.DataType
	norm         tensor.NormSource
	progress     ProgressFunc
	every        int
	logger       log.Logger
	header       HeaderMode
	maxLineBytes int
}

// Option configures a load.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		dtype:        tensor.Float64,
		norm:         tensor.DefaultNormSource(),
		every:        DefaultProgressEvery,
		logger:       log.Discard(),
		header:       HeaderNone,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDataType selects the element type of the embedding matrix (Float64 by default).
// Float32 halves the memory footprint; components outside the float32 range
// are then rejected as malformed.
func WithDataType(dtype tensor.DataType) Option {
	return func(c *config) {
		c.dtype = dtype
	}
}

// WithNormSource sets the generator used for the reserved rows.
// Pass a seeded *rand.Rand for reproducible tables.
func WithNormSource(src tensor.NormSource) Option {
	return func(c *config) {
		if src != nil {
			c.norm = src
		}
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithProgressEvery sets how many lines pass between progress callbacks.
func WithProgressEvery(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.every = n
		}
	}
}

// WithLogger sets the logger. Loads are silent by default.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHeader selects how a leading "count dim" line is treated.
func WithHeader(mode HeaderMode) Option {
	return func(c *config) {
		c.header = mode
	}
}

// WithMaxLineBytes raises or lowers the longest accepted input line.
func WithMaxLineBytes(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLineBytes = n
		}
	}
}

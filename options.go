package dhash

import (
	"log/slog"
)

// DefaultMinBaseSize is the smallest base size a table is created with or
// shrinks to.
const DefaultMinBaseSize = 53

type Option func(o *options)

type options struct {
	minBaseSize int
	hasher      Hasher
	logger      *slog.Logger
}

// WithMinBaseSize sets the floor below which the table never shrinks.
// Values below 2 are raised to 2.
func WithMinBaseSize(n int) Option {
	return func(o *options) {
		o.minBaseSize = max(n, 2)
	}
}

// WithHasher replaces the default polynomial hash family.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithLogger routes resize events to l. Tables log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		minBaseSize: DefaultMinBaseSize,
		hasher:      DefaultHasher(),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

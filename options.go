package serjson

import (
	"log/slog"

	"github.com/signadot/serjson/go-serjson/format"
	"github.com/signadot/serjson/go-serjson/parse"
)

type options struct {
	logger   *slog.Logger
	format   format.Format
	maxDepth int
}

type Option func(*options)

// WithLogger sets the logger used to report errors that Read and Write
// otherwise swallow. If not given, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFormat reads or writes the document as JSON or YAML instead of
// serjson.
func WithFormat(f format.Format) Option {
	return func(o *options) { o.format = f }
}

// WithMaxDepth bounds container nesting when reading.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

func (o *options) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(o.maxDepth)}
}

// SPDX-License-Identifier: MIT
// Package: modpoet/resolve
//
// options.go - functional options for Merge and Project.
//
// Contract:
//   • Options are functional (type Option func(*options)).
//   • Option constructors panic on meaningless inputs (nil logger);
//     Merge and Project never panic.
//   • Defaults are deterministic: discard logger, lenient module checking.

package resolve

import (
	"io"
	"log/slog"
)

// Option customizes dependency resolution.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

func newOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes resolution diagnostics to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("resolve: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithStrictModules makes Merge reject explicit edges whose endpoints are not
// part of the module universe (ErrUnknownModule). Topology edges always stay
// inside the universe.
func WithStrictModules() Option {
	return func(o *options) {
		o.strict = true
	}
}

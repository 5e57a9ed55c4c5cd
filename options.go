// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithVerbose enables detailed logging of classification decisions.
func WithVerbose() Option {
	return func(e *Engine) {
		e.Verbose = true
	}
}

// WithLogCb sets the callback used for verbose logging.
func WithLogCb(logCb func(format string, args ...any)) Option {
	return func(e *Engine) {
		e.logCb = logCb
	}
}

// WithTypeOverride registers a custom fixed-size type. Overrides take
// priority over the builtin classification table and are matched on the
// exact type expression text.
func WithTypeOverride(name string, override TypeOverride) Option {
	return func(e *Engine) {
		e.overrides[name] = override
	}
}

// Package abigen derives binary ABI descriptors and boilerplate provider
// implementations for Cairo record types. Given the ordered field list of a
// struct, it classifies each field's type, computes the record's fixed byte
// layout, and hands the resulting descriptor to the codegen package, which
// emits an ABIProvider implementation for the record.
//
// The engine is host agnostic: both front ends (the token-stream macro
// adapter and the syntax-tree plugin adapter) translate their input into a
// plain RecordDefinition and consume the same classification, descriptor,
// and emission logic.
//
// Copyright (c) 2025 attestkit. See LICENSE file for details.
package abigen

import (
	"sync"
)

// Engine classifies Cairo type expressions and builds record layout
// descriptors. It carries the spec values and type overrides used to resolve
// custom field widths; classification itself is total and never fails.
//
// An Engine holds no per-record state. A single instance can be shared by
// concurrent generation runs; the only mutable state is the cached result of
// width expression parsing, which is guarded internally.
//
// Example usage:
//
//	specs := map[string]any{
//	    "FELT_WIDTH": uint64(32),
//	}
//	eng := abigen.NewEngine(specs,
//	    abigen.WithTypeOverride("Signature", abigen.TypeOverride{SizeExpr: "FELT_WIDTH * 2"}),
//	)
//
//	desc := eng.BuildDescriptor("Attestation", fields)
type Engine struct {
	specValues    map[string]any              // Named constants for width expressions
	sizeExprCache map[string]*cachedSizeValue // Cache for parsed width expressions
	sizeExprMux   sync.RWMutex
	overrides     map[string]TypeOverride

	// Verbose enables detailed logging of classification decisions through
	// the configured log callback. Unknown type fallbacks are only reported
	// when this is set.
	Verbose bool

	logCb func(format string, args ...any)
}

// TypeOverride declares a fixed byte width for a user-defined type name that
// the builtin classification table does not know. The width is either a
// plain size or an expression over the engine's spec values ("FELT_WIDTH * 2").
// When both are set, the expression wins; an unresolvable expression yields
// width 0.
type TypeOverride struct {
	Size     uint32
	SizeExpr string
}

// NewEngine creates a new classification engine.
//
// The specs map contains named constants that width override expressions may
// reference. It can be nil when no expressions are used.
func NewEngine(specs map[string]any, opts ...Option) *Engine {
	if specs == nil {
		specs = map[string]any{}
	}

	e := &Engine{
		specValues:    specs,
		sizeExprCache: map[string]*cachedSizeValue{},
		overrides:     map[string]TypeOverride{},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) logf(format string, args ...any) {
	if e.Verbose && e.logCb != nil {
		e.logCb(format, args...)
	}
}

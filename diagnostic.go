// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

// Severity of a diagnostic reported back to the host compiler.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a message the engine hands back instead of generated code
// when a definition is not eligible. Host adapters surface the message text
// unmodified; the token-stream adapter reports it as a compile error, the
// syntax-tree adapter attaches it to the original item.
type Diagnostic struct {
	Message  string
	Severity Severity

	// Line and Column locate the offending item in the host source when the
	// adapter knows them, 0 otherwise.
	Line   int
	Column int
}

// Error implements the error interface so adapters can propagate a
// diagnostic through ordinary error returns.
func (d *Diagnostic) Error() string {
	return d.Message
}

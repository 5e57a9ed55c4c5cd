// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

// Package macro adapts the abigen engine to a derive-macro style host: it
// receives the source text of the single type definition the macro was
// invoked on and returns either synthesized implementation source or a
// compiler-visible error.
package macro

import (
	"fmt"

	abigen "github.com/attestkit/cairo-abigen"
	"github.com/attestkit/cairo-abigen/cairo"
	"github.com/attestkit/cairo-abigen/codegen"
)

// Derive expands the Attestation derive for the type definition in src.
// The host macro front end has already matched the derive marker, so the
// attribute itself need not be present. The returned text replaces the
// macro invocation; any failure (unparsable input, a definition that is not
// a named-field struct) is returned as an error carrying the diagnostic
// message unmodified.
func Derive(src string, opts ...codegen.CodeGenOption) (string, error) {
	items, err := cairo.ParseItems(src)
	if err != nil {
		return "", err
	}
	if len(items) != 1 {
		return "", fmt.Errorf("expected exactly one type definition, got %d", len(items))
	}

	item := items[0]
	def := abigen.RecordDefinition{Name: item.Name}

	switch {
	case item.Kind == cairo.ItemStruct && !item.Positional:
		def.Kind = abigen.RecordKindStruct
	case item.Kind == cairo.ItemStruct:
		def.Kind = abigen.RecordKindTupleStruct
	case item.Kind == cairo.ItemEnum:
		def.Kind = abigen.RecordKindEnum
	default:
		def.Kind = abigen.RecordKindAlias
	}

	for _, member := range item.Members {
		def.Fields = append(def.Fields, abigen.FieldDef{
			Name: member.Name,
			Type: member.Type,
		})
	}

	return codegen.GenerateProviderCode(def, opts...)
}

// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

import (
	"strings"
)

// FieldType is the semantic classification of a Cairo field type,
// independent of the exact source spelling of the type expression.
type FieldType uint8

const (
	// FieldTypeUnknown marks a type expression the classifier does not
	// recognize. Unknown fields always have width 0 and keep their raw
	// source text as type name.
	FieldTypeUnknown FieldType = iota
	FieldTypeContractAddress
	FieldTypeFelt252
	FieldTypeUint8
	FieldTypeUint16
	FieldTypeUint32
	FieldTypeUint64
	FieldTypeUint128
	FieldTypeUint256
	FieldTypeBool
	FieldTypeByteArray
	FieldTypeArray
	FieldTypeSpan
	// FieldTypeCustom marks a user-registered type override with an
	// explicitly configured width.
	FieldTypeCustom
)

// String returns the canonical Cairo spelling of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldTypeContractAddress:
		return "ContractAddress"
	case FieldTypeFelt252:
		return "felt252"
	case FieldTypeUint8:
		return "u8"
	case FieldTypeUint16:
		return "u16"
	case FieldTypeUint32:
		return "u32"
	case FieldTypeUint64:
		return "u64"
	case FieldTypeUint128:
		return "u128"
	case FieldTypeUint256:
		return "u256"
	case FieldTypeBool:
		return "bool"
	case FieldTypeByteArray:
		return "ByteArray"
	case FieldTypeArray:
		return "Array"
	case FieldTypeSpan:
		return "Span"
	case FieldTypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// TypeInfo is the result of classifying one type expression.
// Name is the canonical text emitted into generated code: the builtin
// spelling for recognized types, the override name for custom types, and the
// raw expression text for unknown types.
type TypeInfo struct {
	Type FieldType
	Name string
	Size uint32
}

// builtinTypes maps exact Cairo type names to their classification and
// fixed byte width. Variable length types carry width 0.
var builtinTypes = map[string]TypeInfo{
	"ContractAddress": {FieldTypeContractAddress, "ContractAddress", 32},
	"felt252":         {FieldTypeFelt252, "felt252", 32},
	"u8":              {FieldTypeUint8, "u8", 1},
	"u16":             {FieldTypeUint16, "u16", 2},
	"u32":             {FieldTypeUint32, "u32", 4},
	"u64":             {FieldTypeUint64, "u64", 8},
	"u128":            {FieldTypeUint128, "u128", 16},
	"u256":            {FieldTypeUint256, "u256", 32},
	"bool":            {FieldTypeBool, "bool", 1},
	"ByteArray":       {FieldTypeByteArray, "ByteArray", 0},
}

// ClassifyType maps a Cairo type expression to its semantic classification
// and fixed byte width. Classification is total: expressions that match
// neither an override, the builtin table, nor a known container shape are
// classified as unknown with width 0, never rejected.
//
// Lookup order:
//  1. user type overrides, matched on the exact expression text
//  2. the builtin table, matched on the exact expression text
//  3. container matching on the head identifier of the expression: the text
//     before the first generic bracket, so "Array<felt252>" and "Array"
//     both classify as Array while "ArrayLike" does not
func (e *Engine) ClassifyType(typeExpr string) TypeInfo {
	expr := strings.TrimSpace(typeExpr)

	if override, ok := e.overrides[expr]; ok {
		return TypeInfo{FieldTypeCustom, expr, e.resolveOverrideSize(expr, override)}
	}

	if info, ok := builtinTypes[expr]; ok {
		return info
	}

	switch headIdentifier(expr) {
	case "Array":
		return TypeInfo{FieldTypeArray, "Array", 0}
	case "Span":
		return TypeInfo{FieldTypeSpan, "Span", 0}
	}

	e.logf("unclassified type expression %q, using width 0", expr)
	return TypeInfo{FieldTypeUnknown, expr, 0}
}

// headIdentifier returns the identifier a type expression starts with,
// ignoring generic parameters: "Span<u256>" yields "Span".
func headIdentifier(expr string) string {
	if idx := strings.IndexByte(expr, '<'); idx != -1 {
		return strings.TrimSpace(expr[:idx])
	}
	return expr
}

func (e *Engine) resolveOverrideSize(name string, override TypeOverride) uint32 {
	if override.SizeExpr == "" {
		return override.Size
	}

	ok, value, err := e.resolveSizeExpr(override.SizeExpr)
	if err != nil || !ok {
		e.logf("unresolvable size expression %q for type %q: %v", override.SizeExpr, name, err)
		return 0
	}
	return uint32(value)
}

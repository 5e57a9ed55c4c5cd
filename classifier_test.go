// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

import (
	"testing"
)

func TestClassifyBuiltinTypes(t *testing.T) {
	tests := []struct {
		expr         string
		expectedType FieldType
		expectedName string
		expectedSize uint32
	}{
		{"ContractAddress", FieldTypeContractAddress, "ContractAddress", 32},
		{"felt252", FieldTypeFelt252, "felt252", 32},
		{"u8", FieldTypeUint8, "u8", 1},
		{"u16", FieldTypeUint16, "u16", 2},
		{"u32", FieldTypeUint32, "u32", 4},
		{"u64", FieldTypeUint64, "u64", 8},
		{"u128", FieldTypeUint128, "u128", 16},
		{"u256", FieldTypeUint256, "u256", 32},
		{"bool", FieldTypeBool, "bool", 1},
		{"ByteArray", FieldTypeByteArray, "ByteArray", 0},
	}

	eng := NewEngine(nil)
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			info := eng.ClassifyType(test.expr)
			if info.Type != test.expectedType {
				t.Errorf("Expected type %v, got %v", test.expectedType, info.Type)
			}
			if info.Name != test.expectedName {
				t.Errorf("Expected name %s, got %s", test.expectedName, info.Name)
			}
			if info.Size != test.expectedSize {
				t.Errorf("Expected size %d, got %d", test.expectedSize, info.Size)
			}
		})
	}
}

func TestClassifyContainerTypes(t *testing.T) {
	tests := []struct {
		expr         string
		expectedType FieldType
		expectedName string
	}{
		{"Array<felt252>", FieldTypeArray, "Array"},
		{"Array<(felt252, u8)>", FieldTypeArray, "Array"},
		{"Array", FieldTypeArray, "Array"},
		{"Span<u256>", FieldTypeSpan, "Span"},
		{"Span < u256 >", FieldTypeSpan, "Span"},
		{"Span", FieldTypeSpan, "Span"},
	}

	eng := NewEngine(nil)
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			info := eng.ClassifyType(test.expr)
			if info.Type != test.expectedType {
				t.Errorf("Expected type %v, got %v", test.expectedType, info.Type)
			}
			if info.Name != test.expectedName {
				t.Errorf("Expected name %s, got %s", test.expectedName, info.Name)
			}
			if info.Size != 0 {
				t.Errorf("Expected size 0 for container type, got %d", info.Size)
			}
		})
	}
}

func TestClassifyUnknownTypes(t *testing.T) {
	// Head identifier matching must not treat lookalike names as containers.
	tests := []string{
		"ArrayLike",
		"SpanTree",
		"MyCustomType",
		"Option<felt252>",
		"(felt252, u64)",
	}

	eng := NewEngine(nil)
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			info := eng.ClassifyType(expr)
			if info.Type != FieldTypeUnknown {
				t.Errorf("Expected unknown classification, got %v", info.Type)
			}
			if info.Name != expr {
				t.Errorf("Expected raw text %q preserved, got %q", expr, info.Name)
			}
			if info.Size != 0 {
				t.Errorf("Expected size 0 for unknown type, got %d", info.Size)
			}
		})
	}
}

func TestClassifyTypeOverrides(t *testing.T) {
	specs := map[string]any{
		"FELT_WIDTH": uint64(32),
	}
	eng := NewEngine(specs,
		WithTypeOverride("EthAddress", TypeOverride{Size: 20}),
		WithTypeOverride("Signature", TypeOverride{SizeExpr: "FELT_WIDTH * 2"}),
		WithTypeOverride("Broken", TypeOverride{SizeExpr: "MISSING_VALUE + 1"}),
	)

	t.Run("FixedSize", func(t *testing.T) {
		info := eng.ClassifyType("EthAddress")
		if info.Type != FieldTypeCustom {
			t.Errorf("Expected custom classification, got %v", info.Type)
		}
		if info.Size != 20 {
			t.Errorf("Expected size 20, got %d", info.Size)
		}
	})

	t.Run("ExpressionSize", func(t *testing.T) {
		info := eng.ClassifyType("Signature")
		if info.Type != FieldTypeCustom {
			t.Errorf("Expected custom classification, got %v", info.Type)
		}
		if info.Size != 64 {
			t.Errorf("Expected size 64, got %d", info.Size)
		}
	})

	t.Run("ExpressionSizeCached", func(t *testing.T) {
		// second classification hits the expression cache
		info := eng.ClassifyType("Signature")
		if info.Size != 64 {
			t.Errorf("Expected size 64 from cached expression, got %d", info.Size)
		}
	})

	t.Run("UnresolvableExpression", func(t *testing.T) {
		info := eng.ClassifyType("Broken")
		if info.Size != 0 {
			t.Errorf("Expected size 0 for unresolvable expression, got %d", info.Size)
		}
	})

	t.Run("OverridePriority", func(t *testing.T) {
		// overrides win over the builtin table
		eng2 := NewEngine(nil, WithTypeOverride("felt252", TypeOverride{Size: 31}))
		info := eng2.ClassifyType("felt252")
		if info.Type != FieldTypeCustom || info.Size != 31 {
			t.Errorf("Expected custom override with size 31, got %v/%d", info.Type, info.Size)
		}
	})
}

func TestClassifyVerboseLogging(t *testing.T) {
	var logged []string
	eng := NewEngine(nil,
		WithVerbose(),
		WithLogCb(func(format string, args ...any) {
			logged = append(logged, format)
		}),
	)

	eng.ClassifyType("MysteryType")
	if len(logged) != 1 {
		t.Errorf("Expected 1 log entry for unknown type, got %d", len(logged))
	}

	logged = nil
	eng.ClassifyType("u64")
	if len(logged) != 0 {
		t.Errorf("Expected no log entries for known type, got %d", len(logged))
	}
}

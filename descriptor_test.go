// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

import (
	"testing"
)

func TestBuildDescriptor(t *testing.T) {
	eng := NewEngine(nil)

	t.Run("AttestationRecord", func(t *testing.T) {
		fields := []FieldDef{
			{Name: "attester", Type: "ContractAddress"},
			{Name: "value", Type: "felt252"},
			{Name: "timestamp", Type: "u64"},
		}

		desc := eng.BuildDescriptor("Attestation", fields)
		if desc.Name != "Attestation" {
			t.Errorf("Expected name Attestation, got %s", desc.Name)
		}
		if len(desc.Fields) != 3 {
			t.Fatalf("Expected 3 fields, got %d", len(desc.Fields))
		}
		if desc.Size != 72 {
			t.Errorf("Expected total size 72, got %d", desc.Size)
		}

		expectedOrder := []string{"attester", "value", "timestamp"}
		expectedSizes := []uint32{32, 32, 8}
		for i, field := range desc.Fields {
			if field.Name != expectedOrder[i] {
				t.Errorf("Field %d: expected name %s, got %s", i, expectedOrder[i], field.Name)
			}
			if field.Size != expectedSizes[i] {
				t.Errorf("Field %d: expected size %d, got %d", i, expectedSizes[i], field.Size)
			}
		}
	})

	t.Run("VariableLengthFields", func(t *testing.T) {
		fields := []FieldDef{
			{Name: "data", Type: "ByteArray"},
		}

		desc := eng.BuildDescriptor("Blob", fields)
		if len(desc.Fields) != 1 {
			t.Fatalf("Expected 1 field, got %d", len(desc.Fields))
		}
		if desc.Fields[0].Type != FieldTypeByteArray {
			t.Errorf("Expected ByteArray classification, got %v", desc.Fields[0].Type)
		}
		if desc.Fields[0].Size != 0 {
			t.Errorf("Expected field size 0, got %d", desc.Fields[0].Size)
		}
		if desc.Size != 0 {
			t.Errorf("Expected total size 0, got %d", desc.Size)
		}
	})

	t.Run("MixedFixedAndVariable", func(t *testing.T) {
		fields := []FieldDef{
			{Name: "id", Type: "u32"},
			{Name: "entries", Type: "Array<felt252>"},
			{Name: "owner", Type: "ContractAddress"},
			{Name: "extra", Type: "SomeUnknownType"},
		}

		desc := eng.BuildDescriptor("Mixed", fields)
		if desc.Size != 36 {
			t.Errorf("Expected total size 36 (4 + 0 + 32 + 0), got %d", desc.Size)
		}
		if desc.Fields[1].TypeName != "Array" {
			t.Errorf("Expected container type name Array, got %s", desc.Fields[1].TypeName)
		}
		if desc.Fields[3].TypeName != "SomeUnknownType" {
			t.Errorf("Expected raw unknown type name preserved, got %s", desc.Fields[3].TypeName)
		}
	})

	t.Run("EmptyRecord", func(t *testing.T) {
		desc := eng.BuildDescriptor("Empty", nil)
		if len(desc.Fields) != 0 {
			t.Errorf("Expected 0 fields, got %d", len(desc.Fields))
		}
		if desc.Size != 0 {
			t.Errorf("Expected total size 0, got %d", desc.Size)
		}
	})

	t.Run("DeclarationOrderPreserved", func(t *testing.T) {
		fields := []FieldDef{
			{Name: "z", Type: "u8"},
			{Name: "a", Type: "u8"},
			{Name: "m", Type: "u8"},
		}

		desc := eng.BuildDescriptor("Ordered", fields)
		expected := []string{"z", "a", "m"}
		for i, field := range desc.Fields {
			if field.Name != expected[i] {
				t.Errorf("Field %d: expected %s, got %s", i, expected[i], field.Name)
			}
		}
	})
}

func TestRecordDefinitionValidate(t *testing.T) {
	tests := []struct {
		name        string
		def         RecordDefinition
		expectedMsg string
	}{
		{
			name: "NamedStruct",
			def: RecordDefinition{
				Name:   "Good",
				Kind:   RecordKindStruct,
				Fields: []FieldDef{{Name: "x", Type: "u8"}},
			},
		},
		{
			name: "EmptyStruct",
			def:  RecordDefinition{Name: "Empty", Kind: RecordKindStruct},
		},
		{
			name:        "TupleStruct",
			def:         RecordDefinition{Name: "Pair", Kind: RecordKindTupleStruct},
			expectedMsg: "Only structs with named fields are supported",
		},
		{
			name:        "Enum",
			def:         RecordDefinition{Name: "Choice", Kind: RecordKindEnum},
			expectedMsg: "Only structs are supported",
		},
		{
			name:        "Alias",
			def:         RecordDefinition{Name: "Shortcut", Kind: RecordKindAlias},
			expectedMsg: "Only structs are supported",
		},
		{
			name: "UnnamedField",
			def: RecordDefinition{
				Name:   "Bad",
				Kind:   RecordKindStruct,
				Fields: []FieldDef{{Name: "", Type: "u8"}},
			},
			expectedMsg: "Only structs with named fields are supported",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			diag := test.def.Validate()
			if test.expectedMsg == "" {
				if diag != nil {
					t.Errorf("Expected eligible definition, got diagnostic: %s", diag.Message)
				}
				return
			}

			if diag == nil {
				t.Fatal("Expected diagnostic, got nil")
			}
			if diag.Message != test.expectedMsg {
				t.Errorf("Expected message %q, got %q", test.expectedMsg, diag.Message)
			}
			if diag.Severity != SeverityError {
				t.Errorf("Expected error severity, got %v", diag.Severity)
			}
		})
	}
}

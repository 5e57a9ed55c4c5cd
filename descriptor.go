// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

// RecordKind describes what kind of type definition a host adapter handed
// to the engine. Only named-field structs are eligible for generation.
type RecordKind uint8

const (
	RecordKindStruct RecordKind = iota
	RecordKindTupleStruct
	RecordKindEnum
	RecordKindAlias
)

// FieldDef is one (name, type expression) pair of a record definition, in
// declaration order, before classification.
type FieldDef struct {
	Name string
	Type string
}

// RecordDefinition is the host-independent intermediate representation both
// front ends produce: the record's name, its definition kind, and its fields
// in declaration order.
type RecordDefinition struct {
	Name   string
	Kind   RecordKind
	Fields []FieldDef
}

// Validate checks whether the definition is eligible for descriptor building
// and code generation. It returns nil for named-field structs and an error
// diagnostic for any other definition kind. A struct with zero fields is
// eligible.
func (def RecordDefinition) Validate() *Diagnostic {
	switch def.Kind {
	case RecordKindStruct:
	case RecordKindTupleStruct:
		return &Diagnostic{
			Message:  "Only structs with named fields are supported",
			Severity: SeverityError,
		}
	default:
		return &Diagnostic{
			Message:  "Only structs are supported",
			Severity: SeverityError,
		}
	}

	for _, field := range def.Fields {
		if field.Name == "" {
			return &Diagnostic{
				Message:  "Only structs with named fields are supported",
				Severity: SeverityError,
			}
		}
	}

	return nil
}

// FieldDescriptor is one struct field's classified shape: its name, the
// canonical type name emitted into generated code, the semantic type tag,
// and the fixed byte width (0 for variable length or unknown types).
type FieldDescriptor struct {
	Name     string
	TypeName string
	Type     FieldType
	Size     uint32
}

// RecordDescriptor is the synthesized layout for one record type. Fields
// keep declaration order; Size is the sum of the field widths, with variable
// length fields contributing 0.
type RecordDescriptor struct {
	Name   string
	Fields []FieldDescriptor
	Size   uint32
}

// BuildDescriptor classifies each field of a record and assembles the
// layout descriptor. Fields are never reordered, filtered, or deduplicated;
// field name uniqueness is the caller's concern (the host's own name
// resolution enforces it before the definition reaches the engine).
//
// This operation cannot fail. An empty field list yields a descriptor with
// zero fields and Size 0.
func (e *Engine) BuildDescriptor(name string, fields []FieldDef) RecordDescriptor {
	desc := RecordDescriptor{
		Name:   name,
		Fields: make([]FieldDescriptor, 0, len(fields)),
	}

	for _, field := range fields {
		info := e.ClassifyType(field.Type)
		desc.Fields = append(desc.Fields, FieldDescriptor{
			Name:     field.Name,
			TypeName: info.Name,
			Type:     info.Type,
			Size:     info.Size,
		})
		desc.Size += info.Size
	}

	return desc
}

// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

// Package plugin adapts the abigen engine to a compiler-plugin style host:
// it inspects parsed Cairo items, triggers on the derive(Attestation)
// marker, and produces auxiliary generated files plus diagnostics the host
// can attach to the original items.
package plugin

import (
	"errors"
	"fmt"

	abigen "github.com/attestkit/cairo-abigen"
	"github.com/attestkit/cairo-abigen/cairo"
	"github.com/attestkit/cairo-abigen/codegen"
)

// DeriveMarker is the derive capability name that triggers generation.
const DeriveMarker = "Attestation"

// GeneratedFile is one auxiliary file produced for a record, named
// deterministically after the record.
type GeneratedFile struct {
	Name    string
	Content string
}

// Result is the outcome of processing one item. Either Code is set and
// Diagnostics is empty, or Code is nil and Diagnostics carries exactly one
// entry. Items without the derive marker yield a zero Result. The original
// item is never removed.
type Result struct {
	Code               *GeneratedFile
	Diagnostics        []abigen.Diagnostic
	RemoveOriginalItem bool
}

// Plugin generates ABIProvider implementations for items carrying the
// derive(Attestation) marker.
type Plugin struct {
	engine *abigen.Engine
	opts   []codegen.CodeGenOption
}

// New creates a plugin instance around the given engine. A nil engine uses
// default classification rules. Codegen options are applied to every
// generation.
func New(engine *abigen.Engine, opts ...codegen.CodeGenOption) *Plugin {
	if engine == nil {
		engine = abigen.NewEngine(nil)
	}
	return &Plugin{
		engine: engine,
		opts:   append([]codegen.CodeGenOption{codegen.WithEngine(engine)}, opts...),
	}
}

// GenerateCode processes one parsed item. Items without the derive marker
// are ignored. For eligible structs it returns the generated provider file;
// for ineligible items carrying the marker it returns one diagnostic
// located at the item, with the engine's message text unmodified.
func (p *Plugin) GenerateCode(item cairo.Item) Result {
	if !item.HasDerive(DeriveMarker) {
		return Result{}
	}

	def := definitionFromItem(item)

	code, err := codegen.GenerateProviderCode(def, p.opts...)
	if err != nil {
		diag := abigen.Diagnostic{
			Message:  err.Error(),
			Severity: abigen.SeverityError,
			Line:     item.Line,
			Column:   item.Column,
		}
		var engineDiag *abigen.Diagnostic
		if errors.As(err, &engineDiag) {
			diag.Severity = engineDiag.Severity
		}
		return Result{Diagnostics: []abigen.Diagnostic{diag}}
	}

	return Result{
		Code: &GeneratedFile{
			Name:    fmt.Sprintf("%s_abi_provider.cairo", item.Name),
			Content: code,
		},
	}
}

// ProcessFile parses a Cairo source fragment and processes every item in
// it, collecting generated files and diagnostics in declaration order.
func (p *Plugin) ProcessFile(src string) ([]GeneratedFile, []abigen.Diagnostic, error) {
	items, err := cairo.ParseItems(src)
	if err != nil {
		return nil, nil, err
	}

	var files []GeneratedFile
	var diags []abigen.Diagnostic
	for _, item := range items {
		result := p.GenerateCode(item)
		if result.Code != nil {
			files = append(files, *result.Code)
		}
		diags = append(diags, result.Diagnostics...)
	}

	return files, diags, nil
}

// definitionFromItem translates a parsed item into the engine's
// host-independent record representation, preserving member order.
func definitionFromItem(item cairo.Item) abigen.RecordDefinition {
	def := abigen.RecordDefinition{Name: item.Name}

	switch item.Kind {
	case cairo.ItemStruct:
		if item.Positional {
			def.Kind = abigen.RecordKindTupleStruct
		} else {
			def.Kind = abigen.RecordKindStruct
		}
	case cairo.ItemEnum:
		def.Kind = abigen.RecordKindEnum
	case cairo.ItemAlias:
		def.Kind = abigen.RecordKindAlias
	}

	def.Fields = make([]abigen.FieldDef, 0, len(item.Members))
	for _, member := range item.Members {
		def.Fields = append(def.Fields, abigen.FieldDef{
			Name: member.Name,
			Type: member.Type,
		})
	}

	return def
}

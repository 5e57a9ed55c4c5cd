// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package codegen

import (
	"fmt"
	"strings"

	abigen "github.com/attestkit/cairo-abigen"
	"github.com/attestkit/cairo-abigen/codegen/tmpl"
)

// GeneratedImplementation is the result of generating the ABIProvider
// implementation for one record.
type GeneratedImplementation struct {
	RecordName string
	FieldCount int
	Code       string
}

// generateProvider renders the ABIProvider implementation body for one
// record descriptor. All descriptor values are embedded as literals; the
// generated get_abi and get_field_count functions recompute nothing at
// run time.
func generateProvider(desc abigen.RecordDescriptor) (string, error) {
	data := tmpl.Provider{
		RecordName: desc.Name,
		Fields:     make([]tmpl.ABIField, 0, len(desc.Fields)),
		TotalSize:  desc.Size,
		FieldCount: len(desc.Fields),
	}
	for _, field := range desc.Fields {
		data.Fields = append(data.Fields, tmpl.ABIField{
			Name:     escapeString(field.Name),
			TypeName: escapeString(field.TypeName),
			Size:     field.Size,
		})
	}

	providerTpl := GetTemplate("tmpl/provider.tmpl")
	codeBuilder := strings.Builder{}
	if err := providerTpl.ExecuteTemplate(&codeBuilder, "provider", data); err != nil {
		return "", fmt.Errorf("failed to render provider for %s: %w", desc.Name, err)
	}

	return codeBuilder.String(), nil
}

// renderFile wraps rendered implementation code into a complete generated
// file, prepending the generator header unless disabled.
func renderFile(code string, options *CodeGenOptions) (string, error) {
	mainData := tmpl.Main{
		Generator: generatorName,
		Version:   Version,
		Header:    !options.NoHeader,
		Comment:   options.HeaderComment,
		Code:      code,
	}

	mainTpl := GetTemplate("tmpl/main.tmpl")
	mainBuilder := strings.Builder{}
	if err := mainTpl.ExecuteTemplate(&mainBuilder, "main", mainData); err != nil {
		return "", fmt.Errorf("failed to render generated file: %w", err)
	}

	return mainBuilder.String(), nil
}

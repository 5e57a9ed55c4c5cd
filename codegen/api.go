// Package codegen emits ABIProvider implementation source for Cairo record
// types. This API allows users to create simple main() functions that
// specify which records to generate and where to save the output.
package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	abigen "github.com/attestkit/cairo-abigen"
)

// GenerationRequest represents a request to generate provider code for a
// set of records into one output file.
type GenerationRequest struct {
	FileName string
	Defs     []abigen.RecordDefinition
}

// CodeGenerator manages batch generation of provider implementations for
// multiple records across multiple output files.
type CodeGenerator struct {
	requests []*GenerationRequest
	engine   *abigen.Engine
	options  *CodeGenOptions
}

// NewCodeGenerator creates a new code generator instance. A nil engine is
// replaced with one using default classification rules.
func NewCodeGenerator(engine *abigen.Engine, opts ...CodeGenOption) *CodeGenerator {
	options := &CodeGenOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if engine == nil {
		engine = abigen.NewEngine(nil)
	}

	return &CodeGenerator{
		requests: make([]*GenerationRequest, 0),
		engine:   engine,
		options:  options,
	}
}

// BuildFile queues the given record definitions for generation into a
// single output file.
func (cg *CodeGenerator) BuildFile(fileName string, defs ...abigen.RecordDefinition) {
	cg.requests = append(cg.requests, &GenerationRequest{
		FileName: fileName,
		Defs:     defs,
	})
}

// GenerateToMap generates code for all requested records and returns it as
// a map of file name to code. Generation stops at the first ineligible
// definition; no partial output is returned.
func (cg *CodeGenerator) GenerateToMap() (map[string]string, error) {
	if len(cg.requests) == 0 {
		return nil, fmt.Errorf("no records requested for generation")
	}

	results := make(map[string]string)

	for _, req := range cg.requests {
		providerCodes := make([]string, 0, len(req.Defs))

		for _, def := range req.Defs {
			if diag := def.Validate(); diag != nil {
				return nil, fmt.Errorf("failed to generate code for %s: %w", def.Name, diag)
			}

			desc := cg.engine.BuildDescriptor(def.Name, def.Fields)
			providerCode, err := generateProvider(desc)
			if err != nil {
				return nil, err
			}
			providerCodes = append(providerCodes, providerCode)
		}

		code, err := renderFile(strings.Join(providerCodes, "\n"), cg.options)
		if err != nil {
			return nil, fmt.Errorf("failed to generate code for %s: %w", req.FileName, err)
		}

		results[req.FileName] = code
	}

	return results, nil
}

// Generate generates code for all requested records and writes each output
// file, creating directories as needed.
func (cg *CodeGenerator) Generate() error {
	results, err := cg.GenerateToMap()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	for fileName, code := range results {
		dir := filepath.Dir(fileName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(fileName, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write code to file %s: %w", fileName, err)
		}
	}

	return nil
}

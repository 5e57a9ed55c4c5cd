package codegen

import (
	abigen "github.com/attestkit/cairo-abigen"
)

// generatorName is embedded in the header of generated files.
const generatorName = "cairo-abigen"

type CodeGenOption func(*CodeGenOptions)

type CodeGenOptions struct {
	Engine        *abigen.Engine
	NoHeader      bool
	HeaderComment string
}

// WithEngine sets the classification engine used for descriptor building.
// When unset, an engine with default classification rules is used.
func WithEngine(engine *abigen.Engine) CodeGenOption {
	return func(opts *CodeGenOptions) {
		opts.Engine = engine
	}
}

// WithNoHeader omits the "Code generated by ..." header from emitted files.
func WithNoHeader() CodeGenOption {
	return func(opts *CodeGenOptions) {
		opts.NoHeader = true
	}
}

// WithHeaderComment adds an extra comment line below the generated header,
// e.g. to record the invocation that produced the file.
func WithHeaderComment(comment string) CodeGenOption {
	return func(opts *CodeGenOptions) {
		opts.HeaderComment = comment
	}
}

// GenerateProviderCode synthesizes the ABIProvider implementation source for
// a single record definition.
//
// The returned text is deterministic: identical definitions always yield
// byte-identical output. Ineligible definitions (enums, aliases, structs
// with positional fields) produce no output and a *abigen.Diagnostic error;
// code is never partially emitted.
func GenerateProviderCode(def abigen.RecordDefinition, opts ...CodeGenOption) (string, error) {
	impl, err := GenerateProvider(def, opts...)
	if err != nil {
		return "", err
	}
	return impl.Code, nil
}

// GenerateProvider is like GenerateProviderCode but returns the structured
// generation result, including the field count embedded in the emitted text.
func GenerateProvider(def abigen.RecordDefinition, opts ...CodeGenOption) (*GeneratedImplementation, error) {
	options := &CodeGenOptions{}
	for _, opt := range opts {
		opt(options)
	}

	engine := options.Engine
	if engine == nil {
		engine = abigen.NewEngine(nil)
	}

	if diag := def.Validate(); diag != nil {
		return nil, diag
	}

	desc := engine.BuildDescriptor(def.Name, def.Fields)

	providerCode, err := generateProvider(desc)
	if err != nil {
		return nil, err
	}

	code, err := renderFile(providerCode, options)
	if err != nil {
		return nil, err
	}

	return &GeneratedImplementation{
		RecordName: desc.Name,
		FieldCount: len(desc.Fields),
		Code:       code,
	}, nil
}

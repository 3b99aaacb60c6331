package config

import (
	"fmt"

	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/template"
)

// OutputFormat selects what a compile writes
type OutputFormat string

const (
	// FormatJS writes the generated module text
	FormatJS OutputFormat = "js"
	// FormatCBOR writes the module text with its diagnostics and bindings as
	// a CBOR artifact
	FormatCBOR OutputFormat = "cbor"
)

// ParseOutputFormat parses "js" or "cbor"
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatJS, "":
		return FormatJS, nil
	case FormatCBOR:
		return FormatCBOR, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Extension is the file extension of outputs in this format
func (f OutputFormat) Extension() string {
	if f == FormatCBOR {
		return ".cbor"
	}
	return ".js"
}

// CompilerConfig represents the compiler configuration
type CompilerConfig struct {
	Mode          template.GenerationMode
	Minify        bool
	RuntimeModule string
	Format        OutputFormat
	// OutDir is where the CLI writes outputs; empty means next to the input
	OutDir string
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{
		Mode:          template.GenerationModeRenderFn,
		Minify:        MinifyDefault(nil, false),
		RuntimeModule: identifiers.Runtime,
		Format:        FormatJS,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithMode sets the generation mode
func WithMode(mode template.GenerationMode) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Mode = mode
	}
}

// WithMinify sets whether output is printed compactly
func WithMinify(minify bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Minify = minify
	}
}

// WithRuntimeModule sets the module runtime helpers are imported from.
// An empty name keeps the current one.
func WithRuntimeModule(module string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		if module != "" {
			c.RuntimeModule = module
		}
	}
}

// WithFormat sets the output format
func WithFormat(format OutputFormat) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Format = format
	}
}

// WithOutDir sets the output directory
func WithOutDir(dir string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.OutDir = dir
	}
}

// MinifyDefault returns the default value for minify
func MinifyDefault(minifyOption *bool, defaultSetting bool) bool {
	if minifyOption == nil {
		return defaultSetting
	}
	return *minifyOption
}

// Package compiler compiles a component unit into one JavaScript module.
package compiler

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"vuec-go/packages/compiler/src/artifact"
	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/codegen"
	"vuec-go/packages/compiler/src/config"
	"vuec-go/packages/compiler/src/descriptor"
	"vuec-go/packages/compiler/src/expression_parser"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/script"
	"vuec-go/packages/compiler/src/template/transform"
	"vuec-go/packages/compiler/src/util"
)

var log = commonlog.GetLogger("vuec.compiler")

// Compiler compiles component units with one configuration. It holds no
// per-compile state and may be shared between goroutines.
type Compiler struct {
	config *config.CompilerConfig
}

// NewCompiler creates a new compiler instance; a nil config uses defaults
func NewCompiler(cfg *config.CompilerConfig) *Compiler {
	if cfg == nil {
		cfg = config.NewCompilerConfig()
	}
	return &Compiler{config: cfg}
}

// Config returns the configuration the compiler runs with
func (c *Compiler) Config() *config.CompilerConfig {
	return c.config
}

// Result is one compiled component
type Result struct {
	Source      string
	Mode        string
	Module      *output.Module
	Code        string
	Diagnostics util.Diagnostics
	Bindings    []binding.Binding
}

// CompileFile loads a descriptor file and compiles it
func (c *Compiler) CompileFile(path string) (*Result, error) {
	d, err := descriptor.Load(path)
	if err != nil {
		return nil, err
	}
	return c.Compile(d)
}

// Compile runs the compilation process. Scripts that are not valid modules
// fail the compile; everything else degrades into diagnostics.
func (c *Compiler) Compile(d *descriptor.Descriptor) (*Result, error) {
	legacy, err := parseScript(d.Script, d.Path+"#script")
	if err != nil {
		return nil, err
	}
	setup, err := parseScript(d.ScriptSetup, d.Path+"#scriptSetup")
	if err != nil {
		return nil, err
	}

	merged := script.Merge(legacy, setup, script.Options{RuntimeModule: c.config.RuntimeModule})
	meta := merged.Metadata()

	transformer := transform.NewTransformer(d.Scopes, meta, transform.Options{Mode: c.config.Mode})
	ctx := codegen.NewCodegenContext(transformer, d.Path)
	templateExpr := ctx.GenerateTemplate(d.Roots)

	module := codegen.GenerateModule(templateExpr, merged.Module, merged.Definition, codegen.ModuleOptions{
		Mode:          c.config.Mode,
		RuntimeModule: c.config.RuntimeModule,
		SetupFn:       merged.SetupFn,
	})

	result := &Result{
		Source:      d.Path,
		Mode:        c.config.Mode.String(),
		Module:      module,
		Code:        output.Stringify(module, c.config.Minify),
		Diagnostics: append(merged.Diagnostics, ctx.Diagnostics...),
		Bindings:    meta.All(),
	}
	for _, diag := range result.Diagnostics {
		log.Debugf("%s: %s", d.Path, diag)
	}
	log.Infof("compiled %s (%s): %d bytes, %d diagnostics", d.Path, c.config.Mode, len(result.Code), len(result.Diagnostics))
	return result, nil
}

// parseScript parses script text as a module. Blank text is no script.
func parseScript(text, url string) (*output.Module, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parser := expression_parser.NewParser(expression_parser.NewLexer())
	module, errs := parser.ParseModule(text, url)
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to parse %s: %w", url, errs)
	}
	return module, nil
}

// Encode renders the result in the given output format
func (r *Result) Encode(format config.OutputFormat) ([]byte, error) {
	switch format {
	case config.FormatCBOR:
		return artifact.Marshal(artifact.New(r.Source, r.Mode, r.Code, r.Diagnostics, r.Bindings))
	case config.FormatJS, "":
		return []byte(r.Code + "\n"), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

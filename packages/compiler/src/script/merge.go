// Package script reconciles the options-style and setup-style scripts of a
// component into one module and one definition object.
package script

import (
	"github.com/tliron/commonlog"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/util"
)

var log = commonlog.GetLogger("vuec.script")

// Options configures Merge
type Options struct {
	// RuntimeModule is the framework import source; its imports are not
	// template bindings. Empty means "vue".
	RuntimeModule string
}

// MergeResult is the outcome of Merge
type MergeResult struct {
	// Module holds the options-style statements without their default
	// export, followed by the imports hoisted from the setup script
	Module *output.Module
	// Definition is the component object. Options fields come first, in
	// source order and with duplicates kept, then the setup-derived fields.
	Definition    *output.LiteralMapExpr
	Vars          *binding.LegacyVars
	SetupBindings binding.SetupBindings
	// SetupFn is the synthesized setup method, nil without a setup script
	SetupFn     *output.FunctionExpr
	Diagnostics util.Diagnostics
}

// Metadata is the binding view of the result used by the transformer
func (r *MergeResult) Metadata() *binding.Metadata {
	return binding.NewMetadata(r.Vars, r.SetupBindings)
}

// Merge analyzes the options-style module, then appends what the setup
// module declares. Either module may be nil. Both modules are consumed.
func Merge(legacy, setup *output.Module, opts Options) *MergeResult {
	if opts.RuntimeModule == "" {
		opts.RuntimeModule = identifiers.Runtime
	}
	if legacy == nil {
		legacy = output.NewModule(nil)
	}
	result := &MergeResult{Module: legacy, Vars: &binding.LegacyVars{}}

	result.Definition = TakeDefaultExport(legacy, &result.Diagnostics)
	AnalyzeDefinition(result.Definition, result.Vars, &result.Diagnostics)
	topLevel := analyzeTopLevel(legacy, result.Vars, setup != nil)

	if setup != nil {
		s := processSetup(setup, opts.RuntimeModule, &result.Diagnostics)
		legacy.Append(s.hoisted...)
		result.SetupBindings = s.bindings
		if s.props != nil {
			result.Definition.Entries = append(result.Definition.Entries, output.NewLiteralMapEntry("props", s.props, false))
		}
		if s.emits != nil {
			result.Definition.Entries = append(result.Definition.Entries, output.NewLiteralMapEntry("emits", s.emits, false))
		}
		result.SetupFn = s.setupFunction(topLevel)
		result.Definition.Entries = append(result.Definition.Entries, output.NewMethodEntry("setup", result.SetupFn))
	}

	log.Debugf("merged %d definition fields, %d setup bindings, %d diagnostics",
		len(result.Definition.Entries), len(result.SetupBindings), len(result.Diagnostics))
	return result
}

// analyzeTopLevel records module imports. With a setup script present, the
// module's own declarations are exposed through setup as well; their names
// are returned.
func analyzeTopLevel(module *output.Module, vars *binding.LegacyVars, dual bool) []string {
	var declared []string
	for _, stmt := range module.Body {
		switch s := stmt.(type) {
		case *output.ImportDecl:
			vars.Imports = append(vars.Imports, s.LocalNames()...)
		case *output.ExportNamedStmt:
			if s.Decl != nil {
				declared = append(declared, declaredNames(s.Decl)...)
			}
		default:
			declared = append(declared, declaredNames(stmt)...)
		}
	}
	if !dual {
		return nil
	}
	vars.Setup = append(vars.Setup, declared...)
	return declared
}

func declaredNames(stmt output.OutputStatement) []string {
	switch s := stmt.(type) {
	case *output.DeclareVarStmt:
		return s.BoundNames()
	case *output.DeclareFunctionStmt:
		return []string{s.Name}
	}
	return nil
}

package codegen

import (
	"sort"

	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/template/transform"
)

// ModuleOptions controls how the template is attached to the definition
type ModuleOptions struct {
	Mode template.GenerationMode
	// RuntimeModule is the import source of helpers; empty means "vue"
	RuntimeModule string
	// SetupFn is the synthesized setup method. In inline mode it returns
	// the render closure instead of a bindings object.
	SetupFn *output.FunctionExpr
}

// renderParams is the full render function signature, used when the
// template reads a binding namespace
var renderParams = []string{
	transform.CtxParam,
	transform.CacheParam,
	transform.PropsNamespace,
	transform.SetupNamespace,
	transform.DataNamespace,
	transform.OptionsNamespace,
}

// GenerateModule appends the helper import and the default export to
// module. The render function closes the definition object unless inline
// mode hands the template to SetupFn.
func GenerateModule(templateExpr output.OutputExpression, module *output.Module, definition *output.LiteralMapExpr, opts ModuleOptions) *output.Module {
	if module == nil {
		module = output.NewModule(nil)
	}
	if definition == nil {
		definition = output.NewLiteralMapExpr(nil)
	}

	if opts.Mode == template.GenerationModeInline && opts.SetupFn != nil {
		attachInlineRender(opts.SetupFn, templateExpr)
	} else {
		definition.Entries = append(definition.Entries, output.NewMethodEntry("render", renderFunction(templateExpr)))
	}

	if imports := helperImport(templateExpr, opts.RuntimeModule); imports != nil {
		module.Append(imports)
	}
	module.Append(output.NewExportDefaultStmt(definition))
	return module
}

func renderFunction(templateExpr output.OutputExpression) *output.FunctionExpr {
	names := []string{transform.CtxParam}
	if transform.UsesNamespace(templateExpr) {
		names = renderParams
	}
	params := make([]*output.FnParam, len(names))
	for i, name := range names {
		params[i] = output.NewFnParam(name)
	}
	return output.NewFunctionExpr(params, []output.OutputStatement{output.NewReturnStatement(templateExpr)}, nil)
}

// attachInlineRender makes setup return `(_ctx, _cache) => template`,
// replacing its trailing bindings return
func attachInlineRender(setup *output.FunctionExpr, templateExpr output.OutputExpression) {
	render := output.NewArrowFunctionExpr(
		[]*output.FnParam{output.NewFnParam(transform.CtxParam), output.NewFnParam(transform.CacheParam)},
		templateExpr,
	)
	ret := output.NewReturnStatement(render)
	if n := len(setup.Statements); n > 0 {
		if _, ok := setup.Statements[n-1].(*output.ReturnStatement); ok {
			setup.Statements[n-1] = ret
			return
		}
	}
	setup.Statements = append(setup.Statements, ret)
}

// helperImport imports exactly the runtime helpers the template uses,
// sorted by name. It returns nil when there are none.
func helperImport(templateExpr output.OutputExpression, runtimeModule string) *output.ImportDecl {
	if runtimeModule == "" {
		runtimeModule = identifiers.Runtime
	}
	refs := output.CollectExternalReferences(templateExpr)
	if len(refs) == 0 {
		return nil
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	specifiers := make([]*output.ImportSpecifier, len(refs))
	for i, ref := range refs {
		specifiers[i] = &output.ImportSpecifier{
			Kind:     output.ImportSpecifierNamed,
			Imported: ref.Name,
			Local:    ref.Alias(),
		}
	}
	return output.NewImportDecl(specifiers, runtimeModule)
}

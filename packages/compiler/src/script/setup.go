package script

import (
	"strings"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/util"
)

// Parameters of the synthesized setup function
const (
	PropsParam  = "__props"
	ExposeParam = "__expose"
	EmitParam   = "__emit"
)

// Compiler macros of the setup style
const (
	defineProps  = "defineProps"
	defineEmits  = "defineEmits"
	defineExpose = "defineExpose"
)

// calls whose result is a ref and needs `.value` when read
var refFactories = map[string]bool{
	"ref":        true,
	"shallowRef": true,
	"toRef":      true,
	"customRef":  true,
}

type setupScript struct {
	runtimeModule string
	diags         *util.Diagnostics
	// imports and exports moved to module level
	hoisted  []output.OutputStatement
	body     []output.OutputStatement
	bindings binding.SetupBindings
	props    output.OutputExpression
	emits    output.OutputExpression
}

func processSetup(module *output.Module, runtimeModule string, diags *util.Diagnostics) *setupScript {
	s := &setupScript{runtimeModule: runtimeModule, diags: diags}
	for _, stmt := range module.Body {
		switch st := stmt.(type) {
		case *output.ImportDecl:
			s.hoisted = append(s.hoisted, st)
			s.recordImport(st)
		case *output.ExportNamedStmt:
			s.hoisted = append(s.hoisted, st)
		case *output.ExportDefaultStmt:
			diags.Warn(util.DiagnosticUnsupportedDefaultExport, "setup script cannot have a default export, ignoring it")
		case *output.ExpressionStatement:
			if s.expressionMacro(st) {
				continue
			}
			s.body = append(s.body, st)
		case *output.DeclareVarStmt:
			s.declareVars(st)
			s.body = append(s.body, st)
		case *output.DeclareFunctionStmt:
			s.record(st.Name, binding.BindingSetupPlain)
			s.body = append(s.body, st)
		default:
			s.body = append(s.body, stmt)
		}
	}
	return s
}

func (s *setupScript) record(name string, typ binding.BindingType) {
	if isDirectiveName(name) {
		typ = binding.BindingDirective
	}
	s.bindings.Add(name, typ)
}

// `vFocus` is usable as `v-focus`
func isDirectiveName(name string) bool {
	return len(name) > 1 && name[0] == 'v' && util.IsPascalCase(name[1:])
}

func (s *setupScript) recordImport(decl *output.ImportDecl) {
	if decl.Source == s.runtimeModule {
		return
	}
	component := strings.HasSuffix(decl.Source, ".vue")
	for _, local := range decl.LocalNames() {
		switch {
		case component || util.IsPascalCase(local):
			s.record(local, binding.BindingComponent)
		default:
			s.record(local, binding.BindingImported)
		}
	}
}

// macroCall returns the macro name when expr is a call to one
func macroCall(expr output.OutputExpression) (*output.InvokeFunctionExpr, string) {
	call, ok := output.Unparenthesize(expr).(*output.InvokeFunctionExpr)
	if !ok {
		return nil, ""
	}
	callee, ok := call.Fn.(*output.ReadVarExpr)
	if !ok {
		return nil, ""
	}
	switch callee.Name {
	case defineProps, defineEmits, defineExpose:
		return call, callee.Name
	}
	return nil, ""
}

// expressionMacro handles a macro used as a statement. It reports whether
// the statement is consumed.
func (s *setupScript) expressionMacro(stmt *output.ExpressionStatement) bool {
	call, name := macroCall(stmt.Expr)
	switch name {
	case defineProps:
		s.setProps(call)
		return true
	case defineEmits:
		s.setEmits(call)
		return true
	case defineExpose:
		stmt.Expr = output.NewInvokeFunctionExpr(output.Variable(ExposeParam), call.Args)
	}
	return false
}

func (s *setupScript) setProps(call *output.InvokeFunctionExpr) {
	if len(call.Args) == 0 {
		return
	}
	s.props = call.Args[0]
	names := arrayStrings(s.props)
	names = append(names, objectKeys(s.props)...)
	for _, name := range names {
		s.bindings.Add(name, binding.BindingProp)
	}
}

func (s *setupScript) setEmits(call *output.InvokeFunctionExpr) {
	if len(call.Args) > 0 {
		s.emits = call.Args[0]
	}
}

func (s *setupScript) declareVars(stmt *output.DeclareVarStmt) {
	for _, decl := range stmt.Declarations {
		if call, name := macroCall(decl.Value); call != nil {
			switch name {
			case defineProps:
				s.setProps(call)
				decl.Value = output.Variable(PropsParam)
			case defineEmits:
				s.setEmits(call)
				decl.Value = output.Variable(EmitParam)
			case defineExpose:
				decl.Value = output.NewInvokeFunctionExpr(output.Variable(ExposeParam), call.Args)
			}
			for _, bound := range decl.Target.BoundNames() {
				s.record(bound, binding.BindingSetupPlain)
			}
			continue
		}

		typ := binding.BindingSetupPlain
		if _, plain := decl.Target.(*output.IdentifierPattern); plain {
			typ = inferBindingType(stmt.Kind, decl.Value)
		}
		for _, bound := range decl.Target.BoundNames() {
			s.record(bound, typ)
		}
	}
}

// inferBindingType classifies a declaration by its initializer. Only const
// declarations can be refs, computed values or literal constants.
func inferBindingType(kind output.VarKind, value output.OutputExpression) binding.BindingType {
	if kind != output.VarKindConst || value == nil {
		return binding.BindingSetupPlain
	}
	switch v := output.Unparenthesize(value).(type) {
	case *output.InvokeFunctionExpr:
		if callee, ok := v.Fn.(*output.ReadVarExpr); ok {
			if refFactories[callee.Name] {
				return binding.BindingSetupReactive
			}
			if callee.Name == "computed" {
				return binding.BindingComputed
			}
		}
	case *output.LiteralExpr:
		return binding.BindingLiteralConst
	case *output.TemplateLiteralExpr:
		if v.IsStatic() {
			return binding.BindingLiteralConst
		}
	}
	return binding.BindingSetupPlain
}

// setupFunction builds
//
//	setup(__props, { expose: __expose, emit: __emit }) { ...; return { ... } }
//
// returning every non-prop binding plus the extra module-level names
func (s *setupScript) setupFunction(extra []string) *output.FunctionExpr {
	var entries []*output.LiteralMapEntry
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			entries = append(entries, output.NewShorthandEntry(name))
		}
	}
	for _, name := range extra {
		add(name)
	}
	for _, b := range s.bindings {
		if b.Type != binding.BindingProp {
			add(b.Name)
		}
	}

	context := &output.ObjectPattern{Properties: []*output.ObjectPatternProperty{
		{Key: "expose", Value: output.NewIdentifierPattern(ExposeParam)},
		{Key: "emit", Value: output.NewIdentifierPattern(EmitParam)},
	}}
	params := []*output.FnParam{output.NewFnParam(PropsParam), {Pattern: context}}
	statements := append(s.body, output.NewReturnStatement(output.NewLiteralMapExpr(entries)))
	return output.NewFunctionExpr(params, statements, nil)
}

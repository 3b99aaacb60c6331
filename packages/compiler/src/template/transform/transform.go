package transform

import (
	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
)

// TransformScoped rewrites every free identifier of expr as seen from
// scope. Nodes are modified in place; the returned expression replaces expr
// when the root itself was an identifier. hasJS reports whether any
// identifier needs runtime evaluation. It never fails: unknown identifiers
// read from the render context.
func (t *Transformer) TransformScoped(expr output.OutputExpression, scope template.ScopeID) (output.OutputExpression, bool) {
	r := &rewriter{t: t, scope: scope}
	return r.expr(expr), r.hasJS
}

type rewriter struct {
	t     *Transformer
	scope template.ScopeID
	// names bound by functions inside the expression
	locals []map[string]bool
	hasJS  bool
}

func (r *rewriter) push(names []string) {
	frame := make(map[string]bool, len(names))
	for _, n := range names {
		frame[n] = true
	}
	r.locals = append(r.locals, frame)
}

func (r *rewriter) pop() {
	r.locals = r.locals[:len(r.locals)-1]
}

func (r *rewriter) isLocal(name string) bool {
	for i := len(r.locals) - 1; i >= 0; i-- {
		if r.locals[i][name] {
			return true
		}
	}
	return false
}

func (r *rewriter) identifier(v *output.ReadVarExpr) output.OutputExpression {
	if r.isLocal(v.Name) {
		r.hasJS = true
		return v
	}
	res := r.t.Resolve(r.scope, v.Name)
	switch res.Kind {
	case ResolutionGlobal:
		return v
	case ResolutionLocal:
		r.hasJS = true
		return v
	case ResolutionBinding:
		if res.Binding.Type == binding.BindingLiteralConst {
			return v
		}
	}
	r.hasJS = true
	rewritten := r.t.Rewrite(v.Name, res)
	if s, ok := rewritten.(interface{ SetSpan(output.Span) }); ok {
		s.SetSpan(v.GetSpan())
	}
	return rewritten
}

func (r *rewriter) exprs(list []output.OutputExpression) {
	for i, e := range list {
		if e != nil {
			list[i] = r.expr(e)
		}
	}
}

func (r *rewriter) expr(expr output.OutputExpression) output.OutputExpression {
	switch e := expr.(type) {
	case nil:
		return nil
	case *output.ReadVarExpr:
		return r.identifier(e)
	case *output.BinaryOperatorExpr:
		e.Lhs = r.expr(e.Lhs)
		e.Rhs = r.expr(e.Rhs)
	case *output.ConditionalExpr:
		e.Condition = r.expr(e.Condition)
		e.TrueCase = r.expr(e.TrueCase)
		e.FalseCase = r.expr(e.FalseCase)
	case *output.InvokeFunctionExpr:
		e.Fn = r.expr(e.Fn)
		r.exprs(e.Args)
	case *output.InstantiateExpr:
		e.ClassExpr = r.expr(e.ClassExpr)
		r.exprs(e.Args)
	case *output.TaggedTemplateLiteralExpr:
		e.Tag = r.expr(e.Tag)
		r.exprs(e.Template.Expressions)
	case *output.TemplateLiteralExpr:
		r.exprs(e.Expressions)
	case *output.NotExpr:
		e.Condition = r.expr(e.Condition)
	case *output.UnaryOperatorExpr:
		e.Expr = r.expr(e.Expr)
	case *output.UpdateExpr:
		e.Expr = r.expr(e.Expr)
	case *output.TypeofExpr:
		e.Expr = r.expr(e.Expr)
	case *output.VoidExpr:
		e.Expr = r.expr(e.Expr)
	case *output.AwaitExpr:
		e.Expr = r.expr(e.Expr)
	case *output.ParenthesizedExpr:
		e.Expr = r.expr(e.Expr)
	case *output.SpreadElementExpr:
		e.Expr = r.expr(e.Expr)
	case *output.ReadPropExpr:
		// the property name is never an identifier reference
		e.Receiver = r.expr(e.Receiver)
	case *output.ReadKeyExpr:
		e.Receiver = r.expr(e.Receiver)
		e.Index = r.expr(e.Index)
	case *output.LiteralArrayExpr:
		r.exprs(e.Entries)
	case *output.LiteralMapExpr:
		for _, entry := range e.Entries {
			r.mapEntry(entry)
		}
	case *output.CommaExpr:
		r.exprs(e.Parts)
	case *output.FunctionExpr:
		r.function(e.Params, e.Statements, e.Name)
	case *output.ArrowFunctionExpr:
		r.arrow(e)
	}
	return expr
}

func (r *rewriter) mapEntry(entry *output.LiteralMapEntry) {
	if entry.KeyExpr != nil {
		entry.KeyExpr = r.expr(entry.KeyExpr)
	}
	if entry.Kind != output.LiteralMapEntryShorthand {
		entry.Value = r.expr(entry.Value)
		return
	}
	value := r.expr(output.NewReadVarExpr(entry.Key))
	if v, ok := value.(*output.ReadVarExpr); ok && v.Name == entry.Key {
		entry.Value = v
		return
	}
	// `{ foo }` becomes `{ foo: $setup.foo }`
	entry.Kind = output.LiteralMapEntryKeyValue
	entry.Value = value
}

func (r *rewriter) function(params []*output.FnParam, body []output.OutputStatement, name *string) {
	names := paramNames(params)
	if name != nil {
		names = append(names, *name)
	}
	r.push(append(names, declaredNames(body)...))
	defer r.pop()
	r.params(params)
	r.stmts(body)
}

func (r *rewriter) arrow(a *output.ArrowFunctionExpr) {
	names := paramNames(a.Params)
	if stmts, ok := a.BlockBody(); ok {
		names = append(names, declaredNames(stmts)...)
	}
	r.push(names)
	defer r.pop()
	r.params(a.Params)
	switch body := a.Body.(type) {
	case output.OutputExpression:
		a.Body = r.expr(body)
	case []output.OutputStatement:
		r.stmts(body)
	}
}

func paramNames(params []*output.FnParam) []string {
	var names []string
	for _, p := range params {
		names = append(names, p.BoundNames()...)
	}
	return names
}

func (r *rewriter) params(params []*output.FnParam) {
	for _, p := range params {
		r.pattern(p.Pattern)
	}
}

// only defaults and computed keys of patterns hold references
func (r *rewriter) pattern(pattern output.BindingPattern) {
	switch p := pattern.(type) {
	case *output.AssignmentPattern:
		r.pattern(p.Target)
		p.Default = r.expr(p.Default)
	case *output.ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				r.pattern(el)
			}
		}
	case *output.ObjectPattern:
		for _, prop := range p.Properties {
			if prop.KeyExpr != nil {
				prop.KeyExpr = r.expr(prop.KeyExpr)
			}
			r.pattern(prop.Value)
		}
	}
}

func (r *rewriter) stmts(list []output.OutputStatement) {
	for _, stmt := range list {
		r.stmt(stmt)
	}
}

func (r *rewriter) stmt(stmt output.OutputStatement) {
	switch s := stmt.(type) {
	case *output.ExpressionStatement:
		s.Expr = r.expr(s.Expr)
	case *output.ReturnStatement:
		s.Value = r.expr(s.Value)
	case *output.DeclareVarStmt:
		for _, decl := range s.Declarations {
			r.pattern(decl.Target)
			decl.Value = r.expr(decl.Value)
		}
	case *output.DeclareFunctionStmt:
		r.function(s.Params, s.Statements, nil)
	case *output.IfStmt:
		s.Condition = r.expr(s.Condition)
		r.stmts(s.TrueCase)
		r.stmts(s.FalseCase)
	case *output.BlockStmt:
		r.stmts(s.Statements)
	case *output.ThrowStmt:
		s.Expr = r.expr(s.Expr)
	case *output.ForOfStmt:
		s.Iterable = r.expr(s.Iterable)
		r.stmts(s.Body)
	case *output.ForStmt:
		r.stmt(s.Init)
		s.Test = r.expr(s.Test)
		s.Update = r.expr(s.Update)
		r.stmts(s.Body)
	case *output.WhileStmt:
		s.Condition = r.expr(s.Condition)
		r.stmts(s.Body)
	case *output.TryStmt:
		r.stmts(s.Block)
		r.stmts(s.Handler)
		r.stmts(s.Finalizer)
	}
}

// declaredNames collects the names a function body declares, including
// nested blocks but not nested functions
func declaredNames(stmts []output.OutputStatement) []string {
	var names []string
	var visit func(list []output.OutputStatement)
	visit = func(list []output.OutputStatement) {
		for _, stmt := range list {
			switch s := stmt.(type) {
			case *output.DeclareVarStmt:
				names = append(names, s.BoundNames()...)
			case *output.DeclareFunctionStmt:
				names = append(names, s.Name)
			case *output.IfStmt:
				visit(s.TrueCase)
				visit(s.FalseCase)
			case *output.BlockStmt:
				visit(s.Statements)
			case *output.ForOfStmt:
				if s.Declared {
					names = append(names, s.Target.BoundNames()...)
				}
				visit(s.Body)
			case *output.ForStmt:
				if s.Init != nil {
					visit([]output.OutputStatement{s.Init})
				}
				visit(s.Body)
			case *output.WhileStmt:
				visit(s.Body)
			case *output.TryStmt:
				visit(s.Block)
				if s.CatchParam != nil {
					names = append(names, s.CatchParam.BoundNames()...)
				}
				visit(s.Handler)
				visit(s.Finalizer)
			}
		}
	}
	visit(stmts)
	return names
}

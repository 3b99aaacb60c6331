package output

// Inspect traverses node in depth-first order, calling fn for every
// expression. If fn returns false the children of that expression are
// skipped. node may be an expression, a statement, a statement list or a
// module. Function bodies are entered.
func Inspect(node interface{}, fn func(OutputExpression) bool) {
	switch n := node.(type) {
	case nil:
	case OutputExpression:
		inspectExpr(n, fn)
	case OutputStatement:
		inspectStmt(n, fn)
	case []OutputStatement:
		for _, stmt := range n {
			inspectStmt(stmt, fn)
		}
	case *Module:
		for _, stmt := range n.Body {
			inspectStmt(stmt, fn)
		}
	}
}

func inspectExprs(exprs []OutputExpression, fn func(OutputExpression) bool) {
	for _, e := range exprs {
		if e != nil {
			inspectExpr(e, fn)
		}
	}
}

func inspectExpr(expr OutputExpression, fn func(OutputExpression) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case *BinaryOperatorExpr:
		inspectExpr(e.Lhs, fn)
		inspectExpr(e.Rhs, fn)
	case *ConditionalExpr:
		inspectExpr(e.Condition, fn)
		inspectExpr(e.TrueCase, fn)
		inspectExpr(e.FalseCase, fn)
	case *InvokeFunctionExpr:
		inspectExpr(e.Fn, fn)
		inspectExprs(e.Args, fn)
	case *InstantiateExpr:
		inspectExpr(e.ClassExpr, fn)
		inspectExprs(e.Args, fn)
	case *TaggedTemplateLiteralExpr:
		inspectExpr(e.Tag, fn)
		inspectExpr(e.Template, fn)
	case *TemplateLiteralExpr:
		inspectExprs(e.Expressions, fn)
	case *NotExpr:
		inspectExpr(e.Condition, fn)
	case *UnaryOperatorExpr:
		inspectExpr(e.Expr, fn)
	case *UpdateExpr:
		inspectExpr(e.Expr, fn)
	case *TypeofExpr:
		inspectExpr(e.Expr, fn)
	case *VoidExpr:
		inspectExpr(e.Expr, fn)
	case *AwaitExpr:
		inspectExpr(e.Expr, fn)
	case *ParenthesizedExpr:
		inspectExpr(e.Expr, fn)
	case *SpreadElementExpr:
		inspectExpr(e.Expr, fn)
	case *ReadPropExpr:
		inspectExpr(e.Receiver, fn)
	case *ReadKeyExpr:
		inspectExpr(e.Receiver, fn)
		inspectExpr(e.Index, fn)
	case *LiteralArrayExpr:
		inspectExprs(e.Entries, fn)
	case *LiteralMapExpr:
		for _, entry := range e.Entries {
			inspectExpr(entry.KeyExpr, fn)
			inspectExpr(entry.Value, fn)
		}
	case *CommaExpr:
		inspectExprs(e.Parts, fn)
	case *FunctionExpr:
		inspectParams(e.Params, fn)
		for _, stmt := range e.Statements {
			inspectStmt(stmt, fn)
		}
	case *ArrowFunctionExpr:
		inspectParams(e.Params, fn)
		switch body := e.Body.(type) {
		case OutputExpression:
			inspectExpr(body, fn)
		case []OutputStatement:
			for _, stmt := range body {
				inspectStmt(stmt, fn)
			}
		}
	}
}

func inspectParams(params []*FnParam, fn func(OutputExpression) bool) {
	for _, p := range params {
		inspectPattern(p.Pattern, fn)
	}
}

// only default values and computed keys inside patterns are expressions
func inspectPattern(pattern BindingPattern, fn func(OutputExpression) bool) {
	switch p := pattern.(type) {
	case *AssignmentPattern:
		inspectPattern(p.Target, fn)
		inspectExpr(p.Default, fn)
	case *ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				inspectPattern(el, fn)
			}
		}
		if p.Rest != nil {
			inspectPattern(p.Rest, fn)
		}
	case *ObjectPattern:
		for _, prop := range p.Properties {
			inspectExpr(prop.KeyExpr, fn)
			inspectPattern(prop.Value, fn)
		}
		if p.Rest != nil {
			inspectPattern(p.Rest, fn)
		}
	}
}

func inspectStmt(stmt OutputStatement, fn func(OutputExpression) bool) {
	switch s := stmt.(type) {
	case nil:
	case *ExpressionStatement:
		inspectExpr(s.Expr, fn)
	case *ReturnStatement:
		inspectExpr(s.Value, fn)
	case *DeclareVarStmt:
		for _, decl := range s.Declarations {
			inspectPattern(decl.Target, fn)
			inspectExpr(decl.Value, fn)
		}
	case *DeclareFunctionStmt:
		inspectParams(s.Params, fn)
		Inspect(s.Statements, fn)
	case *IfStmt:
		inspectExpr(s.Condition, fn)
		Inspect(s.TrueCase, fn)
		Inspect(s.FalseCase, fn)
	case *BlockStmt:
		Inspect(s.Statements, fn)
	case *ThrowStmt:
		inspectExpr(s.Expr, fn)
	case *ForOfStmt:
		inspectPattern(s.Target, fn)
		inspectExpr(s.Iterable, fn)
		Inspect(s.Body, fn)
	case *ForStmt:
		inspectStmt(s.Init, fn)
		inspectExpr(s.Test, fn)
		inspectExpr(s.Update, fn)
		Inspect(s.Body, fn)
	case *WhileStmt:
		inspectExpr(s.Condition, fn)
		Inspect(s.Body, fn)
	case *TryStmt:
		Inspect(s.Block, fn)
		if s.CatchParam != nil {
			inspectPattern(s.CatchParam, fn)
		}
		Inspect(s.Handler, fn)
		Inspect(s.Finalizer, fn)
	case *ExportDefaultStmt:
		inspectExpr(s.Expr, fn)
	case *ExportNamedStmt:
		inspectStmt(s.Decl, fn)
	}
}

// CollectExternalReferences returns the distinct external references used
// by node, in first-use order.
func CollectExternalReferences(node interface{}) []*ExternalReference {
	seen := map[ExternalReference]bool{}
	var refs []*ExternalReference
	Inspect(node, func(expr OutputExpression) bool {
		if ext, ok := expr.(*ExternalExpr); ok && !seen[*ext.Value] {
			seen[*ext.Value] = true
			refs = append(refs, ext.Value)
		}
		return true
	})
	return refs
}

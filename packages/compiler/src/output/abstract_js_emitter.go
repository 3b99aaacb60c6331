package output

import (
	"fmt"
)

// Stringify prints an expression, statement, statement list or module.
// Pretty output is indented with four spaces; minified output has no
// optional whitespace.
func Stringify(node interface{}, minify bool) string {
	v := NewEmitterVisitor(minify)
	ctx := CreateRootEmitterVisitorContext()
	switch n := node.(type) {
	case OutputExpression:
		v.visitExpr(n, LLowest, ctx)
	case OutputStatement:
		n.VisitStatement(v, ctx)
	case []OutputStatement:
		v.VisitAllStatements(n, ctx)
	case *Module:
		v.VisitModule(n, ctx)
	default:
		panic(fmt.Sprintf("cannot stringify %T", node))
	}
	return ctx.ToSource()
}

// VisitModule prints every statement of the module
func (v *EmitterVisitor) VisitModule(module *Module, ctx *EmitterVisitorContext) {
	v.VisitAllStatements(module.Body, ctx)
}

// VisitAllStatements visits all statements
func (v *EmitterVisitor) VisitAllStatements(statements []OutputStatement, ctx *EmitterVisitorContext) {
	for _, stmt := range statements {
		stmt.VisitStatement(v, ctx)
	}
}

// visitBlock prints `{ ... }` without a trailing line break
func (v *EmitterVisitor) visitBlock(statements []OutputStatement, ctx *EmitterVisitorContext) {
	if len(statements) == 0 {
		ctx.Print("{}", false)
		return
	}
	v.println(ctx, "{")
	ctx.IncIndent()
	v.VisitAllStatements(statements, ctx)
	ctx.DecIndent()
	ctx.Print("}", false)
}

// visitParams visits function parameters
func (v *EmitterVisitor) visitParams(params []*FnParam, ctx *EmitterVisitorContext) {
	ctx.Print("(", false)
	for i, param := range params {
		if i > 0 {
			ctx.Print(",", false)
			v.space(ctx)
		}
		if param.Rest {
			ctx.Print("...", false)
		}
		v.visitPattern(param.Pattern, ctx)
	}
	ctx.Print(")", false)
}

// visitFunctionTail prints `(params) { body }`
func (v *EmitterVisitor) visitFunctionTail(params []*FnParam, statements []OutputStatement, ctx *EmitterVisitorContext) {
	v.visitParams(params, ctx)
	v.space(ctx)
	v.visitBlock(statements, ctx)
}

func (v *EmitterVisitor) visitPattern(pattern BindingPattern, ctx *EmitterVisitorContext) {
	switch p := pattern.(type) {
	case *IdentifierPattern:
		ctx.Print(p.Name, false)
	case *AssignmentPattern:
		v.visitPattern(p.Target, ctx)
		v.space(ctx)
		ctx.Print("=", false)
		v.space(ctx)
		v.visitExpr(p.Default, LAssign, ctx)
	case *ArrayPattern:
		ctx.Print("[", false)
		for i, el := range p.Elements {
			if i > 0 {
				ctx.Print(",", false)
				v.space(ctx)
			}
			if el != nil {
				v.visitPattern(el, ctx)
			} else if i == len(p.Elements)-1 && p.Rest == nil {
				ctx.Print(",", false)
			}
		}
		if p.Rest != nil {
			if len(p.Elements) > 0 {
				ctx.Print(",", false)
				v.space(ctx)
			}
			ctx.Print("...", false)
			v.visitPattern(p.Rest, ctx)
		}
		ctx.Print("]", false)
	case *ObjectPattern:
		if len(p.Properties) == 0 && p.Rest == nil {
			ctx.Print("{}", false)
			return
		}
		ctx.Print("{", false)
		v.space(ctx)
		for i, prop := range p.Properties {
			if i > 0 {
				ctx.Print(",", false)
				v.space(ctx)
			}
			v.visitPatternProperty(prop, ctx)
		}
		if p.Rest != nil {
			if len(p.Properties) > 0 {
				ctx.Print(",", false)
				v.space(ctx)
			}
			ctx.Print("...", false)
			v.visitPattern(p.Rest, ctx)
		}
		v.space(ctx)
		ctx.Print("}", false)
	default:
		panic(fmt.Sprintf("unknown pattern %T", pattern))
	}
}

func (v *EmitterVisitor) visitPatternProperty(prop *ObjectPatternProperty, ctx *EmitterVisitorContext) {
	if prop.Shorthand {
		v.visitPattern(prop.Value, ctx)
		return
	}
	if prop.KeyExpr != nil {
		ctx.Print("[", false)
		v.visitExpr(prop.KeyExpr, LAssign, ctx)
		ctx.Print("]", false)
	} else {
		ctx.Print(EscapeKey(prop.Key, false), false)
	}
	ctx.Print(":", false)
	v.space(ctx)
	v.visitPattern(prop.Value, ctx)
}

// VisitFunctionExpr visits a function expression
func (v *EmitterVisitor) VisitFunctionExpr(ast *FunctionExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	if ast.Async {
		ctx.Print("async ", false)
	}
	ctx.Print("function", false)
	if ast.Generator {
		ctx.Print("*", false)
	}
	if ast.Name != nil {
		ctx.Print(" "+*ast.Name, false)
	} else {
		v.space(ctx)
	}
	v.visitFunctionTail(ast.Params, ast.Statements, ctx)
	return nil
}

// VisitArrowFunctionExpr visits an arrow function expression
func (v *EmitterVisitor) VisitArrowFunctionExpr(ast *ArrowFunctionExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	if ast.Async {
		ctx.Print("async", false)
		v.space(ctx)
	}
	v.visitParams(ast.Params, ctx)
	v.space(ctx)
	ctx.Print("=>", false)
	v.space(ctx)

	if stmts, ok := ast.Body.([]OutputStatement); ok {
		v.visitBlock(stmts, ctx)
	} else if expr, ok := ast.Body.(OutputExpression); ok {
		if startsWithBrace(expr) {
			ctx.Print("(", false)
			expr.VisitExpression(v, ctx)
			ctx.Print(")", false)
		} else {
			v.visitExpr(expr, LAssign, ctx)
		}
	}
	return nil
}

// VisitExpressionStmt visits an expression statement
func (v *EmitterVisitor) VisitExpressionStmt(stmt *ExpressionStatement, context interface{}) interface{} {
	ctx := v.getContext(context)
	if startsWithBrace(stmt.Expr) {
		ctx.Print("(", false)
		stmt.Expr.VisitExpression(v, ctx)
		ctx.Print(")", false)
	} else {
		v.visitExpr(stmt.Expr, LLowest, ctx)
	}
	v.println(ctx, ";")
	return nil
}

// VisitReturnStmt visits a return statement
func (v *EmitterVisitor) VisitReturnStmt(stmt *ReturnStatement, context interface{}) interface{} {
	ctx := v.getContext(context)
	if stmt.Value == nil {
		v.println(ctx, "return;")
		return nil
	}
	ctx.Print("return ", false)
	v.visitExpr(stmt.Value, LLowest, ctx)
	v.println(ctx, ";")
	return nil
}

// VisitDeclareVarStmt visits a declare variable statement
func (v *EmitterVisitor) VisitDeclareVarStmt(stmt *DeclareVarStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitVarDeclarations(stmt, ctx)
	v.println(ctx, ";")
	return nil
}

func (v *EmitterVisitor) visitVarDeclarations(stmt *DeclareVarStmt, ctx *EmitterVisitorContext) {
	ctx.Print(stmt.Kind.String()+" ", false)
	for i, decl := range stmt.Declarations {
		if i > 0 {
			ctx.Print(",", false)
			v.space(ctx)
		}
		v.visitPattern(decl.Target, ctx)
		if decl.Value != nil {
			v.space(ctx)
			ctx.Print("=", false)
			v.space(ctx)
			v.visitExpr(decl.Value, LAssign, ctx)
		}
	}
}

// VisitDeclareFunctionStmt visits a declare function statement
func (v *EmitterVisitor) VisitDeclareFunctionStmt(stmt *DeclareFunctionStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	if stmt.Async {
		ctx.Print("async ", false)
	}
	ctx.Print("function", false)
	if stmt.Generator {
		ctx.Print("*", false)
	}
	ctx.Print(" "+stmt.Name, false)
	v.visitFunctionTail(stmt.Params, stmt.Statements, ctx)
	v.println(ctx, "")
	return nil
}

// VisitIfStmt visits an if statement
func (v *EmitterVisitor) VisitIfStmt(stmt *IfStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitIfChain(stmt, ctx)
	v.println(ctx, "")
	return nil
}

func (v *EmitterVisitor) visitIfChain(stmt *IfStmt, ctx *EmitterVisitorContext) {
	ctx.Print("if", false)
	v.space(ctx)
	ctx.Print("(", false)
	v.visitExpr(stmt.Condition, LLowest, ctx)
	ctx.Print(")", false)
	v.space(ctx)
	v.visitBlock(stmt.TrueCase, ctx)
	if len(stmt.FalseCase) == 0 {
		return
	}
	v.space(ctx)
	ctx.Print("else", false)
	if len(stmt.FalseCase) == 1 {
		if elseIf, ok := stmt.FalseCase[0].(*IfStmt); ok {
			ctx.Print(" ", false)
			v.visitIfChain(elseIf, ctx)
			return
		}
	}
	v.space(ctx)
	v.visitBlock(stmt.FalseCase, ctx)
}

// VisitBlockStmt visits a nested block
func (v *EmitterVisitor) VisitBlockStmt(stmt *BlockStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitBlock(stmt.Statements, ctx)
	v.println(ctx, "")
	return nil
}

// VisitThrowStmt visits a throw statement
func (v *EmitterVisitor) VisitThrowStmt(stmt *ThrowStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("throw ", false)
	v.visitExpr(stmt.Expr, LLowest, ctx)
	v.println(ctx, ";")
	return nil
}

// VisitForOfStmt visits for-of and for-in loops
func (v *EmitterVisitor) VisitForOfStmt(stmt *ForOfStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("for", false)
	v.space(ctx)
	ctx.Print("(", false)
	if stmt.Declared {
		ctx.Print(stmt.Kind.String()+" ", false)
	}
	v.visitPattern(stmt.Target, ctx)
	if stmt.In {
		ctx.Print(" in ", false)
	} else {
		ctx.Print(" of ", false)
	}
	v.visitExpr(stmt.Iterable, LAssign, ctx)
	ctx.Print(")", false)
	v.space(ctx)
	v.visitBlock(stmt.Body, ctx)
	v.println(ctx, "")
	return nil
}

// VisitForStmt visits a C-style for loop
func (v *EmitterVisitor) VisitForStmt(stmt *ForStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("for", false)
	v.space(ctx)
	ctx.Print("(", false)
	switch init := stmt.Init.(type) {
	case nil:
	case *DeclareVarStmt:
		v.visitVarDeclarations(init, ctx)
	case *ExpressionStatement:
		v.visitExpr(init.Expr, LLowest, ctx)
	}
	ctx.Print(";", false)
	if stmt.Test != nil {
		v.space(ctx)
		v.visitExpr(stmt.Test, LLowest, ctx)
	}
	ctx.Print(";", false)
	if stmt.Update != nil {
		v.space(ctx)
		v.visitExpr(stmt.Update, LLowest, ctx)
	}
	ctx.Print(")", false)
	v.space(ctx)
	v.visitBlock(stmt.Body, ctx)
	v.println(ctx, "")
	return nil
}

// VisitWhileStmt visits a while loop
func (v *EmitterVisitor) VisitWhileStmt(stmt *WhileStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("while", false)
	v.space(ctx)
	ctx.Print("(", false)
	v.visitExpr(stmt.Condition, LLowest, ctx)
	ctx.Print(")", false)
	v.space(ctx)
	v.visitBlock(stmt.Body, ctx)
	v.println(ctx, "")
	return nil
}

// VisitTryStmt visits try/catch/finally
func (v *EmitterVisitor) VisitTryStmt(stmt *TryStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("try", false)
	v.space(ctx)
	v.visitBlock(stmt.Block, ctx)
	if stmt.HasCatch {
		v.space(ctx)
		ctx.Print("catch", false)
		v.space(ctx)
		if stmt.CatchParam != nil {
			ctx.Print("(", false)
			v.visitPattern(stmt.CatchParam, ctx)
			ctx.Print(")", false)
			v.space(ctx)
		}
		v.visitBlock(stmt.Handler, ctx)
	}
	if stmt.Finalizer != nil {
		v.space(ctx)
		ctx.Print("finally", false)
		v.space(ctx)
		v.visitBlock(stmt.Finalizer, ctx)
	}
	v.println(ctx, "")
	return nil
}

// VisitBreakStmt visits a break statement
func (v *EmitterVisitor) VisitBreakStmt(stmt *BreakStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	if stmt.Label != "" {
		v.println(ctx, "break "+stmt.Label+";")
	} else {
		v.println(ctx, "break;")
	}
	return nil
}

// VisitContinueStmt visits a continue statement
func (v *EmitterVisitor) VisitContinueStmt(stmt *ContinueStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	if stmt.Label != "" {
		v.println(ctx, "continue "+stmt.Label+";")
	} else {
		v.println(ctx, "continue;")
	}
	return nil
}

// VisitImportDecl visits an import declaration
func (v *EmitterVisitor) VisitImportDecl(stmt *ImportDecl, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("import", false)
	if len(stmt.Specifiers) == 0 {
		v.space(ctx)
		ctx.Print(EscapeString(stmt.Source), false)
		v.println(ctx, ";")
		return nil
	}
	if stmt.Specifiers[0].Kind == ImportSpecifierNamed {
		v.space(ctx)
	} else {
		ctx.Print(" ", false)
	}
	var named []*ImportSpecifier
	wrote := false
	for _, spec := range stmt.Specifiers {
		switch spec.Kind {
		case ImportSpecifierDefault:
			if wrote {
				ctx.Print(",", false)
				v.space(ctx)
			}
			ctx.Print(spec.Local, false)
			wrote = true
		case ImportSpecifierNamespace:
			if wrote {
				ctx.Print(",", false)
				v.space(ctx)
			}
			ctx.Print("* as "+spec.Local, false)
			wrote = true
		default:
			named = append(named, spec)
		}
	}
	if len(named) > 0 {
		if wrote {
			ctx.Print(",", false)
			v.space(ctx)
		}
		ctx.Print("{", false)
		v.space(ctx)
		for i, spec := range named {
			if i > 0 {
				ctx.Print(",", false)
				v.space(ctx)
			}
			if spec.Imported != "" && spec.Imported != spec.Local {
				ctx.Print(spec.Imported+" as "+spec.Local, false)
			} else {
				ctx.Print(spec.Local, false)
			}
		}
		v.space(ctx)
		ctx.Print("}", false)
		v.space(ctx)
	} else {
		// an identifier cannot touch the keyword
		ctx.Print(" ", false)
	}
	ctx.Print("from", false)
	v.space(ctx)
	ctx.Print(EscapeString(stmt.Source), false)
	v.println(ctx, ";")
	return nil
}

// VisitExportDefaultStmt visits an export default statement
func (v *EmitterVisitor) VisitExportDefaultStmt(stmt *ExportDefaultStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("export default", false)
	if _, isMap := stmt.Expr.(*LiteralMapExpr); isMap {
		v.space(ctx)
	} else {
		ctx.Print(" ", false)
	}
	v.visitExpr(stmt.Expr, LAssign, ctx)
	v.println(ctx, ";")
	return nil
}

// VisitExportNamedStmt visits `export <decl>` and export lists
func (v *EmitterVisitor) VisitExportNamedStmt(stmt *ExportNamedStmt, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("export ", false)
	if stmt.Decl != nil {
		stmt.Decl.VisitStatement(v, ctx)
		return nil
	}
	ctx.Print("{", false)
	v.space(ctx)
	for i, spec := range stmt.Specifiers {
		if i > 0 {
			ctx.Print(",", false)
			v.space(ctx)
		}
		if spec.Exported != "" && spec.Exported != spec.Local {
			ctx.Print(spec.Local+" as "+spec.Exported, false)
		} else {
			ctx.Print(spec.Local, false)
		}
	}
	if len(stmt.Specifiers) > 0 {
		v.space(ctx)
	}
	ctx.Print("}", false)
	if stmt.Source != nil {
		v.space(ctx)
		ctx.Print("from", false)
		v.space(ctx)
		ctx.Print(EscapeString(*stmt.Source), false)
	}
	v.println(ctx, ";")
	return nil
}

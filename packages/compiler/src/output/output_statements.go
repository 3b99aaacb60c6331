package output

import "strings"

// StatementVisitor is the interface for visiting statements
type StatementVisitor interface {
	VisitDeclareVarStmt(stmt *DeclareVarStmt, context interface{}) interface{}
	VisitDeclareFunctionStmt(stmt *DeclareFunctionStmt, context interface{}) interface{}
	VisitExpressionStmt(stmt *ExpressionStatement, context interface{}) interface{}
	VisitReturnStmt(stmt *ReturnStatement, context interface{}) interface{}
	VisitIfStmt(stmt *IfStmt, context interface{}) interface{}
	VisitBlockStmt(stmt *BlockStmt, context interface{}) interface{}
	VisitThrowStmt(stmt *ThrowStmt, context interface{}) interface{}
	VisitForOfStmt(stmt *ForOfStmt, context interface{}) interface{}
	VisitForStmt(stmt *ForStmt, context interface{}) interface{}
	VisitWhileStmt(stmt *WhileStmt, context interface{}) interface{}
	VisitTryStmt(stmt *TryStmt, context interface{}) interface{}
	VisitBreakStmt(stmt *BreakStmt, context interface{}) interface{}
	VisitContinueStmt(stmt *ContinueStmt, context interface{}) interface{}
	VisitImportDecl(stmt *ImportDecl, context interface{}) interface{}
	VisitExportDefaultStmt(stmt *ExportDefaultStmt, context interface{}) interface{}
	VisitExportNamedStmt(stmt *ExportNamedStmt, context interface{}) interface{}
}

// OutputStatement is a statement in the output AST
type OutputStatement interface {
	GetSpan() Span
	VisitStatement(visitor StatementVisitor, context interface{}) interface{}
	IsEquivalent(stmt OutputStatement) bool
	CloneStmt() OutputStatement
}

// StatementBase is the base struct for all statements
type StatementBase struct {
	Span Span
}

// GetSpan returns the source span
func (s *StatementBase) GetSpan() Span {
	return s.Span
}

// SetSpan records where the statement was parsed from
func (s *StatementBase) SetSpan(span Span) {
	s.Span = span
}

func areAllEquivalentStatements(base, other []OutputStatement) bool {
	if len(base) != len(other) {
		return false
	}
	for i := range base {
		if !nullSafeStmtEquivalent(base[i], other[i]) {
			return false
		}
	}
	return true
}

func nullSafeStmtEquivalent(base, other OutputStatement) bool {
	if base == nil || other == nil {
		return base == nil && other == nil
	}
	return base.IsEquivalent(other)
}

func cloneStatements(stmts []OutputStatement) []OutputStatement {
	if stmts == nil {
		return nil
	}
	out := make([]OutputStatement, len(stmts))
	for i, s := range stmts {
		out[i] = s.CloneStmt()
	}
	return out
}

// VarKind is the declaration keyword
type VarKind int

const (
	VarKindConst VarKind = iota
	VarKindLet
	VarKindVar
)

func (k VarKind) String() string {
	switch k {
	case VarKindLet:
		return "let"
	case VarKindVar:
		return "var"
	}
	return "const"
}

// VarDeclarator is one `target = value` in a declaration
type VarDeclarator struct {
	Target BindingPattern
	Value  OutputExpression
}

// DeclareVarStmt represents `const|let|var a = 1, b`
type DeclareVarStmt struct {
	StatementBase
	Kind         VarKind
	Declarations []*VarDeclarator
}

// NewDeclareVarStmt creates a declaration of a single identifier
func NewDeclareVarStmt(kind VarKind, name string, value OutputExpression) *DeclareVarStmt {
	return &DeclareVarStmt{
		Kind:         kind,
		Declarations: []*VarDeclarator{{Target: NewIdentifierPattern(name), Value: value}},
	}
}

func (d *DeclareVarStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitDeclareVarStmt(d, context)
}

func (d *DeclareVarStmt) IsEquivalent(stmt OutputStatement) bool {
	other, ok := stmt.(*DeclareVarStmt)
	if !ok || d.Kind != other.Kind || len(d.Declarations) != len(other.Declarations) {
		return false
	}
	for i, decl := range d.Declarations {
		o := other.Declarations[i]
		if !patternsEquivalent(decl.Target, o.Target) || !nullSafeIsEquivalent(decl.Value, o.Value) {
			return false
		}
	}
	return true
}

func (d *DeclareVarStmt) CloneStmt() OutputStatement {
	decls := make([]*VarDeclarator, len(d.Declarations))
	for i, decl := range d.Declarations {
		decls[i] = &VarDeclarator{Target: decl.Target.ClonePattern(), Value: cloneExpr(decl.Value)}
	}
	return &DeclareVarStmt{StatementBase: d.StatementBase, Kind: d.Kind, Declarations: decls}
}

// BoundNames returns every identifier the declaration introduces
func (d *DeclareVarStmt) BoundNames() []string {
	var names []string
	for _, decl := range d.Declarations {
		names = append(names, decl.Target.BoundNames()...)
	}
	return names
}

// DeclareFunctionStmt represents a function declaration
type DeclareFunctionStmt struct {
	StatementBase
	Name       string
	Params     []*FnParam
	Statements []OutputStatement
	Async      bool
	Generator  bool
}

// NewDeclareFunctionStmt creates a new DeclareFunctionStmt
func NewDeclareFunctionStmt(name string, params []*FnParam, statements []OutputStatement) *DeclareFunctionStmt {
	return &DeclareFunctionStmt{Name: name, Params: params, Statements: statements}
}

func (d *DeclareFunctionStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitDeclareFunctionStmt(d, context)
}

func (d *DeclareFunctionStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*DeclareFunctionStmt); ok {
		return d.Name == other.Name && d.Async == other.Async && d.Generator == other.Generator &&
			paramsEquivalent(d.Params, other.Params) &&
			areAllEquivalentStatements(d.Statements, other.Statements)
	}
	return false
}

func (d *DeclareFunctionStmt) CloneStmt() OutputStatement {
	return &DeclareFunctionStmt{
		StatementBase: d.StatementBase,
		Name:          d.Name,
		Params:        cloneParams(d.Params),
		Statements:    cloneStatements(d.Statements),
		Async:         d.Async,
		Generator:     d.Generator,
	}
}

// ExpressionStatement represents an expression statement
type ExpressionStatement struct {
	StatementBase
	Expr OutputExpression
}

// NewExpressionStatement creates a new ExpressionStatement
func NewExpressionStatement(expr OutputExpression) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr}
}

func (e *ExpressionStatement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitExpressionStmt(e, context)
}

func (e *ExpressionStatement) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ExpressionStatement); ok {
		return e.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (e *ExpressionStatement) CloneStmt() OutputStatement {
	return &ExpressionStatement{StatementBase: e.StatementBase, Expr: e.Expr.Clone()}
}

// ReturnStatement represents a return statement. Value is nil for a bare `return`.
type ReturnStatement struct {
	StatementBase
	Value OutputExpression
}

// NewReturnStatement creates a new ReturnStatement
func NewReturnStatement(value OutputExpression) *ReturnStatement {
	return &ReturnStatement{Value: value}
}

func (r *ReturnStatement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitReturnStmt(r, context)
}

func (r *ReturnStatement) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ReturnStatement); ok {
		return nullSafeIsEquivalent(r.Value, other.Value)
	}
	return false
}

func (r *ReturnStatement) CloneStmt() OutputStatement {
	return &ReturnStatement{StatementBase: r.StatementBase, Value: cloneExpr(r.Value)}
}

// IfStmt represents an if statement. An `else if` chain is a FalseCase
// holding a single IfStmt.
type IfStmt struct {
	StatementBase
	Condition OutputExpression
	TrueCase  []OutputStatement
	FalseCase []OutputStatement
}

// NewIfStmt creates a new IfStmt
func NewIfStmt(condition OutputExpression, trueCase, falseCase []OutputStatement) *IfStmt {
	return &IfStmt{Condition: condition, TrueCase: trueCase, FalseCase: falseCase}
}

func (i *IfStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitIfStmt(i, context)
}

func (i *IfStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*IfStmt); ok {
		return i.Condition.IsEquivalent(other.Condition) &&
			areAllEquivalentStatements(i.TrueCase, other.TrueCase) &&
			areAllEquivalentStatements(i.FalseCase, other.FalseCase)
	}
	return false
}

func (i *IfStmt) CloneStmt() OutputStatement {
	return &IfStmt{StatementBase: i.StatementBase, Condition: i.Condition.Clone(), TrueCase: cloneStatements(i.TrueCase), FalseCase: cloneStatements(i.FalseCase)}
}

// BlockStmt represents a nested `{ ... }` block
type BlockStmt struct {
	StatementBase
	Statements []OutputStatement
}

// NewBlockStmt creates a new BlockStmt
func NewBlockStmt(statements []OutputStatement) *BlockStmt {
	return &BlockStmt{Statements: statements}
}

func (b *BlockStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitBlockStmt(b, context)
}

func (b *BlockStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*BlockStmt); ok {
		return areAllEquivalentStatements(b.Statements, other.Statements)
	}
	return false
}

func (b *BlockStmt) CloneStmt() OutputStatement {
	return &BlockStmt{StatementBase: b.StatementBase, Statements: cloneStatements(b.Statements)}
}

// ThrowStmt represents `throw expr`
type ThrowStmt struct {
	StatementBase
	Expr OutputExpression
}

// NewThrowStmt creates a new ThrowStmt
func NewThrowStmt(expr OutputExpression) *ThrowStmt {
	return &ThrowStmt{Expr: expr}
}

func (t *ThrowStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitThrowStmt(t, context)
}

func (t *ThrowStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ThrowStmt); ok {
		return t.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (t *ThrowStmt) CloneStmt() OutputStatement {
	return &ThrowStmt{StatementBase: t.StatementBase, Expr: t.Expr.Clone()}
}

// ForOfStmt represents `for (const x of xs)`, and `for (const k in o)` when In is set.
// Declared is false when the loop assigns to an existing binding.
type ForOfStmt struct {
	StatementBase
	Declared bool
	Kind     VarKind
	Target   BindingPattern
	Iterable OutputExpression
	Body     []OutputStatement
	In       bool
}

func (f *ForOfStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitForOfStmt(f, context)
}

func (f *ForOfStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ForOfStmt); ok {
		return f.Declared == other.Declared && f.Kind == other.Kind && f.In == other.In &&
			patternsEquivalent(f.Target, other.Target) &&
			f.Iterable.IsEquivalent(other.Iterable) &&
			areAllEquivalentStatements(f.Body, other.Body)
	}
	return false
}

func (f *ForOfStmt) CloneStmt() OutputStatement {
	return &ForOfStmt{
		StatementBase: f.StatementBase,
		Declared:      f.Declared,
		Kind:          f.Kind,
		Target:        f.Target.ClonePattern(),
		Iterable:      f.Iterable.Clone(),
		Body:          cloneStatements(f.Body),
		In:            f.In,
	}
}

// ForStmt represents a C-style for loop. Any of Init, Test and Update may be nil.
type ForStmt struct {
	StatementBase
	Init   OutputStatement
	Test   OutputExpression
	Update OutputExpression
	Body   []OutputStatement
}

func (f *ForStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitForStmt(f, context)
}

func (f *ForStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ForStmt); ok {
		return nullSafeStmtEquivalent(f.Init, other.Init) &&
			nullSafeIsEquivalent(f.Test, other.Test) &&
			nullSafeIsEquivalent(f.Update, other.Update) &&
			areAllEquivalentStatements(f.Body, other.Body)
	}
	return false
}

func (f *ForStmt) CloneStmt() OutputStatement {
	var init OutputStatement
	if f.Init != nil {
		init = f.Init.CloneStmt()
	}
	return &ForStmt{StatementBase: f.StatementBase, Init: init, Test: cloneExpr(f.Test), Update: cloneExpr(f.Update), Body: cloneStatements(f.Body)}
}

// WhileStmt represents `while (cond) { ... }`
type WhileStmt struct {
	StatementBase
	Condition OutputExpression
	Body      []OutputStatement
}

func (w *WhileStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitWhileStmt(w, context)
}

func (w *WhileStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*WhileStmt); ok {
		return w.Condition.IsEquivalent(other.Condition) && areAllEquivalentStatements(w.Body, other.Body)
	}
	return false
}

func (w *WhileStmt) CloneStmt() OutputStatement {
	return &WhileStmt{StatementBase: w.StatementBase, Condition: w.Condition.Clone(), Body: cloneStatements(w.Body)}
}

// TryStmt represents try/catch/finally. HasCatch distinguishes an empty
// catch block from a missing one; CatchParam may be nil.
type TryStmt struct {
	StatementBase
	Block      []OutputStatement
	HasCatch   bool
	CatchParam BindingPattern
	Handler    []OutputStatement
	Finalizer  []OutputStatement
}

func (t *TryStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitTryStmt(t, context)
}

func (t *TryStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*TryStmt); ok {
		return t.HasCatch == other.HasCatch &&
			patternsEquivalent(t.CatchParam, other.CatchParam) &&
			areAllEquivalentStatements(t.Block, other.Block) &&
			areAllEquivalentStatements(t.Handler, other.Handler) &&
			areAllEquivalentStatements(t.Finalizer, other.Finalizer)
	}
	return false
}

func (t *TryStmt) CloneStmt() OutputStatement {
	var param BindingPattern
	if t.CatchParam != nil {
		param = t.CatchParam.ClonePattern()
	}
	return &TryStmt{
		StatementBase: t.StatementBase,
		Block:         cloneStatements(t.Block),
		HasCatch:      t.HasCatch,
		CatchParam:    param,
		Handler:       cloneStatements(t.Handler),
		Finalizer:     cloneStatements(t.Finalizer),
	}
}

// BreakStmt represents `break [label]`
type BreakStmt struct {
	StatementBase
	Label string
}

func (b *BreakStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitBreakStmt(b, context)
}

func (b *BreakStmt) IsEquivalent(stmt OutputStatement) bool {
	other, ok := stmt.(*BreakStmt)
	return ok && b.Label == other.Label
}

func (b *BreakStmt) CloneStmt() OutputStatement {
	return &BreakStmt{StatementBase: b.StatementBase, Label: b.Label}
}

// ContinueStmt represents `continue [label]`
type ContinueStmt struct {
	StatementBase
	Label string
}

func (c *ContinueStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitContinueStmt(c, context)
}

func (c *ContinueStmt) IsEquivalent(stmt OutputStatement) bool {
	other, ok := stmt.(*ContinueStmt)
	return ok && c.Label == other.Label
}

func (c *ContinueStmt) CloneStmt() OutputStatement {
	return &ContinueStmt{StatementBase: c.StatementBase, Label: c.Label}
}

// ImportSpecifierKind tells the form of an import clause member
type ImportSpecifierKind int

const (
	ImportSpecifierNamed ImportSpecifierKind = iota
	ImportSpecifierDefault
	ImportSpecifierNamespace
)

// ImportSpecifier is one imported binding. Imported is empty for default and
// namespace imports.
type ImportSpecifier struct {
	Kind     ImportSpecifierKind
	Imported string
	Local    string
}

// ImportDecl represents an import declaration. A declaration with no
// specifiers is a side-effect import.
type ImportDecl struct {
	StatementBase
	Specifiers []*ImportSpecifier
	Source     string
}

// NewImportDecl creates a new ImportDecl
func NewImportDecl(specifiers []*ImportSpecifier, source string) *ImportDecl {
	return &ImportDecl{Specifiers: specifiers, Source: source}
}

func (i *ImportDecl) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitImportDecl(i, context)
}

func (i *ImportDecl) IsEquivalent(stmt OutputStatement) bool {
	other, ok := stmt.(*ImportDecl)
	if !ok || i.Source != other.Source || len(i.Specifiers) != len(other.Specifiers) {
		return false
	}
	for n, spec := range i.Specifiers {
		if *spec != *other.Specifiers[n] {
			return false
		}
	}
	return true
}

func (i *ImportDecl) CloneStmt() OutputStatement {
	specs := make([]*ImportSpecifier, len(i.Specifiers))
	for n, spec := range i.Specifiers {
		s := *spec
		specs[n] = &s
	}
	return &ImportDecl{StatementBase: i.StatementBase, Specifiers: specs, Source: i.Source}
}

// LocalNames returns the local identifiers the import binds
func (i *ImportDecl) LocalNames() []string {
	names := make([]string, 0, len(i.Specifiers))
	for _, spec := range i.Specifiers {
		names = append(names, spec.Local)
	}
	return names
}

// ExportDefaultStmt represents `export default expr`
type ExportDefaultStmt struct {
	StatementBase
	Expr OutputExpression
}

// NewExportDefaultStmt creates a new ExportDefaultStmt
func NewExportDefaultStmt(expr OutputExpression) *ExportDefaultStmt {
	return &ExportDefaultStmt{Expr: expr}
}

func (e *ExportDefaultStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitExportDefaultStmt(e, context)
}

func (e *ExportDefaultStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ExportDefaultStmt); ok {
		return e.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (e *ExportDefaultStmt) CloneStmt() OutputStatement {
	return &ExportDefaultStmt{StatementBase: e.StatementBase, Expr: e.Expr.Clone()}
}

// ExportSpecifier is `local as exported` in an export list
type ExportSpecifier struct {
	Local    string
	Exported string
}

// ExportNamedStmt represents `export <declaration>` or `export { a, b as c } [from "x"]`
type ExportNamedStmt struct {
	StatementBase
	Decl       OutputStatement
	Specifiers []*ExportSpecifier
	Source     *string
}

func (e *ExportNamedStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitExportNamedStmt(e, context)
}

func (e *ExportNamedStmt) IsEquivalent(stmt OutputStatement) bool {
	other, ok := stmt.(*ExportNamedStmt)
	if !ok || !nullSafeStmtEquivalent(e.Decl, other.Decl) || len(e.Specifiers) != len(other.Specifiers) {
		return false
	}
	if (e.Source == nil) != (other.Source == nil) || (e.Source != nil && *e.Source != *other.Source) {
		return false
	}
	for n, spec := range e.Specifiers {
		if *spec != *other.Specifiers[n] {
			return false
		}
	}
	return true
}

func (e *ExportNamedStmt) CloneStmt() OutputStatement {
	var decl OutputStatement
	if e.Decl != nil {
		decl = e.Decl.CloneStmt()
	}
	specs := make([]*ExportSpecifier, len(e.Specifiers))
	for n, spec := range e.Specifiers {
		s := *spec
		specs[n] = &s
	}
	return &ExportNamedStmt{StatementBase: e.StatementBase, Decl: decl, Specifiers: specs, Source: e.Source}
}

// Module is a parsed or synthesized ES module
type Module struct {
	Body []OutputStatement
}

// NewModule creates a new Module
func NewModule(body []OutputStatement) *Module {
	return &Module{Body: body}
}

// Append adds statements at the end of the module
func (m *Module) Append(stmts ...OutputStatement) {
	m.Body = append(m.Body, stmts...)
}

// Clone deep-copies the module
func (m *Module) Clone() *Module {
	return &Module{Body: cloneStatements(m.Body)}
}

// IsEquivalent compares two modules structurally
func (m *Module) IsEquivalent(other *Module) bool {
	return areAllEquivalentStatements(m.Body, other.Body)
}

// BindingPattern is the target of a declaration, parameter or loop binding
type BindingPattern interface {
	BoundNames() []string
	ClonePattern() BindingPattern
}

// IdentifierPattern binds a single name
type IdentifierPattern struct {
	Name string
}

// NewIdentifierPattern creates a new IdentifierPattern
func NewIdentifierPattern(name string) *IdentifierPattern {
	return &IdentifierPattern{Name: name}
}

func (p *IdentifierPattern) BoundNames() []string {
	return []string{p.Name}
}

func (p *IdentifierPattern) ClonePattern() BindingPattern {
	return &IdentifierPattern{Name: p.Name}
}

// ObjectPatternProperty is `key: value` inside an object pattern. Shorthand
// marks `{ key }` and `{ key = default }`.
type ObjectPatternProperty struct {
	Key       string
	KeyExpr   OutputExpression
	Value     BindingPattern
	Shorthand bool
}

// ObjectPattern represents `{ a, b: c, ...rest }`
type ObjectPattern struct {
	Properties []*ObjectPatternProperty
	Rest       BindingPattern
}

func (p *ObjectPattern) BoundNames() []string {
	var names []string
	for _, prop := range p.Properties {
		names = append(names, prop.Value.BoundNames()...)
	}
	if p.Rest != nil {
		names = append(names, p.Rest.BoundNames()...)
	}
	return names
}

func (p *ObjectPattern) ClonePattern() BindingPattern {
	props := make([]*ObjectPatternProperty, len(p.Properties))
	for i, prop := range p.Properties {
		props[i] = &ObjectPatternProperty{Key: prop.Key, KeyExpr: cloneExpr(prop.KeyExpr), Value: prop.Value.ClonePattern(), Shorthand: prop.Shorthand}
	}
	var rest BindingPattern
	if p.Rest != nil {
		rest = p.Rest.ClonePattern()
	}
	return &ObjectPattern{Properties: props, Rest: rest}
}

// ArrayPattern represents `[a, , b, ...rest]`. Holes are nil elements.
type ArrayPattern struct {
	Elements []BindingPattern
	Rest     BindingPattern
}

func (p *ArrayPattern) BoundNames() []string {
	var names []string
	for _, el := range p.Elements {
		if el != nil {
			names = append(names, el.BoundNames()...)
		}
	}
	if p.Rest != nil {
		names = append(names, p.Rest.BoundNames()...)
	}
	return names
}

func (p *ArrayPattern) ClonePattern() BindingPattern {
	elements := make([]BindingPattern, len(p.Elements))
	for i, el := range p.Elements {
		if el != nil {
			elements[i] = el.ClonePattern()
		}
	}
	var rest BindingPattern
	if p.Rest != nil {
		rest = p.Rest.ClonePattern()
	}
	return &ArrayPattern{Elements: elements, Rest: rest}
}

// AssignmentPattern is a pattern with a default value
type AssignmentPattern struct {
	Target  BindingPattern
	Default OutputExpression
}

func (p *AssignmentPattern) BoundNames() []string {
	return p.Target.BoundNames()
}

func (p *AssignmentPattern) ClonePattern() BindingPattern {
	return &AssignmentPattern{Target: p.Target.ClonePattern(), Default: p.Default.Clone()}
}

func patternsEquivalent(a, b BindingPattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch pa := a.(type) {
	case *IdentifierPattern:
		pb, ok := b.(*IdentifierPattern)
		return ok && pa.Name == pb.Name
	case *AssignmentPattern:
		pb, ok := b.(*AssignmentPattern)
		return ok && patternsEquivalent(pa.Target, pb.Target) && pa.Default.IsEquivalent(pb.Default)
	case *ArrayPattern:
		pb, ok := b.(*ArrayPattern)
		if !ok || len(pa.Elements) != len(pb.Elements) || !patternsEquivalent(pa.Rest, pb.Rest) {
			return false
		}
		for i := range pa.Elements {
			if !patternsEquivalent(pa.Elements[i], pb.Elements[i]) {
				return false
			}
		}
		return true
	case *ObjectPattern:
		pb, ok := b.(*ObjectPattern)
		if !ok || len(pa.Properties) != len(pb.Properties) || !patternsEquivalent(pa.Rest, pb.Rest) {
			return false
		}
		for i, prop := range pa.Properties {
			other := pb.Properties[i]
			if prop.Key != other.Key || prop.Shorthand != other.Shorthand ||
				!nullSafeIsEquivalent(prop.KeyExpr, other.KeyExpr) ||
				!patternsEquivalent(prop.Value, other.Value) {
				return false
			}
		}
		return true
	}
	return false
}

func escapeTemplateText(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '`' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '$' && i+1 < len(text) && text[i+1] == '{':
			sb.WriteString("\\$")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

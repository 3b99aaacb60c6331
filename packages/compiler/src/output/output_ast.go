package output

// Span is a byte range in the text an expression was parsed from.
// Synthesized nodes carry the zero Span.
type Span struct {
	Start int
	End   int
}

// UnaryOperator represents unary operators
type UnaryOperator int

const (
	UnaryOperatorMinus UnaryOperator = iota
	UnaryOperatorPlus
	UnaryOperatorBitwiseNot
	UnaryOperatorDelete
)

// UpdateOperator represents `++` and `--`
type UpdateOperator int

const (
	UpdateOperatorIncrement UpdateOperator = iota
	UpdateOperatorDecrement
)

// BinaryOperator represents binary operators
type BinaryOperator int

const (
	BinaryOperatorEquals BinaryOperator = iota
	BinaryOperatorNotEquals
	BinaryOperatorAssign
	BinaryOperatorIdentical
	BinaryOperatorNotIdentical
	BinaryOperatorMinus
	BinaryOperatorPlus
	BinaryOperatorDivide
	BinaryOperatorMultiply
	BinaryOperatorModulo
	BinaryOperatorAnd
	BinaryOperatorOr
	BinaryOperatorBitwiseOr
	BinaryOperatorBitwiseAnd
	BinaryOperatorBitwiseXor
	BinaryOperatorLeftShift
	BinaryOperatorRightShift
	BinaryOperatorUnsignedRightShift
	BinaryOperatorLower
	BinaryOperatorLowerEquals
	BinaryOperatorBigger
	BinaryOperatorBiggerEquals
	BinaryOperatorNullishCoalesce
	BinaryOperatorExponentiation
	BinaryOperatorIn
	BinaryOperatorInstanceof
	BinaryOperatorAdditionAssignment
	BinaryOperatorSubtractionAssignment
	BinaryOperatorMultiplicationAssignment
	BinaryOperatorDivisionAssignment
	BinaryOperatorRemainderAssignment
	BinaryOperatorExponentiationAssignment
	BinaryOperatorAndAssignment
	BinaryOperatorOrAssignment
	BinaryOperatorNullishCoalesceAssignment
)

// OutputExpression represents an expression in the output AST
type OutputExpression interface {
	GetSpan() Span
	VisitExpression(visitor ExpressionVisitor, context interface{}) interface{}
	IsEquivalent(e OutputExpression) bool
	Clone() OutputExpression
}

// ExpressionVisitor is the interface for visiting expressions
type ExpressionVisitor interface {
	VisitReadVarExpr(ast *ReadVarExpr, context interface{}) interface{}
	VisitInvokeFunctionExpr(ast *InvokeFunctionExpr, context interface{}) interface{}
	VisitTaggedTemplateLiteralExpr(ast *TaggedTemplateLiteralExpr, context interface{}) interface{}
	VisitTemplateLiteralExpr(ast *TemplateLiteralExpr, context interface{}) interface{}
	VisitTemplateLiteralElementExpr(ast *TemplateLiteralElementExpr, context interface{}) interface{}
	VisitInstantiateExpr(ast *InstantiateExpr, context interface{}) interface{}
	VisitLiteralExpr(ast *LiteralExpr, context interface{}) interface{}
	VisitExternalExpr(ast *ExternalExpr, context interface{}) interface{}
	VisitConditionalExpr(ast *ConditionalExpr, context interface{}) interface{}
	VisitNotExpr(ast *NotExpr, context interface{}) interface{}
	VisitFunctionExpr(ast *FunctionExpr, context interface{}) interface{}
	VisitUnaryOperatorExpr(ast *UnaryOperatorExpr, context interface{}) interface{}
	VisitUpdateExpr(ast *UpdateExpr, context interface{}) interface{}
	VisitBinaryOperatorExpr(ast *BinaryOperatorExpr, context interface{}) interface{}
	VisitReadPropExpr(ast *ReadPropExpr, context interface{}) interface{}
	VisitReadKeyExpr(ast *ReadKeyExpr, context interface{}) interface{}
	VisitLiteralArrayExpr(ast *LiteralArrayExpr, context interface{}) interface{}
	VisitLiteralMapExpr(ast *LiteralMapExpr, context interface{}) interface{}
	VisitCommaExpr(ast *CommaExpr, context interface{}) interface{}
	VisitTypeofExpr(ast *TypeofExpr, context interface{}) interface{}
	VisitVoidExpr(ast *VoidExpr, context interface{}) interface{}
	VisitAwaitExpr(ast *AwaitExpr, context interface{}) interface{}
	VisitArrowFunctionExpr(ast *ArrowFunctionExpr, context interface{}) interface{}
	VisitParenthesizedExpr(ast *ParenthesizedExpr, context interface{}) interface{}
	VisitRegularExpressionLiteral(ast *RegularExpressionLiteralExpr, context interface{}) interface{}
	VisitSpreadElementExpr(ast *SpreadElementExpr, context interface{}) interface{}
	VisitInvalidExpr(ast *InvalidExpr, context interface{}) interface{}
}

// ExpressionBase is the base struct for all expressions
type ExpressionBase struct {
	Span Span
}

// GetSpan returns the source span
func (e *ExpressionBase) GetSpan() Span {
	return e.Span
}

// SetSpan records where the expression was parsed from
func (e *ExpressionBase) SetSpan(span Span) {
	e.Span = span
}

// ReadVarExpr represents a variable read expression
type ReadVarExpr struct {
	ExpressionBase
	Name string
}

// NewReadVarExpr creates a new ReadVarExpr
func NewReadVarExpr(name string) *ReadVarExpr {
	return &ReadVarExpr{Name: name}
}

func (r *ReadVarExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadVarExpr(r, context)
}

func (r *ReadVarExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadVarExpr); ok {
		return r.Name == other.Name
	}
	return false
}

func (r *ReadVarExpr) Clone() OutputExpression {
	return &ReadVarExpr{ExpressionBase: r.ExpressionBase, Name: r.Name}
}

// Set creates an assignment expression
func (r *ReadVarExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value)
}

// Prop creates a property read on this variable
func (r *ReadVarExpr) Prop(name string) *ReadPropExpr {
	return NewReadPropExpr(r, name)
}

// LiteralExpr represents a literal expression.
// Value is a string, float64, bool or nil (null).
type LiteralExpr struct {
	ExpressionBase
	Value interface{}
	// Raw is the source spelling of a numeric literal, kept so printing is stable.
	Raw string
}

// NewLiteralExpr creates a new LiteralExpr
func NewLiteralExpr(value interface{}) *LiteralExpr {
	if i, ok := value.(int); ok {
		value = float64(i)
	}
	return &LiteralExpr{Value: value}
}

func (l *LiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralExpr(l, context)
}

func (l *LiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralExpr); ok {
		return l.Value == other.Value
	}
	return false
}

func (l *LiteralExpr) Clone() OutputExpression {
	return &LiteralExpr{ExpressionBase: l.ExpressionBase, Value: l.Value, Raw: l.Raw}
}

// BinaryOperatorExpr represents a binary operator expression, assignments included
type BinaryOperatorExpr struct {
	ExpressionBase
	Operator BinaryOperator
	Lhs      OutputExpression
	Rhs      OutputExpression
}

// NewBinaryOperatorExpr creates a new BinaryOperatorExpr
func NewBinaryOperatorExpr(operator BinaryOperator, lhs, rhs OutputExpression) *BinaryOperatorExpr {
	return &BinaryOperatorExpr{Operator: operator, Lhs: lhs, Rhs: rhs}
}

func (b *BinaryOperatorExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitBinaryOperatorExpr(b, context)
}

func (b *BinaryOperatorExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*BinaryOperatorExpr); ok {
		return b.Operator == other.Operator && b.Lhs.IsEquivalent(other.Lhs) && b.Rhs.IsEquivalent(other.Rhs)
	}
	return false
}

func (b *BinaryOperatorExpr) Clone() OutputExpression {
	return &BinaryOperatorExpr{ExpressionBase: b.ExpressionBase, Operator: b.Operator, Lhs: b.Lhs.Clone(), Rhs: b.Rhs.Clone()}
}

// IsAssignment reports whether the operator writes to its left operand
func (b *BinaryOperatorExpr) IsAssignment() bool {
	switch b.Operator {
	case BinaryOperatorAssign,
		BinaryOperatorAdditionAssignment,
		BinaryOperatorSubtractionAssignment,
		BinaryOperatorMultiplicationAssignment,
		BinaryOperatorDivisionAssignment,
		BinaryOperatorRemainderAssignment,
		BinaryOperatorExponentiationAssignment,
		BinaryOperatorAndAssignment,
		BinaryOperatorOrAssignment,
		BinaryOperatorNullishCoalesceAssignment:
		return true
	}
	return false
}

func areAllEquivalentExprs(base, other []OutputExpression) bool {
	if len(base) != len(other) {
		return false
	}
	for i := range base {
		if !nullSafeIsEquivalent(base[i], other[i]) {
			return false
		}
	}
	return true
}

func nullSafeIsEquivalent(base, other OutputExpression) bool {
	if base == nil || other == nil {
		return base == nil && other == nil
	}
	return base.IsEquivalent(other)
}

func cloneExprs(exprs []OutputExpression) []OutputExpression {
	if exprs == nil {
		return nil
	}
	out := make([]OutputExpression, len(exprs))
	for i, e := range exprs {
		if e != nil {
			out[i] = e.Clone()
		}
	}
	return out
}

func cloneExpr(e OutputExpression) OutputExpression {
	if e == nil {
		return nil
	}
	return e.Clone()
}

// InvokeFunctionExpr represents a call. Optional marks `fn?.(...)`.
type InvokeFunctionExpr struct {
	ExpressionBase
	Fn       OutputExpression
	Args     []OutputExpression
	Optional bool
}

// NewInvokeFunctionExpr creates a new InvokeFunctionExpr
func NewInvokeFunctionExpr(fn OutputExpression, args []OutputExpression) *InvokeFunctionExpr {
	return &InvokeFunctionExpr{Fn: fn, Args: args}
}

func (i *InvokeFunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInvokeFunctionExpr(i, context)
}

func (i *InvokeFunctionExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*InvokeFunctionExpr); ok {
		return i.Optional == other.Optional && i.Fn.IsEquivalent(other.Fn) && areAllEquivalentExprs(i.Args, other.Args)
	}
	return false
}

func (i *InvokeFunctionExpr) Clone() OutputExpression {
	return &InvokeFunctionExpr{ExpressionBase: i.ExpressionBase, Fn: i.Fn.Clone(), Args: cloneExprs(i.Args), Optional: i.Optional}
}

// TaggedTemplateLiteralExpr represents tag`...`
type TaggedTemplateLiteralExpr struct {
	ExpressionBase
	Tag      OutputExpression
	Template *TemplateLiteralExpr
}

// NewTaggedTemplateLiteralExpr creates a new TaggedTemplateLiteralExpr
func NewTaggedTemplateLiteralExpr(tag OutputExpression, template *TemplateLiteralExpr) *TaggedTemplateLiteralExpr {
	return &TaggedTemplateLiteralExpr{Tag: tag, Template: template}
}

func (t *TaggedTemplateLiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTaggedTemplateLiteralExpr(t, context)
}

func (t *TaggedTemplateLiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TaggedTemplateLiteralExpr); ok {
		return t.Tag.IsEquivalent(other.Tag) && t.Template.IsEquivalent(other.Template)
	}
	return false
}

func (t *TaggedTemplateLiteralExpr) Clone() OutputExpression {
	return &TaggedTemplateLiteralExpr{ExpressionBase: t.ExpressionBase, Tag: t.Tag.Clone(), Template: t.Template.Clone().(*TemplateLiteralExpr)}
}

// TemplateLiteralExpr represents a template literal. There is always one more
// element than there are expressions.
type TemplateLiteralExpr struct {
	ExpressionBase
	Elements    []*TemplateLiteralElementExpr
	Expressions []OutputExpression
}

// NewTemplateLiteralExpr creates a new TemplateLiteralExpr
func NewTemplateLiteralExpr(elements []*TemplateLiteralElementExpr, expressions []OutputExpression) *TemplateLiteralExpr {
	return &TemplateLiteralExpr{Elements: elements, Expressions: expressions}
}

func (t *TemplateLiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTemplateLiteralExpr(t, context)
}

func (t *TemplateLiteralExpr) IsEquivalent(e OutputExpression) bool {
	other, ok := e.(*TemplateLiteralExpr)
	if !ok || len(t.Elements) != len(other.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].IsEquivalent(other.Elements[i]) {
			return false
		}
	}
	return areAllEquivalentExprs(t.Expressions, other.Expressions)
}

func (t *TemplateLiteralExpr) Clone() OutputExpression {
	elements := make([]*TemplateLiteralElementExpr, len(t.Elements))
	for i, el := range t.Elements {
		elements[i] = el.Clone().(*TemplateLiteralElementExpr)
	}
	return &TemplateLiteralExpr{ExpressionBase: t.ExpressionBase, Elements: elements, Expressions: cloneExprs(t.Expressions)}
}

// IsStatic reports whether the literal has no substitutions
func (t *TemplateLiteralExpr) IsStatic() bool {
	return len(t.Expressions) == 0
}

// TemplateLiteralElementExpr is a static chunk of a template literal
type TemplateLiteralElementExpr struct {
	ExpressionBase
	Text    string
	RawText string
}

// NewTemplateLiteralElementExpr creates a new TemplateLiteralElementExpr
func NewTemplateLiteralElementExpr(text string, rawText string) *TemplateLiteralElementExpr {
	if rawText == "" {
		rawText = escapeTemplateText(text)
	}
	return &TemplateLiteralElementExpr{Text: text, RawText: rawText}
}

func (t *TemplateLiteralElementExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTemplateLiteralElementExpr(t, context)
}

func (t *TemplateLiteralElementExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TemplateLiteralElementExpr); ok {
		return t.Text == other.Text
	}
	return false
}

func (t *TemplateLiteralElementExpr) Clone() OutputExpression {
	return &TemplateLiteralElementExpr{ExpressionBase: t.ExpressionBase, Text: t.Text, RawText: t.RawText}
}

// InstantiateExpr represents `new X(...)`
type InstantiateExpr struct {
	ExpressionBase
	ClassExpr OutputExpression
	Args      []OutputExpression
}

// NewInstantiateExpr creates a new InstantiateExpr
func NewInstantiateExpr(classExpr OutputExpression, args []OutputExpression) *InstantiateExpr {
	return &InstantiateExpr{ClassExpr: classExpr, Args: args}
}

func (i *InstantiateExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInstantiateExpr(i, context)
}

func (i *InstantiateExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*InstantiateExpr); ok {
		return i.ClassExpr.IsEquivalent(other.ClassExpr) && areAllEquivalentExprs(i.Args, other.Args)
	}
	return false
}

func (i *InstantiateExpr) Clone() OutputExpression {
	return &InstantiateExpr{ExpressionBase: i.ExpressionBase, ClassExpr: i.ClassExpr.Clone(), Args: cloneExprs(i.Args)}
}

// ExternalReference names a symbol exported by another module
type ExternalReference struct {
	ModuleName string
	Name       string
}

// Alias is the local name the symbol is imported under
func (r *ExternalReference) Alias() string {
	return "_" + r.Name
}

// ExternalExpr is a reference to an imported symbol. The module assembler
// collects these to build the import declaration.
type ExternalExpr struct {
	ExpressionBase
	Value *ExternalReference
}

// NewExternalExpr creates a new ExternalExpr
func NewExternalExpr(value *ExternalReference) *ExternalExpr {
	return &ExternalExpr{Value: value}
}

func (e *ExternalExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitExternalExpr(e, context)
}

func (e *ExternalExpr) IsEquivalent(other OutputExpression) bool {
	if o, ok := other.(*ExternalExpr); ok {
		return e.Value.Name == o.Value.Name && e.Value.ModuleName == o.Value.ModuleName
	}
	return false
}

func (e *ExternalExpr) Clone() OutputExpression {
	return &ExternalExpr{ExpressionBase: e.ExpressionBase, Value: e.Value}
}

// CallFn invokes the referenced symbol
func (e *ExternalExpr) CallFn(args ...OutputExpression) *InvokeFunctionExpr {
	return NewInvokeFunctionExpr(e, args)
}

// ConditionalExpr represents `condition ? trueCase : falseCase`
type ConditionalExpr struct {
	ExpressionBase
	Condition OutputExpression
	TrueCase  OutputExpression
	FalseCase OutputExpression
}

// NewConditionalExpr creates a new ConditionalExpr
func NewConditionalExpr(condition, trueCase, falseCase OutputExpression) *ConditionalExpr {
	c := &ConditionalExpr{Condition: condition, TrueCase: trueCase, FalseCase: falseCase}
	c.Span = condition.GetSpan()
	return c
}

func (c *ConditionalExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitConditionalExpr(c, context)
}

func (c *ConditionalExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ConditionalExpr); ok {
		return c.Condition.IsEquivalent(other.Condition) &&
			c.TrueCase.IsEquivalent(other.TrueCase) &&
			nullSafeIsEquivalent(c.FalseCase, other.FalseCase)
	}
	return false
}

func (c *ConditionalExpr) Clone() OutputExpression {
	return &ConditionalExpr{ExpressionBase: c.ExpressionBase, Condition: c.Condition.Clone(), TrueCase: c.TrueCase.Clone(), FalseCase: cloneExpr(c.FalseCase)}
}

// NotExpr represents `!condition`
type NotExpr struct {
	ExpressionBase
	Condition OutputExpression
}

// NewNotExpr creates a new NotExpr
func NewNotExpr(condition OutputExpression) *NotExpr {
	return &NotExpr{Condition: condition}
}

func (n *NotExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitNotExpr(n, context)
}

func (n *NotExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*NotExpr); ok {
		return n.Condition.IsEquivalent(other.Condition)
	}
	return false
}

func (n *NotExpr) Clone() OutputExpression {
	return &NotExpr{ExpressionBase: n.ExpressionBase, Condition: n.Condition.Clone()}
}

// FnParam is a single function parameter
type FnParam struct {
	Pattern BindingPattern
	Rest    bool
}

// NewFnParam creates a plain identifier parameter
func NewFnParam(name string) *FnParam {
	return &FnParam{Pattern: NewIdentifierPattern(name)}
}

// BoundNames returns the identifiers introduced by the parameter
func (p *FnParam) BoundNames() []string {
	return p.Pattern.BoundNames()
}

func cloneParams(params []*FnParam) []*FnParam {
	out := make([]*FnParam, len(params))
	for i, p := range params {
		out[i] = &FnParam{Pattern: p.Pattern.ClonePattern(), Rest: p.Rest}
	}
	return out
}

func paramsEquivalent(a, b []*FnParam) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rest != b[i].Rest || !patternsEquivalent(a[i].Pattern, b[i].Pattern) {
			return false
		}
	}
	return true
}

// FunctionExpr represents a `function` expression, and the function part of
// object methods
type FunctionExpr struct {
	ExpressionBase
	Params     []*FnParam
	Statements []OutputStatement
	Name       *string
	Async      bool
	Generator  bool
}

// NewFunctionExpr creates a new FunctionExpr
func NewFunctionExpr(params []*FnParam, statements []OutputStatement, name *string) *FunctionExpr {
	return &FunctionExpr{Params: params, Statements: statements, Name: name}
}

func (f *FunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitFunctionExpr(f, context)
}

func (f *FunctionExpr) IsEquivalent(e OutputExpression) bool {
	other, ok := e.(*FunctionExpr)
	if !ok {
		return false
	}
	return f.Async == other.Async && f.Generator == other.Generator &&
		paramsEquivalent(f.Params, other.Params) &&
		areAllEquivalentStatements(f.Statements, other.Statements)
}

func (f *FunctionExpr) Clone() OutputExpression {
	var name *string
	if f.Name != nil {
		n := *f.Name
		name = &n
	}
	return &FunctionExpr{
		ExpressionBase: f.ExpressionBase,
		Params:         cloneParams(f.Params),
		Statements:     cloneStatements(f.Statements),
		Name:           name,
		Async:          f.Async,
		Generator:      f.Generator,
	}
}

// ToDeclStmt converts the expression into a function declaration
func (f *FunctionExpr) ToDeclStmt(name string) *DeclareFunctionStmt {
	stmt := NewDeclareFunctionStmt(name, f.Params, f.Statements)
	stmt.Async = f.Async
	stmt.Generator = f.Generator
	return stmt
}

// UnaryOperatorExpr represents a prefix operator other than `!`, `typeof` and `void`
type UnaryOperatorExpr struct {
	ExpressionBase
	Operator UnaryOperator
	Expr     OutputExpression
}

// NewUnaryOperatorExpr creates a new UnaryOperatorExpr
func NewUnaryOperatorExpr(operator UnaryOperator, expr OutputExpression) *UnaryOperatorExpr {
	return &UnaryOperatorExpr{Operator: operator, Expr: expr}
}

func (u *UnaryOperatorExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitUnaryOperatorExpr(u, context)
}

func (u *UnaryOperatorExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*UnaryOperatorExpr); ok {
		return u.Operator == other.Operator && u.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (u *UnaryOperatorExpr) Clone() OutputExpression {
	return &UnaryOperatorExpr{ExpressionBase: u.ExpressionBase, Operator: u.Operator, Expr: u.Expr.Clone()}
}

// UpdateExpr represents `++x`, `x++`, `--x` and `x--`
type UpdateExpr struct {
	ExpressionBase
	Operator UpdateOperator
	Prefix   bool
	Expr     OutputExpression
}

// NewUpdateExpr creates a new UpdateExpr
func NewUpdateExpr(operator UpdateOperator, prefix bool, expr OutputExpression) *UpdateExpr {
	return &UpdateExpr{Operator: operator, Prefix: prefix, Expr: expr}
}

func (u *UpdateExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitUpdateExpr(u, context)
}

func (u *UpdateExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*UpdateExpr); ok {
		return u.Operator == other.Operator && u.Prefix == other.Prefix && u.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (u *UpdateExpr) Clone() OutputExpression {
	return &UpdateExpr{ExpressionBase: u.ExpressionBase, Operator: u.Operator, Prefix: u.Prefix, Expr: u.Expr.Clone()}
}

// ReadPropExpr represents `receiver.name` or `receiver?.name`
type ReadPropExpr struct {
	ExpressionBase
	Receiver OutputExpression
	Name     string
	Optional bool
}

// NewReadPropExpr creates a new ReadPropExpr
func NewReadPropExpr(receiver OutputExpression, name string) *ReadPropExpr {
	return &ReadPropExpr{Receiver: receiver, Name: name}
}

func (r *ReadPropExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadPropExpr(r, context)
}

func (r *ReadPropExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadPropExpr); ok {
		return r.Name == other.Name && r.Optional == other.Optional && r.Receiver.IsEquivalent(other.Receiver)
	}
	return false
}

func (r *ReadPropExpr) Clone() OutputExpression {
	return &ReadPropExpr{ExpressionBase: r.ExpressionBase, Receiver: r.Receiver.Clone(), Name: r.Name, Optional: r.Optional}
}

// Set creates an assignment expression
func (r *ReadPropExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value)
}

// ReadKeyExpr represents `receiver[index]`
type ReadKeyExpr struct {
	ExpressionBase
	Receiver OutputExpression
	Index    OutputExpression
	Optional bool
}

// NewReadKeyExpr creates a new ReadKeyExpr
func NewReadKeyExpr(receiver, index OutputExpression) *ReadKeyExpr {
	return &ReadKeyExpr{Receiver: receiver, Index: index}
}

func (r *ReadKeyExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadKeyExpr(r, context)
}

func (r *ReadKeyExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadKeyExpr); ok {
		return r.Optional == other.Optional && r.Receiver.IsEquivalent(other.Receiver) && r.Index.IsEquivalent(other.Index)
	}
	return false
}

func (r *ReadKeyExpr) Clone() OutputExpression {
	return &ReadKeyExpr{ExpressionBase: r.ExpressionBase, Receiver: r.Receiver.Clone(), Index: r.Index.Clone(), Optional: r.Optional}
}

// LiteralArrayExpr represents an array literal
type LiteralArrayExpr struct {
	ExpressionBase
	Entries []OutputExpression
}

// NewLiteralArrayExpr creates a new LiteralArrayExpr
func NewLiteralArrayExpr(entries []OutputExpression) *LiteralArrayExpr {
	return &LiteralArrayExpr{Entries: entries}
}

func (l *LiteralArrayExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralArrayExpr(l, context)
}

func (l *LiteralArrayExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralArrayExpr); ok {
		return areAllEquivalentExprs(l.Entries, other.Entries)
	}
	return false
}

func (l *LiteralArrayExpr) Clone() OutputExpression {
	return &LiteralArrayExpr{ExpressionBase: l.ExpressionBase, Entries: cloneExprs(l.Entries)}
}

// LiteralMapEntryKind tells how an object literal member is written
type LiteralMapEntryKind int

const (
	LiteralMapEntryKeyValue LiteralMapEntryKind = iota
	LiteralMapEntryShorthand
	LiteralMapEntryMethod
	LiteralMapEntryGetter
	LiteralMapEntrySetter
	LiteralMapEntrySpread
)

// LiteralMapEntry is one member of an object literal. KeyExpr is set for
// computed keys; Value is a *FunctionExpr for methods and accessors.
type LiteralMapEntry struct {
	Kind    LiteralMapEntryKind
	Key     string
	Quoted  bool
	KeyExpr OutputExpression
	Value   OutputExpression
}

// NewLiteralMapEntry creates a new key/value entry
func NewLiteralMapEntry(key string, value OutputExpression, quoted bool) *LiteralMapEntry {
	return &LiteralMapEntry{Kind: LiteralMapEntryKeyValue, Key: key, Value: value, Quoted: quoted}
}

// NewMethodEntry creates a method entry `key(params) { ... }`
func NewMethodEntry(key string, fn *FunctionExpr) *LiteralMapEntry {
	return &LiteralMapEntry{Kind: LiteralMapEntryMethod, Key: key, Value: fn}
}

// NewSpreadEntry creates a spread entry `...value`
func NewSpreadEntry(value OutputExpression) *LiteralMapEntry {
	return &LiteralMapEntry{Kind: LiteralMapEntrySpread, Value: value}
}

// NewShorthandEntry creates a shorthand entry `{ name }`
func NewShorthandEntry(name string) *LiteralMapEntry {
	return &LiteralMapEntry{Kind: LiteralMapEntryShorthand, Key: name, Value: NewReadVarExpr(name)}
}

// IsComputed reports whether the key is an expression
func (l *LiteralMapEntry) IsComputed() bool {
	return l.KeyExpr != nil
}

// StaticKey returns the key name for non-spread, non-computed entries
func (l *LiteralMapEntry) StaticKey() (string, bool) {
	if l.Kind == LiteralMapEntrySpread || l.KeyExpr != nil {
		return "", false
	}
	return l.Key, true
}

func (l *LiteralMapEntry) IsEquivalent(e *LiteralMapEntry) bool {
	return l.Kind == e.Kind && l.Key == e.Key && nullSafeIsEquivalent(l.KeyExpr, e.KeyExpr) && nullSafeIsEquivalent(l.Value, e.Value)
}

func (l *LiteralMapEntry) Clone() *LiteralMapEntry {
	return &LiteralMapEntry{Kind: l.Kind, Key: l.Key, Quoted: l.Quoted, KeyExpr: cloneExpr(l.KeyExpr), Value: cloneExpr(l.Value)}
}

// LiteralMapExpr represents an object literal. Entries keep source order and
// duplicate keys.
type LiteralMapExpr struct {
	ExpressionBase
	Entries []*LiteralMapEntry
}

// NewLiteralMapExpr creates a new LiteralMapExpr
func NewLiteralMapExpr(entries []*LiteralMapEntry) *LiteralMapExpr {
	if entries == nil {
		entries = []*LiteralMapEntry{}
	}
	return &LiteralMapExpr{Entries: entries}
}

func (l *LiteralMapExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralMapExpr(l, context)
}

func (l *LiteralMapExpr) IsEquivalent(e OutputExpression) bool {
	other, ok := e.(*LiteralMapExpr)
	if !ok || len(l.Entries) != len(other.Entries) {
		return false
	}
	for i := range l.Entries {
		if !l.Entries[i].IsEquivalent(other.Entries[i]) {
			return false
		}
	}
	return true
}

func (l *LiteralMapExpr) Clone() OutputExpression {
	entries := make([]*LiteralMapEntry, len(l.Entries))
	for i, entry := range l.Entries {
		entries[i] = entry.Clone()
	}
	return &LiteralMapExpr{ExpressionBase: l.ExpressionBase, Entries: entries}
}

// Keys returns the static keys in order, duplicates included
func (l *LiteralMapExpr) Keys() []string {
	var keys []string
	for _, entry := range l.Entries {
		if key, ok := entry.StaticKey(); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// CommaExpr represents a sequence expression `(a, b)`
type CommaExpr struct {
	ExpressionBase
	Parts []OutputExpression
}

// NewCommaExpr creates a new CommaExpr
func NewCommaExpr(parts []OutputExpression) *CommaExpr {
	return &CommaExpr{Parts: parts}
}

func (c *CommaExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitCommaExpr(c, context)
}

func (c *CommaExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*CommaExpr); ok {
		return areAllEquivalentExprs(c.Parts, other.Parts)
	}
	return false
}

func (c *CommaExpr) Clone() OutputExpression {
	return &CommaExpr{ExpressionBase: c.ExpressionBase, Parts: cloneExprs(c.Parts)}
}

// TypeofExpr represents `typeof expr`
type TypeofExpr struct {
	ExpressionBase
	Expr OutputExpression
}

// NewTypeofExpr creates a new TypeofExpr
func NewTypeofExpr(expr OutputExpression) *TypeofExpr {
	return &TypeofExpr{Expr: expr}
}

func (t *TypeofExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTypeofExpr(t, context)
}

func (t *TypeofExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TypeofExpr); ok {
		return t.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (t *TypeofExpr) Clone() OutputExpression {
	return &TypeofExpr{ExpressionBase: t.ExpressionBase, Expr: t.Expr.Clone()}
}

// VoidExpr represents `void expr`
type VoidExpr struct {
	ExpressionBase
	Expr OutputExpression
}

// NewVoidExpr creates a new VoidExpr
func NewVoidExpr(expr OutputExpression) *VoidExpr {
	return &VoidExpr{Expr: expr}
}

func (v *VoidExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitVoidExpr(v, context)
}

func (v *VoidExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*VoidExpr); ok {
		return v.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (v *VoidExpr) Clone() OutputExpression {
	return &VoidExpr{ExpressionBase: v.ExpressionBase, Expr: v.Expr.Clone()}
}

// AwaitExpr represents `await expr`
type AwaitExpr struct {
	ExpressionBase
	Expr OutputExpression
}

// NewAwaitExpr creates a new AwaitExpr
func NewAwaitExpr(expr OutputExpression) *AwaitExpr {
	return &AwaitExpr{Expr: expr}
}

func (a *AwaitExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitAwaitExpr(a, context)
}

func (a *AwaitExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*AwaitExpr); ok {
		return a.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (a *AwaitExpr) Clone() OutputExpression {
	return &AwaitExpr{ExpressionBase: a.ExpressionBase, Expr: a.Expr.Clone()}
}

// ArrowFunctionExpr represents an arrow function. Body is either an
// OutputExpression or a []OutputStatement.
type ArrowFunctionExpr struct {
	ExpressionBase
	Params []*FnParam
	Body   interface{}
	Async  bool
}

// NewArrowFunctionExpr creates a new ArrowFunctionExpr
func NewArrowFunctionExpr(params []*FnParam, body interface{}) *ArrowFunctionExpr {
	return &ArrowFunctionExpr{Params: params, Body: body}
}

func (a *ArrowFunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitArrowFunctionExpr(a, context)
}

func (a *ArrowFunctionExpr) IsEquivalent(e OutputExpression) bool {
	other, ok := e.(*ArrowFunctionExpr)
	if !ok || a.Async != other.Async || !paramsEquivalent(a.Params, other.Params) {
		return false
	}
	switch body := a.Body.(type) {
	case OutputExpression:
		otherBody, ok := other.Body.(OutputExpression)
		return ok && body.IsEquivalent(otherBody)
	case []OutputStatement:
		otherBody, ok := other.Body.([]OutputStatement)
		return ok && areAllEquivalentStatements(body, otherBody)
	}
	return false
}

func (a *ArrowFunctionExpr) Clone() OutputExpression {
	var body interface{}
	switch b := a.Body.(type) {
	case OutputExpression:
		body = b.Clone()
	case []OutputStatement:
		body = cloneStatements(b)
	}
	return &ArrowFunctionExpr{ExpressionBase: a.ExpressionBase, Params: cloneParams(a.Params), Body: body, Async: a.Async}
}

// ExpressionBody returns the body when it is a single expression
func (a *ArrowFunctionExpr) ExpressionBody() (OutputExpression, bool) {
	expr, ok := a.Body.(OutputExpression)
	return expr, ok
}

// BlockBody returns the body when it is a statement block
func (a *ArrowFunctionExpr) BlockBody() ([]OutputStatement, bool) {
	stmts, ok := a.Body.([]OutputStatement)
	return stmts, ok
}

// ParenthesizedExpr keeps explicit parentheses from the source
type ParenthesizedExpr struct {
	ExpressionBase
	Expr OutputExpression
}

// NewParenthesizedExpr creates a new ParenthesizedExpr
func NewParenthesizedExpr(expr OutputExpression) *ParenthesizedExpr {
	return &ParenthesizedExpr{Expr: expr}
}

func (p *ParenthesizedExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitParenthesizedExpr(p, context)
}

func (p *ParenthesizedExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ParenthesizedExpr); ok {
		return p.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (p *ParenthesizedExpr) Clone() OutputExpression {
	return &ParenthesizedExpr{ExpressionBase: p.ExpressionBase, Expr: p.Expr.Clone()}
}

// Unparenthesize strips any number of ParenthesizedExpr wrappers
func Unparenthesize(expr OutputExpression) OutputExpression {
	for {
		p, ok := expr.(*ParenthesizedExpr)
		if !ok {
			return expr
		}
		expr = p.Expr
	}
}

// RegularExpressionLiteralExpr represents `/body/flags`
type RegularExpressionLiteralExpr struct {
	ExpressionBase
	Body  string
	Flags *string
}

// NewRegularExpressionLiteralExpr creates a new RegularExpressionLiteralExpr
func NewRegularExpressionLiteralExpr(body string, flags *string) *RegularExpressionLiteralExpr {
	return &RegularExpressionLiteralExpr{Body: body, Flags: flags}
}

func (r *RegularExpressionLiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitRegularExpressionLiteral(r, context)
}

func (r *RegularExpressionLiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*RegularExpressionLiteralExpr); ok {
		return r.Body == other.Body && ((r.Flags == nil && other.Flags == nil) || (r.Flags != nil && other.Flags != nil && *r.Flags == *other.Flags))
	}
	return false
}

func (r *RegularExpressionLiteralExpr) Clone() OutputExpression {
	return &RegularExpressionLiteralExpr{ExpressionBase: r.ExpressionBase, Body: r.Body, Flags: r.Flags}
}

// SpreadElementExpr represents `...expr` in call arguments and array literals
type SpreadElementExpr struct {
	ExpressionBase
	Expr OutputExpression
}

// NewSpreadElementExpr creates a new SpreadElementExpr
func NewSpreadElementExpr(expr OutputExpression) *SpreadElementExpr {
	return &SpreadElementExpr{Expr: expr}
}

func (s *SpreadElementExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitSpreadElementExpr(s, context)
}

func (s *SpreadElementExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*SpreadElementExpr); ok {
		return s.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (s *SpreadElementExpr) Clone() OutputExpression {
	return &SpreadElementExpr{ExpressionBase: s.ExpressionBase, Expr: s.Expr.Clone()}
}

// InvalidExpr stands in for an expression that could not be parsed. It keeps
// the tree shape valid; printing it yields an invalid-expression marker.
type InvalidExpr struct {
	ExpressionBase
	Source string
}

// NewInvalidExpr creates a new InvalidExpr
func NewInvalidExpr(source string) *InvalidExpr {
	return &InvalidExpr{Source: source}
}

func (i *InvalidExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInvalidExpr(i, context)
}

func (i *InvalidExpr) IsEquivalent(e OutputExpression) bool {
	_, ok := e.(*InvalidExpr)
	return ok
}

func (i *InvalidExpr) Clone() OutputExpression {
	return &InvalidExpr{ExpressionBase: i.ExpressionBase, Source: i.Source}
}

// Variable creates a ReadVarExpr
func Variable(name string) *ReadVarExpr {
	return NewReadVarExpr(name)
}

// Literal creates a LiteralExpr
func Literal(value interface{}) *LiteralExpr {
	return NewLiteralExpr(value)
}

// NullExpr is the `null` literal
var NullExpr = NewLiteralExpr(nil)

package output

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	legalIdentifierRe = regexp.MustCompile(`(?i)^[$A-Z_][0-9A-Z_$]*$`)
	indentWith        = "    "
)

var binaryOperators = map[BinaryOperator]string{
	BinaryOperatorAnd:                       "&&",
	BinaryOperatorBigger:                    ">",
	BinaryOperatorBiggerEquals:              ">=",
	BinaryOperatorBitwiseOr:                 "|",
	BinaryOperatorBitwiseAnd:                "&",
	BinaryOperatorBitwiseXor:                "^",
	BinaryOperatorLeftShift:                 "<<",
	BinaryOperatorRightShift:                ">>",
	BinaryOperatorUnsignedRightShift:        ">>>",
	BinaryOperatorDivide:                    "/",
	BinaryOperatorAssign:                    "=",
	BinaryOperatorEquals:                    "==",
	BinaryOperatorIdentical:                 "===",
	BinaryOperatorLower:                     "<",
	BinaryOperatorLowerEquals:               "<=",
	BinaryOperatorMinus:                     "-",
	BinaryOperatorModulo:                    "%",
	BinaryOperatorExponentiation:            "**",
	BinaryOperatorMultiply:                  "*",
	BinaryOperatorNotEquals:                 "!=",
	BinaryOperatorNotIdentical:              "!==",
	BinaryOperatorNullishCoalesce:           "??",
	BinaryOperatorOr:                        "||",
	BinaryOperatorPlus:                      "+",
	BinaryOperatorIn:                        "in",
	BinaryOperatorInstanceof:                "instanceof",
	BinaryOperatorAdditionAssignment:        "+=",
	BinaryOperatorSubtractionAssignment:     "-=",
	BinaryOperatorMultiplicationAssignment:  "*=",
	BinaryOperatorDivisionAssignment:        "/=",
	BinaryOperatorRemainderAssignment:       "%=",
	BinaryOperatorExponentiationAssignment:  "**=",
	BinaryOperatorAndAssignment:             "&&=",
	BinaryOperatorOrAssignment:              "||=",
	BinaryOperatorNullishCoalesceAssignment: "??=",
}

// BinaryOperatorString returns the source spelling of op
func BinaryOperatorString(op BinaryOperator) string {
	return binaryOperators[op]
}

// EmittedLine represents a line being emitted
type EmittedLine struct {
	PartsLength int
	Parts       []string
	Indent      int
}

// NewEmittedLine creates a new EmittedLine
func NewEmittedLine(indent int) *EmittedLine {
	return &EmittedLine{
		PartsLength: 0,
		Parts:       []string{},
		Indent:      indent,
	}
}

// EmitterVisitorContext represents the context for emitting code
type EmitterVisitorContext struct {
	lines  []*EmittedLine
	indent int
}

// CreateRootEmitterVisitorContext creates a root EmitterVisitorContext
func CreateRootEmitterVisitorContext() *EmitterVisitorContext {
	return NewEmitterVisitorContext(0)
}

// NewEmitterVisitorContext creates a new EmitterVisitorContext
func NewEmitterVisitorContext(indent int) *EmitterVisitorContext {
	return &EmitterVisitorContext{
		lines:  []*EmittedLine{NewEmittedLine(indent)},
		indent: indent,
	}
}

func (ctx *EmitterVisitorContext) currentLine() *EmittedLine {
	return ctx.lines[len(ctx.lines)-1]
}

// Println prints the part and starts a new line
func (ctx *EmitterVisitorContext) Println(lastPart string) {
	ctx.Print(lastPart, true)
}

// LineIsEmpty checks if the current line is empty
func (ctx *EmitterVisitorContext) LineIsEmpty() bool {
	return len(ctx.currentLine().Parts) == 0
}

// LineLength returns the length of the current line
func (ctx *EmitterVisitorContext) LineLength() int {
	line := ctx.currentLine()
	return line.Indent*len(indentWith) + line.PartsLength
}

// Print prints to the context
func (ctx *EmitterVisitorContext) Print(part string, newLine bool) {
	if len(part) > 0 {
		line := ctx.currentLine()
		line.Parts = append(line.Parts, part)
		line.PartsLength += len(part)
	}
	if newLine {
		ctx.lines = append(ctx.lines, NewEmittedLine(ctx.indent))
	}
}

// RemoveEmptyLastLine removes the empty last line
func (ctx *EmitterVisitorContext) RemoveEmptyLastLine() {
	if ctx.LineIsEmpty() && len(ctx.lines) > 1 {
		ctx.lines = ctx.lines[:len(ctx.lines)-1]
	}
}

// IncIndent increases the indent
func (ctx *EmitterVisitorContext) IncIndent() {
	ctx.indent++
	if ctx.LineIsEmpty() {
		ctx.currentLine().Indent = ctx.indent
	}
}

// DecIndent decreases the indent
func (ctx *EmitterVisitorContext) DecIndent() {
	ctx.indent--
	if ctx.LineIsEmpty() {
		ctx.currentLine().Indent = ctx.indent
	}
}

// ToSource converts the context to source code
func (ctx *EmitterVisitorContext) ToSource() string {
	lines := ctx.sourceLines()
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line.Parts) > 0 {
			result = append(result, createIndent(line.Indent)+strings.Join(line.Parts, ""))
		} else {
			result = append(result, "")
		}
	}
	return strings.Join(result, "\n")
}

// sourceLines returns the source lines (excluding empty last line)
func (ctx *EmitterVisitorContext) sourceLines() []*EmittedLine {
	if len(ctx.lines) > 0 && len(ctx.lines[len(ctx.lines)-1].Parts) == 0 {
		return ctx.lines[:len(ctx.lines)-1]
	}
	return ctx.lines
}

// EmitterVisitor prints output AST nodes as JavaScript. In minify mode no
// optional whitespace or line breaks are produced.
type EmitterVisitor struct {
	minify bool
}

// NewEmitterVisitor creates a new EmitterVisitor
func NewEmitterVisitor(minify bool) *EmitterVisitor {
	return &EmitterVisitor{minify: minify}
}

func (v *EmitterVisitor) getContext(context interface{}) *EmitterVisitorContext {
	if ctx, ok := context.(*EmitterVisitorContext); ok {
		return ctx
	}
	panic("context must be *EmitterVisitorContext")
}

// space prints a separator that only exists in pretty mode
func (v *EmitterVisitor) space(ctx *EmitterVisitorContext) {
	if !v.minify {
		ctx.Print(" ", false)
	}
}

// println ends the current line in pretty mode
func (v *EmitterVisitor) println(ctx *EmitterVisitorContext, part string) {
	ctx.Print(part, !v.minify)
}

// visitExpr prints expr, adding parentheses when it binds looser than level
func (v *EmitterVisitor) visitExpr(expr OutputExpression, level L, ctx *EmitterVisitorContext) {
	wrap := Precedence(expr) < level
	if wrap {
		ctx.Print("(", false)
	}
	expr.VisitExpression(v, ctx)
	if wrap {
		ctx.Print(")", false)
	}
}

// VisitReadVarExpr visits a read variable expression
func (v *EmitterVisitor) VisitReadVarExpr(ast *ReadVarExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print(ast.Name, false)
	return nil
}

// VisitInvokeFunctionExpr visits an invoke function expression
func (v *EmitterVisitor) VisitInvokeFunctionExpr(expr *InvokeFunctionExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitExpr(expr.Fn, LPostfix, ctx)
	if expr.Optional {
		ctx.Print("?.", false)
	}
	ctx.Print("(", false)
	v.VisitAllExpressions(expr.Args, ctx)
	ctx.Print(")", false)
	return nil
}

// VisitTaggedTemplateLiteralExpr visits a tagged template literal expression
func (v *EmitterVisitor) VisitTaggedTemplateLiteralExpr(expr *TaggedTemplateLiteralExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitExpr(expr.Tag, LPostfix, ctx)
	expr.Template.VisitExpression(v, ctx)
	return nil
}

// VisitTemplateLiteralExpr visits a template literal expression
func (v *EmitterVisitor) VisitTemplateLiteralExpr(expr *TemplateLiteralExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("`", false)
	for i := 0; i < len(expr.Elements); i++ {
		expr.Elements[i].VisitExpression(v, ctx)
		if i < len(expr.Expressions) {
			ctx.Print("${", false)
			v.visitExpr(expr.Expressions[i], LLowest, ctx)
			ctx.Print("}", false)
		}
	}
	ctx.Print("`", false)
	return nil
}

// VisitTemplateLiteralElementExpr visits a template literal element expression
func (v *EmitterVisitor) VisitTemplateLiteralElementExpr(expr *TemplateLiteralElementExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print(expr.RawText, false)
	return nil
}

// VisitInstantiateExpr visits an instantiate expression
func (v *EmitterVisitor) VisitInstantiateExpr(ast *InstantiateExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("new ", false)
	// a call in the callee position would bind to `new` instead
	if _, isCall := leftmostCall(ast.ClassExpr); isCall {
		ctx.Print("(", false)
		ast.ClassExpr.VisitExpression(v, ctx)
		ctx.Print(")", false)
	} else {
		v.visitExpr(ast.ClassExpr, LNew, ctx)
	}
	ctx.Print("(", false)
	v.VisitAllExpressions(ast.Args, ctx)
	ctx.Print(")", false)
	return nil
}

func leftmostCall(expr OutputExpression) (OutputExpression, bool) {
	for {
		switch e := expr.(type) {
		case *InvokeFunctionExpr:
			return e, true
		case *ReadPropExpr:
			expr = e.Receiver
		case *ReadKeyExpr:
			expr = e.Receiver
		default:
			return expr, false
		}
	}
}

// VisitLiteralExpr visits a literal expression
func (v *EmitterVisitor) VisitLiteralExpr(ast *LiteralExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	switch val := ast.Value.(type) {
	case string:
		ctx.Print(EscapeString(val), false)
	case float64:
		if ast.Raw != "" {
			ctx.Print(ast.Raw, false)
		} else {
			ctx.Print(formatNumber(val), false)
		}
	case bool:
		ctx.Print(strconv.FormatBool(val), false)
	case nil:
		ctx.Print("null", false)
	default:
		ctx.Print(fmt.Sprintf("%v", val), false)
	}
	return nil
}

// VisitExternalExpr prints the local alias of the imported helper
func (v *EmitterVisitor) VisitExternalExpr(ast *ExternalExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print(ast.Value.Alias(), false)
	return nil
}

// VisitConditionalExpr visits a conditional expression
func (v *EmitterVisitor) VisitConditionalExpr(ast *ConditionalExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitExpr(ast.Condition, LConditional+1, ctx)
	v.space(ctx)
	ctx.Print("?", false)
	v.space(ctx)
	v.visitExpr(ast.TrueCase, LAssign, ctx)
	v.space(ctx)
	ctx.Print(":", false)
	v.space(ctx)
	if ast.FalseCase != nil {
		v.visitExpr(ast.FalseCase, LAssign, ctx)
	} else {
		ctx.Print("undefined", false)
	}
	return nil
}

// VisitNotExpr visits a not expression
func (v *EmitterVisitor) VisitNotExpr(ast *NotExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("!", false)
	v.visitExpr(ast.Condition, LPrefix, ctx)
	return nil
}

// VisitUnaryOperatorExpr visits a unary operator expression
func (v *EmitterVisitor) VisitUnaryOperatorExpr(ast *UnaryOperatorExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	var opStr string
	switch ast.Operator {
	case UnaryOperatorPlus:
		opStr = "+"
	case UnaryOperatorMinus:
		opStr = "-"
	case UnaryOperatorBitwiseNot:
		opStr = "~"
	case UnaryOperatorDelete:
		opStr = "delete "
	default:
		panic(fmt.Sprintf("Unknown operator %d", ast.Operator))
	}
	ctx.Print(opStr, false)
	// `- -x` and `+ +x` must not collapse into `--x`
	if startsWithSign(ast.Expr, opStr) {
		ctx.Print(" ", false)
	}
	v.visitExpr(ast.Expr, LPrefix, ctx)
	return nil
}

// VisitUpdateExpr visits `++`/`--` in prefix or postfix position
func (v *EmitterVisitor) VisitUpdateExpr(ast *UpdateExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	op := "++"
	if ast.Operator == UpdateOperatorDecrement {
		op = "--"
	}
	if ast.Prefix {
		ctx.Print(op, false)
		if startsWithSign(ast.Expr, op[:1]) {
			ctx.Print(" ", false)
		}
		v.visitExpr(ast.Expr, LPrefix, ctx)
		return nil
	}
	v.visitExpr(ast.Expr, LPostfix, ctx)
	ctx.Print(op, false)
	return nil
}

// VisitBinaryOperatorExpr visits a binary operator expression
func (v *EmitterVisitor) VisitBinaryOperatorExpr(ast *BinaryOperatorExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	operator, ok := binaryOperators[ast.Operator]
	if !ok {
		panic(fmt.Sprintf("Unknown operator %d", ast.Operator))
	}
	level := BinaryOperatorPrecedence(ast.Operator)
	leftLevel, rightLevel := level, level+1
	switch {
	case ast.IsAssignment():
		leftLevel, rightLevel = LAssign+1, LAssign
	case ast.Operator == BinaryOperatorExponentiation:
		// right-associative, and a unary operand on the left is a syntax error
		leftLevel, rightLevel = LPostfix, level
	}
	v.visitBinaryOperand(ast.Operator, ast.Lhs, leftLevel, ctx)
	if isWordOperator(ast.Operator) {
		ctx.Print(" "+operator+" ", false)
	} else {
		v.space(ctx)
		ctx.Print(operator, false)
		if startsWithSign(ast.Rhs, operator) {
			ctx.Print(" ", false)
		} else {
			v.space(ctx)
		}
	}
	v.visitBinaryOperand(ast.Operator, ast.Rhs, rightLevel, ctx)
	return nil
}

// `??` cannot be mixed with `||` or `&&` without parentheses
func (v *EmitterVisitor) visitBinaryOperand(parent BinaryOperator, operand OutputExpression, level L, ctx *EmitterVisitorContext) {
	if child, ok := operand.(*BinaryOperatorExpr); ok {
		mixed := (parent == BinaryOperatorNullishCoalesce && (child.Operator == BinaryOperatorOr || child.Operator == BinaryOperatorAnd)) ||
			((parent == BinaryOperatorOr || parent == BinaryOperatorAnd) && child.Operator == BinaryOperatorNullishCoalesce)
		if mixed {
			ctx.Print("(", false)
			operand.VisitExpression(v, ctx)
			ctx.Print(")", false)
			return
		}
	}
	v.visitExpr(operand, level, ctx)
}

func isWordOperator(op BinaryOperator) bool {
	return op == BinaryOperatorIn || op == BinaryOperatorInstanceof
}

// startsWithSign reports whether printing expr right after op would fuse
// two sign characters into one token.
func startsWithSign(expr OutputExpression, op string) bool {
	if op != "+" && op != "-" {
		return false
	}
	switch e := expr.(type) {
	case *UnaryOperatorExpr:
		return (e.Operator == UnaryOperatorPlus && op == "+") || (e.Operator == UnaryOperatorMinus && op == "-")
	case *UpdateExpr:
		return e.Prefix && ((e.Operator == UpdateOperatorIncrement && op == "+") || (e.Operator == UpdateOperatorDecrement && op == "-"))
	case *LiteralExpr:
		f, ok := e.Value.(float64)
		return ok && f < 0 && op == "-"
	}
	return false
}

// VisitReadPropExpr visits a read property expression
func (v *EmitterVisitor) VisitReadPropExpr(ast *ReadPropExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitExpr(ast.Receiver, LPostfix, ctx)
	// `1.foo` would lex as a number
	if lit, ok := ast.Receiver.(*LiteralExpr); ok {
		if _, isNum := lit.Value.(float64); isNum && !ast.Optional && Precedence(lit) >= LPostfix {
			text := lit.Raw
			if text == "" {
				text = formatNumber(lit.Value.(float64))
			}
			if !strings.ContainsAny(text, ".eExXoObB") {
				ctx.Print(".", false)
			}
		}
	}
	if ast.Optional {
		ctx.Print("?.", false)
	} else {
		ctx.Print(".", false)
	}
	ctx.Print(ast.Name, false)
	return nil
}

// VisitReadKeyExpr visits a read key expression
func (v *EmitterVisitor) VisitReadKeyExpr(ast *ReadKeyExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	v.visitExpr(ast.Receiver, LPostfix, ctx)
	if ast.Optional {
		ctx.Print("?.", false)
	}
	ctx.Print("[", false)
	v.visitExpr(ast.Index, LLowest, ctx)
	ctx.Print("]", false)
	return nil
}

// VisitLiteralArrayExpr visits a literal array expression
func (v *EmitterVisitor) VisitLiteralArrayExpr(ast *LiteralArrayExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("[", false)
	for i, entry := range ast.Entries {
		if i > 0 {
			ctx.Print(",", false)
			v.space(ctx)
		}
		if entry != nil {
			v.visitExpr(entry, LAssign, ctx)
		}
		// a trailing hole needs its own comma
		if entry == nil && i == len(ast.Entries)-1 {
			ctx.Print(",", false)
		}
	}
	ctx.Print("]", false)
	return nil
}

// VisitLiteralMapExpr visits a literal map expression. Objects holding
// functions or nested non-empty objects are broken over several lines in
// pretty mode.
func (v *EmitterVisitor) VisitLiteralMapExpr(ast *LiteralMapExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	if len(ast.Entries) == 0 {
		ctx.Print("{}", false)
		return nil
	}
	multiline := !v.minify && isComplexMap(ast)
	if multiline {
		ctx.Println("{")
		ctx.IncIndent()
	} else {
		ctx.Print("{", false)
		v.space(ctx)
	}
	for i, entry := range ast.Entries {
		if i > 0 {
			if multiline {
				ctx.Println(",")
			} else {
				ctx.Print(",", false)
				v.space(ctx)
			}
		}
		v.visitMapEntry(entry, ctx)
	}
	if multiline {
		ctx.Println("")
		ctx.DecIndent()
	} else {
		v.space(ctx)
	}
	ctx.Print("}", false)
	return nil
}

func isComplexMap(ast *LiteralMapExpr) bool {
	for _, entry := range ast.Entries {
		switch entry.Kind {
		case LiteralMapEntryMethod, LiteralMapEntryGetter, LiteralMapEntrySetter:
			return true
		}
		switch value := Unparenthesize(entry.Value).(type) {
		case *FunctionExpr:
			return true
		case *ArrowFunctionExpr:
			if _, block := value.BlockBody(); block {
				return true
			}
		case *LiteralMapExpr:
			if len(value.Entries) > 0 {
				return true
			}
		}
	}
	return false
}

func (v *EmitterVisitor) visitMapEntry(entry *LiteralMapEntry, ctx *EmitterVisitorContext) {
	switch entry.Kind {
	case LiteralMapEntrySpread:
		ctx.Print("...", false)
		v.visitExpr(entry.Value, LAssign, ctx)
		return
	case LiteralMapEntryShorthand:
		if ref, ok := entry.Value.(*ReadVarExpr); ok && ref.Name == entry.Key && entry.KeyExpr == nil {
			ctx.Print(entry.Key, false)
			return
		}
	case LiteralMapEntryMethod, LiteralMapEntryGetter, LiteralMapEntrySetter:
		fn, ok := entry.Value.(*FunctionExpr)
		if !ok {
			break
		}
		switch entry.Kind {
		case LiteralMapEntryGetter:
			ctx.Print("get ", false)
		case LiteralMapEntrySetter:
			ctx.Print("set ", false)
		default:
			if fn.Async {
				ctx.Print("async ", false)
			}
			if fn.Generator {
				ctx.Print("*", false)
			}
		}
		v.visitMapKey(entry, ctx)
		v.visitFunctionTail(fn.Params, fn.Statements, ctx)
		return
	}
	v.visitMapKey(entry, ctx)
	ctx.Print(":", false)
	v.space(ctx)
	v.visitExpr(entry.Value, LAssign, ctx)
}

func (v *EmitterVisitor) visitMapKey(entry *LiteralMapEntry, ctx *EmitterVisitorContext) {
	if entry.KeyExpr != nil {
		ctx.Print("[", false)
		v.visitExpr(entry.KeyExpr, LAssign, ctx)
		ctx.Print("]", false)
		return
	}
	ctx.Print(EscapeKey(entry.Key, entry.Quoted), false)
}

// VisitCommaExpr visits a comma expression
func (v *EmitterVisitor) VisitCommaExpr(ast *CommaExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	for i, part := range ast.Parts {
		if i > 0 {
			ctx.Print(",", false)
			v.space(ctx)
		}
		v.visitExpr(part, LAssign, ctx)
	}
	return nil
}

// VisitTypeofExpr visits a typeof expression
func (v *EmitterVisitor) VisitTypeofExpr(expr *TypeofExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("typeof ", false)
	v.visitExpr(expr.Expr, LPrefix, ctx)
	return nil
}

// VisitVoidExpr visits a void expression
func (v *EmitterVisitor) VisitVoidExpr(expr *VoidExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("void ", false)
	v.visitExpr(expr.Expr, LPrefix, ctx)
	return nil
}

// VisitAwaitExpr visits an await expression
func (v *EmitterVisitor) VisitAwaitExpr(expr *AwaitExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("await ", false)
	v.visitExpr(expr.Expr, LPrefix, ctx)
	return nil
}

// VisitParenthesizedExpr keeps parentheses written in the source
func (v *EmitterVisitor) VisitParenthesizedExpr(ast *ParenthesizedExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("(", false)
	v.visitExpr(ast.Expr, LLowest, ctx)
	ctx.Print(")", false)
	return nil
}

// VisitRegularExpressionLiteral visits a regular expression literal
func (v *EmitterVisitor) VisitRegularExpressionLiteral(ast *RegularExpressionLiteralExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	flags := ""
	if ast.Flags != nil {
		flags = *ast.Flags
	}
	ctx.Print(fmt.Sprintf("/%s/%s", ast.Body, flags), false)
	return nil
}

// VisitSpreadElementExpr visits a spread element
func (v *EmitterVisitor) VisitSpreadElementExpr(ast *SpreadElementExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("...", false)
	v.visitExpr(ast.Expr, LAssign, ctx)
	return nil
}

// VisitInvalidExpr prints a value that keeps the module loadable
func (v *EmitterVisitor) VisitInvalidExpr(ast *InvalidExpr, context interface{}) interface{} {
	ctx := v.getContext(context)
	ctx.Print("undefined", false)
	if !v.minify {
		ctx.Print(" /* invalid expression */", false)
	}
	return nil
}

// VisitAllExpressions prints a comma separated argument list
func (v *EmitterVisitor) VisitAllExpressions(expressions []OutputExpression, ctx *EmitterVisitorContext) {
	for i, expr := range expressions {
		if i > 0 {
			ctx.Print(",", false)
			v.space(ctx)
		}
		v.visitExpr(expr, LAssign, ctx)
	}
}

// EscapeString quotes input as a double-quoted JavaScript string literal
func EscapeString(input string) string {
	var sb strings.Builder
	sb.Grow(len(input) + 2)
	sb.WriteByte('"')
	for _, r := range input {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\u2028', '\u2029':
			sb.WriteString(fmt.Sprintf(`\u%04x`, r))
		default:
			if r < 0x20 || r == 0x7f {
				sb.WriteString(fmt.Sprintf(`\x%02x`, r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// EscapeKey prints an object key, quoting it when it is not a legal
// identifier or numeric literal
func EscapeKey(key string, alwaysQuote bool) string {
	if !alwaysQuote && (legalIdentifierRe.MatchString(key) || isNumericKey(key)) {
		return key
	}
	return EscapeString(key)
}

func isNumericKey(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return false
		}
	}
	return key == "0" || key[0] != '0'
}

// IsLegalIdentifier reports whether name can be printed unquoted
func IsLegalIdentifier(name string) bool {
	return legalIdentifierRe.MatchString(name)
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// createIndent creates an indent string
func createIndent(count int) string {
	return strings.Repeat(indentWith, count)
}

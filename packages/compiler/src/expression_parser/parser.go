package expression_parser

import (
	"fmt"

	"vuec-go/packages/compiler/src/core"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/util"
)

// Parser turns JavaScript source into the output AST
type Parser struct {
	lexer *Lexer
}

// NewParser creates a new Parser
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer: lexer}
}

var defaultParser = NewParser(NewLexer())

// ParseExpression parses a single expression with the default parser
func ParseExpression(input string) (output.OutputExpression, error) {
	expr, errs := defaultParser.ParseExpression(input, "")
	return expr, errs.Err()
}

// ParseModule parses an ES module body with the default parser
func ParseModule(input string) (*output.Module, error) {
	module, errs := defaultParser.ParseModule(input, "")
	return module, errs.Err()
}

// ParseExpression parses input as one expression. The expression is nil
// when errors are returned.
func (p *Parser) ParseExpression(input string, url string) (output.OutputExpression, util.ParseErrors) {
	ast := newParseAST(input, url, p.lexer.Tokenize(input))
	var result output.OutputExpression
	ast.run(func() {
		result = ast.parseExpression()
		if !ast.atEOF() {
			ast.error(fmt.Sprintf("Unexpected token '%s'", ast.prettyPrintToken(ast.next())))
		}
	})
	if len(ast.errors) > 0 {
		return nil, ast.errors
	}
	return result, nil
}

// ParseModule parses input as the body of an ES module
func (p *Parser) ParseModule(input string, url string) (*output.Module, util.ParseErrors) {
	ast := newParseAST(input, url, p.lexer.Tokenize(input))
	module := output.NewModule(nil)
	ast.run(func() {
		for !ast.atEOF() {
			if stmt := ast.parseStatement(); stmt != nil {
				module.Append(stmt)
			}
		}
	})
	if len(ast.errors) > 0 {
		return nil, ast.errors
	}
	return module, nil
}

// bailout unwinds the parser after the first error
type bailout struct{}

type parseAST struct {
	input  string
	file   *util.ParseSourceFile
	tokens []*Token
	index  int
	errors util.ParseErrors
	// noIn disables `in` as a binary operator, for `for (init; ...)` heads
	noIn bool
}

func newParseAST(input, url string, tokens []*Token) *parseAST {
	return &parseAST{
		input:  input,
		file:   util.NewParseSourceFile(input, url),
		tokens: tokens,
	}
}

func (p *parseAST) run(parse func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()
	if n := len(p.tokens); n > 0 && p.tokens[n-1].IsError() {
		last := p.tokens[n-1]
		p.index = n - 1
		p.errorAt(last.StrValue, last.Index)
	}
	parse()
}

func (p *parseAST) peek(offset int) *Token {
	i := p.index + offset
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return EOF
}

func (p *parseAST) next() *Token {
	return p.peek(0)
}

func (p *parseAST) atEOF() bool {
	return p.index >= len(p.tokens)
}

// inputIndex is the start of the next token
func (p *parseAST) inputIndex() int {
	if p.atEOF() {
		return len(p.input)
	}
	return p.next().Index
}

// currentEndIndex is the end of the last consumed token
func (p *parseAST) currentEndIndex() int {
	if p.index > 0 {
		return p.peek(-1).End
	}
	return 0
}

func (p *parseAST) advance() {
	p.index++
}

func (p *parseAST) span(start int) output.Span {
	return output.Span{Start: start, End: p.currentEndIndex()}
}

type spanSetter interface {
	SetSpan(output.Span)
}

// finish stamps the source span of a node that started at start
func (p *parseAST) finish(expr output.OutputExpression, start int) output.OutputExpression {
	if s, ok := expr.(spanSetter); ok {
		s.SetSpan(p.span(start))
	}
	return expr
}

func (p *parseAST) finishStmt(stmt output.OutputStatement, start int) output.OutputStatement {
	if s, ok := stmt.(spanSetter); ok {
		s.SetSpan(p.span(start))
	}
	return stmt
}

func (p *parseAST) consumeOptionalCharacter(code int) bool {
	if p.next().IsCharacter(code) {
		p.advance()
		return true
	}
	return false
}

func (p *parseAST) expectCharacter(code int) {
	if p.consumeOptionalCharacter(code) {
		return
	}
	p.error(fmt.Sprintf("Missing expected %s", string(rune(code))))
}

func (p *parseAST) consumeOptionalOperator(op string) bool {
	if p.next().IsOperator(op) {
		p.advance()
		return true
	}
	return false
}

func (p *parseAST) expectOperator(operator string) {
	if p.consumeOptionalOperator(operator) {
		return
	}
	p.error(fmt.Sprintf("Missing expected operator %s", operator))
}

func (p *parseAST) consumeOptionalKeyword(keyword string) bool {
	if p.next().IsKeyword(keyword) {
		p.advance()
		return true
	}
	return false
}

func (p *parseAST) expectKeyword(keyword string) {
	if p.consumeOptionalKeyword(keyword) {
		return
	}
	p.error(fmt.Sprintf("Missing expected keyword %s", keyword))
}

func (p *parseAST) consumeOptionalContextual(word string) bool {
	if p.next().IsContextual(word) {
		p.advance()
		return true
	}
	return false
}

func (p *parseAST) prettyPrintToken(tok *Token) string {
	if tok == EOF {
		return "end of input"
	}
	return p.input[tok.Index:tok.End]
}

func (p *parseAST) expectIdentifier() string {
	n := p.next()
	if !n.IsIdentifier() {
		p.error(fmt.Sprintf("Unexpected token '%s', expected identifier", p.prettyPrintToken(n)))
	}
	p.advance()
	return n.StrValue
}

// property names may be reserved words
func (p *parseAST) expectIdentifierOrKeyword() string {
	n := p.next()
	if !n.IsIdentifier() && !n.IsAnyKeyword() {
		p.error(fmt.Sprintf("Unexpected token '%s', expected identifier or keyword", p.prettyPrintToken(n)))
	}
	p.advance()
	return n.StrValue
}

func (p *parseAST) expectString() string {
	n := p.next()
	if !n.IsString() || n.StringKind != StringTokenKindPlain {
		p.error(fmt.Sprintf("Unexpected token '%s', expected string", p.prettyPrintToken(n)))
	}
	p.advance()
	return n.StrValue
}

func (p *parseAST) consumeStatementTerminator() {
	if p.consumeOptionalCharacter(core.CharSEMICOLON) {
		return
	}
	n := p.next()
	if n == EOF || n.IsCharacter(core.CharRBRACE) || n.NewlineBefore {
		return
	}
	p.error(fmt.Sprintf("Unexpected token '%s', expected ;", p.prettyPrintToken(n)))
}

// withIn parses with the `in` operator allowed, as inside any delimiters
func (p *parseAST) withIn(allowIn bool, cb func()) {
	saved := p.noIn
	p.noIn = !allowIn
	defer func() { p.noIn = saved }()
	cb()
}

func (p *parseAST) error(message string) {
	p.errorAt(message, p.inputIndex())
}

func (p *parseAST) errorAt(message string, index int) {
	end := index
	if !p.atEOF() && p.next().End > index {
		end = p.next().End
	}
	p.errors = append(p.errors, util.NewParseError(p.file.Span(index, end), "Parser Error: "+message))
	panic(bailout{})
}

// ---------------------------------------------------------------------------
// Expressions

func (p *parseAST) parseExpression() output.OutputExpression {
	start := p.inputIndex()
	expr := p.parseAssignment()
	if !p.next().IsCharacter(core.CharCOMMA) {
		return expr
	}
	parts := []output.OutputExpression{expr}
	for p.consumeOptionalCharacter(core.CharCOMMA) {
		parts = append(parts, p.parseAssignment())
	}
	return p.finish(output.NewCommaExpr(parts), start)
}

var assignmentOperators = map[string]output.BinaryOperator{
	"=":   output.BinaryOperatorAssign,
	"+=":  output.BinaryOperatorAdditionAssignment,
	"-=":  output.BinaryOperatorSubtractionAssignment,
	"*=":  output.BinaryOperatorMultiplicationAssignment,
	"/=":  output.BinaryOperatorDivisionAssignment,
	"%=":  output.BinaryOperatorRemainderAssignment,
	"**=": output.BinaryOperatorExponentiationAssignment,
	"&&=": output.BinaryOperatorAndAssignment,
	"||=": output.BinaryOperatorOrAssignment,
	"??=": output.BinaryOperatorNullishCoalesceAssignment,
}

func (p *parseAST) parseAssignment() output.OutputExpression {
	if p.isArrowAhead() {
		return p.parseArrowFunction()
	}
	start := p.inputIndex()
	lhs := p.parseConditional()
	n := p.next()
	if n.Type != TokenTypeOperator {
		return lhs
	}
	op, ok := assignmentOperators[n.StrValue]
	if !ok {
		return lhs
	}
	if !isAssignable(lhs, op == output.BinaryOperatorAssign) {
		p.errorAt("Invalid assignment target", start)
	}
	p.advance()
	rhs := p.parseAssignment()
	return p.finish(output.NewBinaryOperatorExpr(op, lhs, rhs), start)
}

func isAssignable(expr output.OutputExpression, allowPattern bool) bool {
	switch e := expr.(type) {
	case *output.ReadVarExpr:
		return e.Name != "this" && e.Name != "super"
	case *output.ReadPropExpr, *output.ReadKeyExpr:
		return true
	case *output.LiteralArrayExpr, *output.LiteralMapExpr:
		return allowPattern
	case *output.ParenthesizedExpr:
		return isAssignable(e.Expr, false)
	}
	return false
}

func (p *parseAST) parseConditional() output.OutputExpression {
	start := p.inputIndex()
	test := p.parseBinary(output.LNullishCoalescing)
	if !p.consumeOptionalOperator("?") {
		return test
	}
	var yes, no output.OutputExpression
	p.withIn(true, func() { yes = p.parseAssignment() })
	p.expectCharacter(core.CharCOLON)
	no = p.parseAssignment()
	return p.finish(output.NewConditionalExpr(test, yes, no), start)
}

var binaryOperators = map[string]output.BinaryOperator{
	"+":   output.BinaryOperatorPlus,
	"-":   output.BinaryOperatorMinus,
	"*":   output.BinaryOperatorMultiply,
	"/":   output.BinaryOperatorDivide,
	"%":   output.BinaryOperatorModulo,
	"**":  output.BinaryOperatorExponentiation,
	"==":  output.BinaryOperatorEquals,
	"!=":  output.BinaryOperatorNotEquals,
	"===": output.BinaryOperatorIdentical,
	"!==": output.BinaryOperatorNotIdentical,
	"<":   output.BinaryOperatorLower,
	"<=":  output.BinaryOperatorLowerEquals,
	">":   output.BinaryOperatorBigger,
	">=":  output.BinaryOperatorBiggerEquals,
	"&&":  output.BinaryOperatorAnd,
	"||":  output.BinaryOperatorOr,
	"??":  output.BinaryOperatorNullishCoalesce,
	"&":   output.BinaryOperatorBitwiseAnd,
	"|":   output.BinaryOperatorBitwiseOr,
	"^":   output.BinaryOperatorBitwiseXor,
	"<<":  output.BinaryOperatorLeftShift,
	">>":  output.BinaryOperatorRightShift,
	">>>": output.BinaryOperatorUnsignedRightShift,
}

func (p *parseAST) peekBinaryOperator() (output.BinaryOperator, bool) {
	n := p.next()
	switch {
	case n.Type == TokenTypeOperator:
		op, ok := binaryOperators[n.StrValue]
		return op, ok
	case n.IsKeyword("instanceof"):
		return output.BinaryOperatorInstanceof, true
	case n.IsKeyword("in") && !p.noIn:
		return output.BinaryOperatorIn, true
	}
	return 0, false
}

// parseBinary parses binary operators binding at least as tight as minLevel
func (p *parseAST) parseBinary(minLevel output.L) output.OutputExpression {
	start := p.inputIndex()
	left := p.parsePrefix()
	for {
		op, ok := p.peekBinaryOperator()
		if !ok {
			return left
		}
		level := output.BinaryOperatorPrecedence(op)
		if level < minLevel {
			return left
		}
		p.advance()
		var right output.OutputExpression
		if op == output.BinaryOperatorExponentiation {
			right = p.parseBinary(level)
		} else {
			right = p.parseBinary(level + 1)
		}
		left = p.finish(output.NewBinaryOperatorExpr(op, left, right), start)
	}
}

func (p *parseAST) parsePrefix() output.OutputExpression {
	start := p.inputIndex()
	n := p.next()
	if n.Type == TokenTypeOperator {
		switch n.StrValue {
		case "!":
			p.advance()
			return p.finish(output.NewNotExpr(p.parsePrefix()), start)
		case "-":
			p.advance()
			return p.finish(output.NewUnaryOperatorExpr(output.UnaryOperatorMinus, p.parsePrefix()), start)
		case "+":
			p.advance()
			return p.finish(output.NewUnaryOperatorExpr(output.UnaryOperatorPlus, p.parsePrefix()), start)
		case "~":
			p.advance()
			return p.finish(output.NewUnaryOperatorExpr(output.UnaryOperatorBitwiseNot, p.parsePrefix()), start)
		case "++", "--":
			p.advance()
			target := p.parsePrefix()
			if !isAssignable(target, false) {
				p.errorAt("Invalid update target", start)
			}
			return p.finish(output.NewUpdateExpr(updateOperator(n.StrValue), true, target), start)
		}
	}
	if n.Type == TokenTypeKeyword {
		switch n.StrValue {
		case "typeof":
			p.advance()
			return p.finish(output.NewTypeofExpr(p.parsePrefix()), start)
		case "void":
			p.advance()
			return p.finish(output.NewVoidExpr(p.parsePrefix()), start)
		case "delete":
			p.advance()
			return p.finish(output.NewUnaryOperatorExpr(output.UnaryOperatorDelete, p.parsePrefix()), start)
		case "await":
			p.advance()
			return p.finish(output.NewAwaitExpr(p.parsePrefix()), start)
		}
	}
	return p.parsePostfix()
}

func updateOperator(op string) output.UpdateOperator {
	if op == "--" {
		return output.UpdateOperatorDecrement
	}
	return output.UpdateOperatorIncrement
}

func (p *parseAST) parsePostfix() output.OutputExpression {
	start := p.inputIndex()
	expr := p.parseCallChain()
	n := p.next()
	if (n.IsOperator("++") || n.IsOperator("--")) && !n.NewlineBefore {
		if !isAssignable(expr, false) {
			p.errorAt("Invalid update target", start)
		}
		p.advance()
		return p.finish(output.NewUpdateExpr(updateOperator(n.StrValue), false, expr), start)
	}
	return expr
}

func (p *parseAST) parseCallChain() output.OutputExpression {
	start := p.inputIndex()
	var result output.OutputExpression
	if p.next().IsKeyword("new") {
		result = p.parseNew()
	} else {
		result = p.parsePrimary()
	}
	for {
		n := p.next()
		switch {
		case n.IsCharacter(core.CharPERIOD):
			p.advance()
			result = p.finish(output.NewReadPropExpr(result, p.expectIdentifierOrKeyword()), start)
		case n.IsOperator("?."):
			p.advance()
			switch {
			case p.next().IsCharacter(core.CharLPAREN):
				call := output.NewInvokeFunctionExpr(result, p.parseCallArguments())
				call.Optional = true
				result = p.finish(call, start)
			case p.next().IsCharacter(core.CharLBRACKET):
				key := p.parseKeyedRead(result)
				key.Optional = true
				result = p.finish(key, start)
			default:
				prop := output.NewReadPropExpr(result, p.expectIdentifierOrKeyword())
				prop.Optional = true
				result = p.finish(prop, start)
			}
		case n.IsCharacter(core.CharLBRACKET):
			result = p.finish(p.parseKeyedRead(result), start)
		case n.IsCharacter(core.CharLPAREN):
			result = p.finish(output.NewInvokeFunctionExpr(result, p.parseCallArguments()), start)
		case n.IsTemplateLiteralPart() || n.IsTemplateLiteralEnd():
			result = p.finish(output.NewTaggedTemplateLiteralExpr(result, p.parseTemplateLiteral()), start)
		default:
			return result
		}
	}
}

func (p *parseAST) parseKeyedRead(receiver output.OutputExpression) *output.ReadKeyExpr {
	p.expectCharacter(core.CharLBRACKET)
	var key output.OutputExpression
	p.withIn(true, func() { key = p.parseExpression() })
	p.expectCharacter(core.CharRBRACKET)
	return output.NewReadKeyExpr(receiver, key)
}

// `new Callee(args)`; the callee is a member expression without calls
func (p *parseAST) parseNew() output.OutputExpression {
	start := p.inputIndex()
	p.expectKeyword("new")
	var callee output.OutputExpression
	if p.next().IsKeyword("new") {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}
	for {
		if p.consumeOptionalCharacter(core.CharPERIOD) {
			callee = p.finish(output.NewReadPropExpr(callee, p.expectIdentifierOrKeyword()), start)
		} else if p.next().IsCharacter(core.CharLBRACKET) {
			callee = p.finish(p.parseKeyedRead(callee), start)
		} else {
			break
		}
	}
	var args []output.OutputExpression
	if p.next().IsCharacter(core.CharLPAREN) {
		args = p.parseCallArguments()
	}
	return p.finish(output.NewInstantiateExpr(callee, args), start)
}

func (p *parseAST) parseCallArguments() []output.OutputExpression {
	p.expectCharacter(core.CharLPAREN)
	args := []output.OutputExpression{}
	p.withIn(true, func() {
		for !p.consumeOptionalCharacter(core.CharRPAREN) {
			args = append(args, p.parseSpreadOrAssignment())
			if !p.consumeOptionalCharacter(core.CharCOMMA) {
				p.expectCharacter(core.CharRPAREN)
				break
			}
		}
	})
	return args
}

func (p *parseAST) parseSpreadOrAssignment() output.OutputExpression {
	start := p.inputIndex()
	if p.consumeOptionalOperator("...") {
		return p.finish(output.NewSpreadElementExpr(p.parseAssignment()), start)
	}
	return p.parseAssignment()
}

func (p *parseAST) parsePrimary() output.OutputExpression {
	start := p.inputIndex()
	n := p.next()

	switch {
	case n.IsCharacter(core.CharLPAREN):
		p.advance()
		var inner output.OutputExpression
		p.withIn(true, func() { inner = p.parseExpression() })
		p.expectCharacter(core.CharRPAREN)
		return p.finish(output.NewParenthesizedExpr(inner), start)

	case n.IsKeyword("null"):
		p.advance()
		return p.finish(output.NewLiteralExpr(nil), start)

	case n.IsKeyword("true"), n.IsKeyword("false"):
		p.advance()
		return p.finish(output.NewLiteralExpr(n.StrValue == "true"), start)

	case n.IsKeyword("this"), n.IsKeyword("super"), n.IsKeyword("import"):
		p.advance()
		return p.finish(output.NewReadVarExpr(n.StrValue), start)

	case n.IsKeyword("function"):
		return p.parseFunctionExpression(false)

	case n.IsContextual("async") && p.peek(1).IsKeyword("function") && !p.peek(1).NewlineBefore:
		p.advance()
		return p.parseFunctionExpression(true)

	case n.IsIdentifier():
		p.advance()
		return p.finish(output.NewReadVarExpr(n.StrValue), start)

	case n.IsNumber():
		p.advance()
		lit := output.NewLiteralExpr(n.NumValue)
		lit.Raw = p.input[n.Index:n.End]
		return p.finish(lit, start)

	case n.IsString() && n.StringKind == StringTokenKindPlain:
		p.advance()
		return p.finish(output.NewLiteralExpr(n.StrValue), start)

	case n.IsTemplateLiteralPart() || n.IsTemplateLiteralEnd():
		return p.finish(p.parseTemplateLiteral(), start)

	case n.IsCharacter(core.CharLBRACKET):
		return p.parseArrayLiteral()

	case n.IsCharacter(core.CharLBRACE):
		return p.parseObjectLiteral()

	case n.IsRegExpBody():
		p.advance()
		var flags *string
		if p.next().IsRegExpFlags() {
			f := p.next().StrValue
			flags = &f
			p.advance()
		}
		return p.finish(output.NewRegularExpressionLiteralExpr(n.StrValue, flags), start)

	case n.IsKeyword("class"):
		p.error("Class expressions are not supported")
	}

	if p.atEOF() {
		p.error("Unexpected end of input")
	}
	p.error(fmt.Sprintf("Unexpected token '%s'", p.prettyPrintToken(n)))
	return nil
}

func (p *parseAST) parseTemplateLiteral() *output.TemplateLiteralExpr {
	start := p.inputIndex()
	tok := p.next()
	p.advance()
	elements := []*output.TemplateLiteralElementExpr{output.NewTemplateLiteralElementExpr(tok.StrValue, tok.Raw)}
	expressions := []output.OutputExpression{}
	for tok.IsTemplateLiteralPart() {
		p.expectOperator("${")
		p.withIn(true, func() { expressions = append(expressions, p.parseExpression()) })
		p.expectCharacter(core.CharRBRACE)
		tok = p.next()
		if !tok.IsTemplateLiteralPart() && !tok.IsTemplateLiteralEnd() {
			p.error("Unterminated template literal")
		}
		p.advance()
		elements = append(elements, output.NewTemplateLiteralElementExpr(tok.StrValue, tok.Raw))
	}
	lit := output.NewTemplateLiteralExpr(elements, expressions)
	lit.SetSpan(p.span(start))
	return lit
}

func (p *parseAST) parseArrayLiteral() output.OutputExpression {
	start := p.inputIndex()
	p.expectCharacter(core.CharLBRACKET)
	entries := []output.OutputExpression{}
	p.withIn(true, func() {
		for !p.consumeOptionalCharacter(core.CharRBRACKET) {
			if p.consumeOptionalCharacter(core.CharCOMMA) {
				entries = append(entries, nil)
				continue
			}
			entries = append(entries, p.parseSpreadOrAssignment())
			if !p.consumeOptionalCharacter(core.CharCOMMA) {
				p.expectCharacter(core.CharRBRACKET)
				break
			}
		}
	})
	return p.finish(output.NewLiteralArrayExpr(entries), start)
}

// propertyKey is a parsed object literal or pattern key
type propertyKey struct {
	name     string
	quoted   bool
	computed output.OutputExpression
	// ident is set when the key could also be a shorthand reference
	ident bool
}

func (p *parseAST) parsePropertyKey() propertyKey {
	n := p.next()
	switch {
	case n.IsIdentifier():
		p.advance()
		return propertyKey{name: n.StrValue, ident: true}
	case n.IsAnyKeyword():
		p.advance()
		return propertyKey{name: n.StrValue}
	case n.IsString() && n.StringKind == StringTokenKindPlain:
		p.advance()
		return propertyKey{name: n.StrValue, quoted: true}
	case n.IsNumber():
		p.advance()
		return propertyKey{name: p.input[n.Index:n.End]}
	case n.IsCharacter(core.CharLBRACKET):
		p.advance()
		var key output.OutputExpression
		p.withIn(true, func() { key = p.parseAssignment() })
		p.expectCharacter(core.CharRBRACKET)
		return propertyKey{computed: key}
	}
	p.error(fmt.Sprintf("Unexpected token '%s', expected property name", p.prettyPrintToken(n)))
	return propertyKey{}
}

// an identifier starts a key unless it is immediately followed by the
// punctuation that ends a plain key
func (p *parseAST) isModifierBeforeKey() bool {
	after := p.peek(1)
	return after != EOF &&
		!after.IsCharacter(core.CharLPAREN) &&
		!after.IsCharacter(core.CharCOMMA) &&
		!after.IsCharacter(core.CharCOLON) &&
		!after.IsCharacter(core.CharRBRACE) &&
		!after.IsOperator("=")
}

func (p *parseAST) parseObjectLiteral() output.OutputExpression {
	start := p.inputIndex()
	p.expectCharacter(core.CharLBRACE)
	entries := []*output.LiteralMapEntry{}
	p.withIn(true, func() {
		for !p.consumeOptionalCharacter(core.CharRBRACE) {
			entries = append(entries, p.parseObjectMember())
			if !p.consumeOptionalCharacter(core.CharCOMMA) {
				p.expectCharacter(core.CharRBRACE)
				break
			}
		}
	})
	return p.finish(output.NewLiteralMapExpr(entries), start)
}

func (p *parseAST) parseObjectMember() *output.LiteralMapEntry {
	if p.consumeOptionalOperator("...") {
		return output.NewSpreadEntry(p.parseAssignment())
	}

	kind := output.LiteralMapEntryMethod
	async, generator := false, false
	n := p.next()
	switch {
	case (n.IsContextual("get") || n.IsContextual("set")) && p.isModifierBeforeKey():
		p.advance()
		kind = output.LiteralMapEntryGetter
		if n.StrValue == "set" {
			kind = output.LiteralMapEntrySetter
		}
	case n.IsContextual("async") && p.isModifierBeforeKey() && !p.peek(1).NewlineBefore:
		p.advance()
		async = true
		generator = p.consumeOptionalOperator("*")
	case n.IsOperator("*"):
		p.advance()
		generator = true
	}

	keyStart := p.inputIndex()
	key := p.parsePropertyKey()

	if p.next().IsCharacter(core.CharLPAREN) {
		fn := p.parseFunctionRest(keyStart, nil, async, generator)
		return &output.LiteralMapEntry{Kind: kind, Key: key.name, Quoted: key.quoted, KeyExpr: key.computed, Value: fn}
	}
	if async || generator || kind != output.LiteralMapEntryMethod {
		p.error("Missing expected (")
	}
	if p.consumeOptionalCharacter(core.CharCOLON) {
		return &output.LiteralMapEntry{
			Kind:    output.LiteralMapEntryKeyValue,
			Key:     key.name,
			Quoted:  key.quoted,
			KeyExpr: key.computed,
			Value:   p.parseAssignment(),
		}
	}
	if !key.ident {
		p.error("Missing expected :")
	}
	entry := output.NewShorthandEntry(key.name)
	entry.Value = p.finish(entry.Value, keyStart)
	return entry
}

func (p *parseAST) parseFunctionExpression(async bool) output.OutputExpression {
	start := p.inputIndex()
	if async {
		start = p.peek(-1).Index
	}
	p.expectKeyword("function")
	generator := p.consumeOptionalOperator("*")
	var name *string
	if p.next().IsIdentifier() {
		n := p.expectIdentifier()
		name = &n
	}
	return p.parseFunctionRest(start, name, async, generator)
}

// parseFunctionRest parses `(params) { body }`
func (p *parseAST) parseFunctionRest(start int, name *string, async, generator bool) *output.FunctionExpr {
	params := p.parseParams()
	body := p.parseFunctionBody()
	fn := output.NewFunctionExpr(params, body, name)
	fn.Async = async
	fn.Generator = generator
	fn.SetSpan(p.span(start))
	return fn
}

func (p *parseAST) parseParams() []*output.FnParam {
	p.expectCharacter(core.CharLPAREN)
	params := []*output.FnParam{}
	p.withIn(true, func() {
		for !p.consumeOptionalCharacter(core.CharRPAREN) {
			if p.consumeOptionalOperator("...") {
				params = append(params, &output.FnParam{Pattern: p.parseBindingPattern(), Rest: true})
				p.expectCharacter(core.CharRPAREN)
				break
			}
			params = append(params, &output.FnParam{Pattern: p.parseBindingElement()})
			if !p.consumeOptionalCharacter(core.CharCOMMA) {
				p.expectCharacter(core.CharRPAREN)
				break
			}
		}
	})
	return params
}

func (p *parseAST) parseFunctionBody() []output.OutputStatement {
	p.expectCharacter(core.CharLBRACE)
	body := []output.OutputStatement{}
	p.withIn(true, func() {
		for !p.consumeOptionalCharacter(core.CharRBRACE) {
			if p.atEOF() {
				p.error("Missing expected }")
			}
			if stmt := p.parseStatement(); stmt != nil {
				body = append(body, stmt)
			}
		}
	})
	return body
}

// isArrowAhead looks past a parameter list for `=>`
func (p *parseAST) isArrowAhead() bool {
	offset := 0
	if p.next().IsContextual("async") && !p.peek(1).NewlineBefore &&
		(p.peek(1).IsIdentifier() || p.peek(1).IsCharacter(core.CharLPAREN)) {
		offset = 1
	}
	n := p.peek(offset)
	if n.IsIdentifier() {
		arrow := p.peek(offset + 1)
		return arrow.IsOperator("=>") && !arrow.NewlineBefore
	}
	if !n.IsCharacter(core.CharLPAREN) {
		return false
	}
	depth := 0
	for i := offset; ; i++ {
		t := p.peek(i)
		switch {
		case t == EOF:
			return false
		case t.IsCharacter(core.CharLPAREN), t.IsCharacter(core.CharLBRACKET), t.IsCharacter(core.CharLBRACE), t.IsOperator("${"):
			depth++
		case t.IsCharacter(core.CharRPAREN), t.IsCharacter(core.CharRBRACKET), t.IsCharacter(core.CharRBRACE):
			depth--
			if depth == 0 {
				arrow := p.peek(i + 1)
				return arrow.IsOperator("=>") && !arrow.NewlineBefore
			}
		}
	}
}

func (p *parseAST) parseArrowFunction() output.OutputExpression {
	start := p.inputIndex()
	async := false
	if p.next().IsContextual("async") && !p.peek(1).IsOperator("=>") {
		p.advance()
		async = true
	}
	var params []*output.FnParam
	if p.next().IsIdentifier() {
		params = []*output.FnParam{output.NewFnParam(p.expectIdentifier())}
	} else {
		params = p.parseParams()
	}
	p.expectOperator("=>")
	var arrow *output.ArrowFunctionExpr
	if p.next().IsCharacter(core.CharLBRACE) {
		arrow = output.NewArrowFunctionExpr(params, p.parseFunctionBody())
	} else {
		arrow = output.NewArrowFunctionExpr(params, p.parseAssignment())
	}
	arrow.Async = async
	return p.finish(arrow, start)
}

// ---------------------------------------------------------------------------
// Binding patterns

func (p *parseAST) parseBindingPattern() output.BindingPattern {
	n := p.next()
	switch {
	case n.IsIdentifier():
		p.advance()
		return output.NewIdentifierPattern(n.StrValue)
	case n.IsCharacter(core.CharLBRACKET):
		return p.parseArrayPattern()
	case n.IsCharacter(core.CharLBRACE):
		return p.parseObjectPattern()
	}
	p.error(fmt.Sprintf("Unexpected token '%s', expected binding pattern", p.prettyPrintToken(n)))
	return nil
}

// parseBindingElement parses a pattern with an optional default
func (p *parseAST) parseBindingElement() output.BindingPattern {
	target := p.parseBindingPattern()
	if p.consumeOptionalOperator("=") {
		return &output.AssignmentPattern{Target: target, Default: p.parseAssignment()}
	}
	return target
}

func (p *parseAST) parseArrayPattern() output.BindingPattern {
	p.expectCharacter(core.CharLBRACKET)
	pattern := &output.ArrayPattern{}
	for !p.consumeOptionalCharacter(core.CharRBRACKET) {
		if p.consumeOptionalCharacter(core.CharCOMMA) {
			pattern.Elements = append(pattern.Elements, nil)
			continue
		}
		if p.consumeOptionalOperator("...") {
			pattern.Rest = p.parseBindingPattern()
			p.expectCharacter(core.CharRBRACKET)
			break
		}
		pattern.Elements = append(pattern.Elements, p.parseBindingElement())
		if !p.consumeOptionalCharacter(core.CharCOMMA) {
			p.expectCharacter(core.CharRBRACKET)
			break
		}
	}
	return pattern
}

func (p *parseAST) parseObjectPattern() output.BindingPattern {
	p.expectCharacter(core.CharLBRACE)
	pattern := &output.ObjectPattern{}
	for !p.consumeOptionalCharacter(core.CharRBRACE) {
		if p.consumeOptionalOperator("...") {
			pattern.Rest = p.parseBindingPattern()
			p.expectCharacter(core.CharRBRACE)
			break
		}
		key := p.parsePropertyKey()
		prop := &output.ObjectPatternProperty{Key: key.name, KeyExpr: key.computed}
		if p.consumeOptionalCharacter(core.CharCOLON) {
			prop.Value = p.parseBindingElement()
		} else {
			if !key.ident {
				p.error("Missing expected :")
			}
			prop.Shorthand = true
			prop.Value = output.NewIdentifierPattern(key.name)
			if p.consumeOptionalOperator("=") {
				prop.Value = &output.AssignmentPattern{Target: prop.Value, Default: p.parseAssignment()}
			}
		}
		pattern.Properties = append(pattern.Properties, prop)
		if !p.consumeOptionalCharacter(core.CharCOMMA) {
			p.expectCharacter(core.CharRBRACE)
			break
		}
	}
	return pattern
}

// ---------------------------------------------------------------------------
// Statements

// parseStatement returns nil for empty statements
func (p *parseAST) parseStatement() output.OutputStatement {
	start := p.inputIndex()
	n := p.next()

	switch {
	case n.IsCharacter(core.CharSEMICOLON):
		p.advance()
		return nil
	case n.IsCharacter(core.CharLBRACE):
		return p.finishStmt(output.NewBlockStmt(p.parseFunctionBody()), start)
	case n.IsContextual("async") && p.peek(1).IsKeyword("function") && !p.peek(1).NewlineBefore:
		p.advance()
		return p.parseFunctionDeclaration(start, true)
	}

	if n.Type == TokenTypeKeyword {
		switch n.StrValue {
		case "var", "let", "const":
			stmt := p.parseVariableDeclaration()
			p.consumeStatementTerminator()
			return p.finishStmt(stmt, start)
		case "function":
			return p.parseFunctionDeclaration(start, false)
		case "if":
			return p.parseIf()
		case "for":
			return p.parseFor()
		case "while":
			p.advance()
			cond := p.parseParenthesizedCondition()
			return p.finishStmt(&output.WhileStmt{Condition: cond, Body: p.parseBody()}, start)
		case "return":
			p.advance()
			var value output.OutputExpression
			if next := p.next(); next != EOF && !next.IsCharacter(core.CharSEMICOLON) && !next.IsCharacter(core.CharRBRACE) && !next.NewlineBefore {
				value = p.parseExpression()
			}
			p.consumeStatementTerminator()
			return p.finishStmt(output.NewReturnStatement(value), start)
		case "throw":
			p.advance()
			if p.next().NewlineBefore {
				p.error("Illegal newline after throw")
			}
			expr := p.parseExpression()
			p.consumeStatementTerminator()
			return p.finishStmt(output.NewThrowStmt(expr), start)
		case "try":
			return p.parseTry()
		case "break", "continue":
			p.advance()
			label := ""
			if p.next().IsIdentifier() && !p.next().NewlineBefore {
				label = p.expectIdentifier()
			}
			p.consumeStatementTerminator()
			if n.StrValue == "break" {
				return p.finishStmt(&output.BreakStmt{Label: label}, start)
			}
			return p.finishStmt(&output.ContinueStmt{Label: label}, start)
		case "import":
			if !p.peek(1).IsCharacter(core.CharLPAREN) && !p.peek(1).IsCharacter(core.CharPERIOD) {
				return p.parseImport()
			}
		case "export":
			return p.parseExport()
		case "class", "switch", "do":
			p.error(fmt.Sprintf("'%s' statements are not supported", n.StrValue))
		}
	}

	expr := p.parseExpression()
	p.consumeStatementTerminator()
	return p.finishStmt(output.NewExpressionStatement(expr), start)
}

func (p *parseAST) parseVariableDeclaration() *output.DeclareVarStmt {
	kind := output.VarKindConst
	switch p.next().StrValue {
	case "let":
		kind = output.VarKindLet
	case "var":
		kind = output.VarKindVar
	}
	p.advance()
	stmt := &output.DeclareVarStmt{Kind: kind}
	for {
		decl := &output.VarDeclarator{Target: p.parseBindingPattern()}
		if p.consumeOptionalOperator("=") {
			decl.Value = p.parseAssignment()
		}
		stmt.Declarations = append(stmt.Declarations, decl)
		if !p.consumeOptionalCharacter(core.CharCOMMA) {
			return stmt
		}
	}
}

func (p *parseAST) parseFunctionDeclaration(start int, async bool) output.OutputStatement {
	p.expectKeyword("function")
	generator := p.consumeOptionalOperator("*")
	name := p.expectIdentifier()
	fn := p.parseFunctionRest(start, nil, async, generator)
	return p.finishStmt(fn.ToDeclStmt(name), start)
}

func (p *parseAST) parseParenthesizedCondition() output.OutputExpression {
	p.expectCharacter(core.CharLPAREN)
	var cond output.OutputExpression
	p.withIn(true, func() { cond = p.parseExpression() })
	p.expectCharacter(core.CharRPAREN)
	return cond
}

// parseBody parses the body of a compound statement, flattening a block
func (p *parseAST) parseBody() []output.OutputStatement {
	stmt := p.parseStatement()
	switch s := stmt.(type) {
	case nil:
		return []output.OutputStatement{}
	case *output.BlockStmt:
		return s.Statements
	}
	return []output.OutputStatement{stmt}
}

func (p *parseAST) parseIf() output.OutputStatement {
	start := p.inputIndex()
	p.expectKeyword("if")
	cond := p.parseParenthesizedCondition()
	trueCase := p.parseBody()
	var falseCase []output.OutputStatement
	if p.consumeOptionalKeyword("else") {
		falseCase = p.parseBody()
	}
	return p.finishStmt(output.NewIfStmt(cond, trueCase, falseCase), start)
}

func (p *parseAST) parseFor() output.OutputStatement {
	start := p.inputIndex()
	p.expectKeyword("for")
	p.expectCharacter(core.CharLPAREN)

	loop := &output.ForStmt{}
	n := p.next()
	switch {
	case n.IsKeyword("var") || n.IsKeyword("let") || n.IsKeyword("const"):
		var decl *output.DeclareVarStmt
		p.withIn(false, func() { decl = p.parseVariableDeclaration() })
		if len(decl.Declarations) == 1 && decl.Declarations[0].Value == nil && (p.next().IsContextual("of") || p.next().IsKeyword("in")) {
			return p.parseForOfRest(start, true, decl.Kind, decl.Declarations[0].Target)
		}
		loop.Init = decl
	case n.IsCharacter(core.CharSEMICOLON):
	default:
		initStart := p.inputIndex()
		var init output.OutputExpression
		p.withIn(false, func() { init = p.parseExpression() })
		if p.next().IsContextual("of") || p.next().IsKeyword("in") {
			v, ok := init.(*output.ReadVarExpr)
			if !ok {
				p.errorAt("Invalid left-hand side in for loop", initStart)
			}
			return p.parseForOfRest(start, false, output.VarKindConst, output.NewIdentifierPattern(v.Name))
		}
		loop.Init = output.NewExpressionStatement(init)
	}
	p.expectCharacter(core.CharSEMICOLON)
	if !p.next().IsCharacter(core.CharSEMICOLON) {
		loop.Test = p.parseExpression()
	}
	p.expectCharacter(core.CharSEMICOLON)
	if !p.next().IsCharacter(core.CharRPAREN) {
		loop.Update = p.parseExpression()
	}
	p.expectCharacter(core.CharRPAREN)
	loop.Body = p.parseBody()
	return p.finishStmt(loop, start)
}

func (p *parseAST) parseForOfRest(start int, declared bool, kind output.VarKind, target output.BindingPattern) output.OutputStatement {
	loop := &output.ForOfStmt{Declared: declared, Kind: kind, Target: target}
	if p.consumeOptionalKeyword("in") {
		loop.In = true
		loop.Iterable = p.parseExpression()
	} else {
		p.consumeOptionalContextual("of")
		loop.Iterable = p.parseAssignment()
	}
	p.expectCharacter(core.CharRPAREN)
	loop.Body = p.parseBody()
	return p.finishStmt(loop, start)
}

func (p *parseAST) parseTry() output.OutputStatement {
	start := p.inputIndex()
	p.expectKeyword("try")
	stmt := &output.TryStmt{Block: p.parseFunctionBody()}
	if p.consumeOptionalKeyword("catch") {
		stmt.HasCatch = true
		if p.consumeOptionalCharacter(core.CharLPAREN) {
			stmt.CatchParam = p.parseBindingPattern()
			p.expectCharacter(core.CharRPAREN)
		}
		stmt.Handler = p.parseFunctionBody()
	}
	if p.consumeOptionalKeyword("finally") {
		stmt.Finalizer = p.parseFunctionBody()
	}
	if !stmt.HasCatch && stmt.Finalizer == nil {
		p.error("Missing catch or finally after try")
	}
	return p.finishStmt(stmt, start)
}

// module names in import and export lists may be keywords or strings
func (p *parseAST) expectModuleExportName() string {
	if n := p.next(); n.IsString() && n.StringKind == StringTokenKindPlain {
		p.advance()
		return n.StrValue
	}
	return p.expectIdentifierOrKeyword()
}

func (p *parseAST) parseImport() output.OutputStatement {
	start := p.inputIndex()
	p.expectKeyword("import")
	specifiers := []*output.ImportSpecifier{}

	if n := p.next(); n.IsString() {
		source := p.expectString()
		p.consumeStatementTerminator()
		return p.finishStmt(output.NewImportDecl(specifiers, source), start)
	}

	if p.next().IsIdentifier() {
		specifiers = append(specifiers, &output.ImportSpecifier{Kind: output.ImportSpecifierDefault, Local: p.expectIdentifier()})
		if !p.consumeOptionalCharacter(core.CharCOMMA) {
			return p.parseImportFrom(start, specifiers)
		}
	}

	switch {
	case p.consumeOptionalOperator("*"):
		if !p.consumeOptionalContextual("as") {
			p.error("Missing expected as")
		}
		specifiers = append(specifiers, &output.ImportSpecifier{Kind: output.ImportSpecifierNamespace, Local: p.expectIdentifier()})
	case p.consumeOptionalCharacter(core.CharLBRACE):
		for !p.consumeOptionalCharacter(core.CharRBRACE) {
			imported := p.expectModuleExportName()
			local := imported
			if p.consumeOptionalContextual("as") {
				local = p.expectIdentifier()
			}
			specifiers = append(specifiers, &output.ImportSpecifier{Kind: output.ImportSpecifierNamed, Imported: imported, Local: local})
			if !p.consumeOptionalCharacter(core.CharCOMMA) {
				p.expectCharacter(core.CharRBRACE)
				break
			}
		}
	default:
		p.error(fmt.Sprintf("Unexpected token '%s' in import", p.prettyPrintToken(p.next())))
	}
	return p.parseImportFrom(start, specifiers)
}

func (p *parseAST) parseImportFrom(start int, specifiers []*output.ImportSpecifier) output.OutputStatement {
	if !p.consumeOptionalContextual("from") {
		p.error("Missing expected from")
	}
	source := p.expectString()
	p.consumeStatementTerminator()
	return p.finishStmt(output.NewImportDecl(specifiers, source), start)
}

func (p *parseAST) parseExport() output.OutputStatement {
	start := p.inputIndex()
	p.expectKeyword("export")

	if p.consumeOptionalKeyword("default") {
		expr := p.parseAssignment()
		if _, isFn := expr.(*output.FunctionExpr); isFn {
			p.consumeOptionalCharacter(core.CharSEMICOLON)
		} else {
			p.consumeStatementTerminator()
		}
		return p.finishStmt(output.NewExportDefaultStmt(expr), start)
	}

	n := p.next()
	if n.IsCharacter(core.CharLBRACE) {
		p.advance()
		stmt := &output.ExportNamedStmt{Specifiers: []*output.ExportSpecifier{}}
		for !p.consumeOptionalCharacter(core.CharRBRACE) {
			local := p.expectModuleExportName()
			exported := local
			if p.consumeOptionalContextual("as") {
				exported = p.expectModuleExportName()
			}
			stmt.Specifiers = append(stmt.Specifiers, &output.ExportSpecifier{Local: local, Exported: exported})
			if !p.consumeOptionalCharacter(core.CharCOMMA) {
				p.expectCharacter(core.CharRBRACE)
				break
			}
		}
		if p.consumeOptionalContextual("from") {
			source := p.expectString()
			stmt.Source = &source
		}
		p.consumeStatementTerminator()
		return p.finishStmt(stmt, start)
	}

	if n.IsKeyword("var") || n.IsKeyword("let") || n.IsKeyword("const") || n.IsKeyword("function") ||
		(n.IsContextual("async") && p.peek(1).IsKeyword("function")) {
		decl := p.parseStatement()
		return p.finishStmt(&output.ExportNamedStmt{Decl: decl}, start)
	}

	p.error(fmt.Sprintf("Unexpected token '%s' after export", p.prettyPrintToken(n)))
	return nil
}

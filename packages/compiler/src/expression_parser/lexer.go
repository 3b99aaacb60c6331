package expression_parser

import (
	"strconv"
	"strings"

	"vuec-go/packages/compiler/src/core"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenTypeCharacter TokenType = iota
	TokenTypeIdentifier
	TokenTypeKeyword
	TokenTypeString
	TokenTypeOperator
	TokenTypeNumber
	TokenTypeRegExpBody
	TokenTypeRegExpFlags
	TokenTypeError
)

// StringTokenKind represents the kind of a string token
type StringTokenKind int

const (
	StringTokenKindPlain StringTokenKind = iota
	StringTokenKindTemplateLiteralPart
	StringTokenKindTemplateLiteralEnd
)

// Reserved words. Contextual words (async, of, from, get, set, as, yield)
// are lexed as identifiers and recognized by the parser.
var keywords = map[string]bool{
	"var":        true,
	"let":        true,
	"const":      true,
	"null":       true,
	"true":       true,
	"false":      true,
	"if":         true,
	"else":       true,
	"this":       true,
	"typeof":     true,
	"void":       true,
	"in":         true,
	"instanceof": true,
	"new":        true,
	"delete":     true,
	"return":     true,
	"function":   true,
	"for":        true,
	"while":      true,
	"do":         true,
	"break":      true,
	"continue":   true,
	"throw":      true,
	"try":        true,
	"catch":      true,
	"finally":    true,
	"import":     true,
	"export":     true,
	"default":    true,
	"class":      true,
	"extends":    true,
	"switch":     true,
	"case":       true,
	"await":      true,
	"super":      true,
}

// Token represents a token in the source
type Token struct {
	Index    int
	End      int
	Type     TokenType
	NumValue float64
	StrValue string
	// StringKind is only valid for String tokens
	StringKind StringTokenKind
	// Raw is the undecoded text of template literal parts
	Raw string
	// NewlineBefore records a line terminator between this token and the
	// previous one, for automatic semicolon insertion
	NewlineBefore bool
}

// NewToken creates a new Token
func NewToken(index, end int, typ TokenType, numValue float64, strValue string) *Token {
	return &Token{
		Index:    index,
		End:      end,
		Type:     typ,
		NumValue: numValue,
		StrValue: strValue,
	}
}

// IsCharacter checks if the token is a character with the given code
func (t *Token) IsCharacter(code int) bool {
	return t.Type == TokenTypeCharacter && int(t.NumValue) == code
}

// IsNumber checks if the token is a number
func (t *Token) IsNumber() bool {
	return t.Type == TokenTypeNumber
}

// IsString checks if the token is a string
func (t *Token) IsString() bool {
	return t.Type == TokenTypeString
}

// IsOperator checks if the token is an operator with the given value
func (t *Token) IsOperator(operator string) bool {
	return t.Type == TokenTypeOperator && t.StrValue == operator
}

// IsIdentifier checks if the token is an identifier
func (t *Token) IsIdentifier() bool {
	return t.Type == TokenTypeIdentifier
}

// IsContextual checks for an identifier with a contextual meaning, such as `of` or `async`
func (t *Token) IsContextual(word string) bool {
	return t.Type == TokenTypeIdentifier && t.StrValue == word
}

// IsKeyword checks if the token is the given keyword
func (t *Token) IsKeyword(keyword string) bool {
	return t.Type == TokenTypeKeyword && t.StrValue == keyword
}

// IsAnyKeyword checks if the token is a keyword
func (t *Token) IsAnyKeyword() bool {
	return t.Type == TokenTypeKeyword
}

// IsError checks if the token is an error
func (t *Token) IsError() bool {
	return t.Type == TokenTypeError
}

// IsRegExpBody checks if the token is a regexp body
func (t *Token) IsRegExpBody() bool {
	return t.Type == TokenTypeRegExpBody
}

// IsRegExpFlags checks if the token is a regexp flags
func (t *Token) IsRegExpFlags() bool {
	return t.Type == TokenTypeRegExpFlags
}

// IsTemplateLiteralPart checks if the token is a template literal part
func (t *Token) IsTemplateLiteralPart() bool {
	return t.IsString() && t.StringKind == StringTokenKindTemplateLiteralPart
}

// IsTemplateLiteralEnd checks if the token is a template literal end
func (t *Token) IsTemplateLiteralEnd() bool {
	return t.IsString() && t.StringKind == StringTokenKindTemplateLiteralEnd
}

// IsTemplateLiteralInterpolationStart checks if the token is a template literal interpolation start
func (t *Token) IsTemplateLiteralInterpolationStart() bool {
	return t.IsOperator("${")
}

// String returns the string representation of the token
func (t *Token) String() string {
	switch t.Type {
	case TokenTypeNumber:
		return strconv.FormatFloat(t.NumValue, 'f', -1, 64)
	default:
		return t.StrValue
	}
}

// Lexer tokenizes JavaScript source
type Lexer struct{}

// NewLexer creates a new Lexer
func NewLexer() *Lexer {
	return &Lexer{}
}

// Tokenize tokenizes the given text
func (l *Lexer) Tokenize(text string) []*Token {
	scanner := newScanner(text)
	return scanner.scan()
}

// EOF represents the end of file token
var EOF = NewToken(-1, -1, TokenTypeCharacter, 0, "")

type scanner struct {
	input      string
	length     int
	peek       rune
	index      int
	tokens     []*Token
	braceStack []string // 'interpolation' or 'expression'
	sawNewline bool
}

func newScanner(input string) *scanner {
	s := &scanner{
		input:      input,
		length:     len(input),
		index:      -1,
		tokens:     []*Token{},
		braceStack: []string{},
	}
	s.advance()
	return s
}

func (s *scanner) advance() {
	s.index++
	if s.index >= s.length {
		s.peek = core.CharEOF
	} else {
		s.peek = rune(s.input[s.index])
	}
}

func (s *scanner) peekAt(offset int) rune {
	if s.index+offset >= s.length {
		return core.CharEOF
	}
	return rune(s.input[s.index+offset])
}

func (s *scanner) scan() []*Token {
	token := s.scanToken()
	for token != nil {
		token.NewlineBefore = s.sawNewline
		s.sawNewline = false
		s.tokens = append(s.tokens, token)
		if token.IsError() {
			break
		}
		token = s.scanToken()
	}
	return s.tokens
}

// skipTrivia skips whitespace and comments, remembering line breaks
func (s *scanner) skipTrivia() *Token {
	for s.index < s.length {
		switch {
		case core.IsNewLine(s.peek):
			s.sawNewline = true
			s.advance()
		case int(s.peek) <= core.CharSPACE || s.peek == core.CharNBSP:
			s.advance()
		case s.peek == core.CharSLASH && s.peekAt(1) == core.CharSLASH:
			for s.index < s.length && !core.IsNewLine(s.peek) {
				s.advance()
			}
		case s.peek == core.CharSLASH && s.peekAt(1) == core.CharSTAR:
			end := strings.Index(s.input[s.index+2:], "*/")
			if end < 0 {
				s.index = s.length - 1
				s.advance()
				return s.error("Unterminated comment", 0)
			}
			if strings.ContainsAny(s.input[s.index:s.index+2+end], "\n\r") {
				s.sawNewline = true
			}
			s.index += 2 + end + 1
			s.advance()
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) scanToken() *Token {
	if errToken := s.skipTrivia(); errToken != nil {
		return errToken
	}
	if s.index >= s.length {
		return nil
	}

	peek := s.peek
	index := s.index

	if core.IsIdentifierStart(peek) {
		return s.scanIdentifier()
	}

	if core.IsDigit(peek) {
		return s.scanNumber(index)
	}

	start := index
	switch int(peek) {
	case core.CharPERIOD:
		s.advance()
		if core.IsDigit(s.peek) {
			return s.scanNumber(start)
		}
		if s.peek == core.CharPERIOD && s.peekAt(1) == core.CharPERIOD {
			s.advance()
			s.advance()
			return newOperatorToken(start, s.index, "...")
		}
		return newCharacterToken(start, s.index, core.CharPERIOD)
	case core.CharLPAREN, core.CharRPAREN, core.CharLBRACKET, core.CharRBRACKET, core.CharCOMMA, core.CharCOLON, core.CharSEMICOLON:
		return s.scanCharacter(start, peek)
	case core.CharLBRACE:
		return s.scanOpenBrace(start, peek)
	case core.CharRBRACE:
		return s.scanCloseBrace(start, peek)
	case core.CharSQ, core.CharDQ:
		return s.scanString()
	case core.CharBT:
		s.advance()
		return s.scanTemplateLiteralPart(start)
	case core.CharPLUS:
		return s.scanIncrement(start, "+")
	case core.CharMINUS:
		return s.scanIncrement(start, "-")
	case core.CharSLASH:
		if s.isStartOfRegex() {
			return s.scanRegex(index)
		}
		return s.scanComplexOperator(start, "/", core.CharEQ, "=")
	case core.CharPERCENT:
		return s.scanComplexOperator(start, "%", core.CharEQ, "=")
	case core.CharCARET:
		return s.scanComplexOperator(start, "^", core.CharEQ, "=")
	case core.CharTILDA:
		return s.scanOperator(start, "~")
	case core.CharSTAR:
		return s.scanStar(start)
	case core.CharQUESTION:
		return s.scanQuestion(start)
	case core.CharLT, core.CharGT:
		return s.scanAngle(start, peek)
	case core.CharEQ:
		if s.peekAt(1) == core.CharGT {
			s.advance()
			s.advance()
			return newOperatorToken(start, s.index, "=>")
		}
		return s.scanComplexOperator(start, "=", core.CharEQ, "=", core.CharEQ)
	case core.CharBANG:
		return s.scanComplexOperator(start, "!", core.CharEQ, "=", core.CharEQ)
	case core.CharAMPERSAND:
		return s.scanLogical(start, "&")
	case core.CharBAR:
		return s.scanLogical(start, "|")
	}

	s.advance()
	return s.error("Unexpected character ["+string(peek)+"]", 0)
}

func (s *scanner) scanCharacter(start int, code rune) *Token {
	s.advance()
	return newCharacterToken(start, s.index, code)
}

func (s *scanner) scanOperator(start int, str string) *Token {
	s.advance()
	return newOperatorToken(start, s.index, str)
}

func (s *scanner) scanOpenBrace(start int, code rune) *Token {
	s.braceStack = append(s.braceStack, "expression")
	s.advance()
	return newCharacterToken(start, s.index, code)
}

func (s *scanner) scanCloseBrace(start int, code rune) *Token {
	s.advance()

	if len(s.braceStack) > 0 {
		currentBrace := s.braceStack[len(s.braceStack)-1]
		s.braceStack = s.braceStack[:len(s.braceStack)-1]
		if currentBrace == "interpolation" {
			closing := newCharacterToken(start, s.index, core.CharRBRACE)
			closing.NewlineBefore = s.sawNewline
			s.sawNewline = false
			s.tokens = append(s.tokens, closing)
			return s.scanTemplateLiteralPart(s.index)
		}
	}

	return newCharacterToken(start, s.index, code)
}

func (s *scanner) scanComplexOperator(start int, one string, twoCode int, two string, threeCode ...int) *Token {
	s.advance()
	str := one
	if int(s.peek) == twoCode {
		s.advance()
		str += two
	}
	if len(threeCode) > 0 && int(s.peek) == threeCode[0] {
		s.advance()
		str += string(rune(threeCode[0]))
	}
	return newOperatorToken(start, s.index, str)
}

// `+`, `++`, `+=` and the `-` equivalents
func (s *scanner) scanIncrement(start int, one string) *Token {
	s.advance()
	switch {
	case string(s.peek) == one:
		s.advance()
		return newOperatorToken(start, s.index, one+one)
	case s.peek == core.CharEQ:
		s.advance()
		return newOperatorToken(start, s.index, one+"=")
	}
	return newOperatorToken(start, s.index, one)
}

// `&`, `&&`, `&=`, `&&=` and the `|` equivalents
func (s *scanner) scanLogical(start int, one string) *Token {
	s.advance()
	str := one
	if string(s.peek) == one {
		s.advance()
		str += one
	}
	if s.peek == core.CharEQ {
		s.advance()
		str += "="
	}
	return newOperatorToken(start, s.index, str)
}

// `<`, `<=`, `<<`, `<<=`, `>`, `>=`, `>>`, `>>=`, `>>>`, `>>>=`
func (s *scanner) scanAngle(start int, code rune) *Token {
	s.advance()
	str := string(code)
	if s.peek == code {
		s.advance()
		str += string(code)
		if code == core.CharGT && s.peek == core.CharGT {
			s.advance()
			str += ">"
		}
	}
	if s.peek == core.CharEQ {
		s.advance()
		str += "="
	}
	return newOperatorToken(start, s.index, str)
}

func (s *scanner) scanIdentifier() *Token {
	start := s.index
	s.advance()
	for core.IsIdentifierPart(s.peek) {
		s.advance()
	}
	str := s.input[start:s.index]
	if keywords[str] {
		return newKeywordToken(start, s.index, str)
	}
	return newIdentifierToken(start, s.index, str)
}

func (s *scanner) scanNumber(start int) *Token {
	if s.peek == core.Char0 && s.index == start {
		switch s.peekAt(1) | 0x20 {
		case core.CharLowerX, core.CharLowerO, core.CharLowerB:
			return s.scanRadixNumber(start)
		}
	}
	simple := s.index == start
	hasSeparators := false
	s.advance() // Skip initial digit
	for {
		if core.IsDigit(s.peek) {
			// Do nothing
		} else if s.peek == core.CharUnderscore {
			// Separators are only valid when they're surrounded by digits
			if s.index == 0 || s.index >= s.length-1 || !core.IsDigit(rune(s.input[s.index-1])) || !core.IsDigit(rune(s.input[s.index+1])) {
				return s.error("Invalid numeric separator", 0)
			}
			hasSeparators = true
		} else if s.peek == core.CharPERIOD {
			simple = false
		} else if isExponentStart(s.peek) {
			s.advance()
			if isExponentSign(s.peek) {
				s.advance()
			}
			if !core.IsDigit(s.peek) {
				return s.error("Invalid exponent", -1)
			}
			simple = false
		} else {
			break
		}
		s.advance()
	}

	str := s.input[start:s.index]
	if hasSeparators {
		str = strings.ReplaceAll(str, "_", "")
	}
	var value float64
	if simple {
		val, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			value, _ = strconv.ParseFloat(str, 64)
		} else {
			value = float64(val)
		}
	} else {
		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			value = 0
		} else {
			value = val
		}
	}
	return newNumberToken(start, s.index, value)
}

func (s *scanner) scanRadixNumber(start int) *Token {
	s.advance()
	s.advance()
	for core.IsAsciiHexDigit(s.peek) || s.peek == core.CharUnderscore {
		s.advance()
	}
	str := strings.ReplaceAll(s.input[start:s.index], "_", "")
	val, err := strconv.ParseInt(str, 0, 64)
	if err != nil {
		return s.error("Invalid number ["+str+"]", 0)
	}
	return newNumberToken(start, s.index, float64(val))
}

func (s *scanner) scanString() *Token {
	start := s.index
	quote := s.peek
	s.advance() // Skip initial quote

	buffer := ""
	marker := s.index
	input := s.input

	for s.peek != quote {
		if s.peek == core.CharBACKSLASH {
			result, errToken := s.scanStringBackslash(buffer, marker)
			if errToken != nil {
				return errToken
			}
			buffer = result
			marker = s.index
		} else if s.peek == core.CharEOF || core.IsNewLine(s.peek) {
			return s.error("Unterminated quote", 0)
		} else {
			s.advance()
		}
	}

	last := input[marker:s.index]
	s.advance() // Skip terminating quote

	return newStringToken(start, s.index, buffer+last, StringTokenKindPlain)
}

func (s *scanner) scanQuestion(start int) *Token {
	s.advance()
	operator := "?"
	// `a ?? b` or `a ??= b`
	if s.peek == core.CharQUESTION {
		operator += "?"
		s.advance()
		if s.peek == core.CharEQ {
			operator += "="
			s.advance()
		}
	} else if s.peek == core.CharPERIOD && !core.IsDigit(s.peekAt(1)) {
		// `a?.b`, but not `a?.5:b`
		operator += "."
		s.advance()
	}
	return newOperatorToken(start, s.index, operator)
}

func (s *scanner) scanTemplateLiteralPart(start int) *Token {
	buffer := ""
	rawStart := s.index
	marker := s.index

	for s.peek != core.CharBT {
		if s.peek == core.CharBACKSLASH {
			result, errToken := s.scanStringBackslash(buffer, marker)
			if errToken != nil {
				return errToken
			}
			buffer = result
			marker = s.index
		} else if s.peek == core.CharDollar {
			dollar := s.index
			s.advance()
			if s.peek == core.CharLBRACE {
				s.braceStack = append(s.braceStack, "interpolation")
				part := newStringToken(start, dollar, buffer+s.input[marker:dollar], StringTokenKindTemplateLiteralPart)
				part.Raw = s.input[rawStart:dollar]
				part.NewlineBefore = s.sawNewline
				s.sawNewline = false
				s.tokens = append(s.tokens, part)
				s.advance()
				return newOperatorToken(dollar, s.index, s.input[dollar:s.index])
			}
		} else if s.peek == core.CharEOF {
			return s.error("Unterminated template literal", 0)
		} else {
			s.advance()
		}
	}

	last := s.input[marker:s.index]
	end := newStringToken(start, s.index+1, buffer+last, StringTokenKindTemplateLiteralEnd)
	end.Raw = s.input[rawStart:s.index]
	s.advance()
	return end
}

func (s *scanner) error(message string, offset int) *Token {
	position := s.index + offset
	return newErrorToken(
		position,
		s.index,
		"Lexer Error: "+message+" at column "+strconv.Itoa(position)+" in expression ["+s.input+"]",
	)
}

func (s *scanner) scanStringBackslash(buffer string, marker int) (string, *Token) {
	buffer += s.input[marker:s.index]
	var unescapedCode rune
	s.advance()
	switch {
	case s.peek == core.CharLowerU && s.peekAt(1) == core.CharLBRACE:
		end := strings.IndexByte(s.input[s.index:], '}')
		if end < 0 {
			return "", s.error("Invalid unicode escape", 0)
		}
		hex := s.input[s.index+2 : s.index+end]
		val, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", s.error("Invalid unicode escape [\\u{"+hex+"}]", 0)
		}
		unescapedCode = rune(val)
		for i := 0; i <= end; i++ {
			s.advance()
		}
	case s.peek == core.CharLowerU:
		// 4 character hex code for unicode character
		if s.index+5 > s.length {
			return "", s.error("Invalid unicode escape", 0)
		}
		hex := s.input[s.index+1 : s.index+5]
		val, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", s.error("Invalid unicode escape [\\u"+hex+"]", 0)
		}
		unescapedCode = rune(val)
		for i := 0; i < 5; i++ {
			s.advance()
		}
	case s.peek == core.CharLowerX:
		if s.index+3 > s.length {
			return "", s.error("Invalid hexadecimal escape", 0)
		}
		hex := s.input[s.index+1 : s.index+3]
		val, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", s.error("Invalid hexadecimal escape [\\x"+hex+"]", 0)
		}
		unescapedCode = rune(val)
		for i := 0; i < 3; i++ {
			s.advance()
		}
	case core.IsNewLine(s.peek):
		// line continuation
		if s.peek == core.CharCR && s.peekAt(1) == core.CharLF {
			s.advance()
		}
		s.advance()
		return buffer, nil
	case s.peek == core.CharEOF:
		return "", s.error("Unterminated quote", 0)
	default:
		unescapedCode = unescape(s.peek)
		s.advance()
	}
	buffer += string(unescapedCode)
	return buffer, nil
}

func (s *scanner) scanStar(start int) *Token {
	s.advance()
	operator := "*"
	// `*`, `**`, `**=` or `*=`
	if s.peek == core.CharSTAR {
		operator += "*"
		s.advance()
		if s.peek == core.CharEQ {
			operator += "="
			s.advance()
		}
	} else if s.peek == core.CharEQ {
		operator += "="
		s.advance()
	}
	return newOperatorToken(start, s.index, operator)
}

// words after which an expression, and so a regex, may start
var regexPrecedingKeywords = map[string]bool{
	"return": true, "typeof": true, "void": true, "in": true, "instanceof": true,
	"new": true, "delete": true, "throw": true, "case": true, "do": true, "else": true, "await": true,
}

func (s *scanner) isStartOfRegex() bool {
	if len(s.tokens) == 0 {
		return true
	}

	prevToken := s.tokens[len(s.tokens)-1]

	if prevToken.Type == TokenTypeKeyword {
		return regexPrecedingKeywords[prevToken.StrValue]
	}

	// postfix increments end an operand
	if prevToken.IsOperator("++") || prevToken.IsOperator("--") {
		return false
	}

	// Only consider the slash a regex if it's preceded either by:
	// - Any operator.
	// - Opening paren (e.g. `(/a/)`).
	// - Opening bracket (e.g. `[/a/]`).
	// - A comma (e.g. `[1, /a/]`).
	// - A colon (e.g. `{foo: /a/}`).
	// - A statement boundary (`;`, `{`).
	return prevToken.Type == TokenTypeOperator ||
		prevToken.IsCharacter(core.CharLPAREN) ||
		prevToken.IsCharacter(core.CharLBRACKET) ||
		prevToken.IsCharacter(core.CharCOMMA) ||
		prevToken.IsCharacter(core.CharCOLON) ||
		prevToken.IsCharacter(core.CharSEMICOLON) ||
		prevToken.IsCharacter(core.CharLBRACE)
}

func (s *scanner) scanRegex(tokenStart int) *Token {
	s.advance()
	textStart := s.index
	inEscape := false
	inCharacterClass := false

	for {
		peek := s.peek

		if peek == core.CharEOF || core.IsNewLine(peek) {
			return s.error("Unterminated regular expression", 0)
		}

		if inEscape {
			inEscape = false
		} else if peek == core.CharBACKSLASH {
			inEscape = true
		} else if peek == core.CharLBRACKET {
			inCharacterClass = true
		} else if peek == core.CharRBRACKET {
			inCharacterClass = false
		} else if peek == core.CharSLASH && !inCharacterClass {
			break
		}
		s.advance()
	}

	// Note that we want the text without the slashes,
	// but we still want the slashes to be part of the span.
	value := s.input[textStart:s.index]
	s.advance()
	bodyToken := newRegExpBodyToken(tokenStart, s.index, value)
	flagsToken := s.scanRegexFlags(s.index)

	if flagsToken != nil {
		bodyToken.NewlineBefore = s.sawNewline
		s.sawNewline = false
		s.tokens = append(s.tokens, bodyToken)
		return flagsToken
	}

	return bodyToken
}

func (s *scanner) scanRegexFlags(start int) *Token {
	if !core.IsAsciiLetter(s.peek) {
		return nil
	}

	for core.IsAsciiLetter(s.peek) {
		s.advance()
	}

	return newRegExpFlagsToken(start, s.index, s.input[start:s.index])
}

func isExponentStart(code rune) bool {
	return code == core.CharE || code == core.CharLowerE
}

func isExponentSign(code rune) bool {
	return code == core.CharMINUS || code == core.CharPLUS
}

func unescape(code rune) rune {
	switch code {
	case core.CharLowerN:
		return core.CharLF
	case core.CharLowerF:
		return core.CharFF
	case core.CharLowerR:
		return core.CharCR
	case core.CharLowerT:
		return core.CharTAB
	case core.CharLowerV:
		return core.CharVTAB
	case core.CharLowerB:
		return core.CharBSPACE
	case core.Char0:
		return 0
	default:
		return code
	}
}

// Helper functions to create tokens
func newCharacterToken(index, end int, code rune) *Token {
	return NewToken(index, end, TokenTypeCharacter, float64(code), string(code))
}

func newIdentifierToken(index, end int, text string) *Token {
	return NewToken(index, end, TokenTypeIdentifier, 0, text)
}

func newKeywordToken(index, end int, text string) *Token {
	return NewToken(index, end, TokenTypeKeyword, 0, text)
}

func newOperatorToken(index, end int, text string) *Token {
	return NewToken(index, end, TokenTypeOperator, 0, text)
}

func newNumberToken(index, end int, n float64) *Token {
	return NewToken(index, end, TokenTypeNumber, n, "")
}

func newStringToken(index, end int, text string, kind StringTokenKind) *Token {
	token := NewToken(index, end, TokenTypeString, 0, text)
	token.StringKind = kind
	return token
}

func newErrorToken(index, end int, message string) *Token {
	return NewToken(index, end, TokenTypeError, 0, message)
}

func newRegExpBodyToken(index, end int, text string) *Token {
	return NewToken(index, end, TokenTypeRegExpBody, 0, text)
}

func newRegExpFlagsToken(index, end int, text string) *Token {
	return NewToken(index, end, TokenTypeRegExpFlags, 0, text)
}

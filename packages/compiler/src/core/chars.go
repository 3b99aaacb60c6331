// Package core holds the character classes shared by the script lexer and
// parser. Constants are untyped so they compare against runes and token
// codes alike.
package core

const (
	CharEOF    = 0
	CharBSPACE = '\b'
	CharTAB    = '\t'
	CharLF     = '\n'
	CharVTAB   = '\v'
	CharFF     = '\f'
	CharCR     = '\r'
	CharSPACE  = ' '
	CharNBSP   = 0xA0

	CharBANG      = '!'
	CharDQ        = '"'
	CharDollar    = '$'
	CharPERCENT   = '%'
	CharAMPERSAND = '&'
	CharSQ        = '\''
	CharLPAREN    = '('
	CharRPAREN    = ')'
	CharSTAR      = '*'
	CharPLUS      = '+'
	CharCOMMA     = ','
	CharMINUS     = '-'
	CharPERIOD    = '.'
	CharSLASH     = '/'
	CharCOLON     = ':'
	CharSEMICOLON = ';'
	CharLT        = '<'
	CharEQ        = '='
	CharGT        = '>'
	CharQUESTION  = '?'

	CharLBRACKET   = '['
	CharBACKSLASH  = '\\'
	CharRBRACKET   = ']'
	CharCARET      = '^'
	CharUnderscore = '_'
	CharBT         = '`'
	CharLBRACE     = '{'
	CharBAR        = '|'
	CharRBRACE     = '}'
	CharTILDA      = '~'

	Char0 = '0'
	Char9 = '9'

	CharA = 'A'
	CharE = 'E'
	CharF = 'F'
	CharZ = 'Z'

	CharLowerA = 'a'
	CharLowerB = 'b'
	CharLowerE = 'e'
	CharLowerF = 'f'
	CharLowerN = 'n'
	CharLowerO = 'o'
	CharLowerR = 'r'
	CharLowerT = 't'
	CharLowerU = 'u'
	CharLowerV = 'v'
	CharLowerX = 'x'
	CharLowerZ = 'z'
)

func IsDigit(code rune) bool {
	return Char0 <= code && code <= Char9
}

func IsAsciiLetter(code rune) bool {
	return (CharLowerA <= code && code <= CharLowerZ) || (CharA <= code && code <= CharZ)
}

func IsAsciiHexDigit(code rune) bool {
	return (CharLowerA <= code && code <= CharLowerF) || (CharA <= code && code <= CharF) || IsDigit(code)
}

// IsNewLine reports a line terminator; a newline before a token matters
// for automatic semicolon insertion
func IsNewLine(code rune) bool {
	return code == CharLF || code == CharCR
}

// IsIdentifierStart covers the ASCII subset of identifier start characters
func IsIdentifierStart(code rune) bool {
	return IsAsciiLetter(code) || code == CharUnderscore || code == CharDollar
}

func IsIdentifierPart(code rune) bool {
	return IsIdentifierStart(code) || IsDigit(code)
}

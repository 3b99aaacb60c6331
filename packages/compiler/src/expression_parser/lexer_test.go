package expression_parser_test

import (
	"strings"
	"testing"

	"vuec-go/packages/compiler/src/expression_parser"
)

func lex(text string) []*expression_parser.Token {
	lexer := expression_parser.NewLexer()
	return lexer.Tokenize(text)
}

func expectToken(t *testing.T, token *expression_parser.Token, index, end int) {
	t.Helper()
	if token == nil {
		t.Fatalf("Expected token, got nil")
	}
	if token.Index != index {
		t.Errorf("Expected token.Index = %d, got %d", index, token.Index)
	}
	if token.End != end {
		t.Errorf("Expected token.End = %d, got %d", end, token.End)
	}
}

func expectCharacterToken(t *testing.T, token *expression_parser.Token, index, end int, character string) {
	t.Helper()
	expectToken(t, token, index, end)
	if !token.IsCharacter(int(character[0])) {
		t.Errorf("Expected character token %q, got %q", character, token.String())
	}
}

func expectOperatorToken(t *testing.T, token *expression_parser.Token, index, end int, operator string) {
	t.Helper()
	expectToken(t, token, index, end)
	if !token.IsOperator(operator) {
		t.Errorf("Expected operator token %q, got %q", operator, token.String())
	}
}

func expectNumberToken(t *testing.T, token *expression_parser.Token, index, end int, n float64) {
	t.Helper()
	expectToken(t, token, index, end)
	if !token.IsNumber() {
		t.Errorf("Expected number token, got type %v", token.Type)
	}
	if token.NumValue != n {
		t.Errorf("Expected number %v, got %v", n, token.NumValue)
	}
}

func expectIdentifierToken(t *testing.T, token *expression_parser.Token, index, end int, identifier string) {
	t.Helper()
	expectToken(t, token, index, end)
	if !token.IsIdentifier() {
		t.Errorf("Expected identifier token, got type %v", token.Type)
	}
	if token.String() != identifier {
		t.Errorf("Expected identifier %q, got %q", identifier, token.String())
	}
}

func expectKeywordToken(t *testing.T, token *expression_parser.Token, index, end int, keyword string) {
	t.Helper()
	expectToken(t, token, index, end)
	if !token.IsKeyword(keyword) {
		t.Errorf("Expected keyword %q, got %q (type %v)", keyword, token.String(), token.Type)
	}
}

func expectStringToken(t *testing.T, token *expression_parser.Token, index, end int, str string, kind expression_parser.StringTokenKind) {
	t.Helper()
	expectToken(t, token, index, end)
	if !token.IsString() {
		t.Errorf("Expected string token, got type %v", token.Type)
	}
	if token.StringKind != kind {
		t.Errorf("Expected string token kind %v, got %v", kind, token.StringKind)
	}
	if token.StrValue != str {
		t.Errorf("Expected string %q, got %q", str, token.StrValue)
	}
}

func TestLexer(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		t.Run("should tokenize a simple identifier", func(t *testing.T) {
			tokens := lex("j")
			if len(tokens) != 1 {
				t.Fatalf("Expected 1 token, got %d", len(tokens))
			}
			expectIdentifierToken(t, tokens[0], 0, 1, "j")
		})

		t.Run("should tokenize $ and _ identifiers", func(t *testing.T) {
			tokens := lex("$props _ctx")
			expectIdentifierToken(t, tokens[0], 0, 6, "$props")
			expectIdentifierToken(t, tokens[1], 7, 11, "_ctx")
		})

		t.Run("should lex undefined as an identifier", func(t *testing.T) {
			tokens := lex("undefined")
			expectIdentifierToken(t, tokens[0], 0, 9, "undefined")
		})

		t.Run("should lex reserved words as keywords", func(t *testing.T) {
			tokens := lex("const x = typeof y")
			expectKeywordToken(t, tokens[0], 0, 5, "const")
			expectIdentifierToken(t, tokens[1], 6, 7, "x")
			expectOperatorToken(t, tokens[2], 8, 9, "=")
			expectKeywordToken(t, tokens[3], 10, 16, "typeof")
		})

		t.Run("should lex contextual words as identifiers", func(t *testing.T) {
			for _, word := range []string{"of", "from", "as", "async", "get", "set"} {
				tokens := lex(word)
				if !tokens[0].IsContextual(word) {
					t.Errorf("Expected %q to be an identifier", word)
				}
			}
		})

		t.Run("should tokenize a dotted identifier", func(t *testing.T) {
			tokens := lex("j.k")
			if len(tokens) != 3 {
				t.Fatalf("Expected 3 tokens, got %d", len(tokens))
			}
			expectIdentifierToken(t, tokens[0], 0, 1, "j")
			expectCharacterToken(t, tokens[1], 1, 2, ".")
			expectIdentifierToken(t, tokens[2], 2, 3, "k")
		})

		t.Run("should tokenize optional chaining and nullish operators", func(t *testing.T) {
			tokens := lex("a?.b ?? c ??= d")
			expectOperatorToken(t, tokens[1], 1, 3, "?.")
			expectOperatorToken(t, tokens[3], 5, 7, "??")
			expectOperatorToken(t, tokens[5], 10, 13, "??=")
		})

		t.Run("should not lex ?. before a digit", func(t *testing.T) {
			tokens := lex("a?.5:b")
			expectOperatorToken(t, tokens[1], 1, 2, "?")
			expectNumberToken(t, tokens[2], 2, 4, 0.5)
		})

		t.Run("should tokenize arrows, spreads and updates", func(t *testing.T) {
			tokens := lex("(...a) => a++")
			expectOperatorToken(t, tokens[1], 1, 4, "...")
			expectOperatorToken(t, tokens[4], 7, 9, "=>")
			expectOperatorToken(t, tokens[6], 11, 13, "++")
		})

		t.Run("should tokenize shift and bitwise operators", func(t *testing.T) {
			tokens := lex("a >>> b << c & d ^ ~e")
			expectOperatorToken(t, tokens[1], 2, 5, ">>>")
			expectOperatorToken(t, tokens[3], 8, 10, "<<")
			expectOperatorToken(t, tokens[5], 13, 14, "&")
			expectOperatorToken(t, tokens[7], 17, 18, "^")
			expectOperatorToken(t, tokens[8], 19, 20, "~")
		})

		t.Run("should tokenize logical assignment", func(t *testing.T) {
			tokens := lex("a ||= b &&= c")
			expectOperatorToken(t, tokens[1], 2, 5, "||=")
			expectOperatorToken(t, tokens[3], 8, 11, "&&=")
		})

		t.Run("should tokenize strict equality", func(t *testing.T) {
			tokens := lex("a !== b === c")
			expectOperatorToken(t, tokens[1], 2, 5, "!==")
			expectOperatorToken(t, tokens[3], 8, 11, "===")
		})
	})

	t.Run("numbers", func(t *testing.T) {
		t.Run("should tokenize integers and floats", func(t *testing.T) {
			expectNumberToken(t, lex("88")[0], 0, 2, 88)
			expectNumberToken(t, lex("3.14")[0], 0, 4, 3.14)
			expectNumberToken(t, lex(".5")[0], 0, 2, 0.5)
			expectNumberToken(t, lex("1e3")[0], 0, 3, 1000)
		})

		t.Run("should tokenize radix prefixes", func(t *testing.T) {
			expectNumberToken(t, lex("0xff")[0], 0, 4, 255)
			expectNumberToken(t, lex("0b101")[0], 0, 5, 5)
			expectNumberToken(t, lex("0o17")[0], 0, 4, 15)
		})

		t.Run("should tokenize numeric separators", func(t *testing.T) {
			expectNumberToken(t, lex("1_000")[0], 0, 5, 1000)
		})

		t.Run("should report an invalid exponent", func(t *testing.T) {
			tokens := lex("1e")
			if !tokens[len(tokens)-1].IsError() {
				t.Errorf("Expected an error token")
			}
		})
	})

	t.Run("strings", func(t *testing.T) {
		t.Run("should tokenize quoted strings", func(t *testing.T) {
			expectStringToken(t, lex(`"a"`)[0], 0, 3, "a", expression_parser.StringTokenKindPlain)
			expectStringToken(t, lex(`'b'`)[0], 0, 3, "b", expression_parser.StringTokenKindPlain)
		})

		t.Run("should unescape escape sequences", func(t *testing.T) {
			tokens := lex(`"a\n\t\"A\x42\u{43}"`)
			if tokens[0].StrValue != "a\n\t\"ABC" {
				t.Errorf("Expected %q, got %q", "a\n\t\"ABC", tokens[0].StrValue)
			}
		})

		t.Run("should report an unterminated quote", func(t *testing.T) {
			tokens := lex(`"abc`)
			if !tokens[0].IsError() || !strings.Contains(tokens[0].StrValue, "Unterminated quote") {
				t.Errorf("Expected unterminated quote error, got %q", tokens[0].StrValue)
			}
		})
	})

	t.Run("template literals", func(t *testing.T) {
		t.Run("should tokenize a template without interpolation", func(t *testing.T) {
			tokens := lex("`hello`")
			expectStringToken(t, tokens[0], 0, 7, "hello", expression_parser.StringTokenKindTemplateLiteralEnd)
		})

		t.Run("should tokenize interpolations", func(t *testing.T) {
			tokens := lex("`a${b}c`")
			if len(tokens) != 5 {
				t.Fatalf("Expected 5 tokens, got %d", len(tokens))
			}
			expectStringToken(t, tokens[0], 0, 2, "a", expression_parser.StringTokenKindTemplateLiteralPart)
			expectOperatorToken(t, tokens[1], 2, 4, "${")
			expectIdentifierToken(t, tokens[2], 4, 5, "b")
			expectCharacterToken(t, tokens[3], 5, 6, "}")
			expectStringToken(t, tokens[4], 6, 8, "c", expression_parser.StringTokenKindTemplateLiteralEnd)
		})

		t.Run("should keep object braces inside interpolations", func(t *testing.T) {
			tokens := lex("`${ {a: 1}.a }`")
			last := tokens[len(tokens)-1]
			if !last.IsTemplateLiteralEnd() {
				t.Errorf("Expected template end, got %q", last.String())
			}
		})

		t.Run("should keep the raw text of parts", func(t *testing.T) {
			tokens := lex("`a\\n`")
			if tokens[0].StrValue != "a\n" || tokens[0].Raw != `a\n` {
				t.Errorf("Expected cooked %q and raw %q, got %q and %q", "a\n", `a\n`, tokens[0].StrValue, tokens[0].Raw)
			}
		})
	})

	t.Run("trivia", func(t *testing.T) {
		t.Run("should skip comments", func(t *testing.T) {
			tokens := lex("a /* b */ + // c\n d")
			if len(tokens) != 3 {
				t.Fatalf("Expected 3 tokens, got %d", len(tokens))
			}
			expectIdentifierToken(t, tokens[2], 18, 19, "d")
		})

		t.Run("should record newlines before tokens", func(t *testing.T) {
			tokens := lex("a\nb c /*\n*/ d")
			expected := []bool{false, true, false, true}
			for i, want := range expected {
				if tokens[i].NewlineBefore != want {
					t.Errorf("token %d: Expected NewlineBefore %v, got %v", i, want, tokens[i].NewlineBefore)
				}
			}
		})
	})

	t.Run("regular expressions", func(t *testing.T) {
		t.Run("should tokenize a regex with flags", func(t *testing.T) {
			tokens := lex("/a+b/gi")
			if len(tokens) != 2 || !tokens[0].IsRegExpBody() || !tokens[1].IsRegExpFlags() {
				t.Fatalf("Expected regex body and flags, got %d tokens", len(tokens))
			}
			if tokens[0].StrValue != "a+b" || tokens[1].StrValue != "gi" {
				t.Errorf("Expected %q/%q, got %q/%q", "a+b", "gi", tokens[0].StrValue, tokens[1].StrValue)
			}
		})

		t.Run("should treat slash after an operand as division", func(t *testing.T) {
			tokens := lex("a / b / c")
			expectOperatorToken(t, tokens[1], 2, 3, "/")
			expectOperatorToken(t, tokens[3], 6, 7, "/")
		})

		t.Run("should treat slash after return as a regex", func(t *testing.T) {
			tokens := lex("return /x/")
			if !tokens[1].IsRegExpBody() {
				t.Errorf("Expected regex body, got %q", tokens[1].String())
			}
		})

		t.Run("should keep slashes inside character classes", func(t *testing.T) {
			tokens := lex("x = /[/]/")
			if tokens[2].StrValue != "[/]" {
				t.Errorf("Expected %q, got %q", "[/]", tokens[2].StrValue)
			}
		})
	})

	t.Run("errors", func(t *testing.T) {
		t.Run("should report an unexpected character", func(t *testing.T) {
			tokens := lex("a # b")
			last := tokens[len(tokens)-1]
			if !last.IsError() || !strings.Contains(last.StrValue, "Unexpected character [#]") {
				t.Errorf("Expected unexpected character error, got %q", last.StrValue)
			}
		})
	})
}

package expression_parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vuec-go/packages/compiler/src/expression_parser"
	"vuec-go/packages/compiler/src/output"
)

func checkExpression(exp string, expected ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		expr, err := expression_parser.ParseExpression(exp)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		expectedStr := exp
		if len(expected) > 0 {
			expectedStr = expected[0]
		}
		if result := output.Stringify(expr, false); result != expectedStr {
			t.Errorf("Expected %q, got %q", expectedStr, result)
		}
	}
}

func expectExpressionError(text string, message string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		expr, err := expression_parser.ParseExpression(text)
		if err == nil {
			t.Fatalf("Expected error containing %q, got expression %q", message, output.Stringify(expr, false))
		}
		if expr != nil {
			t.Errorf("Expected no expression alongside an error")
		}
		if !strings.Contains(err.Error(), message) {
			t.Errorf("Expected error containing %q, got %q", message, err.Error())
		}
	}
}

func parseModule(t *testing.T, source string) *output.Module {
	t.Helper()
	module, err := expression_parser.ParseModule(source)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return module
}

func TestParseExpression(t *testing.T) {
	t.Run("primaries", func(t *testing.T) {
		t.Run("should parse numbers", checkExpression("1"))
		t.Run("should keep the source spelling of numbers", checkExpression("0xff"))
		t.Run("should parse strings with double quotes", checkExpression("'a'", `"a"`))
		t.Run("should parse null", checkExpression("null"))
		t.Run("should parse undefined as an identifier", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("undefined")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if v, ok := expr.(*output.ReadVarExpr); !ok || v.Name != "undefined" {
				t.Errorf("Expected a variable read, got %T", expr)
			}
		})
		t.Run("should parse this", checkExpression("this.a"))
		t.Run("should parse regular expressions", checkExpression("/ab+c/i.test(s)"))
		t.Run("should parse template literals", checkExpression("`a${b}c${d + 1}`"))
		t.Run("should parse tagged templates", checkExpression("tag`x${y}`"))
	})

	t.Run("operators", func(t *testing.T) {
		t.Run("should parse unary expressions", checkExpression("!a && -b"))
		t.Run("should parse typeof and void", checkExpression(`typeof a === "string" || void 0`))
		t.Run("should parse multiplicative before additive", checkExpression("a + b * c"))
		t.Run("should keep source parentheses", checkExpression("(a + b) * c"))
		t.Run("should parse exponentiation as right associative", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("a ** b ** c")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			bin := expr.(*output.BinaryOperatorExpr)
			if _, ok := bin.Rhs.(*output.BinaryOperatorExpr); !ok {
				t.Errorf("Expected the right operand to be nested, got %T", bin.Rhs)
			}
		})
		t.Run("should parse relational and in expressions", checkExpression(`a < b && "x" in obj && a instanceof B`))
		t.Run("should parse nullish coalescing", checkExpression("a ?? b"))
		t.Run("should parse bitwise operators", checkExpression("a | b & c ^ d << 1"))
		t.Run("should parse conditionals", checkExpression("a ? b : c ? d : e"))
		t.Run("should parse the condition of a v-if", checkExpression("foo||true", "foo || true"))
		t.Run("should parse assignments", checkExpression("a = b += 1"))
		t.Run("should parse logical assignments", checkExpression("a ||= b"))
		t.Run("should parse update expressions", checkExpression("i++ + --j"))
		t.Run("should parse comma sequences", checkExpression("a, b"))
	})

	t.Run("members and calls", func(t *testing.T) {
		t.Run("should parse property reads", checkExpression("a.b.c"))
		t.Run("should accept keywords as property names", checkExpression("a.default.new"))
		t.Run("should parse keyed reads", checkExpression(`a["b"][c]`))
		t.Run("should parse optional chains", checkExpression("a?.b?.[c]?.(d)"))
		t.Run("should parse calls", checkExpression("f(a, ...rest)"))
		t.Run("should parse new expressions", checkExpression("new Foo(1).bar"))
		t.Run("should add arguments to new without them", checkExpression("new Date", "new Date()"))
	})

	t.Run("literals", func(t *testing.T) {
		t.Run("should parse arrays", checkExpression("[1, [2], ...xs]"))
		t.Run("should parse array holes", checkExpression("[a, , b]"))
		t.Run("should parse maps", checkExpression(`{ a: 1, "b-c": 2, [k]: 3 }`))
		t.Run("should parse property shorthand", checkExpression("{ foo, bar }"))
		t.Run("should parse spread entries", checkExpression("{ ...a, b: 1 }"))
		t.Run("should accept keywords as map keys", checkExpression("{ default: 1, if: 2 }"))
		t.Run("should parse methods and accessors", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("{ data() { return {}; }, get x() { return 1; }, async load() {}, get: 1 }")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			entries := expr.(*output.LiteralMapExpr).Entries
			kinds := []output.LiteralMapEntryKind{}
			keys := []string{}
			for _, entry := range entries {
				kinds = append(kinds, entry.Kind)
				keys = append(keys, entry.Key)
			}
			expectedKinds := []output.LiteralMapEntryKind{
				output.LiteralMapEntryMethod,
				output.LiteralMapEntryGetter,
				output.LiteralMapEntryMethod,
				output.LiteralMapEntryKeyValue,
			}
			if diff := cmp.Diff(expectedKinds, kinds); diff != "" {
				t.Errorf("entry kinds mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"data", "x", "load", "get"}, keys); diff != "" {
				t.Errorf("entry keys mismatch (-want +got):\n%s", diff)
			}
			if fn := entries[2].Value.(*output.FunctionExpr); !fn.Async {
				t.Errorf("Expected load to be async")
			}
		})
	})

	t.Run("functions", func(t *testing.T) {
		t.Run("should parse single parameter arrows", checkExpression("x => x + 1", "(x) => x + 1"))
		t.Run("should parse parenthesized parameter arrows", checkExpression("(a, b) => a"))
		t.Run("should parse destructured and default parameters", checkExpression("({ a, b: c }, [d], e = 1, ...f) => a"))
		t.Run("should parse arrows returning objects", checkExpression("() => ({ a: 1 })"))
		t.Run("should parse handler arrows", checkExpression("$event => (count = $event)", "($event) => (count = $event)"))
		t.Run("should parse async arrows", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("async x => await x")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			arrow := expr.(*output.ArrowFunctionExpr)
			if !arrow.Async {
				t.Errorf("Expected an async arrow")
			}
			if _, ok := arrow.Body.(*output.AwaitExpr); !ok {
				t.Errorf("Expected an await body, got %T", arrow.Body)
			}
		})
		t.Run("should parse a call of async", checkExpression("async(1)"))
		t.Run("should parse function expressions", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("function named(a) { return a; }")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			fn := expr.(*output.FunctionExpr)
			if fn.Name == nil || *fn.Name != "named" || len(fn.Statements) != 1 {
				t.Errorf("Unexpected function %q", output.Stringify(fn, true))
			}
		})
	})

	t.Run("spans", func(t *testing.T) {
		t.Run("should record source spans", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("a + foo.bar")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			bin := expr.(*output.BinaryOperatorExpr)
			if diff := cmp.Diff(output.Span{Start: 0, End: 11}, bin.GetSpan()); diff != "" {
				t.Errorf("span mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(output.Span{Start: 4, End: 11}, bin.Rhs.GetSpan()); diff != "" {
				t.Errorf("span mismatch (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("errors", func(t *testing.T) {
		t.Run("should report a missing closing paren", expectExpressionError("foo(", "Unexpected end of input"))
		t.Run("should report a dangling operator", expectExpressionError("a +", "Unexpected end of input"))
		t.Run("should report trailing tokens", expectExpressionError("a b", "Unexpected token 'b'"))
		t.Run("should report invalid assignment targets", expectExpressionError("1 = a", "Invalid assignment target"))
		t.Run("should report lexer errors", expectExpressionError(`"abc`, "Unterminated quote"))
		t.Run("should report empty input", expectExpressionError("", "Unexpected end of input"))
		t.Run("should report the location", func(t *testing.T) {
			_, err := expression_parser.ParseExpression("a +\n)")
			if err == nil || !strings.Contains(err.Error(), "@2:1") {
				t.Errorf("Expected a location of line 2, got %v", err)
			}
		})
	})
}

func TestParseModule(t *testing.T) {
	t.Run("should parse imports", func(t *testing.T) {
		module := parseModule(t, `import Foo, { ref as r, computed } from "vue"
import * as ns from './ns'
import "./side-effect.css"`)
		if len(module.Body) != 3 {
			t.Fatalf("Expected 3 statements, got %d", len(module.Body))
		}
		first := module.Body[0].(*output.ImportDecl)
		expected := []*output.ImportSpecifier{
			{Kind: output.ImportSpecifierDefault, Local: "Foo"},
			{Kind: output.ImportSpecifierNamed, Imported: "ref", Local: "r"},
			{Kind: output.ImportSpecifierNamed, Imported: "computed", Local: "computed"},
		}
		if diff := cmp.Diff(expected, first.Specifiers); diff != "" {
			t.Errorf("specifiers mismatch (-want +got):\n%s", diff)
		}
		if ns := module.Body[1].(*output.ImportDecl); ns.Specifiers[0].Kind != output.ImportSpecifierNamespace || ns.Source != "./ns" {
			t.Errorf("Unexpected namespace import %q", output.Stringify(ns, false))
		}
		if side := module.Body[2].(*output.ImportDecl); len(side.Specifiers) != 0 {
			t.Errorf("Expected a side-effect import")
		}
	})

	t.Run("should parse an options-style default export", func(t *testing.T) {
		module := parseModule(t, `export default {
  props: ['msg'],
  data() {
    return { count: 0 }
  },
  methods: { inc() { this.count++ } }
}`)
		stmt, ok := module.Body[0].(*output.ExportDefaultStmt)
		if !ok {
			t.Fatalf("Expected export default, got %T", module.Body[0])
		}
		keys := stmt.Expr.(*output.LiteralMapExpr).Keys()
		if diff := cmp.Diff([]string{"props", "data", "methods"}, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should insert semicolons at line breaks", func(t *testing.T) {
		module := parseModule(t, "const a = 1\nlet b\nb = a\nreturn")
		if len(module.Body) != 4 {
			t.Fatalf("Expected 4 statements, got %d", len(module.Body))
		}
		if ret := module.Body[3].(*output.ReturnStatement); ret.Value != nil {
			t.Errorf("Expected a bare return")
		}
	})

	t.Run("should not continue a return value over a newline", func(t *testing.T) {
		module := parseModule(t, "function f() {\n  return\n  1\n}")
		fn := module.Body[0].(*output.DeclareFunctionStmt)
		if len(fn.Statements) != 2 {
			t.Fatalf("Expected 2 statements, got %d", len(fn.Statements))
		}
	})

	t.Run("should parse declarations with patterns", func(t *testing.T) {
		module := parseModule(t, "const { a, b: [c, d = 2], ...e } = obj, f = 1")
		decl := module.Body[0].(*output.DeclareVarStmt)
		if diff := cmp.Diff([]string{"a", "c", "d", "e", "f"}, decl.BoundNames()); diff != "" {
			t.Errorf("bound names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should parse loops", func(t *testing.T) {
		module := parseModule(t, `for (const x of xs) total += x
for (const k in obj) {}
for (let i = 0; i < n; i++) {}
for (;;) break
while (a) { continue }`)
		if len(module.Body) != 5 {
			t.Fatalf("Expected 5 statements, got %d", len(module.Body))
		}
		forOf := module.Body[0].(*output.ForOfStmt)
		if forOf.In || !forOf.Declared || len(forOf.Body) != 1 {
			t.Errorf("Unexpected for-of %q", output.Stringify(forOf, true))
		}
		if forIn := module.Body[1].(*output.ForOfStmt); !forIn.In {
			t.Errorf("Expected a for-in loop")
		}
		if loop := module.Body[2].(*output.ForStmt); loop.Init == nil || loop.Test == nil || loop.Update == nil {
			t.Errorf("Expected a complete for head")
		}
	})

	t.Run("should parse try statements", func(t *testing.T) {
		module := parseModule(t, "try { a() } catch { b() } finally { c() }")
		stmt := module.Body[0].(*output.TryStmt)
		if !stmt.HasCatch || stmt.CatchParam != nil || len(stmt.Finalizer) != 1 {
			t.Errorf("Unexpected try %q", output.Stringify(stmt, true))
		}
	})

	t.Run("should parse exports", func(t *testing.T) {
		module := parseModule(t, "export const a = 1\nexport function f() {}\nexport { a as b, f }")
		if len(module.Body) != 3 {
			t.Fatalf("Expected 3 statements, got %d", len(module.Body))
		}
		list := module.Body[2].(*output.ExportNamedStmt)
		expected := []*output.ExportSpecifier{{Local: "a", Exported: "b"}, {Local: "f", Exported: "f"}}
		if diff := cmp.Diff(expected, list.Specifiers); diff != "" {
			t.Errorf("specifiers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should parse dynamic imports as expressions", func(t *testing.T) {
		module := parseModule(t, `const m = import("./m")`)
		if _, ok := module.Body[0].(*output.DeclareVarStmt); !ok {
			t.Errorf("Expected a declaration, got %T", module.Body[0])
		}
	})

	t.Run("should reject unsupported statements", func(t *testing.T) {
		_, err := expression_parser.ParseModule("class A {}")
		if err == nil || !strings.Contains(err.Error(), "'class' statements are not supported") {
			t.Errorf("Expected unsupported statement error, got %v", err)
		}
	})

	t.Run("should require separators between statements on one line", func(t *testing.T) {
		_, err := expression_parser.ParseModule("a b")
		if err == nil {
			t.Errorf("Expected an error")
		}
	})
}

func TestRoundTrip(t *testing.T) {
	sources := map[string]string{
		"expressions": "const x = a?.b ?? (c || d) ? `t${e}` : [f, ...g];\nh = { i, j: () => ({}), k() { return /re/g; } };",
		"options": `import { ref } from "vue"
export default {
  name: 'Counter',
  props: { msg: String },
  data() { return { n: 0 } },
  computed: { double() { return this.n * 2 } },
  methods: { inc: function () { this.n++ } }
}`,
		"setup": `import { ref, computed } from 'vue'
import Child from './Child.vue'
const props = defineProps(['title'])
const count = ref(0)
const doubled = computed(() => count.value * 2)
let plain = 1
function reset() {
  if (count.value > 10) {
    count.value = 0
  } else if (count.value < 0) {
    count.value = 1
  } else {
    plain--
  }
}
for (const [k, v] of Object.entries(props)) console.log(k, v)
try { reset() } catch (e) { throw new Error(e.message) }`,
	}
	sources["imports"] = "import Child from './Child.vue'\nimport * as utils from './utils'\nimport Base, { ref } from './base'\nexport { ref }"
	for name, source := range sources {
		t.Run("should print stably for "+name, func(t *testing.T) {
			first := output.Stringify(parseModule(t, source), false)
			second := output.Stringify(parseModule(t, first), false)
			if first != second {
				t.Errorf("round trip mismatch (-first +second):\n%s", cmp.Diff(first, second))
			}
			minified := output.Stringify(parseModule(t, first), true)
			again := output.Stringify(parseModule(t, minified), true)
			if minified != again {
				t.Errorf("minified round trip mismatch (-first +second):\n%s", cmp.Diff(minified, again))
			}
		})
	}
}

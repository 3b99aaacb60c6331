package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/expression_parser"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
)

func fixtureMetadata() *binding.Metadata {
	vars := &binding.LegacyVars{
		Props:    []string{"title"},
		Data:     []string{"msg"},
		Computed: []string{"full"},
		Methods:  []string{"greet"},
		Inject:   []string{"theme"},
		Setup:    []string{"legacySetup"},
		Imports:  []string{"helper"},
	}
	var setup binding.SetupBindings
	setup.Add("count", binding.BindingSetupReactive)
	setup.Add("double", binding.BindingComputed)
	setup.Add("MAX", binding.BindingLiteralConst)
	setup.Add("format", binding.BindingSetupPlain)
	setup.Add("size", binding.BindingProp)
	setup.Add("msg", binding.BindingSetupPlain)
	return binding.NewMetadata(vars, setup)
}

// scope 1 declares `item` and `index`, scope 2 (child of 1) declares `cell`
func fixtureScopes(t *testing.T) *template.ScopeRegistry {
	scopes := template.NewScopeRegistry()
	if _, err := scopes.Add(template.RootScope, "item", "index"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := scopes.Add(1, "cell"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return scopes
}

func transformText(t *testing.T, tr *Transformer, text string, scope template.ScopeID) (string, bool) {
	t.Helper()
	expr, err := expression_parser.ParseExpression(text)
	if err != nil {
		t.Fatalf("Unexpected parse error for %q: %v", text, err)
	}
	result, hasJS := tr.TransformScoped(expr, scope)
	return output.Stringify(result, false), hasJS
}

func readVarNames(expr output.OutputExpression) []string {
	var names []string
	output.Inspect(expr, func(e output.OutputExpression) bool {
		if v, ok := e.(*output.ReadVarExpr); ok {
			names = append(names, v.Name)
		}
		return true
	})
	return names
}

func TestTransformScoped(t *testing.T) {
	renderFn := NewTransformer(fixtureScopes(t), fixtureMetadata(), Options{Mode: template.GenerationModeRenderFn})
	inline := NewTransformer(fixtureScopes(t), fixtureMetadata(), Options{Mode: template.GenerationModeInline})

	t.Run("render function mode", func(t *testing.T) {
		t.Run("should prefix bindings by category", func(t *testing.T) {
			cases := map[string]string{
				"count":        "$setup.count",
				"double":       "$setup.double",
				"format(1)":    "$setup.format(1)",
				"size":         "$props.size",
				"title":        "$props.title",
				"full":         "$options.full",
				"greet()":      "$options.greet()",
				"theme":        "$options.theme",
				"legacySetup":  "$setup.legacySetup",
				"helper(x)":    "helper(_ctx.x)",
				"MAX + 1":      "MAX + 1",
				"unknown.prop": "_ctx.unknown.prop",
			}
			for input, expected := range cases {
				got, _ := transformText(t, renderFn, input, template.RootScope)
				if got != expected {
					t.Errorf("Expected %q, got %q", expected, got)
				}
			}
		})

		t.Run("should prefer setup bindings over options bindings", func(t *testing.T) {
			got, _ := transformText(t, renderFn, "msg", template.RootScope)
			if got != "$setup.msg" {
				t.Errorf("Expected %q, got %q", "$setup.msg", got)
			}
		})

		t.Run("should read data through $data", func(t *testing.T) {
			tr := NewTransformer(nil, binding.NewMetadata(&binding.LegacyVars{Data: []string{"msg"}}, nil), Options{})
			got, _ := transformText(t, tr, "msg.length", template.RootScope)
			if got != "$data.msg.length" {
				t.Errorf("Expected %q, got %q", "$data.msg.length", got)
			}
		})
	})

	t.Run("inline mode", func(t *testing.T) {
		t.Run("should unwrap refs and keep plain setup values bare", func(t *testing.T) {
			cases := map[string]string{
				"count + 1":   "count.value + 1",
				"double":      "double.value",
				"format(MAX)": "format(MAX)",
				"size":        "__props.size",
				"title":       "_ctx.title",
				"full":        "_ctx.full",
				"greet()":     "_ctx.greet()",
				"legacySetup": "_ctx.legacySetup",
				"helper":      "helper",
				"unknown":     "_ctx.unknown",
			}
			for input, expected := range cases {
				got, _ := transformText(t, inline, input, template.RootScope)
				if got != expected {
					t.Errorf("Expected %q, got %q", expected, got)
				}
			}
		})

		t.Run("should rewrite update targets", func(t *testing.T) {
			got, _ := transformText(t, inline, "count++", template.RootScope)
			if got != "count.value++" {
				t.Errorf("Expected %q, got %q", "count.value++", got)
			}
		})
	})

	t.Run("scopes", func(t *testing.T) {
		t.Run("should keep template scope variables bare", func(t *testing.T) {
			got, _ := transformText(t, renderFn, "item.name + index + cell", 2)
			expected := "item.name + index + cell"
			if got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})

		t.Run("should not see variables of inner scopes", func(t *testing.T) {
			got, _ := transformText(t, renderFn, "item + cell", 1)
			expected := "item + _ctx.cell"
			if got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})

		t.Run("should let scope variables shadow bindings", func(t *testing.T) {
			scopes := template.NewScopeRegistry()
			loop, _ := scopes.Add(template.RootScope, "count")
			tr := NewTransformer(scopes, fixtureMetadata(), Options{})
			got, _ := transformText(t, tr, "count", loop)
			if got != "count" {
				t.Errorf("Expected %q, got %q", "count", got)
			}
		})

		t.Run("should let arrow parameters shadow outer bindings", func(t *testing.T) {
			got, _ := transformText(t, renderFn, "list.map(count => count + double)", template.RootScope)
			expected := "_ctx.list.map((count) => count + $setup.double)"
			if got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})

		t.Run("should bind destructured parameters and declarations", func(t *testing.T) {
			expr, err := expression_parser.ParseExpression("function ({ target }, [first] = defaults) { const x = target.value; count = x + first }")
			if err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}
			result, _ := renderFn.TransformScoped(expr, template.RootScope)
			expected := []string{"_ctx", "target", "$setup", "x", "first"}
			if diff := cmp.Diff(expected, readVarNames(result)); diff != "" {
				t.Errorf("Identifier mismatch (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("object literals", func(t *testing.T) {
		t.Run("should expand shorthand properties", func(t *testing.T) {
			got, _ := transformText(t, renderFn, "({ count, item, MAX, other: count })", 1)
			expected := "({ count: $setup.count, item, MAX, other: $setup.count })"
			if got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})

		t.Run("should only rewrite computed keys", func(t *testing.T) {
			got, _ := transformText(t, renderFn, "({ count: 1, [key]: obj[prop] })", template.RootScope)
			expected := "({ count: 1, [_ctx.key]: _ctx.obj[_ctx.prop] })"
			if got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})
	})

	t.Run("should leave allowed globals and reserved names alone", func(t *testing.T) {
		got, _ := transformText(t, renderFn, "Math.max(a, 1) + JSON.stringify(undefined) + this.x", template.RootScope)
		expected := "Math.max(_ctx.a, 1) + JSON.stringify(undefined) + this.x"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should rewrite inside template literals", func(t *testing.T) {
		got, _ := transformText(t, renderFn, "`${count} of ${total}`", template.RootScope)
		expected := "`${$setup.count} of ${_ctx.total}`"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should report whether runtime evaluation is needed", func(t *testing.T) {
		cases := map[string]bool{
			"true || 1":          false,
			"MAX + 1":            false,
			"undefined":          false,
			"Math.PI":            false,
			"`static`":           false,
			"foo":                true,
			"count":              true,
			"(x => x)(1)":        true,
			"[1, 2].includes(3)": false,
		}
		for input, expected := range cases {
			_, hasJS := transformText(t, renderFn, input, template.RootScope)
			if hasJS != expected {
				t.Errorf("Expected hasJS(%q) to be %v, got %v", input, expected, hasJS)
			}
		}
	})

	t.Run("should be deterministic", func(t *testing.T) {
		input := "count ? item.name + format(title) : other"
		first, firstJS := transformText(t, renderFn, input, 1)
		for i := 0; i < 5; i++ {
			got, hasJS := transformText(t, renderFn, input, 1)
			if got != first || hasJS != firstJS {
				t.Fatalf("Expected %q, got %q", first, got)
			}
		}
		if first != "$setup.count ? item.name + $setup.format($props.title) : _ctx.other" {
			t.Errorf("Unexpected result %q", first)
		}
	})

	t.Run("should keep the span of rewritten identifiers", func(t *testing.T) {
		expr, _ := expression_parser.ParseExpression("a + count")
		result, _ := renderFn.TransformScoped(expr, template.RootScope)
		rhs := result.(*output.BinaryOperatorExpr).Rhs
		if span := rhs.GetSpan(); span.Start != 4 || span.End != 9 {
			t.Errorf("Expected span 4..9, got %d..%d", span.Start, span.End)
		}
	})
}

func TestResolve(t *testing.T) {
	tr := NewTransformer(fixtureScopes(t), fixtureMetadata(), Options{})

	t.Run("should follow the resolution order", func(t *testing.T) {
		cases := []struct {
			scope    template.ScopeID
			name     string
			expected Resolution
		}{
			{2, "item", Resolution{Kind: ResolutionLocal, Scope: 1}},
			{2, "cell", Resolution{Kind: ResolutionLocal, Scope: 2}},
			{0, "Math", Resolution{Kind: ResolutionGlobal}},
			{0, "msg", Resolution{Kind: ResolutionBinding, Binding: binding.Binding{Name: "msg", Type: binding.BindingSetupPlain, Origin: binding.OriginSetup}}},
			{0, "title", Resolution{Kind: ResolutionBinding, Binding: binding.Binding{Name: "title", Type: binding.BindingProp, Origin: binding.OriginOptions}}},
			{0, "nothing", Resolution{Kind: ResolutionContext}},
		}
		for _, c := range cases {
			if diff := cmp.Diff(c.expected, tr.Resolve(c.scope, c.name)); diff != "" {
				t.Errorf("Resolve(%d, %q) mismatch (-want +got):\n%s", c.scope, c.name, diff)
			}
		}
	})
}

func TestUsesNamespace(t *testing.T) {
	tr := NewTransformer(nil, fixtureMetadata(), Options{})
	t.Run("should detect namespaced reads", func(t *testing.T) {
		expr, _ := expression_parser.ParseExpression("count + other")
		result, _ := tr.TransformScoped(expr, template.RootScope)
		if !UsesNamespace(result) {
			t.Errorf("Expected $setup to be detected")
		}
		plain, _ := expression_parser.ParseExpression("other")
		result, _ = tr.TransformScoped(plain, template.RootScope)
		if UsesNamespace(result) {
			t.Errorf("Expected _ctx reads not to count")
		}
	})
}

package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAttribute(t *testing.T) {
	cases := []struct {
		raw      string
		expected Attribute
	}{
		{"class", Attribute{Kind: AttributeStatic, Name: "class", Value: "v"}},
		{":title", Attribute{Kind: AttributeBind, Name: "title", Value: "v"}},
		{"v-bind:title", Attribute{Kind: AttributeBind, Name: "title", Value: "v"}},
		{"@click.stop", Attribute{Kind: AttributeOn, Name: "click", Modifiers: []string{"stop"}, Value: "v"}},
		{"v-on:update:model-value", Attribute{Kind: AttributeOn, Name: "update:model-value", Value: "v"}},
		{"v-show", Attribute{Kind: AttributeDirective, Name: "show", Value: "v"}},
		{"v-focus.lazy", Attribute{Kind: AttributeDirective, Name: "focus", Modifiers: []string{"lazy"}, Value: "v"}},
		{"v-tooltip:top.delay", Attribute{Kind: AttributeDirective, Name: "tooltip", Argument: "top", Modifiers: []string{"delay"}, Value: "v"}},
	}
	for _, c := range cases {
		t.Run("should parse "+c.raw, func(t *testing.T) {
			got := ParseAttribute(c.raw, "v")
			if diff := cmp.Diff(c.expected, got); diff != "" {
				t.Errorf("ParseAttribute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseForExpression(t *testing.T) {
	t.Run("should split alias and source", func(t *testing.T) {
		cases := map[string][2]string{
			"item in items":              {"item", "items"},
			"(item, index) in list":      {"(item, index)", "list"},
			"{ id, name } of users":      {"{ id, name }", "users"},
			"  n in 10  ":                {"n", "10"},
			"(a, b) in store.rows(page)": {"(a, b)", "store.rows(page)"},
		}
		for input, expected := range cases {
			alias, source, ok := ParseForExpression(input)
			if !ok {
				t.Errorf("Expected %q to parse", input)
				continue
			}
			if alias != expected[0] || source != expected[1] {
				t.Errorf("Expected %q, got %q", expected, [2]string{alias, source})
			}
		}
	})

	t.Run("should reject malformed expressions", func(t *testing.T) {
		for _, input := range []string{"items", "in items", ""} {
			if _, _, ok := ParseForExpression(input); ok {
				t.Errorf("Expected %q to be rejected", input)
			}
		}
	})
}

func TestGroupConditionals(t *testing.T) {
	el := func(tag string, cond *Condition) *Element {
		return &Element{Tag: tag, Condition: cond}
	}

	t.Run("should fold an if/else-if/else run", func(t *testing.T) {
		h1 := el("h1", &Condition{Kind: ConditionIf, Expr: "a"})
		h2 := el("h2", &Condition{Kind: ConditionElseIf, Expr: "b"})
		h3 := el("h3", &Condition{Kind: ConditionElse})
		p := el("p", nil)
		got, err := GroupConditionals([]Node{h1, &Text{Value: "\n  "}, &Comment{Value: "x"}, h2, h3, p})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		expected := []Node{
			&ConditionalSeq{
				If:      ConditionalBranch{Condition: "a", Node: h1},
				ElseIfs: []ConditionalBranch{{Condition: "b", Node: h2}},
				Else:    h3,
			},
			p,
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("GroupConditionals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should keep whitespace after an unterminated run", func(t *testing.T) {
		h1 := el("h1", &Condition{Kind: ConditionIf, Expr: "a"})
		ws := &Text{Value: " "}
		p := el("p", nil)
		got, err := GroupConditionals([]Node{h1, ws, p})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(got) != 3 || got[1] != Node(ws) || got[2] != Node(p) {
			t.Errorf("Expected [seq, text, p], got %#v", got)
		}
	})

	t.Run("should start a new sequence on a second v-if", func(t *testing.T) {
		got, err := GroupConditionals([]Node{
			el("a", &Condition{Kind: ConditionIf, Expr: "x"}),
			el("b", &Condition{Kind: ConditionIf, Expr: "y"}),
			el("c", &Condition{Kind: ConditionElse}),
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 sequences, got %d", len(got))
		}
		if seq := got[1].(*ConditionalSeq); seq.Else == nil || seq.Else.Tag != "c" {
			t.Errorf("Expected the else to attach to the second sequence")
		}
	})

	t.Run("should reject a stray v-else", func(t *testing.T) {
		_, err := GroupConditionals([]Node{el("p", nil), el("h2", &Condition{Kind: ConditionElse})})
		if err == nil {
			t.Errorf("Expected an error for v-else without v-if")
		}
		_, err = GroupConditionals([]Node{
			el("h1", &Condition{Kind: ConditionIf, Expr: "a"}),
			el("h2", &Condition{Kind: ConditionElse}),
			el("h3", &Condition{Kind: ConditionElseIf, Expr: "b"}),
		})
		if err == nil {
			t.Errorf("Expected an error for v-else-if after v-else")
		}
	})
}

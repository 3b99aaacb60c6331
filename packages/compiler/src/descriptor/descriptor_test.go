package descriptor

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vuec-go/packages/compiler/src/template"
)

func parse(t *testing.T, lines ...string) *Descriptor {
	t.Helper()
	d, err := Parse([]byte(strings.Join(lines, "\n")), "test.yaml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return d
}

func TestParse(t *testing.T) {
	t.Run("should build the tree and the scope arena", func(t *testing.T) {
		d := parse(t,
			"template:",
			"  scopes:",
			"    - { parent: 0, vars: [item, index] }",
			"    - { parent: 1, vars: [tag] }",
			"  roots:",
			"    - element: ul",
			"      attrs:",
			"        class: list",
			"        ':title': heading",
			"        '@click.stop': onClick",
			"        disabled:",
			"      children:",
			"        - element: li",
			"          for: (item, index) in items",
			"          scope: 1",
			"          children:",
			"            - interpolation: item.name",
			"            - element: span",
			"              for: tag of item.tags",
			"              scope: 2",
			"              children:",
			"                - text: '#'",
			"                - interpolation: tag",
			"    - comment: end",
			"script: |",
			"  export default {}",
			"scriptSetup: const a = 1",
		)

		span := &template.Element{
			Tag:           "span",
			TemplateScope: 2,
			Children: []template.Node{
				&template.Text{Value: "#"},
				&template.Interpolation{Expr: "tag", TemplateScope: 2},
			},
		}
		li := &template.Element{
			Tag:           "li",
			TemplateScope: 1,
			Children: []template.Node{
				&template.Interpolation{Expr: "item.name", TemplateScope: 1},
				&template.For{Alias: "tag", Source: "item.tags", Node: span},
			},
		}
		expected := []template.Node{
			&template.Element{
				Tag: "ul",
				Attributes: []template.Attribute{
					{Kind: template.AttributeStatic, Name: "class", Value: "list"},
					{Kind: template.AttributeBind, Name: "title", Value: "heading"},
					{Kind: template.AttributeOn, Name: "click", Modifiers: []string{"stop"}, Value: "onClick"},
					{Kind: template.AttributeStatic, Name: "disabled"},
				},
				Children: []template.Node{
					&template.For{Alias: "(item, index)", Source: "items", Node: li},
				},
			},
			&template.Comment{Value: "end"},
		}
		if diff := cmp.Diff(expected, d.Roots); diff != "" {
			t.Errorf("Tree mismatch (-want +got):\n%s", diff)
		}
		if d.Scopes.Len() != 3 || d.Scopes.Parent(2) != 1 {
			t.Errorf("Unexpected scope arena of %d scopes", d.Scopes.Len())
		}
		if d.Script != "export default {}\n" || d.ScriptSetup != "const a = 1" {
			t.Errorf("Unexpected scripts %q, %q", d.Script, d.ScriptSetup)
		}
	})

	t.Run("should group conditional siblings", func(t *testing.T) {
		d := parse(t,
			"template:",
			"  roots:",
			"    - element: h1",
			"      if: foo",
			"    - text: '  '",
			"    - element: h2",
			"      else-if: bar",
			"    - comment: between",
			"    - element: h3",
			"      else: true",
			"    - element: p",
		)
		if len(d.Roots) != 2 {
			t.Fatalf("Expected 2 roots, got %d", len(d.Roots))
		}
		seq, ok := d.Roots[0].(*template.ConditionalSeq)
		if !ok {
			t.Fatalf("Expected a conditional sequence, got %T", d.Roots[0])
		}
		if seq.If.Condition != "foo" || len(seq.ElseIfs) != 1 || seq.ElseIfs[0].Condition != "bar" || seq.Else.Tag != "h3" {
			t.Errorf("Unexpected sequence %+v", seq)
		}
	})

	t.Run("should inherit the enclosing scope", func(t *testing.T) {
		d := parse(t,
			"template:",
			"  scopes: [{ parent: 0, vars: [x] }]",
			"  roots:",
			"    - element: div",
			"      for: x in xs",
			"      scope: 1",
			"      children:",
			"        - element: b",
			"          if: x",
		)
		loop := d.Roots[0].(*template.For)
		seq := loop.Node.Children[0].(*template.ConditionalSeq)
		if seq.If.Node.TemplateScope != 1 {
			t.Errorf("Expected scope 1, got %d", seq.If.Node.TemplateScope)
		}
	})
}

func TestParseErrors(t *testing.T) {
	cases := map[string][]string{
		"forward parent": {
			"template:",
			"  scopes: [{ parent: 2, vars: [a] }, { parent: 0, vars: [b] }]",
		},
		"undeclared scope": {
			"template:",
			"  roots: [{ element: div, scope: 3 }]",
		},
		"two kinds": {
			"template:",
			"  roots: [{ element: div, text: hi }]",
		},
		"no kind": {
			"template:",
			"  roots: [{ attrs: { a: b } }]",
		},
		"else without if": {
			"template:",
			"  roots: [{ element: div, else: true }]",
		},
		"if with for": {
			"template:",
			"  scopes: [{ parent: 0, vars: [x] }]",
			"  roots: [{ element: div, if: ok, for: x in xs, scope: 1 }]",
		},
		"for without scope": {
			"template:",
			"  roots: [{ element: div, for: x in xs }]",
		},
		"bad for": {
			"template:",
			"  scopes: [{ parent: 0, vars: [x] }]",
			"  roots: [{ element: div, for: xs, scope: 1 }]",
		},
		"two conditions": {
			"template:",
			"  roots: [{ element: div, if: a, else: true }]",
		},
		"attrs list": {
			"template:",
			"  roots: [{ element: div, attrs: [a] }]",
		},
		"nested attr": {
			"template:",
			"  roots: [{ element: div, attrs: { a: { b: c } } }]",
		},
		"bad yaml": {
			"template: [",
		},
	}
	for name, lines := range cases {
		t.Run("should reject "+name, func(t *testing.T) {
			if _, err := Parse([]byte(strings.Join(lines, "\n")), "bad.yaml"); err == nil {
				t.Errorf("Expected an error")
			} else if !strings.Contains(err.Error(), "bad.yaml") {
				t.Errorf("Expected the path in %q", err)
			}
		})
	}
}

package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/template/transform"
	"vuec-go/packages/compiler/src/util"
)

func newContext(scopes *template.ScopeRegistry, setup binding.SetupBindings, mode template.GenerationMode) *CodegenContext {
	tr := transform.NewTransformer(scopes, binding.NewMetadata(nil, setup), transform.Options{Mode: mode})
	return NewCodegenContext(tr, "test.vue")
}

func el(tag string, children ...template.Node) *template.Element {
	return &template.Element{Tag: tag, Children: children}
}

func text(value string) *template.Text {
	return &template.Text{Value: value}
}

func withAttrs(e *template.Element, attrs ...[2]string) *template.Element {
	for _, a := range attrs {
		e.Attributes = append(e.Attributes, template.ParseAttribute(a[0], a[1]))
	}
	return e
}

func branch(condition string, node *template.Element) template.ConditionalBranch {
	return template.ConditionalBranch{Condition: condition, Node: node}
}

func TestGenerateConditionalSeq(t *testing.T) {
	t.Run("should use a comment placeholder without else", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		seq := &template.ConditionalSeq{If: branch("foo||true", el("h1", text("hello")))}
		expected := `_ctx.foo||true?_createElementVNode("h1",null,"hello"):_createCommentVNode("v-if")`
		if result := output.Stringify(c.GenerateConditionalSeq(seq), true); result != expected {
			t.Errorf("Expected %q, got %q", expected, result)
		}
	})

	t.Run("should use the else element as the last alternative", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		seq := &template.ConditionalSeq{
			If:   branch("foo||true", el("h1", text("hello"))),
			Else: el("h2", text("bye")),
		}
		expected := `_ctx.foo||true?_createElementVNode("h1",null,"hello"):_createElementVNode("h2",null,"bye")`
		if result := output.Stringify(c.GenerateConditionalSeq(seq), true); result != expected {
			t.Errorf("Expected %q, got %q", expected, result)
		}
	})

	threeBranches := func() *template.ConditionalSeq {
		return &template.ConditionalSeq{
			If: branch("foo", el("h1", text("hello"))),
			ElseIfs: []template.ConditionalBranch{
				branch("true", el("h2", text("hi"))),
				branch("undefined", el("h3", text("hey"))),
			},
		}
	}

	t.Run("should nest else-if branches to the right", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		expected := `_ctx.foo?_createElementVNode("h1",null,"hello"):true?_createElementVNode("h2",null,"hi"):undefined?_createElementVNode("h3",null,"hey"):_createCommentVNode("v-if")`
		if result := output.Stringify(c.GenerateConditionalSeq(threeBranches()), true); result != expected {
			t.Errorf("Expected %q, got %q", expected, result)
		}
	})

	t.Run("should replace the placeholder with the else element", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		seq := threeBranches()
		seq.Else = el("h4", text("bye"))
		expected := `_ctx.foo?_createElementVNode("h1",null,"hello"):true?_createElementVNode("h2",null,"hi"):undefined?_createElementVNode("h3",null,"hey"):_createElementVNode("h4",null,"bye")`
		if result := output.Stringify(c.GenerateConditionalSeq(seq), true); result != expected {
			t.Errorf("Expected %q, got %q", expected, result)
		}
	})

	t.Run("should produce a ternary of depth N+1", func(t *testing.T) {
		for n := 0; n < 5; n++ {
			c := newContext(nil, nil, template.GenerationModeRenderFn)
			seq := &template.ConditionalSeq{If: branch("first", el("p"))}
			for i := 0; i < n; i++ {
				seq.ElseIfs = append(seq.ElseIfs, branch("x > 1", el("p")))
			}
			result := c.GenerateConditionalSeq(seq)
			depth := 0
			for {
				cond, ok := result.(*output.ConditionalExpr)
				if !ok {
					break
				}
				depth++
				result = cond.FalseCase
			}
			if depth != n+1 {
				t.Errorf("Expected depth %d, got %d", n+1, depth)
			}
		}
	})

	t.Run("should drop else-if branches that do not parse", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		seq := &template.ConditionalSeq{
			If: branch("a", el("h1")),
			ElseIfs: []template.ConditionalBranch{
				branch("b", el("h2")),
				branch("c +", el("h3")),
				branch("d", el("h4")),
			},
		}
		expected := `_ctx.a?_createElementVNode("h1"):_ctx.b?_createElementVNode("h2"):_ctx.d?_createElementVNode("h4"):_createCommentVNode("v-if")`
		if result := output.Stringify(c.GenerateConditionalSeq(seq), true); result != expected {
			t.Errorf("Expected %q, got %q", expected, result)
		}
		if diff := cmp.Diff([]util.DiagnosticCode{util.DiagnosticDroppedBranch}, c.Diagnostics.Codes()); diff != "" {
			t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should give up on an unparsable if condition", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		seq := &template.ConditionalSeq{If: branch("a b", el("h1")), Else: el("h2")}
		if _, ok := c.GenerateConditionalSeq(seq).(*output.InvalidExpr); !ok {
			t.Errorf("Expected an invalid expression")
		}
		if diff := cmp.Diff([]util.DiagnosticCode{util.DiagnosticInvalidCondition}, c.Diagnostics.Codes()); diff != "" {
			t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should transform each condition in its branch scope", func(t *testing.T) {
		scopes := template.NewScopeRegistry()
		loop, _ := scopes.Add(template.RootScope, "item")
		c := newContext(scopes, nil, template.GenerationModeRenderFn)
		inLoop := el("b")
		inLoop.TemplateScope = loop
		seq := &template.ConditionalSeq{If: branch("item.ok", inLoop), Else: el("i")}
		expected := `item.ok?_createElementVNode("b"):_createElementVNode("i")`
		if result := output.Stringify(c.GenerateConditionalSeq(seq), true); result != expected {
			t.Errorf("Expected %q, got %q", expected, result)
		}
	})
}

func TestGenerateElement(t *testing.T) {
	t.Run("should open a block for the root element", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		root := withAttrs(el("div"), [2]string{"id", "app"}, [2]string{"class", "a"})
		expected := `(_openBlock(), _createElementBlock("div", { id: "app", class: "a" }))`
		result, _ := c.GenerateNode(root, true)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should merge class bindings and mark dynamic props", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		button := withAttrs(el("button", text("x")),
			[2]string{"class", "btn"},
			[2]string{":class", "{ active: on }"},
			[2]string{"@click", "inc"},
		)
		expected := `_createElementVNode("button", { class: _normalizeClass(["btn", { active: _ctx.on }]), onClick: _ctx.inc }, "x", 10, ["onClick"])`
		result, hasJS := c.GenerateNode(button, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
		if !hasJS {
			t.Errorf("Expected hasJS to be true")
		}
	})

	t.Run("should concatenate text and interpolations", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		p := el("p", text("Hello  "), &template.Interpolation{Expr: "name"}, text("!"))
		expected := `_createElementVNode("p", null, "Hello " + _toDisplayString(_ctx.name) + "!", 1)`
		result, _ := c.GenerateNode(p, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should create text vnodes next to elements", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		div := el("div", text("\n  "), el("span", text("a")), text(" "), &template.Interpolation{Expr: "x"}, text("\n"))
		expected := `_createElementVNode("div", null, [_createElementVNode("span", null, "a"), _createTextVNode(" " + _toDisplayString(_ctx.x), 1)])`
		result, _ := c.GenerateNode(div, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should wrap inline handlers with $event", func(t *testing.T) {
		var setup binding.SetupBindings
		setup.Add("count", binding.BindingSetupReactive)
		c := newContext(nil, setup, template.GenerationModeRenderFn)
		button := withAttrs(el("button"), [2]string{"@click", "count += $event.detail"})
		expected := `_createElementVNode("button", { onClick: ($event) => ($setup.count += $event.detail) }, null, 8, ["onClick"])`
		result, _ := c.GenerateNode(button, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should unwrap refs inside inline handlers", func(t *testing.T) {
		var setup binding.SetupBindings
		setup.Add("count", binding.BindingSetupReactive)
		c := newContext(nil, setup, template.GenerationModeInline)
		button := withAttrs(el("button"), [2]string{"@click", "count++"})
		expected := `_createElementVNode("button", { onClick: ($event) => (count.value++) }, null, 8, ["onClick"])`
		result, _ := c.GenerateNode(button, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should apply event modifiers", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		form := withAttrs(el("form"), [2]string{"@submit.prevent.once", "save"})
		expected := `_createElementVNode("form", { onSubmitOnce: _withModifiers(_ctx.save, ["prevent"]) }, null, 8, ["onSubmitOnce"])`
		result, _ := c.GenerateNode(form, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should not flag constant bindings", func(t *testing.T) {
		var setup binding.SetupBindings
		setup.Add("MAX", binding.BindingLiteralConst)
		c := newContext(nil, setup, template.GenerationModeRenderFn)
		input := withAttrs(el("input"), [2]string{":maxlength", "MAX"})
		expected := `_createElementVNode("input", { maxlength: MAX })`
		result, hasJS := c.GenerateNode(input, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
		if hasJS {
			t.Errorf("Expected hasJS to be false")
		}
	})

	t.Run("should attach runtime directives", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		div := withAttrs(el("div"), [2]string{"v-show", "ok"}, [2]string{"v-focus:input.lazy", ""})
		expected := `_withDirectives(_createElementVNode("div", null, null, 512), [[_vShow, _ctx.ok], [_resolveDirective("focus"), void 0, "input", { lazy: true }]])`
		result, _ := c.GenerateNode(div, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("components", func(t *testing.T) {
		t.Run("should resolve unknown components at runtime", func(t *testing.T) {
			c := newContext(nil, nil, template.GenerationModeRenderFn)
			comp := withAttrs(el("MyButton", text("Go")), [2]string{":label", "title"})
			expected := `_createVNode(_resolveComponent("MyButton"), { label: _ctx.title }, { default: _withCtx(() => [_createTextVNode("Go")]), _: 1 }, 8, ["label"])`
			result, _ := c.GenerateNode(comp, false)
			if got := output.Stringify(result, false); got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})

		t.Run("should use setup bindings for dash-case tags", func(t *testing.T) {
			var setup binding.SetupBindings
			setup.Add("MyButton", binding.BindingComponent)
			c := newContext(nil, setup, template.GenerationModeRenderFn)
			expected := `(_openBlock(), _createBlock($setup.MyButton))`
			result, _ := c.GenerateNode(el("my-button"), true)
			if got := output.Stringify(result, false); got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})

		t.Run("should compile named slots", func(t *testing.T) {
			scopes := template.NewScopeRegistry()
			slotScope, _ := scopes.Add(template.RootScope, "row")
			c := newContext(scopes, nil, template.GenerationModeRenderFn)
			header := withAttrs(el("template", &template.Interpolation{Expr: "row.title", TemplateScope: slotScope}), [2]string{"v-slot:header", "{ row }"})
			header.TemplateScope = slotScope
			comp := el("Table", header)
			expected := `_createVNode(_resolveComponent("Table"), null, { header: _withCtx(({ row }) => [_createTextVNode(_toDisplayString(row.title), 1)]), _: 1 })`
			result, _ := c.GenerateNode(comp, false)
			if got := output.Stringify(result, false); got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})
	})
}

func TestGenerateFor(t *testing.T) {
	t.Run("should render a keyed list in the loop scope", func(t *testing.T) {
		scopes := template.NewScopeRegistry()
		loop, _ := scopes.Add(template.RootScope, "item")
		c := newContext(scopes, nil, template.GenerationModeRenderFn)
		li := withAttrs(el("li", &template.Interpolation{Expr: "item.name", TemplateScope: loop}), [2]string{":key", "item.id"})
		li.TemplateScope = loop
		node := &template.For{Alias: "item", Source: "items", Node: li}
		expected := `(_openBlock(true), _createElementBlock(_Fragment, null, _renderList(_ctx.items, (item) => (_openBlock(), _createElementBlock("li", { key: item.id }, _toDisplayString(item.name), 1))), 128))`
		result, _ := c.GenerateNode(node, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should read the source in the parent scope", func(t *testing.T) {
		scopes := template.NewScopeRegistry()
		outer, _ := scopes.Add(template.RootScope, "row")
		inner, _ := scopes.Add(outer, "cell", "i")
		c := newContext(scopes, nil, template.GenerationModeRenderFn)
		td := el("td")
		td.TemplateScope = inner
		node := &template.For{Alias: "(cell, i)", Source: "row.cells", Node: td}
		expected := `(_openBlock(true), _createElementBlock(_Fragment, null, _renderList(row.cells, (cell, i) => (_openBlock(), _createElementBlock("td"))), 256))`
		result, _ := c.GenerateNode(node, false)
		if got := output.Stringify(result, false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("should return null for an empty template", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		if got := output.Stringify(c.GenerateTemplate([]template.Node{text("\n")}), false); got != "null" {
			t.Errorf("Expected %q, got %q", "null", got)
		}
	})

	t.Run("should wrap several roots in a stable fragment", func(t *testing.T) {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		roots := []template.Node{el("h1", text("a")), text("\n"), el("h2", text("b"))}
		expected := `(_openBlock(), _createElementBlock(_Fragment, null, [_createElementVNode("h1", null, "a"), _createElementVNode("h2", null, "b")], 64))`
		if got := output.Stringify(c.GenerateTemplate(roots), false); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})
}

func TestGenerateModule(t *testing.T) {
	helloWorld := func() output.OutputExpression {
		c := newContext(nil, nil, template.GenerationModeRenderFn)
		return c.GenerateTemplate([]template.Node{el("h1", text("hello"))})
	}

	t.Run("should attach the render method and import used helpers", func(t *testing.T) {
		definition := output.NewLiteralMapExpr([]*output.LiteralMapEntry{
			output.NewLiteralMapEntry("name", output.Literal("x"), false),
		})
		module := GenerateModule(helloWorld(), nil, definition, ModuleOptions{})
		expected := strings.Join([]string{
			`import { createElementBlock as _createElementBlock, openBlock as _openBlock } from "vue";`,
			`export default {`,
			`    name: "x",`,
			`    render(_ctx) {`,
			`        return (_openBlock(), _createElementBlock("h1", null, "hello"));`,
			`    }`,
			`};`,
		}, "\n")
		if got := output.Stringify(module, false); got != expected {
			t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
		}
	})

	t.Run("should use the full signature for namespaced reads", func(t *testing.T) {
		var setup binding.SetupBindings
		setup.Add("msg", binding.BindingSetupReactive)
		c := newContext(nil, setup, template.GenerationModeRenderFn)
		expr := c.GenerateTemplate([]template.Node{el("p", &template.Interpolation{Expr: "msg"})})
		module := GenerateModule(expr, nil, nil, ModuleOptions{})
		export := module.Body[len(module.Body)-1].(*output.ExportDefaultStmt)
		render := export.Expr.(*output.LiteralMapExpr).Entries[0].Value.(*output.FunctionExpr)
		var names []string
		for _, p := range render.Params {
			names = append(names, p.BoundNames()...)
		}
		expected := []string{"_ctx", "_cache", "$props", "$setup", "$data", "$options"}
		if diff := cmp.Diff(expected, names); diff != "" {
			t.Errorf("Params mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should omit the import when no helper is used", func(t *testing.T) {
		module := GenerateModule(output.NullExpr, output.NewModule(nil), nil, ModuleOptions{RuntimeModule: "@vue/runtime-dom"})
		expected := "export default{render(_ctx){return null;}};"
		if got := output.Stringify(module, true); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("should return the render closure from setup in inline mode", func(t *testing.T) {
		setupFn := output.NewFunctionExpr(nil, []output.OutputStatement{
			output.NewReturnStatement(output.NewLiteralMapExpr(nil)),
		}, nil)
		definition := output.NewLiteralMapExpr([]*output.LiteralMapEntry{output.NewMethodEntry("setup", setupFn)})
		module := GenerateModule(helloWorld(), nil, definition, ModuleOptions{Mode: template.GenerationModeInline, SetupFn: setupFn, RuntimeModule: "vue"})
		expected := `import{createElementBlock as _createElementBlock,openBlock as _openBlock}from"vue";` +
			`export default{setup(){return (_ctx,_cache)=>(_openBlock(),_createElementBlock("h1",null,"hello"));}};`
		if got := output.Stringify(module, true); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})
}

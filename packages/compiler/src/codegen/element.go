package codegen

import (
	"strings"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/template/transform"
	"vuec-go/packages/compiler/src/util"
)

// GenerateNode generates any template node. isRoot makes element nodes
// open their own block.
func (c *CodegenContext) GenerateNode(node template.Node, isRoot bool) (output.OutputExpression, bool) {
	switch n := node.(type) {
	case *template.Element:
		return c.GenerateElementOrComponent(n, isRoot)
	case *template.ConditionalSeq:
		return c.GenerateConditionalSeq(n), true
	case *template.For:
		return c.GenerateFor(n)
	case *template.Text:
		return output.NewExternalExpr(identifiers.CreateTextVNode).CallFn(output.Literal(n.Value)), false
	case *template.Interpolation:
		text, hasJS := c.generateTextConcatenation([]template.Node{n})
		return c.createTextVNode(text, hasJS), hasJS
	case *template.Comment:
		return c.generateCommentVNode(n.Value), false
	}
	return output.NewInvalidExpr(""), false
}

func (c *CodegenContext) generateCommentVNode(text string) output.OutputExpression {
	return output.NewExternalExpr(identifiers.CreateCommentVNode).CallFn(output.Literal(text))
}

// GenerateElementOrComponent generates `_createElementVNode(tag, props,
// children, patchFlag, dynamicProps)` or its component counterpart
func (c *CodegenContext) GenerateElementOrComponent(el *template.Element, isRoot bool) (output.OutputExpression, bool) {
	component := c.isComponent(el.Tag)
	props := c.generateProps(el, component)

	var children output.OutputExpression
	patchFlag := props.patchFlag
	hasJS := props.hasJS
	if component {
		children = c.generateSlots(el)
	} else {
		var childFlag identifiers.PatchFlag
		var childrenJS bool
		children, childFlag, childrenJS = c.generateChildren(el.Children)
		patchFlag |= childFlag
		hasJS = hasJS || childrenJS
	}

	var tag output.OutputExpression
	var callee *output.ExternalReference
	switch {
	case component && isRoot:
		tag, callee = c.componentType(el.Tag), identifiers.CreateBlock
	case component:
		tag, callee = c.componentType(el.Tag), identifiers.CreateVNode
	case isRoot:
		tag, callee = output.Literal(el.Tag), identifiers.CreateElementBlock
	default:
		tag, callee = output.Literal(el.Tag), identifiers.CreateElementVNode
	}

	args := []output.OutputExpression{tag, orNull(props.expr), orNull(children)}
	if patchFlag != 0 {
		args = append(args, output.Literal(int(patchFlag)))
	}
	if len(props.dynamic) > 0 {
		names := make([]output.OutputExpression, len(props.dynamic))
		for i, name := range props.dynamic {
			names[i] = output.Literal(name)
		}
		args = append(args, output.NewLiteralArrayExpr(names))
	}
	vnode := output.OutputExpression(output.NewExternalExpr(callee).CallFn(trimTrailingNulls(args)...))

	if len(props.directives) > 0 {
		vnode = output.NewExternalExpr(identifiers.WithDirectives).CallFn(vnode, output.NewLiteralArrayExpr(props.directives))
	}
	if isRoot {
		vnode = openBlock(vnode, false)
	}
	return vnode, hasJS
}

// openBlock wraps vnode as `(_openBlock(), vnode)`
func openBlock(vnode output.OutputExpression, disableTracking bool) output.OutputExpression {
	var args []output.OutputExpression
	if disableTracking {
		args = append(args, output.Literal(true))
	}
	return output.NewParenthesizedExpr(output.NewCommaExpr([]output.OutputExpression{
		output.NewExternalExpr(identifiers.OpenBlock).CallFn(args...),
		vnode,
	}))
}

func orNull(expr output.OutputExpression) output.OutputExpression {
	if expr == nil {
		return output.NullExpr
	}
	return expr
}

func trimTrailingNulls(args []output.OutputExpression) []output.OutputExpression {
	for len(args) > 1 && args[len(args)-1] == output.NullExpr {
		args = args[:len(args)-1]
	}
	return args
}

// isComponent reports whether tag names a component rather than an element
func (c *CodegenContext) isComponent(tag string) bool {
	if _, ok := c.componentBinding(tag); ok {
		return true
	}
	return strings.Contains(tag, "-") || strings.ContainsAny(tag, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// componentBinding finds a setup binding usable as the component type
func (c *CodegenContext) componentBinding(tag string) (binding.Binding, bool) {
	setup := c.transformer.Bindings().Setup
	for _, name := range []string{tag, util.DashCaseToCamelCase(tag), util.PascalCase(tag)} {
		if b, ok := setup.Find(name); ok && b.Type != binding.BindingLiteralConst {
			return b, true
		}
	}
	return binding.Binding{}, false
}

// componentType is the first argument of `_createVNode`: a setup binding
// when one matches the tag, otherwise a runtime resolution by name
func (c *CodegenContext) componentType(tag string) output.OutputExpression {
	if b, ok := c.componentBinding(tag); ok {
		return c.transformer.Rewrite(b.Name, transform.Resolution{Kind: transform.ResolutionBinding, Binding: b})
	}
	return output.NewExternalExpr(identifiers.ResolveComponent).CallFn(output.Literal(tag))
}

// directiveType resolves `v-name` to a `vName` setup binding or a runtime
// lookup
func (c *CodegenContext) directiveType(name string) output.OutputExpression {
	if name == "show" {
		return output.NewExternalExpr(identifiers.VShow)
	}
	bindingName := "v" + util.PascalCase(name)
	if b, ok := c.transformer.Bindings().Setup.Find(bindingName); ok {
		return c.transformer.Rewrite(bindingName, transform.Resolution{Kind: transform.ResolutionBinding, Binding: b})
	}
	return output.NewExternalExpr(identifiers.ResolveDirective).CallFn(output.Literal(name))
}

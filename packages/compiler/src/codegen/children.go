package codegen

import (
	"regexp"
	"strings"

	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/util"
)

var whitespaceRun = regexp.MustCompile(`[ \t\r\n\f]+`)

func isWhitespace(s string) bool {
	return strings.TrimLeft(s, " \t\r\n\f") == ""
}

func isTextual(node template.Node) bool {
	switch node.(type) {
	case *template.Text, *template.Interpolation:
		return true
	}
	return false
}

// condenseWhitespace drops whitespace-only text at the edges, next to
// comments and between elements when it spans a line. Other whitespace runs
// collapse to a single space.
func condenseWhitespace(nodes []template.Node) []template.Node {
	result := make([]template.Node, 0, len(nodes))
	for i, node := range nodes {
		text, ok := node.(*template.Text)
		if !ok {
			result = append(result, node)
			continue
		}
		if !isWhitespace(text.Value) {
			result = append(result, &template.Text{Value: whitespaceRun.ReplaceAllString(text.Value, " ")})
			continue
		}
		if i == 0 || i == len(nodes)-1 {
			continue
		}
		prev, next := nodes[i-1], nodes[i+1]
		_, prevComment := prev.(*template.Comment)
		_, nextComment := next.(*template.Comment)
		if prevComment || nextComment {
			continue
		}
		if !isTextual(prev) && !isTextual(next) && strings.ContainsAny(text.Value, "\r\n") {
			continue
		}
		result = append(result, &template.Text{Value: " "})
	}
	return result
}

// generateTextConcatenation joins a run of text and interpolation nodes
// into `"a" + _toDisplayString(expr) + "b"`
func (c *CodegenContext) generateTextConcatenation(run []template.Node) (output.OutputExpression, bool) {
	var result output.OutputExpression
	hasJS := false
	appendPart := func(part output.OutputExpression) {
		if result == nil {
			result = part
			return
		}
		result = output.NewBinaryOperatorExpr(output.BinaryOperatorPlus, result, part)
	}
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			appendPart(output.Literal(pending.String()))
			pending.Reset()
		}
	}
	for _, node := range run {
		switch n := node.(type) {
		case *template.Text:
			pending.WriteString(n.Value)
		case *template.Interpolation:
			flush()
			expr, js := c.transformExpression(n.Expr, n.TemplateScope, "interpolation")
			hasJS = hasJS || js
			appendPart(output.NewExternalExpr(identifiers.ToDisplayString).CallFn(expr))
		}
	}
	flush()
	if result == nil {
		result = output.Literal("")
	}
	return result, hasJS
}

func (c *CodegenContext) createTextVNode(text output.OutputExpression, dynamic bool) output.OutputExpression {
	args := []output.OutputExpression{text}
	if dynamic {
		args = append(args, output.Literal(int(identifiers.PatchFlagText)))
	}
	return output.NewExternalExpr(identifiers.CreateTextVNode).CallFn(args...)
}

// generateChildren produces the children argument of an element: nil, a
// text expression when every child is textual, or an array of vnodes.
func (c *CodegenContext) generateChildren(children []template.Node) (output.OutputExpression, identifiers.PatchFlag, bool) {
	nodes := condenseWhitespace(children)
	if len(nodes) == 0 {
		return nil, 0, false
	}
	textual := true
	for _, node := range nodes {
		if !isTextual(node) {
			textual = false
			break
		}
	}
	if textual {
		text, hasJS := c.generateTextConcatenation(nodes)
		if hasJS {
			return text, identifiers.PatchFlagText, true
		}
		return text, 0, false
	}
	entries, hasJS := c.generateChildArray(nodes)
	return output.NewLiteralArrayExpr(entries), 0, hasJS
}

// generateChildArray generates one vnode per child, merging adjacent text
// and interpolations into a single text vnode
func (c *CodegenContext) generateChildArray(nodes []template.Node) ([]output.OutputExpression, bool) {
	var entries []output.OutputExpression
	hasJS := false
	for i := 0; i < len(nodes); {
		if isTextual(nodes[i]) {
			j := i
			for j < len(nodes) && isTextual(nodes[j]) {
				j++
			}
			text, js := c.generateTextConcatenation(nodes[i:j])
			entries = append(entries, c.createTextVNode(text, js))
			hasJS = hasJS || js
			i = j
			continue
		}
		expr, js := c.GenerateNode(nodes[i], false)
		entries = append(entries, expr)
		hasJS = hasJS || js
		i++
	}
	return entries, hasJS
}

// generateSlots compiles component children into a slots object. A
// `<template v-slot:name="props">` child becomes a named slot; the rest
// fills the default slot.
func (c *CodegenContext) generateSlots(el *template.Element) output.OutputExpression {
	var defaults []template.Node
	var entries []*output.LiteralMapEntry
	for _, child := range el.Children {
		tpl, ok := child.(*template.Element)
		if !ok || tpl.Tag != "template" {
			defaults = append(defaults, child)
			continue
		}
		slot, found := slotDirective(tpl)
		if !found {
			defaults = append(defaults, child)
			continue
		}
		name := slot.Argument
		if name == "" {
			name = "default"
		}
		entries = append(entries, output.NewLiteralMapEntry(name, c.slotFunction(slot.Value, tpl.Children), false))
	}
	if nodes := condenseWhitespace(defaults); len(nodes) > 0 {
		entry := output.NewLiteralMapEntry("default", c.slotFunction("", nodes), false)
		entries = append([]*output.LiteralMapEntry{entry}, entries...)
	}
	if len(entries) == 0 {
		return nil
	}
	entries = append(entries, output.NewLiteralMapEntry("_", output.Literal(identifiers.SlotFlagStable), false))
	return output.NewLiteralMapExpr(entries)
}

func slotDirective(el *template.Element) (template.Attribute, bool) {
	for _, attr := range el.Attributes {
		if attr.Kind == template.AttributeDirective && attr.Name == "slot" {
			return attr, true
		}
	}
	return template.Attribute{}, false
}

// slotFunction is `_withCtx((props) => [children])`
func (c *CodegenContext) slotFunction(params string, children []template.Node) output.OutputExpression {
	body, _ := c.generateChildArray(condenseWhitespace(children))
	fn := output.NewArrowFunctionExpr(c.aliasParams(params), output.NewLiteralArrayExpr(body))
	return output.NewExternalExpr(identifiers.WithCtx).CallFn(fn)
}

// aliasParams parses a parameter list such as `item, index` or
// `{ id, name }` by parsing it as the head of an arrow function
func (c *CodegenContext) aliasParams(text string) []*output.FnParam {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = text[1 : len(text)-1]
	}
	expr, err := c.parseExpression("(" + text + ") => 0")
	if err != nil {
		c.Diagnostics.Warn(util.DiagnosticInvalidExpression, "parameters %q: %v", text, err)
		return nil
	}
	if arrow, ok := expr.(*output.ArrowFunctionExpr); ok {
		return arrow.Params
	}
	return nil
}

package codegen

import (
	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/util"
)

// GenerateConditionalSeq folds an if/else-if/else run into nested ternaries:
//
//	if ? a : elseIf ? b : else
//
// A missing else renders a `v-if` comment placeholder. An else-if whose
// condition does not parse is dropped; an unparsable if condition makes the
// whole run an invalid expression.
func (c *CodegenContext) GenerateConditionalSeq(seq *template.ConditionalSeq) output.OutputExpression {
	condition, err := c.parseExpression(seq.If.Condition)
	if err != nil {
		c.Diagnostics.Warn(util.DiagnosticInvalidCondition, "v-if %q: %v", seq.If.Condition, err)
		log.Debugf("invalid v-if condition %q: %v", seq.If.Condition, err)
		return output.NewInvalidExpr(seq.If.Condition)
	}
	parts := c.appendBranch(nil, condition, seq.If.Node)

	for i, branch := range seq.ElseIfs {
		condition, err := c.parseExpression(branch.Condition)
		if err != nil {
			c.Diagnostics.Warn(util.DiagnosticDroppedBranch, "v-else-if #%d %q: %v", i+1, branch.Condition, err)
			log.Debugf("dropping v-else-if %q: %v", branch.Condition, err)
			continue
		}
		parts = c.appendBranch(parts, condition, branch.Node)
	}

	if seq.Else != nil {
		alternate, _ := c.GenerateNode(seq.Else, false)
		parts = append(parts, alternate)
	} else {
		parts = append(parts, c.generateCommentVNode(template.ConditionIf.String()))
	}

	for len(parts) > 1 {
		n := len(parts)
		folded := output.NewConditionalExpr(parts[n-3], parts[n-2], parts[n-1])
		parts = append(parts[:n-3], folded)
	}
	return parts[0]
}

func (c *CodegenContext) appendBranch(parts []output.OutputExpression, condition output.OutputExpression, node *template.Element) []output.OutputExpression {
	condition, _ = c.transformer.TransformScoped(condition, node.TemplateScope)
	consequent, _ := c.GenerateNode(node, false)
	return append(parts, condition, consequent)
}

// GenerateFor renders a v-for node as a fragment block over `_renderList`.
// The source is read in the parent of the loop scope, the child in the loop
// scope itself.
func (c *CodegenContext) GenerateFor(f *template.For) (output.OutputExpression, bool) {
	loopScope := f.Node.TemplateScope
	source, _ := c.transformExpression(f.Source, c.transformer.Scopes().Parent(loopScope), "v-for source")

	params := c.aliasParams(f.Alias)
	if params == nil {
		if scope := c.transformer.Scopes().Get(loopScope); scope != nil {
			for _, name := range scope.Variables {
				params = append(params, output.NewFnParam(name))
			}
		}
	}
	child, _ := c.GenerateNode(f.Node, true)
	list := output.NewExternalExpr(identifiers.RenderList).CallFn(source, output.NewArrowFunctionExpr(params, child))

	flag := identifiers.PatchFlagUnkeyedFragment
	if hasKey(f.Node) {
		flag = identifiers.PatchFlagKeyedFragment
	}
	fragment := output.NewExternalExpr(identifiers.CreateElementBlock).CallFn(
		output.NewExternalExpr(identifiers.Fragment),
		output.NullExpr,
		list,
		output.Literal(int(flag)),
	)
	return openBlock(fragment, true), true
}

func hasKey(el *template.Element) bool {
	for _, attr := range el.Attributes {
		if attr.Name == "key" && (attr.Kind == template.AttributeBind || attr.Kind == template.AttributeStatic) {
			return true
		}
	}
	return false
}

// GenerateTemplate generates the expression returned by the render
// function. Several roots are wrapped in a stable fragment.
func (c *CodegenContext) GenerateTemplate(roots []template.Node) output.OutputExpression {
	nodes := condenseWhitespace(roots)
	switch len(nodes) {
	case 0:
		return output.NullExpr
	case 1:
		expr, _ := c.GenerateNode(nodes[0], true)
		return expr
	}
	children, _ := c.generateChildArray(nodes)
	fragment := output.NewExternalExpr(identifiers.CreateElementBlock).CallFn(
		output.NewExternalExpr(identifiers.Fragment),
		output.NullExpr,
		output.NewLiteralArrayExpr(children),
		output.Literal(int(identifiers.PatchFlagStableFragment)),
	)
	return openBlock(fragment, false)
}

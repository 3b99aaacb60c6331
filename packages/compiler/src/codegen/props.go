package codegen

import (
	"vuec-go/packages/compiler/src/identifiers"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/util"
)

// EventParam is the local name of the DOM event inside inline handlers
const EventParam = "$event"

// modifiers that change the listener key instead of guarding the handler
var listenerOptionModifiers = map[string]bool{
	"once":    true,
	"capture": true,
	"passive": true,
}

type propsResult struct {
	// nil when the element has no props
	expr       output.OutputExpression
	patchFlag  identifiers.PatchFlag
	dynamic    []string
	directives []output.OutputExpression
	hasJS      bool
}

type propsBuilder struct {
	c         *CodegenContext
	scope     template.ScopeID
	component bool
	entries   []*output.LiteralMapEntry
	// class and style collect their static and dynamic parts in order
	classParts  []output.OutputExpression
	classEntry  *output.LiteralMapEntry
	styleParts  []output.OutputExpression
	styleEntry  *output.LiteralMapEntry
	dynamicKeys bool
	result      propsResult
}

func (c *CodegenContext) generateProps(el *template.Element, component bool) propsResult {
	b := &propsBuilder{c: c, scope: el.TemplateScope, component: component}
	for _, attr := range el.Attributes {
		switch attr.Kind {
		case template.AttributeStatic:
			b.static(attr)
		case template.AttributeBind:
			b.bind(attr)
		case template.AttributeOn:
			b.on(attr)
		case template.AttributeDirective:
			b.directive(attr)
		}
	}
	b.finishMerged(b.classEntry, b.classParts, identifiers.NormalizeClass)
	b.finishMerged(b.styleEntry, b.styleParts, identifiers.NormalizeStyle)

	if len(b.entries) > 0 {
		b.result.expr = output.NewLiteralMapExpr(b.entries)
	}
	if b.dynamicKeys {
		b.result.patchFlag = identifiers.PatchFlagFullProps
		b.result.dynamic = nil
	} else if len(b.result.dynamic) > 0 {
		b.result.patchFlag |= identifiers.PatchFlagProps
	}
	if b.result.patchFlag == 0 && len(b.result.directives) > 0 {
		b.result.patchFlag = identifiers.PatchFlagNeedPatch
	}
	return b.result
}

func (b *propsBuilder) add(key string, value output.OutputExpression) *output.LiteralMapEntry {
	entry := output.NewLiteralMapEntry(key, value, false)
	b.entries = append(b.entries, entry)
	return entry
}

func (b *propsBuilder) addDynamic(name string) {
	for _, existing := range b.result.dynamic {
		if existing == name {
			return
		}
	}
	b.result.dynamic = append(b.result.dynamic, name)
}

func (b *propsBuilder) static(attr template.Attribute) {
	value := output.Literal(attr.Value)
	switch attr.Name {
	case "class":
		b.mergePart(&b.classEntry, &b.classParts, "class", value)
	case "style":
		b.mergePart(&b.styleEntry, &b.styleParts, "style", value)
	default:
		b.add(attr.Name, value)
	}
}

// mergePart reserves the entry at the position of the first part so
// `class="a" :class="b"` keeps its place among the other props
func (b *propsBuilder) mergePart(entry **output.LiteralMapEntry, parts *[]output.OutputExpression, key string, part output.OutputExpression) {
	if *entry == nil {
		*entry = b.add(key, part)
	}
	*parts = append(*parts, part)
}

func (b *propsBuilder) bind(attr template.Attribute) {
	value, hasJS := b.c.transformExpression(attr.Value, b.scope, "binding")
	b.result.hasJS = b.result.hasJS || hasJS

	if attr.Name == "" {
		// v-bind="object"
		b.entries = append(b.entries, output.NewSpreadEntry(value))
		if hasJS {
			b.dynamicKeys = true
		}
		return
	}
	name := attr.Name
	if contains(attr.Modifiers, "camel") {
		name = util.DashCaseToCamelCase(name)
	}
	if !b.component && (name == "class" || name == "style") {
		if name == "class" {
			b.mergePart(&b.classEntry, &b.classParts, name, value)
		} else {
			b.mergePart(&b.styleEntry, &b.styleParts, name, value)
		}
		if hasJS {
			b.markMergedDynamic(name)
		}
		return
	}
	b.add(name, value)
	if hasJS && name != "key" {
		b.addDynamic(name)
	}
}

func (b *propsBuilder) markMergedDynamic(name string) {
	if name == "class" {
		b.result.patchFlag |= identifiers.PatchFlagClass
	} else {
		b.result.patchFlag |= identifiers.PatchFlagStyle
	}
}

// finishMerged turns the collected class or style parts into the entry
// value. A single static part stays a plain string.
func (b *propsBuilder) finishMerged(entry *output.LiteralMapEntry, parts []output.OutputExpression, normalize *output.ExternalReference) {
	if entry == nil {
		return
	}
	if len(parts) == 1 {
		if _, static := parts[0].(*output.LiteralExpr); static {
			entry.Value = parts[0]
			return
		}
		entry.Value = output.NewExternalExpr(normalize).CallFn(parts[0])
		return
	}
	entry.Value = output.NewExternalExpr(normalize).CallFn(output.NewLiteralArrayExpr(parts))
}

func (b *propsBuilder) on(attr template.Attribute) {
	key := "on" + util.Capitalize(util.DashCaseToCamelCase(attr.Name))
	var guards []output.OutputExpression
	for _, m := range attr.Modifiers {
		if listenerOptionModifiers[m] {
			key += util.Capitalize(m)
			continue
		}
		guards = append(guards, output.Literal(m))
	}

	handler, hasJS := b.c.generateHandler(attr.Value, b.scope)
	if len(guards) > 0 {
		handler = output.NewExternalExpr(identifiers.WithModifiers).CallFn(handler, output.NewLiteralArrayExpr(guards))
	}
	b.add(key, handler)
	b.result.hasJS = b.result.hasJS || hasJS
	if hasJS {
		b.addDynamic(key)
	}
}

func (b *propsBuilder) directive(attr template.Attribute) {
	switch attr.Name {
	case "html", "text":
		value, hasJS := b.c.transformExpression(attr.Value, b.scope, "v-"+attr.Name)
		key := "innerHTML"
		if attr.Name == "text" {
			key = "textContent"
			value = output.NewExternalExpr(identifiers.ToDisplayString).CallFn(value)
		}
		b.add(key, value)
		b.result.hasJS = b.result.hasJS || hasJS
		if hasJS {
			b.addDynamic(key)
		}
		return
	}

	dir := []output.OutputExpression{b.c.directiveType(attr.Name)}
	if attr.Value != "" {
		value, hasJS := b.c.transformExpression(attr.Value, b.scope, "v-"+attr.Name)
		dir = append(dir, value)
		b.result.hasJS = b.result.hasJS || hasJS
	}
	if attr.Argument != "" || len(attr.Modifiers) > 0 {
		if len(dir) == 1 {
			dir = append(dir, output.NewVoidExpr(output.Literal(0)))
		}
		dir = append(dir, output.Literal(attr.Argument))
	}
	if len(attr.Modifiers) > 0 {
		mods := make([]*output.LiteralMapEntry, len(attr.Modifiers))
		for i, m := range attr.Modifiers {
			mods[i] = output.NewLiteralMapEntry(m, output.Literal(true), false)
		}
		dir = append(dir, output.NewLiteralMapExpr(mods))
	}
	b.result.directives = append(b.result.directives, output.NewLiteralArrayExpr(dir))
}

// generateHandler compiles an event handler value. Identifiers, member
// reads and function literals are used as the handler; anything else runs
// inside `$event => (...)`.
func (c *CodegenContext) generateHandler(text string, scope template.ScopeID) (output.OutputExpression, bool) {
	if text == "" {
		return output.NewArrowFunctionExpr(nil, []output.OutputStatement{}), false
	}
	expr, err := c.parseExpression(text)
	if err == nil {
		switch output.Unparenthesize(expr).(type) {
		case *output.ReadVarExpr, *output.ReadPropExpr, *output.ReadKeyExpr,
			*output.FunctionExpr, *output.ArrowFunctionExpr:
			return c.transformer.TransformScoped(expr, scope)
		}
		arrow := output.NewArrowFunctionExpr(
			[]*output.FnParam{output.NewFnParam(EventParam)},
			output.NewParenthesizedExpr(expr),
		)
		return c.transformer.TransformScoped(arrow, scope)
	}

	// `a(); b = 1` is a statement list rather than an expression
	module, errs := c.parser.ParseModule(text, c.url)
	if len(errs) > 0 {
		c.Diagnostics.Warn(util.DiagnosticInvalidExpression, "handler %q: %v", text, err)
		log.Debugf("invalid handler %q: %v", text, err)
		return output.NewInvalidExpr(text), false
	}
	arrow := output.NewArrowFunctionExpr(
		[]*output.FnParam{output.NewFnParam(EventParam)},
		module.Body,
	)
	return c.transformer.TransformScoped(arrow, scope)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

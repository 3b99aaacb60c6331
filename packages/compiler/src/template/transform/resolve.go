// Package transform rewrites free identifiers of template expressions so
// they address script bindings the way the selected generation mode needs.
package transform

import (
	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
)

// Naming used by generated render code
const (
	CtxParam         = "_ctx"
	CacheParam       = "_cache"
	PropsNamespace   = "$props"
	SetupNamespace   = "$setup"
	DataNamespace    = "$data"
	OptionsNamespace = "$options"
	InlinePropsName  = "__props"
	ValueMarker      = "value"
)

// Globals readable from templates without a context prefix
var allowedGlobals = map[string]bool{
	"Infinity": true, "undefined": true, "NaN": true, "isFinite": true, "isNaN": true,
	"parseFloat": true, "parseInt": true, "decodeURI": true, "decodeURIComponent": true,
	"encodeURI": true, "encodeURIComponent": true, "Math": true, "Number": true, "Date": true,
	"Array": true, "Object": true, "Boolean": true, "String": true, "RegExp": true, "Map": true,
	"Set": true, "JSON": true, "Intl": true, "BigInt": true, "console": true, "Error": true,
	"Symbol": true,
}

// Names the parser reads as variables but which are never bindings
var reservedNames = map[string]bool{
	"this": true, "super": true, "import": true, "arguments": true,
}

// IsAllowedGlobal reports whether name is left untouched as a global
func IsAllowedGlobal(name string) bool {
	return allowedGlobals[name] || reservedNames[name]
}

// ResolutionKind tells where an identifier was found
type ResolutionKind int

const (
	// Declared by an enclosing template scope
	ResolutionLocal ResolutionKind = iota
	ResolutionGlobal
	ResolutionBinding
	// Not found anywhere; read from the render context
	ResolutionContext
)

// Resolution is the outcome of Resolve
type Resolution struct {
	Kind    ResolutionKind
	Scope   template.ScopeID
	Binding binding.Binding
}

// Options configures a Transformer for one compile
type Options struct {
	Mode template.GenerationMode
}

// Transformer resolves and rewrites template identifiers. It only reads
// the scope registry and the binding metadata.
type Transformer struct {
	scopes   *template.ScopeRegistry
	bindings *binding.Metadata
	options  Options
}

// NewTransformer creates a Transformer. Nil registries are treated as empty.
func NewTransformer(scopes *template.ScopeRegistry, bindings *binding.Metadata, options Options) *Transformer {
	if scopes == nil {
		scopes = template.NewScopeRegistry()
	}
	if bindings == nil {
		bindings = binding.NewMetadata(nil, nil)
	}
	return &Transformer{scopes: scopes, bindings: bindings, options: options}
}

// Mode is the generation mode the transformer rewrites for
func (t *Transformer) Mode() template.GenerationMode {
	return t.options.Mode
}

// Bindings exposes the binding metadata
func (t *Transformer) Bindings() *binding.Metadata {
	return t.bindings
}

// Scopes exposes the scope registry
func (t *Transformer) Scopes() *template.ScopeRegistry {
	return t.scopes
}

// Resolve finds the origin of name as seen from scope: template scopes
// first, then allowed globals, setup bindings, options bindings and
// finally the render context.
func (t *Transformer) Resolve(scope template.ScopeID, name string) Resolution {
	if id, ok := t.scopes.Lookup(scope, name); ok {
		return Resolution{Kind: ResolutionLocal, Scope: id}
	}
	if IsAllowedGlobal(name) {
		return Resolution{Kind: ResolutionGlobal}
	}
	if b, ok := t.bindings.Setup.Find(name); ok {
		return Resolution{Kind: ResolutionBinding, Binding: b}
	}
	if b, ok := t.bindings.Vars.Find(name); ok {
		return Resolution{Kind: ResolutionBinding, Binding: b}
	}
	return Resolution{Kind: ResolutionContext}
}

// Rewrite builds the expression reading name according to res. The result
// is a bare variable when no rewriting applies.
func (t *Transformer) Rewrite(name string, res Resolution) output.OutputExpression {
	switch res.Kind {
	case ResolutionLocal, ResolutionGlobal:
		return output.NewReadVarExpr(name)
	case ResolutionContext:
		return namespaced(CtxParam, name)
	}
	b := res.Binding
	if b.Type == binding.BindingLiteralConst {
		return output.NewReadVarExpr(name)
	}
	if t.options.Mode == template.GenerationModeInline {
		return rewriteInline(b)
	}
	return rewriteRenderFn(b)
}

func rewriteRenderFn(b binding.Binding) output.OutputExpression {
	switch b.Type {
	case binding.BindingProp:
		return namespaced(PropsNamespace, b.Name)
	case binding.BindingData:
		return namespaced(DataNamespace, b.Name)
	case binding.BindingImported:
		if b.Origin == binding.OriginOptions {
			// module scope is visible from the render function
			return output.NewReadVarExpr(b.Name)
		}
	case binding.BindingComputed, binding.BindingMethod, binding.BindingInjected:
		if b.Origin == binding.OriginOptions {
			return namespaced(OptionsNamespace, b.Name)
		}
	}
	return namespaced(SetupNamespace, b.Name)
}

// rewriteInline addresses bindings from inside the render closure that
// setup returns. Options-style bindings, props included, are only reachable
// through the context since render may not be hosted by setup at all.
func rewriteInline(b binding.Binding) output.OutputExpression {
	if b.Origin == binding.OriginOptions {
		if b.Type == binding.BindingImported {
			return output.NewReadVarExpr(b.Name)
		}
		return namespaced(CtxParam, b.Name)
	}
	switch b.Type {
	case binding.BindingProp:
		return namespaced(InlinePropsName, b.Name)
	case binding.BindingSetupReactive, binding.BindingComputed:
		return output.NewReadPropExpr(output.NewReadVarExpr(b.Name), ValueMarker)
	}
	return output.NewReadVarExpr(b.Name)
}

func namespaced(namespace, name string) output.OutputExpression {
	return output.NewReadPropExpr(output.NewReadVarExpr(namespace), name)
}

// UsesNamespace reports whether rewritten code reads one of the render
// function namespaces ($props, $setup, $data, $options)
func UsesNamespace(node interface{}) bool {
	found := false
	output.Inspect(node, func(expr output.OutputExpression) bool {
		if found {
			return false
		}
		if v, ok := expr.(*output.ReadVarExpr); ok {
			switch v.Name {
			case PropsNamespace, SetupNamespace, DataNamespace, OptionsNamespace:
				found = true
			}
		}
		return !found
	})
	return found
}

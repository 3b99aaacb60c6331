// Package identifiers lists the runtime helpers generated code may call
package identifiers

import (
	"vuec-go/packages/compiler/src/output"
)

// Runtime is the module every helper is imported from
const Runtime = "vue"

func helper(name string) *output.ExternalReference {
	return &output.ExternalReference{Name: name, ModuleName: Runtime}
}

// VNode construction
var (
	CreateElementVNode = helper("createElementVNode")
	CreateElementBlock = helper("createElementBlock")
	CreateVNode        = helper("createVNode")
	CreateBlock        = helper("createBlock")
	CreateTextVNode    = helper("createTextVNode")
	CreateCommentVNode = helper("createCommentVNode")
	Fragment           = helper("Fragment")
	OpenBlock          = helper("openBlock")
)

// Render helpers
var (
	ToDisplayString  = helper("toDisplayString")
	RenderList       = helper("renderList")
	NormalizeClass   = helper("normalizeClass")
	NormalizeStyle   = helper("normalizeStyle")
	ResolveComponent = helper("resolveComponent")
	ResolveDirective = helper("resolveDirective")
	WithDirectives   = helper("withDirectives")
	WithModifiers    = helper("withModifiers")
	WithCtx          = helper("withCtx")
	VShow            = helper("vShow")
)

// PatchFlag hints the runtime which parts of a vnode can change
type PatchFlag int

const (
	PatchFlagText            PatchFlag = 1
	PatchFlagClass           PatchFlag = 1 << 1
	PatchFlagStyle           PatchFlag = 1 << 2
	PatchFlagProps           PatchFlag = 1 << 3
	PatchFlagFullProps       PatchFlag = 1 << 4
	PatchFlagStableFragment  PatchFlag = 1 << 6
	PatchFlagKeyedFragment   PatchFlag = 1 << 7
	PatchFlagUnkeyedFragment PatchFlag = 1 << 8
	PatchFlagNeedPatch       PatchFlag = 1 << 9
)

// SlotFlagStable marks compiled slots that never change shape
const SlotFlagStable = 1

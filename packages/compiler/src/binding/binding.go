// Package binding describes where the identifiers a template can reference
// come from: options-style fields, setup-style declarations and imports.
package binding

import "fmt"

// BindingType is the category of a script binding
type BindingType int

const (
	// Declared in `props` or through defineProps
	BindingProp BindingType = iota
	// Returned from `data()`
	BindingData
	// `ref()`, `reactive()` and friends in a setup script
	BindingSetupReactive
	BindingComputed
	BindingMethod
	BindingInjected
	BindingImported
	// Any other setup declaration
	BindingSetupPlain
	// `const` initialized with a literal
	BindingLiteralConst
	BindingComponent
	BindingDirective
)

var bindingTypeNames = map[BindingType]string{
	BindingProp:          "prop",
	BindingData:          "data",
	BindingSetupReactive: "setup-reactive",
	BindingComputed:      "computed",
	BindingMethod:        "method",
	BindingInjected:      "injected",
	BindingImported:      "imported",
	BindingSetupPlain:    "setup-plain",
	BindingLiteralConst:  "literal-const",
	BindingComponent:     "component",
	BindingDirective:     "directive",
}

func (t BindingType) String() string {
	if name, ok := bindingTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BindingType(%d)", int(t))
}

// Origin tells which authoring style recorded a binding
type Origin int

const (
	OriginOptions Origin = iota
	OriginSetup
)

func (o Origin) String() string {
	if o == OriginSetup {
		return "setup"
	}
	return "options"
}

// Binding is a named identifier with its category
type Binding struct {
	Name   string
	Type   BindingType
	Origin Origin
}

func (b Binding) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Name, b.Type, b.Origin)
}

// SetupBindings are the bindings of a setup-style script in declaration order
type SetupBindings []Binding

// Add records a binding. Re-declarations are recorded too; the first one
// wins on lookup.
func (s *SetupBindings) Add(name string, bindingType BindingType) {
	*s = append(*s, Binding{Name: name, Type: bindingType, Origin: OriginSetup})
}

// Find returns the first binding with the given name
func (s SetupBindings) Find(name string) (Binding, bool) {
	for _, b := range s {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Names returns the binding names in order
func (s SetupBindings) Names() []string {
	names := make([]string, len(s))
	for i, b := range s {
		names[i] = b.Name
	}
	return names
}

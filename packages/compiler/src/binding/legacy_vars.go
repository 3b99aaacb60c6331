package binding

// LegacyVars aggregates what an options-style definition declares
type LegacyVars struct {
	Props      []string
	Data       []string
	Computed   []string
	Methods    []string
	Components []string
	Directives []string
	Emits      []string
	Inject     []string
	Expose     []string
	// Keys of the object returned by `setup()`
	Setup   []string
	Name    string
	Imports []string
}

// legacy categories in lookup order
type legacyCategory struct {
	names       func(v *LegacyVars) []string
	bindingType BindingType
}

var legacyLookupOrder = []legacyCategory{
	{func(v *LegacyVars) []string { return v.Props }, BindingProp},
	{func(v *LegacyVars) []string { return v.Setup }, BindingSetupPlain},
	{func(v *LegacyVars) []string { return v.Data }, BindingData},
	{func(v *LegacyVars) []string { return v.Computed }, BindingComputed},
	{func(v *LegacyVars) []string { return v.Methods }, BindingMethod},
	{func(v *LegacyVars) []string { return v.Inject }, BindingInjected},
	{func(v *LegacyVars) []string { return v.Imports }, BindingImported},
}

// Find resolves name against the instance-visible categories. Components,
// directives, emits and expose never shadow template identifiers.
func (v *LegacyVars) Find(name string) (Binding, bool) {
	if v == nil {
		return Binding{}, false
	}
	for _, category := range legacyLookupOrder {
		for _, n := range category.names(v) {
			if n == name {
				return Binding{Name: name, Type: category.bindingType, Origin: OriginOptions}, true
			}
		}
	}
	return Binding{}, false
}

// HasComponent reports whether a component is registered under name
func (v *LegacyVars) HasComponent(name string) bool {
	return v != nil && contains(v.Components, name)
}

// HasDirective reports whether a directive is registered under name
func (v *LegacyVars) HasDirective(name string) bool {
	return v != nil && contains(v.Directives, name)
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

// Metadata is the read-only binding view shared by the expression
// transformer and codegen
type Metadata struct {
	Vars  *LegacyVars
	Setup SetupBindings
}

// NewMetadata creates Metadata; nil vars are treated as empty
func NewMetadata(vars *LegacyVars, setup SetupBindings) *Metadata {
	if vars == nil {
		vars = &LegacyVars{}
	}
	return &Metadata{Vars: vars, Setup: setup}
}

// Lookup consults setup bindings first, then legacy categories
func (m *Metadata) Lookup(name string) (Binding, bool) {
	if m == nil {
		return Binding{}, false
	}
	if b, ok := m.Setup.Find(name); ok {
		return b, true
	}
	return m.Vars.Find(name)
}

// All lists every binding: setup bindings first, then the legacy
// categories in lookup order followed by registered components and
// directives. Shadowed names are listed once.
func (m *Metadata) All() []Binding {
	if m == nil {
		return nil
	}
	var all []Binding
	seen := map[string]bool{}
	add := func(b Binding) {
		if !seen[b.Name] {
			seen[b.Name] = true
			all = append(all, b)
		}
	}
	for _, b := range m.Setup {
		add(b)
	}
	categories := append(legacyLookupOrder[:len(legacyLookupOrder):len(legacyLookupOrder)],
		legacyCategory{func(v *LegacyVars) []string { return v.Components }, BindingComponent},
		legacyCategory{func(v *LegacyVars) []string { return v.Directives }, BindingDirective},
	)
	for _, category := range categories {
		for _, name := range category.names(m.Vars) {
			add(Binding{Name: name, Type: category.bindingType, Origin: OriginOptions})
		}
	}
	return all
}

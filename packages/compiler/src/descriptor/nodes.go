package descriptor

import (
	"fmt"

	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"vuec-go/packages/compiler/src/template"
)

var log = commonlog.GetLogger("vuec.descriptor")

// rawNode is a template node; exactly one of the kind keys is set
type rawNode struct {
	Element       string  `yaml:"element"`
	Text          *string `yaml:"text"`
	Interpolation string  `yaml:"interpolation"`
	Comment       *string `yaml:"comment"`

	// attrs is a mapping; its key order is the attribute order
	Attrs    yaml.Node `yaml:"attrs"`
	Children []rawNode `yaml:"children"`
	// Scope defaults to the scope of the enclosing node
	Scope *template.ScopeID `yaml:"scope"`

	If     *string `yaml:"if"`
	ElseIf *string `yaml:"else-if"`
	Else   bool    `yaml:"else"`
	For    string  `yaml:"for"`
}

func (n *rawNode) kinds() []string {
	var kinds []string
	if n.Element != "" {
		kinds = append(kinds, "element")
	}
	if n.Text != nil {
		kinds = append(kinds, "text")
	}
	if n.Interpolation != "" {
		kinds = append(kinds, "interpolation")
	}
	if n.Comment != nil {
		kinds = append(kinds, "comment")
	}
	return kinds
}

type builder struct {
	scopes *template.ScopeRegistry
}

func (b *builder) nodes(raw []rawNode, scope template.ScopeID, where string) ([]template.Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	nodes := make([]template.Node, 0, len(raw))
	for i := range raw {
		node, err := b.node(&raw[i], scope, fmt.Sprintf("%s[%d]", where, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	grouped, err := template.GroupConditionals(nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	return grouped, nil
}

func (b *builder) scope(raw *rawNode, inherited template.ScopeID, where string) (template.ScopeID, error) {
	if raw.Scope == nil {
		return inherited, nil
	}
	if int(*raw.Scope) >= b.scopes.Len() {
		return 0, fmt.Errorf("%s: scope %d is not declared", where, *raw.Scope)
	}
	return *raw.Scope, nil
}

func (b *builder) node(raw *rawNode, inherited template.ScopeID, where string) (template.Node, error) {
	kinds := raw.kinds()
	if len(kinds) != 1 {
		return nil, fmt.Errorf("%s: expected exactly one of element, text, interpolation or comment, got %v", where, kinds)
	}
	scope, err := b.scope(raw, inherited, where)
	if err != nil {
		return nil, err
	}

	switch kinds[0] {
	case "text":
		return &template.Text{Value: *raw.Text}, nil
	case "interpolation":
		return &template.Interpolation{Expr: raw.Interpolation, TemplateScope: scope}, nil
	case "comment":
		return &template.Comment{Value: *raw.Comment}, nil
	}
	return b.element(raw, scope, where)
}

func (b *builder) element(raw *rawNode, scope template.ScopeID, where string) (template.Node, error) {
	where = fmt.Sprintf("%s <%s>", where, raw.Element)
	el := &template.Element{Tag: raw.Element, TemplateScope: scope}

	condition, err := condition(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	el.Condition = condition

	if el.Attributes, err = attributes(&raw.Attrs); err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	if el.Children, err = b.nodes(raw.Children, scope, where); err != nil {
		return nil, err
	}

	if raw.For == "" {
		return el, nil
	}
	if el.Condition != nil {
		return nil, fmt.Errorf("%s: %s cannot be combined with v-for", where, el.Condition.Kind)
	}
	alias, source, ok := template.ParseForExpression(raw.For)
	if !ok {
		return nil, fmt.Errorf("%s: invalid v-for expression %q", where, raw.For)
	}
	if scope == template.RootScope || raw.Scope == nil {
		return nil, fmt.Errorf("%s: v-for needs its own scope", where)
	}
	return &template.For{Alias: alias, Source: source, Node: el}, nil
}

func condition(raw *rawNode) (*template.Condition, error) {
	var conditions []*template.Condition
	if raw.If != nil {
		conditions = append(conditions, &template.Condition{Kind: template.ConditionIf, Expr: *raw.If})
	}
	if raw.ElseIf != nil {
		conditions = append(conditions, &template.Condition{Kind: template.ConditionElseIf, Expr: *raw.ElseIf})
	}
	if raw.Else {
		conditions = append(conditions, &template.Condition{Kind: template.ConditionElse})
	}
	switch len(conditions) {
	case 0:
		return nil, nil
	case 1:
		return conditions[0], nil
	}
	return nil, fmt.Errorf("%s and %s on the same element", conditions[0].Kind, conditions[1].Kind)
}

// attributes reads an attrs mapping in document order. Scalar values are
// used as is; a null value is an attribute without a value.
func attributes(node *yaml.Node) ([]template.Attribute, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: attrs must be a mapping", node.Line)
	}
	attrs := make([]template.Attribute, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: attribute values must be scalars", key.Line)
		}
		text := value.Value
		if value.Tag == "!!null" {
			text = ""
		}
		attrs = append(attrs, template.ParseAttribute(key.Value, text))
	}
	return attrs, nil
}

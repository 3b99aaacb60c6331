// Package template holds the structured template tree consumed by codegen,
// together with the scope arena its nodes point into.
package template

// Node is any template node
type Node interface {
	isNode()
}

// ConditionKind marks an element as part of an if/else-if/else run
type ConditionKind int

const (
	ConditionIf ConditionKind = iota
	ConditionElseIf
	ConditionElse
)

func (k ConditionKind) String() string {
	switch k {
	case ConditionIf:
		return "v-if"
	case ConditionElseIf:
		return "v-else-if"
	default:
		return "v-else"
	}
}

// Condition is the conditional directive of an element. Expr is empty for
// v-else.
type Condition struct {
	Kind ConditionKind
	Expr string
}

// Element is an element or component node
type Element struct {
	Tag           string
	Attributes    []Attribute
	Children      []Node
	TemplateScope ScopeID
	Condition     *Condition
}

// Text is static text
type Text struct {
	Value string
}

// Interpolation is a `{{ expr }}` node
type Interpolation struct {
	Expr          string
	TemplateScope ScopeID
}

// Comment is a template comment
type Comment struct {
	Value string
}

// For is a `v-for` element. Node.TemplateScope is the loop scope declaring
// the aliases; Source is evaluated in its parent scope.
type For struct {
	Alias  string
	Source string
	Node   *Element
}

// ConditionalBranch is one if/else-if branch. The branch scope is
// Node.TemplateScope.
type ConditionalBranch struct {
	Condition string
	Node      *Element
}

// ConditionalSeq is a flattened if/else-if/else run of sibling elements
type ConditionalSeq struct {
	If      ConditionalBranch
	ElseIfs []ConditionalBranch
	Else    *Element
}

func (*Element) isNode()        {}
func (*Text) isNode()           {}
func (*Interpolation) isNode()  {}
func (*Comment) isNode()        {}
func (*For) isNode()            {}
func (*ConditionalSeq) isNode() {}

package template

import (
	"fmt"
	"strings"
)

// GroupConditionals replaces every if/else-if/else run among siblings with
// one ConditionalSeq. Whitespace text and comments between branches are
// dropped. A branch without a preceding v-if is an error.
func GroupConditionals(siblings []Node) ([]Node, error) {
	out := make([]Node, 0, len(siblings))
	var open *ConditionalSeq
	var pending []Node

	flush := func() {
		out = append(out, pending...)
		pending = nil
		open = nil
	}

	for _, node := range siblings {
		el, isElement := node.(*Element)
		if !isElement || el.Condition == nil {
			if open != nil && isSkippableBetweenBranches(node) {
				pending = append(pending, node)
				continue
			}
			flush()
			out = append(out, node)
			continue
		}

		switch el.Condition.Kind {
		case ConditionIf:
			flush()
			open = &ConditionalSeq{If: ConditionalBranch{Condition: el.Condition.Expr, Node: el}}
			out = append(out, open)
		case ConditionElseIf:
			if open == nil {
				return nil, fmt.Errorf("<%s v-else-if=%q> has no adjacent v-if", el.Tag, el.Condition.Expr)
			}
			pending = nil
			open.ElseIfs = append(open.ElseIfs, ConditionalBranch{Condition: el.Condition.Expr, Node: el})
		case ConditionElse:
			if open == nil {
				return nil, fmt.Errorf("<%s v-else> has no adjacent v-if", el.Tag)
			}
			pending = nil
			open.Else = el
			open = nil
		}
	}
	flush()
	return out, nil
}

func isSkippableBetweenBranches(node Node) bool {
	switch n := node.(type) {
	case *Comment:
		return true
	case *Text:
		return strings.TrimSpace(n.Value) == ""
	}
	return false
}

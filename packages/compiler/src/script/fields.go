package script

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/util"
)

// Shape is the syntactic form of an options field value
type Shape int

const (
	ShapeOther Shape = iota
	ShapeArray
	ShapeObject
	ShapeFunction
	ShapeArrow
	ShapeString
	ShapeTemplate
)

var shapeNames = [...]string{"other", "array", "object", "function", "arrow function", "string", "template literal"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "other"
}

// ShapeOf classifies the value of a definition entry. Methods count as
// functions.
func ShapeOf(entry *output.LiteralMapEntry) Shape {
	switch entry.Kind {
	case output.LiteralMapEntryMethod:
		return ShapeFunction
	case output.LiteralMapEntryKeyValue:
	default:
		return ShapeOther
	}
	switch v := output.Unparenthesize(entry.Value).(type) {
	case *output.LiteralArrayExpr:
		return ShapeArray
	case *output.LiteralMapExpr:
		return ShapeObject
	case *output.FunctionExpr:
		return ShapeFunction
	case *output.ArrowFunctionExpr:
		return ShapeArrow
	case *output.LiteralExpr:
		if _, ok := v.Value.(string); ok {
			return ShapeString
		}
	case *output.TemplateLiteralExpr:
		return ShapeTemplate
	}
	return ShapeOther
}

type fieldKey struct {
	field string
	shape Shape
}

// collector records the bindings a field declares
type collector func(value output.OutputExpression, vars *binding.LegacyVars)

var collectors = map[fieldKey]collector{
	{"props", ShapeArray}:  func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Props = append(vars.Props, arrayStrings(v)...) },
	{"props", ShapeObject}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Props = append(vars.Props, objectKeys(v)...) },

	{"data", ShapeFunction}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Data = append(vars.Data, returnedKeys(v)...) },
	{"data", ShapeArrow}:    func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Data = append(vars.Data, returnedKeys(v)...) },

	{"computed", ShapeObject}:   func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Computed = append(vars.Computed, objectKeys(v)...) },
	{"methods", ShapeObject}:    func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Methods = append(vars.Methods, objectKeys(v)...) },
	{"components", ShapeObject}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Components = append(vars.Components, objectKeys(v)...) },
	{"directives", ShapeObject}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Directives = append(vars.Directives, objectKeys(v)...) },

	{"emits", ShapeArray}:  func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Emits = append(vars.Emits, arrayStrings(v)...) },
	{"emits", ShapeObject}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Emits = append(vars.Emits, objectKeys(v)...) },

	{"inject", ShapeArray}:  func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Inject = append(vars.Inject, arrayStrings(v)...) },
	{"inject", ShapeObject}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Inject = append(vars.Inject, objectKeys(v)...) },

	{"expose", ShapeArray}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Expose = append(vars.Expose, arrayStrings(v)...) },

	{"setup", ShapeFunction}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Setup = append(vars.Setup, returnedKeys(v)...) },
	{"setup", ShapeArrow}:    func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Setup = append(vars.Setup, returnedKeys(v)...) },

	{"name", ShapeString}:   func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Name, _ = stringValue(v) },
	{"name", ShapeTemplate}: func(v output.OutputExpression, vars *binding.LegacyVars) { vars.Name, _ = stringValue(v) },
}

// KnownFields lists the recognized option names, sorted
var KnownFields = func() []string {
	seen := map[string]bool{}
	var fields []string
	for key := range collectors {
		if !seen[key.field] {
			seen[key.field] = true
			fields = append(fields, key.field)
		}
	}
	sort.Strings(fields)
	return fields
}()

func isKnownField(field string) bool {
	i := sort.SearchStrings(KnownFields, field)
	return i < len(KnownFields) && KnownFields[i] == field
}

// AnalyzeDefinition collects the bindings declared by the fields of an
// options object. Spreads and computed keys are ignored; unknown fields and
// unsupported shapes are recorded in diags.
func AnalyzeDefinition(definition *output.LiteralMapExpr, vars *binding.LegacyVars, diags *util.Diagnostics) {
	for _, entry := range definition.Entries {
		field, ok := entry.StaticKey()
		if !ok {
			continue
		}
		if !isKnownField(field) {
			if hint := suggestField(field); hint != "" {
				diags.Warn(util.DiagnosticUnknownField, "unknown field %q, did you mean %q?", field, hint)
			} else {
				diags.Warn(util.DiagnosticUnknownField, "unknown field %q", field)
			}
			continue
		}
		shape := ShapeOf(entry)
		collect, ok := collectors[fieldKey{field, shape}]
		if !ok {
			diags.Warn(util.DiagnosticSkippedFieldShape, "skipped: field %s with unsupported shape %s", field, shape)
			log.Debugf("skipped field %s with shape %s", field, shape)
			continue
		}
		collect(entry.Value, vars)
	}
}

// suggestField returns the known field closest to a misspelled one
func suggestField(field string) string {
	ranks := fuzzy.RankFindFold(field, KnownFields)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDistance := "", 3
	for _, known := range KnownFields {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(field), known); d < bestDistance {
			best, bestDistance = known, d
		}
	}
	return best
}

func arrayStrings(value output.OutputExpression) []string {
	arr, ok := output.Unparenthesize(value).(*output.LiteralArrayExpr)
	if !ok {
		return nil
	}
	var names []string
	for _, item := range arr.Entries {
		if s, ok := stringValue(item); ok {
			names = append(names, s)
		}
	}
	return names
}

func objectKeys(value output.OutputExpression) []string {
	obj, ok := output.Unparenthesize(value).(*output.LiteralMapExpr)
	if !ok {
		return nil
	}
	var keys []string
	for _, entry := range obj.Entries {
		if key, ok := entry.StaticKey(); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// stringValue reads a string literal or a template literal without
// substitutions
func stringValue(value output.OutputExpression) (string, bool) {
	switch v := output.Unparenthesize(value).(type) {
	case *output.LiteralExpr:
		s, ok := v.Value.(string)
		return s, ok
	case *output.TemplateLiteralExpr:
		if !v.IsStatic() {
			return "", false
		}
		var sb strings.Builder
		for _, el := range v.Elements {
			sb.WriteString(el.Text)
		}
		return sb.String(), true
	}
	return "", false
}

// returnedKeys reads the keys of the object literal a function returns:
// the expression body of an arrow, or the top-level return statements of a
// block body
func returnedKeys(value output.OutputExpression) []string {
	var body []output.OutputStatement
	switch fn := output.Unparenthesize(value).(type) {
	case *output.FunctionExpr:
		body = fn.Statements
	case *output.ArrowFunctionExpr:
		if expr, ok := fn.ExpressionBody(); ok {
			return objectKeys(expr)
		}
		body, _ = fn.BlockBody()
	default:
		return nil
	}
	var keys []string
	for _, stmt := range body {
		if ret, ok := stmt.(*output.ReturnStatement); ok && ret.Value != nil {
			keys = append(keys, objectKeys(ret.Value)...)
		}
	}
	return keys
}

package template

import (
	"regexp"
	"strings"
)

// AttributeKind classifies an element attribute
type AttributeKind int

const (
	// `name="value"`
	AttributeStatic AttributeKind = iota
	// `:name="expr"` or `v-bind:name="expr"`
	AttributeBind
	// `@name="handler"` or `v-on:name="handler"`
	AttributeOn
	// `v-name:arg.modifier="expr"`
	AttributeDirective
)

// Attribute is a parsed element attribute
type Attribute struct {
	Kind      AttributeKind
	Name      string
	Argument  string
	Modifiers []string
	Value     string
}

// ParseAttribute classifies a raw attribute name. Structural directives
// (v-if, v-for...) are expected to be consumed before this point.
func ParseAttribute(rawName, value string) Attribute {
	switch {
	case strings.HasPrefix(rawName, ":"):
		return bindAttribute(AttributeBind, rawName[1:], value)
	case strings.HasPrefix(rawName, "v-bind:"):
		return bindAttribute(AttributeBind, rawName[len("v-bind:"):], value)
	case strings.HasPrefix(rawName, "@"):
		return bindAttribute(AttributeOn, rawName[1:], value)
	case strings.HasPrefix(rawName, "v-on:"):
		return bindAttribute(AttributeOn, rawName[len("v-on:"):], value)
	case strings.HasPrefix(rawName, "v-"):
		rest := rawName[2:]
		name, argument := rest, ""
		if i := strings.IndexByte(rest, ':'); i >= 0 {
			name, argument = rest[:i], rest[i+1:]
		}
		attr := bindAttribute(AttributeDirective, argument, value)
		attr.Argument = attr.Name
		attr.Name = name
		if argument == "" {
			// modifiers directly on the directive name
			parts := strings.Split(name, ".")
			attr.Name = parts[0]
			if len(parts) > 1 {
				attr.Modifiers = parts[1:]
			}
		}
		return attr
	default:
		return Attribute{Kind: AttributeStatic, Name: rawName, Value: value}
	}
}

func bindAttribute(kind AttributeKind, name, value string) Attribute {
	parts := strings.Split(name, ".")
	attr := Attribute{Kind: kind, Name: parts[0], Value: value}
	if len(parts) > 1 {
		attr.Modifiers = parts[1:]
	}
	return attr
}

var forAliasRegexp = regexp.MustCompile(`^\s*([\s\S]*?)\s+(?:in|of)\s+(\S[\s\S]*?)\s*$`)

// ParseForExpression splits `alias in source` (or `of`)
func ParseForExpression(text string) (alias string, source string, ok bool) {
	m := forAliasRegexp.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return "", "", false
	}
	return m[1], m[2], true
}

package util

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var dashCaseRegexp = regexp.MustCompile(`-+([a-z0-9])`)

// DashCaseToCamelCase converts a dash-case string to camelCase
func DashCaseToCamelCase(input string) string {
	return dashCaseRegexp.ReplaceAllStringFunc(input, func(match string) string {
		parts := dashCaseRegexp.FindStringSubmatch(match)
		if len(parts) > 1 {
			return strings.ToUpper(parts[1])
		}
		return match
	})
}

// Capitalize upper-cases the first character
func Capitalize(input string) string {
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 {
		return input
	}
	return string(unicode.ToUpper(r)) + input[size:]
}

// PascalCase converts `my-comp` and `myComp` to `MyComp`
func PascalCase(input string) string {
	return Capitalize(DashCaseToCamelCase(input))
}

// IsPascalCase reports whether the name starts with an upper-case letter
func IsPascalCase(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

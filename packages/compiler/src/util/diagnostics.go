package util

import "fmt"

// DiagnosticCode identifies the kind of degradation a compile went through
type DiagnosticCode string

const (
	// An option field had a value shape no collector handles
	DiagnosticSkippedFieldShape DiagnosticCode = "skipped-field-shape"
	// An option field name is not recognized
	DiagnosticUnknownField DiagnosticCode = "unknown-field"
	// An else-if branch with an unparsable condition was left out
	DiagnosticDroppedBranch DiagnosticCode = "dropped-branch"
	// The if condition of a conditional sequence could not be parsed
	DiagnosticInvalidCondition DiagnosticCode = "invalid-condition"
	// The default export is neither an object literal nor a defineComponent call
	DiagnosticUnsupportedDefaultExport DiagnosticCode = "unsupported-default-export"
	// A binding, interpolation or loop source could not be parsed
	DiagnosticInvalidExpression DiagnosticCode = "invalid-expression"
)

// Diagnostic is one recorded degradation. Diagnostics never change the
// generated output.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Level   ParseErrorLevel
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%s]: %s", d.Level, d.Code, d.Message)
}

// Diagnostics is an ordered side list of diagnostics
type Diagnostics []Diagnostic

// Warn records a warning-level diagnostic
func (d *Diagnostics) Warn(code DiagnosticCode, format string, args ...interface{}) {
	*d = append(*d, Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Level: ParseErrorLevelWarning})
}

// Codes returns the codes in recording order
func (d Diagnostics) Codes() []DiagnosticCode {
	codes := make([]DiagnosticCode, len(d))
	for i, diag := range d {
		codes[i] = diag.Code
	}
	return codes
}

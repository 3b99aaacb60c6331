// Package codegen turns the template tree into render code and assembles
// the final component module.
package codegen

import (
	"github.com/tliron/commonlog"

	"vuec-go/packages/compiler/src/expression_parser"
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/template"
	"vuec-go/packages/compiler/src/template/transform"
	"vuec-go/packages/compiler/src/util"
)

var log = commonlog.GetLogger("vuec.codegen")

// CodegenContext carries the state of one template compile. Degradations
// are recorded in Diagnostics; generated code never depends on them.
type CodegenContext struct {
	transformer *transform.Transformer
	parser      *expression_parser.Parser
	url         string
	Diagnostics util.Diagnostics
}

// NewCodegenContext creates a context generating code with t. url names the
// template in diagnostics.
func NewCodegenContext(t *transform.Transformer, url string) *CodegenContext {
	return &CodegenContext{
		transformer: t,
		parser:      expression_parser.NewParser(expression_parser.NewLexer()),
		url:         url,
	}
}

// Mode is the generation mode of the compile
func (c *CodegenContext) Mode() template.GenerationMode {
	return c.transformer.Mode()
}

func (c *CodegenContext) parseExpression(text string) (output.OutputExpression, error) {
	expr, errs := c.parser.ParseExpression(text, c.url)
	if len(errs) > 0 {
		return nil, errs
	}
	return expr, nil
}

// transformExpression parses and rewrites an attribute or interpolation
// value. Unparsable text becomes an invalid expression placeholder.
func (c *CodegenContext) transformExpression(text string, scope template.ScopeID, what string) (output.OutputExpression, bool) {
	expr, err := c.parseExpression(text)
	if err != nil {
		c.Diagnostics.Warn(util.DiagnosticInvalidExpression, "%s %q: %v", what, text, err)
		log.Debugf("invalid %s %q: %v", what, text, err)
		return output.NewInvalidExpr(text), false
	}
	return c.transformer.TransformScoped(expr, scope)
}

package script

import (
	"vuec-go/packages/compiler/src/output"
	"vuec-go/packages/compiler/src/util"
)

const defineComponent = "defineComponent"

// TakeDefaultExport removes the first `export default` from module and
// returns its value as an object literal:
//
//	export default { ... }                  -> { ... }
//	export default defineComponent({ ... }) -> { ... }
//	export default expr                     -> { ...expr }
//
// A module without a default export yields `{}`.
func TakeDefaultExport(module *output.Module, diags *util.Diagnostics) *output.LiteralMapExpr {
	for i, stmt := range module.Body {
		export, ok := stmt.(*output.ExportDefaultStmt)
		if !ok {
			continue
		}
		module.Body = append(module.Body[:i:i], module.Body[i+1:]...)
		return normalizeDefaultExport(export.Expr, diags)
	}
	return output.NewLiteralMapExpr(nil)
}

func normalizeDefaultExport(expr output.OutputExpression, diags *util.Diagnostics) *output.LiteralMapExpr {
	expr = unwrapDefineComponent(output.Unparenthesize(expr))
	if obj, ok := expr.(*output.LiteralMapExpr); ok {
		return obj
	}
	diags.Warn(util.DiagnosticUnsupportedDefaultExport, "default export %s is not an object literal, spreading it", output.Stringify(expr, true))
	return output.NewLiteralMapExpr([]*output.LiteralMapEntry{output.NewSpreadEntry(expr)})
}

// unwrapDefineComponent returns the single non-spread argument of
// `defineComponent(arg)`, or expr unchanged
func unwrapDefineComponent(expr output.OutputExpression) output.OutputExpression {
	call, ok := expr.(*output.InvokeFunctionExpr)
	if !ok || len(call.Args) != 1 {
		return expr
	}
	callee, ok := call.Fn.(*output.ReadVarExpr)
	if !ok || callee.Name != defineComponent {
		return expr
	}
	if _, spread := call.Args[0].(*output.SpreadElementExpr); spread {
		return expr
	}
	return output.Unparenthesize(call.Args[0])
}

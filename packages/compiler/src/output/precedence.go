package output

// L is an operator precedence level. Higher binds tighter.
type L uint8

const (
	LLowest L = iota
	LComma
	LSpread
	LYield
	LAssign
	LConditional
	LNullishCoalescing
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponentiation
	LPrefix
	LPostfix
	LNew
	LCall
	LMember
)

var binaryPrecedence = map[BinaryOperator]L{
	BinaryOperatorNullishCoalesce:    LNullishCoalescing,
	BinaryOperatorOr:                 LLogicalOr,
	BinaryOperatorAnd:                LLogicalAnd,
	BinaryOperatorBitwiseOr:          LBitwiseOr,
	BinaryOperatorBitwiseXor:         LBitwiseXor,
	BinaryOperatorBitwiseAnd:         LBitwiseAnd,
	BinaryOperatorEquals:             LEquals,
	BinaryOperatorNotEquals:          LEquals,
	BinaryOperatorIdentical:          LEquals,
	BinaryOperatorNotIdentical:       LEquals,
	BinaryOperatorLower:              LCompare,
	BinaryOperatorLowerEquals:        LCompare,
	BinaryOperatorBigger:             LCompare,
	BinaryOperatorBiggerEquals:       LCompare,
	BinaryOperatorIn:                 LCompare,
	BinaryOperatorInstanceof:         LCompare,
	BinaryOperatorLeftShift:          LShift,
	BinaryOperatorRightShift:         LShift,
	BinaryOperatorUnsignedRightShift: LShift,
	BinaryOperatorPlus:               LAdd,
	BinaryOperatorMinus:              LAdd,
	BinaryOperatorMultiply:           LMultiply,
	BinaryOperatorDivide:             LMultiply,
	BinaryOperatorModulo:             LMultiply,
	BinaryOperatorExponentiation:     LExponentiation,
}

// BinaryOperatorPrecedence returns the level of a binary operator. Every
// assignment operator is LAssign.
func BinaryOperatorPrecedence(op BinaryOperator) L {
	if level, ok := binaryPrecedence[op]; ok {
		return level
	}
	return LAssign
}

// Precedence returns the level at which expr binds as printed
func Precedence(expr OutputExpression) L {
	switch e := expr.(type) {
	case *CommaExpr:
		return LComma
	case *ArrowFunctionExpr:
		return LAssign
	case *ConditionalExpr:
		return LConditional
	case *BinaryOperatorExpr:
		return BinaryOperatorPrecedence(e.Operator)
	case *NotExpr, *UnaryOperatorExpr, *TypeofExpr, *VoidExpr, *AwaitExpr:
		return LPrefix
	case *UpdateExpr:
		if e.Prefix {
			return LPrefix
		}
		return LPostfix
	case *LiteralExpr:
		if f, ok := e.Value.(float64); ok && (f < 0 || (f == 0 && e.Raw != "" && e.Raw[0] == '-')) {
			return LPrefix
		}
		return LMember
	case *InstantiateExpr:
		return LNew
	case *InvokeFunctionExpr, *TaggedTemplateLiteralExpr:
		return LCall
	}
	return LMember
}

// leftmost returns the expression printed first when expr is printed
// without parentheses.
func leftmost(expr OutputExpression) OutputExpression {
	for {
		switch e := expr.(type) {
		case *BinaryOperatorExpr:
			expr = e.Lhs
		case *ConditionalExpr:
			expr = e.Condition
		case *InvokeFunctionExpr:
			expr = e.Fn
		case *ReadPropExpr:
			expr = e.Receiver
		case *ReadKeyExpr:
			expr = e.Receiver
		case *TaggedTemplateLiteralExpr:
			expr = e.Tag
		case *CommaExpr:
			if len(e.Parts) == 0 {
				return expr
			}
			expr = e.Parts[0]
		case *UpdateExpr:
			if e.Prefix {
				return expr
			}
			expr = e.Expr
		default:
			return expr
		}
	}
}

// startsWithBrace reports whether expr would print starting with `{`
// (or `function`), which is ambiguous at the start of a statement.
func startsWithBrace(expr OutputExpression) bool {
	switch leftmost(expr).(type) {
	case *LiteralMapExpr, *FunctionExpr:
		return true
	}
	return false
}

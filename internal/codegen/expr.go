package codegen

import (
	"fmt"
	"strings"

	"izinoir/internal/ir"
)

// Noir binary operator precedence; comparisons bind looser than the
// bitwise operators.
var precedence = map[string]int{
	"==": 1, "!=": 1, "<": 1, ">": 1, "<=": 1, ">=": 1,
	"|": 2,
	"&": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
}

const comparisonLevel = 1

// Expr renders an IR expression as Noir source.
func Expr(e ir.Expr) string {
	return ir.VisitExpr[string](e, exprGenerator{})
}

type exprGenerator struct{}

func (exprGenerator) VisitIdentifier(e *ir.Identifier) string { return e.Name }

// String literals carry numeric text such as "0x1f" and are emitted bare.
func (exprGenerator) VisitLiteral(e *ir.Literal) string { return e.Value }

func (g exprGenerator) VisitBinary(e *ir.Binary) string {
	if ir.IsOrdering(e.Operator) {
		return fmt.Sprintf("%s %s %s", cast(e.Left), e.Operator, cast(e.Right))
	}

	prec := precedence[e.Operator]
	left := Expr(e.Left)
	if needsParens(e.Left, prec, false) {
		left = "(" + left + ")"
	}
	right := Expr(e.Right)
	if needsParens(e.Right, prec, true) {
		right = "(" + right + ")"
	}
	return fmt.Sprintf("%s %s %s", left, e.Operator, right)
}

func (exprGenerator) VisitUnary(e *ir.Unary) string {
	return e.Operator + wrapCompound(e.Operand)
}

func (exprGenerator) VisitMember(e *ir.Member) string {
	return fmt.Sprintf("%s[%s]", wrapOperand(e.Object), Expr(e.Index))
}

func (exprGenerator) VisitArrayLiteral(e *ir.ArrayLiteral) string {
	return "[" + list(e.Elements) + "]"
}

func (exprGenerator) VisitCall(e *ir.Call) string {
	if e.Method != "" {
		return fmt.Sprintf("%s.%s(%s)", wrapOperand(e.Callee), e.Method, list(e.Args))
	}
	return fmt.Sprintf("%s(%s)", Expr(e.Callee), list(e.Args))
}

func (exprGenerator) VisitIfExpr(e *ir.IfExpr) string {
	return fmt.Sprintf("if %s { %s } else { %s }", Expr(e.Condition), Expr(e.Consequent), Expr(e.Alternate))
}

// cast converts an ordering-comparison operand to u64; fields have no
// total order.
func cast(e ir.Expr) string {
	return "(" + wrapCompound(e) + " as u64)"
}

// wrapCompound parenthesizes binary and if-expression operands.
func wrapCompound(e ir.Expr) string {
	switch e.(type) {
	case *ir.Binary, *ir.IfExpr:
		return "(" + Expr(e) + ")"
	}
	return Expr(e)
}

// wrapOperand parenthesizes anything that is not a postfix-safe primary.
func wrapOperand(e ir.Expr) string {
	switch e.(type) {
	case *ir.Binary, *ir.IfExpr, *ir.Unary:
		return "(" + Expr(e) + ")"
	}
	return Expr(e)
}

func needsParens(child ir.Expr, parent int, right bool) bool {
	switch c := child.(type) {
	case *ir.IfExpr:
		return true
	case *ir.Binary:
		prec := precedence[c.Operator]
		if prec < parent {
			return true
		}
		if prec == comparisonLevel && parent == comparisonLevel {
			return true
		}
		return right && prec == parent
	}
	return false
}

func list(exprs []ir.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Expr(e)
	}
	return strings.Join(parts, ", ")
}

package codegen

import (
	"fmt"

	"izinoir/internal/ir"
)

const (
	FieldType = "Field"
	BoolType  = "bool"
)

// InferType returns the Noir type annotation for a declaration initializer.
// Only array and boolean literals get anything other than Field; an
// if-expression takes the type of its consequent.
func InferType(e ir.Expr) string {
	return ir.VisitExpr[string](e, typeInferrer{})
}

type typeInferrer struct{}

func (typeInferrer) VisitIdentifier(*ir.Identifier) string { return FieldType }

func (typeInferrer) VisitLiteral(e *ir.Literal) string {
	if e.Kind == ir.BooleanLiteral {
		return BoolType
	}
	return FieldType
}

func (typeInferrer) VisitBinary(*ir.Binary) string { return FieldType }
func (typeInferrer) VisitUnary(*ir.Unary) string   { return FieldType }
func (typeInferrer) VisitMember(*ir.Member) string { return FieldType }
func (typeInferrer) VisitCall(*ir.Call) string     { return FieldType }

func (typeInferrer) VisitArrayLiteral(e *ir.ArrayLiteral) string {
	element := FieldType
	if len(e.Elements) > 0 {
		element = InferType(e.Elements[0])
	}
	return fmt.Sprintf("[%s; %d]", element, len(e.Elements))
}

func (typeInferrer) VisitIfExpr(e *ir.IfExpr) string {
	return InferType(e.Consequent)
}

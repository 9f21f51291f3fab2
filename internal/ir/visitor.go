package ir

import "fmt"

type ExprVisitor[T any] interface {
	VisitIdentifier(*Identifier) T
	VisitLiteral(*Literal) T
	VisitBinary(*Binary) T
	VisitUnary(*Unary) T
	VisitMember(*Member) T
	VisitArrayLiteral(*ArrayLiteral) T
	VisitCall(*Call) T
	VisitIfExpr(*IfExpr) T
}

type StatementVisitor[T any] interface {
	VisitAssert(*Assert) T
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitAssignment(*Assignment) T
	VisitIfStatement(*IfStatement) T
	VisitForStatement(*ForStatement) T
}

// VisitExpr dispatches e to the matching visitor method.
func VisitExpr[T any](e Expr, v ExprVisitor[T]) T {
	switch n := e.(type) {
	case *Identifier:
		return v.VisitIdentifier(n)
	case *Literal:
		return v.VisitLiteral(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Member:
		return v.VisitMember(n)
	case *ArrayLiteral:
		return v.VisitArrayLiteral(n)
	case *Call:
		return v.VisitCall(n)
	case *IfExpr:
		return v.VisitIfExpr(n)
	default:
		panic(fmt.Sprintf("ir: unknown expression %T", e))
	}
}

// VisitStatement dispatches s to the matching visitor method.
func VisitStatement[T any](s Statement, v StatementVisitor[T]) T {
	switch n := s.(type) {
	case *Assert:
		return v.VisitAssert(n)
	case *VariableDeclaration:
		return v.VisitVariableDeclaration(n)
	case *Assignment:
		return v.VisitAssignment(n)
	case *IfStatement:
		return v.VisitIfStatement(n)
	case *ForStatement:
		return v.VisitForStatement(n)
	default:
		panic(fmt.Sprintf("ir: unknown statement %T", s))
	}
}

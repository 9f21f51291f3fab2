package analyzer

import (
	"fmt"
	"math/big"
	"strings"

	"izinoir/internal/ast"
	"izinoir/internal/errors"
	"izinoir/internal/ir"
)

// AnalyzeExpression converts one syntax-tree expression into IR.
func (a *Analyzer) AnalyzeExpression(node ast.Expr) (ir.Expr, error) {
	switch n := node.(type) {
	case *ast.Identifier:
		name, _ := normalizeName(n.Name)
		return &ir.Identifier{Name: name}, nil
	case *ast.Literal:
		return a.analyzeLiteral(n)
	case *ast.BinaryExpression:
		return a.analyzeBinary(n.Operator, n.Left, n.Right, n.Pos)
	case *ast.LogicalExpression:
		return a.analyzeBinary(n.Operator, n.Left, n.Right, n.Pos)
	case *ast.UnaryExpression:
		return a.analyzeUnary(n)
	case *ast.MemberExpression:
		return a.analyzeMember(n)
	case *ast.CallExpression:
		return a.analyzeCall(n)
	case *ast.ArrayExpression:
		elements, err := a.analyzeList(n.Elements, "array element")
		if err != nil {
			return nil, err
		}
		return &ir.ArrayLiteral{Elements: elements}, nil
	case *ast.ConditionalExpression:
		return a.analyzeConditional(n)
	default:
		return nil, errors.UnsupportedConstruct(kindName(node), node.NodePos())
	}
}

func (a *Analyzer) analyzeLiteral(n *ast.Literal) (ir.Expr, error) {
	var kind ir.LiteralKind
	value := n.Value
	switch n.Kind {
	case ast.NumberLiteral:
		kind = ir.NumberLiteral
		integer, ok := integerSpelling(n.Value)
		if !ok {
			return nil, errors.UnsupportedConstruct(fmt.Sprintf("non-integer number literal '%s'", n.Raw), n.Pos)
		}
		value = integer
	case ast.StringLiteral:
		kind = ir.StringLiteral
	case ast.BigIntLiteral:
		kind = ir.BigIntLiteral
	case ast.BooleanLiteral:
		kind = ir.BooleanLiteral
	default:
		return nil, errors.UnsupportedConstruct(n.Kind.String()+" literal", n.Pos)
	}
	return &ir.Literal{Kind: kind, Value: value}, nil
}

// integerSpelling returns a number literal as a Noir integer. Decimal and hex
// pass through; binary and octal are rewritten to decimal.
func integerSpelling(value string) (string, bool) {
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return value, true
	case strings.HasPrefix(lower, "0b"), strings.HasPrefix(lower, "0o"):
		n, ok := new(big.Int).SetString(value, 0)
		if !ok {
			return "", false
		}
		return n.String(), true
	case strings.ContainsAny(lower, ".e"):
		return "", false
	}
	return value, true
}

func (a *Analyzer) analyzeBinary(op string, left, right ast.Expr, pos ast.Position) (ir.Expr, error) {
	target, ok := BinaryOperator(op)
	if !ok {
		return nil, errors.UnsupportedOperator(op, pos, SupportedBinaryOperators())
	}

	l, err := a.AnalyzeExpression(left)
	if err != nil {
		return nil, errors.MalformedOperand(fmt.Sprintf("left operand of '%s'", op), left.NodePos(), err)
	}
	r, err := a.AnalyzeExpression(right)
	if err != nil {
		return nil, errors.MalformedOperand(fmt.Sprintf("right operand of '%s'", op), right.NodePos(), err)
	}

	return &ir.Binary{Left: l, Operator: target, Right: r}, nil
}

func (a *Analyzer) analyzeUnary(n *ast.UnaryExpression) (ir.Expr, error) {
	// -5 becomes a single literal instead of a negation node
	if lit, ok := n.Argument.(*ast.Literal); ok && n.Operator == "-" {
		if lit.Kind == ast.NumberLiteral || lit.Kind == ast.BigIntLiteral {
			folded, err := a.analyzeLiteral(lit)
			if err != nil {
				return nil, err
			}
			literal := folded.(*ir.Literal)
			literal.Value = "-" + literal.Value
			return literal, nil
		}
	}

	target, ok := UnaryOperator(n.Operator)
	if !ok {
		return nil, errors.UnsupportedOperator(n.Operator, n.Pos, SupportedUnaryOperators())
	}

	operand, err := a.AnalyzeExpression(n.Argument)
	if err != nil {
		return nil, errors.MalformedOperand(fmt.Sprintf("operand of '%s'", n.Operator), n.Argument.NodePos(), err)
	}
	return &ir.Unary{Operator: target, Operand: operand}, nil
}

func (a *Analyzer) analyzeMember(n *ast.MemberExpression) (ir.Expr, error) {
	if !n.Computed {
		property := n.Property.(*ast.Identifier)
		if property.Name != "length" {
			return nil, errors.UnsupportedProperty(property.Name, property.Pos)
		}

		object, err := a.AnalyzeExpression(n.Object)
		if err != nil {
			return nil, errors.MalformedOperand("array of '.length'", n.Object.NodePos(), err)
		}
		return &ir.Call{Callee: object, Method: "len", Args: []ir.Expr{}}, nil
	}

	object, err := a.AnalyzeExpression(n.Object)
	if err != nil {
		return nil, errors.MalformedOperand("indexed array", n.Object.NodePos(), err)
	}
	index, err := a.AnalyzeExpression(n.Property)
	if err != nil {
		return nil, errors.MalformedOperand("array index", n.Property.NodePos(), err)
	}
	return &ir.Member{Object: object, Index: index}, nil
}

func (a *Analyzer) analyzeCall(n *ast.CallExpression) (ir.Expr, error) {
	args, err := a.analyzeList(n.Arguments, "call argument")
	if err != nil {
		return nil, err
	}

	if member, ok := n.Callee.(*ast.MemberExpression); ok && !member.Computed {
		object, err := a.AnalyzeExpression(member.Object)
		if err != nil {
			return nil, errors.MalformedOperand("method receiver", member.Object.NodePos(), err)
		}
		return &ir.Call{
			Callee: object,
			Method: member.Property.(*ast.Identifier).Name,
			Args:   args,
		}, nil
	}

	callee, err := a.AnalyzeExpression(n.Callee)
	if err != nil {
		return nil, errors.MalformedOperand("callee", n.Callee.NodePos(), err)
	}
	return &ir.Call{Callee: callee, Args: args}, nil
}

func (a *Analyzer) analyzeConditional(n *ast.ConditionalExpression) (ir.Expr, error) {
	condition, err := a.AnalyzeExpression(n.Test)
	if err != nil {
		return nil, errors.MalformedOperand("ternary condition", n.Test.NodePos(), err)
	}
	consequent, err := a.AnalyzeExpression(n.Consequent)
	if err != nil {
		return nil, errors.MalformedOperand("ternary consequent", n.Consequent.NodePos(), err)
	}
	alternate, err := a.AnalyzeExpression(n.Alternate)
	if err != nil {
		return nil, errors.MalformedOperand("ternary alternate", n.Alternate.NodePos(), err)
	}
	return &ir.IfExpr{Condition: condition, Consequent: consequent, Alternate: alternate}, nil
}

func (a *Analyzer) analyzeList(nodes []ast.Expr, role string) ([]ir.Expr, error) {
	out := make([]ir.Expr, 0, len(nodes))
	for i, node := range nodes {
		e, err := a.AnalyzeExpression(node)
		if err != nil {
			return nil, errors.MalformedOperand(fmt.Sprintf("%s %d", role, i), node.NodePos(), err)
		}
		out = append(out, e)
	}
	return out, nil
}

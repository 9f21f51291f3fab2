package analyzer

import (
	"fmt"
	"math/big"

	"izinoir/internal/ast"
	"izinoir/internal/errors"
	"izinoir/internal/ir"
)

// LoopBounds is the range of an accepted counting loop.
type LoopBounds struct {
	Variable  string
	Start     ir.Expr
	End       ir.Expr
	Inclusive bool
}

// ValidateLoop accepts exactly
//
//	for (let i = start; i < end; i++)
//
// with '<=' for an inclusive bound and '++i' or 'i = i + 1' as alternative
// updates. Anything else fails with InvalidLoopShape.
func (a *Analyzer) ValidateLoop(loop *ast.ForStatement) (*LoopBounds, error) {
	variable, init, err := loopCounter(loop)
	if err != nil {
		return nil, err
	}

	test, err := loopTest(loop, variable)
	if err != nil {
		return nil, err
	}

	if err := loopUpdate(loop, variable); err != nil {
		return nil, err
	}

	start, err := a.AnalyzeExpression(init)
	if err != nil {
		return nil, errors.MalformedOperand("loop start", init.NodePos(), err)
	}
	end, err := a.AnalyzeExpression(test.Right)
	if err != nil {
		return nil, errors.MalformedOperand("loop bound", test.Right.NodePos(), err)
	}

	return &LoopBounds{
		Variable:  variable,
		Start:     start,
		End:       end,
		Inclusive: test.Operator == "<=",
	}, nil
}

func loopCounter(loop *ast.ForStatement) (string, ast.Expr, error) {
	decl, ok := loop.Init.(*ast.VariableDeclaration)
	if !ok {
		return "", nil, errors.InvalidLoopShape("loop must declare its counter, e.g. 'let i = 0'", loop.Pos)
	}
	if len(decl.Declarations) != 1 {
		return "", nil, errors.InvalidLoopShape(
			fmt.Sprintf("loop must declare exactly one counter, found %d", len(decl.Declarations)), decl.Pos)
	}

	declarator := decl.Declarations[0]
	id, ok := declarator.ID.(*ast.Identifier)
	if !ok {
		return "", nil, errors.InvalidLoopShape("loop counter must be a simple name", declarator.Pos)
	}
	if declarator.Init == nil {
		return "", nil, errors.InvalidLoopShape(
			fmt.Sprintf("loop counter '%s' must have a start value", id.Name), declarator.Pos)
	}

	name, _ := normalizeName(id.Name)
	return name, declarator.Init, nil
}

func loopTest(loop *ast.ForStatement, variable string) (*ast.BinaryExpression, error) {
	if loop.Test == nil {
		return nil, errors.InvalidLoopShape("loop must have an upper bound", loop.Pos)
	}

	test, ok := loop.Test.(*ast.BinaryExpression)
	if !ok {
		return nil, errors.InvalidLoopShape(
			fmt.Sprintf("loop condition must compare '%s' with '<' or '<='", variable), loop.Test.NodePos())
	}
	if !isCounter(test.Left, variable) {
		return nil, errors.InvalidLoopShape(
			fmt.Sprintf("loop condition must start with the counter '%s'", variable), test.Left.NodePos())
	}
	if test.Operator != "<" && test.Operator != "<=" {
		return nil, errors.InvalidLoopShape(
			fmt.Sprintf("loop condition operator '%s' is not supported, use '<' or '<='", test.Operator), test.Pos)
	}
	return test, nil
}

func loopUpdate(loop *ast.ForStatement, variable string) error {
	switch update := loop.Update.(type) {
	case *ast.UpdateExpression:
		if update.Operator == "++" && isCounter(update.Argument, variable) {
			return nil
		}
		if update.Operator == "--" {
			return errors.InvalidLoopShape(
				fmt.Sprintf("loop counter '%s' must increase by one, decrement is not supported", variable), update.Pos)
		}
	case *ast.AssignmentExpression:
		if update.Operator == "=" && isCounter(update.Left, variable) {
			if sum, ok := update.Right.(*ast.BinaryExpression); ok &&
				sum.Operator == "+" && isCounter(sum.Left, variable) && isOne(sum.Right) {
				return nil
			}
		}
	case nil:
		return errors.InvalidLoopShape("loop must update its counter", loop.Pos)
	}

	return errors.InvalidLoopShape(
		fmt.Sprintf("loop update must be '%[1]s++', '++%[1]s' or '%[1]s = %[1]s + 1'", variable), loop.Update.NodePos())
}

func isCounter(e ast.Expr, variable string) bool {
	id, ok := e.(*ast.Identifier)
	if !ok {
		return false
	}
	name, _ := normalizeName(id.Name)
	return name == variable
}

// isOne compares by numeric value, so 1, 0x1, 1.0, 1e0 and 1n all qualify.
func isOne(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return false
	}
	switch lit.Kind {
	case ast.BigIntLiteral:
		n, ok := new(big.Int).SetString(lit.Value, 0)
		return ok && n.Cmp(big.NewInt(1)) == 0
	case ast.NumberLiteral:
		f, ok := new(big.Float).SetString(lit.Value)
		return ok && f.Cmp(big.NewFloat(1)) == 0
	}
	return false
}

package analyzer

import (
	"fmt"

	"izinoir/internal/ast"
	"izinoir/internal/errors"
	"izinoir/internal/ir"
)

// AnalyzeBlock accepts a braced block or a single statement and returns the
// flat, ordered statement sequence. The result is never nil.
func (a *Analyzer) AnalyzeBlock(node ast.Stmt) ([]ir.Statement, error) {
	a.pushScope()
	defer a.popScope()

	body := []ast.Stmt{node}
	if block, ok := node.(*ast.BlockStatement); ok {
		body = block.Body
	}

	statements := make([]ir.Statement, 0, len(body))
	for _, stmt := range body {
		s, err := a.AnalyzeStatement(stmt)
		if err != nil {
			return nil, err
		}
		if s != nil {
			statements = append(statements, s)
		}
	}
	return statements, nil
}

// AnalyzeStatement converts one statement. It returns a nil statement and
// no error for statements that are not part of the circuit; those are
// recorded in Skipped.
func (a *Analyzer) AnalyzeStatement(node ast.Stmt) (ir.Statement, error) {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		return a.analyzeDeclaration(n)
	case *ast.ExpressionStatement:
		return a.analyzeExpressionStatement(n)
	case *ast.IfStatement:
		return a.analyzeIf(n)
	case *ast.ForStatement:
		return a.analyzeFor(n)
	default:
		a.skip(node, kindName(node))
		return nil, nil
	}
}

func (a *Analyzer) analyzeDeclaration(n *ast.VariableDeclaration) (ir.Statement, error) {
	if len(n.Declarations) != 1 {
		return nil, errors.InvalidDeclaration(
			fmt.Sprintf("expected exactly one declarator, found %d", len(n.Declarations)), n.Pos)
	}

	declarator := n.Declarations[0]
	id, ok := declarator.ID.(*ast.Identifier)
	if !ok {
		return nil, errors.InvalidDeclaration(
			fmt.Sprintf("declaration target must be a simple name, found %s", kindName(declarator.ID)),
			declarator.Pos)
	}
	if declarator.Init == nil {
		return nil, errors.InvalidDeclaration(
			fmt.Sprintf("variable '%s' must be initialized", id.Name), declarator.Pos)
	}

	name, mutable := normalizeName(id.Name)
	initializer, err := a.AnalyzeExpression(declarator.Init)
	if err != nil {
		return nil, err
	}

	a.symbols.Define(name, SymbolVariable, mutable, id.Pos)
	return &ir.VariableDeclaration{Name: name, Mutable: mutable, Initializer: initializer}, nil
}

func (a *Analyzer) analyzeExpressionStatement(n *ast.ExpressionStatement) (ir.Statement, error) {
	switch expr := n.Expression.(type) {
	case *ast.CallExpression:
		if callee, ok := expr.Callee.(*ast.Identifier); ok && callee.Name == "assert" {
			return a.analyzeAssert(expr)
		}
	case *ast.AssignmentExpression:
		if expr.Operator == "=" {
			return a.analyzeAssignment(expr)
		}
	}

	a.skip(n, kindName(n.Expression))
	return nil, nil
}

func (a *Analyzer) analyzeAssert(call *ast.CallExpression) (ir.Statement, error) {
	if len(call.Arguments) == 0 {
		return nil, errors.UnsupportedConstruct("assert() without a condition", call.Pos)
	}

	condition, err := a.AnalyzeExpression(call.Arguments[0])
	if err != nil {
		return nil, err
	}

	stmt := &ir.Assert{Condition: condition}
	if len(call.Arguments) > 1 {
		if msg, ok := call.Arguments[1].(*ast.Literal); ok {
			stmt.Message = msg.Value
		}
	}
	return stmt, nil
}

func (a *Analyzer) analyzeAssignment(n *ast.AssignmentExpression) (ir.Statement, error) {
	id, ok := n.Left.(*ast.Identifier)
	if !ok {
		return nil, errors.InvalidAssignmentTarget(
			fmt.Sprintf("assignment target must be a simple variable name, found %s", kindName(n.Left)),
			n.Left.NodePos())
	}

	name, _ := normalizeName(id.Name)
	if err := a.checkAssignable(name, id.Pos); err != nil {
		return nil, err
	}

	value, err := a.AnalyzeExpression(n.Right)
	if err != nil {
		return nil, err
	}
	return &ir.Assignment{Target: name, Value: value}, nil
}

func (a *Analyzer) analyzeIf(n *ast.IfStatement) (ir.Statement, error) {
	condition, err := a.AnalyzeExpression(n.Test)
	if err != nil {
		return nil, err
	}

	consequent, err := a.AnalyzeBlock(n.Consequent)
	if err != nil {
		return nil, err
	}

	stmt := &ir.IfStatement{Condition: condition, Consequent: consequent}
	if n.Alternate != nil {
		if stmt.Alternate, err = a.AnalyzeBlock(n.Alternate); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (a *Analyzer) analyzeFor(n *ast.ForStatement) (ir.Statement, error) {
	bounds, err := a.ValidateLoop(n)
	if err != nil {
		return nil, err
	}

	a.pushScope()
	defer a.popScope()
	a.symbols.Define(bounds.Variable, SymbolLoopVariable, false, n.Pos)

	body, err := a.AnalyzeBlock(n.Body)
	if err != nil {
		return nil, err
	}

	return &ir.ForStatement{
		Variable:  bounds.Variable,
		Start:     bounds.Start,
		End:       bounds.End,
		Inclusive: bounds.Inclusive,
		Body:      body,
	}, nil
}

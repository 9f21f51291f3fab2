package parser

import "izinoir/internal/ast"

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6, "===": 6, "!==": 6,
	"<": 7, "<=": 7, ">": 7, ">=": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
	"**": 11,
}

var rightAssociative = map[string]bool{
	"**": true,
}

// binaryChain folds a flat operand/operator sequence into a tree using
// precedence climbing.
type binaryChain struct {
	operands  []ast.Expr
	operators []string
	positions []ast.Position
	next      int
}

func (c *binaryChain) parse(minPrec int) ast.Expr {
	left := c.operands[c.next]

	for c.next < len(c.operators) {
		op := c.operators[c.next]
		prec := binaryPrecedence[op]
		if prec < minPrec {
			break
		}

		pos := c.positions[c.next]
		c.next++

		nextMin := prec + 1
		if rightAssociative[op] {
			nextMin = prec
		}
		right := c.parse(nextMin)

		left = makeBinary(op, pos, left, right)
	}

	return left
}

func makeBinary(op string, pos ast.Position, left, right ast.Expr) ast.Expr {
	if op == "&&" || op == "||" {
		return &ast.LogicalExpression{Pos: pos, Operator: op, Left: left, Right: right}
	}
	return &ast.BinaryExpression{Pos: pos, Operator: op, Left: left, Right: right}
}

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"izinoir/internal/ir"
)

const indentUnit = "    "

// Generate renders a circuit as a Noir main function. It has no failure
// path: everything inexpressible was rejected during analysis.
func Generate(circuit *ir.ParsedCircuit) string {
	g := &generator{}
	g.output.WriteString("fn main(" + signature(circuit) + ") {\n")
	g.depth = 1
	g.statements(circuit.Statements)
	g.output.WriteString("}\n")
	return g.output.String()
}

// signature lists private inputs first, then public ones, each group in
// index order.
func signature(circuit *ir.ParsedCircuit) string {
	params := make([]string, 0, len(circuit.PrivateParams)+len(circuit.PublicParams))
	for _, p := range circuit.PrivateParams {
		params = append(params, p.Name+": Field")
	}
	for _, p := range circuit.PublicParams {
		params = append(params, p.Name+": pub Field")
	}
	return strings.Join(params, ", ")
}

type generator struct {
	output strings.Builder
	depth  int
}

func (g *generator) line(format string, args ...any) {
	g.output.WriteString(strings.Repeat(indentUnit, g.depth))
	g.output.WriteString(fmt.Sprintf(format, args...))
	g.output.WriteString("\n")
}

func (g *generator) statements(stmts []ir.Statement) {
	for _, s := range stmts {
		ir.VisitStatement[struct{}](s, g)
	}
}

func (g *generator) block(stmts []ir.Statement) {
	g.depth++
	g.statements(stmts)
	g.depth--
}

func (g *generator) VisitAssert(s *ir.Assert) struct{} {
	if s.Message != "" {
		g.line("assert(%s, %s);", Expr(s.Condition), strconv.Quote(s.Message))
	} else {
		g.line("assert(%s);", Expr(s.Condition))
	}
	return struct{}{}
}

func (g *generator) VisitVariableDeclaration(s *ir.VariableDeclaration) struct{} {
	keyword := "let"
	if s.Mutable {
		keyword = "let mut"
	}
	g.line("%s %s: %s = %s;", keyword, s.Name, InferType(s.Initializer), Expr(s.Initializer))
	return struct{}{}
}

func (g *generator) VisitAssignment(s *ir.Assignment) struct{} {
	g.line("%s = %s;", s.Target, Expr(s.Value))
	return struct{}{}
}

func (g *generator) VisitIfStatement(s *ir.IfStatement) struct{} {
	g.line("if %s {", Expr(s.Condition))
	g.block(s.Consequent)
	if s.Alternate != nil {
		g.line("} else {")
		g.block(s.Alternate)
	}
	g.line("}")
	return struct{}{}
}

func (g *generator) VisitForStatement(s *ir.ForStatement) struct{} {
	rangeOp := ".."
	if s.Inclusive {
		rangeOp = "..="
	}
	g.line("for %s in %s%s%s {", s.Variable, Expr(s.Start), rangeOp, Expr(s.End))
	g.block(s.Body)
	g.line("}")
	return struct{}{}
}

package ir

import (
	"fmt"
	"strings"
)

// Printer provides pretty-printing for IR
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the string representation of a parsed circuit
func Print(circuit *ParsedCircuit) string {
	p := NewPrinter()
	p.printCircuit(circuit)
	return p.output.String()
}

// FormatExpr renders an expression in prefix form, e.g. (+ a 1).
func FormatExpr(e Expr) string {
	return VisitExpr[string](e, exprFormatter{})
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printCircuit(circuit *ParsedCircuit) {
	p.writeLine("CIRCUIT (IR)")
	p.writeLine("")

	p.printParams("PUBLIC", circuit.PublicParams)
	p.printParams("PRIVATE", circuit.PrivateParams)

	p.writeLine("STATEMENTS:")
	p.indent++
	p.printStatements(circuit.Statements)
	p.indent--
}

func (p *Printer) printParams(label string, params []CircuitParam) {
	if len(params) == 0 {
		p.writeLine("%s: none", label)
		return
	}
	p.writeLine("%s:", label)
	p.indent++
	for _, param := range params {
		p.writeLine("%d: %s", param.Index, param.Name)
	}
	p.indent--
}

func (p *Printer) printStatements(stmts []Statement) {
	for _, s := range stmts {
		VisitStatement[struct{}](s, p)
	}
}

func (p *Printer) VisitAssert(s *Assert) struct{} {
	if s.Message != "" {
		p.writeLine("assert %s %q", FormatExpr(s.Condition), s.Message)
	} else {
		p.writeLine("assert %s", FormatExpr(s.Condition))
	}
	return struct{}{}
}

func (p *Printer) VisitVariableDeclaration(s *VariableDeclaration) struct{} {
	keyword := "let"
	if s.Mutable {
		keyword = "let mut"
	}
	p.writeLine("%s %s = %s", keyword, s.Name, FormatExpr(s.Initializer))
	return struct{}{}
}

func (p *Printer) VisitAssignment(s *Assignment) struct{} {
	p.writeLine("set %s = %s", s.Target, FormatExpr(s.Value))
	return struct{}{}
}

func (p *Printer) VisitIfStatement(s *IfStatement) struct{} {
	p.writeLine("if %s", FormatExpr(s.Condition))
	p.indent++
	p.printStatements(s.Consequent)
	p.indent--
	if s.Alternate != nil {
		p.writeLine("else")
		p.indent++
		p.printStatements(s.Alternate)
		p.indent--
	}
	return struct{}{}
}

func (p *Printer) VisitForStatement(s *ForStatement) struct{} {
	rangeOp := ".."
	if s.Inclusive {
		rangeOp = "..="
	}
	p.writeLine("for %s in %s%s%s", s.Variable, FormatExpr(s.Start), rangeOp, FormatExpr(s.End))
	p.indent++
	p.printStatements(s.Body)
	p.indent--
	return struct{}{}
}

type exprFormatter struct{}

func (f exprFormatter) VisitIdentifier(e *Identifier) string { return e.Name }

func (f exprFormatter) VisitLiteral(e *Literal) string {
	if e.Kind == StringLiteral {
		return fmt.Sprintf("%q", e.Value)
	}
	return e.Value
}

func (f exprFormatter) VisitBinary(e *Binary) string {
	return fmt.Sprintf("(%s %s %s)", e.Operator, FormatExpr(e.Left), FormatExpr(e.Right))
}

func (f exprFormatter) VisitUnary(e *Unary) string {
	return fmt.Sprintf("(%s %s)", e.Operator, FormatExpr(e.Operand))
}

func (f exprFormatter) VisitMember(e *Member) string {
	return fmt.Sprintf("(index %s %s)", FormatExpr(e.Object), FormatExpr(e.Index))
}

func (f exprFormatter) VisitArrayLiteral(e *ArrayLiteral) string {
	return "[" + f.join(e.Elements) + "]"
}

func (f exprFormatter) VisitCall(e *Call) string {
	head := "call " + FormatExpr(e.Callee)
	if e.Method != "" {
		head += "." + e.Method
	}
	if len(e.Args) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + f.join(e.Args) + ")"
}

func (f exprFormatter) VisitIfExpr(e *IfExpr) string {
	return fmt.Sprintf("(if %s %s %s)", FormatExpr(e.Condition), FormatExpr(e.Consequent), FormatExpr(e.Alternate))
}

func (f exprFormatter) join(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = FormatExpr(e)
	}
	return strings.Join(parts, " ")
}

package grammar_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izinoir/grammar"
)

func TestArrowCircuit(t *testing.T) {
	src := `([sum], [a, b]) => {
  // the witness must add up
  assert(a + b == sum);
}`
	program, err := grammar.Parse("add.js", src)
	require.NoError(t, err)

	fn := program.Function
	require.NotNil(t, fn)
	assert.False(t, fn.Keyword)
	assert.True(t, fn.Arrow)
	require.Len(t, fn.Params, 2)

	public := fn.Params[0].Array
	require.NotNil(t, public)
	require.Len(t, public.Elements, 1)
	assert.Equal(t, "sum", *public.Elements[0].Name)

	private := fn.Params[1].Array
	require.Len(t, private.Elements, 2)
	assert.Equal(t, "a", *private.Elements[0].Name)
	assert.Equal(t, "b", *private.Elements[1].Name)

	require.Len(t, fn.Body.Statements, 1)
	stmt := fn.Body.Statements[0].Expr
	require.NotNil(t, stmt)
	call := stmt.Target.Test.Head.Postfix
	assert.Equal(t, "assert", *call.Primary.Ident)
	require.Len(t, call.Suffix, 1)
	require.NotNil(t, call.Suffix[0].Call)
	assert.Len(t, call.Suffix[0].Call.Args, 1)
}

func TestFunctionDeclaration(t *testing.T) {
	program, err := grammar.Parse("fn.js", `function main([], [x]) { let mut_y = x; mut_y = mut_y * 2; }`)
	require.NoError(t, err)

	fn := program.Function
	assert.True(t, fn.Keyword)
	assert.False(t, fn.Arrow)
	assert.Equal(t, "main", fn.Name)
	assert.Empty(t, fn.Params[0].Array.Elements)

	require.Len(t, fn.Body.Statements, 2)
	decl := fn.Body.Statements[0].Var
	require.NotNil(t, decl)
	assert.Equal(t, "let", decl.Kind)
	require.Len(t, decl.Declarators, 1)
	assert.Equal(t, "mut_y", *decl.Declarators[0].Target.Name)

	assign := fn.Body.Statements[1].Expr
	assert.Equal(t, "=", assign.Op)
	require.NotNil(t, assign.Value)
}

func TestBinaryChainIsFlat(t *testing.T) {
	program, err := grammar.Parse("chain.js", `([], [a, b, c]) => { assert(a + b * c >= 10 && a !== b); }`)
	require.NoError(t, err)

	args := program.Function.Body.Statements[0].Expr.Target.Test.Head.Postfix.Suffix[0].Call.Args
	chain := args[0].Value.Target.Test

	var ops []string
	for _, op := range chain.Tail {
		ops = append(ops, op.Operator)
	}
	assert.Equal(t, []string{"+", "*", ">=", "&&", "!=="}, ops)
}

func TestForLoop(t *testing.T) {
	program, err := grammar.Parse("loop.js", `([], [xs]) => {
  let mut_acc = 0;
  for (let i = 0; i < 4; i++) {
    mut_acc = mut_acc + xs[i];
  }
}`)
	require.NoError(t, err)

	loop := program.Function.Body.Statements[1].For
	require.NotNil(t, loop)
	require.NotNil(t, loop.Init.Var)
	assert.Equal(t, "i", *loop.Init.Var.Declarators[0].Target.Name)
	require.NotNil(t, loop.Test)
	assert.Equal(t, "<", loop.Test.Target.Test.Tail[0].Operator)
	assert.Equal(t, "++", loop.Update.Target.Test.Head.Postfix.Update)
	require.NotNil(t, loop.Body.Block)
	assert.Len(t, loop.Body.Block.Statements, 1)
}

func TestLiteralTokens(t *testing.T) {
	program, err := grammar.Parse("lit.js", "([], []) => { let a = 0x1F; let b = 12n; let c = 'hi'; let d = `t`; let e = true; let f = null; }")
	require.NoError(t, err)

	stmts := program.Function.Body.Statements
	primary := func(i int) *grammar.Primary {
		return stmts[i].Var.Declarators[0].Init.Target.Test.Head.Postfix.Primary
	}

	assert.Equal(t, "0x1F", *primary(0).Number)
	assert.Equal(t, "12n", *primary(1).BigInt)
	assert.Equal(t, "'hi'", *primary(2).String)
	assert.Equal(t, "`t`", *primary(3).Template)
	assert.Equal(t, "true", *primary(4).Bool)
	assert.NotNil(t, primary(5).Null)
}

func TestIfElseAndConditional(t *testing.T) {
	program, err := grammar.Parse("if.js", `([], [x]) => {
  if (x == 1) { assert(x != 0); } else assert(x != 1);
  let y = x > 2 ? x : 2;
}`)
	require.NoError(t, err)

	ifStmt := program.Function.Body.Statements[0].If
	require.NotNil(t, ifStmt)
	require.NotNil(t, ifStmt.Consequent.Block)
	require.NotNil(t, ifStmt.Alternate)
	assert.NotNil(t, ifStmt.Alternate.Expr)

	cond := program.Function.Body.Statements[1].Var.Declarators[0].Init.Target
	assert.NotNil(t, cond.Consequent)
	assert.NotNil(t, cond.Alternate)
}

func TestSyntaxError(t *testing.T) {
	_, err := grammar.Parse("bad.js", "([a], [b]) => { let = ; }")
	require.Error(t, err)
}

func TestReportParseError(t *testing.T) {
	color.NoColor = true
	src := "([a], [b]) => {\n  let = ;\n}"
	_, err := grammar.Parse("bad.js", src)
	require.Error(t, err)

	var buf bytes.Buffer
	grammar.ReportParseError(&buf, src, err)
	out := buf.String()
	assert.Contains(t, out, "Syntax error in bad.js at line 2")
	assert.Contains(t, out, "  let = ;")
	assert.Contains(t, out, "^")
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	assert.Contains(t, ebnf, "Program")
	assert.Contains(t, ebnf, "Function")
}

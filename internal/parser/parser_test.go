package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izinoir/internal/ast"
	"izinoir/internal/errors"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	fn, err := ParseSource("test.js", "([], [a, b, c, xs]) => { "+src+"; }")
	require.NoError(t, err)
	require.Len(t, fn.Body.Body, 1)
	stmt, ok := fn.Body.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok, "expected an expression statement, got %T", fn.Body.Body[0])
	return stmt.Expression
}

func TestParseArrowCircuit(t *testing.T) {
	source := `([expected], [secret]) => {
    assert(secret * secret == expected);
}`

	fn, err := ParseSource("square.js", source)
	require.NoError(t, err)
	assert.True(t, fn.Arrow)
	assert.Empty(t, fn.Name)
	require.Len(t, fn.Params, 2)

	public, ok := fn.Params[0].(*ast.ArrayPattern)
	require.True(t, ok)
	assert.Equal(t, "expected", public.Elements[0].(*ast.Identifier).Name)

	expected := "([expected], [secret]) => {\n  assert(((secret * secret) == expected));\n}"
	assert.Equal(t, expected, fn.String())
}

func TestParseFunctionDeclaration(t *testing.T) {
	fn, err := ParseSource("f.js", "function main([x], [y, ...rest]) { let z = x; }")
	require.NoError(t, err)
	assert.False(t, fn.Arrow)
	assert.Equal(t, "main", fn.Name)

	private := fn.Params[1].(*ast.ArrayPattern)
	rest, ok := private.Elements[1].(*ast.RestElement)
	require.True(t, ok)
	assert.Equal(t, "rest", rest.Argument.(*ast.Identifier).Name)

	decl := fn.Body.Body[0].(*ast.VariableDeclaration)
	assert.Equal(t, "let", decl.Kind)
	assert.Equal(t, "z", decl.Declarations[0].ID.(*ast.Identifier).Name)
}

func TestBinaryPrecedence(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a + b == c", "((a + b) == c)"},
		{"a < b && b < c", "((a < b) && (b < c))"},
		{"a || b && c", "(a || (b && c))"},
		{"a == b || a != c", "((a == b) || (a != c))"},
		{"a ** b ** c", "(a ** (b ** c))"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a & b | c", "((a & b) | c)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseExpr(t, tt.src).String())
		})
	}
}

func TestLogicalOperatorsBecomeLogicalExpressions(t *testing.T) {
	expr := parseExpr(t, "a && b")
	logical, ok := expr.(*ast.LogicalExpression)
	require.True(t, ok)
	assert.Equal(t, "&&", logical.Operator)

	_, ok = parseExpr(t, "a & b").(*ast.BinaryExpression)
	assert.True(t, ok)
}

func TestUnaryAndUpdate(t *testing.T) {
	neg := parseExpr(t, "-a").(*ast.UnaryExpression)
	assert.Equal(t, "-", neg.Operator)

	pre := parseExpr(t, "++a").(*ast.UpdateExpression)
	assert.True(t, pre.Prefix)
	assert.Equal(t, "++", pre.Operator)

	post := parseExpr(t, "a--").(*ast.UpdateExpression)
	assert.False(t, post.Prefix)
	assert.Equal(t, "--", post.Operator)
}

func TestMemberAndCall(t *testing.T) {
	member := parseExpr(t, "xs.length").(*ast.MemberExpression)
	assert.False(t, member.Computed)
	assert.Equal(t, "length", member.Property.(*ast.Identifier).Name)

	index := parseExpr(t, "xs[a + 1]").(*ast.MemberExpression)
	assert.True(t, index.Computed)
	assert.Equal(t, "(a + 1)", index.Property.String())

	call := parseExpr(t, "xs.map(a, ...b)").(*ast.CallExpression)
	assert.Equal(t, "xs.map", call.Callee.String())
	require.Len(t, call.Arguments, 2)
	_, ok := call.Arguments[1].(*ast.SpreadElement)
	assert.True(t, ok)
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		src   string
		kind  ast.LiteralKind
		value string
	}{
		{"42", ast.NumberLiteral, "42"},
		{"0xff", ast.NumberLiteral, "0xff"},
		{"10n", ast.BigIntLiteral, "10"},
		{`"hello"`, ast.StringLiteral, "hello"},
		{`'it\'s'`, ast.StringLiteral, "it's"},
		{"true", ast.BooleanLiteral, "true"},
		{"null", ast.NullLiteral, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lit, ok := parseExpr(t, tt.src).(*ast.Literal)
			require.True(t, ok)
			assert.Equal(t, tt.kind, lit.Kind)
			assert.Equal(t, tt.value, lit.Value)
			assert.Equal(t, tt.src, lit.Raw)
		})
	}
}

func TestAssignmentAndConditional(t *testing.T) {
	assign := parseExpr(t, "xs[0] = a ? b : c").(*ast.AssignmentExpression)
	assert.Equal(t, "=", assign.Operator)
	assert.Equal(t, "xs[0]", assign.Left.String())
	_, ok := assign.Right.(*ast.ConditionalExpression)
	assert.True(t, ok)

	compound := parseExpr(t, "a += 1").(*ast.AssignmentExpression)
	assert.Equal(t, "+=", compound.Operator)
}

func TestObjectAndTemplate(t *testing.T) {
	obj := parseExpr(t, "a = { x: 1, 'y': b, c }").(*ast.AssignmentExpression).Right.(*ast.ObjectExpression)
	require.Len(t, obj.Properties, 3)
	assert.Equal(t, "y", obj.Properties[1].Key)
	assert.Equal(t, "c", obj.Properties[2].Value.(*ast.Identifier).Name)

	tpl := parseExpr(t, "a = `x`").(*ast.AssignmentExpression).Right
	_, ok := tpl.(*ast.TemplateLiteral)
	assert.True(t, ok)
}

func TestStatements(t *testing.T) {
	source := `([], [x]) => {
    if (x == 1) { assert(x != 0); } else { assert(x != 2); }
    for (let i = 0; i < 3; i++) { }
    while (x) { break; }
    return x;
    ;
}`
	fn, err := ParseSource("stmts.js", source)
	require.NoError(t, err)
	require.Len(t, fn.Body.Body, 5)

	ifStmt := fn.Body.Body[0].(*ast.IfStatement)
	assert.NotNil(t, ifStmt.Alternate)

	loop := fn.Body.Body[1].(*ast.ForStatement)
	assert.Equal(t, "for (let i = 0; (i < 3); i++) {}", loop.String())

	while := fn.Body.Body[2].(*ast.WhileStatement)
	_, ok := while.Body.(*ast.BlockStatement).Body[0].(*ast.BreakStatement)
	assert.True(t, ok)

	ret := fn.Body.Body[3].(*ast.ReturnStatement)
	assert.Equal(t, "x", ret.Argument.String())

	_, ok = fn.Body.Body[4].(*ast.EmptyStatement)
	assert.True(t, ok)
}

func TestPositions(t *testing.T) {
	fn, err := ParseSource("pos.js", "([], [x]) => {\n  let y = x;\n}")
	require.NoError(t, err)

	decl := fn.Body.Body[0].(*ast.VariableDeclaration)
	assert.Equal(t, "pos.js", decl.Pos.Filename)
	assert.Equal(t, 2, decl.Pos.Line)
	assert.Equal(t, 3, decl.Pos.Column)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unbalanced", "([], [x]) => { let y = ; }"},
		{"missing body", "([], [x]) =>"},
		{"no function form", "([], [x]) { }"},
		{"named arrow", "main([], [x]) => { }"},
		{"function with arrow", "function main([], [x]) => { }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := ParseSource("bad.js", tt.source)
			require.Error(t, err)
			assert.Nil(t, fn)
			assert.True(t, stderrors.Is(err, errors.ErrSyntax))
			assert.Equal(t, errors.ErrorSyntax, errors.Code(err))
		})
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"izinoir/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `([expected], [secret]) => {
    let x = { a: 1 };
    assert(x == expected);
}`

	reporter := NewErrorReporter("circuit.js", source)

	err := UnsupportedConstruct("ObjectExpression", ast.Position{Line: 2, Column: 13})
	formatted := reporter.FormatError(*err)

	assert.Contains(t, formatted, "error["+ErrorUnsupportedConstruct+"]")
	assert.Contains(t, formatted, "unsupported construct: ObjectExpression")
	assert.Contains(t, formatted, "circuit.js:2:13")
	assert.Contains(t, formatted, "let x = { a: 1 };")
	assert.Contains(t, formatted, "note:")
}

func TestFormatErrFlattensChains(t *testing.T) {
	source := "(a, b) => {\n  assert(a + {} == b)\n}"
	reporter := NewErrorReporter("chain.js", source)

	inner := UnsupportedConstruct("ObjectExpression", ast.Position{Line: 2, Column: 14})
	outer := MalformedOperand("right operand of '+'", ast.Position{Line: 2, Column: 10}, inner)

	formatted := reporter.FormatErr(outer)
	assert.Contains(t, formatted, "chain.js:2:14")
	assert.Contains(t, formatted, "while analyzing: could not analyze right operand of '+'")
}

func TestFormatErrPlainError(t *testing.T) {
	reporter := NewErrorReporter("x.js", "")
	formatted := reporter.FormatErr(fmt.Errorf("read failed"))
	assert.Contains(t, formatted, "read failed")
}

func TestCompilerErrorIs(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}
	inner := UnsupportedOperator("**", pos, []string{"+", "*"})
	outer := MalformedOperand("left operand of '=='", pos, inner)

	assert.True(t, stderrors.Is(outer, ErrMalformedOperand))
	assert.True(t, stderrors.Is(outer, ErrUnsupportedOperator))
	assert.False(t, stderrors.Is(outer, ErrInvalidLoopShape))
	assert.Equal(t, ErrorMalformedOperand, Code(outer))
	assert.Equal(t, "", Code(fmt.Errorf("plain")))

	wrapped := fmt.Errorf("transpile: %w", inner)
	assert.True(t, stderrors.Is(wrapped, ErrUnsupportedOperator))
	assert.Equal(t, ErrorUnsupportedOperator, Code(wrapped))
}

func TestCompilerErrorMessage(t *testing.T) {
	err := InvalidLoopShape("loop update must increment 'i' by one", ast.Position{Line: 3, Column: 7})
	assert.Equal(t, "[E0006] 3:7: loop update must increment 'i' by one", err.Error())

	outer := MalformedOperand("test", ast.Position{}, err)
	assert.Equal(t, "[E0003] could not analyze test: [E0006] 3:7: loop update must increment 'i' by one", outer.Error())
}

func TestDiagnostic(t *testing.T) {
	inner := UnsupportedConstruct("SpreadElement", ast.Position{Line: 4, Column: 2})
	middle := MalformedOperand("array element 1", ast.Position{Line: 4, Column: 1}, inner)
	outer := MalformedOperand("right operand of '=='", ast.Position{Line: 4, Column: 0}, middle)

	diag, ok := Diagnostic(outer)
	require.True(t, ok)
	assert.Equal(t, ErrorUnsupportedConstruct, diag.Code)
	assert.Equal(t, 4, diag.Position.Line)
	assert.Nil(t, diag.Cause)
	assert.Equal(t, []string{
		"list the array elements explicitly",
	}, []string{diag.Suggestions[0].Message})
	assert.Equal(t, "while analyzing: could not analyze array element 1", diag.Notes[0])
	assert.Equal(t, "while analyzing: could not analyze right operand of '=='", diag.Notes[1])

	_, ok = Diagnostic(fmt.Errorf("not a compiler error"))
	assert.False(t, ok)
}

func TestUnsupportedOperatorSuggestions(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	pow := UnsupportedOperator("**", pos, nil)
	require.Len(t, pow.Suggestions, 1)
	assert.Contains(t, pow.Suggestions[0].Message, "repeated multiplication")

	shift := UnsupportedOperator("<<", pos, []string{"<", "<="})
	assert.Empty(t, shift.Suggestions)
	assert.Contains(t, shift.Notes[0], "bitwise shift")
}

func TestUnsupportedPropertySuggestsLength(t *testing.T) {
	err := UnsupportedProperty("lenght", ast.Position{Line: 1, Column: 1})
	require.Len(t, err.Suggestions, 1)
	assert.Equal(t, "did you mean '.length'?", err.Suggestions[0].Message)

	err = UnsupportedProperty("push", ast.Position{Line: 1, Column: 1})
	assert.Empty(t, err.Suggestions)
}

func TestUndeclaredAssignmentSuggestions(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	err := UndeclaredAssignment("resul", pos, []string{"result", "sum"})
	assert.Equal(t, "did you mean 'result'?", err.Suggestions[0].Message)

	err = UndeclaredAssignment("zzz", pos, []string{"result"})
	assert.Contains(t, err.Suggestions[0].Message, "let mut_zzz")
}

func TestImmutableAssignmentSuggestsRename(t *testing.T) {
	source := "([], [x]) => {\n  let total = 0;\n  total = x;\n}"
	declaration := ast.Position{Line: 2, Column: 7}

	err := ImmutableAssignment("total", ast.Position{Line: 3, Column: 3}, &declaration)
	require.Len(t, err.Suggestions, 1)
	assert.Equal(t, "mut_total", err.Suggestions[0].Replacement)
	assert.Equal(t, declaration, err.Suggestions[0].Position)
	assert.Equal(t, len("total"), err.Suggestions[0].Length)
	assert.Empty(t, err.Notes)

	formatted := NewErrorReporter("rename.js", source).FormatError(*err)
	assert.Contains(t, formatted, "rename the declaration to 'mut_total'")
	assert.Contains(t, formatted, "mut_total")

	param := ImmutableAssignment("x", ast.Position{Line: 3, Column: 3}, nil)
	assert.Empty(t, param.Suggestions)
	assert.Contains(t, param.Notes[0], "never mutable")
}

func TestSkippedStatementIsWarning(t *testing.T) {
	warn := SkippedStatement("WhileStatement", ast.Position{Line: 2, Column: 3})
	assert.Equal(t, Warning, warn.Level)
	assert.True(t, IsWarning(warn.Code))
	assert.Equal(t, "Warning", GetErrorCategory(warn.Code))
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Analysis", GetErrorCategory(ErrorInvalidLoopShape))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorSyntax))
	assert.Equal(t, "Unknown", GetErrorCategory(""))
	assert.False(t, IsWarning(ErrorSyntax))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
	assert.Contains(t, GetErrorDescription(ErrorInvalidLoopShape), "unit-step")
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("len", "len"))
	assert.Equal(t, 2, levenshteinDistance("lenght", "length"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 1, levenshteinDistance("==", "==="))
}

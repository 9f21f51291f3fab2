package errors

import (
	"fmt"
	"strings"

	"izinoir/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating semantic errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new semantic warning builder
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	b := NewSemanticError(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// WithCause attaches the error that triggered this one
func (b *SemanticErrorBuilder) WithCause(cause error) *SemanticErrorBuilder {
	b.err.Cause = cause
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() *CompilerError {
	err := b.err
	return &err
}

// UnsupportedConstruct reports a syntax kind outside the circuit grammar.
func UnsupportedConstruct(what string, pos ast.Position) *CompilerError {
	builder := NewSemanticError(ErrorUnsupportedConstruct, fmt.Sprintf("unsupported construct: %s", what), pos)

	switch {
	case strings.Contains(what, "ObjectExpression"):
		builder = builder.WithNote("circuits only operate on field elements, booleans and fixed-size arrays")
	case strings.Contains(what, "TemplateLiteral"):
		builder = builder.WithNote("string processing cannot be expressed in a circuit")
	case strings.Contains(what, "SpreadElement"):
		builder = builder.WithSuggestion("list the array elements explicitly")
	case strings.Contains(what, "UpdateExpression"), strings.Contains(what, "AssignmentExpression"):
		builder = builder.WithSuggestion("move the assignment into its own statement")
	}

	return builder.Build()
}

// UnsupportedProperty reports a non-computed property access other than length.
func UnsupportedProperty(property string, pos ast.Position) *CompilerError {
	builder := NewSemanticError(ErrorUnsupportedConstruct,
		fmt.Sprintf("unsupported property access '.%s'", property), pos).
		WithLength(len(property)).
		WithNote("only '.length' on arrays is supported")

	if levenshteinDistance(property, "length") <= 2 {
		builder = builder.WithSuggestion("did you mean '.length'?")
	}
	return builder.Build()
}

// UnsupportedOperator reports an operator missing from the operator tables.
func UnsupportedOperator(op string, pos ast.Position, supported []string) *CompilerError {
	builder := NewSemanticError(ErrorUnsupportedOperator, fmt.Sprintf("unsupported operator '%s'", op), pos).
		WithLength(len(op))

	switch op {
	case "**":
		builder = builder.WithSuggestion("use repeated multiplication")
	case "<<", ">>", ">>>", "^", "~":
		builder = builder.WithNote("bitwise shift, xor and complement are not available on field elements")
	default:
		if similar := findSimilarNames(op, supported); len(similar) > 0 {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
		}
	}

	if len(supported) > 0 {
		builder = builder.WithNote("supported operators: " + strings.Join(supported, " "))
	}
	return builder.Build()
}

// MalformedOperand wraps the failure of a required sub-expression.
func MalformedOperand(role string, pos ast.Position, cause error) *CompilerError {
	return NewSemanticError(ErrorMalformedOperand, fmt.Sprintf("could not analyze %s", role), pos).
		WithCause(cause).
		Build()
}

// InvalidDeclaration reports a declaration that cannot become a circuit binding.
func InvalidDeclaration(message string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidDeclaration, message, pos).
		WithHelp("declare exactly one variable per statement, e.g. 'let x = 1;'").
		WithNote("prefix the name with 'mut_' to make the binding mutable").
		Build()
}

// InvalidAssignmentTarget reports an assignment to something other than a simple name.
func InvalidAssignmentTarget(message string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidAssignmentTarget, message, pos).
		WithHelp("only simple variable names declared with a 'mut_' prefix can be reassigned").
		Build()
}

// ImmutableAssignment reports an assignment to a binding that is not mutable.
// declaration is where a renamable variable was declared, or nil for
// parameters and loop variables.
func ImmutableAssignment(name string, pos ast.Position, declaration *ast.Position) *CompilerError {
	builder := NewSemanticError(ErrorInvalidAssignmentTarget,
		fmt.Sprintf("cannot assign to immutable variable '%s'", name), pos).
		WithLength(len(name))

	if declaration != nil {
		builder = builder.WithReplacement(
			fmt.Sprintf("rename the declaration to 'mut_%s'", name), "mut_"+name, *declaration, len(name))
	} else {
		builder = builder.WithNote("parameters and loop variables are never mutable")
	}
	return builder.Build()
}

// UndeclaredAssignment reports an assignment to a name with no declaration in scope.
func UndeclaredAssignment(name string, pos ast.Position, similarNames []string) *CompilerError {
	builder := NewSemanticError(ErrorInvalidAssignmentTarget,
		fmt.Sprintf("assignment to undeclared variable '%s'", name), pos).
		WithLength(len(name))

	if similar := findSimilarNames(name, similarNames); len(similar) > 0 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else {
		builder = builder.WithSuggestion(fmt.Sprintf("declare it first: 'let mut_%s = 0;'", name))
	}
	return builder.Build()
}

// InvalidLoopShape reports a for loop outside the bounded counting shape.
func InvalidLoopShape(message string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidLoopShape, message, pos).
		WithHelp("loops must look like 'for (let i = start; i < end; i++)' (or 'i <= end')").
		WithNote("circuits only support static ranges that increase by one").
		Build()
}

// InvalidParameter reports a circuit signature outside the ([public], [private]) convention.
func InvalidParameter(message string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidParameter, message, pos).
		WithHelp("declare the circuit as '([public...], [private...]) => { ... }'").
		Build()
}

// SyntaxError reports a parse failure.
func SyntaxError(message string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorSyntax, message, pos).Build()
}

// SkippedStatement creates a warning for a statement that is not part of the circuit.
func SkippedStatement(kind string, pos ast.Position) *CompilerError {
	return NewSemanticWarning(WarningSkippedStatement,
		fmt.Sprintf("%s is not supported in circuits and was skipped", kind), pos).
		WithNote("only declarations, assignments, assert(...), if/else and counting for loops are kept").
		Build()
}

// Helper functions

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 1 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

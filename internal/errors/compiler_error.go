package errors

import (
	stderrors "errors"
	"fmt"

	"izinoir/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context.
// A *CompilerError is a Go error; Cause links the error of a failing
// sub-expression so errors.Is matches every kind along the chain.
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0001
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
	Cause       error        // Underlying failure, if any
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string       // Description of the suggestion
	Replacement string       // Suggested replacement text (optional)
	Position    ast.Position // Position to apply the fix (optional)
	Length      int          // Length of text to replace (optional)
}

// Sentinels for errors.Is; only the code is compared.
var (
	ErrUnsupportedConstruct    = &CompilerError{Code: ErrorUnsupportedConstruct, Message: "unsupported construct"}
	ErrUnsupportedOperator     = &CompilerError{Code: ErrorUnsupportedOperator, Message: "unsupported operator"}
	ErrMalformedOperand        = &CompilerError{Code: ErrorMalformedOperand, Message: "malformed operand"}
	ErrInvalidDeclaration      = &CompilerError{Code: ErrorInvalidDeclaration, Message: "invalid declaration"}
	ErrInvalidAssignmentTarget = &CompilerError{Code: ErrorInvalidAssignmentTarget, Message: "invalid assignment target"}
	ErrInvalidLoopShape        = &CompilerError{Code: ErrorInvalidLoopShape, Message: "invalid loop shape"}
	ErrInvalidParameter        = &CompilerError{Code: ErrorInvalidParameter, Message: "invalid parameter"}
	ErrSyntax                  = &CompilerError{Code: ErrorSyntax, Message: "syntax error"}
)

func (e *CompilerError) Error() string {
	msg := e.Message
	if e.Position.Line > 0 {
		msg = fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, msg)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("[%s] %s", e.Code, msg)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CompilerError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CompilerError with the same code.
func (e *CompilerError) Is(target error) bool {
	t, ok := target.(*CompilerError)
	return ok && t.Code == e.Code
}

// Code returns the code of the outermost CompilerError in err's chain.
func Code(err error) string {
	var ce *CompilerError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// Diagnostic flattens a chain of CompilerErrors into the innermost one, which
// points at the offending node, and records the enclosing messages as notes.
func Diagnostic(err error) (CompilerError, bool) {
	var outer []string
	var last *CompilerError
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		ce, ok := cur.(*CompilerError)
		if !ok {
			continue
		}
		if last != nil {
			outer = append(outer, last.Message)
		}
		last = ce
	}
	if last == nil {
		return CompilerError{}, false
	}

	diag := *last
	diag.Cause = nil
	diag.Notes = append([]string(nil), last.Notes...)
	for i := len(outer) - 1; i >= 0; i-- {
		diag.Notes = append(diag.Notes, "while analyzing: "+outer[i])
	}
	return diag, true
}

package parser

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"izinoir/grammar"
	"izinoir/internal/ast"
	"izinoir/internal/errors"
)

func ParseFile(path string) (*ast.Function, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

// ParseSource parses a circuit function and lowers it to the syntax tree
// consumed by the analyzer. Parse failures are returned as E0100 compiler
// errors positioned at the offending token.
func ParseSource(sourceName string, source string) (*ast.Function, error) {
	program, err := grammar.Parse(sourceName, source)
	if err != nil {
		var pe participle.Error
		if stderrors.As(err, &pe) {
			return nil, errors.SyntaxError(pe.Message(), convertPos(pe.Position()))
		}
		return nil, errors.SyntaxError(err.Error(), ast.Position{Filename: sourceName})
	}

	if program.Function == nil {
		return nil, errors.SyntaxError("expected a circuit function", ast.Position{Filename: sourceName, Line: 1, Column: 1})
	}
	return lowerFunction(program.Function)
}

func convertPos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

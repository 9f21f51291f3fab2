package grammar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

// Built once; participle parsers hold no per-parse state and are safe to
// share between goroutines.
var parser = participle.MustBuild[Program](
	participle.Lexer(SurfaceLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// Parse parses source text into the surface syntax tree.
func Parse(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

// ParseFile reads and parses a circuit source file, printing a caret
// diagnostic to stderr when the syntax is invalid.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	program, err := Parse(path, string(source))
	if err != nil {
		ReportParseError(os.Stderr, string(source), err)
		return nil, err
	}
	return program, nil
}

// EBNF renders the surface grammar.
func EBNF() string {
	return parser.String()
}

// ReportParseError writes a friendly caret-style parse error message.
func ReportParseError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	hiRed := color.New(color.FgHiRed)

	pe, ok := err.(participle.Error)
	if !ok {
		red.Fprintf(w, "Unexpected error: %s\n", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		red.Fprintf(w, "Syntax error at unknown location: %s\n", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	red.Fprintf(w, "Syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column)
	fmt.Fprintln(w, line)
	hiRed.Fprintln(w, caret)
	fmt.Fprintf(w, "-> %s\n", pe.Message())
}

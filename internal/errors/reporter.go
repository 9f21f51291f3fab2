package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorReporter handles consistent error formatting and suggestions
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatErr formats any error; CompilerError chains are flattened with
// Diagnostic, everything else is printed as a bare error line.
func (er *ErrorReporter) FormatErr(err error) string {
	if diag, ok := Diagnostic(err); ok {
		return er.FormatError(diag)
	}
	return fmt.Sprintf("%s: %s\n\n", er.getLevelColor(Error)(string(Error)), err)
}

// FormatError formats a compiler error with Rust-like styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0001]: message
	if err.Code != "" {
		fmt.Fprintf(&result, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&result, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	lineNumberWidth := er.getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)
	gutter := func(n int) string { return fmt.Sprintf("%*d", lineNumberWidth, n) }

	// Location line: --> filename:line:column
	fmt.Fprintf(&result, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&result, "%s %s\n", indent, dim("│"))

	if line, ok := er.line(err.Position.Line - 1); ok {
		fmt.Fprintf(&result, "%s %s %s\n", dim(gutter(err.Position.Line-1)), dim("│"), line)
	}
	if line, ok := er.line(err.Position.Line); ok {
		fmt.Fprintf(&result, "%s %s %s\n", bold(gutter(err.Position.Line)), dim("│"), line)
		fmt.Fprintf(&result, "%s %s %s\n", indent, dim("│"), er.createMarker(err.Position.Column, err.Length, err.Level))
	}
	if line, ok := er.line(err.Position.Line + 1); ok {
		fmt.Fprintf(&result, "%s %s %s\n", dim(gutter(err.Position.Line+1)), dim("│"), line)
	}

	if len(err.Suggestions) > 0 {
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(&result, "%s %s\n", indent, dim("│"))
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				fmt.Fprintf(&result, "%s %s %s: %s\n", indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message)
			} else {
				fmt.Fprintf(&result, "%s %s %s\n", indent, suggestionColor("    "), suggestion.Message)
			}
			if suggestion.Replacement != "" {
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				fmt.Fprintf(&result, "%s %s %s\n", indent, suggestionColor("│"), suggestionColor(replacement))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&result, "%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note)
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&result, "%s %s %s %s\n", indent, dim("│"), helpColor("help:"), err.HelpText)
	}

	result.WriteString("\n")
	return result.String()
}

// line returns the 1-based source line n, if it exists
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	spaces := strings.Repeat(" ", max(0, column-1))
	marker := strings.Repeat("^", max(1, length))
	return spaces + er.getLevelColor(level)(marker)
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line+1)))
}

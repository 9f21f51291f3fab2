package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"izinoir/internal/errors"
	"izinoir/internal/transpiler"
)

const diagnosticSource = "izinoir"

// ConvertError turns a failed transpilation into diagnostics. Compiler errors
// are reduced to their innermost cause so the range points at the offending
// node; anything else is reported at the start of the document.
func ConvertError(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	diag, ok := errors.Diagnostic(err)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  err.Error(),
		}}
	}
	return []protocol.Diagnostic{compilerDiagnostic(diag)}
}

// ConvertWarnings reports every skipped statement of a successful result.
func ConvertWarnings(result *transpiler.Result) []protocol.Diagnostic {
	if result == nil {
		return nil
	}

	var diagnostics []protocol.Diagnostic
	for _, w := range result.Warnings() {
		diagnostics = append(diagnostics, compilerDiagnostic(*w))
	}
	return diagnostics
}

func compilerDiagnostic(ce errors.CompilerError) protocol.Diagnostic {
	line := max(ce.Position.Line-1, 0) // LSP lines are 0-based
	char := max(ce.Position.Column-1, 0)
	length := ce.Length
	if length <= 0 {
		length = 1
	}

	severity := protocol.DiagnosticSeverityError
	if ce.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	message := ce.Message
	if len(ce.Notes) > 0 {
		message += "\n" + strings.Join(ce.Notes, "\n")
	}
	if ce.HelpText != "" {
		message += "\nhelp: " + ce.HelpText
	}

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(char)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(char + length)},
		},
		Severity: ptrSeverity(severity),
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
	if ce.Code != "" {
		diagnostic.Code = &protocol.IntegerOrString{Value: ce.Code}
	}
	return diagnostic
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}

package errors

// Error codes for the izinoir transpiler
// These codes are used in diagnostics, the CLI and the language server
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Analysis errors (expression, statement, loop shape, signature)
// E0100-E0199: Parser errors
// W0001-W0099: Warnings

const (
	// E0001: Syntax kind outside the accepted grammar (object literals, spreads, templates...)
	ErrorUnsupportedConstruct = "E0001"

	// E0002: Operator missing from the operator tables
	ErrorUnsupportedOperator = "E0002"

	// E0003: A required sub-expression could not be analyzed
	ErrorMalformedOperand = "E0003"

	// E0004: Variable declaration with a shape the circuit cannot represent
	ErrorInvalidDeclaration = "E0004"

	// E0005: Assignment to something other than a (mutable) simple name
	ErrorInvalidAssignmentTarget = "E0005"

	// E0006: Loop outside the bounded unit-step counting shape
	ErrorInvalidLoopShape = "E0006"

	// E0007: Circuit signature does not follow the ([public], [private]) convention
	ErrorInvalidParameter = "E0007"

	// E0100: Surface syntax could not be parsed
	ErrorSyntax = "E0100"

	// W0001: Statement ignored by the statement analyzer
	WarningSkippedStatement = "W0001"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnsupportedConstruct:
		return "Construct is not part of the supported circuit grammar"
	case ErrorUnsupportedOperator:
		return "Operator has no equivalent in the target dialect"
	case ErrorMalformedOperand:
		return "Operand of a composite expression could not be analyzed"
	case ErrorInvalidDeclaration:
		return "Variable declaration must have one named declarator with an initializer"
	case ErrorInvalidAssignmentTarget:
		return "Assignment target must be a simple (mutable) variable name"
	case ErrorInvalidLoopShape:
		return "Only bounded, unit-step counting loops are supported"
	case ErrorInvalidParameter:
		return "Circuit parameters must be ([public...], [private...]) array patterns"
	case ErrorSyntax:
		return "Source could not be parsed"
	case WarningSkippedStatement:
		return "Statement is not represented in the circuit and was skipped"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code == "":
		return "Unknown"
	case code[0] == 'W':
		return "Warning"
	case code >= "E0001" && code < "E0100":
		return "Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	default:
		return "Unknown"
	}
}

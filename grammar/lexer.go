package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SurfaceLexer tokenizes the JavaScript subset circuits are written in.
// It recognizes more operators than the transpiler accepts so unsupported
// ones reach the analyzer and get a precise diagnostic.
var SurfaceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, nil},

		// String-like literals
		{"Template", "`(\\\\.|[^`\\\\])*`", nil},
		{"String", `"(\\.|[^"\\\n])*"|'(\\.|[^'\\\n])*'`, nil},

		// Numeric literals (bigint before number, order matters)
		{"BigInt", `(0[xX][0-9a-fA-F]+|[0-9]+)n\b`, nil},
		{"Number", `0[xX][0-9a-fA-F]+|0[bB][01]+|0[oO][0-7]+|([0-9]+(\.[0-9]+)?|\.[0-9]+)([eE][+-]?[0-9]+)?`, nil},

		// Keywords and Identifiers
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$]*`, nil},

		// Operators, longest first
		{"Operator", `>>>|===|!==|\.\.\.|\*\*|=>|&&|\|\||\+\+|--|\+=|-=|\*=|/=|%=|==|!=|<=|>=|<<|>>|[-+*/%<>=!&|^~?:]`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[{}[\](),;.]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

package ast

// Identifier is a bare name reference.
// Example: "secret", "mut_sum"
type Identifier struct {
	Pos  Position
	Name string
}

// Literal is a constant. Value holds the decoded text: digits (or the raw hex
// spelling) for numbers, digits without the `n` suffix for bigints, the
// unquoted contents for strings and "true"/"false" for booleans.
// Example: "42", "0x1f", "10n", "'abc'", "true"
type Literal struct {
	Pos   Position
	Kind  LiteralKind
	Value string
	Raw   string
}

// TemplateLiteral is a backtick string; kept only so it can be rejected.
type TemplateLiteral struct {
	Pos Position
	Raw string
}

// ArrayExpression is an array literal.
// Example: "[a, b, c]"
type ArrayExpression struct {
	Pos      Position
	Elements []Expr
}

// ObjectExpression is an object literal.
// Example: "{ a: 1 }"
type ObjectExpression struct {
	Pos        Position
	Properties []*Property
}

// Property is a single key/value pair of an object literal.
type Property struct {
	Pos   Position
	Key   string
	Value Expr
}

// SpreadElement is "...arg" inside an array literal or call arguments.
type SpreadElement struct {
	Pos      Position
	Argument Expr
}

// UnaryExpression is a prefix operator application.
// Example: "!ok", "-x", "typeof x"
type UnaryExpression struct {
	Pos      Position
	Operator string
	Argument Expr
}

// UpdateExpression is "++" or "--" in prefix or postfix position.
// Example: "i++", "--i"
type UpdateExpression struct {
	Pos      Position
	Operator string
	Prefix   bool
	Argument Expr
}

// BinaryExpression is an arithmetic, comparison or bitwise operator application.
// Example: "a * b", "x === y"
type BinaryExpression struct {
	Pos      Position
	Operator string
	Left     Expr
	Right    Expr
}

// LogicalExpression is "&&" or "||".
type LogicalExpression struct {
	Pos      Position
	Operator string
	Left     Expr
	Right    Expr
}

// AssignmentExpression is "=" or a compound assignment.
// Example: "mut_x = 1", "total += 2"
type AssignmentExpression struct {
	Pos      Position
	Operator string
	Left     Expr
	Right    Expr
}

// MemberExpression is "object.property" (Computed false, Property is an
// *Identifier) or "object[property]" (Computed true).
type MemberExpression struct {
	Pos      Position
	Object   Expr
	Property Expr
	Computed bool
}

// CallExpression is a call; Callee is a MemberExpression for method calls.
// Example: "assert(x == 1)", "arr.includes(x)"
type CallExpression struct {
	Pos       Position
	Callee    Expr
	Arguments []Expr
}

// ConditionalExpression is the ternary "test ? consequent : alternate".
type ConditionalExpression struct {
	Pos        Position
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (*Identifier) isExpr()            {}
func (*Literal) isExpr()               {}
func (*TemplateLiteral) isExpr()       {}
func (*ArrayExpression) isExpr()       {}
func (*ObjectExpression) isExpr()      {}
func (*SpreadElement) isExpr()         {}
func (*UnaryExpression) isExpr()       {}
func (*UpdateExpression) isExpr()      {}
func (*BinaryExpression) isExpr()      {}
func (*LogicalExpression) isExpr()     {}
func (*AssignmentExpression) isExpr()  {}
func (*MemberExpression) isExpr()      {}
func (*CallExpression) isExpr()        {}
func (*ConditionalExpression) isExpr() {}

func (*Identifier) isPattern()   {}
func (*ArrayPattern) isPattern() {}
func (*RestElement) isPattern()  {}

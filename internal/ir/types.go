package ir

// IR types for transpiled circuits.
// Expressions and statements are closed sets: the unexported marker methods
// keep other packages from adding kinds, and every consumer goes through
// ExprVisitor / StatementVisitor so a new kind fails to compile until each
// consumer handles it.

// CircuitParam is one public or private input slot.
// Index is the position within its own group.
type CircuitParam struct {
	Name  string
	Index int
}

// ParsedCircuit is the complete analysis result for one circuit function.
type ParsedCircuit struct {
	PublicParams  []CircuitParam
	PrivateParams []CircuitParam
	Statements    []Statement
}

// Expr is an IR expression node.
type Expr interface {
	exprNode()
}

// LiteralKind distinguishes the surface spelling a literal came from.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BigIntLiteral
	BooleanLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case StringLiteral:
		return "string"
	case BigIntLiteral:
		return "bigint"
	case BooleanLiteral:
		return "boolean"
	default:
		return "unknown"
	}
}

type Identifier struct {
	Name string
}

// Literal holds the constant's text: numbers keep their source spelling
// (hex included), bigints have no suffix, strings are unquoted and
// booleans are "true" or "false".
type Literal struct {
	Kind  LiteralKind
	Value string
}

type Binary struct {
	Left     Expr
	Operator string
	Right    Expr
}

type Unary struct {
	Operator string
	Operand  Expr
}

// Member is an array element access.
type Member struct {
	Object Expr
	Index  Expr
}

type ArrayLiteral struct {
	Elements []Expr
}

// Call is a free call when Method is empty, otherwise a method call on
// Callee.
type Call struct {
	Callee Expr
	Method string
	Args   []Expr
}

type IfExpr struct {
	Condition  Expr
	Consequent Expr
	Alternate  Expr
}

func (*Identifier) exprNode()   {}
func (*Literal) exprNode()      {}
func (*Binary) exprNode()       {}
func (*Unary) exprNode()        {}
func (*Member) exprNode()       {}
func (*ArrayLiteral) exprNode() {}
func (*Call) exprNode()         {}
func (*IfExpr) exprNode()       {}

// Statement is an IR statement node.
type Statement interface {
	statementNode()
}

// Assert checks Condition; Message is empty when none was given.
type Assert struct {
	Condition Expr
	Message   string
}

type VariableDeclaration struct {
	Name        string
	Mutable     bool
	Initializer Expr
}

type Assignment struct {
	Target string
	Value  Expr
}

// IfStatement has a nil Alternate when the source had no else clause.
type IfStatement struct {
	Condition  Expr
	Consequent []Statement
	Alternate  []Statement
}

// ForStatement iterates Variable from Start up to End, including End when
// Inclusive is set.
type ForStatement struct {
	Variable  string
	Start     Expr
	End       Expr
	Inclusive bool
	Body      []Statement
}

func (*Assert) statementNode()              {}
func (*VariableDeclaration) statementNode() {}
func (*Assignment) statementNode()          {}
func (*IfStatement) statementNode()         {}
func (*ForStatement) statementNode()        {}

// IsOrdering reports whether op is one of the ordering comparisons.
func IsOrdering(op string) bool {
	switch op {
	case "<", ">", "<=", ">=":
		return true
	}
	return false
}

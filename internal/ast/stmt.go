package ast

// Function is the single circuit function of a source file, written either as
// a function declaration/expression or as an arrow function.
// Example: "([expected], [secret]) => { assert(secret * secret == expected); }"
type Function struct {
	Pos    Position
	Name   string // empty for anonymous functions and arrows
	Arrow  bool
	Params []Pattern
	Body   *BlockStatement
}

// ArrayPattern destructures an array parameter.
// Example: "[a, b, c]"
type ArrayPattern struct {
	Pos      Position
	Elements []Pattern
}

// RestElement is "...name" inside a pattern.
type RestElement struct {
	Pos      Position
	Argument Pattern
}

// BlockStatement is a brace-delimited statement list.
type BlockStatement struct {
	Pos  Position
	Body []Stmt
}

// VariableDeclaration is a let/const/var statement.
// Example: "let mut_sum = 0;"
type VariableDeclaration struct {
	Pos          Position
	Kind         string
	Declarations []*VariableDeclarator
}

// VariableDeclarator is a single "id = init" entry; Init is nil when absent.
type VariableDeclarator struct {
	Pos  Position
	ID   Pattern
	Init Expr
}

// ExpressionStatement is an expression evaluated for effect.
// Example: "assert(x == 1);", "mut_x = 2;"
type ExpressionStatement struct {
	Pos        Position
	Expression Expr
}

// IfStatement is "if (test) consequent [else alternate]".
type IfStatement struct {
	Pos        Position
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil without an else clause
}

// ForStatement is a C-style for loop; Init is a *VariableDeclaration, an
// *ExpressionStatement or nil. Test and Update may be nil.
type ForStatement struct {
	Pos    Position
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

// WhileStatement is parsed so it can be skipped.
type WhileStatement struct {
	Pos  Position
	Test Expr
	Body Stmt
}

// ReturnStatement is parsed so it can be skipped.
type ReturnStatement struct {
	Pos      Position
	Argument Expr
}

type BreakStatement struct {
	Pos Position
}

type ContinueStatement struct {
	Pos Position
}

// EmptyStatement is a lone ";".
type EmptyStatement struct {
	Pos Position
}

func (*BlockStatement) isStmt()      {}
func (*VariableDeclaration) isStmt() {}
func (*ExpressionStatement) isStmt() {}
func (*IfStatement) isStmt()         {}
func (*ForStatement) isStmt()        {}
func (*WhileStatement) isStmt()      {}
func (*ReturnStatement) isStmt()     {}
func (*BreakStatement) isStmt()      {}
func (*ContinueStatement) isStmt()   {}
func (*EmptyStatement) isStmt()      {}

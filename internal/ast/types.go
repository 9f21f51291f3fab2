package ast

// NodeType names a syntax node kind. Values follow the ESTree spelling so
// diagnostics read the same as in JavaScript tooling.
type NodeType string

const (
	// Program level
	FUNCTION NodeType = "Function"

	// Patterns
	ARRAY_PATTERN NodeType = "ArrayPattern"
	REST_ELEMENT  NodeType = "RestElement"

	// Statements
	BLOCK_STMT     NodeType = "BlockStatement"
	VAR_DECL       NodeType = "VariableDeclaration"
	VAR_DECLARATOR NodeType = "VariableDeclarator"
	EXPR_STMT      NodeType = "ExpressionStatement"
	IF_STMT        NodeType = "IfStatement"
	FOR_STMT       NodeType = "ForStatement"
	WHILE_STMT     NodeType = "WhileStatement"
	RETURN_STMT    NodeType = "ReturnStatement"
	BREAK_STMT     NodeType = "BreakStatement"
	CONTINUE_STMT  NodeType = "ContinueStatement"
	EMPTY_STMT     NodeType = "EmptyStatement"

	// Expressions
	IDENT_EXPR       NodeType = "Identifier"
	LITERAL_EXPR     NodeType = "Literal"
	TEMPLATE_EXPR    NodeType = "TemplateLiteral"
	ARRAY_EXPR       NodeType = "ArrayExpression"
	OBJECT_EXPR      NodeType = "ObjectExpression"
	PROPERTY         NodeType = "Property"
	SPREAD_EXPR      NodeType = "SpreadElement"
	UNARY_EXPR       NodeType = "UnaryExpression"
	UPDATE_EXPR      NodeType = "UpdateExpression"
	BINARY_EXPR      NodeType = "BinaryExpression"
	LOGICAL_EXPR     NodeType = "LogicalExpression"
	ASSIGN_EXPR      NodeType = "AssignmentExpression"
	MEMBER_EXPR      NodeType = "MemberExpression"
	CALL_EXPR        NodeType = "CallExpression"
	CONDITIONAL_EXPR NodeType = "ConditionalExpression"
)

// LiteralKind tells which JavaScript literal form produced a Literal node.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BigIntLiteral
	BooleanLiteral
	NullLiteral
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
	case NullLiteral:
		return "null"
	default:
		return "unknown"
	}
}

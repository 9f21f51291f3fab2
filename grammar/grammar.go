package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a source file holding exactly one circuit function.
type Program struct {
	Pos      lexer.Position
	Function *Function `@@ ";"?`
}

// Function covers "function name(...) {...}", "function (...) {...}" and
// "(...) => {...}"; the parser package rejects the mixed spellings.
type Function struct {
	Pos     lexer.Position
	Keyword bool           `@"function"?`
	Name    string         `@Ident?`
	Params  []*PatternElem `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Arrow   bool           `@"=>"?`
	Body    *Block         `@@`
}

type PatternElem struct {
	Pos   lexer.Position
	Rest  bool          `@"..."?`
	Array *ArrayPattern `(  @@`
	Name  *string       ` | @Ident )`
}

type ArrayPattern struct {
	Pos      lexer.Position
	Open     string         `@"["`
	Elements []*PatternElem `( @@ ( "," @@ )* ","? )? "]"`
}

type Block struct {
	Pos        lexer.Position
	Open       string       `@"{"`
	Statements []*Statement `@@* "}"`
}

type Statement struct {
	Pos      lexer.Position
	Block    *Block      `  @@`
	Var      *VarDecl    `| @@ ";"?`
	If       *IfStmt     `| @@`
	For      *ForStmt    `| @@`
	While    *WhileStmt  `| @@`
	Return   *ReturnStmt `| @@`
	Break    bool        `| @"break" ";"?`
	Continue bool        `| @"continue" ";"?`
	Empty    bool        `| @";"`
	Expr     *Expression `| @@ ";"?`
}

type VarDecl struct {
	Pos         lexer.Position
	Kind        string        `@("let" | "const" | "var")`
	Declarators []*Declarator `@@ ( "," @@ )*`
}

type Declarator struct {
	Pos    lexer.Position
	Target *PatternElem `@@`
	Init   *Expression  `( "=" @@ )?`
}

type IfStmt struct {
	Pos        lexer.Position
	Test       *Expression `"if" "(" @@ ")"`
	Consequent *Statement  `@@`
	Alternate  *Statement  `( "else" @@ )?`
}

type ForStmt struct {
	Pos    lexer.Position
	Init   *ForInit    `"for" "(" @@? ";"`
	Test   *Expression `@@? ";"`
	Update *Expression `@@? ")"`
	Body   *Statement  `@@`
}

type ForInit struct {
	Pos  lexer.Position
	Var  *VarDecl    `  @@`
	Expr *Expression `| @@`
}

type WhileStmt struct {
	Pos  lexer.Position
	Test *Expression `"while" "(" @@ ")"`
	Body *Statement  `@@`
}

type ReturnStmt struct {
	Pos     lexer.Position
	Keyword string      `@"return"`
	Value   *Expression `@@? ";"?`
}

// Expression is an assignment or a conditional expression.
type Expression struct {
	Pos    lexer.Position
	Target *Conditional `@@`
	Op     string       `( @("=" | "+=" | "-=" | "*=" | "/=" | "%=")`
	Value  *Expression  `  @@ )?`
}

type Conditional struct {
	Pos        lexer.Position
	Test       *Binary     `@@`
	Consequent *Expression `( "?" @@`
	Alternate  *Expression `  ":" @@ )?`
}

// Binary is a flat operator chain; precedence is applied when lowering.
type Binary struct {
	Pos  lexer.Position
	Head *Unary   `@@`
	Tail []*BinOp `@@*`
}

type BinOp struct {
	Pos      lexer.Position
	Operator string `@("||" | "&&" | "===" | "!==" | "==" | "!=" | "<=" | ">=" | ">>>" | "<<" | ">>" | "<" | ">" | "**" | "+" | "-" | "*" | "/" | "%" | "&" | "|" | "^")`
	Right    *Unary `@@`
}

type Unary struct {
	Pos      lexer.Position
	Operator string   `(  @("!" | "-" | "+" | "~" | "typeof" | "++" | "--")`
	Operand  *Unary   `   @@ )`
	Postfix  *Postfix `| @@`
}

type Postfix struct {
	Pos     lexer.Position
	Primary *Primary  `@@`
	Suffix  []*Suffix `@@*`
	Update  string    `@("++" | "--")?`
}

type Suffix struct {
	Pos      lexer.Position
	Property string      `  "." @Ident`
	Index    *Expression `| "[" @@ "]"`
	Call     *Arguments  `| @@`
}

type Arguments struct {
	Pos  lexer.Position
	Open string     `@"("`
	Args []*Element `( @@ ( "," @@ )* ","? )? ")"`
}

type Element struct {
	Pos    lexer.Position
	Spread bool        `@"..."?`
	Value  *Expression `@@`
}

type Primary struct {
	Pos      lexer.Position
	Array    *ArrayLit   `  @@`
	Object   *ObjectLit  `| @@`
	Template *string     `| @Template`
	BigInt   *string     `| @BigInt`
	Number   *string     `| @Number`
	String   *string     `| @String`
	Bool     *string     `| @("true" | "false")`
	Null     *string     `| @"null"`
	Ident    *string     `| @Ident`
	Paren    *Expression `| "(" @@ ")"`
}

type ArrayLit struct {
	Pos      lexer.Position
	Open     string     `@"["`
	Elements []*Element `( @@ ( "," @@ )* ","? )? "]"`
}

type ObjectLit struct {
	Pos        lexer.Position
	Open       string      `@"{"`
	Properties []*Property `( @@ ( "," @@ )* ","? )? "}"`
}

type Property struct {
	Pos   lexer.Position
	Key   string      `@(Ident | String | Number)`
	Value *Expression `( ":" @@ )?`
}

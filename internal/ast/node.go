package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

// Expr is any node that can appear in expression position.
type Expr interface {
	Node
	isExpr()
}

// Stmt is any node that can appear in statement position.
type Stmt interface {
	Node
	isStmt()
}

// Pattern is a binding target in a parameter list.
type Pattern interface {
	Node
	isPattern()
}

func (f *Function) NodePos() Position { return f.Pos }
func (*Function) NodeType() NodeType  { return FUNCTION }

func (p *ArrayPattern) NodePos() Position { return p.Pos }
func (*ArrayPattern) NodeType() NodeType  { return ARRAY_PATTERN }

func (r *RestElement) NodePos() Position { return r.Pos }
func (*RestElement) NodeType() NodeType  { return REST_ELEMENT }

func (b *BlockStatement) NodePos() Position { return b.Pos }
func (*BlockStatement) NodeType() NodeType  { return BLOCK_STMT }

func (v *VariableDeclaration) NodePos() Position { return v.Pos }
func (*VariableDeclaration) NodeType() NodeType  { return VAR_DECL }

func (d *VariableDeclarator) NodePos() Position { return d.Pos }
func (*VariableDeclarator) NodeType() NodeType  { return VAR_DECLARATOR }

func (e *ExpressionStatement) NodePos() Position { return e.Pos }
func (*ExpressionStatement) NodeType() NodeType  { return EXPR_STMT }

func (i *IfStatement) NodePos() Position { return i.Pos }
func (*IfStatement) NodeType() NodeType  { return IF_STMT }

func (f *ForStatement) NodePos() Position { return f.Pos }
func (*ForStatement) NodeType() NodeType  { return FOR_STMT }

func (w *WhileStatement) NodePos() Position { return w.Pos }
func (*WhileStatement) NodeType() NodeType  { return WHILE_STMT }

func (r *ReturnStatement) NodePos() Position { return r.Pos }
func (*ReturnStatement) NodeType() NodeType  { return RETURN_STMT }

func (b *BreakStatement) NodePos() Position { return b.Pos }
func (*BreakStatement) NodeType() NodeType  { return BREAK_STMT }

func (c *ContinueStatement) NodePos() Position { return c.Pos }
func (*ContinueStatement) NodeType() NodeType  { return CONTINUE_STMT }

func (e *EmptyStatement) NodePos() Position { return e.Pos }
func (*EmptyStatement) NodeType() NodeType  { return EMPTY_STMT }

func (i *Identifier) NodePos() Position { return i.Pos }
func (*Identifier) NodeType() NodeType  { return IDENT_EXPR }

func (l *Literal) NodePos() Position { return l.Pos }
func (*Literal) NodeType() NodeType  { return LITERAL_EXPR }

func (t *TemplateLiteral) NodePos() Position { return t.Pos }
func (*TemplateLiteral) NodeType() NodeType  { return TEMPLATE_EXPR }

func (a *ArrayExpression) NodePos() Position { return a.Pos }
func (*ArrayExpression) NodeType() NodeType  { return ARRAY_EXPR }

func (o *ObjectExpression) NodePos() Position { return o.Pos }
func (*ObjectExpression) NodeType() NodeType  { return OBJECT_EXPR }

func (p *Property) NodePos() Position { return p.Pos }
func (*Property) NodeType() NodeType  { return PROPERTY }

func (s *SpreadElement) NodePos() Position { return s.Pos }
func (*SpreadElement) NodeType() NodeType  { return SPREAD_EXPR }

func (u *UnaryExpression) NodePos() Position { return u.Pos }
func (*UnaryExpression) NodeType() NodeType  { return UNARY_EXPR }

func (u *UpdateExpression) NodePos() Position { return u.Pos }
func (*UpdateExpression) NodeType() NodeType  { return UPDATE_EXPR }

func (b *BinaryExpression) NodePos() Position { return b.Pos }
func (*BinaryExpression) NodeType() NodeType  { return BINARY_EXPR }

func (l *LogicalExpression) NodePos() Position { return l.Pos }
func (*LogicalExpression) NodeType() NodeType  { return LOGICAL_EXPR }

func (a *AssignmentExpression) NodePos() Position { return a.Pos }
func (*AssignmentExpression) NodeType() NodeType  { return ASSIGN_EXPR }

func (m *MemberExpression) NodePos() Position { return m.Pos }
func (*MemberExpression) NodeType() NodeType  { return MEMBER_EXPR }

func (c *CallExpression) NodePos() Position { return c.Pos }
func (*CallExpression) NodeType() NodeType  { return CALL_EXPR }

func (c *ConditionalExpression) NodePos() Position { return c.Pos }
func (*ConditionalExpression) NodeType() NodeType  { return CONDITIONAL_EXPR }

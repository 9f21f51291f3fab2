package parser

import (
	"strconv"
	"strings"

	"izinoir/grammar"
	"izinoir/internal/ast"
	"izinoir/internal/errors"
)

func lowerFunction(fn *grammar.Function) (*ast.Function, error) {
	pos := convertPos(fn.Pos)

	switch {
	case fn.Keyword && fn.Arrow:
		return nil, errors.SyntaxError("unexpected '=>' after a function declaration", pos)
	case !fn.Keyword && !fn.Arrow:
		return nil, errors.SyntaxError("expected 'function' or an arrow function", pos)
	case fn.Arrow && fn.Name != "":
		return nil, errors.SyntaxError("arrow functions cannot be named", pos)
	}

	params := make([]ast.Pattern, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, lowerPattern(p))
	}

	return &ast.Function{
		Pos:    pos,
		Name:   fn.Name,
		Arrow:  fn.Arrow,
		Params: params,
		Body:   lowerBlock(fn.Body),
	}, nil
}

func lowerPattern(p *grammar.PatternElem) ast.Pattern {
	pos := convertPos(p.Pos)

	var target ast.Pattern
	if p.Array != nil {
		elements := make([]ast.Pattern, 0, len(p.Array.Elements))
		for _, e := range p.Array.Elements {
			elements = append(elements, lowerPattern(e))
		}
		target = &ast.ArrayPattern{Pos: convertPos(p.Array.Pos), Elements: elements}
	} else {
		target = &ast.Identifier{Pos: pos, Name: *p.Name}
	}

	if p.Rest {
		return &ast.RestElement{Pos: pos, Argument: target}
	}
	return target
}

func lowerBlock(b *grammar.Block) *ast.BlockStatement {
	body := make([]ast.Stmt, 0, len(b.Statements))
	for _, s := range b.Statements {
		body = append(body, lowerStatement(s))
	}
	return &ast.BlockStatement{Pos: convertPos(b.Pos), Body: body}
}

func lowerStatement(s *grammar.Statement) ast.Stmt {
	pos := convertPos(s.Pos)

	switch {
	case s.Block != nil:
		return lowerBlock(s.Block)
	case s.Var != nil:
		return lowerVarDecl(s.Var)
	case s.If != nil:
		stmt := &ast.IfStatement{
			Pos:        pos,
			Test:       lowerExpression(s.If.Test),
			Consequent: lowerStatement(s.If.Consequent),
		}
		if s.If.Alternate != nil {
			stmt.Alternate = lowerStatement(s.If.Alternate)
		}
		return stmt
	case s.For != nil:
		return lowerFor(s.For)
	case s.While != nil:
		return &ast.WhileStatement{
			Pos:  pos,
			Test: lowerExpression(s.While.Test),
			Body: lowerStatement(s.While.Body),
		}
	case s.Return != nil:
		stmt := &ast.ReturnStatement{Pos: pos}
		if s.Return.Value != nil {
			stmt.Argument = lowerExpression(s.Return.Value)
		}
		return stmt
	case s.Break:
		return &ast.BreakStatement{Pos: pos}
	case s.Continue:
		return &ast.ContinueStatement{Pos: pos}
	case s.Expr != nil:
		return &ast.ExpressionStatement{Pos: pos, Expression: lowerExpression(s.Expr)}
	default:
		return &ast.EmptyStatement{Pos: pos}
	}
}

func lowerVarDecl(v *grammar.VarDecl) *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{
		Pos:          convertPos(v.Pos),
		Kind:         v.Kind,
		Declarations: make([]*ast.VariableDeclarator, 0, len(v.Declarators)),
	}
	for _, d := range v.Declarators {
		declarator := &ast.VariableDeclarator{
			Pos: convertPos(d.Pos),
			ID:  lowerPattern(d.Target),
		}
		if d.Init != nil {
			declarator.Init = lowerExpression(d.Init)
		}
		decl.Declarations = append(decl.Declarations, declarator)
	}
	return decl
}

func lowerFor(f *grammar.ForStmt) *ast.ForStatement {
	stmt := &ast.ForStatement{
		Pos:  convertPos(f.Pos),
		Body: lowerStatement(f.Body),
	}
	if f.Init != nil {
		if f.Init.Var != nil {
			stmt.Init = lowerVarDecl(f.Init.Var)
		} else {
			stmt.Init = lowerExpression(f.Init.Expr)
		}
	}
	if f.Test != nil {
		stmt.Test = lowerExpression(f.Test)
	}
	if f.Update != nil {
		stmt.Update = lowerExpression(f.Update)
	}
	return stmt
}

func lowerExpression(e *grammar.Expression) ast.Expr {
	target := lowerConditional(e.Target)
	if e.Op == "" {
		return target
	}
	return &ast.AssignmentExpression{
		Pos:      convertPos(e.Pos),
		Operator: e.Op,
		Left:     target,
		Right:    lowerExpression(e.Value),
	}
}

func lowerConditional(c *grammar.Conditional) ast.Expr {
	test := lowerBinary(c.Test)
	if c.Consequent == nil {
		return test
	}
	return &ast.ConditionalExpression{
		Pos:        convertPos(c.Pos),
		Test:       test,
		Consequent: lowerExpression(c.Consequent),
		Alternate:  lowerExpression(c.Alternate),
	}
}

func lowerBinary(b *grammar.Binary) ast.Expr {
	if len(b.Tail) == 0 {
		return lowerUnary(b.Head)
	}

	chain := &binaryChain{
		operands:  make([]ast.Expr, 0, len(b.Tail)+1),
		operators: make([]string, 0, len(b.Tail)),
		positions: make([]ast.Position, 0, len(b.Tail)),
	}
	chain.operands = append(chain.operands, lowerUnary(b.Head))
	for _, op := range b.Tail {
		chain.operators = append(chain.operators, op.Operator)
		chain.positions = append(chain.positions, convertPos(op.Pos))
		chain.operands = append(chain.operands, lowerUnary(op.Right))
	}
	return chain.parse(0)
}

func lowerUnary(u *grammar.Unary) ast.Expr {
	if u.Postfix != nil {
		return lowerPostfix(u.Postfix)
	}

	pos := convertPos(u.Pos)
	operand := lowerUnary(u.Operand)
	if u.Operator == "++" || u.Operator == "--" {
		return &ast.UpdateExpression{Pos: pos, Operator: u.Operator, Prefix: true, Argument: operand}
	}
	return &ast.UnaryExpression{Pos: pos, Operator: u.Operator, Argument: operand}
}

func lowerPostfix(p *grammar.Postfix) ast.Expr {
	expr := lowerPrimary(p.Primary)

	for _, s := range p.Suffix {
		pos := convertPos(s.Pos)
		switch {
		case s.Call != nil:
			expr = &ast.CallExpression{Pos: expr.NodePos(), Callee: expr, Arguments: lowerElements(s.Call.Args)}
		case s.Index != nil:
			expr = &ast.MemberExpression{Pos: expr.NodePos(), Object: expr, Property: lowerExpression(s.Index), Computed: true}
		default:
			expr = &ast.MemberExpression{
				Pos:      expr.NodePos(),
				Object:   expr,
				Property: &ast.Identifier{Pos: pos, Name: s.Property},
			}
		}
	}

	if p.Update != "" {
		return &ast.UpdateExpression{Pos: convertPos(p.Pos), Operator: p.Update, Argument: expr}
	}
	return expr
}

func lowerElements(elements []*grammar.Element) []ast.Expr {
	out := make([]ast.Expr, 0, len(elements))
	for _, e := range elements {
		value := lowerExpression(e.Value)
		if e.Spread {
			value = &ast.SpreadElement{Pos: convertPos(e.Pos), Argument: value}
		}
		out = append(out, value)
	}
	return out
}

func lowerPrimary(p *grammar.Primary) ast.Expr {
	pos := convertPos(p.Pos)

	switch {
	case p.Array != nil:
		return &ast.ArrayExpression{Pos: pos, Elements: lowerElements(p.Array.Elements)}
	case p.Object != nil:
		obj := &ast.ObjectExpression{Pos: pos}
		for _, prop := range p.Object.Properties {
			obj.Properties = append(obj.Properties, lowerProperty(prop))
		}
		return obj
	case p.Template != nil:
		return &ast.TemplateLiteral{Pos: pos, Raw: *p.Template}
	case p.BigInt != nil:
		raw := *p.BigInt
		return &ast.Literal{Pos: pos, Kind: ast.BigIntLiteral, Value: strings.TrimSuffix(raw, "n"), Raw: raw}
	case p.Number != nil:
		return &ast.Literal{Pos: pos, Kind: ast.NumberLiteral, Value: *p.Number, Raw: *p.Number}
	case p.String != nil:
		return &ast.Literal{Pos: pos, Kind: ast.StringLiteral, Value: unquote(*p.String), Raw: *p.String}
	case p.Bool != nil:
		return &ast.Literal{Pos: pos, Kind: ast.BooleanLiteral, Value: *p.Bool, Raw: *p.Bool}
	case p.Null != nil:
		return &ast.Literal{Pos: pos, Kind: ast.NullLiteral, Value: "null", Raw: "null"}
	case p.Ident != nil:
		return &ast.Identifier{Pos: pos, Name: *p.Ident}
	default:
		return lowerExpression(p.Paren)
	}
}

func lowerProperty(p *grammar.Property) *ast.Property {
	pos := convertPos(p.Pos)
	key := p.Key
	if strings.HasPrefix(key, `"`) || strings.HasPrefix(key, `'`) {
		key = unquote(key)
	}

	prop := &ast.Property{Pos: pos, Key: key}
	if p.Value != nil {
		prop.Value = lowerExpression(p.Value)
	} else {
		prop.Value = &ast.Identifier{Pos: pos, Name: key}
	}
	return prop
}

// unquote decodes a single- or double-quoted string token.
func unquote(raw string) string {
	if len(raw) >= 2 && raw[0] == '\'' {
		body := raw[1 : len(raw)-1]
		body = strings.ReplaceAll(body, `\'`, `'`)
		body = strings.ReplaceAll(body, `"`, `\"`)
		raw = `"` + body + `"`
	}
	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return strings.Trim(raw, `"'`)
}

package lsp

import (
	"cmp"
	"slices"

	"izinoir/internal/analyzer"
	"izinoir/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	modDeclaration = 1 << iota
	modReadonly
)

type tokenCollector struct {
	params map[string]bool
	tokens []SemanticToken
}

func collectSemanticTokens(fn *ast.Function) []SemanticToken {
	if fn == nil {
		return nil
	}

	c := &tokenCollector{params: make(map[string]bool)}
	for _, p := range fn.Params {
		c.pattern(p)
	}
	c.stmt(fn.Body)
	return c.tokens
}

func (c *tokenCollector) pattern(p ast.Pattern) {
	switch p := p.(type) {
	case *ast.ArrayPattern:
		for _, e := range p.Elements {
			c.pattern(e)
		}
	case *ast.RestElement:
		c.pattern(p.Argument)
	case *ast.Identifier:
		c.params[p.Name] = true
		c.add(p.Pos, len(p.Name), "parameter", modDeclaration|modReadonly)
	}
}

func (c *tokenCollector) stmt(s ast.Node) {
	switch s := s.(type) {
	case *ast.BlockStatement:
		for _, inner := range s.Body {
			c.stmt(inner)
		}
	case *ast.VariableDeclaration:
		c.add(s.Pos, len(s.Kind), "keyword", 0)
		for _, d := range s.Declarations {
			if id, ok := d.ID.(*ast.Identifier); ok {
				mods := modDeclaration
				if !analyzer.IsMutableName(id.Name) {
					mods |= modReadonly
				}
				c.add(id.Pos, len(id.Name), "variable", mods)
			}
			c.expr(d.Init)
		}
	case *ast.ExpressionStatement:
		c.expr(s.Expression)
	case *ast.IfStatement:
		c.add(s.Pos, len("if"), "keyword", 0)
		c.expr(s.Test)
		c.stmt(s.Consequent)
		if s.Alternate != nil {
			c.stmt(s.Alternate)
		}
	case *ast.ForStatement:
		c.add(s.Pos, len("for"), "keyword", 0)
		if s.Init != nil {
			c.stmt(s.Init)
		}
		c.expr(s.Test)
		c.expr(s.Update)
		c.stmt(s.Body)
	case *ast.WhileStatement:
		c.add(s.Pos, len("while"), "keyword", 0)
		c.expr(s.Test)
		c.stmt(s.Body)
	case *ast.ReturnStatement:
		c.add(s.Pos, len("return"), "keyword", 0)
		c.expr(s.Argument)
	}
}

func (c *tokenCollector) expr(e ast.Expr) {
	switch e := e.(type) {
	case nil:
	case *ast.Identifier:
		if c.params[e.Name] {
			c.add(e.Pos, len(e.Name), "parameter", modReadonly)
		} else {
			c.add(e.Pos, len(e.Name), "variable", 0)
		}
	case *ast.Literal:
		switch e.Kind {
		case ast.NumberLiteral, ast.BigIntLiteral:
			c.add(e.Pos, len(e.Raw), "number", 0)
		case ast.StringLiteral:
			c.add(e.Pos, len(e.Raw), "string", 0)
		default:
			c.add(e.Pos, len(e.Raw), "keyword", 0)
		}
	case *ast.TemplateLiteral:
		c.add(e.Pos, len(e.Raw), "string", 0)
	case *ast.ArrayExpression:
		for _, el := range e.Elements {
			c.expr(el)
		}
	case *ast.ObjectExpression:
		for _, p := range e.Properties {
			c.expr(p.Value)
		}
	case *ast.SpreadElement:
		c.expr(e.Argument)
	case *ast.UnaryExpression:
		c.expr(e.Argument)
	case *ast.UpdateExpression:
		c.expr(e.Argument)
	case *ast.BinaryExpression:
		c.expr(e.Left)
		c.expr(e.Right)
	case *ast.LogicalExpression:
		c.expr(e.Left)
		c.expr(e.Right)
	case *ast.AssignmentExpression:
		c.expr(e.Left)
		c.expr(e.Right)
	case *ast.ConditionalExpression:
		c.expr(e.Test)
		c.expr(e.Consequent)
		c.expr(e.Alternate)
	case *ast.MemberExpression:
		c.member(e, "property")
	case *ast.CallExpression:
		switch callee := e.Callee.(type) {
		case *ast.Identifier:
			c.add(callee.Pos, len(callee.Name), "function", 0)
		case *ast.MemberExpression:
			c.member(callee, "method")
		default:
			c.expr(callee)
		}
		for _, arg := range e.Arguments {
			c.expr(arg)
		}
	}
}

func (c *tokenCollector) member(m *ast.MemberExpression, kind string) {
	c.expr(m.Object)
	if m.Computed {
		c.expr(m.Property)
		return
	}
	if id, ok := m.Property.(*ast.Identifier); ok {
		// the property position is the '.' that introduces it
		pos := id.Pos
		pos.Column++
		c.add(pos, len(id.Name), kind, 0)
	}
}

func (c *tokenCollector) add(pos ast.Position, length int, tokenType string, modifiers int) {
	if length <= 0 || pos.Line < 1 || pos.Column < 1 {
		return
	}
	c.tokens = append(c.tokens, SemanticToken{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	})
}

// encodeSemanticTokens sorts tokens by position and encodes them into the
// relative LSP wire format.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	slices.SortStableFunc(tokens, func(a, b SemanticToken) int {
		if a.Line != b.Line {
			return cmp.Compare(a.Line, b.Line)
		}
		return cmp.Compare(a.StartChar, b.StartChar)
	})

	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))
		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	if f.Arrow {
		return fmt.Sprintf("(%s) => %s", strings.Join(params, ", "), f.Body.String())
	}
	return fmt.Sprintf("function %s(%s) %s", f.Name, strings.Join(params, ", "), f.Body.String())
}

func (p *ArrayPattern) String() string {
	return "[" + joinNodes(p.Elements) + "]"
}

func (r *RestElement) String() string {
	return "..." + r.Argument.String()
}

func (b *BlockStatement) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Body {
		sb.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (v *VariableDeclaration) String() string {
	return v.Kind + " " + joinNodes(v.Declarations) + ";"
}

func (d *VariableDeclarator) String() string {
	if d.Init == nil {
		return d.ID.String()
	}
	return d.ID.String() + " = " + d.Init.String()
}

func (e *ExpressionStatement) String() string {
	return e.Expression.String() + ";"
}

func (i *IfStatement) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Test.String(), i.Consequent.String())
	if i.Alternate != nil {
		s += " else " + i.Alternate.String()
	}
	return s
}

func (f *ForStatement) String() string {
	init := ""
	if f.Init != nil {
		init = strings.TrimSuffix(f.Init.String(), ";")
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", init, optional(f.Test), optional(f.Update), f.Body.String())
}

func (w *WhileStatement) String() string {
	return fmt.Sprintf("while (%s) %s", w.Test.String(), w.Body.String())
}

func (r *ReturnStatement) String() string {
	if r.Argument == nil {
		return "return;"
	}
	return "return " + r.Argument.String() + ";"
}

func (*BreakStatement) String() string    { return "break;" }
func (*ContinueStatement) String() string { return "continue;" }
func (*EmptyStatement) String() string    { return ";" }

func (i *Identifier) String() string { return i.Name }

func (l *Literal) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	switch l.Kind {
	case StringLiteral:
		return strconv.Quote(l.Value)
	case BigIntLiteral:
		return l.Value + "n"
	default:
		return l.Value
	}
}

func (t *TemplateLiteral) String() string { return t.Raw }

func (a *ArrayExpression) String() string {
	return "[" + joinNodes(a.Elements) + "]"
}

func (o *ObjectExpression) String() string {
	if len(o.Properties) == 0 {
		return "{}"
	}
	return "{ " + joinNodes(o.Properties) + " }"
}

func (p *Property) String() string {
	return p.Key + ": " + p.Value.String()
}

func (s *SpreadElement) String() string {
	return "..." + s.Argument.String()
}

func (u *UnaryExpression) String() string {
	if u.Operator == "typeof" {
		return "typeof " + u.Argument.String()
	}
	return u.Operator + u.Argument.String()
}

func (u *UpdateExpression) String() string {
	if u.Prefix {
		return u.Operator + u.Argument.String()
	}
	return u.Argument.String() + u.Operator
}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator, b.Right.String())
}

func (l *LogicalExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.String(), l.Operator, l.Right.String())
}

func (a *AssignmentExpression) String() string {
	return fmt.Sprintf("%s %s %s", a.Left.String(), a.Operator, a.Right.String())
}

func (m *MemberExpression) String() string {
	if m.Computed {
		return fmt.Sprintf("%s[%s]", m.Object.String(), m.Property.String())
	}
	return m.Object.String() + "." + m.Property.String()
}

func (c *CallExpression) String() string {
	return c.Callee.String() + "(" + joinNodes(c.Arguments) + ")"
}

func (c *ConditionalExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Test.String(), c.Consequent.String(), c.Alternate.String())
}

func joinNodes[T Node](nodes []T) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func optional(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

package ir

import (
	"encoding/json"
)

// MarshalCircuit encodes a circuit as JSON for tools outside the
// transpiler. Every expression and statement object carries a "kind"
// field naming its node type.
func MarshalCircuit(circuit *ParsedCircuit) ([]byte, error) {
	return json.MarshalIndent(circuitJSON(circuit), "", "  ")
}

type jsonObject = map[string]any

func circuitJSON(c *ParsedCircuit) jsonObject {
	return jsonObject{
		"publicParams":  paramsJSON(c.PublicParams),
		"privateParams": paramsJSON(c.PrivateParams),
		"statements":    statementsJSON(c.Statements),
	}
}

func paramsJSON(params []CircuitParam) []jsonObject {
	out := make([]jsonObject, len(params))
	for i, p := range params {
		out[i] = jsonObject{"name": p.Name, "index": p.Index}
	}
	return out
}

func statementsJSON(stmts []Statement) []jsonObject {
	out := make([]jsonObject, len(stmts))
	for i, s := range stmts {
		out[i] = VisitStatement[jsonObject](s, jsonEncoder{})
	}
	return out
}

func exprsJSON(exprs []Expr) []jsonObject {
	out := make([]jsonObject, len(exprs))
	for i, e := range exprs {
		out[i] = exprJSON(e)
	}
	return out
}

func exprJSON(e Expr) jsonObject {
	return VisitExpr[jsonObject](e, jsonEncoder{})
}

type jsonEncoder struct{}

func (jsonEncoder) VisitIdentifier(e *Identifier) jsonObject {
	return jsonObject{"kind": "Identifier", "name": e.Name}
}

func (jsonEncoder) VisitLiteral(e *Literal) jsonObject {
	return jsonObject{"kind": "Literal", "type": e.Kind.String(), "value": e.Value}
}

func (jsonEncoder) VisitBinary(e *Binary) jsonObject {
	return jsonObject{"kind": "Binary", "operator": e.Operator, "left": exprJSON(e.Left), "right": exprJSON(e.Right)}
}

func (jsonEncoder) VisitUnary(e *Unary) jsonObject {
	return jsonObject{"kind": "Unary", "operator": e.Operator, "operand": exprJSON(e.Operand)}
}

func (jsonEncoder) VisitMember(e *Member) jsonObject {
	return jsonObject{"kind": "Member", "object": exprJSON(e.Object), "index": exprJSON(e.Index)}
}

func (jsonEncoder) VisitArrayLiteral(e *ArrayLiteral) jsonObject {
	return jsonObject{"kind": "ArrayLiteral", "elements": exprsJSON(e.Elements)}
}

func (jsonEncoder) VisitCall(e *Call) jsonObject {
	obj := jsonObject{"kind": "Call", "callee": exprJSON(e.Callee), "args": exprsJSON(e.Args)}
	if e.Method != "" {
		obj["method"] = e.Method
	}
	return obj
}

func (jsonEncoder) VisitIfExpr(e *IfExpr) jsonObject {
	return jsonObject{
		"kind":       "IfExpr",
		"condition":  exprJSON(e.Condition),
		"consequent": exprJSON(e.Consequent),
		"alternate":  exprJSON(e.Alternate),
	}
}

func (jsonEncoder) VisitAssert(s *Assert) jsonObject {
	obj := jsonObject{"kind": "Assert", "condition": exprJSON(s.Condition)}
	if s.Message != "" {
		obj["message"] = s.Message
	}
	return obj
}

func (jsonEncoder) VisitVariableDeclaration(s *VariableDeclaration) jsonObject {
	return jsonObject{
		"kind":        "VariableDeclaration",
		"name":        s.Name,
		"mutable":     s.Mutable,
		"initializer": exprJSON(s.Initializer),
	}
}

func (jsonEncoder) VisitAssignment(s *Assignment) jsonObject {
	return jsonObject{"kind": "Assignment", "target": s.Target, "value": exprJSON(s.Value)}
}

func (jsonEncoder) VisitIfStatement(s *IfStatement) jsonObject {
	obj := jsonObject{
		"kind":       "IfStatement",
		"condition":  exprJSON(s.Condition),
		"consequent": statementsJSON(s.Consequent),
	}
	if s.Alternate != nil {
		obj["alternate"] = statementsJSON(s.Alternate)
	}
	return obj
}

func (jsonEncoder) VisitForStatement(s *ForStatement) jsonObject {
	return jsonObject{
		"kind":      "ForStatement",
		"variable":  s.Variable,
		"start":     exprJSON(s.Start),
		"end":       exprJSON(s.End),
		"inclusive": s.Inclusive,
		"body":      statementsJSON(s.Body),
	}
}

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"izinoir/internal/ir"
)

func id(name string) ir.Expr { return &ir.Identifier{Name: name} }

func num(value string) ir.Expr { return &ir.Literal{Kind: ir.NumberLiteral, Value: value} }

func bin(left ir.Expr, op string, right ir.Expr) ir.Expr {
	return &ir.Binary{Left: left, Operator: op, Right: right}
}

func TestGenerateSignature(t *testing.T) {
	circuit := &ir.ParsedCircuit{
		PublicParams:  []ir.CircuitParam{{Name: "expected", Index: 0}, {Name: "root", Index: 1}},
		PrivateParams: []ir.CircuitParam{{Name: "secret", Index: 0}, {Name: "salt", Index: 1}},
		Statements: []ir.Statement{
			&ir.Assert{Condition: bin(bin(id("secret"), "*", id("secret")), "==", id("expected"))},
		},
	}

	expected := "fn main(secret: Field, salt: Field, expected: pub Field, root: pub Field) {\n" +
		"    assert(secret * secret == expected);\n" +
		"}\n"
	assert.Equal(t, expected, Generate(circuit))
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "fn main() {\n}\n", Generate(&ir.ParsedCircuit{}))
}

func TestGenerateStatements(t *testing.T) {
	circuit := &ir.ParsedCircuit{
		PrivateParams: []ir.CircuitParam{{Name: "value", Index: 0}, {Name: "n", Index: 1}},
		Statements: []ir.Statement{
			&ir.VariableDeclaration{Name: "result", Mutable: true, Initializer: num("0")},
			&ir.IfStatement{
				Condition:  bin(id("value"), ">", num("10")),
				Consequent: []ir.Statement{&ir.Assignment{Target: "result", Value: num("1")}},
				Alternate:  []ir.Statement{&ir.Assignment{Target: "result", Value: num("0")}},
			},
			&ir.ForStatement{
				Variable:  "i",
				Start:     num("1"),
				End:       id("n"),
				Inclusive: true,
				Body: []ir.Statement{
					&ir.IfStatement{
						Condition:  bin(id("i"), "==", num("2")),
						Consequent: []ir.Statement{&ir.Assignment{Target: "result", Value: bin(id("result"), "+", id("i"))}},
					},
				},
			},
			&ir.Assert{Condition: bin(id("result"), "!=", num("0")), Message: "result must be set"},
		},
	}

	expected := `fn main(value: Field, n: Field) {
    let mut result: Field = 0;
    if (value as u64) > (10 as u64) {
        result = 1;
    } else {
        result = 0;
    }
    for i in 1..=n {
        if i == 2 {
            result = result + i;
        }
    }
    assert(result != 0, "result must be set");
}
`
	assert.Equal(t, expected, Generate(circuit))
}

func TestExclusiveRange(t *testing.T) {
	circuit := &ir.ParsedCircuit{
		Statements: []ir.Statement{
			&ir.ForStatement{Variable: "i", Start: num("0"), End: num("4"), Body: []ir.Statement{}},
		},
	}
	assert.Contains(t, Generate(circuit), "for i in 0..4 {\n    }\n")
}

func TestOrderingComparisonsAreCast(t *testing.T) {
	tests := []struct {
		name     string
		expr     ir.Expr
		expected string
	}{
		{"less", bin(id("a"), "<", id("b")), "(a as u64) < (b as u64)"},
		{"greater equal", bin(id("a"), ">=", num("0x10")), "(a as u64) >= (0x10 as u64)"},
		{"binary operand", bin(bin(id("a"), "+", id("b")), "<=", id("c")), "((a + b) as u64) <= (c as u64)"},
		{"member operand", bin(&ir.Member{Object: id("xs"), Index: id("i")}, ">", num("1")), "(xs[i] as u64) > (1 as u64)"},
		{"inside and", bin(bin(id("a"), "<", id("b")), "&", bin(id("b"), "<", id("c"))), "((a as u64) < (b as u64)) & ((b as u64) < (c as u64))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expr(tt.expr))
		})
	}
}

func TestBinaryParenthesization(t *testing.T) {
	tests := []struct {
		name     string
		expr     ir.Expr
		expected string
	}{
		{"higher child", bin(id("a"), "+", bin(id("b"), "*", id("c"))), "a + b * c"},
		{"lower left child", bin(bin(id("a"), "+", id("b")), "*", id("c")), "(a + b) * c"},
		{"left associative", bin(bin(id("a"), "-", id("b")), "-", id("c")), "a - b - c"},
		{"right grouping", bin(id("a"), "-", bin(id("b"), "-", id("c"))), "a - (b - c)"},
		{"or of ands", bin(bin(id("a"), "&", id("b")), "|", id("c")), "a & b | c"},
		{"and of or", bin(id("a"), "&", bin(id("b"), "|", id("c"))), "a & (b | c)"},
		{"chained equality", bin(bin(id("a"), "==", id("b")), "==", id("c")), "(a == b) == c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expr(tt.expr))
		})
	}
}

func TestUnaryParenthesization(t *testing.T) {
	assert.Equal(t, "-(a + b)", Expr(&ir.Unary{Operator: "-", Operand: bin(id("a"), "+", id("b"))}))
	assert.Equal(t, "!flag", Expr(&ir.Unary{Operator: "!", Operand: id("flag")}))
	assert.Equal(t, "-xs[0]", Expr(&ir.Unary{Operator: "-", Operand: &ir.Member{Object: id("xs"), Index: num("0")}}))
	assert.Equal(t, "-(if c { a } else { b })",
		Expr(&ir.Unary{Operator: "-", Operand: &ir.IfExpr{Condition: id("c"), Consequent: id("a"), Alternate: id("b")}}))
}

func TestLiteralsAndCalls(t *testing.T) {
	assert.Equal(t, "-5", Expr(num("-5")))
	assert.Equal(t, "0x1f", Expr(&ir.Literal{Kind: ir.StringLiteral, Value: "0x1f"}))
	assert.Equal(t, "true", Expr(&ir.Literal{Kind: ir.BooleanLiteral, Value: "true"}))
	assert.Equal(t, "123", Expr(&ir.Literal{Kind: ir.BigIntLiteral, Value: "123"}))

	assert.Equal(t, "arr.len()", Expr(&ir.Call{Callee: id("arr"), Method: "len"}))
	assert.Equal(t, "hash(a, b)", Expr(&ir.Call{Callee: id("hash"), Args: []ir.Expr{id("a"), id("b")}}))
	assert.Equal(t, "[a, 1, b]", Expr(&ir.ArrayLiteral{Elements: []ir.Expr{id("a"), num("1"), id("b")}}))
	assert.Equal(t, "if c { a } else { b }", Expr(&ir.IfExpr{Condition: id("c"), Consequent: id("a"), Alternate: id("b")}))
	assert.Equal(t, "a + (if c { 1 } else { 2 })",
		Expr(bin(id("a"), "+", &ir.IfExpr{Condition: id("c"), Consequent: num("1"), Alternate: num("2")})))
}

func TestInferType(t *testing.T) {
	boolean := &ir.Literal{Kind: ir.BooleanLiteral, Value: "true"}
	tests := []struct {
		name     string
		expr     ir.Expr
		expected string
	}{
		{"number", num("1"), "Field"},
		{"identifier", id("x"), "Field"},
		{"boolean", boolean, "bool"},
		{"comparison defaults to field", bin(id("a"), "==", id("b")), "Field"},
		{"array", &ir.ArrayLiteral{Elements: []ir.Expr{id("a"), id("b"), id("c")}}, "[Field; 3]"},
		{"bool array", &ir.ArrayLiteral{Elements: []ir.Expr{boolean}}, "[bool; 1]"},
		{"empty array", &ir.ArrayLiteral{}, "[Field; 0]"},
		{"nested array", &ir.ArrayLiteral{Elements: []ir.Expr{&ir.ArrayLiteral{Elements: []ir.Expr{num("1"), num("2")}}}}, "[[Field; 2]; 1]"},
		{"if takes consequent", &ir.IfExpr{Condition: id("c"), Consequent: boolean, Alternate: num("1")}, "bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferType(tt.expr))
		})
	}
}

func TestDeclarationTypes(t *testing.T) {
	circuit := &ir.ParsedCircuit{
		Statements: []ir.Statement{
			&ir.VariableDeclaration{Name: "arr", Initializer: &ir.ArrayLiteral{Elements: []ir.Expr{id("a"), id("b"), id("c")}}},
			&ir.VariableDeclaration{Name: "ok", Mutable: true, Initializer: &ir.Literal{Kind: ir.BooleanLiteral, Value: "false"}},
		},
	}

	out := Generate(circuit)
	assert.Contains(t, out, "    let arr: [Field; 3] = [a, b, c];\n")
	assert.Contains(t, out, "    let mut ok: bool = false;\n")
}

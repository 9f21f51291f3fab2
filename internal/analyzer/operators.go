package analyzer

import "sort"

// Surface binary operators and their target spelling. Logical operators
// become the eager bitwise forms because the target has no short-circuit
// boolean operators.
var binaryOperators = map[string]string{
	"==":  "==",
	"===": "==",
	"!=":  "!=",
	"!==": "!=",
	"+":   "+",
	"-":   "-",
	"*":   "*",
	"/":   "/",
	"%":   "%",
	"<":   "<",
	">":   ">",
	"<=":  "<=",
	">=":  ">=",
	"&&":  "&",
	"||":  "|",
}

var unaryOperators = map[string]string{
	"!": "!",
	"-": "-",
}

// BinaryOperator maps a surface binary or logical operator to the target.
func BinaryOperator(op string) (string, bool) {
	target, ok := binaryOperators[op]
	return target, ok
}

// UnaryOperator maps a surface unary operator to the target.
func UnaryOperator(op string) (string, bool) {
	target, ok := unaryOperators[op]
	return target, ok
}

func SupportedBinaryOperators() []string {
	return sortedKeys(binaryOperators)
}

func SupportedUnaryOperators() []string {
	return sortedKeys(unaryOperators)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

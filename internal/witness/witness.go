package witness

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pelletier/go-toml/v2"

	"izinoir/internal/ir"
)

var (
	ErrMissingInput = errors.New("missing witness input")
	ErrUnknownInput = errors.New("unknown witness input")
	ErrInvalidValue = errors.New("invalid witness value")
)

// Input is one circuit argument reduced into the BN254 scalar field.
type Input struct {
	Name   string
	Public bool
	Index  int
	Value  fr.Element
}

// Inputs are ordered like the generated main signature: private inputs
// first, then public ones.
type Inputs []Input

// Assemble looks up a value for every circuit parameter by its generated
// name.
func Assemble(circuit *ir.ParsedCircuit, values map[string]string) (Inputs, error) {
	inputs := make(Inputs, 0, len(circuit.PrivateParams)+len(circuit.PublicParams))
	known := make(map[string]bool)

	add := func(params []ir.CircuitParam, public bool) error {
		for _, p := range params {
			known[p.Name] = true
			raw, ok := values[p.Name]
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingInput, p.Name)
			}
			value, err := ParseValue(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			inputs = append(inputs, Input{Name: p.Name, Public: public, Index: p.Index, Value: value})
		}
		return nil
	}

	if err := add(circuit.PrivateParams, false); err != nil {
		return nil, err
	}
	if err := add(circuit.PublicParams, true); err != nil {
		return nil, err
	}

	var unknown []string
	for name := range values {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownInput, strings.Join(unknown, ", "))
	}

	return inputs, nil
}

// ParseValue parses a decimal, 0x/0o/0b prefixed or boolean value and
// reduces it modulo the field order. Negative values wrap around.
func ParseValue(s string) (fr.Element, error) {
	var e fr.Element

	s = strings.TrimSpace(s)
	switch s {
	case "true":
		e.SetOne()
		return e, nil
	case "false":
		return e, nil
	}

	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return e, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	e.SetBigInt(n)
	return e, nil
}

// DecodeValues reads a JSON object of name to value. Values may be JSON
// strings, numbers or booleans.
func DecodeValues(data []byte) (map[string]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode witness values: %w", err)
	}

	values := make(map[string]string, len(raw))
	for name, v := range raw {
		switch v := v.(type) {
		case string:
			values[name] = v
		case json.Number:
			values[name] = v.String()
		case bool:
			values[name] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("%w: %s has unsupported JSON type %T", ErrInvalidValue, name, v)
		}
	}
	return values, nil
}

// String returns the canonical reduced value in decimal. fr.Element's own
// String uses the signed form, which Nargo does not accept.
func (input Input) String() string {
	return input.Value.BigInt(new(big.Int)).String()
}

// TOML renders a Prover.toml body, one key per input in signature order.
func (in Inputs) TOML() (string, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	for _, input := range in {
		if err := encoder.Encode(map[string]string{input.Name: input.String()}); err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", input.Name, err)
		}
	}
	return buf.String(), nil
}

// MarshalJSON writes the inputs as a JSON object in signature order.
func (in Inputs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, input := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(input.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(input.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

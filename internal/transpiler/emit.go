package transpiler

import (
	"fmt"

	"izinoir/internal/ir"
)

// EmitKind selects which artifact of a Result is rendered.
type EmitKind string

const (
	EmitNoir EmitKind = "noir"
	EmitIR   EmitKind = "ir"
	EmitJSON EmitKind = "json"
)

func ParseEmitKind(s string) (EmitKind, error) {
	switch kind := EmitKind(s); kind {
	case EmitNoir, EmitIR, EmitJSON:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown emit kind %q (want noir, ir or json)", s)
	}
}

// Emit renders the requested artifact.
func (r *Result) Emit(kind EmitKind) (string, error) {
	switch kind {
	case EmitNoir, "":
		return r.Noir, nil
	case EmitIR:
		return ir.Print(r.Circuit), nil
	case EmitJSON:
		data, err := ir.MarshalCircuit(r.Circuit)
		if err != nil {
			return "", fmt.Errorf("failed to encode circuit: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown emit kind %q", kind)
	}
}

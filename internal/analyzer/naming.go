package analyzer

import (
	"fmt"
	"strings"

	"izinoir/internal/ast"
)

// MutablePrefix marks a surface binding as mutable.
const MutablePrefix = "mut_"

// normalizeName strips the mutability prefix. Every surface name entering
// the IR goes through here; nothing downstream looks at the spelling again.
func normalizeName(name string) (string, bool) {
	if len(name) > len(MutablePrefix) && strings.HasPrefix(name, MutablePrefix) {
		return name[len(MutablePrefix):], true
	}
	return name, false
}

// IsMutableName reports whether a surface name declares a mutable binding.
func IsMutableName(name string) bool {
	_, mutable := normalizeName(name)
	return mutable
}

// kindName returns the syntax kind of a node, e.g. "WhileStatement".
func kindName(node ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}

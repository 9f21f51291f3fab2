package analyzer

import (
	"izinoir/internal/ast"
	"izinoir/internal/errors"
)

func (a *Analyzer) skip(node ast.Node, kind string) {
	pos := node.NodePos()
	a.skipped = append(a.skipped, SkippedStatement{Kind: kind, Position: pos})
	log.Noticef("skipped %s at %s:%d:%d", kind, pos.Filename, pos.Line, pos.Column)
}

// Warnings converts skipped statements into W0001 diagnostics.
func Warnings(skipped []SkippedStatement) []*errors.CompilerError {
	warnings := make([]*errors.CompilerError, len(skipped))
	for i, s := range skipped {
		warnings[i] = errors.SkippedStatement(s.Kind, s.Position)
	}
	return warnings
}

func (a *Analyzer) checkAssignable(name string, pos ast.Position) error {
	if !a.opts.Strict {
		return nil
	}

	symbol := a.symbols.Lookup(name)
	if symbol == nil {
		return errors.UndeclaredAssignment(name, pos, a.symbols.Names())
	}
	if !symbol.Mutable {
		if symbol.Kind == SymbolVariable {
			return errors.ImmutableAssignment(name, pos, &symbol.Position)
		}
		return errors.ImmutableAssignment(name, pos, nil)
	}
	return nil
}

package analyzer

import (
	"sort"

	"izinoir/internal/ast"
)

type SymbolKind int

const (
	SymbolParameter SymbolKind = iota
	SymbolVariable
	SymbolLoopVariable
)

type Symbol struct {
	Name     string
	Kind     SymbolKind
	Mutable  bool
	Position ast.Position
}

// SymbolTable is one lexical scope. Names are stored after the mutability
// prefix has been stripped.
type SymbolTable struct {
	symbols map[string]*Symbol
	parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}
}

func (st *SymbolTable) Define(name string, kind SymbolKind, mutable bool, pos ast.Position) *Symbol {
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Mutable:  mutable,
		Position: pos,
	}
	st.symbols[name] = symbol
	return symbol
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil
}

func (st *SymbolTable) Parent() *SymbolTable {
	return st.parent
}

// Names returns every name visible from this scope, sorted.
func (st *SymbolTable) Names() []string {
	seen := make(map[string]bool)
	for scope := st; scope != nil; scope = scope.parent {
		for name := range scope.symbols {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package analyzer

import (
	"fmt"

	"github.com/tliron/commonlog"

	"izinoir/internal/ast"
	"izinoir/internal/errors"
	"izinoir/internal/ir"
)

var log = commonlog.GetLogger("izinoir.analyzer")

type Options struct {
	// Strict rejects assignments to names that are not mutable bindings in
	// scope. Off by default: assignments to any simple name are accepted.
	Strict bool
}

// SkippedStatement records a statement that was dropped from the circuit.
type SkippedStatement struct {
	Kind     string
	Position ast.Position
}

// Analyzer turns one circuit function into a ParsedCircuit. It keeps
// per-run state and is not safe for concurrent use; create one per call or
// use the package-level Analyze.
type Analyzer struct {
	opts    Options
	symbols *SymbolTable
	skipped []SkippedStatement
}

func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		opts:    opts,
		symbols: NewSymbolTable(nil),
	}
}

// Analyze runs a fresh analyzer over fn.
func Analyze(fn *ast.Function, opts Options) (*ir.ParsedCircuit, []SkippedStatement, error) {
	a := NewAnalyzer(opts)
	circuit, err := a.Analyze(fn)
	return circuit, a.Skipped(), err
}

// Analyze extracts the public and private parameter groups and analyzes the
// function body. Any analysis error aborts the whole circuit.
func (a *Analyzer) Analyze(fn *ast.Function) (*ir.ParsedCircuit, error) {
	a.symbols = NewSymbolTable(nil)
	a.skipped = nil

	public, private, err := a.analyzeParams(fn)
	if err != nil {
		return nil, err
	}

	statements, err := a.AnalyzeBlock(fn.Body)
	if err != nil {
		log.Errorf("analysis failed: %s", err)
		return nil, err
	}

	log.Debug("analyzed circuit",
		"public", len(public),
		"private", len(private),
		"statements", len(statements),
		"skipped", len(a.skipped))

	return &ir.ParsedCircuit{
		PublicParams:  public,
		PrivateParams: private,
		Statements:    statements,
	}, nil
}

// Skipped returns the statements dropped by the last run, in source order.
func (a *Analyzer) Skipped() []SkippedStatement {
	return a.skipped
}

func (a *Analyzer) analyzeParams(fn *ast.Function) ([]ir.CircuitParam, []ir.CircuitParam, error) {
	if len(fn.Params) > 2 {
		return nil, nil, errors.InvalidParameter(
			fmt.Sprintf("expected at most two parameters ([public], [private]), found %d", len(fn.Params)),
			fn.Params[2].NodePos())
	}

	groups := [2][]ir.CircuitParam{{}, {}}
	seen := make(map[string]bool)
	for i, param := range fn.Params {
		group := "public"
		if i == 1 {
			group = "private"
		}

		params, err := a.analyzeParamGroup(param, group, seen)
		if err != nil {
			return nil, nil, err
		}
		groups[i] = params
	}
	return groups[0], groups[1], nil
}

func (a *Analyzer) analyzeParamGroup(param ast.Pattern, group string, seen map[string]bool) ([]ir.CircuitParam, error) {
	pattern, ok := param.(*ast.ArrayPattern)
	if !ok {
		return nil, errors.InvalidParameter(
			fmt.Sprintf("%s inputs must be an array pattern like [a, b], found %s", group, kindName(param)),
			param.NodePos())
	}

	params := make([]ir.CircuitParam, 0, len(pattern.Elements))
	for index, element := range pattern.Elements {
		id, ok := element.(*ast.Identifier)
		if !ok {
			return nil, errors.InvalidParameter(
				fmt.Sprintf("%s input %d must be a plain name, found %s", group, index, kindName(element)),
				element.NodePos())
		}

		name, _ := normalizeName(id.Name)
		if seen[name] {
			return nil, errors.InvalidParameter(
				fmt.Sprintf("duplicate circuit input '%s'", name),
				id.Pos)
		}
		seen[name] = true

		a.symbols.Define(name, SymbolParameter, false, id.Pos)
		params = append(params, ir.CircuitParam{Name: name, Index: index})
	}
	return params, nil
}

func (a *Analyzer) pushScope() {
	a.symbols = NewSymbolTable(a.symbols)
}

func (a *Analyzer) popScope() {
	a.symbols = a.symbols.Parent()
}

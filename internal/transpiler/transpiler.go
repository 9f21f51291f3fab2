package transpiler

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"izinoir/internal/analyzer"
	"izinoir/internal/ast"
	"izinoir/internal/codegen"
	"izinoir/internal/errors"
	"izinoir/internal/ir"
	"izinoir/internal/parser"
)

var log = commonlog.GetLogger("izinoir.transpiler")

const defaultFilename = "circuit.js"

type Options struct {
	Filename string
	Strict   bool
}

// Result holds every artifact of one transpilation.
type Result struct {
	Function *ast.Function
	Circuit  *ir.ParsedCircuit
	Noir     string
	Skipped  []analyzer.SkippedStatement
}

// Warnings returns a W0001 diagnostic per skipped statement.
func (r *Result) Warnings() []*errors.CompilerError {
	return analyzer.Warnings(r.Skipped)
}

// Transpile parses, analyzes and generates Noir for one circuit function.
// It keeps no state between calls and is safe for concurrent use.
func Transpile(source string, opts Options) (*Result, error) {
	filename := opts.Filename
	if filename == "" {
		filename = defaultFilename
	}

	log.Debugf("parsing %s", filename)
	fn, err := parser.ParseSource(filename, source)
	if err != nil {
		log.Errorf("%s: %s", filename, err)
		return nil, err
	}

	log.Debugf("analyzing %s", filename)
	circuit, skipped, err := analyzer.Analyze(fn, analyzer.Options{Strict: opts.Strict})
	if err != nil {
		log.Errorf("%s: %s", filename, err)
		return nil, err
	}
	for _, s := range skipped {
		log.Notice("statement skipped", "file", filename, "kind", s.Kind, "line", s.Position.Line)
	}

	log.Debugf("generating %s", filename)
	return &Result{
		Function: fn,
		Circuit:  circuit,
		Noir:     codegen.Generate(circuit),
		Skipped:  skipped,
	}, nil
}

// TranspileFile reads path and transpiles its contents.
func TranspileFile(path string, opts Options) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if opts.Filename == "" {
		opts.Filename = path
	}
	return Transpile(string(source), opts)
}

// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"izinoir/grammar"
	"izinoir/internal/config"
	"izinoir/internal/errors"
	"izinoir/internal/transpiler"
	"izinoir/internal/witness"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	emit        string
	output      string
	strict      bool
	witnessPath string
	proverPath  string
	verbosity   int
	noColor     bool
	grammar     bool
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (*options, []string, error) {
	opts := &options{}
	fs := flag.NewFlagSet("izinoir-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.emit, "emit", cfg.Emit, "artifact to print: noir, ir or json")
	fs.StringVar(&opts.output, "o", "", "write the artifact to `path` instead of stdout")
	fs.BoolVar(&opts.strict, "strict", cfg.Strict, "reject assignments to undeclared or immutable names")
	fs.StringVar(&opts.witnessPath, "witness", "", "JSON object of input values to assemble into a Prover.toml")
	fs.StringVar(&opts.proverPath, "prover", "", "write the Prover.toml to `path` instead of stdout")
	fs.IntVar(&opts.verbosity, "v", cfg.Verbosity, "log verbosity")
	fs.BoolVar(&opts.noColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&opts.grammar, "grammar", false, "print the surface grammar as EBNF and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: izinoir-cli [flags] <file.js>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	opts, rest, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return 2
	}

	if opts.noColor {
		color.NoColor = true
	}
	commonlog.Configure(opts.verbosity, cfg.LogPath())

	if opts.grammar {
		fmt.Fprintln(stdout, grammar.EBNF())
		return 0
	}

	if len(rest) != 1 {
		fmt.Fprintln(stderr, "Usage: izinoir-cli [flags] <file.js>")
		return 1
	}

	emit, err := transpiler.ParseEmitKind(opts.emit)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
		return 1
	}

	startTime := time.Now()
	path := rest[0]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read file: %v\n", err)
		return 1
	}

	reporter := errors.NewErrorReporter(path, string(source))
	result, err := transpiler.Transpile(string(source), transpiler.Options{Filename: path, Strict: opts.strict})
	if err != nil {
		fmt.Fprint(stderr, reporter.FormatErr(err))
		fmt.Fprintln(stderr, color.RedString("Transpilation failed after %s", formatDuration(time.Since(startTime))))
		return 1
	}

	for _, w := range result.Warnings() {
		fmt.Fprint(stderr, reporter.FormatError(*w))
	}

	artifact, err := result.Emit(emit)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
		return 1
	}
	if err := writeOutput(opts.output, artifact, stdout); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
		return 1
	}

	if opts.witnessPath != "" {
		if err := writeWitness(result, opts.witnessPath, opts.proverPath, stdout); err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
			return 1
		}
	}

	fmt.Fprintln(stderr, color.GreenString("Successfully transpiled %s in %s", path, formatDuration(time.Since(startTime))))
	return 0
}

func writeWitness(result *transpiler.Result, inputPath, proverPath string, stdout io.Writer) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read witness values: %w", err)
	}
	values, err := witness.DecodeValues(data)
	if err != nil {
		return err
	}
	inputs, err := witness.Assemble(result.Circuit, values)
	if err != nil {
		return err
	}
	body, err := inputs.TOML()
	if err != nil {
		return err
	}
	return writeOutput(proverPath, body, stdout)
}

func writeOutput(path, content string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

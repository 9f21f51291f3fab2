package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareCircuit = "([expected], [secret]) => {\n  assert(secret * secret == expected);\n}\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunEmitsNoir(t *testing.T) {
	path := writeFile(t, "square.js", squareCircuit)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "fn main(secret: Field, expected: pub Field) {\n    assert(secret * secret == expected);\n}\n", stdout.String())
	assert.Contains(t, stderr.String(), "Successfully transpiled")
}

func TestRunWritesOutputFile(t *testing.T) {
	path := writeFile(t, "square.js", squareCircuit)
	out := filepath.Join(t.TempDir(), "main.nr")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-o", out, path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fn main(")
}

func TestRunEmitIR(t *testing.T) {
	path := writeFile(t, "square.js", squareCircuit)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-emit", "ir", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "CIRCUIT (IR)")
}

func TestRunRejectsUnknownEmitKind(t *testing.T) {
	path := writeFile(t, "square.js", squareCircuit)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-emit", "wasm", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown emit kind")
}

func TestRunReportsAnalysisError(t *testing.T) {
	path := writeFile(t, "bad.js", "([a], [b]) => {\n  for (let i = 10; i > 0; i--) {}\n}\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "E0006")
	assert.Contains(t, stderr.String(), "Transpilation failed")
}

func TestRunPrintsSkippedWarnings(t *testing.T) {
	path := writeFile(t, "skip.js", "([a], [b]) => {\n  assert(a == b);\n  while (a) {}\n}\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "W0001")
	assert.Contains(t, stderr.String(), "WhileStatement")
}

func TestRunAssemblesWitness(t *testing.T) {
	path := writeFile(t, "square.js", squareCircuit)
	values := writeFile(t, "inputs.json", `{"expected": "9", "secret": 3}`)
	prover := filepath.Join(t.TempDir(), "Prover.toml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-witness", values, "-prover", prover, path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	data, err := os.ReadFile(prover)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]string{"secret": "3", "expected": "9"}, decoded)
	assert.Less(t, strings.Index(string(data), "secret"), strings.Index(string(data), "expected"))
}

func TestRunWitnessMissingInput(t *testing.T) {
	path := writeFile(t, "square.js", squareCircuit)
	values := writeFile(t, "inputs.json", `{"expected": "9"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-witness", values, path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "secret")
}

func TestRunRequiresFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-no-color"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage")
}

func TestRunPrintsGrammar(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-grammar"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Program")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.5μs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "1.2ms", formatDuration(1200*time.Microsecond))
	assert.Equal(t, "2.00s", formatDuration(2*time.Second))
	assert.Equal(t, "1.50min", formatDuration(90*time.Second))
}

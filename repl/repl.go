// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	compilererrors "izinoir/internal/errors"
	"izinoir/internal/ir"
	"izinoir/internal/transpiler"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
	historyFile  = ".izinoir_history"
	replFilename = "<repl>"
)

// Session holds the toggles that survive between inputs.
type Session struct {
	Strict bool
	ShowIR bool
}

// Command applies a ':' command. It reports whether the REPL should exit and
// what to print.
func (s *Session) Command(line string) (quit bool, message string) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q", ":exit":
		return true, ""
	case ":ir":
		s.ShowIR = !s.ShowIR
		return false, fmt.Sprintf("IR dump %s", onOff(s.ShowIR))
	case ":strict":
		s.Strict = !s.Strict
		return false, fmt.Sprintf("strict mode %s", onOff(s.Strict))
	case ":help":
		return false, "commands: :ir (toggle IR dump), :strict (toggle strict mode), :quit"
	default:
		return false, "unknown command. Type :help for a list."
	}
}

// Eval transpiles one circuit and renders what the REPL prints for it:
// the generated Noir, preceded by the IR when ShowIR is set, followed by
// any skipped-statement warnings.
func (s *Session) Eval(source string) (string, error) {
	result, err := transpiler.Transpile(source, transpiler.Options{Filename: replFilename, Strict: s.Strict})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if s.ShowIR {
		sb.WriteString(ir.Print(result.Circuit))
		sb.WriteString("\n")
	}
	sb.WriteString(result.Noir)

	reporter := compilererrors.NewErrorReporter(replFilename, source)
	for _, w := range result.Warnings() {
		sb.WriteString(reporter.FormatError(*w))
	}
	return sb.String(), nil
}

// Balanced reports whether every bracket opened in src has been closed.
// Brackets inside strings, template literals and comments are ignored.
func Balanced(src string) bool {
	depth := 0
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return false
			}
			i += end + 3
		case c == '{' || c == '(' || c == '[':
			depth++
		case c == '}' || c == ')' || c == ']':
			depth--
		}
	}
	return depth <= 0 && quote == 0
}

// Start runs the interactive loop until EOF or :quit.
func Start(out io.Writer, session *Session) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readBalanced(ln)
		if !ok {
			fmt.Fprintln(out)
			return
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			quit, message := session.Command(trimmed)
			if quit {
				return
			}
			fmt.Fprintln(out, message)
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		output, err := session.Eval(code)
		if err != nil {
			fmt.Fprint(out, compilererrors.NewErrorReporter(replFilename, code).FormatErr(err))
			continue
		}
		fmt.Fprint(out, color.GreenString("%s", output))
	}
}

func readBalanced(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := PROMPT
		if b.Len() > 0 {
			prompt = CONTINUATION
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if Balanced(b.String()) {
			return b.String(), true
		}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

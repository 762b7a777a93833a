// Package repl implements the interactive console driver surface (spec
// §6): line-edited input with history via github.com/peterh/liner, the
// `exit`/`reset` meta-commands, and otherwise feeding each complete buffer
// through the lexer, parser, and evaluator — grounded on the multiline
// parse-probe pattern used by the pack's other Scheme-family REPL
// (daios-ai-msg/mindscript/cmd/main.go's readByParseProbe).
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"goscheme/internal/builtins"
	"goscheme/internal/evaluator"
	"goscheme/internal/lexer"
	"goscheme/internal/parser"
	"goscheme/internal/value"
)

// Session holds the REPL's mutable state: the line editor and the current
// root environment. `reset` rebinds env to a fresh one without restarting
// the liner session or its history.
type Session struct {
	ln  *liner.State
	env *value.Environment
}

// New creates a Session with history enabled and a freshly populated root
// environment.
func New() *Session {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &Session{ln: ln, env: newRootEnv()}
}

func newRootEnv() *value.Environment {
	env := value.NewRoot()
	builtins.Register(env)
	return env
}

// Close releases the underlying terminal state.
func (s *Session) Close() error {
	return s.ln.Close()
}

// Run drives the read-eval-print loop until EOF (Ctrl-D) or the `exit`
// meta-command.
func (s *Session) Run() {
	fmt.Println("goscheme interactive session")
	slog.Info("repl session started", "env", s.env.ID())
	for {
		src, ok := s.readExpression()
		if !ok {
			fmt.Println()
			return
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" {
			return
		}
		if trimmed == "reset" {
			s.env = newRootEnv()
			slog.Info("repl environment reset", "env", s.env.ID())
			fmt.Println("environment reset")
			continue
		}
		s.evalAndPrint(src)
	}
}

// readExpression reads one or more lines until the buffer holds at least
// one complete top-level form (or a real, non-recoverable syntax error),
// returning false on EOF when no input is pending.
func (s *Session) readExpression() (string, bool) {
	var b strings.Builder
	for {
		prompt := "goscheme> "
		if b.Len() > 0 {
			prompt = "...       "
		}
		line, err := s.ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return b.String(), b.Len() > 0
		}
		if err != nil {
			// Ctrl-C: abandon the current buffer and start over.
			return "", true
		}
		s.ln.AppendHistory(line)

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "exit" || trimmed == "reset" {
			return trimmed, true
		}

		if hasCompleteForm(src) {
			return src, true
		}
	}
}

// hasCompleteForm reports whether reading can stop: src's first top-level
// expression parses, or parsing fails before the end of the tokens (a real
// syntax error that more lines cannot fix). Text after the first expression
// is not checked. A lexer error is treated as an unfinished form.
func hasCompleteForm(src string) bool {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return false
	}
	if len(tokens) == 0 {
		return false
	}
	p := parser.New(tokens)
	_, err = p.Parse()
	return err == nil || !p.Done()
}

// evalAndPrint parses every top-level expression in src and evaluates each
// in turn, printing the result's canonical form unless it is Nil. In
// interactive mode an error is reported and the session continues with the
// next expression.
func (s *Session) evalAndPrint(src string) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	p := parser.New(tokens)
	for !p.Done() {
		expr, err := p.Parse()
		if err != nil {
			fmt.Println(err)
			return
		}
		result, err := evaluator.Eval(expr, s.env)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !result.IsNil() {
			fmt.Println(result.String())
		}
	}
}

// RunFile evaluates every top-level expression in src against a fresh root
// environment, in order, discarding results. It stops and returns the
// first error encountered (spec §6's file-mode driver contract).
func RunFile(src string) error {
	env := newRootEnv()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	p := parser.New(tokens)
	for !p.Done() {
		expr, err := p.Parse()
		if err != nil {
			return err
		}
		if _, err := evaluator.Eval(expr, env); err != nil {
			return err
		}
	}
	return nil
}

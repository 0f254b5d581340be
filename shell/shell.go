// Package shell is the line-oriented front end of the calculator. It owns
// the session environment and only reaches the evaluator through
// executor.Evaluate and executor.Format.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/calc/config"
	"go.creack.net/calc/executor"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// ErrFailed is returned by Run when at least one line failed to evaluate.
var ErrFailed = errors.New("evaluation failed")

// Shell evaluates lines against a session environment.
type Shell struct {
	cfg  config.Config
	env  executor.Environment
	exec executor.Executor

	stdout io.Writer
	stderr io.Writer

	verbose bool
	failed  int
}

// New creates a shell with a fresh environment.
func New(cfg config.Config, stdout, stderr io.Writer) *Shell {
	return &Shell{
		cfg:    cfg,
		env:    executor.NewEnvironment(),
		exec:   executor.Executor{Prec: cfg.Precision},
		stdout: stdout,
		stderr: stderr,
	}
}

// SetVerbose turns the tracing of tokens and trees on or off.
func (s *Shell) SetVerbose(v bool) { s.verbose = v }

// Environment returns the session environment.
func (s *Shell) Environment() executor.Environment { return s.env }

// Greet prints the configured greeting.
func (s *Shell) Greet() {
	if s.cfg.Greeting.Message == "" {
		return
	}
	fmt.Fprintln(s.stdout, config.Paint(s.cfg.Greeting.Color, s.cfg.Greeting.Message))
}

// Handle processes one line: a builtin word or an expression. It returns
// true when the session should end. Evaluation errors are reported on
// stderr and leave the environment untouched.
func (s *Shell) Handle(line string) (stop bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if fn, ok := builtins[line]; ok {
		return fn(s)
	}

	if s.verbose {
		s.trace(line)
	}
	v, err := s.exec.Evaluate(line, s.env)
	if err != nil {
		s.failed++
		fmt.Fprintf(s.stderr, "calc: %s\n", err)
		return false
	}
	if out := executor.Format(v, s.env); out != "" {
		fmt.Fprintln(s.stdout, out)
	}
	return false
}

// trace prints the tokens and the tree of line.
func (s *Shell) trace(line string) {
	tokens, err := lexer.Lex(line)
	fmt.Fprintf(s.stdout, "Lexing of line: %s\n", line)
	fmt.Fprintf(s.stdout, "%v\n", tokens)
	if err != nil {
		return
	}
	expr, err := parser.Parse(line)
	if err != nil {
		return
	}
	fmt.Fprintf(s.stdout, "Parsing of line: %s\n", line)
	fmt.Fprintf(s.stdout, "%# v\n\n", pretty.Formatter(expr))
}

// Run reads lines from r until EOF or exit, without prompt or greeting.
func (s *Shell) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.Handle(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return s.result()
}

// RunLines handles each line in order, as given on the command line.
func (s *Shell) RunLines(lines []string) error {
	for _, line := range lines {
		if s.Handle(line) {
			break
		}
	}
	return s.result()
}

func (s *Shell) result() error {
	if s.failed > 0 {
		return fmt.Errorf("%d line(s): %w", s.failed, ErrFailed)
	}
	return nil
}

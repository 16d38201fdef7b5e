// Package repl implements a line-oriented interactive session: a
// buffered stdin reader feeding one shared environment across turns.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Hejdula/clisp/internal/driver"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/format"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/Hejdula/clisp/internal/parser"
	"github.com/Hejdula/clisp/internal/preproc"
	"github.com/Hejdula/clisp/internal/session"
)

// REPL reads lines from In, tracks parenthesis balance, and evaluates
// each balanced chunk through the preprocess → lex → parse → driver
// pipeline against one long-lived Env.
type REPL struct {
	in     *bufio.Reader
	out    io.Writer
	env    *env.Env
	drv    *driver.Driver
	prompt string
	last   driver.LastResult
}

// New returns a REPL reading from in and writing prompts, results and
// errors to out.
func New(in io.Reader, out io.Writer, prompt string) *REPL {
	if prompt == "" {
		prompt = "> "
	}
	return &REPL{
		in:     bufio.NewReader(in),
		out:    out,
		env:    env.New(),
		drv:    driver.New(out, false),
		prompt: prompt,
	}
}

// Run drives the session until end-of-input, a CONTROL_QUIT from the
// evaluated program, or an unrecoverable read error.
func (r *REPL) Run() error {
	var buf strings.Builder
	depth := 0

	for {
		if buf.Len() == 0 {
			fmt.Fprint(r.out, r.prompt)
		} else {
			fmt.Fprint(r.out, "... ")
		}

		line, readErr := r.in.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}

		trimmed := strings.TrimSpace(line)
		if buf.Len() == 0 && strings.HasPrefix(trimmed, ":") {
			if quit := r.handleMeta(trimmed); quit {
				return nil
			}
		} else {
			buf.WriteString(line)
			buf.WriteString("\n")
			depth += parenBalance(line)

			if depth <= 0 && strings.TrimSpace(buf.String()) != "" {
				if quit := r.evaluateChunk(buf.String()); quit {
					return nil
				}
				buf.Reset()
				depth = 0
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

// evaluateChunk runs one balanced accumulation of input through the
// pipeline and reports its outcome. It returns true if the evaluated
// program raised CONTROL_QUIT, ending the session.
func (r *REPL) evaluateChunk(chunk string) (quit bool) {
	processed := preproc.Process(chunk)
	tokens := lexer.Tokenize(processed)
	program, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return false
	}

	last, err := r.drv.Run(program, r.env)
	if last.IsNumber {
		r.last = last
	}
	if err == nil {
		return false
	}
	if lisperr.KindOf(err) == lisperr.ControlQuit {
		return true
	}
	fmt.Fprintf(r.out, "error: %v\n", err)
	return false
}

// handleMeta processes a ":"-prefixed REPL command (the DOMAIN STACK
// meta-commands :pretty, :save, :load, plus :quit). It returns true if
// the session should end.
func (r *REPL) handleMeta(cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":pretty":
		if !r.last.IsNumber {
			fmt.Fprintln(r.out, "no previous Number result")
			return false
		}
		fmt.Fprintln(r.out, format.Pretty(r.last.Number))
		return false

	case ":save":
		if len(fields) != 2 {
			fmt.Fprintln(r.out, "usage: :save <file>")
			return false
		}
		if err := session.Save(r.env, fields[1]); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
		return false

	case ":load":
		if len(fields) != 2 {
			fmt.Fprintln(r.out, "usage: :load <file>")
			return false
		}
		e, err := session.Load(fields[1])
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			return false
		}
		r.env = e
		return false

	default:
		fmt.Fprintf(r.out, "unknown command: %s\n", fields[0])
		return false
	}
}

// parenBalance counts net "(" minus ")" in line.
func parenBalance(line string) int {
	balance := 0
	for _, c := range line {
		switch c {
		case '(':
			balance++
		case ')':
			balance--
		}
	}
	return balance
}

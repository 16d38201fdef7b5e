// Package driver implements the top-level program evaluation loop:
// given a parsed program and an environment, evaluate each top-level
// form in order, print its result, and release it.
package driver

import (
	"fmt"
	"io"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/eval"
	"github.com/Hejdula/clisp/internal/lisperr"
)

// Driver evaluates a parsed program's top-level forms against a shared
// environment, one form at a time.
type Driver struct {
	Evaluator *eval.Evaluator
	Out       io.Writer
	Verbose   bool
}

// New returns a Driver writing results to out (discarded if nil) and
// sharing out with its Evaluator's PRINT output.
func New(out io.Writer, verbose bool) *Driver {
	if out == nil {
		out = io.Discard
	}
	return &Driver{
		Evaluator: eval.New(out),
		Out:       out,
		Verbose:   verbose,
	}
}

// LastResult reports the most recently printed result of a Run call,
// for callers (the REPL's :pretty meta-command, the facade package's
// Result.Value) that want to re-render it without re-evaluating.
type LastResult struct {
	Printed  string
	IsNumber bool
	Number   int64
}

// Run evaluates every top-level form of program (a List node, origin
// Ast, as produced by package parser) against e. It halts at the first
// error — a leaked CONTROL_BREAK is rewritten to SyntaxError, since a
// BRK outside any WHILE has nowhere left to break out of; CONTROL_QUIT
// is returned to the caller unrewritten so a file-mode caller can treat
// it as a clean exit and a REPL can treat it as a session end.
func (d *Driver) Run(program *ast.Node, e *env.Env) (LastResult, error) {
	if program == nil || program.Kind != ast.List {
		return LastResult{}, lisperr.New(lisperr.Internal, "driver requires a top-level List program")
	}

	var last LastResult
	for i, form := range program.ListValue {
		if d.Verbose {
			fmt.Fprintf(d.Out, "%d> %s\n", i+1, ast.Print(form))
		}

		result, err := d.Evaluator.Evaluate(form, e)
		if err != nil {
			if lisperr.KindOf(err) == lisperr.ControlBreak {
				return last, lisperr.New(lisperr.SyntaxError, "BRK outside WHILE at top level")
			}
			return last, err
		}

		printed := ast.Print(result)
		fmt.Fprintln(d.Out, printed)

		last = LastResult{Printed: printed}
		if result.Kind == ast.Number {
			last.IsNumber = true
			last.Number = result.NumberValue
		}

		if err := ast.ReleaseTemporary(result); err != nil {
			return last, err
		}
	}

	return last, nil
}

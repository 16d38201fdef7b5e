package eval

import (
	"fmt"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lisperr"
)

// opIf implements "IF cond then [else]".
func opIf(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	as := args(call)
	if len(as) != 2 && len(as) != 3 {
		return nil, lisperr.New(lisperr.SyntaxError, "IF requires 2 or 3 arguments, got %d", len(as))
	}

	cond, err := evalBoolean(ev, as[0], e)
	if err != nil {
		return nil, err
	}
	if cond {
		return ev.Evaluate(as[1], e)
	}
	if len(as) == 3 {
		return ev.Evaluate(as[2], e)
	}
	return ast.False(ast.Temporary), nil
}

// opWhile implements "WHILE cond body...": repeatedly evaluates cond
// and, while true, every body form in order. A CONTROL_BREAK raised by
// any body form (directly via BRK, or from a BRK nested inside a
// non-loop form such as IF) terminates this loop without propagating
// further; a nested WHILE consumes its own BRK, so that never reaches
// this loop.
func opWhile(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireMinArgc(call, 1); err != nil {
		return nil, err
	}
	as := args(call)
	cond, body := as[0], as[1:]

	for {
		c, err := evalBoolean(ev, cond, e)
		if err != nil {
			return nil, err
		}
		if !c {
			break
		}

		broke := false
		for _, form := range body {
			res, err := ev.Evaluate(form, e)
			if err != nil {
				if lisperr.KindOf(err) == lisperr.ControlBreak {
					broke = true
					break
				}
				return nil, err
			}
			if err := ast.ReleaseTemporary(res); err != nil {
				return nil, err
			}
		}
		if broke {
			break
		}
	}

	return ast.False(ast.Temporary), nil
}

// opBrk implements "BRK": raises the CONTROL_BREAK signal that the
// nearest enclosing WHILE catches.
func opBrk(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 0); err != nil {
		return nil, err
	}
	return nil, lisperr.New(lisperr.ControlBreak, "break outside WHILE")
}

// opQuit implements "QUIT": raises CONTROL_QUIT, which the driver and
// REPL treat as a clean end-of-session signal rather than a failure.
func opQuit(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 0); err != nil {
		return nil, err
	}
	return nil, lisperr.New(lisperr.ControlQuit, "quit")
}

// opPrint implements "PRINT expr": evaluates expr, prints it followed
// by a newline, and returns the same node unchanged so PRINT composes
// as a value-producing form.
func opPrint(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 1); err != nil {
		return nil, err
	}
	v, err := ev.Evaluate(args(call)[0], e)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(ev.Out, ast.Print(v))
	return v, nil
}

package eval

import (
	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lisperr"
)

// opSet implements "SET target value". target is evaluated
// first — typically a quoted symbol, e.g. (SET 'A 5) — and its text is
// taken as a variable name. An unknown name gets a freshly allocated
// zero-valued variable; either way the target is then re-resolved
// through the environment so the rest of the handler mutates the real
// Variable node, not the transient Symbol the first evaluation produced.
func opSet(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 2); err != nil {
		return nil, err
	}
	as := args(call)

	targetSym, err := ev.Evaluate(as[0], e)
	if err != nil {
		return nil, err
	}
	if targetSym.Kind != ast.Symbol {
		_ = ast.ReleaseTemporary(targetSym)
		return nil, lisperr.New(lisperr.SyntaxError, "SET target must evaluate to a Symbol")
	}
	name := targetSym.SymbolValue
	_ = ast.ReleaseTemporary(targetSym)

	if !e.Exists(name) {
		if _, err := e.AddZero(name); err != nil {
			return nil, err
		}
	}
	variable, ok := e.Lookup(name)
	if !ok {
		return nil, lisperr.New(lisperr.Internal, "variable %q vanished after allocation", name)
	}

	value, err := ev.Evaluate(as[1], e)
	if err != nil {
		return nil, err
	}
	if value.Kind == ast.Symbol {
		_ = ast.ReleaseTemporary(value)
		return nil, lisperr.New(lisperr.SyntaxError, "SET value must not be a Symbol: values are not passed by name")
	}
	if err := env.ReplaceContents(variable, value); err != nil {
		return nil, err
	}
	if err := ast.ReleaseTemporary(value); err != nil {
		return nil, err
	}

	return variable, nil
}

// opQuote implements "QUOTE expr": returns its single argument
// unevaluated, exactly as desugared from the reader's `'` shorthand.
func opQuote(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 1); err != nil {
		return nil, err
	}
	return args(call)[0], nil
}

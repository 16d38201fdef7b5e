// Package eval implements the recursive expression evaluator and the
// fixed built-in operator table it dispatches into. The two are one Go
// package, not two, because evaluation and the operator handlers are
// mutually recursive: every operator calls back into Evaluate for each
// of its arguments, and Evaluate calls into the operator table for
// every list form. Splitting them into importer/imported packages
// would force an interface purely to break an import cycle that the
// domain itself doesn't have.
package eval

import (
	"io"
	"os"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lisperr"
)

// Evaluator holds the handful of things an evaluation needs beyond the
// node and environment: where PRINT writes to, mainly, so tests can
// capture it instead of hijacking os.Stdout.
type Evaluator struct {
	Out io.Writer
}

// New returns an Evaluator. A nil out defaults to os.Stdout.
func New(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{Out: out}
}

// OperatorFunc is the signature every entry in the operator table
// implements. It receives the whole call-site list, head symbol
// included — a handler like the relational dispatcher inspects the
// head to choose between <, >, <= and >=.
type OperatorFunc func(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error)

// Evaluate reduces node to a result node against e. The result is
// either node itself (Number/Boolean atoms), a borrowed Variable node
// (a bare Symbol), or a freshly produced Temporary — in every case the
// caller must eventually pass the result through ast.ReleaseTemporary.
func (ev *Evaluator) Evaluate(node *ast.Node, e *env.Env) (*ast.Node, error) {
	if node == nil {
		return nil, lisperr.New(lisperr.Internal, "evaluate nil node")
	}

	switch node.Kind {
	case ast.Number, ast.Boolean:
		return node, nil

	case ast.Symbol:
		v, ok := e.Lookup(node.SymbolValue)
		if !ok {
			return nil, lisperr.New(lisperr.UnknownVariable, "unknown variable %q", node.SymbolValue)
		}
		return v, nil

	case ast.List:
		if node.Count() == 0 {
			return ast.False(ast.Temporary), nil
		}
		head := node.ListValue[0]
		if head.Kind != ast.Symbol {
			return nil, lisperr.New(lisperr.SyntaxError, "list head must be a symbol")
		}
		fn, ok := operators[head.SymbolValue]
		if !ok {
			return nil, lisperr.New(lisperr.UnknownOperator, "unknown operator %q", head.SymbolValue)
		}
		return fn(ev, node, e)

	default:
		return nil, lisperr.New(lisperr.Internal, "node has unknown kind %v", node.Kind)
	}
}

// args returns call's arguments (everything after the head symbol).
func args(call *ast.Node) []*ast.Node {
	if call.Count() == 0 {
		return nil
	}
	return call.ListValue[1:]
}

// requireArgc validates the exact argument count. Every operator
// validates argument count before evaluating anything.
func requireArgc(call *ast.Node, n int) error {
	if len(args(call)) != n {
		return lisperr.New(lisperr.SyntaxError, "%s requires exactly %d argument(s), got %d",
			headName(call), n, len(args(call)))
	}
	return nil
}

// requireMinArgc validates a minimum argument count.
func requireMinArgc(call *ast.Node, min int) error {
	if len(args(call)) < min {
		return lisperr.New(lisperr.SyntaxError, "%s requires at least %d argument(s), got %d",
			headName(call), min, len(args(call)))
	}
	return nil
}

func headName(call *ast.Node) string {
	if call.Count() == 0 {
		return "<empty>"
	}
	return call.ListValue[0].SymbolValue
}

// evalNumber evaluates argNode, requires a Number result, releases the
// evaluated temporary, and returns its payload: the evaluate, check
// kind, use payload, release-temporary sequence every arithmetic and
// relational operator follows.
func evalNumber(ev *Evaluator, argNode *ast.Node, e *env.Env) (int64, error) {
	res, err := ev.Evaluate(argNode, e)
	if err != nil {
		return 0, err
	}
	if res.Kind != ast.Number {
		_ = ast.ReleaseTemporary(res)
		return 0, lisperr.New(lisperr.SyntaxError, "expected Number, got %s", res.Kind)
	}
	v := res.NumberValue
	if err := ast.ReleaseTemporary(res); err != nil {
		return 0, err
	}
	return v, nil
}

// evalBoolean is evalNumber's counterpart for Boolean-typed arguments
// (IF and WHILE conditions).
func evalBoolean(ev *Evaluator, argNode *ast.Node, e *env.Env) (bool, error) {
	res, err := ev.Evaluate(argNode, e)
	if err != nil {
		return false, err
	}
	if res.Kind != ast.Boolean {
		_ = ast.ReleaseTemporary(res)
		return false, lisperr.New(lisperr.SyntaxError, "expected Boolean, got %s", res.Kind)
	}
	v := res.BooleanValue
	if err := ast.ReleaseTemporary(res); err != nil {
		return false, err
	}
	return v, nil
}

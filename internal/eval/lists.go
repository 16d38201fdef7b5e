package eval

import (
	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lisperr"
)

// opList implements "LIST ...": evaluates every argument and collects
// the results (>=1 argument) into a freshly built Temporary list.
func opList(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireMinArgc(call, 1); err != nil {
		return nil, err
	}
	result := ast.NewEmptyList()
	result.Origin = ast.Temporary
	for _, a := range args(call) {
		v, err := ev.Evaluate(a, e)
		if err != nil {
			return nil, err
		}
		if err := ast.Append(result, v); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// opAtom implements "ATOM expr": true for anything that is not a
// non-empty List — the empty list, like classic Lisp's NIL, counts as
// an atom.
func opAtom(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 1); err != nil {
		return nil, err
	}
	v, err := ev.Evaluate(args(call)[0], e)
	if err != nil {
		return nil, err
	}
	isAtom := v.Kind != ast.List || v.Count() == 0
	if err := ast.ReleaseTemporary(v); err != nil {
		return nil, err
	}
	result := ast.NewBoolean(isAtom)
	result.Origin = ast.Temporary
	return result, nil
}

// opCar implements "CAR list": the first element of a non-empty list.
// list is only ever detached from when it is itself a disposable
// Temporary; a borrowed Variable or Ast-origin list is read without
// touching its child slice, since ast.ReleaseTemporary is already a
// no-op on those origins and the live backing array must not be
// truncated out from under its owner.
func opCar(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 1); err != nil {
		return nil, err
	}
	list, err := evalList(ev, call, e, 1)
	if err != nil {
		return nil, err
	}
	head := list.ListValue[0]
	if list.Origin == ast.Temporary {
		list.ListValue = list.ListValue[1:]
	}
	if err := ast.ReleaseTemporary(list); err != nil {
		return nil, err
	}
	return head, nil
}

// opCdr implements "CDR list": the tail of a list with at least two
// elements. A singleton list has no meaningful tail and is rejected
// rather than silently returning NIL. The tail is always copied into a
// fresh slice, so the source list's own child slice is only ever
// shrunk when that list is itself Temporary and safe to mutate.
func opCdr(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 1); err != nil {
		return nil, err
	}
	list, err := evalList(ev, call, e, 2)
	if err != nil {
		return nil, err
	}
	tail := append([]*ast.Node(nil), list.ListValue[1:]...)
	if list.Origin == ast.Temporary {
		list.ListValue = list.ListValue[:1]
	}
	if err := ast.ReleaseTemporary(list); err != nil {
		return nil, err
	}
	result := ast.NewEmptyList()
	result.Origin = ast.Temporary
	result.ListValue = tail
	return result, nil
}

// opNth implements "NTH index list": the zero-based index-th element.
func opNth(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 2); err != nil {
		return nil, err
	}
	as := args(call)
	idx, err := evalNumber(ev, as[0], e)
	if err != nil {
		return nil, err
	}
	list, err := ev.Evaluate(as[1], e)
	if err != nil {
		return nil, err
	}
	if list.Kind != ast.List {
		_ = ast.ReleaseTemporary(list)
		return nil, lisperr.New(lisperr.SyntaxError, "NTH second argument must be a list")
	}
	if idx < 0 || int(idx) >= list.Count() {
		_ = ast.ReleaseTemporary(list)
		return nil, lisperr.New(lisperr.SyntaxError, "NTH index %d out of range", idx)
	}
	i := int(idx)
	elem := list.ListValue[i]
	if list.Origin == ast.Temporary {
		list.ListValue = append(list.ListValue[:i], list.ListValue[i+1:]...)
	}
	if err := ast.ReleaseTemporary(list); err != nil {
		return nil, err
	}
	return elem, nil
}

// opLength implements "LENGTH list".
func opLength(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireArgc(call, 1); err != nil {
		return nil, err
	}
	list, err := evalList(ev, call, e, 0)
	if err != nil {
		return nil, err
	}
	n := int64(list.Count())
	if err := ast.ReleaseTemporary(list); err != nil {
		return nil, err
	}
	result := ast.NewNumber(n)
	result.Origin = ast.Temporary
	return result, nil
}

// evalList evaluates call's single list argument and requires it to be
// a List of at least minLen elements.
func evalList(ev *Evaluator, call *ast.Node, e *env.Env, minLen int) (*ast.Node, error) {
	v, err := ev.Evaluate(args(call)[0], e)
	if err != nil {
		return nil, err
	}
	if v.Kind != ast.List {
		_ = ast.ReleaseTemporary(v)
		return nil, lisperr.New(lisperr.SyntaxError, "%s argument must be a list", headName(call))
	}
	if v.Count() < minLen {
		_ = ast.ReleaseTemporary(v)
		return nil, lisperr.New(lisperr.SyntaxError, "%s requires a list of at least %d element(s)", headName(call), minLen)
	}
	return v, nil
}

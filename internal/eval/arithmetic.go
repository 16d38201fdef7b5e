package eval

import (
	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lisperr"
)

// opAdd implements "+": sum of >=2 Number arguments.
func opAdd(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireMinArgc(call, 2); err != nil {
		return nil, err
	}
	var sum int64
	for _, a := range args(call) {
		v, err := evalNumber(ev, a, e)
		if err != nil {
			return nil, err
		}
		sum += v
	}
	result := ast.NewNumber(sum)
	result.Origin = ast.Temporary
	return result, nil
}

// opSub implements "-": first argument minus every subsequent argument.
func opSub(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireMinArgc(call, 2); err != nil {
		return nil, err
	}
	as := args(call)
	total, err := evalNumber(ev, as[0], e)
	if err != nil {
		return nil, err
	}
	for _, a := range as[1:] {
		v, err := evalNumber(ev, a, e)
		if err != nil {
			return nil, err
		}
		total -= v
	}
	result := ast.NewNumber(total)
	result.Origin = ast.Temporary
	return result, nil
}

// opMul implements "*": product of >=2 Number arguments.
func opMul(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireMinArgc(call, 2); err != nil {
		return nil, err
	}
	product := int64(1)
	for _, a := range args(call) {
		v, err := evalNumber(ev, a, e)
		if err != nil {
			return nil, err
		}
		product *= v
	}
	result := ast.NewNumber(product)
	result.Origin = ast.Temporary
	return result, nil
}

// opDiv implements "/": first argument divided by each subsequent value
// in turn, integer truncation, any non-first zero divisor is an error.
func opDiv(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	if err := requireMinArgc(call, 2); err != nil {
		return nil, err
	}
	as := args(call)
	total, err := evalNumber(ev, as[0], e)
	if err != nil {
		return nil, err
	}
	for _, a := range as[1:] {
		v, err := evalNumber(ev, a, e)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return nil, lisperr.New(lisperr.ZeroDivision, "division by zero")
		}
		total /= v
	}
	result := ast.NewNumber(total)
	result.Origin = ast.Temporary
	return result, nil
}

// opInc and opDec implement "INC varname value" / "DEC varname value":
// the first argument must evaluate to a Variable-origin Number node,
// which is mutated in place; the result borrows that same node so its
// identity survives the mutation.
func opInc(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	return incDec(ev, call, e, 1)
}

func opDec(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	return incDec(ev, call, e, -1)
}

func incDec(ev *Evaluator, call *ast.Node, e *env.Env, sign int64) (*ast.Node, error) {
	if err := requireArgc(call, 2); err != nil {
		return nil, err
	}
	as := args(call)

	target, err := ev.Evaluate(as[0], e)
	if err != nil {
		return nil, err
	}
	if target.Origin != ast.Variable {
		_ = ast.ReleaseTemporary(target)
		return nil, lisperr.New(lisperr.NotAVariable, "first argument is not a variable")
	}
	if target.Kind != ast.Number {
		return nil, lisperr.New(lisperr.SyntaxError, "variable does not hold a Number")
	}

	delta, err := evalNumber(ev, as[1], e)
	if err != nil {
		return nil, err
	}

	target.NumberValue += sign * delta
	return target, nil
}

// opMin and opMax implement "MIN"/"MAX": >=1 Number argument.
func opMin(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	return minMax(ev, call, e, -1)
}

func opMax(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	return minMax(ev, call, e, 1)
}

func minMax(ev *Evaluator, call *ast.Node, e *env.Env, want int) (*ast.Node, error) {
	if err := requireMinArgc(call, 1); err != nil {
		return nil, err
	}
	as := args(call)
	best, err := evalNumber(ev, as[0], e)
	if err != nil {
		return nil, err
	}
	for _, a := range as[1:] {
		v, err := evalNumber(ev, a, e)
		if err != nil {
			return nil, err
		}
		if (want > 0 && v > best) || (want < 0 && v < best) {
			best = v
		}
	}
	result := ast.NewNumber(best)
	result.Origin = ast.Temporary
	return result, nil
}

package eval

import (
	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
)

// opEql implements "=": true iff every one of >=2 Number arguments
// equals its neighbor, and so equals the first.
func opEql(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	return numericChain(ev, call, e, func(a, b int64) bool { return a == b })
}

// opNeql implements "/=": true iff every argument is pairwise distinct
// from every other, not merely from its neighbor in argument order.
func opNeql(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	values, err := evalNumericArgs(ev, call, e)
	if err != nil {
		return nil, err
	}
	distinct := true
	for i := 0; i < len(values) && distinct; i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] == values[j] {
				distinct = false
				break
			}
		}
	}
	result := ast.NewBoolean(distinct)
	result.Origin = ast.Temporary
	return result, nil
}

// opRelational implements "<", ">", "<=" and ">=", dispatching on the
// call's own head symbol since all four share one handler.
func opRelational(ev *Evaluator, call *ast.Node, e *env.Env) (*ast.Node, error) {
	var cmp func(a, b int64) bool
	switch headName(call) {
	case "<":
		cmp = func(a, b int64) bool { return a < b }
	case ">":
		cmp = func(a, b int64) bool { return a > b }
	case "<=":
		cmp = func(a, b int64) bool { return a <= b }
	case ">=":
		cmp = func(a, b int64) bool { return a >= b }
	}
	return numericChain(ev, call, e, cmp)
}

// evalNumericArgs evaluates every argument of call as a Number, requiring
// at least two — the shape every chained relational operator starts from.
func evalNumericArgs(ev *Evaluator, call *ast.Node, e *env.Env) ([]int64, error) {
	if err := requireMinArgc(call, 2); err != nil {
		return nil, err
	}
	as := args(call)
	values := make([]int64, len(as))
	for i, a := range as {
		v, err := evalNumber(ev, a, e)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// numericChain evaluates all of call's arguments as Numbers and folds
// cmp across every adjacent pair, short-circuiting to false on the
// first pair that fails. This adjacent-pair shape is correct for =, <,
// >, <= and >= since each is transitive; /= is not (see opNeql).
func numericChain(ev *Evaluator, call *ast.Node, e *env.Env, cmp func(a, b int64) bool) (*ast.Node, error) {
	values, err := evalNumericArgs(ev, call, e)
	if err != nil {
		return nil, err
	}
	ok := true
	for i := 1; i < len(values); i++ {
		if !cmp(values[i-1], values[i]) {
			ok = false
			break
		}
	}
	result := ast.NewBoolean(ok)
	result.Origin = ast.Temporary
	return result, nil
}

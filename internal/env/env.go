// Package env implements the interpreter's single mutable variable
// environment: an ordered sequence of (name, node) pairs, scanned
// linearly (the environment is expected to stay small — a handful to a
// few dozen variables — so linear scan beats a map's allocation
// overhead and, more importantly, keeps the "no two entries share a
// node" invariant trivial to see by inspection).
package env

import (
	"strings"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/lisperr"
)

type record struct {
	name string
	node *ast.Node
}

// Env is the ordered variable environment. The zero value is ready to
// use.
type Env struct {
	vars []record
}

// New returns an empty environment.
func New() *Env {
	return &Env{}
}

// Lookup returns the owning Variable-origin node for name and true, or
// (nil, false) if no such variable exists.
func (e *Env) Lookup(name string) (*ast.Node, bool) {
	for i := range e.vars {
		if e.vars[i].name == name {
			return e.vars[i].node, true
		}
	}
	return nil, false
}

// Exists reports whether name is bound.
func (e *Env) Exists(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// AddZero adds a new entry named name whose value is a freshly allocated
// Variable-origin zero Number. The caller must have already checked
// !Exists(name); AddZero does not check it itself.
func (e *Env) AddZero(name string) (*ast.Node, error) {
	n := ast.NewNumber(0)
	n.Origin = ast.Variable
	e.vars = append(e.vars, record{name: name, node: n})
	return n, nil
}

// Names returns the bound variable names in insertion order, for
// diagnostics and session persistence.
func (e *Env) Names() []string {
	names := make([]string, len(e.vars))
	for i, r := range e.vars {
		names[i] = r.name
	}
	return names
}

// ReleaseAll releases every variable's contents and drops every entry,
// tearing the environment itself down.
func (e *Env) ReleaseAll() error {
	for _, r := range e.vars {
		if err := ast.Release(r.node); err != nil {
			return err
		}
	}
	e.vars = nil
	return nil
}

// ReplaceContents overwrites target's payload in place with a deep copy
// of value tagged Variable, preserving target's node identity so any
// outstanding borrow of it (e.g. from a prior lookup) observes the new
// value rather than a stale one. The node's previous List children, if
// any, are released first. SET and session loading assign through it;
// INC and DEC adjust NumberValue on the same node directly.
func ReplaceContents(target, value *ast.Node) error {
	if target == nil {
		return lisperr.New(lisperr.Internal, "replace contents of nil node")
	}
	if target.Kind == ast.List {
		for _, child := range target.ListValue {
			if err := ast.Release(child); err != nil {
				return err
			}
		}
	}
	copied := ast.DeepCopy(value, ast.Variable)
	target.Kind = copied.Kind
	target.NumberValue = copied.NumberValue
	target.BooleanValue = copied.BooleanValue
	target.SymbolValue = copied.SymbolValue
	target.ListValue = copied.ListValue
	return nil
}

// Normalize upper-cases name the same way the preprocessor upper-cases
// source text, so a variable name built programmatically (e.g. by the
// session package) matches what the evaluator would have produced.
func Normalize(name string) string {
	return strings.ToUpper(name)
}

// Package session persists and restores an environment's variable
// bindings as YAML using gopkg.in/yaml.v3. A variable's value is
// always a deep copy of a non-Symbol evaluated result, so Number,
// Boolean and List values all occur in practice (SET 'XS '(1 2 3) is
// an ordinary program) — only Symbol values are excluded, since SET
// rejects them outright.
package session

import (
	"os"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lisperr"
	"gopkg.in/yaml.v3"
)

// binding is one variable's persisted form. Elements of a List binding
// reuse the same shape with an empty Name, nested arbitrarily deep.
type binding struct {
	Name    string    `yaml:"name,omitempty"`
	Kind    string    `yaml:"kind"`
	Number  int64     `yaml:"number,omitempty"`
	Boolean bool      `yaml:"boolean,omitempty"`
	List    []binding `yaml:"list,omitempty"`
}

// Save snapshots every variable in e to path as YAML.
func Save(e *env.Env, path string) error {
	bindings := make([]binding, 0, len(e.Names()))
	for _, name := range e.Names() {
		node, ok := e.Lookup(name)
		if !ok {
			continue
		}
		b, err := nodeToBinding(node)
		if err != nil {
			return lisperr.New(lisperr.Internal, "variable %q: %v", name, err)
		}
		b.Name = name
		bindings = append(bindings, b)
	}

	data, err := yaml.Marshal(bindings)
	if err != nil {
		return lisperr.New(lisperr.Internal, "marshal session: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return lisperr.New(lisperr.FileAccessFailure, "write session file %q: %v", path, err)
	}
	return nil
}

// nodeToBinding converts an evaluated node into its persisted form.
func nodeToBinding(node *ast.Node) (binding, error) {
	switch node.Kind {
	case ast.Number:
		return binding{Kind: "number", Number: node.NumberValue}, nil
	case ast.Boolean:
		return binding{Kind: "boolean", Boolean: node.BooleanValue}, nil
	case ast.List:
		elems := make([]binding, 0, node.Count())
		for _, child := range node.ListValue {
			eb, err := nodeToBinding(child)
			if err != nil {
				return binding{}, err
			}
			elems = append(elems, eb)
		}
		return binding{Kind: "list", List: elems}, nil
	default:
		return binding{}, lisperr.New(lisperr.Internal, "unsupported kind %s for a session snapshot", node.Kind)
	}
}

// Load reads a YAML snapshot from path and rebuilds a fresh *env.Env
// from it.
func Load(path string) (*env.Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lisperr.New(lisperr.FileAccessFailure, "read session file %q: %v", path, err)
	}

	var bindings []binding
	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return nil, lisperr.New(lisperr.InvalidInputFile, "parse session file %q: %v", path, err)
	}

	e := env.New()
	for _, b := range bindings {
		name := env.Normalize(b.Name)
		variable, err := e.AddZero(name)
		if err != nil {
			return nil, err
		}

		value, err := bindingToNode(path, name, b)
		if err != nil {
			return nil, err
		}

		if err := env.ReplaceContents(variable, value); err != nil {
			return nil, err
		}
		if err := ast.ReleaseTemporary(value); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// bindingToNode rebuilds a Temporary ast.Node from its persisted form.
// name and path are only used to annotate an unknown-kind error.
func bindingToNode(path, name string, b binding) (*ast.Node, error) {
	switch b.Kind {
	case "number":
		v := ast.NewNumber(b.Number)
		v.Origin = ast.Temporary
		return v, nil
	case "boolean":
		v := ast.NewBoolean(b.Boolean)
		v.Origin = ast.Temporary
		return v, nil
	case "list":
		result := ast.NewEmptyList()
		result.Origin = ast.Temporary
		for _, eb := range b.List {
			elem, err := bindingToNode(path, name, eb)
			if err != nil {
				return nil, err
			}
			if err := ast.Append(result, elem); err != nil {
				return nil, err
			}
		}
		return result, nil
	default:
		return nil, lisperr.New(lisperr.InvalidInputFile, "session file %q: variable %q has unknown kind %q", path, name, b.Kind)
	}
}

// Package ast defines the single tagged-value node type shared by the
// parsed program, the environment and every evaluation result: a Node
// carries a Kind (what it is) and an Origin (who owns it), and the two
// tags together are the whole of the interpreter's memory discipline —
// see Release and ReleaseTemporary below.
package ast

import (
	"fmt"
	"strings"

	"github.com/Hejdula/clisp/internal/lisperr"
)

// Kind tags the shape of a Node's payload.
type Kind int

const (
	Number Kind = iota
	Boolean
	Symbol
	List
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Symbol:
		return "Symbol"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Origin tags who owns a Node and therefore who is responsible for
// releasing it.
type Origin int

const (
	// Unset is the origin every constructor returns; the caller must
	// assign one of the three real origins before the node is reachable
	// from the program, an environment entry or an evaluation result.
	Unset Origin = iota
	Ast
	Variable
	Temporary
)

func (o Origin) String() string {
	switch o {
	case Unset:
		return "Unset"
	case Ast:
		return "Ast"
	case Variable:
		return "Variable"
	case Temporary:
		return "Temporary"
	default:
		return "Unknown"
	}
}

// Node is the tagged-union AST/runtime value. Every evaluation result,
// every parsed AST node and every variable's contents is one of these.
type Node struct {
	Kind   Kind
	Origin Origin

	NumberValue  int64
	BooleanValue bool
	SymbolValue  string
	ListValue    []*Node

	released bool
}

// NewNumber returns an Unset-origin Number node.
func NewNumber(value int64) *Node {
	return &Node{Kind: Number, NumberValue: value}
}

// NewBoolean returns an Unset-origin Boolean node.
func NewBoolean(truthy bool) *Node {
	return &Node{Kind: Boolean, BooleanValue: truthy}
}

// NewSymbol returns an Unset-origin Symbol node.
func NewSymbol(text string) *Node {
	return &Node{Kind: Symbol, SymbolValue: text}
}

// NewEmptyList returns an Unset-origin, zero-child List node.
func NewEmptyList() *Node {
	return &Node{Kind: List}
}

// False returns a fresh false Boolean node tagged with origin.
func False(origin Origin) *Node {
	n := NewBoolean(false)
	n.Origin = origin
	return n
}

// Append adds child as the next element of a List node. It fails with
// lisperr.Internal if parent is not a List — append-to-non-list is a bug
// in the caller (parser or operator), never a user-facing condition.
func Append(parent, child *Node) error {
	if parent == nil || child == nil {
		return lisperr.New(lisperr.Internal, "append to/of nil node")
	}
	if parent.Kind != List {
		return lisperr.New(lisperr.Internal, "append to non-list node of kind %s", parent.Kind)
	}
	parent.ListValue = append(parent.ListValue, child)
	return nil
}

// Count returns the number of children of a List node.
func (n *Node) Count() int {
	if n.Kind != List {
		return 0
	}
	return len(n.ListValue)
}

// IsTruthy reports whether a node is considered "true" in boolean
// contexts: a Boolean node by its value, false for anything else.
func (n *Node) IsTruthy() bool {
	return n.Kind == Boolean && n.BooleanValue
}

// DeepCopy returns a fresh Node tree, structurally identical to n, whose
// every descendant is newly allocated and tagged with targetOrigin. This
// is how a value crosses into a variable's ownership: the variable
// never shares structure with the AST or with whatever produced the
// assigned value.
func DeepCopy(n *Node, targetOrigin Origin) *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		Kind:         n.Kind,
		Origin:       targetOrigin,
		NumberValue:  n.NumberValue,
		BooleanValue: n.BooleanValue,
		SymbolValue:  n.SymbolValue,
	}
	if n.Kind == List && n.ListValue != nil {
		cp.ListValue = make([]*Node, len(n.ListValue))
		for i, child := range n.ListValue {
			cp.ListValue[i] = DeepCopy(child, targetOrigin)
		}
	}
	return cp
}

// Print renders n in the language's external form: integers as decimal,
// true as "T", false (and a nil handle) as "NIL", symbols as their text,
// lists as "(child0 child1 ...)".
func Print(n *Node) string {
	if n == nil {
		return "NIL"
	}
	switch n.Kind {
	case Number:
		return fmt.Sprintf("%d", n.NumberValue)
	case Boolean:
		if n.BooleanValue {
			return "T"
		}
		return "NIL"
	case Symbol:
		return n.SymbolValue
	case List:
		parts := make([]string, len(n.ListValue))
		for i, child := range n.ListValue {
			parts[i] = Print(child)
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "NIL"
	}
}

// Release unconditionally and recursively releases n and, for a List
// node, every child — regardless of the children's own origin. It is the
// release policy for tearing down an entire owned subtree in one shot:
// the parsed program at program exit, or a variable's contents when the
// environment itself is torn down.
//
// It returns an *lisperr.Error of kind Internal if n was already
// released, so double-release bugs surface immediately instead of
// silently reusing a dead node.
func Release(n *Node) error {
	if n == nil {
		return nil
	}
	if n.released {
		return lisperr.New(lisperr.Internal, "double release of node %s", Print(n))
	}
	n.released = true
	if n.Kind == List {
		for _, child := range n.ListValue {
			if err := Release(child); err != nil {
				return err
			}
		}
	}
	n.ListValue = nil
	return nil
}

// ReleaseTemporary is a no-op unless n's own origin is Temporary, and
// when it does descend into a List it stops at the first non-Temporary
// child — that child is an alias into the AST or an environment entry,
// and freeing it here would make that owner's next access a
// use-after-release.
func ReleaseTemporary(n *Node) error {
	if n == nil || n.Origin != Temporary {
		return nil
	}
	if n.released {
		return lisperr.New(lisperr.Internal, "double release of temporary node %s", Print(n))
	}
	n.released = true
	if n.Kind == List {
		for _, child := range n.ListValue {
			if child.Origin != Temporary {
				continue
			}
			if err := ReleaseTemporary(child); err != nil {
				return err
			}
		}
	}
	n.ListValue = nil
	return nil
}

// Released reports whether n has already been released, for tests that
// assert the no-double-release and no-use-after-release properties.
func (n *Node) Released() bool {
	return n != nil && n.released
}

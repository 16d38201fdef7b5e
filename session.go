package clisp

import (
	"bytes"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/driver"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/Hejdula/clisp/internal/parser"
	"github.com/Hejdula/clisp/internal/preproc"
)

// Session maintains one environment across repeated Eval calls:
// variables set by an earlier Eval are visible to a later one.
type Session struct {
	env *env.Env
}

// NewSession creates a new stateful evaluation session.
func NewSession() *Session {
	return &Session{env: env.New()}
}

// Eval evaluates input's top-level forms against this session's
// environment.
//
// Example:
//
//	s := clisp.NewSession()
//	s.Eval("(SET 'X 10)")
//	r, _ := s.Eval("(+ X 5)")
//	fmt.Println(r.Value) // 15
func (s *Session) Eval(input string) (*Result, error) {
	return evaluate(input, s.env)
}

// Reset clears every variable in this session.
func (s *Session) Reset() {
	s.env = env.New()
}

// GetVariable returns a variable's current printed value, if bound.
func (s *Session) GetVariable(name string) (string, bool) {
	node, ok := s.env.Lookup(env.Normalize(name))
	if !ok {
		return "", false
	}
	return ast.Print(node), true
}

func evaluate(input string, e *env.Env) (*Result, error) {
	processed := preproc.Process(input)
	tokens := lexer.Tokenize(processed)
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	d := driver.New(&buf, false)
	last, err := d.Run(program, e)
	if err != nil && lisperr.KindOf(err) != lisperr.ControlQuit {
		return nil, err
	}

	return &Result{Output: buf.String(), Value: last.Printed}, nil
}

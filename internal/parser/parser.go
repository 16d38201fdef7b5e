// Package parser implements a recursive-descent parser for the grammar:
//
//	List → Expr List | ε
//	Expr → "'" Expr | "(" List ")" | Number | Symbol
//
// The result is a single List node, origin Ast, whose children are the
// program's top-level forms.
package parser

import (
	"strconv"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/constants"
	"github.com/Hejdula/clisp/internal/lisperr"
)

type parser struct {
	tokens []string
	pos    int
}

// Parse tokenizes nothing itself — it consumes tokens already produced by
// package lexer — and returns a List node (origin Ast) of top-level
// forms.
func Parse(tokens []string) (*ast.Node, error) {
	p := &parser{tokens: tokens}
	program := ast.NewEmptyList()
	program.Origin = ast.Ast

	for p.pos < len(p.tokens) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := ast.Append(program, expr); err != nil {
			return nil, err
		}
	}

	return program, nil
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseExpr() (*ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, lisperr.New(lisperr.SyntaxError, "unexpected end of input")
	}

	switch tok {
	case "'":
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		quoted := ast.NewEmptyList()
		quoted.Origin = ast.Ast
		quoteSym := ast.NewSymbol(constants.QuoteSymbol)
		quoteSym.Origin = ast.Ast
		if err := ast.Append(quoted, quoteSym); err != nil {
			return nil, err
		}
		if err := ast.Append(quoted, inner); err != nil {
			return nil, err
		}
		return quoted, nil

	case "(":
		p.pos++
		list := ast.NewEmptyList()
		list.Origin = ast.Ast
		for {
			next, ok := p.peek()
			if !ok {
				return nil, lisperr.New(lisperr.SyntaxError, "unterminated list, expected ')'")
			}
			if next == ")" {
				p.pos++
				return list, nil
			}
			child, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := ast.Append(list, child); err != nil {
				return nil, err
			}
		}

	case ")":
		return nil, lisperr.New(lisperr.SyntaxError, "unexpected ')'")

	default:
		p.pos++
		if isNumber(tok) {
			val, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, lisperr.New(lisperr.SyntaxError, "invalid number literal %q", tok)
			}
			n := ast.NewNumber(val)
			n.Origin = ast.Ast
			return n, nil
		}
		sym := ast.NewSymbol(tok)
		sym.Origin = ast.Ast
		return sym, nil
	}
}

func isNumber(tok string) bool {
	if tok == "" {
		return false
	}
	start := 0
	if tok[0] == '-' && len(tok) > 1 {
		start = 1
	}
	for i := start; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

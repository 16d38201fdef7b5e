package parser

import (
	"testing"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *ast.Node {
	t.Helper()
	program, err := Parse(lexer.Tokenize(source))
	require.NoError(t, err)
	return program
}

func TestParseTopLevelFormCount(t *testing.T) {
	program := parse(t, "(+ 1 2) (- 3 4)")
	require.Equal(t, ast.List, program.Kind)
	require.Equal(t, ast.Ast, program.Origin)
	require.Equal(t, 2, program.Count())
}

func TestParseNumbersAndSymbols(t *testing.T) {
	program := parse(t, "(+ 1 -2 X)")
	call := program.ListValue[0]
	require.Equal(t, "+", call.ListValue[0].SymbolValue)
	require.Equal(t, int64(1), call.ListValue[1].NumberValue)
	require.Equal(t, int64(-2), call.ListValue[2].NumberValue)
	require.Equal(t, ast.Symbol, call.ListValue[3].Kind)
	require.Equal(t, "X", call.ListValue[3].SymbolValue)
}

func TestQuoteDesugarsToQuoteForm(t *testing.T) {
	program := parse(t, "'X")
	quoted := program.ListValue[0]
	require.Equal(t, ast.List, quoted.Kind)
	require.Equal(t, 2, quoted.Count())
	require.Equal(t, "QUOTE", quoted.ListValue[0].SymbolValue)
	require.Equal(t, "X", quoted.ListValue[1].SymbolValue)
}

func TestQuoteOfAList(t *testing.T) {
	program := parse(t, "'(1 2 3)")
	quoted := program.ListValue[0]
	require.Equal(t, "QUOTE", quoted.ListValue[0].SymbolValue)
	inner := quoted.ListValue[1]
	require.Equal(t, ast.List, inner.Kind)
	require.Equal(t, 3, inner.Count())
}

func TestUnterminatedListIsASyntaxError(t *testing.T) {
	_, err := Parse(lexer.Tokenize("(+ 1 2"))
	require.Error(t, err)
}

func TestUnexpectedCloseParenIsASyntaxError(t *testing.T) {
	_, err := Parse(lexer.Tokenize(")"))
	require.Error(t, err)
}

func TestEveryParsedNodeIsTaggedAst(t *testing.T) {
	program := parse(t, "(SET 'A '(1 2))")
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		require.Equal(t, ast.Ast, n.Origin)
		for _, c := range n.ListValue {
			walk(c)
		}
	}
	for _, form := range program.ListValue {
		walk(form)
	}
}

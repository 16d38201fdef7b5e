package clisp

import (
	"testing"

	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/stretchr/testify/require"
)

func TestEvalSimpleExpression(t *testing.T) {
	r, err := Eval("(+ 1 2 3)")
	require.NoError(t, err)
	require.Equal(t, "6", r.Value)
	require.Equal(t, "6\n", r.Output)
}

func TestEvalMultipleFormsReportsLastValue(t *testing.T) {
	r, err := Eval("(+ 1 1) (* 2 2)")
	require.NoError(t, err)
	require.Equal(t, "4", r.Value)
	require.Equal(t, "2\n4\n", r.Output)
}

func TestEvalPropagatesErrors(t *testing.T) {
	_, err := Eval("(/ 1 0)")
	require.Error(t, err)
	require.Equal(t, lisperr.ZeroDivision, lisperr.KindOf(err))
}

func TestEvalSyntaxError(t *testing.T) {
	_, err := Eval("(+ 1 2")
	require.Error(t, err)
}

func TestEvalTreatsQuitAsACleanResult(t *testing.T) {
	r, err := Eval("(+ 1 1) (QUIT)")
	require.NoError(t, err)
	require.Equal(t, "2\n", r.Output)
}

func TestEvalStartsFromAFreshEnvironmentEachCall(t *testing.T) {
	_, err := Eval("(SET 'X 5)")
	require.NoError(t, err)

	_, err = Eval("X")
	require.Error(t, err)
	require.Equal(t, lisperr.UnknownVariable, lisperr.KindOf(err))
}

package clisp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionPersistsVariablesAcrossEvalCalls(t *testing.T) {
	s := NewSession()
	_, err := s.Eval("(SET 'X 10)")
	require.NoError(t, err)

	r, err := s.Eval("(+ X 5)")
	require.NoError(t, err)
	require.Equal(t, "15", r.Value)
}

func TestSessionGetVariable(t *testing.T) {
	s := NewSession()
	_, err := s.Eval("(SET 'X 10)")
	require.NoError(t, err)

	value, ok := s.GetVariable("x")
	require.True(t, ok, "variable lookup must be case-insensitive like the language itself")
	require.Equal(t, "10", value)

	_, ok = s.GetVariable("Y")
	require.False(t, ok)
}

func TestSessionResetClearsVariables(t *testing.T) {
	s := NewSession()
	_, err := s.Eval("(SET 'X 10)")
	require.NoError(t, err)

	s.Reset()
	_, ok := s.GetVariable("X")
	require.False(t, ok)

	_, err = s.Eval("X")
	require.Error(t, err)
}

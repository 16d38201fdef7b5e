package cmd

import (
	"path/filepath"
	"testing"

	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/stretchr/testify/require"
)

func TestRunFileEvaluatesEveryForm(t *testing.T) {
	path := writeProgram(t, "(SET 'A 1) (INC A 1)")
	require.NoError(t, runFile(path, false))
}

func TestRunFilePropagatesError(t *testing.T) {
	path := writeProgram(t, "(/ 1 0)")
	err := runFile(path, false)
	require.Error(t, err)
	require.Equal(t, lisperr.ZeroDivision, lisperr.KindOf(err))
}

func TestRunFileTreatsQuitAsCleanExit(t *testing.T) {
	path := writeProgram(t, "(+ 1 1) (QUIT)")
	require.NoError(t, runFile(path, false))
}

func TestRunFileMissingFileIsFileAccessFailure(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "missing.lsp"), false)
	require.Error(t, err)
	require.Equal(t, lisperr.FileAccessFailure, lisperr.KindOf(err))
}

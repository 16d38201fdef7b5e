package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hejdula/clisp/internal/driver"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/Hejdula/clisp/internal/parser"
	"github.com/Hejdula/clisp/internal/preproc"
	"github.com/Hejdula/clisp/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Save or load an environment snapshot for headless use",
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save <program-file> <session-file>",
	Short: "Evaluate a file and snapshot its resulting environment to YAML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := evalToEnv(args[0])
		if err != nil {
			return err
		}
		return session.Save(e, args[1])
	},
}

var sessionLoadCmd = &cobra.Command{
	Use:   "load <session-file> <program-file>",
	Short: "Restore an environment snapshot and evaluate a file against it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := session.Load(args[0])
		if err != nil {
			return err
		}
		return evalFileWithEnv(args[1], e)
	},
}

func init() {
	sessionCmd.AddCommand(sessionSaveCmd, sessionLoadCmd)
	rootCmd.AddCommand(sessionCmd)
}

func evalToEnv(path string) (*env.Env, error) {
	e := env.New()
	return e, evalFileWithEnv(path, e)
}

func evalFileWithEnv(path string, e *env.Env) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return lisperr.New(lisperr.FileAccessFailure, "open %q: %v", path, err)
	}

	processed := preproc.Process(string(data))
	tokens := lexer.Tokenize(processed)
	program, err := parser.Parse(tokens)
	if err != nil {
		return err
	}

	d := driver.New(os.Stdout, false)
	_, runErr := d.Run(program, e)
	if lisperr.KindOf(runErr) == lisperr.ControlQuit {
		return nil
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
	}
	return runErr
}

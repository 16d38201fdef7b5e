// Package cmd wires the clisp CLI's cobra commands: a root command
// that either opens the REPL or evaluates a file, plus small
// subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hejdula/clisp/cmd/clisp/config"
	"github.com/Hejdula/clisp/internal/driver"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/Hejdula/clisp/internal/parser"
	"github.com/Hejdula/clisp/internal/preproc"
	"github.com/Hejdula/clisp/internal/repl"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "clisp [file]",
	Short: "clisp - a small Lisp-like interpreter",
	Long: `clisp evaluates a minimal Lisp dialect: integers, symbols and
lists, a small operator table, and nothing else.

Examples:
  clisp                Start an interactive session
  clisp prog.lsp       Evaluate a file silently
  clisp prog.lsp -v     Evaluate a file, echoing every form and its result`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.REPL.Verbose
		}
		if len(args) == 0 {
			return runREPL()
		}
		return runFile(args[0], verbose)
	},
}

// Execute runs the root command, translating any lisperr.Kind into its
// assigned process exit code.
func Execute() {
	if _, err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "clisp: config:", err)
		os.Exit(lisperr.Internal.ExitCode())
	}

	if err := rootCmd.Execute(); err != nil {
		if lisperr.KindOf(err) == lisperr.ControlQuit {
			return
		}
		fmt.Fprintln(os.Stderr, "clisp:", err)
		if _, ok := err.(*lisperr.Error); !ok {
			fmt.Fprintln(os.Stderr, "Usage: clisp [file] [-v]")
			os.Exit(lisperr.InvalidArgs.ExitCode())
		}
		os.Exit(lisperr.KindOf(err).ExitCode())
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo every evaluated form and its result")
}

func runREPL() error {
	cfg := config.Get()
	prompt := cfg.REPL.Prompt
	session := repl.New(os.Stdin, os.Stdout, prompt)
	return session.Run()
}

func runFile(path string, verbose bool) error {
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

	d := driver.New(os.Stdout, verbose)
	e := env.New()
	_, err = d.Run(program, e)
	if lisperr.KindOf(err) == lisperr.ControlQuit {
		return nil
	}
	return err
}

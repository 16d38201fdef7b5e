package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/Hejdula/clisp/internal/driver"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/format"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/Hejdula/clisp/internal/parser"
	"github.com/Hejdula/clisp/internal/preproc"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Evaluate one or more files independently and report a combined summary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck evaluates every file under its own fresh environment — each
// file still halts independently at its own first error — and combines
// the per-file failures with multierr so one bad file in a batch
// doesn't stop the rest from being checked.
func runCheck(paths []string) error {
	var combined error
	formsChecked := 0
	errorCount := 0

	for _, path := range paths {
		n, err := checkOne(path)
		formsChecked += n
		if err != nil {
			errorCount++
			combined = multierr.Append(combined, fmt.Errorf("%s: %w", path, err))
		}
	}

	if combined != nil {
		fmt.Fprintln(os.Stderr, combined)
	}
	fmt.Printf("%s forms checked, %d error(s)\n", format.Pretty(int64(formsChecked)), errorCount)

	if combined == nil {
		return nil
	}
	return exitKindError(combined)
}

// checkOne evaluates a single file against a fresh environment and
// returns how many top-level forms it contained.
func checkOne(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, lisperr.New(lisperr.FileAccessFailure, "open %q: %v", path, err)
	}

	processed := preproc.Process(string(data))
	tokens := lexer.Tokenize(processed)
	program, err := parser.Parse(tokens)
	if err != nil {
		return 0, err
	}

	d := driver.New(os.Stdout, false)
	e := env.New()
	_, runErr := d.Run(program, e)
	if lisperr.KindOf(runErr) == lisperr.ControlQuit {
		runErr = nil
	}
	return program.Count(), runErr
}

// exitKindError wraps a multierr-combined error so Execute's exit-code
// mapping still has a lisperr.Kind to read: the first constituent
// failure's kind stands for the batch.
func exitKindError(combined error) error {
	errs := multierr.Errors(combined)
	if len(errs) == 0 {
		return nil
	}
	kind := lisperr.KindOf(errs[0])
	return lisperr.New(kind, "%v", combined)
}

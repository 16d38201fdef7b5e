// Command clisp is the CLI entry point for the interpreter: run with no
// arguments for an interactive session, or with a file to evaluate it
// once.
package main

import "github.com/Hejdula/clisp/cmd/clisp/cmd"

func main() {
	cmd.Execute()
}

// Package clisp provides a clean, idiomatic Go API for evaluating
// programs in a small Lisp-like language: integers, symbols
// and lists, a fixed operator table, and nothing else.
//
// Basic usage:
//
//	result, err := clisp.Eval("(+ 1 2 3)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Value) // 6
//
// Stateful sessions, for a REPL or a live editor:
//
//	s := clisp.NewSession()
//	s.Eval("(SET 'X 10)")
//	result, _ := s.Eval("(+ X 5)")
//	fmt.Println(result.Value) // 15
package clisp

// Eval evaluates a program's top-level forms in a fresh environment.
func Eval(input string) (*Result, error) {
	return NewSession().Eval(input)
}

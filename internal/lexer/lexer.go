// Package lexer splits preprocessed source into tokens: runs of
// non-whitespace characters, plus `'`, `(` and `)` as standalone
// one-character tokens.
package lexer

import "github.com/Hejdula/clisp/internal/constants"

// Tokenize splits already-preprocessed source into tokens. The input is
// expected to already be comment-free and upper-cased (see package
// preproc); Tokenize itself does not care about case.
func Tokenize(source string) []string {
	var tokens []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	for _, c := range source {
		switch {
		case isSpace(c):
			flush()
		case c == constants.Quote || c == constants.LParen || c == constants.RParen:
			flush()
			tokens = append(tokens, string(c))
		default:
			current = append(current, c)
		}
	}
	flush()

	return tokens
}

func isSpace(c rune) bool {
	for _, ws := range constants.Whitespace {
		if c == ws {
			return true
		}
	}
	return false
}

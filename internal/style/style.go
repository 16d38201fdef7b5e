// Package style holds the REPL and CLI's pre-built lipgloss styles,
// gated by termenv's color-profile detection.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the handful of named looks the REPL and CLI apply to
// their output.
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
}

// Default returns Styles appropriate for the current terminal: color
// when stdout is a real terminal and NO_COLOR is unset, plain text
// otherwise.
func Default() Styles {
	if !enabled() {
		return Styles{}
	}
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

func enabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}

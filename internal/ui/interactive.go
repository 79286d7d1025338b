package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdin is attached to a terminal, so
// prompts can be skipped in pipes and scripts.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalChooser presents options via the Choose prompt. It satisfies
// the resolver's chooser contract.
type TerminalChooser struct{}

func (TerminalChooser) Choose(title string, options []string) (int, error) {
	return Choose(title, options)
}

package view

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used when no terminal width can be detected.
const DefaultWidth = 80

// ResolveWidth picks the wrap width: an explicit positive value wins, a
// negative value disables wrapping, zero asks the terminal.
func ResolveWidth(width int) int {
	if width != 0 {
		return width
	}
	return TerminalWidth(DefaultWidth)
}

// TerminalWidth returns the width of stdout, then $COLUMNS, then fallback.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// defaultIsTerminal reports a TTY for stdout unless TERM is dumb.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil || os.Getenv("TERM") == "dumb" {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

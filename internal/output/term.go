package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
// Spinners and interactive forms are disabled when it returns false.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Package terminal provides the small set of terminal queries the runtime
// needs: whether a file is a tty, the current dimensions, raw-mode entry
// and restore, and the supported color profile.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether f is attached to a terminal. Cygwin/msys
// pseudo-terminals count.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorProfile returns the color support of the current environment, from
// Ascii (no color) up to TrueColor. Respects NO_COLOR and CLICOLOR_FORCE.
func ColorProfile() termenv.Profile {
	return termenv.EnvColorProfile()
}

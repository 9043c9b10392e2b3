package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size holds terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries stdout first,
// then stderr (in case stdout is redirected), then the COLUMNS/LINES
// environment variables, and finally falls back to 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, h, err := term.GetSize(f.Fd()); err == nil && w > 0 && h > 0 {
			return Size{Cols: w, Rows: h}
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns the terminal size of a specific file descriptor,
// with the same environment and 80x24 fallbacks as GetSize.
func GetSizeFromFd(fd uintptr) Size {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}
	}
	return getSizeFromEnv()
}

// getSizeFromEnv reads dimensions from COLUMNS/LINES, defaulting to 80x24.
func getSizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback if it is unset or malformed.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

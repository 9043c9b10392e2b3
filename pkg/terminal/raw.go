package terminal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

// RawMode holds the saved state of a terminal that has been switched to
// raw mode, so it can be restored on exit.
type RawMode struct {
	fd    uintptr
	state *term.State
}

// EnterRaw switches f into raw mode: no echo, no line buffering, no signal
// generation from keys. The returned RawMode restores the previous state.
func EnterRaw(f *os.File) (*RawMode, error) {
	state, err := term.MakeRaw(f.Fd())
	if err != nil {
		return nil, fmt.Errorf("terminal: enter raw mode: %w", err)
	}
	return &RawMode{fd: f.Fd(), state: state}, nil
}

// Restore puts the terminal back into the state captured by EnterRaw.
func (r *RawMode) Restore() error {
	if err := term.Restore(r.fd, r.state); err != nil {
		return fmt.Errorf("terminal: restore: %w", err)
	}
	return nil
}

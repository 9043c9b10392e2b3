//go:build unix

package input

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize registers ch for terminal resize signals.
func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}

package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/muesli/cancelreader"

	"gitlab.com/tinyland/lab/matcha/pkg/terminal"
)

// readResult pairs an event with a terminal read error; exactly one of the
// two is set.
type readResult struct {
	ev  Event
	err error
}

// Reader is the terminal implementation of Source. It reads raw bytes from
// the tty through a cancelable reader, decodes them into key and mouse
// events, and watches for resize signals, merging everything into a single
// event stream.
type Reader struct {
	file      *os.File
	cr        cancelreader.CancelReader
	results   chan readResult
	winch     chan os.Signal
	done      chan struct{}
	closeOnce sync.Once
}

// NewReader starts a reader on f (normally os.Stdin). Two goroutines run
// for the reader's lifetime: one draining the tty, one watching resize
// signals. Close stops both.
func NewReader(f *os.File) (*Reader, error) {
	cr, err := cancelreader.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("input: cancelable reader: %w", err)
	}

	r := &Reader{
		file:    f,
		cr:      cr,
		results: make(chan readResult, 32),
		winch:   make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	notifyResize(r.winch)
	go r.readLoop()
	go r.resizeLoop()
	return r, nil
}

// ReadEvent blocks until the next input event. After a cancel or read
// failure it returns a non-nil error and must not be called again.
func (r *Reader) ReadEvent() (Event, error) {
	res := <-r.results
	return res.ev, res.err
}

// Close cancels the pending read and stops the resize watcher. A ReadEvent
// blocked at the time of the call returns io.EOF. Close is idempotent.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		signal.Stop(r.winch)
		close(r.done)
		r.cr.Cancel()
	})
	return nil
}

// readLoop drains the tty in chunks and decodes each chunk into events.
// One Read corresponds to one burst of input; escape sequences arrive
// whole within a chunk.
func (r *Reader) readLoop() {
	buf := make([]byte, 256)
	for {
		n, err := r.cr.Read(buf)
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				err = io.EOF
			}
			r.results <- readResult{err: err}
			return
		}
		for _, ev := range parseBytes(buf[:n]) {
			r.results <- readResult{ev: ev}
		}
	}
}

// resizeLoop translates resize signals into ResizeEvents carrying the
// current dimensions.
func (r *Reader) resizeLoop() {
	for {
		select {
		case <-r.done:
			return
		case <-r.winch:
			s := terminal.GetSizeFromFd(r.file.Fd())
			select {
			case r.results <- readResult{ev: ResizeEvent{Width: s.Cols, Height: s.Rows}}:
			case <-r.done:
				return
			}
		}
	}
}

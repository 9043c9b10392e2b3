package matcha

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/matcha/pkg/input"
	"gitlab.com/tinyland/lab/matcha/pkg/terminal"
)

// defaultQueueLen is the buffer size of the message and command channels.
// Producers only block once they are this far ahead of the consumer.
const defaultQueueLen = 64

// Program ties an App to the runtime: one event source, one command
// executor, and the dispatcher that owns the application state. A Program
// runs at most one loop at a time.
type Program struct {
	app       App
	src       input.Source
	output    io.Writer
	logger    *slog.Logger
	altScreen bool
	queueLen  int

	msgs chan Msg
	cmds chan Cmd
}

// Option configures a Program at construction time.
type Option func(*Program)

// WithInput replaces the default terminal input source. Tests and headless
// drivers use this to feed events programmatically. When a custom source is
// set, Run leaves the terminal completely untouched: no raw mode, no
// cursor or screen handling.
func WithInput(src input.Source) Option {
	return func(p *Program) { p.src = src }
}

// WithOutput redirects rendering away from stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Program) { p.output = w }
}

// WithLogger sets the logger for runtime diagnostics, most notably input
// source failure. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Program) { p.logger = l }
}

// WithAltScreen renders into the terminal's alternate screen buffer,
// restoring the primary screen when the program exits.
func WithAltScreen() Option {
	return func(p *Program) { p.altScreen = true }
}

// WithQueueLen overrides the channel buffer length. Only applications that
// burst messages faster than updates drain them need to touch this.
func WithQueueLen(n int) Option {
	return func(p *Program) { p.queueLen = n }
}

// NewProgram creates a Program for app. By default input comes from stdin,
// output goes to stdout, and diagnostics are discarded.
func NewProgram(app App, opts ...Option) *Program {
	p := &Program{
		app:      app,
		output:   os.Stdout,
		logger:   slog.New(slog.DiscardHandler),
		queueLen: defaultQueueLen,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.queueLen < 1 {
		p.queueLen = 1
	}
	return p
}

// Run drives the loop until the application quits. The sequence is: set up
// the terminal (default input only), start the event source and command
// executor, run Init and render once, then process messages one at a time,
// rendering after each. Receiving QuitMsg ends the loop without a final
// render; in-flight commands and the source goroutines are abandoned, as
// they hold no state the application can observe.
//
// Update and View are only ever called from the goroutine that called Run.
func (p *Program) Run() error {
	p.msgs = make(chan Msg, p.queueLen)
	p.cmds = make(chan Cmd, p.queueLen)

	if p.src == nil {
		rd, err := input.NewReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("matcha: open input: %w", err)
		}
		defer rd.Close()
		p.src = rd

		if terminal.IsTerminal(os.Stdin) {
			raw, err := terminal.EnterRaw(os.Stdin)
			if err != nil {
				return fmt.Errorf("matcha: %w", err)
			}
			defer raw.Restore()
		}
		defer p.setupScreen()()

		// Seed the loop with the current dimensions so the application can
		// lay itself out before the first real event arrives.
		if f, ok := p.output.(*os.File); ok && terminal.IsTerminal(f) {
			s := terminal.GetSizeFromFd(f.Fd())
			p.msgs <- ResizeMsg{Width: s.Cols, Height: s.Rows}
		}
	}

	go p.eventLoop()
	go p.commandLoop()

	if ini, ok := p.app.(Initializer); ok {
		if cmd := ini.Init(); cmd != nil {
			p.cmds <- cmd
		}
	}
	p.app.View(p.output)

	for msg := range p.msgs {
		switch m := msg.(type) {
		case QuitMsg:
			return nil
		case BatchMsg:
			// Control message: schedule every command in order, leave the
			// state alone. Order of scheduling, not of completion.
			for _, cmd := range m {
				if cmd != nil {
					p.cmds <- cmd
				}
			}
		default:
			if cmd := p.app.Update(msg); cmd != nil {
				p.cmds <- cmd
			}
		}
		p.app.View(p.output)
	}
	return nil
}

// eventLoop is the event source activity: it polls the input provider
// until it fails, translating resize events into ResizeMsg and passing
// everything else through unchanged. A source failure is terminal; the
// loop keeps running on command-produced messages only.
func (p *Program) eventLoop() {
	for {
		ev, err := p.src.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				p.logger.Debug("input source closed")
			} else {
				p.logger.Error("input source failed; no further input events", "err", err)
			}
			return
		}
		switch e := ev.(type) {
		case input.ResizeEvent:
			p.msgs <- ResizeMsg{Width: e.Width, Height: e.Height}
		default:
			p.msgs <- ev
		}
	}
}

// commandLoop is the command executor activity: it drains the command
// channel, handing each command to a fresh goroutine so a slow or blocked
// command never delays the ones queued behind it. Worker count is
// unbounded.
func (p *Program) commandLoop() {
	for cmd := range p.cmds {
		go func(cmd Cmd) {
			if msg := cmd(); msg != nil {
				p.msgs <- msg
			}
		}(cmd)
	}
}

// setupScreen hides the cursor and optionally switches to the alternate
// screen when the output is a terminal. The returned function undoes both.
func (p *Program) setupScreen() func() {
	f, ok := p.output.(*os.File)
	if !ok || !terminal.IsTerminal(f) {
		return func() {}
	}
	out := termenv.NewOutput(f)
	out.HideCursor()
	if p.altScreen {
		out.AltScreen()
		out.ClearScreen()
	}
	return func() {
		if p.altScreen {
			out.ExitAltScreen()
		}
		out.ShowCursor()
	}
}

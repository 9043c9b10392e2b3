package matcha

// Msg is a unit of information delivered into the main loop. Any Go value
// can be a message; the application inspects concrete types with a type
// switch or type assertion inside Update. The runtime never looks at a
// message's contents, with two exceptions: QuitMsg and BatchMsg, which are
// intercepted by the dispatcher before Update is called.
type Msg = any

// Cmd is a deferred, one-shot unit of work. The command executor runs each
// command on its own goroutine, so a command may block freely (network
// calls, timers, subprocess waits). A command runs exactly once and is
// never retried or cancelled. The returned message, if non-nil, is fed back
// into the loop; returning nil means the command has nothing to report.
type Cmd func() Msg

// QuitMsg signals graceful termination. When the dispatcher receives it the
// loop ends without a further render. Applications usually produce it by
// returning the Quit command from Update.
type QuitMsg struct{}

// BatchMsg carries an ordered sequence of commands to schedule at once. The
// dispatcher enqueues each contained command in order and re-renders the
// unchanged state; the message itself never reaches Update. Enqueue order
// does not imply completion order: commands run concurrently.
type BatchMsg []Cmd

// ResizeMsg reports new terminal dimensions. The event source produces one
// whenever the input provider reports a resize, and Run delivers an initial
// one when the output is a terminal of known size.
type ResizeMsg struct {
	Width  int
	Height int
}

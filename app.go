package matcha

import "io"

// App is the contract between an application and the runtime. The
// application's state lives in the receiver; the dispatcher is its only
// caller, so neither method needs any locking.
//
// Update receives every non-control message, may mutate state, and may
// return a command to schedule deferred work (nil for none).
//
// View renders the current state to w. It is called once after Init and
// once after every processed message, always strictly after Update has
// returned. View must not mutate state.
type App interface {
	Update(msg Msg) Cmd
	View(w io.Writer)
}

// Initializer is implemented by applications that want to schedule work
// before the first message arrives. If the App passed to NewProgram also
// implements Initializer, Run calls Init once at startup and enqueues the
// returned command (nil for none). Applications without startup work simply
// omit the method.
type Initializer interface {
	Init() Cmd
}

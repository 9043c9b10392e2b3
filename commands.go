package matcha

import "time"

// Quit is a command that produces QuitMsg. Return it from Update (or Init)
// to end the program.
func Quit() Msg {
	return QuitMsg{}
}

// Batch bundles several commands into one, scheduling all of them
// independently. Nil commands are dropped. If nothing remains, Batch
// returns nil so callers can pass the result straight back from Update.
func Batch(cmds ...Cmd) Cmd {
	valid := make([]Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return func() Msg {
		return BatchMsg(valid)
	}
}

// Tick returns a command that waits for the given duration and then
// produces the message built by fn from the time the tick fired. It drives
// periodic refresh cycles: have Update return another Tick each time the
// message arrives.
func Tick(d time.Duration, fn func(time.Time) Msg) Cmd {
	return func() Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		return fn(<-t.C)
	}
}

// Do wraps a plain function as a command that produces no message. Useful
// for fire-and-forget side effects that the model does not need to hear
// back from.
func Do(fn func()) Cmd {
	return func() Msg {
		fn()
		return nil
	}
}

// Package input defines the event source contract for the matcha runtime
// and provides a terminal implementation of it. The runtime polls a Source
// for events; key and mouse events pass through to the application as
// messages in their native shape, while resize events are translated by the
// runtime into its own resize message.
//
// Applications that drive the runtime from something other than a terminal
// (tests, network streams, recorded sessions) implement Source themselves.
package input

// Event is one unit of terminal input: a KeyEvent, MouseEvent, or
// ResizeEvent. The runtime distinguishes the variants by type switch.
type Event any

// Source yields input events one at a time. ReadEvent blocks until an event
// is available or the source fails. A failure is terminal: after returning
// a non-nil error the source will not be polled again.
type Source interface {
	ReadEvent() (Event, error)
}

// Key identifies a non-printable key. Printable input arrives as KeyRune
// with the rune in KeyEvent.Rune.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
)

var keyNames = [...]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
}

// KeyEvent reports a single key press.
type KeyEvent struct {
	Code Key  // KeyRune for printable input
	Rune rune // the character, when Code == KeyRune
	Alt  bool // ESC-prefixed (Meta/Alt held)
	Ctrl bool // Control held, Code == KeyRune
}

// String renders the event in a human-readable form such as "a", "ctrl+c",
// "alt+enter" or "up".
func (k KeyEvent) String() string {
	var s string
	if k.Alt {
		s += "alt+"
	}
	if k.Ctrl {
		s += "ctrl+"
	}
	if k.Code == KeyRune {
		return s + string(k.Rune)
	}
	if int(k.Code) < len(keyNames) {
		return s + keyNames[k.Code]
	}
	return s + "unknown"
}

// MouseButton identifies which button a mouse event refers to.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction distinguishes presses, releases, and motion.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// MouseEvent reports a pointer event in zero-based cell coordinates.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
}

// ResizeEvent reports new terminal dimensions in character cells.
type ResizeEvent struct {
	Width  int
	Height int
}

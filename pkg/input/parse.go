package input

import "unicode/utf8"

// parseBytes decodes a chunk of raw terminal bytes into events. A chunk is
// one Read from the tty; terminals write escape sequences atomically, so a
// sequence never straddles a chunk boundary in practice. Unrecognized
// sequences are skipped rather than surfaced as garbage runes.
func parseBytes(buf []byte) []Event {
	var events []Event
	for len(buf) > 0 {
		ev, n := parseOne(buf)
		if n <= 0 {
			n = 1
		}
		if ev != nil {
			events = append(events, ev)
		}
		buf = buf[n:]
	}
	return events
}

// parseOne decodes a single event from the front of buf, returning the
// event (nil if the bytes should be discarded) and the number of bytes
// consumed.
func parseOne(buf []byte) (Event, int) {
	c := buf[0]

	if c == 0x1b {
		return parseEscape(buf)
	}
	return parsePlain(buf)
}

// parsePlain decodes a non-escape byte: control characters and UTF-8 runes.
func parsePlain(buf []byte) (Event, int) {
	switch c := buf[0]; {
	case c == '\r' || c == '\n':
		return KeyEvent{Code: KeyEnter}, 1
	case c == '\t':
		return KeyEvent{Code: KeyTab}, 1
	case c == 0x7f || c == 0x08:
		return KeyEvent{Code: KeyBackspace}, 1
	case c == 0x00:
		// NUL is ctrl+space on most terminals.
		return KeyEvent{Code: KeyRune, Rune: ' ', Ctrl: true}, 1
	case c < 0x1b:
		return KeyEvent{Code: KeyRune, Rune: rune('a' + c - 1), Ctrl: true}, 1
	case c < 0x20:
		// 0x1c..0x1f: ctrl+backslash and friends.
		return KeyEvent{Code: KeyRune, Rune: rune('\\' + c - 0x1c), Ctrl: true}, 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size == 1 {
		return nil, 1
	}
	return KeyEvent{Code: KeyRune, Rune: r}, size
}

// parseEscape decodes an ESC-initiated sequence: a lone escape key, a CSI
// or SS3 sequence, or an alt-modified key.
func parseEscape(buf []byte) (Event, int) {
	if len(buf) == 1 {
		return KeyEvent{Code: KeyEsc}, 1
	}

	switch buf[1] {
	case '[':
		return parseCSI(buf)
	case 'O':
		if len(buf) >= 3 {
			if ev := ss3Key(buf[2]); ev != nil {
				return ev, 3
			}
		}
		return KeyEvent{Code: KeyEsc}, 1
	}

	// ESC followed by an ordinary key: alt modifier.
	ev, n := parsePlain(buf[1:])
	if ke, ok := ev.(KeyEvent); ok {
		ke.Alt = true
		return ke, n + 1
	}
	return ev, n + 1
}

// ss3Key maps the final byte of an SS3 sequence (ESC O x) to a key event.
// Arrow finals appear here on application-cursor-mode terminals.
func ss3Key(final byte) Event {
	switch final {
	case 'A':
		return KeyEvent{Code: KeyUp}
	case 'B':
		return KeyEvent{Code: KeyDown}
	case 'C':
		return KeyEvent{Code: KeyRight}
	case 'D':
		return KeyEvent{Code: KeyLeft}
	case 'H':
		return KeyEvent{Code: KeyHome}
	case 'F':
		return KeyEvent{Code: KeyEnd}
	case 'P':
		return KeyEvent{Code: KeyF1}
	case 'Q':
		return KeyEvent{Code: KeyF2}
	case 'R':
		return KeyEvent{Code: KeyF3}
	case 'S':
		return KeyEvent{Code: KeyF4}
	}
	return nil
}

// parseCSI decodes a CSI sequence (ESC [ params final). buf[0] is ESC and
// buf[1] is '['.
func parseCSI(buf []byte) (Event, int) {
	if len(buf) >= 3 && buf[2] == '<' {
		return parseSGRMouse(buf)
	}

	// Collect parameter bytes up to the final byte (0x40-0x7e).
	var params []int
	num, haveNum := 0, false
	i := 2
	for ; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
			haveNum = true
		case c == ';':
			params = append(params, num)
			num, haveNum = 0, false
		case c >= 0x40 && c <= 0x7e:
			if haveNum {
				params = append(params, num)
			}
			ev := csiKey(c, params)
			return ev, i + 1
		default:
			// Intermediate byte we don't understand; bail on the sequence.
			return nil, i + 1
		}
	}
	// Truncated sequence; discard what we have.
	return nil, len(buf)
}

// csiKey maps a CSI final byte plus parameters to a key event. The second
// parameter, when present, encodes modifiers: (param-1) bit 1 is alt, bit 2
// is ctrl.
func csiKey(final byte, params []int) Event {
	var code Key
	switch final {
	case 'A':
		code = KeyUp
	case 'B':
		code = KeyDown
	case 'C':
		code = KeyRight
	case 'D':
		code = KeyLeft
	case 'H':
		code = KeyHome
	case 'F':
		code = KeyEnd
	case 'Z':
		// Shift+tab; reported as plain tab.
		code = KeyTab
	case '~':
		if len(params) == 0 {
			return nil
		}
		switch params[0] {
		case 1, 7:
			code = KeyHome
		case 2:
			code = KeyInsert
		case 3:
			code = KeyDelete
		case 4, 8:
			code = KeyEnd
		case 5:
			code = KeyPgUp
		case 6:
			code = KeyPgDown
		default:
			return nil
		}
	default:
		return nil
	}

	ev := KeyEvent{Code: code}
	if len(params) >= 2 && params[1] > 0 {
		mod := params[1] - 1
		ev.Alt = mod&2 != 0
		ev.Ctrl = mod&4 != 0
	}
	return ev
}

// parseSGRMouse decodes an SGR mouse report: ESC [ < Cb ; Cx ; Cy (M|m).
// Coordinates on the wire are one-based; events are zero-based.
func parseSGRMouse(buf []byte) (Event, int) {
	var params [3]int
	idx, num := 0, 0
	i := 3
	for ; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
		case c == ';':
			if idx >= 2 {
				return nil, i + 1
			}
			params[idx] = num
			idx++
			num = 0
		case c == 'M' || c == 'm':
			if idx != 2 {
				return nil, i + 1
			}
			params[2] = num
			return sgrMouseEvent(params, c == 'm'), i + 1
		default:
			return nil, i + 1
		}
	}
	return nil, len(buf)
}

// sgrMouseEvent builds a MouseEvent from decoded SGR parameters.
func sgrMouseEvent(params [3]int, release bool) Event {
	cb := params[0]
	ev := MouseEvent{
		X: params[1] - 1,
		Y: params[2] - 1,
	}

	switch {
	case cb&64 != 0:
		if cb&1 == 0 {
			ev.Button = MouseWheelUp
		} else {
			ev.Button = MouseWheelDown
		}
		ev.Action = MousePress
		return ev
	case cb&32 != 0:
		ev.Action = MouseMotion
	case release:
		ev.Action = MouseRelease
	default:
		ev.Action = MousePress
	}

	switch cb & 3 {
	case 0:
		ev.Button = MouseLeft
	case 1:
		ev.Button = MouseMiddle
	case 2:
		ev.Button = MouseRight
	case 3:
		ev.Button = MouseNone
	}
	return ev
}

package input

import (
	"reflect"
	"testing"
)

func TestParsePrintableRunes(t *testing.T) {
	cases := []struct {
		in   string
		want rune
	}{
		{"a", 'a'},
		{"Z", 'Z'},
		{"/", '/'},
		{"é", 'é'},
		{"世", '世'},
	}
	for _, tc := range cases {
		evs := parseBytes([]byte(tc.in))
		if len(evs) != 1 {
			t.Errorf("parseBytes(%q) yielded %d events, want 1", tc.in, len(evs))
			continue
		}
		ke, ok := evs[0].(KeyEvent)
		if !ok || ke.Code != KeyRune || ke.Rune != tc.want {
			t.Errorf("parseBytes(%q) = %#v, want rune %q", tc.in, evs[0], tc.want)
		}
	}
}

func TestParseControlKeys(t *testing.T) {
	cases := []struct {
		in   string
		want KeyEvent
	}{
		{"\r", KeyEvent{Code: KeyEnter}},
		{"\n", KeyEvent{Code: KeyEnter}},
		{"\t", KeyEvent{Code: KeyTab}},
		{"\x7f", KeyEvent{Code: KeyBackspace}},
		{"\x08", KeyEvent{Code: KeyBackspace}},
		{"\x03", KeyEvent{Code: KeyRune, Rune: 'c', Ctrl: true}},
		{"\x01", KeyEvent{Code: KeyRune, Rune: 'a', Ctrl: true}},
		{"\x1a", KeyEvent{Code: KeyRune, Rune: 'z', Ctrl: true}},
		{"\x00", KeyEvent{Code: KeyRune, Rune: ' ', Ctrl: true}},
		{"\x1b", KeyEvent{Code: KeyEsc}},
	}
	for _, tc := range cases {
		evs := parseBytes([]byte(tc.in))
		if len(evs) != 1 {
			t.Errorf("parseBytes(%q) yielded %d events, want 1", tc.in, len(evs))
			continue
		}
		if evs[0] != Event(tc.want) {
			t.Errorf("parseBytes(%q) = %#v, want %#v", tc.in, evs[0], tc.want)
		}
	}
}

func TestParseCSISequences(t *testing.T) {
	cases := []struct {
		in   string
		want KeyEvent
	}{
		{"\x1b[A", KeyEvent{Code: KeyUp}},
		{"\x1b[B", KeyEvent{Code: KeyDown}},
		{"\x1b[C", KeyEvent{Code: KeyRight}},
		{"\x1b[D", KeyEvent{Code: KeyLeft}},
		{"\x1b[H", KeyEvent{Code: KeyHome}},
		{"\x1b[F", KeyEvent{Code: KeyEnd}},
		{"\x1b[Z", KeyEvent{Code: KeyTab}},
		{"\x1b[2~", KeyEvent{Code: KeyInsert}},
		{"\x1b[3~", KeyEvent{Code: KeyDelete}},
		{"\x1b[5~", KeyEvent{Code: KeyPgUp}},
		{"\x1b[6~", KeyEvent{Code: KeyPgDown}},
		{"\x1b[7~", KeyEvent{Code: KeyHome}},
		{"\x1b[8~", KeyEvent{Code: KeyEnd}},
		{"\x1b[1;5C", KeyEvent{Code: KeyRight, Ctrl: true}},
		{"\x1b[1;3A", KeyEvent{Code: KeyUp, Alt: true}},
		{"\x1b[1;7D", KeyEvent{Code: KeyLeft, Alt: true, Ctrl: true}},
	}
	for _, tc := range cases {
		evs := parseBytes([]byte(tc.in))
		if len(evs) != 1 {
			t.Errorf("parseBytes(%q) yielded %d events, want 1", tc.in, len(evs))
			continue
		}
		if evs[0] != Event(tc.want) {
			t.Errorf("parseBytes(%q) = %#v, want %#v", tc.in, evs[0], tc.want)
		}
	}
}

func TestParseSS3Sequences(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"\x1bOA", KeyUp},
		{"\x1bOD", KeyLeft},
		{"\x1bOP", KeyF1},
		{"\x1bOQ", KeyF2},
		{"\x1bOR", KeyF3},
		{"\x1bOS", KeyF4},
	}
	for _, tc := range cases {
		evs := parseBytes([]byte(tc.in))
		if len(evs) != 1 {
			t.Errorf("parseBytes(%q) yielded %d events, want 1", tc.in, len(evs))
			continue
		}
		if ke := evs[0].(KeyEvent); ke.Code != tc.want {
			t.Errorf("parseBytes(%q) = %v, want code %v", tc.in, ke, tc.want)
		}
	}
}

func TestParseAltModifiedKeys(t *testing.T) {
	evs := parseBytes([]byte("\x1bx"))
	if len(evs) != 1 {
		t.Fatalf("yielded %d events, want 1", len(evs))
	}
	want := KeyEvent{Code: KeyRune, Rune: 'x', Alt: true}
	if evs[0] != Event(want) {
		t.Errorf("parseBytes(ESC x) = %#v, want %#v", evs[0], want)
	}

	evs = parseBytes([]byte("\x1b\r"))
	want = KeyEvent{Code: KeyEnter, Alt: true}
	if len(evs) != 1 || evs[0] != Event(want) {
		t.Errorf("parseBytes(ESC CR) = %#v, want %#v", evs, want)
	}
}

func TestParseSGRMouse(t *testing.T) {
	cases := []struct {
		in   string
		want MouseEvent
	}{
		{"\x1b[<0;10;5M", MouseEvent{X: 9, Y: 4, Button: MouseLeft, Action: MousePress}},
		{"\x1b[<0;10;5m", MouseEvent{X: 9, Y: 4, Button: MouseLeft, Action: MouseRelease}},
		{"\x1b[<2;1;1M", MouseEvent{X: 0, Y: 0, Button: MouseRight, Action: MousePress}},
		{"\x1b[<1;3;4M", MouseEvent{X: 2, Y: 3, Button: MouseMiddle, Action: MousePress}},
		{"\x1b[<64;8;2M", MouseEvent{X: 7, Y: 1, Button: MouseWheelUp, Action: MousePress}},
		{"\x1b[<65;8;2M", MouseEvent{X: 7, Y: 1, Button: MouseWheelDown, Action: MousePress}},
		{"\x1b[<35;2;2M", MouseEvent{X: 1, Y: 1, Button: MouseNone, Action: MouseMotion}},
	}
	for _, tc := range cases {
		evs := parseBytes([]byte(tc.in))
		if len(evs) != 1 {
			t.Errorf("parseBytes(%q) yielded %d events, want 1", tc.in, len(evs))
			continue
		}
		if evs[0] != Event(tc.want) {
			t.Errorf("parseBytes(%q) = %#v, want %#v", tc.in, evs[0], tc.want)
		}
	}
}

func TestParseChunkWithMultipleEvents(t *testing.T) {
	evs := parseBytes([]byte("ab\x1b[A\r"))
	want := []Event{
		KeyEvent{Code: KeyRune, Rune: 'a'},
		KeyEvent{Code: KeyRune, Rune: 'b'},
		KeyEvent{Code: KeyUp},
		KeyEvent{Code: KeyEnter},
	}
	if !reflect.DeepEqual(evs, want) {
		t.Errorf("parseBytes = %#v, want %#v", evs, want)
	}
}

func TestParseSkipsUnknownSequences(t *testing.T) {
	// Unknown CSI final and an invalid UTF-8 byte produce no events but
	// must not derail parsing of what follows.
	evs := parseBytes([]byte("\x1b[99q" + "\xff" + "k"))
	want := []Event{KeyEvent{Code: KeyRune, Rune: 'k'}}
	if !reflect.DeepEqual(evs, want) {
		t.Errorf("parseBytes = %#v, want %#v", evs, want)
	}
}

func TestKeyEventString(t *testing.T) {
	cases := []struct {
		ev   KeyEvent
		want string
	}{
		{KeyEvent{Code: KeyRune, Rune: 'a'}, "a"},
		{KeyEvent{Code: KeyRune, Rune: 'c', Ctrl: true}, "ctrl+c"},
		{KeyEvent{Code: KeyEnter, Alt: true}, "alt+enter"},
		{KeyEvent{Code: KeyUp}, "up"},
		{KeyEvent{Code: KeyF3}, "f3"},
	}
	for _, tc := range cases {
		if got := tc.ev.String(); got != tc.want {
			t.Errorf("String(%#v) = %q, want %q", tc.ev, got, tc.want)
		}
	}
}

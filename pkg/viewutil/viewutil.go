// Package viewutil provides ANSI-aware text primitives for use inside View
// implementations: visible-width measurement, truncation, padding, and
// word wrapping. All functions treat escape sequences as zero-width and
// count wide characters (CJK, emoji) as two cells.
package viewutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the visible width of s in terminal cells, ignoring ANSI
// escape sequences and handling grapheme clusters correctly.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s down to at most maxWidth visible cells, appending tail
// (e.g. "…") when a cut happens. The tail counts toward maxWidth. Escape
// sequences before the cut point are preserved.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to the given visible width. Strings
// already at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	if vis := Width(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// PadLeft pads s with leading spaces to the given visible width. Strings
// already at or beyond width are returned unchanged.
func PadLeft(s string, width int) string {
	if vis := Width(s); vis < width {
		return strings.Repeat(" ", width-vis) + s
	}
	return s
}

// Center pads s on both sides so it is centered within width; an odd
// leftover space goes on the right.
func Center(s string, width int) string {
	vis := Width(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	right := width - vis - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Wrap word-wraps s at the given width, respecting escape sequences and
// wide characters, and returns the individual lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Strip removes all ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

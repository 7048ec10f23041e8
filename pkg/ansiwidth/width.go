package ansiwidth

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// RuneWidth returns the display width of a single code point: 2 for
// wide/fullwidth runes, 0 for zero-width runes (combining marks, variation
// selectors, ZWJ/ZWNJ) and control characters, 1 otherwise. The East-Asian
// width table itself is mattn/go-runewidth's, configured for the "narrow"
// ambiguous-width convention (runewidth's default), per spec.md §9.
func RuneWidth(r rune) int {
	if r == '\n' || r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// DisplayWidth returns the display width of s, ignoring any well-formed
// SGR escape sequence. Malformed/unterminated SGR prefixes are not
// special-cased: the lone ESC contributes zero width (it is a control
// character) and the bytes that follow it are measured like any other
// text, per the open-question resolution recorded in DESIGN.md.
func DisplayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		if s[i] == esc {
			if occ, ok := scanOneSGR(s, i); ok {
				i = occ.end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w += RuneWidth(r)
		i += size
	}
	return w
}

// SliceByWidth returns the substring of s whose visible width falls in
// [lo, hi). Any SGR state active at lo is prepended so the slice renders
// correctly on its own; a reset is appended if state is still open at hi.
// A rune that straddles lo or hi is never split: it is dropped and the
// boundary it would have crossed is padded with spaces instead, so the
// result's display width never exceeds hi-lo.
func SliceByWidth(s string, lo, hi int) string {
	if hi <= lo {
		return ""
	}
	var (
		state   State
		width   int
		out     []byte
		started bool
	)
	ensureStarted := func() {
		if !started {
			out = append(out, state.OpeningSequence()...)
			started = true
		}
	}
	for i := 0; i < len(s); {
		if width >= hi {
			break
		}
		if s[i] == esc {
			if occ, ok := scanOneSGR(s, i); ok {
				state.Apply(occ.params)
				if width >= lo {
					ensureStarted()
					out = append(out, occ.raw...)
				}
				i = occ.end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := RuneWidth(r)
		switch {
		case width+rw <= lo:
			// entirely before the window
		case width < lo && width+rw > lo:
			// straddles the lower edge: drop the glyph, pad up to lo
			ensureStarted()
			for k := width; k < lo; k++ {
				out = append(out, ' ')
			}
		case width+rw <= hi:
			ensureStarted()
			out = append(out, s[i:i+size]...)
		default:
			// straddles the upper edge: drop the glyph, pad up to hi
			ensureStarted()
			for k := width; k < hi; k++ {
				out = append(out, ' ')
			}
		}
		width += rw
		i += size
	}
	if started && state.IsOpen() {
		out = append(out, Reset...)
	}
	return string(out)
}

// Package ansiwidth implements the ANSI-SGR-aware text measurement and
// slicing primitives the rest of the engine is built on: display width by
// terminal cell rather than byte or rune count, width-bounded slicing that
// keeps color state intact across the cut, and enumeration of the SGR
// escapes active at any byte offset.
//
// Only the ESC '[' {params} 'm' (Select Graphic Rendition) family is
// recognised. Cursor movement, erase, and other CSI final bytes are not
// interpreted — per the engine's scope, an unrecognised escape sequence is
// left as literal characters and measured rune-by-rune like any other text.
package ansiwidth

import "strings"

const esc = 0x1b

// sgrOccurrence is a parsed SGR escape found while scanning a string.
type sgrOccurrence struct {
	start  int      // byte offset of ESC
	end    int      // byte offset one past the terminating 'm'
	raw    string   // the full escape sequence, e.g. "\x1b[1;31m"
	params []string // the raw parameter tokens, e.g. ["1", "31"]; [""] for a bare ESC[m
}

// SGROccurrence is the exported form of sgrOccurrence returned by ScanSGR.
type SGROccurrence struct {
	ByteIndex int
	Params    []string
}

// scanOneSGR attempts to parse a complete SGR escape starting at byte index
// i (which must hold ESC). It returns the parsed occurrence and the byte
// index immediately following it, or ok=false if s[i:] is not a
// well-formed, terminated SGR sequence.
func scanOneSGR(s string, i int) (sgrOccurrence, bool) {
	if i >= len(s) || s[i] != esc {
		return sgrOccurrence{}, false
	}
	if i+1 >= len(s) || s[i+1] != '[' {
		return sgrOccurrence{}, false
	}
	j := i + 2
	for j < len(s) && (isDigit(s[j]) || s[j] == ';') {
		j++
	}
	if j >= len(s) || s[j] != 'm' {
		return sgrOccurrence{}, false
	}
	paramStr := s[i+2 : j]
	var params []string
	if paramStr == "" {
		params = []string{""}
	} else {
		params = strings.Split(paramStr, ";")
	}
	return sgrOccurrence{
		start:  i,
		end:    j + 1,
		raw:    s[i : j+1],
		params: params,
	}, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// MatchSGR attempts to parse a well-formed SGR escape starting exactly at
// byte offset i in s. It is exported for callers (the wrapper) that need
// to tokenize a string themselves rather than pre-scan it with ScanSGR.
func MatchSGR(s string, i int) (raw string, params []string, end int, ok bool) {
	occ, ok := scanOneSGR(s, i)
	if !ok {
		return "", nil, 0, false
	}
	return occ.raw, occ.params, occ.end, true
}

// ScanSGR returns, in order, the byte offset and parameter list of every
// well-formed SGR escape in s.
func ScanSGR(s string) []SGROccurrence {
	var out []SGROccurrence
	for i := 0; i < len(s); {
		if s[i] != esc {
			i++
			continue
		}
		occ, ok := scanOneSGR(s, i)
		if !ok {
			i++
			continue
		}
		out = append(out, SGROccurrence{ByteIndex: occ.start, Params: occ.params})
		i = occ.end
	}
	return out
}

// Strip removes every well-formed SGR escape from s, leaving everything
// else — including malformed or unterminated escape prefixes — untouched.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != esc {
			b.WriteByte(s[i])
			i++
			continue
		}
		occ, ok := scanOneSGR(s, i)
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		i = occ.end
	}
	return b.String()
}

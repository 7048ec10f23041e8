// Package wrap implements the cell-wrapping stage of the layout pipeline:
// turning one cell's string into an ordered list of physical lines that
// each fit a target display width, honoring hard newline breaks and
// carrying SGR state across the lines it splits.
package wrap

import (
	"strings"
	"unicode/utf8"

	"github.com/gridforge/gridforge/pkg/ansiwidth"
)

// Policy selects word-boundary wrapping or raw character wrapping.
type Policy int

const (
	// Word wraps on atoms of (non-whitespace run + its trailing whitespace),
	// falling back to character splitting for any atom wider than the
	// target width on its own.
	Word Policy = iota
	// Char wraps one code point at a time.
	Char
)

// Ellipsis is the truncation marker appended to a cell whose wrapped line
// count exceeds its configured truncation limit. Three ASCII dots were
// picked over U+2026 so the marker survives byte-oriented tooling
// unchanged; spec.md leaves the choice to the implementer provided it is
// applied consistently, which this package does everywhere it truncates.
const Ellipsis = "..."

type token struct {
	isSGR     bool
	synthetic bool // reopened state at the start of a new line; not re-applied to state
	raw       string
	params    []string
	text      string
	width     int
}

func tokenize(s string) []token {
	var toks []token
	for i := 0; i < len(s); {
		if r, ok := scanSGRAt(s, i); ok {
			toks = append(toks, token{isSGR: true, raw: r.raw, params: r.params})
			i = r.end
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		toks = append(toks, token{text: s[i : i+size], width: ansiwidth.RuneWidth(r)})
		i += size
	}
	return toks
}

type sgrSpan struct {
	raw    string
	params []string
	end    int
}

func scanSGRAt(s string, i int) (sgrSpan, bool) {
	raw, params, end, ok := ansiwidth.MatchSGR(s, i)
	if !ok {
		return sgrSpan{}, false
	}
	return sgrSpan{raw: raw, params: params, end: end}, true
}

type atom struct {
	tokens     []token
	width      int
	whitespace bool // true if the atom is entirely whitespace runes
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}

// buildAtoms groups tokens per policy. Word policy groups a non-whitespace
// run with its trailing whitespace run into one atom; a leading whitespace
// run with no preceding word forms its own atom. Char policy emits one
// atom per visible rune, with any immediately preceding SGR tokens bound
// to it.
func buildAtoms(toks []token, policy Policy) []atom {
	var atoms []atom
	var pendingSGR []token
	i := 0
	for i < len(toks) {
		if toks[i].isSGR {
			pendingSGR = append(pendingSGR, toks[i])
			i++
			continue
		}
		r, _ := utf8.DecodeRuneInString(toks[i].text)
		ws := isWhitespaceRune(r)

		if policy == Char {
			a := atom{tokens: append(pendingSGR, toks[i]), width: toks[i].width, whitespace: ws}
			pendingSGR = nil
			atoms = append(atoms, a)
			i++
			continue
		}

		// Word policy.
		var cur []token
		cur = append(cur, pendingSGR...)
		pendingSGR = nil
		width := 0
		if ws {
			// leading/standalone whitespace run
			for i < len(toks) {
				if toks[i].isSGR {
					cur = append(cur, toks[i])
					i++
					continue
				}
				rr, _ := utf8.DecodeRuneInString(toks[i].text)
				if !isWhitespaceRune(rr) {
					break
				}
				cur = append(cur, toks[i])
				width += toks[i].width
				i++
			}
			atoms = append(atoms, atom{tokens: cur, width: width, whitespace: true})
			continue
		}
		// non-whitespace run
		for i < len(toks) {
			if toks[i].isSGR {
				cur = append(cur, toks[i])
				i++
				continue
			}
			rr, _ := utf8.DecodeRuneInString(toks[i].text)
			if isWhitespaceRune(rr) {
				break
			}
			cur = append(cur, toks[i])
			width += toks[i].width
			i++
		}
		// trailing whitespace, bound to the same atom
		for i < len(toks) {
			if toks[i].isSGR {
				cur = append(cur, toks[i])
				i++
				continue
			}
			rr, _ := utf8.DecodeRuneInString(toks[i].text)
			if !isWhitespaceRune(rr) {
				break
			}
			cur = append(cur, toks[i])
			width += toks[i].width
			i++
		}
		atoms = append(atoms, atom{tokens: cur, width: width, whitespace: false})
	}
	if len(pendingSGR) > 0 {
		atoms = append(atoms, atom{tokens: pendingSGR})
	}
	return atoms
}

func hasVisible(toks []token) bool {
	for _, t := range toks {
		if !t.isSGR {
			return true
		}
	}
	return false
}

func serialize(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.isSGR {
			b.WriteString(t.raw)
		} else {
			b.WriteString(t.text)
		}
	}
	return b.String()
}

// splitAtomChars breaks an overlong word-mode atom into single-rune atoms
// for the char-split fallback (spec.md §4.2 step 3).
func splitAtomChars(a atom) []atom {
	var out []atom
	var pending []token
	for _, t := range a.tokens {
		if t.isSGR {
			pending = append(pending, t)
			continue
		}
		toks := append(pending, t)
		pending = nil
		r, _ := utf8.DecodeRuneInString(t.text)
		out = append(out, atom{tokens: toks, width: t.width, whitespace: isWhitespaceRune(r)})
	}
	if len(pending) > 0 && len(out) > 0 {
		out[len(out)-1].tokens = append(out[len(out)-1].tokens, pending...)
	}
	return out
}

// wrapSegment wraps a single \n-free segment to width w.
func wrapSegment(segment string, w int, policy Policy) []string {
	toks := tokenize(segment)
	if !hasVisible(toks) {
		if len(toks) == 0 {
			return []string{""}
		}
		line := serialize(toks)
		var state ansiwidth.State
		for _, t := range toks {
			if t.isSGR {
				state.Apply(t.params)
			}
		}
		if state.IsOpen() {
			line += ansiwidth.Reset
		}
		return []string{line}
	}

	atoms := buildAtoms(toks, policy)

	var lines []string
	var cur []token
	curWidth := 0
	var state ansiwidth.State

	flush := func() {
		line := serialize(cur)
		if state.IsOpen() {
			line += ansiwidth.Reset
		}
		lines = append(lines, line)
		cur = nil
		curWidth = 0
	}

	applyAtom := func(a atom) {
		if len(cur) == 0 && state.IsOpen() {
			cur = append(cur, token{isSGR: true, synthetic: true, raw: state.OpeningSequence()})
		}
		for _, t := range a.tokens {
			cur = append(cur, t)
			if t.isSGR && !t.synthetic {
				state.Apply(t.params)
			}
		}
		curWidth += a.width
	}

	for _, a := range atoms {
		if a.whitespace {
			if curWidth == 0 && a.width > w {
				// whitespace-only content wider than the column: clip to w,
				// one line, no further wrapping (spec.md §4.2 edge cases).
				clipped := clipWhitespaceAtom(a, w)
				applyAtom(clipped)
				continue
			}
			if curWidth+a.width > w {
				// trailing whitespace overflow is dropped, not wrapped.
				remaining := w - curWidth
				if remaining > 0 {
					applyAtom(clipWhitespaceAtom(a, remaining))
				}
				continue
			}
			applyAtom(a)
			continue
		}

		if a.width > w {
			for _, sub := range splitAtomChars(a) {
				if curWidth+sub.width > w && curWidth > 0 {
					flush()
				}
				applyAtom(sub)
			}
			continue
		}

		if curWidth+a.width > w && curWidth > 0 {
			flush()
		}
		applyAtom(a)
	}

	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func clipWhitespaceAtom(a atom, w int) atom {
	width := 0
	var toks []token
	for _, t := range a.tokens {
		if t.isSGR {
			toks = append(toks, t)
			continue
		}
		if width+t.width > w {
			break
		}
		toks = append(toks, t)
		width += t.width
	}
	return atom{tokens: toks, width: width, whitespace: true}
}

// Result is the output of WrapDetailed: the wrapped lines plus the
// per-line metadata callers need to apply paragraph-aware alignment and
// surface truncation.
type Result struct {
	Lines []string
	// ParagraphEnd[i] is true when Lines[i] is the last physical line of
	// its \n-delimited segment (or the line left behind by truncation),
	// per spec.md §4.4's "last line of a paragraph" rule.
	ParagraphEnd []bool
	// Truncated is true when maxLines cut lines off the end.
	Truncated bool
}

// Wrap implements spec.md §4.2: split s on hard newlines, wrap each
// segment independently to display width w under policy, then apply
// truncation if maxLines > 0 and the total exceeds it.
func Wrap(s string, w int, policy Policy, maxLines int) []string {
	return WrapDetailed(s, w, policy, maxLines).Lines
}

// WrapDetailed does what Wrap does but also reports, per emitted line,
// whether it closes a paragraph (so callers can apply the "justify
// reverts to left on the last line" rule per paragraph rather than per
// cell) and whether truncation occurred.
func WrapDetailed(s string, w int, policy Policy, maxLines int) Result {
	if w <= 0 {
		w = 1
	}
	segments := strings.Split(s, "\n")
	var lines []string
	var paragraphEnd []bool
	for _, seg := range segments {
		segLines := wrapSegment(seg, w, policy)
		for i := range segLines {
			paragraphEnd = append(paragraphEnd, i == len(segLines)-1)
		}
		lines = append(lines, segLines...)
	}
	var truncated bool
	if maxLines > 0 && len(lines) > maxLines {
		truncated = true
		lines = lines[:maxLines]
		paragraphEnd = paragraphEnd[:maxLines]
		lines[maxLines-1] = truncateLine(lines[maxLines-1], w)
		paragraphEnd[maxLines-1] = true
	}
	return Result{Lines: lines, ParagraphEnd: paragraphEnd, Truncated: truncated}
}

// truncateLine shortens line so it ends with Ellipsis and still fits
// within display width w.
func truncateLine(line string, w int) string {
	ellipsisWidth := ansiwidth.DisplayWidth(Ellipsis)
	if w <= 0 {
		return ""
	}
	if ellipsisWidth >= w {
		return ansiwidth.SliceByWidth(Ellipsis, 0, w)
	}
	avail := w - ellipsisWidth
	return ansiwidth.SliceByWidth(line, 0, avail) + Ellipsis
}

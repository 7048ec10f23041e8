package layout

import (
	"strings"

	"github.com/gridforge/gridforge/pkg/ansiwidth"
	"github.com/gridforge/gridforge/pkg/wrap"
)

// CellFormat is the rectangle and style a single cell is rendered into
// (spec.md §4.4).
type CellFormat struct {
	Width, Height     int
	PadLeft, PadRight int
	HAlign            HAlign
	VAlign            VAlign
	WordWrap          bool
	Truncate          int // 0 = no cap on wrapped line count before formatting
}

// FormatCell wraps text to the format's content width, truncates or pads
// vertically to Height lines, aligns and pads each line horizontally, and
// returns exactly Height lines each of display width Width. Padding spaces
// are inserted outside any SGR open/close pair, so they never inherit the
// cell's color. The second return value reports whether any content was
// discarded, either by the wrap policy's own truncation limit or by the
// cell's fixed Height.
func FormatCell(text string, f CellFormat) ([]string, bool) {
	contentWidth := f.Width - f.PadLeft - f.PadRight
	if contentWidth < 1 {
		contentWidth = 1
	}
	policy := wrap.Char
	if f.WordWrap {
		policy = wrap.Word
	}
	res := wrap.WrapDetailed(text, contentWidth, policy, f.Truncate)
	lines := res.Lines
	paragraphEnd := res.ParagraphEnd
	truncated := res.Truncated

	if len(lines) > f.Height {
		truncated = true
		lines = lines[:f.Height]
		paragraphEnd = paragraphEnd[:f.Height]
		if f.Height > 0 {
			lines[f.Height-1] = markTruncated(lines[f.Height-1], contentWidth)
			paragraphEnd[f.Height-1] = true
		}
	} else if len(lines) < f.Height {
		top, bottom := verticalPadCounts(len(lines), f.Height, f.VAlign)
		lines = applyPad(lines, top, bottom, blankLines)
		paragraphEnd = applyPad(paragraphEnd, top, bottom, trueFlags)
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padHorizontal(line, contentWidth, f.HAlign, paragraphEnd[i], f.PadLeft, f.PadRight)
	}
	return out, truncated
}

// markTruncated appends the ellipsis marker to line, signalling that lines
// below it were discarded to fit the cell's height, shortening line first
// if necessary to keep the result within w display cells.
func markTruncated(line string, w int) string {
	ellipsisWidth := ansiwidth.DisplayWidth(wrap.Ellipsis)
	if ellipsisWidth >= w {
		return ansiwidth.SliceByWidth(wrap.Ellipsis, 0, w)
	}
	if ansiwidth.DisplayWidth(line) <= w-ellipsisWidth {
		return line + wrap.Ellipsis
	}
	return ansiwidth.SliceByWidth(line, 0, w-ellipsisWidth) + wrap.Ellipsis
}

// verticalPadCounts splits the deficit between height and n into a
// top/bottom pair of filler-line counts for v.
func verticalPadCounts(n, height int, v VAlign) (top, bottom int) {
	deficit := height - n
	if deficit <= 0 {
		return 0, 0
	}
	switch v {
	case AlignBottom:
		return deficit, 0
	case AlignMiddle:
		top = deficit / 2
		return top, deficit - top
	default: // AlignTop
		return 0, deficit
	}
}

// applyPad surrounds items with top/bottom filler values built by fill,
// used to keep a cell's text lines and their parallel paragraph-boundary
// flags padded in lockstep.
func applyPad[T any](items []T, top, bottom int, fill func(int) []T) []T {
	if top == 0 && bottom == 0 {
		return items
	}
	out := append(fill(top), items...)
	return append(out, fill(bottom)...)
}

func blankLines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = ""
	}
	return out
}

func trueFlags(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

// padHorizontal pads the visible portion of line to width w using h, then
// wraps it with padLeft/padRight literal spaces. justify reverts to left
// on the last line of a wrapped paragraph per spec.md §4.4 and the
// resolved open question in DESIGN.md.
func padHorizontal(line string, w int, h HAlign, isLastOfParagraph bool, padLeft, padRight int) string {
	visWidth := ansiwidth.DisplayWidth(line)
	deficit := w - visWidth
	if deficit < 0 {
		deficit = 0
	}

	var content string
	switch h {
	case AlignRight:
		content = strings.Repeat(" ", deficit) + line
	case AlignCenter:
		left := deficit / 2
		right := deficit - left
		content = strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
	case AlignJustify:
		if isLastOfParagraph {
			content = line + strings.Repeat(" ", deficit)
		} else {
			content = justify(line, deficit)
		}
	default: // AlignLeft
		content = line + strings.Repeat(" ", deficit)
	}

	return strings.Repeat(" ", padLeft) + content + strings.Repeat(" ", padRight)
}

// justify distributes `extra` spaces between word groups in line,
// left-to-right, one at a time per gap until exhausted.
func justify(line string, extra int) string {
	if extra <= 0 {
		return line
	}
	words := strings.Split(line, " ")
	gaps := len(words) - 1
	if gaps <= 0 {
		return line + strings.Repeat(" ", extra)
	}
	base := extra / gaps
	rem := extra % gaps
	var b strings.Builder
	for i, word := range words {
		b.WriteString(word)
		if i < gaps {
			spaces := 1 + base
			if i < rem {
				spaces++
			}
			b.WriteString(strings.Repeat(" ", spaces))
		}
	}
	return b.String()
}

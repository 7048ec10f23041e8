// Package border implements the row emitter: given column widths and row
// metadata it composes the top border, content rows, interior separators,
// and the bottom border (spec.md §4.6). It knows nothing about cell text
// decomposition — callers supply already-formatted, already-padded lines.
package border

import "strings"

// Border holds the sixteen named border glyphs of spec.md §3. Any field
// may be the empty string, meaning "emit nothing there" — used by the
// Void preset.
type Border struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Top, Bottom, BodyLeft, BodyRight           string
	TopJoin, BottomJoin, LeftJoin, RightJoin   string
	CrossJoin                                  string
	JoinBody                                   string // horizontal glyph used by interior row separators
	BodyJoin                                   string // vertical glyph between content columns
}

// Block is one contiguous run of columns rendered as a single unit: either
// a single ordinary column, or the merged footprint of a column-spanning
// cell. Width is the block's total display width (sum of the column
// widths it covers, plus the separator width that would otherwise sit
// between them).
type Block struct {
	Width int
	Lines []string // exactly RowHeight lines, each of display width Width
}

func repeatGlyph(glyph string, width int) string {
	if glyph == "" {
		return strings.Repeat(" ", width)
	}
	// Border glyphs are single display cells; repeating the glyph string
	// itself (rather than a derived single rune) keeps multi-byte glyphs
	// like "═" intact without a separate width computation here.
	return strings.Repeat(glyph, width)
}

// RenderTop composes the top border line.
func (b Border) RenderTop(widths []int) string {
	return b.renderEdge(widths, b.TopLeft, b.Top, b.TopJoin, b.TopRight)
}

// RenderBottom composes the bottom border line.
func (b Border) RenderBottom(widths []int) string {
	return b.renderEdge(widths, b.BottomLeft, b.Bottom, b.BottomJoin, b.BottomRight)
}

func (b Border) renderEdge(widths []int, left, body, join, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		sb.WriteString(repeatGlyph(body, w))
		if i < len(widths)-1 {
			sb.WriteString(join)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// RenderSeparator composes an interior row separator. crossing[c] == true
// means a span crosses the boundary at column c: that column's segment is
// blanked, and the join glyph immediately to its right is replaced with
// BodyJoin (a continuing vertical wall) unless column c+1 also crosses, in
// which case it is blanked too.
func (b Border) RenderSeparator(widths []int, crossing map[int]bool) string {
	var sb strings.Builder
	sb.WriteString(b.LeftJoin)
	for i, w := range widths {
		if crossing[i] {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(repeatGlyph(b.JoinBody, w))
		}
		if i < len(widths)-1 {
			switch {
			case crossing[i] && crossing[i+1]:
				sb.WriteString(" ")
			case crossing[i] || crossing[i+1]:
				sb.WriteString(b.BodyJoin)
			default:
				sb.WriteString(b.CrossJoin)
			}
		}
	}
	sb.WriteString(b.RightJoin)
	return sb.String()
}

// RenderContentRow composes one visual line of a content row from its
// column blocks, in left-to-right order.
func (b Border) RenderContentRow(blocks []Block, lineIndex int) string {
	var sb strings.Builder
	sb.WriteString(b.BodyLeft)
	for i, blk := range blocks {
		line := ""
		if lineIndex < len(blk.Lines) {
			line = blk.Lines[lineIndex]
		}
		sb.WriteString(line)
		if i < len(blocks)-1 {
			sb.WriteString(b.BodyJoin)
		}
	}
	sb.WriteString(b.BodyRight)
	return sb.String()
}

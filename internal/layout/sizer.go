package layout

// SizingInput is everything the column sizer needs, already reduced to
// primitives: no knowledge of TableData/TableConfig.
type SizingInput struct {
	NumCols          int
	ExplicitWidths   []int // length NumCols; 0 means "auto"
	PadLeft, PadRight []int // length NumCols
	NaturalWidth     [][]int // [row][col]: the cell's widest \n-segment, unpadded
	Coverage         Coverage
	Spans            []Span
	SpanNaturalWidth []int // length len(Spans): owner cell's natural content width
	SeparatorWidth   int   // display width of the body-join character between columns
}

// SizeColumns resolves the final width of every column (spec.md §4.3).
// Explicit widths are fixed first; auto columns take the maximum natural
// width (plus padding) over non-covered, non-multi-column-span cells;
// spans that would otherwise not fit enlarge their columns, with any
// deficit split evenly and the remainder given to the leftmost spanned
// column.
func SizeColumns(in SizingInput) []int {
	widths := make([]int, in.NumCols)
	for c := 0; c < in.NumCols; c++ {
		if in.ExplicitWidths[c] > 0 {
			widths[c] = in.ExplicitWidths[c]
			continue
		}
		max := 0
		for r := 0; r < len(in.NaturalWidth); r++ {
			tag := in.Coverage.At(r, c)
			if tag.Kind == Covered {
				continue
			}
			if tag.Kind == Owner && in.Spans[tag.Index].ColSpan > 1 {
				continue // contributes through span distribution instead
			}
			if w := in.NaturalWidth[r][c]; w > max {
				max = w
			}
		}
		widths[c] = max + in.PadLeft[c] + in.PadRight[c]
	}

	for idx, sp := range in.Spans {
		colSpan := sp.ColSpan
		if colSpan < 1 {
			colSpan = 1
		}
		if colSpan <= 1 {
			continue
		}
		total := 0
		for c := sp.Col; c < sp.Col+colSpan; c++ {
			total += widths[c]
		}
		total += in.SeparatorWidth * (colSpan - 1)

		need := 0
		if idx < len(in.SpanNaturalWidth) {
			need = in.SpanNaturalWidth[idx]
		}
		lastCol := sp.Col + colSpan - 1
		need += in.PadLeft[sp.Col] + in.PadRight[lastCol]

		if need <= total {
			continue
		}
		deficit := need - total
		base := deficit / colSpan
		rem := deficit % colSpan
		for i := 0; i < colSpan; i++ {
			add := base
			if i == 0 {
				add += rem
			}
			widths[sp.Col+i] += add
		}
	}

	return widths
}

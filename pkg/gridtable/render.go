package gridtable

import (
	"strings"

	"github.com/gridforge/gridforge/internal/border"
	"github.com/gridforge/gridforge/internal/layout"
	"github.com/gridforge/gridforge/pkg/ansiwidth"
	"github.com/gridforge/gridforge/pkg/wrap"
)

type borderMetrics struct {
	Border BorderConfig
}

func (m borderMetrics) bodyJoinWidth() int {
	return ansiwidth.DisplayWidth(m.Border.BodyJoin)
}

// Render runs the full, non-streaming pipeline: size columns from the
// whole table, plan spans, compute row heights, format every cell, and
// emit the complete bordered string. Warnings accumulated along the way
// (non-empty covered cells under strict mode, truncated content) are returned alongside the
// result; callers that don't care about them can discard the slice.
func Render(data TableData, cfg TableConfig) (string, []Warning, error) {
	plan, warnings, err := buildPlan(data, cfg)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(plan.border.Border.RenderTop(plan.widths))
	sb.WriteString("\n")
	for r := 0; r < plan.rows; r++ {
		if r > 0 && !cfg.SingleLine {
			sep := plan.border
			if r == 1 && cfg.HeaderBorder != nil {
				sep.Border = *cfg.HeaderBorder
			}
			crossing := crossingSet(plan.coverage.RowCrossings(r-1, plan.spans))
			sb.WriteString(sep.Border.RenderSeparator(plan.widths, crossing))
			sb.WriteString("\n")
		}
		blocks := plan.rowBlocks(r)
		for line := 0; line < plan.heights[r]; line++ {
			sb.WriteString(plan.border.Border.RenderContentRow(blocks, line))
			sb.WriteString("\n")
		}
	}
	sb.WriteString(plan.border.Border.RenderBottom(plan.widths))
	sb.WriteString("\n")
	return sb.String(), warnings, nil
}

func crossingSet(cols []int) map[int]bool {
	out := make(map[int]bool, len(cols))
	for _, c := range cols {
		out[c] = true
	}
	return out
}

// renderPlan holds everything the emission loop in Render needs: final
// column widths, per-row heights, the coverage matrix, and pre-sliced
// content lines for every (row, owning-column) cell.
type renderPlan struct {
	rows, cols int
	widths     []int
	heights    []int
	coverage   layout.Coverage
	spans      []layout.Span
	border     borderMetrics
	cellLines  map[[2]int][]string // key: {row, col of the block's leftmost column}
}

func (p *renderPlan) rowBlocks(r int) []border.Block {
	var blocks []border.Block
	c := 0
	for c < p.cols {
		tag := p.coverage.At(r, c)
		if tag.Kind == layout.None {
			blocks = append(blocks, border.Block{Width: p.widths[c], Lines: p.cellLines[[2]int{r, c}]})
			c++
			continue
		}
		sp := p.spans[tag.Index]
		width := 0
		for i := sp.Col; i < sp.Col+sp.ColSpan; i++ {
			width += p.widths[i]
		}
		width += p.border.bodyJoinWidth() * (sp.ColSpan - 1)
		blocks = append(blocks, border.Block{Width: width, Lines: p.cellLines[[2]int{r, sp.Col}]})
		c = sp.Col + sp.ColSpan
	}
	return blocks
}

// buildPlan runs the sizing, span-planning, height-computation, and
// formatting stages (spec.md §4.3–§4.5) over the whole table.
func buildPlan(data TableData, cfg TableConfig) (*renderPlan, []Warning, error) {
	rows := data.numRows()
	cols := data.numCols()
	if rows == 0 || cols == 0 {
		return nil, nil, &ShapeError{Reason: "table data has no rows or columns"}
	}
	for i, r := range data.Rows {
		if len(r) != cols {
			return nil, nil, &ShapeError{Reason: "row length mismatch", Row: i, Want: cols, Got: len(r)}
		}
	}

	resolvedBorder, err := resolveBorder(cfg.Border)
	if err != nil {
		return nil, nil, err
	}
	bm := borderMetrics{Border: resolvedBorder}
	sepWidth := bm.bodyJoinWidth()

	spans := make([]layout.Span, len(cfg.Spans))
	for i, s := range cfg.Spans {
		rs, cs := s.RowSpan, s.ColSpan
		if rs < 1 {
			rs = 1
		}
		if cs < 1 {
			cs = 1
		}
		spans[i] = layout.Span{Row: s.Row, Col: s.Col, RowSpan: rs, ColSpan: cs}
	}
	coverage, err := layout.PlanSpans(rows, cols, spans)
	if err != nil {
		return nil, nil, &SpanError{Reason: err.Error()}
	}

	var warnings []Warning
	if cfg.Strict {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if coverage.At(r, c).Kind == layout.Covered && strings.TrimSpace(ansiwidth.Strip(data.Rows[r][c])) != "" {
					warnings = append(warnings, Warning{Kind: WarnNonEmptyCoveredCell, Row: r, Col: c,
						Message: "covered cell has non-empty content; content is ignored during layout"})
				}
			}
		}
	}

	padLeft := make([]int, cols)
	padRight := make([]int, cols)
	explicitWidths := make([]int, cols)
	wordWrap := make([][]bool, rows)
	truncate := make([][]int, rows)
	halign := make([][]HAlign, rows)
	valign := make([][]VAlign, rows)
	for c := 0; c < cols; c++ {
		col0 := cfg.resolvedColumn(0, c)
		padLeft[c] = col0.PadLeft
		padRight[c] = col0.PadRight
		explicitWidths[c] = col0.Width
	}
	for r := 0; r < rows; r++ {
		wordWrap[r] = make([]bool, cols)
		truncate[r] = make([]int, cols)
		halign[r] = make([]HAlign, cols)
		valign[r] = make([]VAlign, cols)
		for c := 0; c < cols; c++ {
			rc := cfg.resolvedColumn(r, c)
			wordWrap[r][c] = rc.WordWrap
			truncate[r][c] = rc.Truncate
			halign[r][c] = rc.HAlign
			valign[r][c] = rc.VAlign
		}
	}
	// Span alignment overrides apply to the owner cell's own formatting.
	for i, s := range cfg.Spans {
		if s.HAlign != nil {
			halign[s.Row][s.Col] = *s.HAlign
		}
		if s.VAlign != nil {
			valign[s.Row][s.Col] = *s.VAlign
		}
		_ = i
	}

	naturalWidth := make([][]int, rows)
	for r := 0; r < rows; r++ {
		naturalWidth[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			naturalWidth[r][c] = naturalSegmentWidth(data.Rows[r][c])
		}
	}
	spanNaturalWidth := make([]int, len(spans))
	for i, sp := range spans {
		text := data.Rows[sp.Row][sp.Col]
		spanNaturalWidth[i] = naturalSegmentWidth(text)
	}

	widths := layout.SizeColumns(layout.SizingInput{
		NumCols:          cols,
		ExplicitWidths:   explicitWidths,
		PadLeft:          padLeft,
		PadRight:         padRight,
		NaturalWidth:     naturalWidth,
		Coverage:         coverage,
		Spans:            spans,
		SpanNaturalWidth: spanNaturalWidth,
		SeparatorWidth:   sepWidth,
	})
	for c, w := range widths {
		if w-padLeft[c]-padRight[c] < 1 {
			return nil, nil, &ConfigError{Reason: "column has no room for content after padding"}
		}
	}

	heights := computeRowHeights(rows, cols, coverage, spans, data, widths, padLeft, padRight, sepWidth, wordWrap, truncate)

	cellLines := map[[2]int][]string{}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			tag := coverage.At(r, c)
			if tag.Kind == layout.Covered || tag.Kind == layout.Owner {
				continue // handled by the span loop below
			}
			lines, truncated := layout.FormatCell(data.Rows[r][c], layout.CellFormat{
				Width: widths[c], Height: heights[r],
				PadLeft: padLeft[c], PadRight: padRight[c],
				HAlign: halign[r][c], VAlign: valign[r][c],
				WordWrap: wordWrap[r][c], Truncate: truncate[r][c],
			})
			cellLines[[2]int{r, c}] = lines
			if truncated {
				warnings = append(warnings, Warning{Kind: WarnTruncatedContent, Row: r, Col: c,
					Message: "cell content truncated to fit its column width or row height"})
			}
		}
	}
	for idx, sp := range spans {
		width := 0
		for c := sp.Col; c < sp.Col+sp.ColSpan; c++ {
			width += widths[c]
		}
		width += sepWidth * (sp.ColSpan - 1)
		totalHeight := 0
		for r := sp.Row; r < sp.Row+sp.RowSpan; r++ {
			totalHeight += heights[r]
		}
		text := data.Rows[sp.Row][sp.Col]
		full, truncated := layout.FormatCell(text, layout.CellFormat{
			Width: width, Height: totalHeight,
			PadLeft: padLeft[sp.Col], PadRight: padRight[sp.Col+sp.ColSpan-1],
			HAlign: halign[sp.Row][sp.Col], VAlign: valign[sp.Row][sp.Col],
			WordWrap: wordWrap[sp.Row][sp.Col], Truncate: truncate[sp.Row][sp.Col],
		})
		if truncated {
			warnings = append(warnings, Warning{Kind: WarnTruncatedContent, Row: sp.Row, Col: sp.Col,
				Message: "spanning cell content truncated to fit its allotted width or height"})
		}
		offset := 0
		for r := sp.Row; r < sp.Row+sp.RowSpan; r++ {
			h := heights[r]
			if offset+h > len(full) {
				h = len(full) - offset
			}
			cellLines[[2]int{r, sp.Col}] = full[offset : offset+h]
			offset += h
		}
		_ = idx
	}

	return &renderPlan{
		rows: rows, cols: cols,
		widths: widths, heights: heights,
		coverage: coverage, spans: spans,
		border:    bm,
		cellLines: cellLines,
	}, warnings, nil
}

// naturalSegmentWidth is the maximum display width of any single
// \n-separated segment of text, SGR stripped for measurement (spec.md
// §4.3 step 2).
func naturalSegmentWidth(text string) int {
	max := 0
	for _, seg := range strings.Split(text, "\n") {
		if w := ansiwidth.DisplayWidth(seg); w > max {
			max = w
		}
	}
	return max
}

func computeRowHeights(rows, cols int, coverage layout.Coverage, spans []layout.Span, data TableData,
	widths, padLeft, padRight []int, sepWidth int, wordWrap [][]bool, truncate [][]int) []int {

	heights := make([]int, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tag := coverage.At(r, c)
			switch tag.Kind {
			case layout.None:
				n := wrappedLineCount(data.Rows[r][c], widths[c]-padLeft[c]-padRight[c], wordWrap[r][c], truncate[r][c])
				if n > heights[r] {
					heights[r] = n
				}
			case layout.Owner:
				sp := spans[tag.Index]
				if sp.RowSpan == 1 {
					width := 0
					for cc := sp.Col; cc < sp.Col+sp.ColSpan; cc++ {
						width += widths[cc]
					}
					width += sepWidth * (sp.ColSpan - 1)
					n := wrappedLineCount(data.Rows[r][c], width-padLeft[sp.Col]-padRight[sp.Col+sp.ColSpan-1], wordWrap[r][c], truncate[r][c])
					if n > heights[r] {
						heights[r] = n
					}
				} else {
					width := 0
					for cc := sp.Col; cc < sp.Col+sp.ColSpan; cc++ {
						width += widths[cc]
					}
					width += sepWidth * (sp.ColSpan - 1)
					total := wrappedLineCount(data.Rows[r][c], width-padLeft[sp.Col]-padRight[sp.Col+sp.ColSpan-1], wordWrap[r][c], truncate[r][c])
					perRow := ceilDiv(total, sp.RowSpan)
					for rr := sp.Row; rr < sp.Row+sp.RowSpan; rr++ {
						if perRow > heights[rr] {
							heights[rr] = perRow
						}
					}
				}
			}
		}
		if heights[r] < 1 {
			heights[r] = 1
		}
	}
	return heights
}

func wrappedLineCount(text string, width int, wordWrap bool, truncate int) int {
	if width < 1 {
		width = 1
	}
	policy := wrap.Char
	if wordWrap {
		policy = wrap.Word
	}
	return len(wrap.Wrap(text, width, policy, truncate))
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func resolveBorder(b BorderConfig) (BorderConfig, error) {
	return b, nil
}

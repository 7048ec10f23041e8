package gridtable

import (
	"strings"

	"github.com/gridforge/gridforge/internal/border"
	"github.com/gridforge/gridforge/internal/layout"
	"github.com/gridforge/gridforge/pkg/wrap"
)

type streamState int

const (
	stateCreated streamState = iota
	stateOpen
	stateClosed
)

func (s streamState) String() string {
	switch s {
	case stateCreated:
		return "CREATED"
	case stateOpen:
		return "OPEN"
	case stateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// StreamingRenderer produces table output one row at a time without
// holding the whole table in memory (spec.md §4.7). Column widths are
// fixed the moment Begin is called and never change afterward; rows
// pushed with wider content are wrapped or truncated to fit.
//
// Row spans are not supported in streaming mode: a row-span owner's
// content can only be correctly divided once every row it spans is known,
// which contradicts emitting each row as it arrives. Column spans, which
// need only the current row, are fully supported. Use Render for tables
// that need row spans.
type StreamingRenderer struct {
	cfg      TableConfig
	border   BorderConfig
	cols     int
	widths   []int
	padLeft  []int
	padRight []int
	state    streamState
	rowIndex int
}

// NewStreamingRenderer creates a driver in the CREATED state. Call
// FinalizeWidths before Begin to size auto columns from known data, or
// rely on cfg.SeedRows / explicit ColumnConfig.Width values.
func NewStreamingRenderer(cfg TableConfig) *StreamingRenderer {
	return &StreamingRenderer{cfg: cfg, border: cfg.Border, state: stateCreated}
}

// FinalizeWidths sizes columns from data using the same sizing pass
// Render uses, with spans restricted to column-only. Calling it more than
// once, or after Begin, is an error.
func (s *StreamingRenderer) FinalizeWidths(data TableData) error {
	if s.state != stateCreated {
		return &StreamingStateError{Operation: "finalize_widths", State: s.state.String()}
	}
	if s.widths != nil {
		return &StreamingStateError{Operation: "finalize_widths", State: "CREATED with widths already finalized"}
	}
	for _, sp := range s.cfg.Spans {
		if sp.RowSpan > 1 {
			return &ConfigError{Reason: "streaming renderer does not support row spans"}
		}
	}
	cols := data.numCols()
	if cols == 0 {
		return &ShapeError{Reason: "table data has zero columns"}
	}
	s.cols = cols
	s.initColumnMeta()

	spans := make([]layout.Span, len(s.cfg.Spans))
	for i, sp := range s.cfg.Spans {
		cs := sp.ColSpan
		if cs < 1 {
			cs = 1
		}
		spans[i] = layout.Span{Row: sp.Row, Col: sp.Col, RowSpan: 1, ColSpan: cs}
	}
	coverage, err := layout.PlanSpans(data.numRows(), cols, spans)
	if err != nil {
		return &SpanError{Reason: err.Error()}
	}

	naturalWidth := make([][]int, data.numRows())
	for r, row := range data.Rows {
		naturalWidth[r] = make([]int, cols)
		for c, cell := range row {
			naturalWidth[r][c] = naturalSegmentWidth(cell)
		}
	}
	spanNaturalWidth := make([]int, len(spans))
	for i, sp := range spans {
		spanNaturalWidth[i] = naturalSegmentWidth(data.Rows[sp.Row][sp.Col])
	}
	sepWidth := (borderMetrics{Border: s.border}).bodyJoinWidth()
	explicit := make([]int, cols)
	for c := range explicit {
		explicit[c] = s.cfg.resolvedColumn(0, c).Width
	}

	s.widths = layout.SizeColumns(layout.SizingInput{
		NumCols: cols, ExplicitWidths: explicit,
		PadLeft: s.padLeft, PadRight: s.padRight,
		NaturalWidth: naturalWidth, Coverage: coverage, Spans: spans,
		SpanNaturalWidth: spanNaturalWidth, SeparatorWidth: sepWidth,
	})
	return nil
}

func (s *StreamingRenderer) initColumnMeta() {
	s.padLeft = make([]int, s.cols)
	s.padRight = make([]int, s.cols)
	for c := 0; c < s.cols; c++ {
		col := s.cfg.resolvedColumn(0, c)
		s.padLeft[c] = col.PadLeft
		s.padRight[c] = col.PadRight
	}
}

// ensureSeeded sizes columns from cfg.SeedRows when FinalizeWidths was
// never called. cols is the column count the caller inferred; Begin takes
// it from numColsHint (the first seed row, else the ColumnOverrides length).
func (s *StreamingRenderer) ensureSeeded(cols int) error {
	if s.widths != nil {
		return nil
	}
	s.cols = cols
	s.initColumnMeta()
	seed := TableData{Rows: s.cfg.SeedRows}
	if len(seed.Rows) == 0 {
		seed.Rows = []Row{make(Row, cols)}
	}
	for i, r := range seed.Rows {
		if len(r) != cols {
			return &ShapeError{Reason: "seed row length mismatch", Row: i, Want: cols, Got: len(r)}
		}
	}
	return s.FinalizeWidths(seed)
}

// Begin emits the top border and transitions CREATED -> OPEN.
func (s *StreamingRenderer) Begin() (string, error) {
	if s.state != stateCreated {
		return "", &StreamingStateError{Operation: "begin", State: s.state.String()}
	}
	if s.widths == nil {
		if err := s.ensureSeeded(s.cfg.numColsHint()); err != nil {
			return "", err
		}
	}
	s.state = stateOpen
	return (borderMetrics{Border: s.border}).Border.RenderTop(s.widths) + "\n", nil
}

// PushRow validates row's cell count, formats it, and emits its leading
// separator (suppressed for the first row after Begin, and whenever
// SingleLine is set) plus its content lines.
func (s *StreamingRenderer) PushRow(row Row) (string, error) {
	if s.state != stateOpen {
		return "", &StreamingStateError{Operation: "push_row", State: s.state.String()}
	}
	if s.widths == nil {
		if err := s.ensureSeeded(len(row)); err != nil {
			return "", err
		}
	}
	if len(row) != s.cols {
		return "", &ShapeError{Reason: "pushed row length mismatch", Row: s.rowIndex, Want: s.cols, Got: len(row)}
	}

	spans := make([]layout.Span, len(s.cfg.Spans))
	for i, sp := range s.cfg.Spans {
		cs := sp.ColSpan
		if cs < 1 {
			cs = 1
		}
		spans[i] = layout.Span{Row: 0, Col: sp.Col, RowSpan: 1, ColSpan: cs}
	}
	usedSpans := filterSpansForRow(spans, s.cfg.Spans, s.rowIndex)
	coverage, err := layout.PlanSpans(1, s.cols, usedSpans)
	if err != nil {
		return "", &SpanError{Reason: err.Error()}
	}

	bm := borderMetrics{Border: s.border}
	sepWidth := bm.bodyJoinWidth()

	height := 1
	c := 0
	for c < s.cols {
		tag := coverage.At(0, c)
		if tag.Kind == layout.Owner {
			sp := usedSpans[tag.Index]
			width := 0
			for cc := sp.Col; cc < sp.Col+sp.ColSpan; cc++ {
				width += s.widths[cc]
			}
			width += sepWidth * (sp.ColSpan - 1)
			col := s.cfg.resolvedColumn(s.rowIndex, sp.Col)
			contentWidth := width - s.padLeft[sp.Col] - s.padRight[sp.Col+sp.ColSpan-1]
			policy := wrap.Char
			if col.WordWrap {
				policy = wrap.Word
			}
			wrapped := wrap.Wrap(row[c], max1(contentWidth), policy, col.Truncate)
			if len(wrapped) > height {
				height = len(wrapped)
			}
			c += sp.ColSpan
			continue
		}
		col := s.cfg.resolvedColumn(s.rowIndex, c)
		policy := wrap.Char
		if col.WordWrap {
			policy = wrap.Word
		}
		contentWidth := s.widths[c] - s.padLeft[c] - s.padRight[c]
		wrapped := wrap.Wrap(row[c], max1(contentWidth), policy, col.Truncate)
		if len(wrapped) > height {
			height = len(wrapped)
		}
		c++
	}

	var blocks []border.Block
	c = 0
	for c < s.cols {
		tag := coverage.At(0, c)
		col := s.cfg.resolvedColumn(s.rowIndex, c)
		if tag.Kind == layout.Owner {
			sp := usedSpans[tag.Index]
			width := 0
			for cc := sp.Col; cc < sp.Col+sp.ColSpan; cc++ {
				width += s.widths[cc]
			}
			width += sepWidth * (sp.ColSpan - 1)
			formatted, _ := layout.FormatCell(row[c], layout.CellFormat{
				Width: width, Height: height,
				PadLeft: s.padLeft[sp.Col], PadRight: s.padRight[sp.Col+sp.ColSpan-1],
				HAlign: resolveSpanHAlign(s.cfg.Spans, s.rowIndex, sp.Col, col.HAlign),
				VAlign: resolveSpanVAlign(s.cfg.Spans, s.rowIndex, sp.Col, col.VAlign),
				WordWrap: col.WordWrap, Truncate: col.Truncate,
			})
			blocks = append(blocks, border.Block{Width: width, Lines: formatted})
			c += sp.ColSpan
			continue
		}
		formatted, _ := layout.FormatCell(row[c], layout.CellFormat{
			Width: s.widths[c], Height: height,
			PadLeft: s.padLeft[c], PadRight: s.padRight[c],
			HAlign: col.HAlign, VAlign: col.VAlign,
			WordWrap: col.WordWrap, Truncate: col.Truncate,
		})
		blocks = append(blocks, border.Block{Width: s.widths[c], Lines: formatted})
		c++
	}

	var sb strings.Builder
	if s.rowIndex > 0 && !s.cfg.SingleLine {
		sep := s.border
		if s.rowIndex == 1 && s.cfg.HeaderBorder != nil {
			sep = *s.cfg.HeaderBorder
		}
		sb.WriteString(sep.RenderSeparator(s.widths, nil))
		sb.WriteString("\n")
	}
	for line := 0; line < height; line++ {
		sb.WriteString(bm.Border.RenderContentRow(blocks, line))
		sb.WriteString("\n")
	}
	s.rowIndex++
	return sb.String(), nil
}

// End emits the bottom border and transitions OPEN -> CLOSED.
func (s *StreamingRenderer) End() (string, error) {
	if s.state != stateOpen {
		return "", &StreamingStateError{Operation: "end", State: s.state.String()}
	}
	s.state = stateClosed
	return (borderMetrics{Border: s.border}).Border.RenderBottom(s.widths) + "\n", nil
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func filterSpansForRow(planSpans []layout.Span, orig []SpanDescriptor, row int) []layout.Span {
	var out []layout.Span
	for i, sp := range planSpans {
		if orig[i].Row == row {
			out = append(out, sp)
		}
	}
	return out
}

func resolveSpanHAlign(spans []SpanDescriptor, row, col int, fallback HAlign) HAlign {
	for _, sp := range spans {
		if sp.Row == row && sp.Col == col && sp.HAlign != nil {
			return *sp.HAlign
		}
	}
	return fallback
}

func resolveSpanVAlign(spans []SpanDescriptor, row, col int, fallback VAlign) VAlign {
	for _, sp := range spans {
		if sp.Row == row && sp.Col == col && sp.VAlign != nil {
			return *sp.VAlign
		}
	}
	return fallback
}

func (cfg TableConfig) numColsHint() int {
	if len(cfg.SeedRows) > 0 {
		return len(cfg.SeedRows[0])
	}
	if len(cfg.ColumnOverrides) > 0 {
		return len(cfg.ColumnOverrides)
	}
	return 0
}

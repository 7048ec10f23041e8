// Package gridtable is the public entry point of the table-rendering
// engine: it wires internal/layout (column sizing, cell formatting, span
// planning) and internal/border (row emission) together behind Render and
// NewStreamingRenderer, and re-exports the primitive width/wrap utilities
// from pkg/ansiwidth and pkg/wrap.
package gridtable

import (
	"github.com/gridforge/gridforge/internal/border"
	"github.com/gridforge/gridforge/internal/layout"
)

// HAlign and VAlign are re-exported here as aliases so callers never need
// to import internal/layout directly.
type (
	HAlign = layout.HAlign
	VAlign = layout.VAlign
)

const (
	AlignLeft    = layout.AlignLeft
	AlignCenter  = layout.AlignCenter
	AlignRight   = layout.AlignRight
	AlignJustify = layout.AlignJustify

	AlignTop    = layout.AlignTop
	AlignMiddle = layout.AlignMiddle
	AlignBottom = layout.AlignBottom
)

// BorderConfig mirrors spec.md §3's sixteen named border glyphs.
type BorderConfig = border.Border

// Row is an ordered sequence of cell strings. A cell may contain SGR
// escapes and newline hard breaks; nothing else about its contents is
// interpreted.
type Row []string

// TableData is a non-empty, rectangular sequence of Rows. Use NewTableData
// to construct one with shape validation, or build one with TableBuilder.
type TableData struct {
	Rows []Row
}

// NewTableData validates that rows is non-empty and rectangular before
// wrapping it as a TableData.
func NewTableData(rows [][]string) (TableData, error) {
	if len(rows) == 0 {
		return TableData{}, &ShapeError{Reason: "table data has no rows"}
	}
	cols := len(rows[0])
	if cols == 0 {
		return TableData{}, &ShapeError{Reason: "table data has zero columns"}
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		if len(r) != cols {
			return TableData{}, &ShapeError{Reason: "row length mismatch", Row: i, Want: cols, Got: len(r)}
		}
		out[i] = Row(append([]string(nil), r...))
	}
	return TableData{Rows: out}, nil
}

func (t TableData) numRows() int { return len(t.Rows) }
func (t TableData) numCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// ColumnConfig is the per-column styling surface described in spec.md §3.
// The zero value is NOT the engine's default; call DefaultColumnConfig or
// go through TableConfig's default-resolution path.
type ColumnConfig struct {
	Width             int // 0 means auto
	WordWrap          bool
	Truncate          int // 0 means no cap
	HAlign            HAlign
	VAlign            VAlign
	PadLeft, PadRight int
}

// DefaultColumnConfig returns the spec-mandated defaults: no explicit
// width, character wrap, no truncation, left/top alignment, 1/1 padding.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{PadLeft: 1, PadRight: 1, HAlign: AlignLeft, VAlign: AlignTop}
}

// SpanDescriptor is one {row, col, row_span, col_span} region together
// with its optional alignment overrides (spec.md §3).
type SpanDescriptor struct {
	Row, Col, RowSpan, ColSpan int
	HAlign                     *HAlign
	VAlign                     *VAlign
}

// Warning is a non-fatal condition surfaced alongside a successful render
// (spec.md §7): a non-empty covered cell under strict mode, or content
// discarded by truncation.
type Warning struct {
	Kind    string
	Message string
	Row     int
	Col     int
}

const (
	WarnNonEmptyCoveredCell = "non_empty_covered_cell"
	WarnTruncatedContent    = "truncated_content"
)

// TableConfig is the complete style configuration for one render
// invocation (spec.md §3).
type TableConfig struct {
	Border          BorderConfig
	DefaultColumn   ColumnConfig
	ColumnOverrides []*ColumnConfig // may be shorter than numCols; a missing or nil entry means "use DefaultColumn"
	SingleLine      bool
	HeaderOverride  *ColumnConfig
	HeaderBorder    *BorderConfig // substituted for the separator under row 0 only
	Spans           []SpanDescriptor
	Strict          bool // report non-empty covered cells as warnings instead of dropping silently

	// SeedRows, when set, lets a StreamingRenderer size auto columns
	// before any row is pushed (spec.md §4.7's "header + any already-seen
	// data"). Render ignores it; it always sizes from the full TableData.
	SeedRows []Row
}

// resolvedColumn returns the effective ColumnConfig for column c, applying
// ColumnOverrides and, for row 0, HeaderOverride, over DefaultColumn.
func (cfg TableConfig) resolvedColumn(row, col int) ColumnConfig {
	out := cfg.DefaultColumn
	if col < len(cfg.ColumnOverrides) && cfg.ColumnOverrides[col] != nil {
		out = mergeColumnConfig(out, *cfg.ColumnOverrides[col])
	}
	if row == 0 && cfg.HeaderOverride != nil {
		out = mergeColumnConfig(out, *cfg.HeaderOverride)
	}
	return out
}

// mergeColumnConfig overlays the non-zero-value fields of override onto
// base. WordWrap, padding and alignment are always taken from override since their
// zero values (false, 0, AlignLeft/AlignTop) are themselves meaningful defaults
// that a caller may intentionally choose; callers constructing overrides
// are expected to start from DefaultColumnConfig.
func mergeColumnConfig(base, override ColumnConfig) ColumnConfig {
	out := base
	if override.Width != 0 {
		out.Width = override.Width
	}
	out.WordWrap = override.WordWrap
	if override.Truncate != 0 {
		out.Truncate = override.Truncate
	}
	out.HAlign = override.HAlign
	out.VAlign = override.VAlign
	out.PadLeft = override.PadLeft
	out.PadRight = override.PadRight
	return out
}

func (cfg TableConfig) separatorWidth() int {
	return cfg.effectiveBorder().bodyJoinWidth()
}

func (cfg TableConfig) effectiveBorder() borderMetrics {
	return borderMetrics{Border: cfg.Border}
}

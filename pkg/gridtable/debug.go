package gridtable

import "github.com/gridforge/gridforge/internal/layout"

// DebugCell summarizes one grid coordinate's resolved layout, independent
// of border rendering.
type DebugCell struct {
	Row, Col int
	Kind     string // "none", "owner", or "covered"
	SpanRow  int    // owner row, for covered/owner cells; -1 for "none"
	SpanCol  int
}

// DebugLayout is a read-only snapshot of the layout decisions Render
// would make for data/cfg, useful for diagnosing unexpected wrapping or
// span geometry without re-deriving the whole rendered string.
type DebugLayout struct {
	ColumnWidths []int
	RowHeights   []int
	Cells        []DebugCell
}

// Debug runs the same planning stage Render does and returns its
// intermediate geometry instead of the rendered string.
func Debug(data TableData, cfg TableConfig) (*DebugLayout, error) {
	plan, _, err := buildPlan(data, cfg)
	if err != nil {
		return nil, err
	}
	out := &DebugLayout{
		ColumnWidths: append([]int(nil), plan.widths...),
		RowHeights:   append([]int(nil), plan.heights...),
	}
	for r := 0; r < plan.rows; r++ {
		for c := 0; c < plan.cols; c++ {
			tag := plan.coverage.At(r, c)
			dc := DebugCell{Row: r, Col: c, SpanRow: -1, SpanCol: -1}
			switch tag.Kind {
			case layout.Owner:
				dc.Kind = "owner"
				dc.SpanRow, dc.SpanCol = plan.spans[tag.Index].Row, plan.spans[tag.Index].Col
			case layout.Covered:
				dc.Kind = "covered"
				dc.SpanRow, dc.SpanCol = plan.spans[tag.Index].Row, plan.spans[tag.Index].Col
			default:
				dc.Kind = "none"
			}
			out.Cells = append(out.Cells, dc)
		}
	}
	return out, nil
}

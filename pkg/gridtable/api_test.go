package gridtable

import "testing"

func TestDisplayWidthIgnoresSGR(t *testing.T) {
	if w := DisplayWidth("\x1b[31mhi\x1b[0m"); w != 2 {
		t.Errorf("DisplayWidth = %d, want 2", w)
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	lines := Wrap("a long sentence that needs wrapping", 10, WrapWord)
	for _, l := range lines {
		if DisplayWidth(l) > 10 {
			t.Errorf("line %q exceeds width 10", l)
		}
	}
}

func TestStripSGR(t *testing.T) {
	if got := StripSGR("\x1b[31mred\x1b[0m"); got != "red" {
		t.Errorf("StripSGR = %q, want %q", got, "red")
	}
}

func TestTableBuilderBuild(t *testing.T) {
	out, _, err := NewTableBuilder().
		Row("Name", "Age").
		Row("John", "30").
		Border("ramac").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if out == "" {
		t.Error("expected non-empty output")
	}
}

func TestDebugLayoutReportsSpanOwnership(t *testing.T) {
	data := mustData(t, [][]string{{"a", "b"}, {"c", "d"}})
	cfg := defaultConfig(t)
	cfg.Spans = []SpanDescriptor{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}}
	dbg, err := Debug(data, cfg)
	if err != nil {
		t.Fatalf("Debug: %v", err)
	}
	if len(dbg.ColumnWidths) != 2 || len(dbg.RowHeights) != 2 {
		t.Fatalf("unexpected geometry: %+v", dbg)
	}
	var ownerFound, coveredFound bool
	for _, c := range dbg.Cells {
		if c.Row == 0 && c.Col == 0 && c.Kind == "owner" {
			ownerFound = true
		}
		if c.Row == 0 && c.Col == 1 && c.Kind == "covered" {
			coveredFound = true
		}
	}
	if !ownerFound || !coveredFound {
		t.Errorf("expected owner(0,0) and covered(0,1), got %+v", dbg.Cells)
	}
}

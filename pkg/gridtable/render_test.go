package gridtable

import (
	"strings"
	"testing"

	"github.com/gridforge/gridforge/pkg/ansiwidth"
)

func mustData(t *testing.T, rows [][]string) TableData {
	t.Helper()
	d, err := NewTableData(rows)
	if err != nil {
		t.Fatalf("NewTableData: %v", err)
	}
	return d
}

func defaultConfig(t *testing.T) TableConfig {
	t.Helper()
	b, err := BorderPreset("honeywell")
	if err != nil {
		t.Fatalf("BorderPreset: %v", err)
	}
	return TableConfig{Border: b, DefaultColumn: DefaultColumnConfig()}
}

// invariant 1: every content/border line has identical display width.
func TestRenderGridRectangularity(t *testing.T) {
	data := mustData(t, [][]string{
		{"Name", "Age", "City"},
		{"John", "30", "New York"},
		{"Jane", "25", "London"},
	})
	out, _, err := Render(data, defaultConfig(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("no output lines")
	}
	want := ansiwidth.DisplayWidth(lines[0])
	for i, l := range lines {
		if w := ansiwidth.DisplayWidth(l); w != want {
			t.Errorf("line %d width = %d, want %d (%q)", i, w, want, l)
		}
	}
}

// invariant 2: stripping SGR from the render still contains each cell's
// stripped text as a substring.
func TestRenderSGRPreservation(t *testing.T) {
	data := mustData(t, [][]string{{"\x1b[31mred\x1b[0m", "\x1b[32mgreen\x1b[0m"}})
	out, _, err := Render(data, defaultConfig(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	stripped := ansiwidth.Strip(out)
	if !strings.Contains(stripped, "red") || !strings.Contains(stripped, "green") {
		t.Errorf("stripped output missing cell text: %q", stripped)
	}
	if !strings.Contains(out, "\x1b[31m") || !strings.Contains(out, "\x1b[32m") {
		t.Errorf("rendered output lost SGR escapes: %q", out)
	}
}

// invariant 4: rendering twice yields identical output.
func TestRenderIdempotent(t *testing.T) {
	data := mustData(t, [][]string{{"a", "b"}, {"c", "d"}})
	cfg := defaultConfig(t)
	out1, _, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out2, _, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out1 != out2 {
		t.Errorf("render not idempotent:\n%q\nvs\n%q", out1, out2)
	}
}

// invariant 5: a column-span owner's visual lines have no body-join
// between its edges, so its row shows exactly col_span-1 fewer body-join
// characters than an unspanned row.
func TestRenderColSpanGeometry(t *testing.T) {
	data := mustData(t, [][]string{
		{"spanning header", "ignored"},
		{"a", "b"},
	})
	cfg := defaultConfig(t)
	cfg.Spans = []SpanDescriptor{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}}
	out, _, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// line index 1 is the header content row (index 0 is the top border);
	// line index 3 is the unspanned data row. BodyLeft/BodyJoin/BodyRight
	// all happen to be the same glyph ("│") in the honeywell preset, so a
	// spanned row (one block: two edge occurrences) has exactly one fewer
	// occurrence than an unspanned row (two blocks: edges + one interior
	// join).
	headerLine := lines[1]
	dataLine := lines[3]
	headerCount := strings.Count(headerLine, cfg.Border.BodyJoin)
	dataCount := strings.Count(dataLine, cfg.Border.BodyJoin)
	if headerCount != dataCount-1 {
		t.Errorf("spanned row body-join count = %d, unspanned = %d; want spanned = unspanned-1", headerCount, dataCount)
	}
}

// scenario (f): a 2x2 grid with a column span on row 0 has no interior
// vertical border on that row only.
func TestRenderColSpanSuppressesOnlyItsRow(t *testing.T) {
	data := mustData(t, [][]string{{"x", "y"}, {"a", "b"}})
	cfg := defaultConfig(t)
	cfg.Spans = []SpanDescriptor{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}}
	out, _, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	dataRowLine := lines[len(lines)-2] // last content row, before bottom border
	headerLine := lines[1]
	if strings.Count(dataRowLine, cfg.Border.BodyJoin) <= strings.Count(headerLine, cfg.Border.BodyJoin) {
		t.Errorf("non-spanned row should have more body-join occurrences than the spanned header row; data=%q header=%q", dataRowLine, headerLine)
	}
}

func TestRenderRejectsUnevenRows(t *testing.T) {
	_, err := NewTableData([][]string{{"a", "b"}, {"c"}})
	if err == nil {
		t.Fatal("expected ShapeError for uneven rows")
	}
	if _, ok := err.(*ShapeError); !ok {
		t.Errorf("got %T, want *ShapeError", err)
	}
}

func TestRenderSingleLineSuppressesSeparators(t *testing.T) {
	data := mustData(t, [][]string{{"a"}, {"b"}, {"c"}})
	cfg := defaultConfig(t)
	cfg.SingleLine = true
	out, _, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, cfg.Border.LeftJoin) {
		t.Errorf("single-line render should have no separators, got %q", out)
	}
}

func TestRenderWideGlyphWidth(t *testing.T) {
	data := mustData(t, [][]string{{"你好", "こんにちは", "👋"}})
	out, _, err := Render(data, defaultConfig(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, l := range lines {
		if w := ansiwidth.DisplayWidth(l); w != ansiwidth.DisplayWidth(lines[0]) {
			t.Errorf("line %d width %d != line 0 width %d", i, w, ansiwidth.DisplayWidth(lines[0]))
		}
	}
}

func TestRenderStrictWarnsOnNonEmptyCoveredCell(t *testing.T) {
	data := mustData(t, [][]string{
		{"owner", "should be empty"},
		{"a", "b"},
	})
	cfg := defaultConfig(t)
	cfg.Strict = true
	cfg.Spans = []SpanDescriptor{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}}
	_, warnings, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarnNonEmptyCoveredCell {
		t.Errorf("warnings = %+v, want one WarnNonEmptyCoveredCell", warnings)
	}
}

func TestRenderWarnsOnTruncatedContent(t *testing.T) {
	data := mustData(t, [][]string{{"a long cell value that needs several lines to show in full"}})
	cfg := defaultConfig(t)
	col := DefaultColumnConfig()
	col.Width = 8
	col.Truncate = 2
	cfg.DefaultColumn = col
	_, warnings, err := Render(data, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarnTruncatedContent {
		t.Errorf("warnings = %+v, want one WarnTruncatedContent", warnings)
	}
}

func TestBorderPresetUnknownName(t *testing.T) {
	if _, err := BorderPreset("nonexistent"); err == nil {
		t.Fatal("expected ConfigError for unknown preset")
	}
}

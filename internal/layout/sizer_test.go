package layout

import (
	"reflect"
	"testing"
)

func TestSizeColumnsExplicitWidth(t *testing.T) {
	cov, _ := PlanSpans(1, 2, nil)
	widths := SizeColumns(SizingInput{
		NumCols:        2,
		ExplicitWidths: []int{10, 0},
		PadLeft:        []int{1, 1},
		PadRight:       []int{1, 1},
		NaturalWidth:   [][]int{{3, 5}},
		Coverage:       cov,
	})
	if widths[0] != 10 {
		t.Errorf("explicit width: got %d, want 10", widths[0])
	}
	if widths[1] != 7 { // 5 + pad 1 + 1
		t.Errorf("auto width: got %d, want 7", widths[1])
	}
}

func TestSizeColumnsAutoTakesMaxAcrossRows(t *testing.T) {
	cov, _ := PlanSpans(3, 1, nil)
	widths := SizeColumns(SizingInput{
		NumCols:        1,
		ExplicitWidths: []int{0},
		PadLeft:        []int{0},
		PadRight:       []int{0},
		NaturalWidth:   [][]int{{3}, {9}, {5}},
		Coverage:       cov,
	})
	if got := []int{widths[0]}; !reflect.DeepEqual(got, []int{9}) {
		t.Errorf("got %v, want [9]", got)
	}
}

func TestSizeColumnsSpanEnlargesColumns(t *testing.T) {
	spans := []Span{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}}
	cov, err := PlanSpans(1, 2, spans)
	if err != nil {
		t.Fatalf("PlanSpans: %v", err)
	}
	widths := SizeColumns(SizingInput{
		NumCols:          2,
		ExplicitWidths:   []int{0, 0},
		PadLeft:          []int{0, 0},
		PadRight:         []int{0, 0},
		NaturalWidth:     [][]int{{0, 0}},
		Coverage:         cov,
		Spans:            spans,
		SpanNaturalWidth: []int{21},
		SeparatorWidth:   1,
	})
	total := widths[0] + widths[1] + 1
	if total < 21 {
		t.Errorf("spanned total width %d < natural width 21", total)
	}
	if widths[0] != widths[1]+1 && widths[0] != widths[1] {
		// deficit of 20 over 2 columns: 10 each, remainder 0 to leftmost
		t.Errorf("expected even split with any remainder on column 0, got %v", widths)
	}
}

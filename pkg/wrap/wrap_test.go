package wrap

import (
	"strings"
	"testing"

	"github.com/gridforge/gridforge/pkg/ansiwidth"
)

func TestWrapEmptyCell(t *testing.T) {
	lines := Wrap("", 10, Word, 0)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("Wrap(\"\") = %v, want single empty line", lines)
	}
}

func TestWrapRespectsHardNewlines(t *testing.T) {
	lines := Wrap("one\ntwo", 10, Word, 0)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("Wrap = %v, want [one two]", lines)
	}
}

func TestWrapWordPolicyBreaksOnWhitespace(t *testing.T) {
	lines := Wrap("aaa bbb ccc", 4, Word, 0)
	for _, l := range lines {
		if ansiwidth.DisplayWidth(strings.TrimRight(l, " ")) > 4 {
			t.Errorf("line %q exceeds width 4", l)
		}
	}
	if len(lines) < 2 {
		t.Errorf("expected multiple lines, got %v", lines)
	}
}

func TestWrapCharPolicySplitsMidWord(t *testing.T) {
	lines := Wrap("abcdefgh", 3, Char, 0)
	for _, l := range lines {
		if ansiwidth.DisplayWidth(l) > 3 {
			t.Errorf("line %q exceeds width 3", l)
		}
	}
	joined := strings.Join(lines, "")
	if joined != "abcdefgh" {
		t.Errorf("joined = %q, want abcdefgh", joined)
	}
}

func TestWrapLongAtomFallsBackToCharSplit(t *testing.T) {
	lines := Wrap("supercalifragilistic short", 6, Word, 0)
	for _, l := range lines {
		if ansiwidth.DisplayWidth(l) > 6 {
			t.Errorf("line %q exceeds width 6", l)
		}
	}
}

// invariant 3: every emitted line closes any SGR state it opened.
func TestWrapClosesSGRAtLineEnd(t *testing.T) {
	lines := Wrap("\x1b[31mredredredred\x1b[0m", 4, Char, 0)
	for i, l := range lines {
		opens := strings.Count(l, "\x1b[31m")
		closes := strings.Count(l, "\x1b[0m")
		if opens > 0 && closes == 0 {
			t.Errorf("line %d %q opens SGR without closing it", i, l)
		}
	}
}

func TestWrapReopensSGROnNextLine(t *testing.T) {
	lines := Wrap("\x1b[31mlongredtext\x1b[0m", 4, Char, 0)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %v", lines)
	}
	for i := 1; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[31m") {
			t.Errorf("line %d should reopen the SGR state: %q", i, lines[i])
		}
	}
}

func TestWrapTruncatesWithEllipsis(t *testing.T) {
	lines := Wrap("one\ntwo\nthree\nfour", 5, Char, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], Ellipsis) {
		t.Errorf("last kept line should carry the ellipsis marker: %q", lines[1])
	}
}

// invariant 3, SGR-only cell with no explicit reset: the opener must
// still be closed (spec.md §4.2's "opener-closer pair" edge case).
func TestWrapSGROnlyCellWithoutResetIsClosed(t *testing.T) {
	lines := Wrap("\x1b[1m", 10, Word, 0)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "\x1b[1m") {
		t.Errorf("expected the opener to survive, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], ansiwidth.Reset) {
		t.Errorf("expected a trailing reset to close the open SGR state, got %q", lines[0])
	}
}

func TestWrapSGROnlyCellIsSingleEmptyLine(t *testing.T) {
	lines := Wrap("\x1b[31m\x1b[0m", 10, Word, 0)
	if len(lines) != 1 {
		t.Errorf("got %d lines, want 1", len(lines))
	}
	if ansiwidth.Strip(lines[0]) != "" {
		t.Errorf("expected empty visible text, got %q", ansiwidth.Strip(lines[0]))
	}
}

func TestWrapDetailedMarksParagraphBoundaries(t *testing.T) {
	res := WrapDetailed("hi there\nfoo", 4, Word, 0)
	if len(res.Lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(res.Lines), res.Lines)
	}
	// "hi there" wraps to two lines under width 4; only the second is its
	// paragraph's last line. "foo" is a single line, also paragraph-final.
	want := []bool{false, true, true}
	for i, w := range want {
		if res.ParagraphEnd[i] != w {
			t.Errorf("ParagraphEnd[%d] = %v, want %v (lines=%v)", i, res.ParagraphEnd[i], w, res.Lines)
		}
	}
	if res.Truncated {
		t.Error("expected Truncated = false")
	}
}

func TestWrapDetailedTruncatedFlag(t *testing.T) {
	res := WrapDetailed("one\ntwo\nthree", 5, Char, 2)
	if !res.Truncated {
		t.Error("expected Truncated = true")
	}
	if len(res.Lines) != 2 || !res.ParagraphEnd[1] {
		t.Errorf("last kept line should be marked paragraph-final, got lines=%v paragraphEnd=%v", res.Lines, res.ParagraphEnd)
	}
}

func TestWrapWhitespaceOnlyWiderThanColumn(t *testing.T) {
	lines := Wrap("          ", 4, Word, 0)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if ansiwidth.DisplayWidth(lines[0]) > 4 {
		t.Errorf("line %q exceeds width 4", lines[0])
	}
}

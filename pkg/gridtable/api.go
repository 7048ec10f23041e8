package gridtable

import (
	"github.com/gridforge/gridforge/pkg/ansiwidth"
	"github.com/gridforge/gridforge/pkg/wrap"
)

// WrapPolicy selects the wrapper's breaking strategy.
type WrapPolicy = wrap.Policy

const (
	WrapWord WrapPolicy = wrap.Word
	WrapChar WrapPolicy = wrap.Char
)

// DisplayWidth returns the SGR-aware display width of s (spec.md §4.1,
// §6).
func DisplayWidth(s string) int { return ansiwidth.DisplayWidth(s) }

// Wrap breaks s into lines of at most width display cells each, per
// policy, with no truncation cap (spec.md §6).
func Wrap(s string, width int, policy WrapPolicy) []string {
	return wrap.Wrap(s, width, policy, 0)
}

// StripSGR removes every well-formed SGR escape sequence from s.
func StripSGR(s string) string { return ansiwidth.Strip(s) }

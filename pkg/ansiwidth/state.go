package ansiwidth

import "strings"

// State tracks which SGR attributes are active at a point in a string. It
// is the "small explicit value" the design notes call for instead of a
// hidden global: one bool field per boolean attribute,
// plus the raw parameter text for the active foreground/background color
// (since colors can be simple (30-37/90-97), extended 256-color
// (38;5;N), or truecolor (38;2;R;G;B), carrying the raw text is simpler
// and lossless compared to decoding into a structured color value).
type State struct {
	Bold, Dim, Italic, Underline, Blink, Reverse, Strikethrough bool
	FG, BG                                                      string // raw param text, e.g. "31" or "38;5;208"; "" = default
}

// IsOpen reports whether any attribute in the state is non-default.
func (s State) IsOpen() bool {
	return s.Bold || s.Dim || s.Italic || s.Underline || s.Blink || s.Reverse ||
		s.Strikethrough || s.FG != "" || s.BG != ""
}

// Apply updates the state according to one SGR escape's parameter list,
// per the subset recognised in spec.md §6. Unrecognised codes are no-ops:
// they still consumed zero width (the caller already skipped the escape
// bytes) but don't change tracked state.
func (s *State) Apply(params []string) {
	for i := 0; i < len(params); i++ {
		p := params[i]
		if p == "" {
			p = "0"
		}
		switch p {
		case "0":
			*s = State{}
		case "1":
			s.Bold = true
		case "2":
			s.Dim = true
		case "3":
			s.Italic = true
		case "4":
			s.Underline = true
		case "5":
			s.Blink = true
		case "7":
			s.Reverse = true
		case "9":
			s.Strikethrough = true
		case "21":
			s.Bold = false
		case "22":
			s.Bold, s.Dim = false, false
		case "23":
			s.Italic = false
		case "24":
			s.Underline = false
		case "25":
			s.Blink = false
		case "27":
			s.Reverse = false
		case "29":
			s.Strikethrough = false
		case "39":
			s.FG = ""
		case "49":
			s.BG = ""
		case "38", "48":
			consumed, spec := parseExtendedColor(params[i:])
			if spec == "" {
				continue
			}
			if p == "38" {
				s.FG = spec
			} else {
				s.BG = spec
			}
			i += consumed - 1
		default:
			if isSimpleForeground(p) {
				s.FG = p
			} else if isSimpleBackground(p) {
				s.BG = p
			}
			// anything else: recognised-but-inert, or genuinely unknown —
			// either way it is zero-width and does not change state.
		}
	}
}

func isSimpleForeground(p string) bool {
	return inRange(p, 30, 37) || inRange(p, 90, 97)
}

func isSimpleBackground(p string) bool {
	return inRange(p, 40, 47) || inRange(p, 100, 107)
}

func inRange(p string, lo, hi int) bool {
	n := 0
	for _, c := range p {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n >= lo && n <= hi
}

// parseExtendedColor parses "38;5;N" or "38;2;R;G;B" (and the 48-prefixed
// background equivalents) starting at params[0] ("38" or "48"). It returns
// how many tokens were consumed and the raw parameter text to store. For a
// malformed sequence spec is ""; Apply then ignores consumed and skips
// only the introducer token.
func parseExtendedColor(params []string) (consumed int, spec string) {
	if len(params) < 2 {
		return 1, ""
	}
	switch params[1] {
	case "5":
		if len(params) < 3 {
			return 2, ""
		}
		return 3, strings.Join(params[0:3], ";")
	case "2":
		if len(params) < 5 {
			return 2, ""
		}
		return 5, strings.Join(params[0:5], ";")
	default:
		return 1, ""
	}
}

// OpeningSequence renders the escape sequence that, applied to a fresh
// state, reconstructs s. Returns "" if s has no active attributes.
func (s State) OpeningSequence() string {
	if !s.IsOpen() {
		return ""
	}
	var parts []string
	if s.Bold {
		parts = append(parts, "1")
	}
	if s.Dim {
		parts = append(parts, "2")
	}
	if s.Italic {
		parts = append(parts, "3")
	}
	if s.Underline {
		parts = append(parts, "4")
	}
	if s.Blink {
		parts = append(parts, "5")
	}
	if s.Reverse {
		parts = append(parts, "7")
	}
	if s.Strikethrough {
		parts = append(parts, "9")
	}
	if s.FG != "" {
		parts = append(parts, s.FG)
	}
	if s.BG != "" {
		parts = append(parts, s.BG)
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// Reset is the canonical "close any open state" sequence.
const Reset = "\x1b[0m"

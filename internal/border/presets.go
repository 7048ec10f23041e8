package border

// Honeywell is the default single-line box-drawing preset, grounded on the
// panel borders drawn by the teacher's internal/ui package.
var Honeywell = Border{
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	Top: "─", Bottom: "─", BodyLeft: "│", BodyRight: "│",
	TopJoin: "┬", BottomJoin: "┴", LeftJoin: "├", RightJoin: "┤",
	CrossJoin: "┼", JoinBody: "─", BodyJoin: "│",
}

// Norc is the double-line preset.
var Norc = Border{
	TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
	Top: "═", Bottom: "═", BodyLeft: "║", BodyRight: "║",
	TopJoin: "╦", BottomJoin: "╩", LeftJoin: "╠", RightJoin: "╣",
	CrossJoin: "╬", JoinBody: "═", BodyJoin: "║",
}

// Ramac is the plain-ASCII preset for terminals without box-drawing glyph
// support.
var Ramac = Border{
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	Top: "-", Bottom: "-", BodyLeft: "|", BodyRight: "|",
	TopJoin: "+", BottomJoin: "+", LeftJoin: "+", RightJoin: "+",
	CrossJoin: "+", JoinBody: "-", BodyJoin: "|",
}

// Void renders no border glyphs at all: columns are separated by a single
// space and there is no outer frame.
var Void = Border{BodyJoin: " "}

// Presets maps the four named presets to their Border values.
var Presets = map[string]Border{
	"honeywell": Honeywell,
	"norc":      Norc,
	"ramac":     Ramac,
	"void":      Void,
}

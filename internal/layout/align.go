package layout

// HAlign is horizontal alignment for a cell's content within its column.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// VAlign is vertical alignment for a cell's wrapped lines within its row.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

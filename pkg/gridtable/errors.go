package gridtable

import "fmt"

// ShapeError reports a malformed TableData: uneven row lengths, empty
// data, or zero columns (spec.md §7).
type ShapeError struct {
	Reason   string
	Row      int
	Want, Got int
}

func (e *ShapeError) Kind() string { return "ShapeError" }

func (e *ShapeError) Error() string {
	if e.Want != 0 || e.Got != 0 {
		return fmt.Sprintf("shape error: %s (row %d: want %d cells, got %d)", e.Reason, e.Row, e.Want, e.Got)
	}
	return fmt.Sprintf("shape error: %s", e.Reason)
}

// ConfigError reports an invalid TableConfig: unknown border preset,
// non-positive width, or padding/truncation that leaves no content room.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Kind() string  { return "ConfigError" }
func (e *ConfigError) Error() string { return fmt.Sprintf("config error: %s", e.Reason) }

// SpanError reports an invalid SpanDescriptor: overlap, out-of-bounds
// geometry, or a span whose footprint disagrees with the grid.
type SpanError struct {
	Reason string
	Index  int
}

func (e *SpanError) Kind() string { return "SpanError" }
func (e *SpanError) Error() string {
	return fmt.Sprintf("span error: span %d: %s", e.Index, e.Reason)
}

// StreamingStateError reports a StreamingRenderer method called in the
// wrong lifecycle state (spec.md §4.7).
type StreamingStateError struct {
	Operation string
	State     string
}

func (e *StreamingStateError) Kind() string { return "StreamingStateError" }
func (e *StreamingStateError) Error() string {
	return fmt.Sprintf("streaming state error: %s called while %s", e.Operation, e.State)
}

// InternalError indicates an invariant violation that should not occur
// for any valid input; its presence indicates a bug in the engine itself.
type InternalError struct {
	Reason string
}

func (e *InternalError) Kind() string  { return "InternalError" }
func (e *InternalError) Error() string { return fmt.Sprintf("internal error: %s", e.Reason) }

package gridtable

// TableBuilder offers a fluent alternative to constructing TableData and
// TableConfig by hand. It is a convenience layer over Render; nothing it
// does cannot be done by calling Render directly.
type TableBuilder struct {
	rows     [][]string
	cfg      TableConfig
	buildErr error
}

// NewTableBuilder starts a builder with the engine's default config.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{cfg: TableConfig{
		Border:        border_honeywell(),
		DefaultColumn: DefaultColumnConfig(),
	}}
}

func border_honeywell() BorderConfig {
	b, _ := BorderPreset("honeywell")
	return b
}

// Row appends one row of cell strings.
func (b *TableBuilder) Row(cells ...string) *TableBuilder {
	b.rows = append(b.rows, append([]string(nil), cells...))
	return b
}

// Border sets the border by preset name; an unknown name is recorded and
// surfaced when Build is called.
func (b *TableBuilder) Border(name string) *TableBuilder {
	preset, err := BorderPreset(name)
	if err != nil {
		b.buildErr = err
		return b
	}
	b.cfg.Border = preset
	return b
}

// BorderConfig sets an explicit border value.
func (b *TableBuilder) BorderConfig(cfg BorderConfig) *TableBuilder {
	b.cfg.Border = cfg
	return b
}

// Column sets the override for column index c.
func (b *TableBuilder) Column(c int, cfg ColumnConfig) *TableBuilder {
	for len(b.cfg.ColumnOverrides) <= c {
		b.cfg.ColumnOverrides = append(b.cfg.ColumnOverrides, nil)
	}
	b.cfg.ColumnOverrides[c] = &cfg
	return b
}

// Header sets the header-row override.
func (b *TableBuilder) Header(cfg ColumnConfig) *TableBuilder {
	b.cfg.HeaderOverride = &cfg
	return b
}

// Span appends a span descriptor.
func (b *TableBuilder) Span(sd SpanDescriptor) *TableBuilder {
	b.cfg.Spans = append(b.cfg.Spans, sd)
	return b
}

// SingleLine suppresses interior row separators.
func (b *TableBuilder) SingleLine() *TableBuilder {
	b.cfg.SingleLine = true
	return b
}

// Strict enables non-empty-covered-cell warnings.
func (b *TableBuilder) Strict() *TableBuilder {
	b.cfg.Strict = true
	return b
}

// Build validates the accumulated rows and config and renders them.
func (b *TableBuilder) Build() (string, []Warning, error) {
	if b.buildErr != nil {
		return "", nil, b.buildErr
	}
	data, err := NewTableData(b.rows)
	if err != nil {
		return "", nil, err
	}
	return Render(data, b.cfg)
}

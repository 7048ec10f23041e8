package gridtable

import "github.com/gridforge/gridforge/internal/border"

// BorderPreset looks up one of the engine's four named border presets:
// honeywell (single-line box), norc (double-line box), ramac (ASCII
// + - |), or void (all glyphs empty).
func BorderPreset(name string) (BorderConfig, error) {
	b, ok := border.Presets[name]
	if !ok {
		return BorderConfig{}, &ConfigError{Reason: "unknown border preset " + name}
	}
	return b, nil
}

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridforge/gridforge/pkg/gridtable"
)

var configFile string

// fileConfig is the on-disk shape of a --config YAML file: a border
// preset name plus default column styling, merged onto the CLI's
// flag-derived TableConfig.
type fileConfig struct {
	Border     string `yaml:"border"`
	WordWrap   bool   `yaml:"word_wrap"`
	Truncate   int    `yaml:"truncate"`
	PadLeft    int    `yaml:"pad_left"`
	PadRight   int    `yaml:"pad_right"`
	SingleLine bool   `yaml:"single_line"`
	Strict     bool   `yaml:"strict"`
}

// loadFileConfig reads and parses a YAML config file, then applies it
// onto a copy of base.
func loadFileConfig(path string, base gridtable.TableConfig) (gridtable.TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("decode config file: %w", err)
	}

	out := base
	if fc.Border != "" {
		b, err := gridtable.BorderPreset(fc.Border)
		if err != nil {
			return base, err
		}
		out.Border = b
	}
	out.DefaultColumn.WordWrap = fc.WordWrap
	if fc.Truncate != 0 {
		out.DefaultColumn.Truncate = fc.Truncate
	}
	if fc.PadLeft != 0 {
		out.DefaultColumn.PadLeft = fc.PadLeft
	}
	if fc.PadRight != 0 {
		out.DefaultColumn.PadRight = fc.PadRight
	}
	out.SingleLine = out.SingleLine || fc.SingleLine
	out.Strict = out.Strict || fc.Strict
	return out, nil
}

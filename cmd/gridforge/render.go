package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridforge/gridforge/pkg/gridtable"
	"github.com/gridforge/gridforge/pkg/logger"
	"github.com/gridforge/gridforge/pkg/settings"
)

var (
	inputFormat string
	borderName  string
	widthsFlag  string
	singleLine  bool
	strictMode  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render rectangular data from stdin (or a file) as a table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&inputFormat, "format", "json", "input format: json|csv")
	renderCmd.Flags().StringVar(&borderName, "border", "honeywell", "border preset: honeywell|norc|ramac|void")
	renderCmd.Flags().StringVar(&widthsFlag, "widths", "", "comma-separated explicit column widths, e.g. 10,20,10")
	renderCmd.Flags().BoolVar(&singleLine, "single-line", false, "suppress interior row separators")
	renderCmd.Flags().BoolVar(&strictMode, "strict", false, "warn on non-empty covered cells")
	renderCmd.Flags().StringVar(&configFile, "config", "", "path to a YAML file overriding border/column defaults")
}

func runRender(cmd *cobra.Command, args []string) error {
	lgr := logger.FromContext(rootCtx)

	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return inputParseError(fmt.Errorf("open input: %w", err))
		}
		defer f.Close()
		r = f
	}

	rows, err := parseInput(r, inputFormat)
	if err != nil {
		return inputParseError(err)
	}

	data, err := gridtable.NewTableData(rows)
	if err != nil {
		return configFailure(err)
	}

	border, err := gridtable.BorderPreset(borderName)
	if err != nil {
		return configFailure(err)
	}

	cfg := gridtable.TableConfig{
		Border:        border,
		DefaultColumn: gridtable.DefaultColumnConfig(),
		SingleLine:    singleLine,
		Strict:        strictMode,
	}
	if configFile != "" {
		cfg, err = loadFileConfig(configFile, cfg)
		if err != nil {
			return configFailure(err)
		}
	}
	if widthsFlag != "" {
		widths, err := parseWidths(widthsFlag, data)
		if err != nil {
			return configFailure(err)
		}
		cfg.ColumnOverrides = widths
	}

	out, warnings, err := gridtable.Render(data, cfg)
	if err != nil {
		return renderFailure(err)
	}
	if run, ok := settings.FromContext(rootCtx); !ok || !run.Quiet {
		for _, w := range warnings {
			lgr.Info("render warning", "kind", w.Kind, "row", w.Row, "col", w.Col, "message", w.Message)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func parseInput(r io.Reader, format string) ([][]string, error) {
	switch format {
	case "json":
		var rows [][]string
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return rows, nil
	case "csv":
		reader := csv.NewReader(r)
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unknown --format %q (expected json or csv)", format)
	}
}

func parseWidths(flag string, data gridtable.TableData) ([]*gridtable.ColumnConfig, error) {
	parts := strings.Split(flag, ",")
	cols := len(data.Rows[0])
	if len(parts) != cols {
		return nil, fmt.Errorf("--widths has %d values, table has %d columns", len(parts), cols)
	}
	out := make([]*gridtable.ColumnConfig, cols)
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid width %q at column %d", p, i)
		}
		col := gridtable.DefaultColumnConfig()
		col.Width = w
		out[i] = &col
	}
	return out, nil
}

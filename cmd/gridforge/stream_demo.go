package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridforge/gridforge/pkg/gridtable"
	"github.com/gridforge/gridforge/pkg/settings"
)

var streamDemoDelay time.Duration

var streamDemoCmd = &cobra.Command{
	Use:   "stream-demo [file]",
	Short: "Render rows incrementally, one at a time, via the streaming driver",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStreamDemo,
}

func init() {
	streamDemoCmd.Flags().StringVar(&borderName, "border", "honeywell", "border preset: honeywell|norc|ramac|void")
	streamDemoCmd.Flags().DurationVar(&streamDemoDelay, "delay", 150*time.Millisecond, "pause between rows, for visible progress")
}

func runStreamDemo(cmd *cobra.Command, args []string) error {
	var r *os.File = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return inputParseError(fmt.Errorf("open input: %w", err))
		}
		defer f.Close()
		r = f
	}

	var rows [][]string
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return inputParseError(fmt.Errorf("decode json: %w", err))
	}
	data, err := gridtable.NewTableData(rows)
	if err != nil {
		return configFailure(err)
	}

	border, err := gridtable.BorderPreset(borderName)
	if err != nil {
		return configFailure(err)
	}
	cfg := gridtable.TableConfig{Border: border, DefaultColumn: gridtable.DefaultColumnConfig()}

	renderer := gridtable.NewStreamingRenderer(cfg)
	if err := renderer.FinalizeWidths(data); err != nil {
		return renderFailure(err)
	}

	run, _ := settings.FromContext(rootCtx)

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil || w <= 0 || (run != nil && run.NoColor) {
		status = lipgloss.NewStyle() // non-terminal stdout, or --no-color: no color
	}

	out := cmd.OutOrStdout()
	top, err := renderer.Begin()
	if err != nil {
		return renderFailure(err)
	}
	fmt.Fprint(out, top)
	for i, row := range data.Rows {
		chunk, err := renderer.PushRow(row)
		if err != nil {
			return renderFailure(err)
		}
		fmt.Fprint(out, chunk)
		if run == nil || !run.Quiet {
			fmt.Fprintln(os.Stderr, status.Render(fmt.Sprintf("● row %d/%d emitted", i+1, len(data.Rows))))
		}
		time.Sleep(streamDemoDelay)
	}
	bottom, err := renderer.End()
	if err != nil {
		return renderFailure(err)
	}
	fmt.Fprint(out, bottom)
	return nil
}

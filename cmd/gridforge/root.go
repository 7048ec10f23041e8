// Package cmd implements the gridforge CLI front end: the external
// collaborator spec.md §1 carves out of the engine's core, responsible
// for parsing JSON/CSV input, selecting a border preset, and mapping
// render outcomes to exit codes.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/gridforge/gridforge/pkg/logger"
	"github.com/gridforge/gridforge/pkg/settings"
)

var (
	debug     bool
	quiet     bool
	noColor   bool
	rootCtx   context.Context
	rootCmd   = &cobra.Command{
		Use:   "gridforge",
		Short: "Render rectangular data as a bordered, ANSI-aware table",
		Long: "gridforge renders JSON or CSV input as a bordered table, preserving " +
			"SGR color markup and wrapping cell text by display width rather than " +
			"byte count.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			var level int8
			if debug {
				level = -1
			}
			if quiet {
				level = int8(zapcore.ErrorLevel)
			}
			lgr := logger.Get(level)
			lgr = logger.WithValues(lgr, logger.RootCommandKey, "gridforge", logger.SubCommandKey, cmd.Name())
			ctx := logger.WithLogger(context.Background(), lgr)
			run := settings.NewCliParams()
			run.MinLogLevel, run.Quiet, run.NoColor = level, quiet, noColor
			rootCtx = settings.IntoContext(ctx, run)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level structured logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress warning logs and progress output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in auxiliary output (stream-demo's status line)")
	// render is also the default command: bare "gridforge" takes its
	// arguments and flags.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runRender
	rootCmd.Flags().AddFlagSet(renderCmd.Flags())
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(streamDemoCmd)
}

// Execute runs the CLI and returns the process exit code: 0 on success, 1
// on input parsing failure, 2 on render failure, 3 on config error
// (spec.md §6).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code, ok := err.(exitCoder); ok {
			return code.ExitCode()
		}
		return 2
	}
	return 0
}

// exitCoder lets a command's returned error carry the specific exit code
// spec.md §6 requires, instead of collapsing every failure to 1.
type exitCoder interface {
	error
	ExitCode() int
}

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) ExitCode() int { return e.code }

func inputParseError(err error) error { return &cliError{code: 1, err: err} }
func renderFailure(err error) error   { return &cliError{code: 2, err: err} }
func configFailure(err error) error   { return &cliError{code: 3, err: err} }

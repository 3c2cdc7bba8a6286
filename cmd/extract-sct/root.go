package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/config"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/log"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/output"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/ui"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg *config.Config
)

// rootCmd runs the extraction directly: files are positional arguments
// on the tool itself, matching the CI workflow invocation.
var rootCmd = &cobra.Command{
	Use:   "extract-sct [flags] FILE...",
	Short: "Extract runnable SCT commands from tutorial files",
	Long: `extract-sct scans tutorial text files for runnable sct_* command lines
and emits them for the CI workflow runner.

Lines are matched after stripping leading whitespace and a leading "# "
comment marker. Bare labels, <placeholder> lines, sct_download_data and
sct_run_batch invocations are skipped. Matched lines are printed to
stdout in encounter order, or written to a file with -o.`,
	Example: `  extract-sct docs/tutorial.txt                  # Print commands to stdout
  extract-sct a.txt b.txt -o commands.txt        # Scan both, write to file
  extract-sct docs/*.txt --exclude sct_testing   # Skip another sub-command
  extract-sct stats docs/*.txt                   # Per-file match counts`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd.Context(), args, extractOptions{
			output:  outputPath,
			exclude: extraExclude,
			copy:    copyResult,
		})
	},
}

var (
	outputPath   string
	extraExclude []string
	copyResult   bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config; a broken config never blocks extraction
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger on stderr for diagnostics, printer on stdout for data
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("extract-sct: %v", err)
		if ui.IsTerminal(os.Stderr) {
			fmt.Fprintln(ui.ColorWriter(os.Stderr), ui.ErrorStyle.Render(msg))
		} else {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-file scan details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Extraction flags
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write extracted commands to FILE instead of stdout")
	rootCmd.Flags().StringArrayVar(&extraExclude, "exclude", nil, "Additional sub-command prefix to exclude (repeatable)")
	rootCmd.Flags().BoolVar(&copyResult, "copy", false, "Also copy the result to the system clipboard")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}

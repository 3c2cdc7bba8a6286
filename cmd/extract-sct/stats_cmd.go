package main

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Show per-file command counts",
		Args:  cobra.MinimumNArgs(1),
		Long: `Show how many lines each file contributes to the extraction.

Useful when trimming the file list passed to the CI workflow: files
with zero matched commands don't need to be scanned at all.`,
		Example: `  extract-sct stats docs/*.txt          # Table of per-file counts
  extract-sct stats docs/*.txt --json   # JSON for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/config"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/output"
)

// defaultConfigContent is written by `config init`. It spells out the
// built-in rules so they are easy to tweak.
const defaultConfigContent = `# extract-sct configuration

[rules]
# Command family prefix to match.
prefix = "sct_"

# Leading sequence stripped from commented-out command lines.
comment_marker = "# "

# Minimum space-separated tokens (command + arg + value).
min_tokens = 3

# Sub-commands that never qualify: data is already present in CI, and
# batch runs are driven by the workflow definition itself.
exclude = ["sct_download_data", "sct_run_batch"]
`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage extract-sct configuration.

Config file: ~/.config/extract-sct/config.toml
(override the location with EXTRACT_SCT_CONFIG)`,
		Example: `  extract-sct config init    # Create default config file
  extract-sct config show    # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  extract-sct config init      # Create config if missing
  extract-sct config init -f   # Overwrite existing config
  extract-sct config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(force, stdout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func initConfig(force, stdout bool) error {
	if stdout {
		fmt.Print(defaultConfigContent)
		return nil
	}

	path, err := config.Path()
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0644); err != nil {
		return err
	}

	fmt.Printf("Created config file: %s\n", path)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  extract-sct config show          # Show config as TOML
  extract-sct config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

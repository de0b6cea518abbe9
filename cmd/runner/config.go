package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration.

Save it to ~/.arcade/configs/runner.yaml or ./configs/runner.yaml and edit
it, or pass it to 'runner play --config <file>'. Keys left out of a file
keep their default values.

Examples:
  runner config > ~/.arcade/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		//nolint:errcheck // Writing to stdout
		os.Stdout.Write(config.DefaultYAML())
	},
}

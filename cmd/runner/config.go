package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as YAML",
	Long: `Print the config that play, serve and sim would use, after the search
path and --difficulty are applied. Redirect it to a file to start a custom
config:

  runner config > ~/.tui-runner/configs/runner.yaml

Search order: --config, ~/.tui-runner/configs/runner.yaml,
./configs/runner.yaml, built-in defaults.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail("%v", err)
	}
}

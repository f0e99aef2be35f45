// runner is an endless lane runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner sim               - Run the autopilot headless and print a summary
//	runner config            - Print the effective config as YAML
//	runner list              - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Load tuning from a YAML file
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is a three-lane endless runner played in the terminal.
Dodge barriers by switching lanes, jumping, and sliding; collect coins and
power-ups; the track speeds up as your score grows.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run the autopilot headless
  config   - Print the effective config
  list     - Show registered games

Examples:
  runner play
  runner play --difficulty hard --watch --config ./runner.yaml
  runner serve --ssh :2222
  runner sim --seconds 120 --seed 7
  runner config --difficulty easy > runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// loadRunnerConfig resolves the config file and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("difficulty %s: %w", preset, err)
		}
	}
	return cfg, nil
}

// newLogger builds the logger for w at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui-runner",
		Level:           level,
	}), nil
}

// fileLogger logs to --log-file, or nowhere when it is unset. The returned
// close func is always safe to call.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		l, err := newLogger(io.Discard)
		return l, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	l, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, func() { f.Close() }, nil
}

// gameID is the registered game every command drives.
const gameID = runner.ID

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

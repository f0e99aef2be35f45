package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  A/Left, D/Right - Change lane
  W/Up            - Jump (again in the air with Double Jump)
  S/Down          - Slide
  Space/Enter     - Start
  P               - Pause
  R               - Restart (after game over)
  Q/Esc           - Back to title, quit from the title
  Ctrl+S          - Save a screenshot
  Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, slower start, bigger hit tolerance
  normal - Default tuning
  hard   - Fewer lives, faster start, steeper speed-ups
  fixed  - No speed-ups

With --watch, edits to the config file are picked up while playing and
take effect from the next run.

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./runner.yaml --watch
  runner play --seed 42 --log-file runner.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}

	// Logs must stay off the alternate screen
	logger, closeLog, err := fileLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	if c, ok := game.(registry.Configurable); ok {
		c.Configure(runnerCfg)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		watcher, err := config.NewWatcher(path)
		if err != nil {
			fail("%v", err)
		}
		defer watcher.Close()
		logger.Info("watching config", "path", watcher.Path())
		opts = append(opts, tui.WithReloads(watcher.Reloads))
	}

	logger.Info("starting run", "game", gameID, "fps", flagFPS, "seed", flagSeed, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg, opts...); err != nil {
		logger.Error("game exited", "error", err)
		closeLog()
		fail("running game: %v", err)
	}
}

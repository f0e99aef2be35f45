package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

var (
	flagSeconds float64
	flagRuns    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless and print a summary",
	Long: `Play runs with the built-in autopilot at a fixed tick rate, without a
terminal UI, and print a summary of each. Each run ends at game over or
after --seconds of simulated time. Events are logged to stderr.

The same --seed, --fps and config always produce the same result.

Examples:
  runner sim
  runner sim --seconds 300 --seed 7
  runner sim --runs 5 --difficulty hard --log-level warn`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 120, "Simulated seconds per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	if flagFPS <= 0 || flagSeconds <= 0 || flagRuns <= 0 {
		fail("--fps, --seconds and --runs must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dt := 1 / float64(flagFPS)
	maxTicks := int(flagSeconds * float64(flagFPS))
	pilot := sim.NewAutopilot()

	fmt.Printf("seed %d, %d fps, up to %.0fs per run\n\n", seed, flagFPS, flagSeconds)
	fmt.Printf("  %3s  %8s  %9s  %5s  %5s  %6s  %10s  %s\n",
		"Run", "Score", "Distance", "Coins", "Lives", "Speed", "Milestones", "Result")

	for run := 1; run <= flagRuns; run++ {
		runLog := logger.With("run", run)
		session := sim.NewSession(cfg, seed+int64(run-1))
		final := sim.Simulate(session, pilot, dt, maxTicks, func(e sim.Event) {
			switch e.Kind {
			case sim.EventCoin, sim.EventObstacleCleared:
				runLog.Debug(e.String())
			default:
				runLog.Info(e.String())
			}
		})

		result := fmt.Sprintf("survived %.0fs", final.Elapsed)
		if final.State == sim.StateGameOver {
			result = fmt.Sprintf("over at %.0fs: %s", final.Elapsed, final.Reason)
		}
		fmt.Printf("  %3d  %8.0f  %8.0fm  %5d  %5d  %6.1f  %10d  %s\n",
			run, final.Score, final.Distance, final.CoinsCollected, final.Lives,
			final.Speed, final.Milestones, result)
	}
}

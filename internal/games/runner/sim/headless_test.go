package sim

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestSimulateStopsAtTickLimit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Session.Lives = 1000 // Outlast the limit
	s := NewSession(cfg, 3)

	final := Simulate(s, NewAutopilot(), tick, 600, nil)

	if final.Ticks != 600 {
		t.Errorf("ticks: got %d, expected 600", final.Ticks)
	}
	if final.State != StatePlaying {
		t.Errorf("state: got %s, expected playing", final.State)
	}
}

func TestSimulateEndsWithGameOver(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Session.Lives = 1
	s := NewSession(cfg, 5)

	var kinds []EventKind
	final := Simulate(s, Autopilot{}, tick, 1_000_000, func(e Event) {
		kinds = append(kinds, e.Kind)
	})

	if final.State != StateGameOver {
		t.Fatalf("state: got %s, expected game_over", final.State)
	}
	if len(kinds) == 0 || kinds[len(kinds)-1] != EventGameOver {
		t.Errorf("last event should be game over, got %v", kinds)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	run := func() Snapshot {
		return Simulate(NewSession(config.DefaultRunnerConfig(), 11), NewAutopilot(), tick, 5000, nil)
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Distance != b.Distance || a.CoinsCollected != b.CoinsCollected || a.Ticks != b.Ticks {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

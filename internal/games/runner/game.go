// Package runner implements the lane runner game: it feeds host input into
// the simulation in package sim and draws the track in pseudo-3D.
package runner

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// ID is the registry key of the runner.
const ID = "runner"

// How long transient messages stay on screen, in ticks.
const (
	bannerTicks    = 90
	bonusTicks     = 45
	bannerPriority = 2 // Life lost beats a bonus message
)

// banner is a transient message drawn over the track.
type banner struct {
	text     string
	color    core.Color
	ticks    int
	priority int
}

// Game implements registry.Game on top of a sim.Session.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	session *sim.Session
	snap    sim.Snapshot
	banner  banner
	frame   int // Animation counter, advances every step
}

// New creates a runner with the default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultRunnerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Runner"
}

// Configure sets the tuning. Before Reset it applies immediately; afterwards
// it takes effect when the next run starts.
func (g *Game) Configure(cfg config.RunnerConfig) {
	g.cfg = cfg
	if g.session != nil {
		g.session.Reconfigure(cfg)
	}
}

// Reset builds a fresh session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = sim.NewSession(g.cfg, runtime.Seed)
	g.snap = g.session.Snapshot()
	g.banner = banner{}
	g.frame = 0
}

// Session exposes the underlying simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Step applies one frame of input and advances the simulation.
// Commands that do not apply in the current state are ignored by the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	s := g.session

	if in.Has(core.ActionBack) {
		s.QuitToMenu()
	}
	if in.Has(core.ActionConfirm) {
		s.StartOrReset()
	}
	if in.Has(core.ActionRestart) {
		s.RestartAfterGameOver()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionLeft) {
		s.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.MoveRight()
	}
	if in.Has(core.ActionJump) {
		s.Jump()
	}
	if in.Has(core.ActionSlide) {
		s.Slide()
	}

	s.Advance(g.dt(in).Seconds())
	g.snap = s.Snapshot()
	g.frame++

	if g.snap.State == sim.StatePlaying && g.banner.ticks > 0 {
		g.banner.ticks--
	}
	if g.snap.State != sim.StatePlaying && g.snap.State != sim.StatePaused {
		g.banner = banner{}
	}

	events := make([]core.Event, 0, len(g.snap.Events))
	for _, e := range g.snap.Events {
		g.announce(e)
		events = append(events, core.Event{Kind: e.Kind.String(), Message: e.String()})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// dt returns the frame's measured delta, or one nominal tick.
func (g *Game) dt(in core.InputFrame) time.Duration {
	if in.DT > 0 {
		return in.DT
	}
	return g.runtime.TickInterval()
}

// announce turns a simulation event into an on-screen message.
func (g *Game) announce(e sim.Event) {
	var b banner
	switch e.Kind {
	case sim.EventLifeLost:
		b = banner{
			text:     fmt.Sprintf("Life lost! %d lives remaining", e.Lives),
			color:    core.ColorBrightRed,
			ticks:    bannerTicks,
			priority: bannerPriority,
		}
	case sim.EventObstacleCleared:
		if e.Points <= 0 {
			return
		}
		b = banner{text: clearedText(e), color: core.ColorBrightGreen, ticks: bonusTicks, priority: 1}
	case sim.EventMilestone:
		b = banner{
			text:     fmt.Sprintf("Speed up! %.1f", e.Speed),
			color:    core.ColorOrange,
			ticks:    bonusTicks,
			priority: 1,
		}
	default:
		return
	}
	if g.banner.ticks > 0 && g.banner.priority > b.priority {
		return
	}
	g.banner = b
}

func clearedText(e sim.Event) string {
	switch e.Obstacle {
	case sim.ObstacleLow:
		return fmt.Sprintf("Nice slide! +%.0f", e.Points)
	case sim.ObstacleHigh:
		return fmt.Sprintf("Great jump! +%.0f", e.Points)
	default:
		return fmt.Sprintf("Perfect gap jump! +%.0f", e.Points)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.snap.Score),
		InMenu:   g.snap.State == sim.StateMenu,
		GameOver: g.snap.State == sim.StateGameOver,
		Paused:   g.snap.State == sim.StatePaused,
	}
}

// Snapshot returns the state as of the last step.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

package sim

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cosmetic spin per tick, in degrees.
const (
	coinSpin    = 2
	powerUpSpin = 3
)

// maxDT bounds a single Advance so a stalled host cannot teleport the
// player past obstacles.
const maxDT = 0.25

// Session is one player's game: state machine, counters and world.
// It is not safe for concurrent use; the host serializes commands,
// Advance and Snapshot.
type Session struct {
	cfg     config.RunnerConfig
	pending *config.RunnerConfig // Applied when the next run starts

	state  State
	player *Player
	world  World
	track  *TrackGenerator
	diff   *config.DifficultyManager
	seed   int64
	runs   int

	score    float64
	distance float64
	speed    float64
	coins    int
	lives    int
	reason   string
	elapsed  float64 // Seconds of play in the current run
	ticks    int

	events []Event
}

// NewSession creates a session in the menu. cfg is copied.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		state: StateMenu,
		seed:  seed,
	}
	s.player = NewPlayer(&s.cfg)
	s.track = NewTrackGenerator(seed, &s.cfg)
	s.diff = config.NewDifficultyManager(s.cfg.Difficulty)
	s.resetCounters()
	return s
}

// Reconfigure replaces the tuning. The current run keeps its config; the new
// one takes effect when the next run starts.
func (s *Session) Reconfigure(cfg config.RunnerConfig) {
	s.pending = &cfg
}

// Config returns the tuning of the current run.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// State returns the current top-level state.
func (s *Session) State() State {
	return s.state
}

// StartOrReset begins a fresh run from the menu or after a game over.
func (s *Session) StartOrReset() {
	if s.state != StateMenu && s.state != StateGameOver {
		return
	}
	s.newRun()
}

// RestartAfterGameOver begins a fresh run once the previous one has ended.
func (s *Session) RestartAfterGameOver() {
	if s.state != StateGameOver {
		return
	}
	s.newRun()
}

// Pause stops ticking the simulation.
func (s *Session) Pause() {
	if s.state == StatePlaying {
		s.state = StatePaused
	}
}

// Resume continues a paused run.
func (s *Session) Resume() {
	if s.state == StatePaused {
		s.state = StatePlaying
	}
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// QuitToMenu abandons a paused or finished run.
func (s *Session) QuitToMenu() {
	if s.state == StatePaused || s.state == StateGameOver {
		s.state = StateMenu
	}
}

// MoveLeft forwards to the player while playing.
func (s *Session) MoveLeft() {
	if s.state == StatePlaying {
		s.player.MoveLeft()
	}
}

// MoveRight forwards to the player while playing.
func (s *Session) MoveRight() {
	if s.state == StatePlaying {
		s.player.MoveRight()
	}
}

// Jump forwards to the player while playing.
func (s *Session) Jump() {
	if s.state == StatePlaying {
		s.player.Jump()
	}
}

// Slide forwards to the player while playing.
func (s *Session) Slide() {
	if s.state == StatePlaying {
		s.player.Slide()
	}
}

// newRun resets every counter and entity and enters Playing.
// Each run draws from its own seed so restarts do not replay the same track.
func (s *Session) newRun() {
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
		s.player.configure(&s.cfg)
		s.track.UpdateConfig(&s.cfg)
		s.diff = config.NewDifficultyManager(s.cfg.Difficulty)
	}

	s.player.Reset()
	s.world.Clear()
	s.track.Reset(s.seed + int64(s.runs))
	s.diff.Reset()
	s.resetCounters()
	s.runs++
	s.state = StatePlaying
}

func (s *Session) resetCounters() {
	s.score = 0
	s.distance = 0
	s.speed = s.cfg.Session.BaseSpeed
	s.coins = 0
	s.lives = s.cfg.Session.Lives
	s.reason = ""
	s.elapsed = 0
	s.ticks = 0
	s.events = s.events[:0]
}

// EffectiveSpeed returns the base speed with any speed boost applied.
func (s *Session) EffectiveSpeed() float64 {
	if s.player.Active(PowerUpSpeedBoost) {
		return s.speed * s.cfg.PowerUps.SpeedBoostFactor
	}
	return s.speed
}

// Advance runs one simulation tick covering dt seconds of wall-clock time.
// Distance is scaled by dt so progress does not depend on frame rate; all
// tick-counted quantities (timers, physics, trickle) advance once per call.
// Outside Playing it does nothing.
func (s *Session) Advance(dt float64) {
	s.events = s.events[:0]
	if s.state != StatePlaying {
		return
	}
	dt = math.Max(0, math.Min(dt, maxDT))
	s.ticks++
	s.elapsed += dt

	s.distance += s.EffectiveSpeed() * dt * s.cfg.Session.ReferenceRate
	s.score += s.cfg.Session.SurvivalPoints

	if speed, stepped := s.diff.Speed(s.speed, s.score); stepped {
		s.speed = speed
		s.emit(Event{
			Kind:  EventMilestone,
			Level: s.diff.LastMilestone(),
			Speed: s.speed,
			Lives: s.lives,
		})
	}

	s.track.Generate(s.distance, &s.world)
	s.player.Update()
	s.pullCoins()
	s.animate()

	if s.collideObstacles() {
		return
	}
	s.collectCoins()
	s.collectPowerUps()

	s.world.Prune(s.distance, s.cfg.Track.RetireBehind)
}

// animate spins collectibles and bobs power-ups.
func (s *Session) animate() {
	for i := range s.world.Coins {
		c := &s.world.Coins[i]
		c.Rotation = math.Mod(c.Rotation+coinSpin, 360)
	}
	bob := s.cfg.PowerUps.FloatAmplitude * math.Sin(s.cfg.PowerUps.FloatFrequency*s.elapsed)
	for i := range s.world.PowerUps {
		p := &s.world.PowerUps[i]
		p.Rotation = math.Mod(p.Rotation+powerUpSpin, 360)
		p.FloatOffset = bob
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

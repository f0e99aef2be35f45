package sim

// PlayerView is the read-only pose of the player.
type PlayerView struct {
	Lane            int
	X               float64
	Z               float64
	Jumping         bool
	Sliding         bool
	CanDoubleJump   bool
	HasDoubleJumped bool
	ChangingLane    bool
	SlideTimer      int
	Timers          [PowerUpCount]int
}

// Snapshot is a copy of everything a renderer or controller needs.
// Mutating it has no effect on the session.
type Snapshot struct {
	State  State
	Player PlayerView

	Obstacles []Obstacle
	Coins     []Coin
	PowerUps  []PowerUp

	Score          float64
	Distance       float64
	Speed          float64 // Base speed
	EffectiveSpeed float64 // Base speed with boost applied
	CoinsCollected int
	Lives          int
	StartLives     int
	Reason         string // Cause of game over, or the last life-lost message

	SpeedUps      bool    // Whether milestones raise the speed
	Milestones    int     // Speed milestones reached this run
	NextMilestone float64 // Score at which the next one is reached
	Elapsed       float64 // Seconds of play
	Ticks         int

	LaneWidth float64
	GroundZ   float64

	Events []Event // Raised by the most recent Advance
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	return Snapshot{
		State: s.state,
		Player: PlayerView{
			Lane:            p.Lane,
			X:               p.X,
			Z:               p.Z,
			Jumping:         p.Jumping,
			Sliding:         p.Sliding,
			CanDoubleJump:   p.CanDoubleJump,
			HasDoubleJumped: p.HasDoubleJumped,
			ChangingLane:    p.ChangingLane(),
			SlideTimer:      p.SlideTimer,
			Timers:          p.timers,
		},
		Obstacles:      append([]Obstacle(nil), s.world.Obstacles...),
		Coins:          append([]Coin(nil), s.world.Coins...),
		PowerUps:       append([]PowerUp(nil), s.world.PowerUps...),
		Score:          s.score,
		Distance:       s.distance,
		Speed:          s.speed,
		EffectiveSpeed: s.EffectiveSpeed(),
		CoinsCollected: s.coins,
		Lives:          s.lives,
		StartLives:     s.cfg.Session.Lives,
		Reason:         s.reason,
		SpeedUps:       s.diff.IsEnabled(),
		Milestones:     s.diff.LastMilestone(),
		NextMilestone:  s.diff.NextMilestoneScore(s.score),
		Elapsed:        s.elapsed,
		Ticks:          s.ticks,
		LaneWidth:      s.cfg.Player.LaneWidth,
		GroundZ:        s.cfg.Player.GroundZ,
		Events:         append([]Event(nil), s.events...),
	}
}

// Active reports whether the power-up kind is running in the snapshot.
func (v PlayerView) Active(kind PowerUpKind) bool {
	return kind >= 0 && kind < PowerUpCount && v.Timers[kind] > 0
}

// SecondsLeft returns the whole seconds shown for a running power-up,
// rounding up so a timer never displays zero while active.
func (v PlayerView) SecondsLeft(kind PowerUpKind) int {
	if !v.Active(kind) {
		return 0
	}
	return v.Timers[kind]/60 + 1
}

package sim

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// Player is the runner's avatar.
//
// Commands never fail: a command that does not apply in the current state
// (moving past the edge lane, jumping mid-slide, ...) returns without effect.
type Player struct {
	Lane    int     // Current lane (-1, 0, 1)
	X       float64 // Horizontal position, eased toward TargetX
	TargetX float64 // Lane * lane width
	Y       float64 // Forward offset; always 0, the world scrolls instead
	Z       float64 // Height; ground level is cfg.GroundZ

	Jumping         bool
	Sliding         bool
	CanDoubleJump   bool
	HasDoubleJumped bool
	JumpVelocity    float64
	SlideTimer      int // Ticks of slide remaining

	timers [PowerUpCount]int // Ticks remaining per power-up kind

	cfg       *config.RunnerPlayer
	durations [PowerUpCount]int
}

// NewPlayer creates a player standing in the center lane.
func NewPlayer(cfg *config.RunnerConfig) *Player {
	p := &Player{}
	p.configure(cfg)
	p.Reset()
	return p
}

// configure binds the player to the given tuning.
func (p *Player) configure(cfg *config.RunnerConfig) {
	p.cfg = &cfg.Player
	p.durations = [PowerUpCount]int{
		PowerUpMagnet:         cfg.PowerUps.MagnetTicks,
		PowerUpShield:         cfg.PowerUps.ShieldTicks,
		PowerUpSpeedBoost:     cfg.PowerUps.SpeedBoostTicks,
		PowerUpDoubleJump:     cfg.PowerUps.DoubleJumpTicks,
		PowerUpCoinMultiplier: cfg.PowerUps.CoinMultiplierTicks,
	}
}

// Reset puts the player back at the start of a run.
func (p *Player) Reset() {
	cfg, durations := p.cfg, p.durations
	*p = Player{
		Lane:      LaneCenter,
		Z:         cfg.GroundZ,
		cfg:       cfg,
		durations: durations,
	}
}

// MoveLeft starts a lane change to the left.
func (p *Player) MoveLeft() {
	p.changeLane(-1)
}

// MoveRight starts a lane change to the right.
func (p *Player) MoveRight() {
	p.changeLane(1)
}

func (p *Player) changeLane(dir int) {
	if p.ChangingLane() {
		return
	}
	lane := p.Lane + dir
	if lane < LaneLeft || lane > LaneRight {
		return
	}
	p.Lane = lane
	p.TargetX = float64(lane) * p.cfg.LaneWidth
}

// ChangingLane reports whether a lane change is still easing in.
func (p *Player) ChangingLane() bool {
	return p.X != p.TargetX
}

// Jump starts a jump from the ground, or spends the double-jump charge
// while airborne.
func (p *Player) Jump() {
	switch {
	case !p.Jumping && !p.Sliding:
		p.Jumping = true
		p.JumpVelocity = p.cfg.JumpVelocity
	case p.Jumping && p.CanDoubleJump && !p.HasDoubleJumped:
		p.JumpVelocity = p.cfg.DoubleJumpVelocity
		p.HasDoubleJumped = true
	}
}

// Slide starts a slide if the player is on the ground and not already sliding.
func (p *Player) Slide() {
	if p.Jumping || p.Sliding {
		return
	}
	p.Sliding = true
	p.SlideTimer = p.cfg.SlideTicks
}

// ActivatePowerUp sets the timer for kind to its full duration.
// Collecting a kind that is already running restarts it rather than stacking.
func (p *Player) ActivatePowerUp(kind PowerUpKind) {
	if kind < 0 || kind >= PowerUpCount {
		return
	}
	p.timers[kind] = p.durations[kind]
	if kind == PowerUpDoubleJump {
		p.CanDoubleJump = p.timers[kind] > 0
	}
}

// Timer returns the ticks remaining for kind.
func (p *Player) Timer(kind PowerUpKind) int {
	if kind < 0 || kind >= PowerUpCount {
		return 0
	}
	return p.timers[kind]
}

// Active reports whether the power-up kind is running.
func (p *Player) Active(kind PowerUpKind) bool {
	return p.Timer(kind) > 0
}

// Update advances the player by one tick.
func (p *Player) Update() {
	// Ease toward the target lane
	if d := p.TargetX - p.X; d > p.cfg.SnapDistance || d < -p.cfg.SnapDistance {
		if d > 0 {
			p.X += p.cfg.LaneStep
		} else {
			p.X -= p.cfg.LaneStep
		}
	} else {
		p.X = p.TargetX
	}

	// Jump physics
	if p.Jumping {
		p.Z += p.JumpVelocity
		p.JumpVelocity -= p.cfg.Gravity
		if p.Z <= p.cfg.GroundZ {
			p.land()
		}
	}

	// Slide countdown
	if p.Sliding {
		p.SlideTimer--
		if p.SlideTimer <= 0 {
			p.Sliding = false
			p.SlideTimer = 0
		}
	}

	for k := range p.timers {
		if p.timers[k] > 0 {
			p.timers[k]--
		}
	}
	p.CanDoubleJump = p.timers[PowerUpDoubleJump] > 0
}

// land puts the player back on the ground and restores the double jump.
func (p *Player) land() {
	p.Z = p.cfg.GroundZ
	p.Jumping = false
	p.JumpVelocity = 0
	p.HasDoubleJumped = false
}

// SoftReset cancels any jump or slide after a lost life so the player
// resumes running from the ground.
func (p *Player) SoftReset() {
	p.land()
	p.Sliding = false
	p.SlideTimer = 0
}

// Grounded reports whether the player is standing on the ground.
func (p *Player) Grounded() bool {
	return !p.Jumping && p.Z <= p.cfg.GroundZ
}

package sim

import (
	"fmt"
	"math"
)

// Failure causes reported when an obstacle costs a life.
const (
	reasonLowNoSlide  = "Hit low barrier! Should have slid!"
	reasonLowTooHigh  = "Didn't slide low enough!"
	reasonHighTooLow  = "Hit high barrier! Should have jumped higher!"
	reasonGapTooLow   = "Fell in gap! Should have jumped!"
	reasonLifeLostFmt = "Life lost! %d lives remaining"
)

// classify decides the outcome of reaching an obstacle. Failure rules are
// checked first and in order; a non-empty cause means a life is lost.
// Otherwise bonus is the score the clear pays, possibly zero.
func (s *Session) classify(kind ObstacleKind) (cause string, bonus float64) {
	p, o, sc := s.player, &s.cfg.Obstacles, &s.cfg.Scoring

	switch {
	case kind == ObstacleLow && !p.Sliding:
		return reasonLowNoSlide, 0
	case kind == ObstacleLow && p.Sliding && p.Z > o.SlideClearance:
		// Sliding never raises Z, so this only fires on custom tuning.
		return reasonLowTooHigh, 0
	case kind == ObstacleHigh && p.Z < o.HighClearance:
		return reasonHighTooLow, 0
	case kind == ObstacleGap && p.Z < o.GapClearance:
		return reasonGapTooLow, 0
	}

	switch {
	case kind == ObstacleLow && p.Sliding:
		return "", sc.SlideBonus
	case kind == ObstacleHigh && p.Z > o.HighBonusHeight:
		return "", sc.HighBonus
	case kind == ObstacleGap && p.Z > o.GapClearance:
		return "", sc.GapBonus
	}
	return "", 0
}

// collideObstacles resolves every active obstacle the player has reached.
// It reports whether the run ended. An active shield skips the pass entirely.
func (s *Session) collideObstacles() bool {
	if s.player.Active(PowerUpShield) {
		return false
	}

	box := s.cfg.Obstacles.HitBox
	for i := range s.world.Obstacles {
		o := &s.world.Obstacles[i]
		if !o.Active {
			continue
		}
		if math.Abs(o.X-s.player.X) >= box || math.Abs(o.Y-s.distance) >= box {
			continue
		}

		o.Active = false
		cause, bonus := s.classify(o.Kind)
		if cause == "" {
			s.score += bonus
			s.emit(Event{Kind: EventObstacleCleared, Obstacle: o.Kind, Points: bonus, Lives: s.lives})
			continue
		}

		s.lives--
		if s.lives <= 0 {
			s.lives = 0
			s.reason = cause
			s.state = StateGameOver
			s.emit(Event{Kind: EventGameOver, Obstacle: o.Kind, Reason: cause})
			return true
		}
		s.reason = fmt.Sprintf(reasonLifeLostFmt, s.lives)
		s.player.SoftReset()
		s.emit(Event{Kind: EventLifeLost, Obstacle: o.Kind, Lives: s.lives, Reason: cause})
	}
	return false
}

// collectCoins picks up every coin inside the pickup box.
func (s *Session) collectCoins() {
	p, box := s.player, s.cfg.PowerUps.PickupHitBox
	for i := range s.world.Coins {
		c := &s.world.Coins[i]
		if c.Collected || !within(c.X-p.X, c.Y-s.distance, c.Z-p.Z, box) {
			continue
		}
		c.Collected = true
		s.coins++

		points := s.cfg.Scoring.Coin
		if p.Active(PowerUpCoinMultiplier) {
			points = s.cfg.Scoring.CoinMultiplied
		}
		s.score += points
		s.emit(Event{Kind: EventCoin, Points: points, Lives: s.lives})
	}
}

// collectPowerUps picks up every power-up inside the pickup box, using its
// floating height.
func (s *Session) collectPowerUps() {
	p, box := s.player, s.cfg.PowerUps.PickupHitBox
	for i := range s.world.PowerUps {
		pu := &s.world.PowerUps[i]
		if pu.Collected || !within(pu.X-p.X, pu.Y-s.distance, pu.Z+pu.FloatOffset-p.Z, box) {
			continue
		}
		pu.Collected = true
		p.ActivatePowerUp(pu.Kind)
		s.score += s.cfg.Scoring.PowerUp
		s.emit(Event{Kind: EventPowerUp, PowerUp: pu.Kind, Points: s.cfg.Scoring.PowerUp, Lives: s.lives})
	}
}

// pullCoins drags coins within magnet range a fraction of the way toward
// the player.
func (s *Session) pullCoins() {
	if !s.player.Active(PowerUpMagnet) {
		return
	}
	r, pull := s.cfg.PowerUps.MagnetRange, s.cfg.PowerUps.MagnetPull
	for i := range s.world.Coins {
		c := &s.world.Coins[i]
		if c.Collected {
			continue
		}
		dx := s.player.X - c.X
		dy := s.distance - c.Y
		if math.Hypot(dx, dy) < r {
			c.X += dx * pull
			c.Y += dy * pull
		}
	}
}

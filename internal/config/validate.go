package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrNoLives        = errors.New("session.lives must be positive")
	ErrBadSpeed       = errors.New("session.base_speed must be positive")
	ErrBadRate        = errors.New("session.reference_rate must be positive")
	ErrBadLane        = errors.New("player.lane_width and player.lane_step must be positive")
	ErrBadGap         = errors.New("track gap range is empty")
	ErrNoCoinOffsets  = errors.New("track.coin_offsets must not be empty")
	ErrBadMilestone   = errors.New("difficulty.milestone_points must be positive")
	ErrBadClearance   = errors.New("obstacle clearances must be above ground_z")
	ErrBadPowerUpTime = errors.New("power-up durations must not be negative")
)

// Validate checks the config for values the simulation cannot run with.
// It returns the first violated constraint.
func (c *RunnerConfig) Validate() error {
	if c.Session.Lives <= 0 {
		return ErrNoLives
	}
	if c.Session.BaseSpeed <= 0 {
		return ErrBadSpeed
	}
	if c.Session.ReferenceRate <= 0 {
		return ErrBadRate
	}
	if c.Player.LaneWidth <= 0 || c.Player.LaneStep <= 0 {
		return ErrBadLane
	}
	if c.Track.ObstacleGapMin <= 0 || c.Track.ObstacleGapMax < c.Track.ObstacleGapMin {
		return fmt.Errorf("%w: obstacle_gap [%d,%d]", ErrBadGap, c.Track.ObstacleGapMin, c.Track.ObstacleGapMax)
	}
	if c.Track.PowerUpGapMin <= 0 || c.Track.PowerUpGapMax < c.Track.PowerUpGapMin {
		return fmt.Errorf("%w: powerup_gap [%d,%d]", ErrBadGap, c.Track.PowerUpGapMin, c.Track.PowerUpGapMax)
	}
	if len(c.Track.CoinOffsets) == 0 {
		return ErrNoCoinOffsets
	}
	if c.Difficulty.Enabled && c.Difficulty.MilestonePoints <= 0 {
		return ErrBadMilestone
	}
	if c.Obstacles.HighClearance <= c.Player.GroundZ || c.Obstacles.GapClearance <= c.Player.GroundZ {
		return ErrBadClearance
	}
	p := c.PowerUps
	if p.MagnetTicks < 0 || p.ShieldTicks < 0 || p.SpeedBoostTicks < 0 ||
		p.DoubleJumpTicks < 0 || p.CoinMultiplierTicks < 0 {
		return ErrBadPowerUpTime
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Session: RunnerSession{
			Lives:          5,
			BaseSpeed:      3.0,
			ReferenceRate:  60,
			SurvivalPoints: 0.2,
		},
		Player: RunnerPlayer{
			GroundZ:            20,
			LaneWidth:          100,
			LaneStep:           2,
			SnapDistance:       1,
			JumpVelocity:       25,
			DoubleJumpVelocity: 50,
			Gravity:            0.5,
			SlideTicks:         180,
		},
		Obstacles: RunnerObstacles{
			HitBox:          50,
			SlideClearance:  25,
			HighClearance:   70,
			HighBonusHeight: 60,
			GapClearance:    30,
		},
		PowerUps: RunnerPowerUps{
			MagnetTicks:         600, // 10 seconds at 60 FPS
			ShieldTicks:         300, // 5 seconds
			SpeedBoostTicks:     480, // 8 seconds
			DoubleJumpTicks:     900, // 15 seconds
			CoinMultiplierTicks: 600, // 10 seconds
			MagnetRange:         200,
			MagnetPull:          0.15,
			SpeedBoostFactor:    2.0,
			PickupHitBox:        40,
			FloatAmplitude:      10,
			FloatFrequency:      3,
		},
		Track: RunnerTrack{
			FirstObstacleAt: 100,
			FirstPowerUpAt:  800,
			ObstacleAhead:   1200,
			ObstacleGapMin:  400,
			ObstacleGapMax:  700,
			CoinOffsets:     []float64{800, 950, 1100},
			CoinHeight:      30,
			PowerUpAhead:    1000,
			PowerUpHeight:   30,
			PowerUpGapMin:   800,
			PowerUpGapMax:   1500,
			RetireBehind:    1200,
		},
		Scoring: RunnerScoring{
			Coin:           10,
			CoinMultiplied: 30,
			PowerUp:        50,
			SlideBonus:     150,
			HighBonus:      200,
			GapBonus:       250,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			MilestonePoints: 2500,
			SpeedStep:       0.1,
			MaxSpeed:        8.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

// RunnerConfig contains all tuning for the lane runner.
// Durations and per-step quantities are expressed in ticks of the
// reference rate (60 ticks per second).
type RunnerConfig struct {
	Session    RunnerSession    `yaml:"session"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	PowerUps   RunnerPowerUps   `yaml:"powerups"`
	Track      RunnerTrack      `yaml:"track"`
	Scoring    RunnerScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerSession defines the session globals a run starts with.
type RunnerSession struct {
	Lives          int     `yaml:"lives"`
	BaseSpeed      float64 `yaml:"base_speed"`
	ReferenceRate  float64 `yaml:"reference_rate"`  // Ticks per second that dt is normalized to
	SurvivalPoints float64 `yaml:"survival_points"` // Score trickle per tick
}

// RunnerPlayer defines movement and physics parameters for the player.
type RunnerPlayer struct {
	GroundZ            float64 `yaml:"ground_z"`
	LaneWidth          float64 `yaml:"lane_width"`
	LaneStep           float64 `yaml:"lane_step"`     // Units per tick while changing lanes
	SnapDistance       float64 `yaml:"snap_distance"` // Snap to target lane when this close
	JumpVelocity       float64 `yaml:"jump_velocity"`
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"`
	Gravity            float64 `yaml:"gravity"`
	SlideTicks         int     `yaml:"slide_ticks"`
}

// RunnerObstacles defines hit boxes and clearance heights for obstacles.
type RunnerObstacles struct {
	HitBox          float64 `yaml:"hit_box"`           // Half-extent on x and forward axes
	SlideClearance  float64 `yaml:"slide_clearance"`   // Max height while sliding under a low barrier
	HighClearance   float64 `yaml:"high_clearance"`    // Min height to clear a high barrier
	HighBonusHeight float64 `yaml:"high_bonus_height"` // Height above which clearing a high barrier pays
	GapClearance    float64 `yaml:"gap_clearance"`     // Min height to clear a gap and earn its bonus
}

// RunnerPowerUps defines power-up durations and effects.
type RunnerPowerUps struct {
	MagnetTicks         int     `yaml:"magnet_ticks"`
	ShieldTicks         int     `yaml:"shield_ticks"`
	SpeedBoostTicks     int     `yaml:"speed_boost_ticks"`
	DoubleJumpTicks     int     `yaml:"double_jump_ticks"`
	CoinMultiplierTicks int     `yaml:"coin_multiplier_ticks"`
	MagnetRange         float64 `yaml:"magnet_range"`
	MagnetPull          float64 `yaml:"magnet_pull"` // Fraction of the gap closed per tick
	SpeedBoostFactor    float64 `yaml:"speed_boost_factor"`
	PickupHitBox        float64 `yaml:"pickup_hit_box"`
	FloatAmplitude      float64 `yaml:"float_amplitude"`
	FloatFrequency      float64 `yaml:"float_frequency"` // Radians per second
}

// RunnerTrack defines procedural generation spacing.
type RunnerTrack struct {
	FirstObstacleAt float64   `yaml:"first_obstacle_at"`
	FirstPowerUpAt  float64   `yaml:"first_powerup_at"`
	ObstacleAhead   float64   `yaml:"obstacle_ahead"`
	ObstacleGapMin  int       `yaml:"obstacle_gap_min"`
	ObstacleGapMax  int       `yaml:"obstacle_gap_max"`
	CoinOffsets     []float64 `yaml:"coin_offsets"`
	CoinHeight      float64   `yaml:"coin_height"`
	PowerUpAhead    float64   `yaml:"powerup_ahead"`
	PowerUpHeight   float64   `yaml:"powerup_height"`
	PowerUpGapMin   int       `yaml:"powerup_gap_min"`
	PowerUpGapMax   int       `yaml:"powerup_gap_max"`
	RetireBehind    float64   `yaml:"retire_behind"`
}

// RunnerScoring defines point values.
type RunnerScoring struct {
	Coin           float64 `yaml:"coin"`
	CoinMultiplied float64 `yaml:"coin_multiplied"`
	PowerUp        float64 `yaml:"powerup"`
	SlideBonus     float64 `yaml:"slide_bonus"`
	HighBonus      float64 `yaml:"high_bonus"`
	GapBonus       float64 `yaml:"gap_bonus"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MilestonePoints float64 `yaml:"milestone_points"` // Score interval between speed steps
	SpeedStep       float64 `yaml:"speed_step"`
	MaxSpeed        float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Package sim is the lane runner simulation: player state machine, track
// generation, collision and scoring, and the session that ties them together.
// It has no rendering or terminal dependencies; hosts drive it with commands
// and Advance, and read it through Snapshot.
package sim

import "math"

// Lane bounds. Lanes are -1 (left), 0 (center) and 1 (right).
const (
	LaneLeft   = -1
	LaneCenter = 0
	LaneRight  = 1
)

// ObstacleKind selects how an obstacle must be cleared.
type ObstacleKind int

const (
	ObstacleLow  ObstacleKind = iota // Slide under
	ObstacleHigh                     // Jump high over
	ObstacleGap                      // Jump across
	obstacleKindCount
)

// String returns the name of the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleLow:
		return "low"
	case ObstacleHigh:
		return "high"
	case ObstacleGap:
		return "gap"
	default:
		return "unknown"
	}
}

// PowerUpKind identifies one of the five timed power-ups.
type PowerUpKind int

const (
	PowerUpMagnet PowerUpKind = iota
	PowerUpShield
	PowerUpSpeedBoost
	PowerUpDoubleJump
	PowerUpCoinMultiplier
	PowerUpCount // Sentinel for counting kinds
)

// String returns the display name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMagnet:
		return "MAGNET"
	case PowerUpShield:
		return "SHIELD"
	case PowerUpSpeedBoost:
		return "SPEED BOOST"
	case PowerUpDoubleJump:
		return "DOUBLE JUMP"
	case PowerUpCoinMultiplier:
		return "COIN x3"
	default:
		return "?"
	}
}

// Obstacle is a barrier placed in one lane.
type Obstacle struct {
	ID     int
	X      float64 // Lane center (lane * lane width)
	Y      float64 // World position along the track
	Kind   ObstacleKind
	Active bool // False once hit or cleared
}

// Coin is a collectible worth points.
type Coin struct {
	ID        int
	X         float64
	Y         float64
	Z         float64
	Rotation  float64 // Degrees, cosmetic
	Collected bool
}

// PowerUp is a collectible that starts a timed effect.
type PowerUp struct {
	ID          int
	X           float64
	Y           float64
	Z           float64
	Kind        PowerUpKind
	Rotation    float64 // Degrees, cosmetic
	FloatOffset float64 // Vertical bob added to Z
	Collected   bool
}

// within reports whether two points are closer than box on every axis.
func within(dx, dy, dz, box float64) bool {
	return math.Abs(dx) < box && math.Abs(dy) < box && math.Abs(dz) < box
}

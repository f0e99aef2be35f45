package sim

import "fmt"

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventObstacleCleared EventKind = iota
	EventLifeLost
	EventGameOver
	EventCoin
	EventPowerUp
	EventMilestone
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventObstacleCleared:
		return "cleared"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventCoin:
		return "coin"
	case EventPowerUp:
		return "powerup"
	case EventMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// Event is one entry of a tick's event feed.
type Event struct {
	Kind     EventKind
	Points   float64      // Score awarded, if any
	Obstacle ObstacleKind // For cleared, life lost and game over events
	PowerUp  PowerUpKind  // For power-up events
	Lives    int          // Lives left after the event
	Level    int          // Milestone reached, for milestone events
	Speed    float64      // Base speed after a milestone
	Reason   string
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventObstacleCleared:
		return fmt.Sprintf("cleared %s barrier (+%.0f)", e.Obstacle, e.Points)
	case EventLifeLost, EventGameOver:
		return e.Reason
	case EventCoin:
		return fmt.Sprintf("coin (+%.0f)", e.Points)
	case EventPowerUp:
		return fmt.Sprintf("%s activated", e.PowerUp)
	case EventMilestone:
		return fmt.Sprintf("milestone %d, speed %.1f", e.Level, e.Speed)
	default:
		return e.Kind.String()
	}
}

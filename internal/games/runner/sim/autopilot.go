package sim

import "math"

// Intent is the set of commands a controller wants issued this tick.
type Intent struct {
	Move  int // -1 left, 1 right, 0 stay
	Jump  bool
	Slide bool
}

// Apply issues the intent's commands to s.
func (in Intent) Apply(s *Session) {
	switch {
	case in.Move < 0:
		s.MoveLeft()
	case in.Move > 0:
		s.MoveRight()
	}
	if in.Jump {
		s.Jump()
	}
	if in.Slide {
		s.Slide()
	}
}

// Autopilot is a heuristic controller. It steers out of lanes with an
// obstacle ahead, preferring lanes with coins, and otherwise clears the
// obstacle in place by sliding or jumping.
type Autopilot struct {
	DodgeTicks int // Start looking for a free lane this many ticks ahead
	ActTicks   int // Slide or jump once an obstacle is this close, in ticks
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() Autopilot {
	return Autopilot{DodgeTicks: 90, ActTicks: 40}
}

// Decide picks the commands for the next tick from a snapshot.
func (a Autopilot) Decide(snap Snapshot) Intent {
	if snap.State != StatePlaying {
		return Intent{}
	}
	p := snap.Player
	perTick := math.Max(snap.EffectiveSpeed, 1)
	dodge := perTick * float64(a.DodgeTicks)
	act := perTick * float64(a.ActTicks)

	threat, ahead := a.nearestThreat(snap, p.Lane, dodge)
	if threat == nil {
		if !p.ChangingLane {
			return Intent{Move: a.coinLane(snap, dodge)}
		}
		return Intent{}
	}

	if !p.ChangingLane {
		if move := a.freeLane(snap, p.Lane, dodge); move != 0 {
			return Intent{Move: move}
		}
	}

	if ahead > act {
		return Intent{}
	}
	if threat.Kind == ObstacleLow {
		return Intent{Slide: true}
	}
	return Intent{Jump: true}
}

// nearestThreat returns the closest active obstacle in lane within reach
// and how far ahead it is.
func (a Autopilot) nearestThreat(snap Snapshot, lane int, reach float64) (*Obstacle, float64) {
	var best *Obstacle
	bestAhead := math.Inf(1)
	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		if !o.Active || laneOf(o.X, snap.LaneWidth) != lane {
			continue
		}
		ahead := o.Y - snap.Distance
		if ahead < -snap.LaneWidth/2 || ahead > reach {
			continue
		}
		if ahead < bestAhead {
			best, bestAhead = o, ahead
		}
	}
	return best, bestAhead
}

// freeLane returns the direction of an adjacent lane with no obstacle within
// reach, preferring one with coins, or 0 if both are blocked.
func (a Autopilot) freeLane(snap Snapshot, lane int, reach float64) int {
	best, bestCoins := 0, -1
	for _, dir := range []int{-1, 1} {
		l := lane + dir
		if l < LaneLeft || l > LaneRight {
			continue
		}
		if o, _ := a.nearestThreat(snap, l, reach); o != nil {
			continue
		}
		if n := coinsAhead(snap, l, reach); n > bestCoins {
			best, bestCoins = dir, n
		}
	}
	return best
}

// coinLane returns the direction of an adjacent safe lane holding more coins
// than the current one, or 0.
func (a Autopilot) coinLane(snap Snapshot, reach float64) int {
	lane := snap.Player.Lane
	here := coinsAhead(snap, lane, reach)
	best, bestCoins := 0, here
	for _, dir := range []int{-1, 1} {
		l := lane + dir
		if l < LaneLeft || l > LaneRight {
			continue
		}
		if o, _ := a.nearestThreat(snap, l, reach); o != nil {
			continue
		}
		if n := coinsAhead(snap, l, reach); n > bestCoins {
			best, bestCoins = dir, n
		}
	}
	return best
}

func coinsAhead(snap Snapshot, lane int, reach float64) int {
	n := 0
	for _, c := range snap.Coins {
		if c.Collected || laneOf(c.X, snap.LaneWidth) != lane {
			continue
		}
		if ahead := c.Y - snap.Distance; ahead > 0 && ahead <= reach {
			n++
		}
	}
	return n
}

// laneOf maps an x position to the nearest lane.
func laneOf(x, laneWidth float64) int {
	if laneWidth <= 0 {
		return LaneCenter
	}
	l := int(math.Round(x / laneWidth))
	if l < LaneLeft {
		return LaneLeft
	}
	if l > LaneRight {
		return LaneRight
	}
	return l
}

package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// World holds the live entity sets of a run.
type World struct {
	Obstacles []Obstacle
	Coins     []Coin
	PowerUps  []PowerUp
	nextID    int
}

// Clear removes every entity and restarts ID assignment.
func (w *World) Clear() {
	w.Obstacles = w.Obstacles[:0]
	w.Coins = w.Coins[:0]
	w.PowerUps = w.PowerUps[:0]
	w.nextID = 0
}

func (w *World) id() int {
	w.nextID++
	return w.nextID
}

// Prune drops every entity whose spawn position is more than behind units
// behind distance, whether or not it was collected or resolved.
func (w *World) Prune(distance, behind float64) {
	limit := distance - behind

	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Y >= limit {
			obstacles = append(obstacles, o)
		}
	}
	w.Obstacles = obstacles

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		if c.Y >= limit {
			coins = append(coins, c)
		}
	}
	w.Coins = coins

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if p.Y >= limit {
			powerUps = append(powerUps, p)
		}
	}
	w.PowerUps = powerUps
}

// TrackGenerator places obstacles, coins and power-ups ahead of the player
// as distance grows.
type TrackGenerator struct {
	rng          *rand.Rand
	cfg          *config.RunnerTrack
	laneWidth    float64
	nextObstacle float64 // Distance past which the next obstacle spawns
	nextPowerUp  float64 // Distance past which the next power-up spawns
}

// NewTrackGenerator creates a generator with the given RNG seed.
func NewTrackGenerator(seed int64, cfg *config.RunnerConfig) *TrackGenerator {
	tg := &TrackGenerator{}
	tg.UpdateConfig(cfg)
	tg.Reset(seed)
	return tg
}

// UpdateConfig rebinds the generator to new tuning. Thresholds are kept.
func (tg *TrackGenerator) UpdateConfig(cfg *config.RunnerConfig) {
	tg.cfg = &cfg.Track
	tg.laneWidth = cfg.Player.LaneWidth
}

// Reset reseeds the RNG and restores the initial spawn thresholds.
func (tg *TrackGenerator) Reset(seed int64) {
	tg.rng = rand.New(rand.NewSource(seed))
	tg.nextObstacle = tg.cfg.FirstObstacleAt
	tg.nextPowerUp = tg.cfg.FirstPowerUpAt
}

// NextObstacle returns the distance that triggers the next obstacle.
func (tg *TrackGenerator) NextObstacle() float64 {
	return tg.nextObstacle
}

// NextPowerUp returns the distance that triggers the next power-up.
func (tg *TrackGenerator) NextPowerUp() float64 {
	return tg.nextPowerUp
}

// Generate spawns whatever is due at distance into w.
// At most one obstacle group and one power-up are placed per call.
func (tg *TrackGenerator) Generate(distance float64, w *World) {
	if distance > tg.nextObstacle {
		tg.spawnObstacle(distance, w)
		tg.nextObstacle = distance + float64(tg.between(tg.cfg.ObstacleGapMin, tg.cfg.ObstacleGapMax))
	}
	if distance > tg.nextPowerUp {
		tg.spawnPowerUp(distance, w)
		tg.nextPowerUp = distance + float64(tg.between(tg.cfg.PowerUpGapMin, tg.cfg.PowerUpGapMax))
	}
}

// spawnObstacle places one obstacle and the coins that go with it.
func (tg *TrackGenerator) spawnObstacle(distance float64, w *World) {
	lane := tg.lane()
	w.Obstacles = append(w.Obstacles, Obstacle{
		ID:     w.id(),
		X:      tg.laneX(lane),
		Y:      distance + tg.cfg.ObstacleAhead,
		Kind:   ObstacleKind(tg.rng.Intn(int(obstacleKindCount))),
		Active: true,
	})

	// Coins go in either of the two lanes the obstacle does not block
	free := make([]int, 0, 2)
	for l := LaneLeft; l <= LaneRight; l++ {
		if l != lane {
			free = append(free, l)
		}
	}
	for _, offset := range tg.cfg.CoinOffsets {
		w.Coins = append(w.Coins, Coin{
			ID: w.id(),
			X:  tg.laneX(free[tg.rng.Intn(len(free))]),
			Y:  distance + offset,
			Z:  tg.cfg.CoinHeight,
		})
	}
}

func (tg *TrackGenerator) spawnPowerUp(distance float64, w *World) {
	lane := tg.lane()
	w.PowerUps = append(w.PowerUps, PowerUp{
		ID:   w.id(),
		X:    tg.laneX(lane),
		Y:    distance + tg.cfg.PowerUpAhead,
		Z:    tg.cfg.PowerUpHeight,
		Kind: PowerUpKind(tg.rng.Intn(int(PowerUpCount))),
	})
}

// lane returns a uniformly random lane.
func (tg *TrackGenerator) lane() int {
	return LaneLeft + tg.rng.Intn(LaneRight-LaneLeft+1)
}

func (tg *TrackGenerator) laneX(lane int) float64 {
	return float64(lane) * tg.laneWidth
}

// between returns a uniformly random integer in [lo, hi].
func (tg *TrackGenerator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + tg.rng.Intn(hi-lo+1)
}

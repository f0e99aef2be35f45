package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// playingSession returns a session mid-run, far enough along that the
// spawn thresholds are behind it.
func playingSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultRunnerConfig(), 1)
	s.StartOrReset()
	if s.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", s.State())
	}
	s.distance = 5000
	return s
}

func placeObstacle(s *Session, kind ObstacleKind) *Obstacle {
	s.world.Obstacles = append(s.world.Obstacles, Obstacle{
		ID:     900,
		X:      s.player.X,
		Y:      s.distance + 10,
		Kind:   kind,
		Active: true,
	})
	return &s.world.Obstacles[len(s.world.Obstacles)-1]
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		kind    ObstacleKind
		sliding bool
		z       float64
		cause   string
		bonus   float64
	}{
		{"low standing", ObstacleLow, false, 20, reasonLowNoSlide, 0},
		{"low sliding", ObstacleLow, true, 20, "", 150},
		{"low sliding too high", ObstacleLow, true, 26, reasonLowTooHigh, 0},
		{"low jumping", ObstacleLow, false, 100, reasonLowNoSlide, 0},
		{"high grounded", ObstacleHigh, false, 20, reasonHighTooLow, 0},
		{"high below clearance", ObstacleHigh, false, 69, reasonHighTooLow, 0},
		{"high at clearance", ObstacleHigh, false, 70, "", 200},
		{"high well over", ObstacleHigh, false, 300, "", 200},
		{"gap grounded", ObstacleGap, false, 20, reasonGapTooLow, 0},
		{"gap at clearance", ObstacleGap, false, 30, "", 0},
		{"gap over", ObstacleGap, false, 31, "", 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingSession(t)
			s.player.Sliding = tt.sliding
			s.player.Z = tt.z
			s.player.Jumping = tt.z > 20

			cause, bonus := s.classify(tt.kind)
			if cause != tt.cause {
				t.Errorf("cause: got %q, expected %q", cause, tt.cause)
			}
			if bonus != tt.bonus {
				t.Errorf("bonus: got %f, expected %f", bonus, tt.bonus)
			}
		})
	}
}

func TestSlideUnderLowObstacle(t *testing.T) {
	s := playingSession(t)
	s.player.Slide()
	o := placeObstacle(s, ObstacleLow)

	if over := s.collideObstacles(); over {
		t.Fatal("clearing an obstacle should not end the run")
	}
	if s.score != 150 {
		t.Errorf("score: got %f, expected 150", s.score)
	}
	if o.Active {
		t.Error("cleared obstacle should become inactive")
	}
	if s.lives != 5 {
		t.Errorf("lives: got %d, expected 5", s.lives)
	}
	if len(s.events) != 1 || s.events[0].Kind != EventObstacleCleared {
		t.Errorf("expected one cleared event, got %+v", s.events)
	}
}

func TestHitLowObstacleCostsLife(t *testing.T) {
	s := playingSession(t)
	o := placeObstacle(s, ObstacleLow)

	s.collideObstacles()

	if s.lives != 4 {
		t.Errorf("lives: got %d, expected 4", s.lives)
	}
	if o.Active {
		t.Error("hit obstacle should become inactive")
	}
	if s.State() != StatePlaying {
		t.Errorf("state: got %s, expected playing", s.State())
	}
	if s.reason != "Life lost! 4 lives remaining" {
		t.Errorf("reason: got %q", s.reason)
	}
	if len(s.events) != 1 || s.events[0].Kind != EventLifeLost || s.events[0].Reason != reasonLowNoSlide {
		t.Errorf("expected one life-lost event, got %+v", s.events)
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	s := playingSession(t)
	s.lives = 1
	placeObstacle(s, ObstacleLow)

	if over := s.collideObstacles(); !over {
		t.Fatal("losing the last life should end the run")
	}
	if s.lives != 0 {
		t.Errorf("lives: got %d, expected 0", s.lives)
	}
	if s.State() != StateGameOver {
		t.Errorf("state: got %s, expected game_over", s.State())
	}
	if s.reason != reasonLowNoSlide {
		t.Errorf("reason: got %q, expected %q", s.reason, reasonLowNoSlide)
	}
}

func TestLifeLostSoftResetsPlayer(t *testing.T) {
	s := playingSession(t)
	s.player.Jump()
	s.player.Update()
	placeObstacle(s, ObstacleHigh)

	s.collideObstacles()

	if s.lives != 4 {
		t.Fatalf("lives: got %d, expected 4", s.lives)
	}
	if s.player.Jumping || s.player.Z != 20 || s.player.JumpVelocity != 0 {
		t.Errorf("player should be back on the ground, jumping=%v Z=%f v=%f",
			s.player.Jumping, s.player.Z, s.player.JumpVelocity)
	}
}

func TestShieldSkipsObstacles(t *testing.T) {
	for _, kind := range []ObstacleKind{ObstacleLow, ObstacleHigh, ObstacleGap} {
		t.Run(kind.String(), func(t *testing.T) {
			s := playingSession(t)
			s.player.ActivatePowerUp(PowerUpShield)
			o := placeObstacle(s, kind)

			s.collideObstacles()

			if s.lives != 5 {
				t.Errorf("lives: got %d, expected 5", s.lives)
			}
			if !o.Active {
				t.Error("obstacle should be untouched while shielded")
			}
			if s.score != 0 {
				t.Errorf("score: got %f, expected 0", s.score)
			}
		})
	}
}

func TestObstacleOutsideBox(t *testing.T) {
	s := playingSession(t)
	o := placeObstacle(s, ObstacleLow)
	o.Y = s.distance + 50

	s.collideObstacles()
	if !o.Active || s.lives != 5 {
		t.Error("obstacle 50 units ahead should not be reached yet")
	}

	o.Y = s.distance
	o.X = 50
	s.collideObstacles()
	if !o.Active || s.lives != 5 {
		t.Error("obstacle 50 units to the side should not be reached")
	}
}

func TestCollectCoin(t *testing.T) {
	tests := []struct {
		name       string
		multiplier bool
		expected   float64
	}{
		{"plain", false, 10},
		{"multiplied", true, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingSession(t)
			if tt.multiplier {
				s.player.ActivatePowerUp(PowerUpCoinMultiplier)
			}
			s.world.Coins = []Coin{{ID: 1, X: 0, Y: s.distance + 20, Z: 30}}

			s.collectCoins()

			if s.score != tt.expected {
				t.Errorf("score: got %f, expected %f", s.score, tt.expected)
			}
			if s.coins != 1 {
				t.Errorf("coins: got %d, expected 1", s.coins)
			}
			if !s.world.Coins[0].Collected {
				t.Error("coin should be collected")
			}

			s.collectCoins()
			if s.coins != 1 {
				t.Error("a coin should only be collected once")
			}
		})
	}
}

func TestCoinOutOfReach(t *testing.T) {
	s := playingSession(t)
	s.player.Z = 100
	s.player.Jumping = true
	s.world.Coins = []Coin{{ID: 1, X: 0, Y: s.distance, Z: 30}}

	s.collectCoins()
	if s.coins != 0 || s.world.Coins[0].Collected {
		t.Error("coin 70 units below the player should not be collected")
	}
}

func TestCollectPowerUp(t *testing.T) {
	s := playingSession(t)
	s.world.PowerUps = []PowerUp{{ID: 1, X: 0, Y: s.distance, Z: 30, Kind: PowerUpMagnet}}

	s.collectPowerUps()

	if !s.world.PowerUps[0].Collected {
		t.Fatal("power-up should be collected")
	}
	if got := s.player.Timer(PowerUpMagnet); got != 600 {
		t.Errorf("magnet timer: got %d, expected 600", got)
	}
	if s.score != 50 {
		t.Errorf("score: got %f, expected 50", s.score)
	}
}

func TestPowerUpFloatOffsetCounts(t *testing.T) {
	s := playingSession(t)
	s.world.PowerUps = []PowerUp{{ID: 1, X: 0, Y: s.distance, Z: 30, FloatOffset: 35, Kind: PowerUpShield}}

	s.collectPowerUps()
	if s.world.PowerUps[0].Collected {
		t.Error("power-up floating 45 units above the player should be missed")
	}
}

func TestMagnetPullsCoins(t *testing.T) {
	s := playingSession(t)
	s.player.ActivatePowerUp(PowerUpMagnet)
	s.world.Coins = []Coin{
		{ID: 1, X: 100, Y: s.distance + 100, Z: 30},
		{ID: 2, X: 100, Y: s.distance + 500, Z: 30},
	}

	s.pullCoins()

	near := s.world.Coins[0]
	if math.Abs(near.X-85) > 1e-9 || math.Abs(near.Y-(s.distance+85)) > 1e-9 {
		t.Errorf("near coin should move 15%% closer, got X=%f Y=%f", near.X, near.Y-s.distance)
	}
	far := s.world.Coins[1]
	if far.X != 100 || far.Y != s.distance+500 {
		t.Error("coin out of magnet range should not move")
	}
}

func TestNoPullWithoutMagnet(t *testing.T) {
	s := playingSession(t)
	s.world.Coins = []Coin{{ID: 1, X: 100, Y: s.distance + 100, Z: 30}}

	s.pullCoins()
	if s.world.Coins[0].X != 100 {
		t.Error("coins should not move without a magnet")
	}
}

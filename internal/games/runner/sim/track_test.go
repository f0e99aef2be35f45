package sim

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestTrack(seed int64) *TrackGenerator {
	cfg := config.DefaultRunnerConfig()
	return NewTrackGenerator(seed, &cfg)
}

func TestTrackInitialThresholds(t *testing.T) {
	tg := newTestTrack(1)

	if tg.NextObstacle() != 100 {
		t.Errorf("NextObstacle: got %f, expected 100", tg.NextObstacle())
	}
	if tg.NextPowerUp() != 800 {
		t.Errorf("NextPowerUp: got %f, expected 800", tg.NextPowerUp())
	}

	var w World
	tg.Generate(100, &w)
	if len(w.Obstacles) != 0 || len(w.PowerUps) != 0 {
		t.Error("nothing should spawn until distance exceeds the threshold")
	}
}

func TestTrackSpawnsObstacleGroup(t *testing.T) {
	tg := newTestTrack(1)
	var w World

	tg.Generate(101, &w)

	if len(w.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(w.Obstacles))
	}
	o := w.Obstacles[0]
	if o.Y != 1301 {
		t.Errorf("obstacle Y: got %f, expected 1301", o.Y)
	}
	if !o.Active {
		t.Error("new obstacle should be active")
	}
	if o.Kind < ObstacleLow || o.Kind > ObstacleGap {
		t.Errorf("unexpected kind %d", o.Kind)
	}

	if len(w.Coins) != 3 {
		t.Fatalf("expected 3 coins, got %d", len(w.Coins))
	}
	expectedY := []float64{901, 1051, 1201}
	for i, c := range w.Coins {
		if c.Y != expectedY[i] {
			t.Errorf("coin %d Y: got %f, expected %f", i, c.Y, expectedY[i])
		}
		if c.Z != 30 {
			t.Errorf("coin %d Z: got %f, expected 30", i, c.Z)
		}
		if c.X == o.X {
			t.Errorf("coin %d shares the obstacle lane", i)
		}
	}

	next := tg.NextObstacle()
	if next < 501 || next > 801 {
		t.Errorf("next obstacle threshold %f outside [501, 801]", next)
	}
	if len(w.PowerUps) != 0 {
		t.Error("power-up should not spawn before 800")
	}
}

func TestTrackSpawnsPowerUp(t *testing.T) {
	tg := newTestTrack(3)
	var w World

	tg.Generate(801, &w)

	if len(w.PowerUps) != 1 {
		t.Fatalf("expected 1 power-up, got %d", len(w.PowerUps))
	}
	pu := w.PowerUps[0]
	if pu.Y != 1801 {
		t.Errorf("power-up Y: got %f, expected 1801", pu.Y)
	}
	if pu.Kind < 0 || pu.Kind >= PowerUpCount {
		t.Errorf("unexpected kind %d", pu.Kind)
	}
	next := tg.NextPowerUp()
	if next < 1601 || next > 2301 {
		t.Errorf("next power-up threshold %f outside [1601, 2301]", next)
	}
}

func TestTrackCoinsAvoidObstacleLane(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		tg := newTestTrack(seed)
		var w World

		for d := 0.0; d < 50000; d += 3 {
			before := len(w.Obstacles)
			coins := len(w.Coins)
			tg.Generate(d, &w)
			if len(w.Obstacles) == before {
				continue
			}
			o := w.Obstacles[len(w.Obstacles)-1]
			for _, c := range w.Coins[coins:] {
				if c.X == o.X {
					t.Fatalf("seed %d distance %f: coin in obstacle lane %f", seed, d, o.X)
				}
				if c.X != -100 && c.X != 0 && c.X != 100 {
					t.Fatalf("seed %d: coin X %f is not a lane center", seed, c.X)
				}
			}
		}
	}
}

func TestTrackDeterminism(t *testing.T) {
	a, b := newTestTrack(99), newTestTrack(99)
	var wa, wb World

	for d := 0.0; d < 20000; d += 3 {
		a.Generate(d, &wa)
		b.Generate(d, &wb)
	}

	if len(wa.Obstacles) != len(wb.Obstacles) || len(wa.Coins) != len(wb.Coins) || len(wa.PowerUps) != len(wb.PowerUps) {
		t.Fatal("same seed produced different entity counts")
	}
	for i := range wa.Obstacles {
		if wa.Obstacles[i] != wb.Obstacles[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, wa.Obstacles[i], wb.Obstacles[i])
		}
	}
	for i := range wa.PowerUps {
		if wa.PowerUps[i] != wb.PowerUps[i] {
			t.Fatalf("power-up %d differs: %+v vs %+v", i, wa.PowerUps[i], wb.PowerUps[i])
		}
	}
}

func TestTrackReset(t *testing.T) {
	tg := newTestTrack(5)
	var w World
	tg.Generate(5000, &w)

	tg.Reset(5)
	if tg.NextObstacle() != 100 || tg.NextPowerUp() != 800 {
		t.Errorf("Reset should restore thresholds, got %f/%f", tg.NextObstacle(), tg.NextPowerUp())
	}
}

func TestWorldPrune(t *testing.T) {
	w := World{
		Obstacles: []Obstacle{
			{ID: 1, Y: 100, Active: true},
			{ID: 2, Y: 900, Active: false},
			{ID: 3, Y: 1500, Active: true},
		},
		Coins: []Coin{
			{ID: 4, Y: 50, Collected: true},
			{ID: 5, Y: 50},
			{ID: 6, Y: 2000},
		},
		PowerUps: []PowerUp{
			{ID: 7, Y: 10},
			{ID: 8, Y: 1000, Collected: true},
		},
	}

	w.Prune(2000, 1200)

	if len(w.Obstacles) != 2 || w.Obstacles[0].ID != 2 || w.Obstacles[1].ID != 3 {
		t.Errorf("obstacles after prune: %+v", w.Obstacles)
	}
	if len(w.Coins) != 1 || w.Coins[0].ID != 6 {
		t.Errorf("coins after prune: %+v", w.Coins)
	}
	if len(w.PowerUps) != 1 || w.PowerUps[0].ID != 8 {
		t.Errorf("power-ups after prune: %+v", w.PowerUps)
	}
}

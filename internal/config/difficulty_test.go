package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:         true,
		MilestonePoints: 2500,
		SpeedStep:       0.1,
		MaxSpeed:        3.25,
	}
}

func TestDifficultyMilestones(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score    float64
		speed    float64
		stepped  bool
		reached  int
		nextGoal float64
	}{
		{0, 3.0, false, 0, 2500},
		{2499.8, 3.0, false, 0, 2500},
		{2500, 3.1, true, 1, 5000},
		{2600, 3.1, false, 1, 5000},
		{5000.2, 3.2, true, 2, 7500},
		{12600, 3.25, true, 5, 15000}, // Several at once pay one capped step
	}

	speed := 3.0
	for _, tt := range tests {
		var stepped bool
		speed, stepped = d.Speed(speed, tt.score)
		if stepped != tt.stepped || math.Abs(speed-tt.speed) > 1e-9 {
			t.Errorf("score %.1f: got speed %.2f stepped %v, expected %.2f %v",
				tt.score, speed, stepped, tt.speed, tt.stepped)
		}
		if d.LastMilestone() != tt.reached {
			t.Errorf("score %.1f: milestone %d, expected %d", tt.score, d.LastMilestone(), tt.reached)
		}
		if got := d.NextMilestoneScore(tt.score); got != tt.nextGoal {
			t.Errorf("score %.1f: next milestone %.0f, expected %.0f", tt.score, got, tt.nextGoal)
		}
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	d.Speed(3, 5000)
	d.Reset()

	if d.LastMilestone() != 0 {
		t.Errorf("milestone after reset: got %d, expected 0", d.LastMilestone())
	}
	if _, stepped := d.Speed(3, 2500); !stepped {
		t.Error("milestones should pay again after reset")
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("expected disabled")
	}
	if speed, stepped := d.Speed(3, 100000); stepped || speed != 3 {
		t.Errorf("disabled manager changed speed to %.2f", speed)
	}
}

package config

import "math"

// DifficultyManager steps the base speed up as score crosses milestones.
// Each milestone is paid out at most once per run.
type DifficultyManager struct {
	cfg           DifficultyConfig
	lastMilestone int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.MilestonePoints > 0
}

// Reset forgets all milestones reached.
func (d *DifficultyManager) Reset() {
	d.lastMilestone = 0
}

// Milestone returns the number of whole milestones contained in score.
func (d *DifficultyManager) Milestone(score float64) int {
	if d.cfg.MilestonePoints <= 0 || score <= 0 {
		return 0
	}
	return int(math.Floor(score / d.cfg.MilestonePoints))
}

// LastMilestone returns the highest milestone already paid out.
func (d *DifficultyManager) LastMilestone() int {
	return d.lastMilestone
}

// NextMilestoneScore returns the score at which the next milestone is reached.
func (d *DifficultyManager) NextMilestoneScore(score float64) float64 {
	return float64(d.Milestone(score)+1) * d.cfg.MilestonePoints
}

// Speed returns the base speed after accounting for a score update.
// When score has crossed a milestone not yet paid out, speed grows by one
// step (capped at MaxSpeed) and the milestone is recorded; the second return
// value reports whether that happened. Crossing several milestones in one
// call still pays a single step.
func (d *DifficultyManager) Speed(speed, score float64) (float64, bool) {
	if !d.IsEnabled() {
		return speed, false
	}
	m := d.Milestone(score)
	if m <= d.lastMilestone {
		return speed, false
	}
	d.lastMilestone = m
	return math.Min(speed+d.cfg.SpeedStep, d.cfg.MaxSpeed), true
}

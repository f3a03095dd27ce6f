package config

import "math"

// DifficultyManager scales per-level parameters with level progress.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager returns a manager for the given settings.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether any progression applies.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level maps a level index onto [0, 1]. It reaches 1 at Progression.MaxAt
// and is 0 unless progression is enabled with type "level".
func (d *DifficultyManager) Level(levelIndex int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return 0
	}
	maxAt := max(float64(d.cfg.Progression.MaxAt), 1)
	return min(max(float64(levelIndex)/maxAt, 0), 1)
}

// EnemySpeed scales base by 1 + Level*SpeedMultiplier, rounded.
func (d *DifficultyManager) EnemySpeed(base, levelIndex int) int {
	scale := 1 + d.Level(levelIndex)*d.cfg.Scaling.SpeedMultiplier
	return int(math.Round(float64(base) * scale))
}

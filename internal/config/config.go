// Package config provides YAML-based game configuration loading and
// difficulty management for Coin Quest.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Hero       HeroConfig       `yaml:"hero"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Coin       CoinConfig       `yaml:"coin"`
	Timers     TimerConfig      `yaml:"timers"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Padding     int `yaml:"padding"`      // Hero keeps this distance from every screen edge
	SpawnOffset int `yaml:"spawn_offset"` // Hero spawns this far above the bottom edge
}

// HeroConfig defines the player character.
type HeroConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	SpeedX     int `yaml:"speed_x"`
	SpeedY     int `yaml:"speed_y"`
	Lives      int `yaml:"lives"`
	AnimEvery  int `yaml:"anim_every"` // Ticks between idle frames
	KnockbackX int `yaml:"knockback_x"`
	KnockbackY int `yaml:"knockback_y"`
}

// EnemyConfig defines patrolling enemies.
type EnemyConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Speed     int `yaml:"speed"`
	Margin    int `yaml:"margin"`     // Spawn inset from each platform end
	AnimEvery int `yaml:"anim_every"` // Ticks between patrol frames
}

// CoinConfig defines coin size and spawn de-confliction.
type CoinConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	NudgeAttempts int `yaml:"nudge_attempts"`
	EdgeInset     int `yaml:"edge_inset"`
}

// TimerConfig defines how long temporary hero poses last.
type TimerConfig struct {
	CollectSeconds float64 `yaml:"collect_seconds"`
	PainSeconds    float64 `yaml:"pain_seconds"`
}

// AudioConfig defines sound defaults.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Music       string  `yaml:"music"`
	MusicVolume float64 `yaml:"music_volume"` // 0.0 - 1.0
	SampleRate  int     `yaml:"sample_rate"`
}

// DifficultyConfig defines how enemy speed grows across levels.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that sizes and speeds are usable.
func (c GameConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"world size", c.World.Width > 0 && c.World.Height > 0},
		{"world padding", c.World.Padding >= 0},
		{"hero size", c.Hero.Width > 0 && c.Hero.Height > 0},
		{"hero lives", c.Hero.Lives > 0},
		{"hero anim_every", c.Hero.AnimEvery > 0},
		{"enemy size", c.Enemy.Width > 0 && c.Enemy.Height > 0},
		{"enemy speed", c.Enemy.Speed >= 0},
		{"enemy anim_every", c.Enemy.AnimEvery > 0},
		{"coin size", c.Coin.Width > 0 && c.Coin.Height > 0},
		{"coin nudge_attempts", c.Coin.NudgeAttempts >= 0},
		{"audio music_volume", c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: bad %s", ErrInvalidConfig, check.name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hero.Lives = 5
		cfg.Enemy.Speed = 1
		cfg.Difficulty.Enabled = false
	case DifficultyHard:
		cfg.Hero.Lives = 2
		cfg.Enemy.Speed = 3
		cfg.Difficulty.Enabled = true
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:       550,
			Height:      700,
			Padding:     10,
			SpawnOffset: 100,
		},
		Hero: HeroConfig{
			Width:      32,
			Height:     48,
			SpeedX:     5,
			SpeedY:     5,
			Lives:      3,
			AnimEvery:  20,
			KnockbackX: 40,
			KnockbackY: 20,
		},
		Enemy: EnemyConfig{
			Width:     40,
			Height:    32,
			Speed:     2,
			Margin:    5,
			AnimEvery: 15,
		},
		Coin: CoinConfig{
			Width:         20,
			Height:        20,
			NudgeAttempts: 8,
			EdgeInset:     5,
		},
		Timers: TimerConfig{
			CollectSeconds: 0.5,
			PainSeconds:    0.5,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Music:       "bg_music",
			MusicVolume: 0.5,
			SampleRate:  44100,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

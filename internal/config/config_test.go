package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded defaults drifted from DefaultGameConfig():\n got %+v\nwant %+v", cfg, DefaultGameConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("hero:\n  lives: 7\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Hero.Lives != 7 {
		t.Errorf("Hero.Lives = %d, expected 7", cfg.Hero.Lives)
	}
	if cfg.Hero.SpeedX != 5 {
		t.Errorf("Hero.SpeedX = %d, expected default 5", cfg.Hero.SpeedX)
	}
	if cfg.World.Width != 550 {
		t.Errorf("World.Width = %d, expected default 550", cfg.World.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "world:\n  width: 0\n"},
		{"no lives", "hero:\n  lives: 0\n"},
		{"negative enemy speed", "enemy:\n  speed: -1\n"},
		{"loud music", "audio:\n  music_volume: 1.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse(%q) error = %v, expected ErrInvalidConfig", tc.yaml, err)
			}
		})
	}

	if _, err := Parse([]byte("hero: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Enemy.Speed != 4 {
		t.Errorf("Enemy.Speed = %d, expected 4", cfg.Enemy.Speed)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Hero.Lives != 3 {
		t.Errorf("expected embedded default lives 3, got %d", cfg.Hero.Lives)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "config.yaml"), []byte("hero:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Hero.Lives != 4 {
		t.Errorf("expected local config lives 4, got %d", cfg.Hero.Lives)
	}

	// User config wins over local
	if err := os.MkdirAll(filepath.Join(home, ".coinquest"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".coinquest", "config.yaml"), []byte("hero:\n  lives: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Hero.Lives != 6 {
		t.Errorf("expected user config lives 6, got %d", cfg.Hero.Lives)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		enemySpeed int
	}{
		{DifficultyEasy, 5, 1},
		{DifficultyNormal, 3, 2},
		{DifficultyHard, 2, 3},
		{"", 3, 2},
	}

	for _, tc := range tests {
		cfg := DefaultGameConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Hero.Lives != tc.lives || cfg.Enemy.Speed != tc.enemySpeed {
			t.Errorf("preset %q: lives=%d speed=%d, expected %d/%d",
				tc.preset, cfg.Hero.Lives, cfg.Enemy.Speed, tc.lives, tc.enemySpeed)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse as empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultGameConfig().Difficulty

	off := NewDifficultyManager(cfg)
	if off.IsEnabled() {
		t.Error("default difficulty progression should be disabled")
	}
	if got := off.EnemySpeed(2, 3); got != 2 {
		t.Errorf("disabled manager EnemySpeed = %d, expected 2", got)
	}

	cfg.Enabled = true
	on := NewDifficultyManager(cfg)
	tests := []struct {
		level    int
		expected int
	}{
		{0, 2},
		{2, 3},
		{4, 4},
		{10, 4}, // clamped at max
	}
	for _, tc := range tests {
		if got := on.EnemySpeed(2, tc.level); got != tc.expected {
			t.Errorf("EnemySpeed(2, %d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}

	cfg.Progression.Type = "none"
	if NewDifficultyManager(cfg).IsEnabled() {
		t.Error("progression type none should disable the manager")
	}
}

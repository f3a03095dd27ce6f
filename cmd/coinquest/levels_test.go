package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coin-quest/internal/catalog"
)

func TestExportFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		out     string
		want    catalog.Format
		wantErr bool
	}{
		{"default is json", "", "", catalog.FormatJSON, false},
		{"explicit yaml", "yaml", "", catalog.FormatYAML, false},
		{"flag wins over extension", "json", "levels.yaml", catalog.FormatJSON, false},
		{"from extension", "", "levels.yml", catalog.FormatYAML, false},
		{"bad flag", "toml", "", "", true},
		{"bad extension", "", "levels.txt", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exportFormat(tt.format, tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevelTable(t *testing.T) {
	out := levelTable(catalog.Builtin())
	for _, want := range []string{"NAME", "Meadow", "Caverns", "Summit"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestLoadGameConfigRejectsUnknownPreset(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	flagDifficulty = "brutal"
	defer func() { flagDifficulty = "" }()

	if _, err := loadGameConfig(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestLoadGameConfigMute(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	flagMute = true
	flagDifficulty = "easy"
	defer func() {
		flagMute = false
		flagDifficulty = ""
	}()

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Audio.Enabled {
		t.Error("mute did not disable audio")
	}
	if cfg.Hero.Lives != 5 {
		t.Errorf("easy preset lives = %d, want 5", cfg.Hero.Lives)
	}
}

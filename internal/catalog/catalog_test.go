package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuiltinIsValid(t *testing.T) {
	c := Builtin()
	if err := Validate(c); err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	if c.Len() < 2 {
		t.Errorf("expected several builtin levels, got %d", c.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			original := Builtin()

			data, err := Encode(original, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := Decode(data, format)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(original, decoded) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
			}
		})
	}
}

func TestDecodeAppliesPlatformDefaults(t *testing.T) {
	data := []byte(`{"levels":[{"name":"tiny","platforms":[{"x":10,"y":20}],"coins":[{"x":5,"y":5}],"enemies":[{"sprite":"enemy1","platform":0}]}]}`)

	c, err := Decode(data, FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	p := c.Levels[0].Platforms[0]
	if p.W != DefaultPlatformW || p.H != DefaultPlatformH {
		t.Errorf("platform size = %dx%d, expected %dx%d", p.W, p.H, DefaultPlatformW, DefaultPlatformH)
	}
}

func TestValidate(t *testing.T) {
	good := func() Level {
		return Level{
			Name:      "ok",
			Platforms: []RectDef{{X: 0, Y: 100, W: 120, H: 20}},
			Coins:     []Point{{X: 10, Y: 10}},
			Enemies:   []EnemyDef{{Sprite: "enemy1", Platform: 0}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Level)
		wantErr error
	}{
		{"valid", func(*Level) {}, nil},
		{"no coins", func(l *Level) { l.Coins = nil }, ErrInvalidLevel},
		{"negative platform width", func(l *Level) { l.Platforms[0].W = -3 }, ErrInvalidLevel},
		{"enemy platform out of range", func(l *Level) { l.Enemies[0].Platform = 1 }, ErrInvalidLevel},
		{"enemy platform negative", func(l *Level) { l.Enemies[0].Platform = -1 }, ErrInvalidLevel},
		{"enemy without sprite", func(l *Level) { l.Enemies[0].Sprite = "" }, ErrInvalidLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := good()
			tc.mutate(&lvl)
			err := Validate(Catalog{Levels: []Level{lvl}})
			if tc.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}
		})
	}

	if err := Validate(Catalog{}); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty catalog error = %v, expected ErrEmptyCatalog", err)
	}
}

func TestCatalogLevel(t *testing.T) {
	c := Builtin()
	if _, err := c.Level(0); err != nil {
		t.Errorf("Level(0) failed: %v", err)
	}
	if _, err := c.Level(c.Len()); err == nil {
		t.Error("Level(Len()) should fail")
	}
	if _, err := c.Level(-1); err == nil {
		t.Error("Level(-1) should fail")
	}
}

func TestFileRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format Format
	}{
		{"json by extension", "levels.json", ""},
		{"yaml by extension", "levels.yaml", ""},
		{"yml by extension", "levels.yml", ""},
		{"explicit format wins", "forced.yaml", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := WriteFile(path, Builtin(), tt.format); err != nil {
				t.Fatalf("WriteFile(%s) failed: %v", tt.file, err)
			}
			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile(%s) failed: %v", tt.file, err)
			}
			if !reflect.DeepEqual(loaded, Builtin()) {
				t.Errorf("%s: loaded catalog differs from builtin", tt.file)
			}
		})
	}

	if err := WriteFile(filepath.Join(t.TempDir(), "levels.txt"), Builtin(), ""); err == nil {
		t.Error("unknown extension without a format should fail")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "levels.toml")); err == nil {
		t.Error("unsupported extension should fail")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"levels":[{"name":"x","coins":[]}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(bad)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("invalid level error = %v, expected ErrInvalidLevel", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("error should name the file, got %v", err)
	}
}

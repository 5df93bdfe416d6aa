package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg CentipedeConfig
	if err := yaml.Unmarshal(defaultCentipedeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultCentipedeConfig() {
		t.Errorf("embedded defaults drifted from DefaultCentipedeConfig():\n%+v\n%+v", cfg, DefaultCentipedeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadCentipedeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "centipede.yaml")
	data := []byte("player:\n  health: 7\nspawn:\n  mushroom_rate: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCentipede(path)
	if err != nil {
		t.Fatalf("LoadCentipede() error = %v", err)
	}
	if cfg.Player.Health != 7 || cfg.Spawn.MushroomRate != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Scoring.WaveBonus != 600 || cfg.Player.SpawnX != 400 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCentipedeErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawn:\n  mushroom_rate: 150\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
		{"invalid value", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadCentipede(tc.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CentipedeConfig)
		wantErr bool
	}{
		{"defaults", func(*CentipedeConfig) {}, false},
		{"zero health", func(c *CentipedeConfig) { c.Player.Health = 0 }, true},
		{"negative rate", func(c *CentipedeConfig) { c.Spawn.MushroomRate = -1 }, true},
		{"rate 100", func(c *CentipedeConfig) { c.Spawn.MushroomRate = 100 }, false},
		{"empty wave", func(c *CentipedeConfig) { c.Spawn.CentipedeLength = 0 }, true},
		{"zero frame cap", func(c *CentipedeConfig) { c.World.MaxFrameMS = 0 }, true},
		{"negative margin", func(c *CentipedeConfig) { c.Spawn.BottomMargin = -2 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCentipedeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyCentipedePreset(t *testing.T) {
	normal := DefaultCentipedeConfig()
	ApplyCentipedePreset(&normal, DifficultyNormal)
	if normal != DefaultCentipedeConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultCentipedeConfig()
	ApplyCentipedePreset(&easy, DifficultyEasy)
	hard := DefaultCentipedeConfig()
	ApplyCentipedePreset(&hard, DifficultyHard)

	if easy.Player.Health <= normal.Player.Health || hard.Player.Health >= normal.Player.Health {
		t.Errorf("health should scale with difficulty: easy=%d normal=%d hard=%d",
			easy.Player.Health, normal.Player.Health, hard.Player.Health)
	}
	if easy.Spawn.MushroomRate >= hard.Spawn.MushroomRate {
		t.Errorf("hard should spawn more mushrooms: easy=%d hard=%d",
			easy.Spawn.MushroomRate, hard.Spawn.MushroomRate)
	}
	for _, cfg := range []CentipedeConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced an invalid config: %v", err)
		}
	}
}

func TestSimConversion(t *testing.T) {
	cfg := DefaultCentipedeConfig()
	s := cfg.Sim(99)

	if s.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", s.Seed)
	}
	if s.PlayerSpawnX != 400 || s.PlayerHealth != 3 {
		t.Errorf("player fields not carried: %+v", s)
	}
	if s.Spawn.Rate != 60 || s.Spawn.SpiderTileY != 25 {
		t.Errorf("spawn fields not carried: %+v", s.Spawn)
	}
	if s.Scoring.WaveBonus != 600 || s.Scoring.MushroomRestore != 10 {
		t.Errorf("scoring fields not carried: %+v", s.Scoring)
	}
}

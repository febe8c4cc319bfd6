package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/level"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML differs from DefaultGameConfig()\nyaml: %+v\ngo:   %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := Validate(DefaultGameConfig()); err != nil {
		t.Errorf("Validate(DefaultGameConfig()) = %v, expected nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := "physics:\n  gravity: 2.5\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 2.5 {
		t.Errorf("Gravity = %v, expected 2.5", cfg.Physics.Gravity)
	}
	// Untouched sections keep their defaults
	if cfg.Physics.TileSize != 32 {
		t.Errorf("TileSize = %v, expected default 32", cfg.Physics.TileSize)
	}
	if len(cfg.Levels) != len(DefaultGameConfig().Levels) {
		t.Errorf("len(Levels) = %d, expected defaults", len(cfg.Levels))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Errorf("Load(%q) = nil error, expected failure", tt.path)
			}
		})
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".taekwondino")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := "player:\n  health: 7\n"
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Health != 7 {
		t.Errorf("Player.Health = %d, expected 7", cfg.Player.Health)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("Load(\"\") did not return the embedded defaults")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		code   string
	}{
		{"bad tile size", func(c *GameConfig) { c.Physics.TileSize = 0 }, "INVALID_PHYSICS"},
		{"bad friction", func(c *GameConfig) { c.Physics.HorizontalFriction = 1 }, "INVALID_PHYSICS"},
		{"zero sprite", func(c *GameConfig) { c.Player.SpriteWidth = 0 }, "INVALID_SPRITE"},
		{"zero health", func(c *GameConfig) { c.Player.Health = 0 }, "INVALID_HEALTH"},
		{"player behavior", func(c *GameConfig) { c.Player.Behavior = "patrol" }, "UNKNOWN_BEHAVIOR"},
		{"monster without behavior", func(c *GameConfig) {
			m := c.Monsters["beetle"]
			m.Behavior = ""
			c.Monsters["beetle"] = m
		}, "UNKNOWN_BEHAVIOR"},
		{"unknown behavior", func(c *GameConfig) {
			m := c.Monsters["raptor"]
			m.Behavior = "teleport"
			c.Monsters["raptor"] = m
		}, "UNKNOWN_BEHAVIOR"},
		{"no open tile", func(c *GameConfig) { delete(c.Tiles, "_") }, "INVALID_TILE"},
		{"multi-rune tile", func(c *GameConfig) { c.Tiles["ab"] = TileConfig{} }, "INVALID_TILE"},
		{"unknown rune", func(c *GameConfig) { c.Levels[0].Columns += "?" }, "UNKNOWN_TILE"},
		{"empty columns", func(c *GameConfig) { c.Levels[1].Columns = "" }, "EMPTY_LEVEL"},
		{"no levels", func(c *GameConfig) { c.Levels = nil }, "EMPTY_LEVEL"},
		{"unknown monster", func(c *GameConfig) {
			c.Levels[2].Monsters = append(c.Levels[2].Monsters, SpawnConfig{Kind: "dragon"})
		}, "UNKNOWN_MONSTER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatalf("Validate() = nil, expected %s", tt.code)
			}
			if !strings.Contains(err.Error(), "["+tt.code+"]") {
				t.Errorf("Validate() = %v, expected code %s", err, tt.code)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Physics.TileSize = 0
	cfg.Player.Health = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	msg := err.Error()
	for _, code := range []string{"INVALID_PHYSICS", "INVALID_HEALTH"} {
		if !strings.Contains(msg, code) {
			t.Errorf("Validate() missing %s in %q", code, msg)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
		health  int
	}{
		{DifficultyEasy, true, 0.0, 100},
		{DifficultyNormal, true, 0.3, 50},
		{DifficultyHard, true, 0.7, 25},
		{DifficultyFixed, false, 0.0, 50},
	}

	for _, tt := range tests {
		cfg := DefaultGameConfig()
		ApplyPreset(&cfg, tt.preset)

		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%s: Enabled = %v, expected %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.initial {
			t.Errorf("%s: InitialLevel = %v, expected %v", tt.preset, cfg.Difficulty.InitialLevel, tt.initial)
		}
		if cfg.Player.Health != tt.health {
			t.Errorf("%s: Player.Health = %d, expected %d", tt.preset, cfg.Player.Health, tt.health)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tt.in, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestMonsterMetadata(t *testing.T) {
	cfg := DefaultGameConfig()

	meta, err := cfg.MonsterMetadata("raptor")
	if err != nil {
		t.Fatalf("MonsterMetadata() failed: %v", err)
	}
	if meta.Behavior != character.BehaviorFollow {
		t.Errorf("Behavior = %v, expected follow", meta.Behavior)
	}
	if meta.StartingHealth != 10 || meta.SpriteHeight != 64 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if got := meta.Animations[character.SpriteBite]; len(got) != 2 {
		t.Errorf("bite frames = %v, expected 2 frames", got)
	}

	if _, err := cfg.MonsterMetadata("dragon"); err == nil {
		t.Errorf("MonsterMetadata(\"dragon\") = nil error, expected failure")
	}
}

func TestPlayerMetadata(t *testing.T) {
	meta, err := DefaultGameConfig().PlayerMetadata()
	if err != nil {
		t.Fatalf("PlayerMetadata() failed: %v", err)
	}
	if meta.Behavior != character.BehaviorNone {
		t.Errorf("Behavior = %v, expected none", meta.Behavior)
	}
	if meta.StartingHealth != 50 {
		t.Errorf("StartingHealth = %d, expected 50", meta.StartingHealth)
	}
}

func TestLevelSpecsBuild(t *testing.T) {
	cfg := DefaultGameConfig()

	for i := range cfg.Levels {
		spec, err := cfg.LevelSpec(i)
		if err != nil {
			t.Fatalf("LevelSpec(%d) failed: %v", i, err)
		}
		lvl, err := level.New(spec)
		if err != nil {
			t.Fatalf("level.New(%q) failed: %v", spec.Name, err)
		}
		if len(lvl.Spawns()) != len(cfg.Levels[i].Monsters) {
			t.Errorf("%s: %d spawns, expected %d", spec.Name, len(lvl.Spawns()), len(cfg.Levels[i].Monsters))
		}
		if lvl.PlayerStart().X != 40 {
			t.Errorf("%s: PlayerStart().X = %v, expected 40", spec.Name, lvl.PlayerStart().X)
		}
	}

	if _, err := cfg.LevelSpec(len(cfg.Levels)); err == nil {
		t.Errorf("LevelSpec(out of range) = nil error, expected failure")
	}
}

// Package config provides YAML-based game configuration loading, validation
// and difficulty management for Tae Kwon Dino.
package config

// GameConfig contains all configuration for the game: world physics, the
// player, the monster roster, the tile table and the level sequence.
type GameConfig struct {
	Physics    PhysicsConfig              `yaml:"physics"`
	Player     CharacterConfig            `yaml:"player"`
	Monsters   map[string]CharacterConfig `yaml:"monsters"`
	Tiles      map[string]TileConfig      `yaml:"tiles"`
	Levels     []LevelConfig              `yaml:"levels"`
	Difficulty DifficultyConfig           `yaml:"difficulty"`
}

// PhysicsConfig defines the world constants shared by every level.
type PhysicsConfig struct {
	TileSize           float64 `yaml:"tile_size"`
	LevelHeight        float64 `yaml:"level_height"`
	Gravity            float64 `yaml:"gravity"`
	HorizontalFriction float64 `yaml:"horizontal_friction"`
	VerticalFriction   float64 `yaml:"vertical_friction"`
	BorderBarrier      float64 `yaml:"border_barrier"`
}

// CharacterConfig defines the static metadata of the player or a monster kind.
type CharacterConfig struct {
	Name              string           `yaml:"name"`
	SpriteWidth       float64          `yaml:"sprite_width"`
	SpriteHeight      float64          `yaml:"sprite_height"`
	Speed             float64          `yaml:"speed"`
	Health            int              `yaml:"health"`
	BoundingBoxOffset float64          `yaml:"bounding_box_offset"`
	Behavior          string           `yaml:"behavior"` // "patrol" or "follow"; empty for the player
	FallsLedge        bool             `yaml:"falls_ledge"`
	JumpsBarrier      bool             `yaml:"jumps_barrier"`
	Animations        map[string][]int `yaml:"animations"`
}

// TileConfig is one entry of the tile-type table, keyed by its rune.
type TileConfig struct {
	Name   string  `yaml:"name"`
	Wall   bool    `yaml:"wall"`
	Ground float64 `yaml:"ground"` // Top of ground in tiles above the floor
	Pit    bool    `yaml:"pit"`
}

// LevelConfig defines one level of the sequence.
type LevelConfig struct {
	Name        string        `yaml:"name"`
	Columns     string        `yaml:"columns"` // One tile rune per column
	PlayerStart PointConfig   `yaml:"player_start"`
	Monsters    []SpawnConfig `yaml:"monsters"`
}

// PointConfig is a world position.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpawnConfig places a monster kind in a level.
type SpawnConfig struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases through the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to monster speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a DifficultyPreset.
// The empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

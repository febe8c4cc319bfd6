package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultGameYAML
}

// DefaultGameConfig returns the built-in configuration. It mirrors
// defaults/game.yaml and is used when no document can be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			TileSize:           32,
			LevelHeight:        480,
			Gravity:            1.5,
			HorizontalFriction: 0.8,
			VerticalFriction:   0.9,
			BorderBarrier:      16,
		},
		Player: CharacterConfig{
			Name:              "Dino",
			SpriteWidth:       64,
			SpriteHeight:      64,
			Speed:             1.5,
			Health:            50,
			BoundingBoxOffset: 20,
			Animations: map[string][]int{
				"idle": {0, 1, 2, 3},
				"walk": {0, 1, 2, 3, 4, 5},
				"run":  {0, 1, 2, 3, 4, 5},
				"jump": {0},
				"hurt": {0, 1},
				"bite": {0, 1, 2},
			},
		},
		Monsters: map[string]CharacterConfig{
			"beetle": {
				Name:              "Beetle",
				SpriteWidth:       64,
				SpriteHeight:      48,
				Speed:             0.8,
				Health:            10,
				BoundingBoxOffset: 16,
				Behavior:          "patrol",
				FallsLedge:        true,
				Animations: map[string][]int{
					"idle": {0, 1},
					"walk": {0, 1, 2, 3},
					"hurt": {0},
				},
			},
			"raptor": {
				Name:              "Raptor",
				SpriteWidth:       64,
				SpriteHeight:      64,
				Speed:             1.0,
				Health:            10,
				BoundingBoxOffset: 20,
				Behavior:          "follow",
				JumpsBarrier:      true,
				Animations: map[string][]int{
					"idle": {0, 1},
					"walk": {0, 1, 2, 3},
					"run":  {0, 1, 2, 3},
					"jump": {0},
					"hurt": {0},
					"bite": {0, 1},
				},
			},
		},
		Tiles: map[string]TileConfig{
			"_": {Name: "grass", Ground: 1},
			"=": {Name: "platform", Ground: 2},
			"+": {Name: "crate", Wall: true, Ground: 2},
			"#": {Name: "rock", Wall: true, Ground: 4},
			" ": {Name: "pit", Pit: true},
		},
		Levels: []LevelConfig{
			{
				Name:        "Dojo Gardens",
				Columns:     "____________________====________+__________________  ________________________",
				PlayerStart: PointConfig{X: 40, Y: 100},
				Monsters: []SpawnConfig{
					{Kind: "beetle", X: 850, Y: 100},
					{Kind: "raptor", X: 1300, Y: 100},
				},
			},
			{
				Name:        "Bamboo Ridge",
				Columns:     "__________+_______####_________   __________====____+____________#__________________",
				PlayerStart: PointConfig{X: 40, Y: 100},
				Monsters: []SpawnConfig{
					{Kind: "beetle", X: 400, Y: 100},
					{Kind: "raptor", X: 1200, Y: 100},
					{Kind: "beetle", X: 1800, Y: 100},
				},
			},
			{
				Name:        "Volcano Steps",
				Columns:     "______________=====____#____    ________+_________####_______  ____________________________",
				PlayerStart: PointConfig{X: 40, Y: 100},
				Monsters: []SpawnConfig{
					{Kind: "raptor", X: 640, Y: 100},
					{Kind: "beetle", X: 1400, Y: 100},
					{Kind: "raptor", X: 2300, Y: 100},
				},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 2,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

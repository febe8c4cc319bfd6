package config

import (
	"fmt"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/level"
)

// Metadata converts a character entry into simulation metadata.
func (c CharacterConfig) Metadata() (character.Metadata, error) {
	b, err := character.ParseBehavior(c.Behavior)
	if err != nil {
		return character.Metadata{}, err
	}

	anims := make(map[character.ActionSprite][]int, len(c.Animations))
	for name, frames := range c.Animations {
		anims[character.ActionSprite(name)] = append([]int(nil), frames...)
	}

	return character.Metadata{
		Name:              c.Name,
		SpriteWidth:       c.SpriteWidth,
		SpriteHeight:      c.SpriteHeight,
		Animations:        anims,
		MovementSpeed:     c.Speed,
		StartingHealth:    c.Health,
		BoundingBoxOffset: c.BoundingBoxOffset,
		Behavior:          b,
		FallsLedge:        c.FallsLedge,
		JumpsBarrier:      c.JumpsBarrier,
	}, nil
}

// PlayerMetadata returns the player's simulation metadata.
func (cfg GameConfig) PlayerMetadata() (character.Metadata, error) {
	meta, err := cfg.Player.Metadata()
	if err != nil {
		return character.Metadata{}, fmt.Errorf("config: player: %w", err)
	}
	return meta, nil
}

// MonsterMetadata returns the simulation metadata of a monster kind.
func (cfg GameConfig) MonsterMetadata(kind string) (character.Metadata, error) {
	mc, ok := cfg.Monsters[kind]
	if !ok {
		return character.Metadata{}, fmt.Errorf("config: unknown monster %q", kind)
	}
	meta, err := mc.Metadata()
	if err != nil {
		return character.Metadata{}, fmt.Errorf("config: monster %q: %w", kind, err)
	}
	return meta, nil
}

// TileTable converts the tile entries into the level tile-type table.
func (cfg GameConfig) TileTable() map[string]level.TileType {
	table := make(map[string]level.TileType, len(cfg.Tiles))
	for key, tc := range cfg.Tiles {
		table[key] = level.TileType{
			Name:   tc.Name,
			Wall:   tc.Wall,
			Ground: tc.Ground,
			Pit:    tc.Pit,
		}
	}
	return table
}

// LevelSpec returns the level.Spec of the i-th configured level.
func (cfg GameConfig) LevelSpec(i int) (level.Spec, error) {
	if i < 0 || i >= len(cfg.Levels) {
		return level.Spec{}, fmt.Errorf("config: level index %d out of range [0, %d)", i, len(cfg.Levels))
	}
	lc := cfg.Levels[i]

	spawns := make([]level.Spawn, 0, len(lc.Monsters))
	for _, sp := range lc.Monsters {
		spawns = append(spawns, level.Spawn{Kind: sp.Kind, X: sp.X, Y: sp.Y})
	}

	return level.Spec{
		Name:               lc.Name,
		Columns:            lc.Columns,
		Tiles:              cfg.TileTable(),
		TileSize:           cfg.Physics.TileSize,
		Height:             cfg.Physics.LevelHeight,
		Gravity:            cfg.Physics.Gravity,
		HorizontalFriction: cfg.Physics.HorizontalFriction,
		VerticalFriction:   cfg.Physics.VerticalFriction,
		BorderBarrier:      cfg.Physics.BorderBarrier,
		PlayerStart:        core.Point{X: lc.PlayerStart.X, Y: lc.PlayerStart.Y},
		Spawns:             spawns,
	}, nil
}

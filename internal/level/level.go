// Package level implements the side-scrolling world the characters move
// through: a one-dimensional grid of tile columns, each with a ground height,
// plus the level geometry constants (length, height, gravity, friction and
// border margin).
//
// Queries never fail. Coordinates outside the grid resolve to the open tile,
// so a character sensing past the level edge sees flat ground.
package level

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/taekwondino/internal/core"
)

// OpenType is the tile type of plain walkable ground. Patrolling monsters
// turn around at any other type.
const OpenType = "_"

// pitDepthFactor places pit ground this many level heights below the top,
// past the fall-death line at twice the level height.
const pitDepthFactor = 3

// Tile is the descriptor of one column. The zero Tile means "not sensed yet".
type Tile struct {
	Type string
}

// IsOpen reports whether the tile is plain walkable ground.
func (t Tile) IsOpen() bool {
	return t.Type == OpenType
}

// IsSet reports whether the tile came from a grid query.
func (t Tile) IsSet() bool {
	return t.Type != ""
}

// TileType is an entry of the tile-type table.
type TileType struct {
	Name   string
	Wall   bool    // Blocks horizontal movement when it rises above the feet
	Ground float64 // Top of ground, in tiles above the level floor
	Pit    bool    // No ground at all
}

// Spawn places a monster kind at a starting position.
type Spawn struct {
	Kind string
	X, Y float64
}

// Spec is everything needed to build a Level.
type Spec struct {
	Name               string
	Columns            string // One rune per column, each a key of Tiles
	Tiles              map[string]TileType
	TileSize           float64
	Height             float64
	Gravity            float64
	HorizontalFriction float64
	VerticalFriction   float64
	BorderBarrier      float64
	PlayerStart        core.Point
	Spawns             []Spawn
}

// Level is an immutable-per-session world.
// It is safe to query from several characters in the same frame.
type Level struct {
	name               string
	columns            []Tile
	tiles              map[string]TileType
	tileSize           float64
	height             float64
	gravity            float64
	horizontalFriction float64
	verticalFriction   float64
	borderBarrier      float64
	playerStart        core.Point
	spawns             []Spawn
}

// Validation errors returned by New.
var (
	ErrNoColumns   = errors.New("level: no columns")
	ErrBadTileSize = errors.New("level: tile size must be positive")
	ErrBadHeight   = errors.New("level: height must be positive")
	ErrNoOpenTile  = errors.New("level: tile table has no open tile \"" + OpenType + "\"")
)

// New builds a level from spec.
func New(spec Spec) (*Level, error) {
	if spec.Columns == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoColumns, spec.Name)
	}
	if spec.TileSize <= 0 {
		return nil, fmt.Errorf("%w: %q has %v", ErrBadTileSize, spec.Name, spec.TileSize)
	}
	if spec.Height <= 0 {
		return nil, fmt.Errorf("%w: %q has %v", ErrBadHeight, spec.Name, spec.Height)
	}
	if _, ok := spec.Tiles[OpenType]; !ok {
		return nil, fmt.Errorf("%w in %q", ErrNoOpenTile, spec.Name)
	}

	columns := make([]Tile, 0, len(spec.Columns))
	for i, r := range []rune(spec.Columns) {
		key := string(r)
		if _, ok := spec.Tiles[key]; !ok {
			return nil, fmt.Errorf("level: %q column %d: unknown tile %q", spec.Name, i, key)
		}
		columns = append(columns, Tile{Type: key})
	}

	tiles := make(map[string]TileType, len(spec.Tiles))
	for k, v := range spec.Tiles {
		tiles[k] = v
	}

	return &Level{
		name:               spec.Name,
		columns:            columns,
		tiles:              tiles,
		tileSize:           spec.TileSize,
		height:             spec.Height,
		gravity:            spec.Gravity,
		horizontalFriction: spec.HorizontalFriction,
		verticalFriction:   spec.VerticalFriction,
		borderBarrier:      spec.BorderBarrier,
		playerStart:        spec.PlayerStart,
		spawns:             append([]Spawn(nil), spec.Spawns...),
	}, nil
}

// Name returns the level's display name.
func (l *Level) Name() string { return l.name }

// Length returns the level width in world units.
func (l *Level) Length() float64 { return float64(len(l.columns)) * l.tileSize }

// LevelHeight returns the playfield height in world units.
func (l *Level) LevelHeight() float64 { return l.height }

// Gravity returns the per-frame vertical acceleration.
func (l *Level) Gravity() float64 { return l.gravity }

// HorizontalFriction returns the per-frame horizontal velocity multiplier.
func (l *Level) HorizontalFriction() float64 { return l.horizontalFriction }

// VerticalFriction returns the per-frame vertical velocity multiplier.
func (l *Level) VerticalFriction() float64 { return l.verticalFriction }

// BorderBarrier returns the margin kept between characters and level edges.
func (l *Level) BorderBarrier() float64 { return l.borderBarrier }

// TileSize returns the width of one column in world units.
func (l *Level) TileSize() float64 { return l.tileSize }

// ColumnCount returns the number of tile columns.
func (l *Level) ColumnCount() int { return len(l.columns) }

// PlayerStart returns where the player enters the level.
func (l *Level) PlayerStart() core.Point { return l.playerStart }

// Spawns returns a copy of the monster spawn list.
func (l *Level) Spawns() []Spawn {
	return append([]Spawn(nil), l.spawns...)
}

// Column returns the tile of column i, or the open tile when out of range.
func (l *Level) Column(i int) Tile {
	if i < 0 || i >= len(l.columns) {
		return Tile{Type: OpenType}
	}
	return l.columns[i]
}

// ColumnIndex converts a horizontal coordinate into a column index.
// NaN and infinities map to -1, which is out of range.
func (l *Level) ColumnIndex(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return -1
	}
	return int(math.Floor(x / l.tileSize))
}

// TileInfo returns the tile descriptor of the column under x.
func (l *Level) TileInfo(x float64) Tile {
	return l.Column(l.ColumnIndex(x))
}

// GroundHeight returns the vertical coordinate of the top of ground at x.
// Pits report a value below the fall-death line.
func (l *Level) GroundHeight(x float64) float64 {
	tt := l.typeOf(l.TileInfo(x))
	if tt.Pit {
		return pitDepthFactor * l.height
	}
	return l.height - tt.Ground*l.tileSize
}

// IsWall reports whether the tile is tagged as a wall. Unset tiles and
// unknown types are never walls.
func (l *Level) IsWall(t Tile) bool {
	if !t.IsSet() {
		return false
	}
	tt, ok := l.tiles[t.Type]
	return ok && tt.Wall
}

// TypeOf returns the tile-type table entry for t.
func (l *Level) TypeOf(t Tile) (TileType, bool) {
	tt, ok := l.tiles[t.Type]
	return tt, ok
}

// typeOf falls back to the open tile's entry for unknown types.
func (l *Level) typeOf(t Tile) TileType {
	if tt, ok := l.tiles[t.Type]; ok {
		return tt
	}
	return l.tiles[OpenType]
}

// TileKeys returns the tile-type keys in sorted order.
func (l *Level) TileKeys() []string {
	keys := make([]string, 0, len(l.tiles))
	for k := range l.tiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

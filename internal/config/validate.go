package config

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/level"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs comprehensive validation of a configuration.
// Checks:
//   - Physics constants are usable
//   - Player and monster sprites, health and behaviors
//   - Tile table has single-rune keys and the open tile
//   - Every level uses known tiles and known monster kinds
//
// All failures are returned together, joined with errors.Join.
func Validate(cfg GameConfig) error {
	var errs []error
	errs = append(errs, validatePhysics(cfg.Physics)...)
	errs = append(errs, validateCharacter("player", cfg.Player, false)...)

	for _, kind := range sortedKeys(cfg.Monsters) {
		errs = append(errs, validateCharacter("monster "+kind, cfg.Monsters[kind], true)...)
	}

	errs = append(errs, validateTiles(cfg.Tiles)...)
	errs = append(errs, validateLevels(cfg)...)

	return errors.Join(errs...)
}

func validatePhysics(p PhysicsConfig) []error {
	var errs []error
	if p.TileSize <= 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("tile_size must be positive, got %v", p.TileSize),
		})
	}
	if p.LevelHeight <= 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("level_height must be positive, got %v", p.LevelHeight),
		})
	}
	if p.Gravity < 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("gravity must not be negative, got %v", p.Gravity),
		})
	}
	if p.HorizontalFriction <= 0 || p.HorizontalFriction >= 1 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("horizontal_friction must be in (0, 1), got %v", p.HorizontalFriction),
		})
	}
	if p.VerticalFriction <= 0 || p.VerticalFriction > 1 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("vertical_friction must be in (0, 1], got %v", p.VerticalFriction),
		})
	}
	return errs
}

func validateCharacter(who string, c CharacterConfig, monster bool) []error {
	var errs []error
	if c.SpriteWidth <= 0 || c.SpriteHeight <= 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_SPRITE",
			Message: fmt.Sprintf("%s: sprite size %vx%v must be positive", who, c.SpriteWidth, c.SpriteHeight),
		})
	}
	if c.BoundingBoxOffset < 0 || 2*c.BoundingBoxOffset >= c.SpriteWidth {
		errs = append(errs, ValidationError{
			Code:    "INVALID_SPRITE",
			Message: fmt.Sprintf("%s: bounding_box_offset %v leaves no collision box", who, c.BoundingBoxOffset),
		})
	}
	if c.Health <= 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_HEALTH",
			Message: fmt.Sprintf("%s: health must be positive, got %d", who, c.Health),
		})
	}
	if c.Speed < 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_SPEED",
			Message: fmt.Sprintf("%s: speed must not be negative, got %v", who, c.Speed),
		})
	}

	b, err := character.ParseBehavior(c.Behavior)
	switch {
	case err != nil:
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_BEHAVIOR",
			Message: fmt.Sprintf("%s: %v", who, err),
		})
	case monster && b == character.BehaviorNone:
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_BEHAVIOR",
			Message: fmt.Sprintf("%s: monsters need a behavior (patrol or follow)", who),
		})
	case !monster && b != character.BehaviorNone:
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_BEHAVIOR",
			Message: fmt.Sprintf("%s: the player cannot have behavior %q", who, c.Behavior),
		})
	}
	return errs
}

func validateTiles(tiles map[string]TileConfig) []error {
	var errs []error
	if _, ok := tiles[level.OpenType]; !ok {
		errs = append(errs, ValidationError{
			Code:    "INVALID_TILE",
			Message: fmt.Sprintf("tile table has no open tile %q", level.OpenType),
		})
	}
	for _, key := range sortedKeys(tiles) {
		if utf8.RuneCountInString(key) != 1 {
			errs = append(errs, ValidationError{
				Code:    "INVALID_TILE",
				Message: fmt.Sprintf("tile key %q must be a single rune", key),
			})
		}
	}
	return errs
}

func validateLevels(cfg GameConfig) []error {
	if len(cfg.Levels) == 0 {
		return []error{ValidationError{
			Code:    "EMPTY_LEVEL",
			Message: "no levels configured",
		}}
	}

	var errs []error
	for i, lc := range cfg.Levels {
		name := lc.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if lc.Columns == "" {
			errs = append(errs, ValidationError{
				Code:    "EMPTY_LEVEL",
				Message: fmt.Sprintf("level %s has no columns", name),
			})
			continue
		}
		for col, r := range []rune(lc.Columns) {
			if _, ok := cfg.Tiles[string(r)]; !ok {
				errs = append(errs, ValidationError{
					Code:    "UNKNOWN_TILE",
					Message: fmt.Sprintf("level %s column %d uses unknown tile %q", name, col, string(r)),
				})
			}
		}

		length := float64(utf8.RuneCountInString(lc.Columns)) * cfg.Physics.TileSize
		if cfg.Physics.TileSize > 0 && length <= cfg.Player.SpriteWidth+2*cfg.Physics.BorderBarrier {
			errs = append(errs, ValidationError{
				Code:    "EMPTY_LEVEL",
				Message: fmt.Sprintf("level %s is too short for the player", name),
			})
		}

		for _, sp := range lc.Monsters {
			if _, ok := cfg.Monsters[sp.Kind]; !ok {
				errs = append(errs, ValidationError{
					Code:    "UNKNOWN_MONSTER",
					Message: fmt.Sprintf("level %s spawns unknown monster %q", name, sp.Kind),
				})
			}
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

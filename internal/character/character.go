// Package character implements the per-frame simulation shared by the player
// and the monsters: input-to-state classification, physics integration,
// ground and barrier sensing against the tile grid, bounding-box collision
// with jump-attack combat, and the monster AI that synthesizes input.
//
// A Character is mutated only by its own Update and by the combat pass of
// the player (ResolveCollisions), which is the single cross-character path.
package character

import (
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/level"
)

// Tuning constants of the simulation.
const (
	GroundTolerance          = 6.5   // Max gap between feet and ground that still counts as grounded
	BarrierTolerance         = 30.0  // Ground this much above the feet on a wall tile blocks movement
	JumpForce                = -30.0 // Vertical velocity set by a jump
	RunSpeedMultiplier       = 2.0   // Run modifier on speed, also applied to velocityX on takeoff
	KnockbackImpulse         = 7.0   // Push away from the aggressor, both axes
	FrictionCutoff           = 0.05  // Below this horizontal speed velocity snaps to zero
	KillFallSpeed            = 10.0  // Downward speed needed for a stomp
	KillBounce               = 20.0  // Subtracted from the player's velocityY after a stomp
	DeathHopVelocity         = 10.0  // velocityY given to a monster when it dies
	FollowRange              = 300.0 // Horizontal distance under which followers chase
	FollowEdgeInset          = 36.0  // Slack on sprite edges when comparing positions to chase
	DefaultBoundingBoxOffset = 20.0
)

// World is the read-only view of the current level a character needs.
// *level.Level satisfies it.
type World interface {
	TileInfo(x float64) level.Tile
	GroundHeight(x float64) float64
	IsWall(t level.Tile) bool
	Length() float64
	LevelHeight() float64
	Gravity() float64
	HorizontalFriction() float64
	VerticalFriction() float64
	BorderBarrier() float64
}

// ActionSprite identifies the animation row to draw.
type ActionSprite string

const (
	SpriteIdle ActionSprite = "idle"
	SpriteWalk ActionSprite = "walk"
	SpriteRun  ActionSprite = "run"
	SpriteJump ActionSprite = "jump"
	SpriteHurt ActionSprite = "hurt"
	SpriteBite ActionSprite = "bite"
)

// DirectionSprite identifies which facing sheet to draw.
type DirectionSprite string

const (
	DirectionRight DirectionSprite = "right"
	DirectionLeft  DirectionSprite = "left"
)

// Metadata is fixed at construction.
type Metadata struct {
	Name              string
	SpriteWidth       float64
	SpriteHeight      float64
	Animations        map[ActionSprite][]int // Frame offsets per action sprite
	MovementSpeed     float64
	StartingHealth    int
	BoundingBoxOffset float64 // Horizontal inset of the bounding box on each side

	// Monster-only.
	Behavior     Behavior
	FallsLedge   bool
	JumpsBarrier bool
}

// State is the mutable per-frame state of a character.
type State struct {
	Idle         bool
	Walking      bool
	Running      bool
	Jumping      bool
	Falling      bool
	Grounded     bool
	FacingRight  bool
	FacingLeft   bool
	TakingDamage bool

	Health int

	X, Y        float64 // Top-left anchor
	VelocityX   float64
	VelocityY   float64 // Positive is downward
	CenterX     float64
	PreviousY   float64
	GroundLevel float64

	DirectionSprite DirectionSprite
	ActionSprite    ActionSprite

	// Neighbour tiles at the bounding-box edges and the center, refreshed
	// every frame. Unset until the first Update.
	LeftTile   level.Tile
	RightTile  level.Tile
	CenterTile level.Tile
	Sensed     bool

	// Center x of the last monster that hurt this character. Written by the
	// combat pass, read by next frame's knockback.
	AggressorX   float64
	HasAggressor bool
}

// Character is any simulated actor, player or monster.
type Character struct {
	Metadata Metadata
	State    State
}

// New creates a character at (x, y) with full health, facing right.
func New(x, y float64, meta Metadata) *Character {
	c := &Character{Metadata: meta}
	c.Reset(x, y)
	return c
}

// Reset puts the character back at (x, y) with full health and no motion.
func (c *Character) Reset(x, y float64) {
	c.State = State{
		X:               x,
		Y:               y,
		PreviousY:       y,
		CenterX:         x + c.Metadata.SpriteWidth/2,
		FacingRight:     true,
		Health:          c.Metadata.StartingHealth,
		DirectionSprite: DirectionRight,
		ActionSprite:    SpriteIdle,
	}
}

// Update advances the character exactly one frame. The steps run in a fixed
// order; reordering them changes falling detection and knockback.
// For the player (no behavior) the monster-collision pass runs last against
// others, and always clears the hurt flag.
func (c *Character) Update(in core.Input, w World, others []*Character) {
	c.updateState(in, w)
	c.updatePosition(in, w)
	if c.State.Y > w.LevelHeight()*2 {
		c.fallDamage()
	}
	c.updateAnimation()
	if c.Metadata.Behavior == BehaviorNone {
		c.ResolveCollisions(others)
	}
}

// IsAlive reports whether health is above zero.
func (c *Character) IsAlive() bool {
	return c.State.Health > 0
}

// IsMonster reports whether the character is driven by AI.
func (c *Character) IsMonster() bool {
	return c.Metadata.Behavior != BehaviorNone
}

// AnimationFrame returns the sprite frame offset of the current action
// sprite for the given global frame counter.
func (c *Character) AnimationFrame(gameFrame int) int {
	frames := c.Metadata.Animations[c.State.ActionSprite]
	if len(frames) == 0 {
		return 0
	}
	if gameFrame < 0 {
		gameFrame = -gameFrame
	}
	return frames[gameFrame%len(frames)]
}

// Facing returns the direction the character currently faces.
func (c *Character) Facing() DirectionSprite {
	if c.State.FacingLeft {
		return DirectionLeft
	}
	return DirectionRight
}

func (c *Character) fallDamage() {
	c.State.Health = 0
}

// Die kills the character with a small downward hop.
func (c *Character) Die() {
	c.State.Health = 0
	c.State.TakingDamage = true
	c.State.VelocityY = DeathHopVelocity
}

func (c *Character) faceLeft() {
	c.State.FacingLeft = true
	c.State.FacingRight = false
}

func (c *Character) faceRight() {
	c.State.FacingLeft = false
	c.State.FacingRight = true
}

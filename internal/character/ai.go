package character

import (
	"math"

	"github.com/vovakirdan/taekwondino/internal/core"
)

// GenerateInput synthesizes this frame's input for a monster, as if the
// returned signals were keys being held. Dead monsters hold nothing.
//
// Patrol may turn the monster around; that is the only state it touches.
func (c *Character) GenerateInput(w World, player *Character) core.Input {
	if c.State.Health <= 0 {
		return core.NewInput()
	}

	switch c.Metadata.Behavior {
	case BehaviorPatrol:
		return c.patrol()
	case BehaviorFollow:
		if player != nil && math.Abs(c.State.X-player.State.X) < FollowRange {
			return c.follow(w, player)
		}
		return c.patrol()
	default:
		return core.NewInput()
	}
}

// patrol walks until the neighbour tile ahead is not open, then turns.
// Before the first sensing pass it walks left.
func (c *Character) patrol() core.Input {
	s := &c.State
	if !s.Sensed || !s.RightTile.IsSet() {
		return core.NewInput(core.SignalLeft)
	}

	if !s.RightTile.IsOpen() {
		c.faceLeft()
	}
	if !s.LeftTile.IsOpen() {
		c.faceRight()
	}

	if s.FacingRight {
		return core.NewInput(core.SignalRight)
	}
	return core.NewInput(core.SignalLeft)
}

// follow runs toward the player, hopping over barriers and stopping at
// cliff edges. It holds nothing while the player is within its own extent.
func (c *Character) follow(w World, player *Character) core.Input {
	s := &c.State
	if !s.Sensed || !s.RightTile.IsSet() {
		return core.NewInput()
	}

	cliffLeft, cliffRight := c.OnCliffBorder(w)
	playerTrailing := player.State.X + player.Metadata.SpriteWidth - FollowEdgeInset
	selfLeading := s.X + c.Metadata.SpriteWidth - FollowEdgeInset

	switch {
	case playerTrailing < s.X && !cliffLeft:
		return c.chase(w, core.SignalLeft)
	case player.State.X > selfLeading && !cliffRight:
		return c.chase(w, core.SignalRight)
	default:
		return core.NewInput()
	}
}

func (c *Character) chase(w World, dir core.Signal) core.Input {
	if c.TouchingBarrier(w) {
		return core.NewInput(dir, core.SignalRun, core.SignalUp)
	}
	return core.NewInput(dir, core.SignalRun)
}

package character

import "github.com/vovakirdan/taekwondino/internal/core"

// updateState classifies the frame's behavior flags from input and the
// previous frame, then refreshes the sensed neighbourhood.
func (c *Character) updateState(in core.Input, w World) {
	s := &c.State
	left := in.Has(core.SignalLeft)
	right := in.Has(core.SignalRight)
	up := in.Has(core.SignalUp)
	run := in.Has(core.SignalRun)

	s.Idle = !left && !right && !up && !s.Jumping

	if left {
		c.faceLeft()
	}
	if right {
		c.faceRight()
	}

	s.Running = run && (left || right)
	s.Walking = (left || right) && !run && !s.Jumping

	// A falling character is never jumping.
	if s.Y > s.PreviousY && !s.Grounded {
		s.Falling = true
		s.Jumping = false
	} else {
		s.Falling = false
	}

	// Set only; cleared by falling.
	if up && s.Grounded {
		s.Jumping = true
	}

	// Tolerance absorbs sub-pixel integration error. Nothing is grounded
	// before the ground has been sensed once.
	s.Grounded = s.Sensed && (s.GroundLevel-c.Metadata.SpriteHeight-s.Y) <= GroundTolerance

	c.sense(w)

	// Pre-motion y, compared against next frame.
	s.PreviousY = s.Y
}

// sense refreshes center x, neighbour tiles and ground level from the grid.
func (c *Character) sense(w World) {
	s := &c.State
	s.CenterX = s.X + c.Metadata.SpriteWidth/2

	box := c.BoundingBox()
	s.CenterTile = w.TileInfo(s.CenterX)
	s.LeftTile = w.TileInfo(box.MinX)
	s.RightTile = w.TileInfo(box.MaxX)
	s.GroundLevel = w.GroundHeight(s.CenterX)
	s.Sensed = true
}

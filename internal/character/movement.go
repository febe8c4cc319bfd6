package character

import (
	"math"

	"github.com/vovakirdan/taekwondino/internal/core"
)

// updatePosition integrates one frame of motion. Order matters.
func (c *Character) updatePosition(in core.Input, w World) {
	c.updateVelocityX(in, w)
	c.updateVelocityY(in)
	c.horizontalMovement(w)
	c.verticalMovement()
	c.applyGravity(w)
	c.horizontalFriction(w)
	c.verticalFriction(w)
	c.applyFloorLimit()
}

// updateVelocityX applies walking or running acceleration unless a barrier
// blocks the facing side, then layers the knockback impulse on top.
func (c *Character) updateVelocityX(in core.Input, w World) {
	s := &c.State

	if c.TouchingBarrier(w) {
		s.VelocityX = 0
	} else {
		speed := c.Metadata.MovementSpeed
		if in.Has(core.SignalRun) {
			speed *= RunSpeedMultiplier
		}
		if in.Has(core.SignalRight) {
			s.VelocityX += speed
		}
		if in.Has(core.SignalLeft) {
			s.VelocityX -= speed
		}
	}

	c.applyKnockback()
}

// applyKnockback pushes a hurt character away from its aggressor and turns
// it to face the aggressor.
func (c *Character) applyKnockback() {
	s := &c.State
	if s.Health <= 0 || !s.TakingDamage || !s.HasAggressor {
		return
	}

	if s.AggressorX >= s.CenterX {
		c.faceRight()
		s.VelocityX -= KnockbackImpulse
	} else {
		c.faceLeft()
		s.VelocityX += KnockbackImpulse
	}
	s.VelocityY -= KnockbackImpulse
}

// updateVelocityY starts a jump. Takeoff also multiplies horizontal
// velocity by the run multiplier.
func (c *Character) updateVelocityY(in core.Input) {
	s := &c.State
	if in.Has(core.SignalUp) && s.Grounded {
		s.VelocityY = JumpForce
		s.VelocityX *= RunSpeedMultiplier
	}
}

// horizontalMovement clamps x into the playable range. Velocity is only
// added on frames where no clamping happened.
func (c *Character) horizontalMovement(w World) {
	s := &c.State
	minX := w.BorderBarrier()
	maxX := w.Length() - c.Metadata.SpriteWidth - w.BorderBarrier()

	switch {
	case s.X < minX:
		s.X = minX
	case s.X > maxX:
		s.X = maxX
	default:
		s.X += s.VelocityX
	}
}

func (c *Character) verticalMovement() {
	c.State.Y += c.State.VelocityY
}

func (c *Character) applyGravity(w World) {
	if !c.State.Grounded {
		c.State.VelocityY += w.Gravity()
	}
}

func (c *Character) horizontalFriction(w World) {
	s := &c.State
	if math.Abs(s.VelocityX) > FrictionCutoff {
		s.VelocityX *= w.HorizontalFriction()
	} else {
		s.VelocityX = 0
	}
}

// verticalFriction is skipped for dead characters so they fall freely.
func (c *Character) verticalFriction(w World) {
	if c.State.Health <= 0 {
		return
	}
	c.State.VelocityY *= w.VerticalFriction()
}

// applyFloorLimit keeps living characters on top of the ground.
// Dead characters drop through.
func (c *Character) applyFloorLimit() {
	s := &c.State
	if s.Health <= 0 {
		return
	}
	floor := s.GroundLevel - c.Metadata.SpriteHeight
	if s.Y > floor {
		s.Y = floor
		s.VelocityY = 0
	}
}

package character

// updateAnimation picks direction and action sprites. Later checks override
// earlier ones: idle, run, walk, jump (airborne), hurt.
func (c *Character) updateAnimation() {
	s := &c.State

	if s.FacingRight {
		s.DirectionSprite = DirectionRight
	}
	if s.FacingLeft {
		s.DirectionSprite = DirectionLeft
	}

	if s.Idle {
		s.ActionSprite = SpriteIdle
	}
	if s.Running {
		s.ActionSprite = SpriteRun
	}
	if s.Walking {
		s.ActionSprite = SpriteWalk
	}
	if !s.Grounded {
		s.ActionSprite = SpriteJump
	}
	if s.TakingDamage {
		s.ActionSprite = SpriteHurt
	}
}

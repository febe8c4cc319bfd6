package character

import "github.com/vovakirdan/taekwondino/internal/core"

// BoundingBox returns the collision box: the sprite rectangle inset
// horizontally by the bounding-box offset on both sides.
func (c *Character) BoundingBox() core.Box {
	off := c.Metadata.BoundingBoxOffset
	return core.Box{
		MinX: c.State.X + off,
		MinY: c.State.Y,
		MaxX: c.State.X + c.Metadata.SpriteWidth - off,
		MaxY: c.State.Y + c.Metadata.SpriteHeight,
	}
}

// Overlaps reports whether any corner of b lies in a or any corner of a
// lies in b. Symmetric in its arguments.
func Overlaps(a, b core.Box) bool {
	return a.ContainsAnyCorner(b) || b.ContainsAnyCorner(a)
}

// TestCollision reports whether the two characters' bounding boxes overlap.
func (c *Character) TestCollision(other *Character) bool {
	return Overlaps(c.BoundingBox(), other.BoundingBox())
}

// OutcomeKind is the result of one player-monster contact.
type OutcomeKind int

const (
	OutcomeDamage OutcomeKind = iota // Player took a hit
	OutcomeKill                      // Player stomped the monster
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDamage:
		return "damage"
	case OutcomeKill:
		return "kill"
	default:
		return "unknown"
	}
}

// Outcome records the resolution against one monster.
type Outcome struct {
	Monster *Character
	Kind    OutcomeKind
}

// ResolveCollisions is the combat pass. It clears the hurt flag, then for
// every living monster overlapping c resolves exactly one outcome: a stomp
// kills the monster and bounces c; anything else costs c one health point
// and records the monster as aggressor for next frame's knockback.
func (c *Character) ResolveCollisions(monsters []*Character) []Outcome {
	s := &c.State
	s.TakingDamage = false

	var outcomes []Outcome
	for _, m := range monsters {
		if m == nil || m == c || m.State.Health <= 0 || !c.TestCollision(m) {
			continue
		}

		if s.Y < m.State.Y && s.Falling && s.VelocityY > KillFallSpeed {
			s.VelocityY -= KillBounce
			m.Die()
			outcomes = append(outcomes, Outcome{Monster: m, Kind: OutcomeKill})
			continue
		}

		s.TakingDamage = true
		if s.Health > 0 {
			s.Health--
		}
		s.AggressorX = m.State.CenterX
		s.HasAggressor = true
		outcomes = append(outcomes, Outcome{Monster: m, Kind: OutcomeDamage})
	}
	return outcomes
}

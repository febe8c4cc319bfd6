package character

// TouchingBarrier reports whether the facing side is blocked: the ground at
// that bounding-box edge rises more than BarrierTolerance above the feet and
// the neighbour tile there is a wall. Unsensed tiles never block.
func (c *Character) TouchingBarrier(w World) bool {
	s := &c.State
	box := c.BoundingBox()
	feet := s.Y + c.Metadata.SpriteHeight

	leftHigher := w.GroundHeight(box.MinX)+BarrierTolerance < feet
	rightHigher := w.GroundHeight(box.MaxX)+BarrierTolerance < feet

	switch {
	case s.FacingRight && rightHigher && w.IsWall(s.RightTile):
		return true
	case s.FacingLeft && leftHigher && w.IsWall(s.LeftTile):
		return true
	default:
		return false
	}
}

// OnCliffBorder reports, for the left and right bounding-box edges, whether
// there is no ground below that edge.
func (c *Character) OnCliffBorder(w World) (left, right bool) {
	box := c.BoundingBox()
	left = w.GroundHeight(box.MinX) > w.LevelHeight()
	right = w.GroundHeight(box.MaxX) > w.LevelHeight()
	return left, right
}

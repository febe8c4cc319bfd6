// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box given by its top-left and
// bottom-right corners. Y grows downward.
type Box struct {
	MinX, MinY float64 // Top-left corner
	MaxX, MaxY float64 // Bottom-right corner
}

// NewBox creates a box from a top-left position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 {
	return b.MinX + b.Width()/2
}

// Corners returns the four corners in the order top-left, bottom-right,
// top-right, bottom-left.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.MinX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MaxX, b.MinY},
		{b.MinX, b.MaxY},
	}
}

// ContainsPoint returns true if (x, y) lies inside the box.
// All four edges are inclusive.
func (b Box) ContainsPoint(x, y float64) bool {
	return b.MinX <= x && x <= b.MaxX && b.MinY <= y && y <= b.MaxY
}

// ContainsAnyCorner returns true if any corner of other lies inside b.
func (b Box) ContainsAnyCorner(other Box) bool {
	for _, p := range other.Corners() {
		if b.ContainsPoint(p.X, p.Y) {
			return true
		}
	}
	return false
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package game

import (
	"math"

	"github.com/vovakirdan/taekwondino/internal/core"
)

// Viewport maps world units to terminal cells. The camera follows a target
// horizontally and is clamped to the level; the full level height always
// fits in the play area.
type Viewport struct {
	Left, Top     int // Screen cell of the play area's top-left corner
	Cols, Rows    int // Play area size in cells
	UnitsPerCol   float64
	UnitsPerRow   float64
	CameraX       float64 // World x at the left edge of the play area
	levelLength   float64
	visibleLength float64
}

// cellsPerTile is how many screen columns one tile column spans.
const cellsPerTile = 4

// NewViewport sizes a viewport for a play area of cols x rows cells showing
// a level of the given geometry.
func NewViewport(left, top, cols, rows int, tileSize, levelLength, levelHeight float64) Viewport {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)
	v := Viewport{
		Left:        left,
		Top:         top,
		Cols:        cols,
		Rows:        rows,
		UnitsPerCol: tileSize / cellsPerTile,
		UnitsPerRow: levelHeight / float64(rows),
		levelLength: levelLength,
	}
	v.visibleLength = float64(cols) * v.UnitsPerCol
	return v
}

// Follow centers the camera on world x, clamped so the view never shows
// past either end of the level.
func (v *Viewport) Follow(x float64) {
	cam := x - v.visibleLength/2
	maxCam := v.levelLength - v.visibleLength
	if maxCam < 0 {
		maxCam = 0
	}
	v.CameraX = core.ClampF(cam, 0, maxCam)
}

// Col converts a world x to a screen column.
func (v Viewport) Col(x float64) int {
	return v.Left + int(math.Floor((x-v.CameraX)/v.UnitsPerCol))
}

// Row converts a world y to a screen row.
func (v Viewport) Row(y float64) int {
	return v.Top + int(math.Floor(y/v.UnitsPerRow))
}

// WorldX returns the world x at the center of a play-area column.
func (v Viewport) WorldX(col int) float64 {
	return v.CameraX + (float64(col)+0.5)*v.UnitsPerCol
}

// Inside reports whether a screen cell lies in the play area.
func (v Viewport) Inside(col, row int) bool {
	return col >= v.Left && col < v.Left+v.Cols && row >= v.Top && row < v.Top+v.Rows
}

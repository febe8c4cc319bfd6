package game

import (
	"fmt"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/level"
)

// Visual characters for rendering
const (
	BodyChar      = '█'
	HeadRight     = '▶'
	HeadLeft      = '◀'
	Leg1          = '╱'
	Leg2          = '╲'
	GrassChar     = '▀'
	SoilChar      = '░'
	WallChar      = '▓'
	MiniOpen      = '·'
	MiniWall      = '▪'
	MiniPlayer    = '@'
	MiniMonster   = 'm'
	MiniCorpse    = 'x'
	hudRows       = 2 // HUD line and minimap line
	lowHealthPart = 4 // Health below 1/4 of the start is drawn red
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	lvl := g.sim.Level()
	player := g.sim.Player()

	v := g.viewport(dst)
	v.Follow(player.State.CenterX)

	g.drawTerrain(dst, v, lvl)
	for _, m := range g.sim.Monsters() {
		g.drawCharacter(dst, v, m)
	}
	g.drawCharacter(dst, v, player)

	g.drawHUD(dst)
	g.drawMinimap(dst, lvl)

	switch g.sim.Screen() {
	case core.ScreenTitle:
		g.drawCenteredMessage(dst, "TAE KWON DINO",
			fmt.Sprintf("Level 1: %s  |  Press any key", g.setups[0].Level.Name()))
	case core.ScreenGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press any key", g.sim.Score()))
	case core.ScreenEnding:
		g.drawCenteredMessage(dst, "YOU WIN!",
			fmt.Sprintf("Score: %d  Kills: %d  |  Press any key", g.sim.Score(), g.sim.Kills()))
	case core.ScreenRunning:
		if g.sim.Paused() {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

// viewport fits the current level into the screen below the HUD.
func (g *Game) viewport(dst *core.Screen) Viewport {
	lvl := g.sim.Level()
	return NewViewport(0, hudRows, dst.Width(), dst.Height()-hudRows,
		lvl.TileSize(), lvl.Length(), lvl.LevelHeight())
}

// drawTerrain fills every play-area column from its ground height down.
func (g *Game) drawTerrain(dst *core.Screen, v Viewport, lvl *level.Level) {
	bottom := v.Top + v.Rows
	for col := 0; col < v.Cols; col++ {
		x := v.WorldX(col)
		t := lvl.TileInfo(x)
		if tt, ok := lvl.TypeOf(t); ok && tt.Pit {
			continue
		}
		top := core.Max(v.Row(lvl.GroundHeight(x)), v.Top)
		if lvl.IsWall(t) {
			dst.DrawVLine(v.Left+col, top, bottom-top, WallChar, core.ColorGray)
			continue
		}
		dst.SetWithColor(v.Left+col, top, GrassChar, core.ColorGreen)
		dst.DrawVLine(v.Left+col, top+1, bottom-top-1, SoilChar, core.ColorYellow)
	}
}

// drawCharacter draws a character's sprite rectangle: head on the facing
// side, body below, and animated legs on the bottom row while grounded.
func (g *Game) drawCharacter(dst *core.Screen, v Viewport, c *character.Character) {
	s := c.State
	left := v.Col(s.X)
	right := core.Max(v.Col(s.X+c.Metadata.SpriteWidth)-1, left)
	top := v.Row(s.Y)
	bottom := core.Max(v.Row(s.Y+c.Metadata.SpriteHeight)-1, top)
	color := characterColor(c)

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if !v.Inside(col, row) {
				continue
			}
			r := BodyChar
			switch {
			case row == top && c.Facing() == character.DirectionRight && col == right:
				r = HeadRight
			case row == top && c.Facing() == character.DirectionLeft && col == left:
				r = HeadLeft
			case row == bottom && bottom > top:
				r = legRune(col-left, c.AnimationFrame(g.sim.Frame()), s.Grounded)
			}
			dst.SetWithColor(col, row, r, color)
		}
	}
}

// legRune alternates leg strokes with the animation frame; legs are tucked
// in the air.
func legRune(offset, frame int, grounded bool) rune {
	if !grounded {
		return Leg1
	}
	if (offset+frame)%2 == 0 {
		return Leg1
	}
	return Leg2
}

// characterColor picks a color from the action sprite.
func characterColor(c *character.Character) core.Color {
	if !c.IsAlive() {
		return core.ColorGray
	}
	switch c.State.ActionSprite {
	case character.SpriteHurt:
		return core.ColorBrightRed
	case character.SpriteJump:
		return core.ColorBrightCyan
	case character.SpriteRun:
		if c.IsMonster() {
			return core.ColorBrightMagenta
		}
		return core.ColorBrightGreen
	}
	switch c.Metadata.Behavior {
	case character.BehaviorPatrol:
		return core.ColorOrange
	case character.BehaviorFollow:
		return core.ColorMagenta
	}
	return core.ColorGreen
}

// drawHUD draws the status line on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	player := g.sim.Player()
	lvl := g.sim.Level()

	name := fmt.Sprintf(" %s ", player.Metadata.Name)
	dst.DrawTextColored(1, 0, name, core.ColorBrightGreen)
	x := 1 + len([]rune(name))

	health := fmt.Sprintf(" HP %d/%d ", player.State.Health, player.Metadata.StartingHealth)
	healthColor := core.ColorDefault
	if player.State.Health*lowHealthPart < player.Metadata.StartingHealth {
		healthColor = core.ColorBrightRed
	}
	dst.DrawTextColored(x, 0, health, healthColor)
	x += len(health)

	levelText := fmt.Sprintf(" Level %d/%d %s ", g.sim.LevelIndex()+1, g.sim.LevelCount(), lvl.Name())
	dst.DrawText(x, 0, levelText)

	scoreText := fmt.Sprintf(" Score: %d ", g.sim.Score())
	dst.DrawText(dst.Width()-len(scoreText)-1, 0, scoreText)
}

// drawMinimap squeezes the whole level into the second row: terrain,
// monsters and the player.
func (g *Game) drawMinimap(dst *core.Screen, lvl *level.Level) {
	w := dst.Width()
	if w <= 0 {
		return
	}
	length := lvl.Length()
	const row = 1

	for i := 0; i < w; i++ {
		x := (float64(i) + 0.5) * length / float64(w)
		t := lvl.TileInfo(x)
		tt, _ := lvl.TypeOf(t)
		switch {
		case tt.Pit:
			dst.Set(i, row, ' ')
		case lvl.IsWall(t):
			dst.SetWithColor(i, row, MiniWall, core.ColorGray)
		default:
			dst.SetWithColor(i, row, MiniOpen, core.ColorGreen)
		}
	}

	cell := func(x float64) int {
		return core.Clamp(int(x/length*float64(w)), 0, w-1)
	}
	for _, m := range g.sim.Monsters() {
		if m.IsAlive() {
			dst.SetWithColor(cell(m.State.CenterX), row, MiniMonster, core.ColorMagenta)
		} else {
			dst.SetWithColor(cell(m.State.CenterX), row, MiniCorpse, core.ColorGray)
		}
	}
	dst.SetWithColor(cell(g.sim.Player().State.CenterX), row, MiniPlayer, core.ColorBrightGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

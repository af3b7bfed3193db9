package flappy

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Overlay text positions, in world units from the top.
const (
	titleY     = 100
	hintY      = 140
	startBestY = 170
	gameOverY  = 200
	bestY      = 300
	scoreY     = 20
)

// Grids shorter than this draw the score as plain text.
const bigDigitRows = 16

// RenderContext carries the glyphs and the world-to-cell mapping used to
// draw a snapshot.
type RenderContext struct {
	Assets   Assets
	Viewport core.Viewport
}

// NewRenderContext creates a context that stretches the world over a
// cols x rows grid.
func NewRenderContext(a Assets, world config.World, cols, rows int) RenderContext {
	return RenderContext{
		Assets:   a,
		Viewport: core.NewViewport(world.Width, world.Height, cols, rows),
	}
}

// Render draws a snapshot. Layers go back to front: sky, pipes, bird,
// ground, score, buttons and overlays.
func Render(rc RenderContext, s Snapshot, dst *core.Screen) {
	dst.Clear()

	drawSky(rc, s, dst)
	for _, p := range s.Pipes {
		drawPipe(rc, p, dst)
	}
	drawBird(rc, s, dst)
	drawGround(rc, s, dst)
	drawScore(rc, s, dst)

	a := rc.Assets
	if s.PauseVisible() {
		label := "Pause"
		if s.Phase == Paused {
			label = "Resume"
		}
		drawButton(rc, s.PauseButton, label, a.PauseColor, dst)
	}

	switch s.Phase {
	case NotStarted:
		drawCentered(rc, titleY, "FLAPPY BIRD", a.TextColor, dst)
		drawCentered(rc, hintY, "Press SPACE to flap", a.TextColor, dst)
		if s.HighScore > 0 {
			drawCentered(rc, startBestY, fmt.Sprintf("Highscore: %d", s.HighScore), a.TextColor, dst)
		}
	case Paused:
		drawCentered(rc, s.World.H/2, "Paused", a.AlertColor, dst)
	case GameOver:
		drawCentered(rc, gameOverY, "GAME OVER", a.AlertColor, dst)
		drawCentered(rc, bestY, fmt.Sprintf("Highscore: %d", s.HighScore), a.TextColor, dst)
		drawButton(rc, s.RestartButton, "Restart", a.RestartColor, dst)
	}
}

func drawSky(rc RenderContext, s Snapshot, dst *core.Screen) {
	for _, d := range rc.Assets.Skies[s.Background].Decor {
		col, row := rc.Viewport.ToCell(d.X, d.Y)
		dst.DrawTextColor(col, row, d.Glyph, d.Color)
	}
}

// drawPipe fills both barriers and caps the edges facing the gap.
func drawPipe(rc RenderContext, p PipeView, dst *core.Screen) {
	a := rc.Assets.Pipe

	upper := rc.Viewport.RectToCells(p.Upper)
	dst.DrawRect(upper, a.Body, a.Color)
	if upper.H > 0 {
		dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, a.CapTop, a.CapColor)
	}

	lower := rc.Viewport.RectToCells(p.Lower)
	dst.DrawRect(lower, a.Body, a.Color)
	if lower.H > 0 {
		dst.DrawHLine(lower.X, lower.Y, lower.W, a.CapBottom, a.CapColor)
	}
}

func drawBird(rc RenderContext, s Snapshot, dst *core.Screen) {
	sp := rc.Assets.Bird(s.Skin)
	c := rc.Viewport.RectToCells(s.BirdShape)

	dst.DrawRect(c, sp.Body, sp.Color)
	mid := c.Y + c.H/2
	dst.SetCell(c.X, mid, sp.Wings[s.Bird.Frame%len(sp.Wings)], sp.Color)
	if c.W >= 3 {
		dst.SetCell(c.Right()-2, c.Y, sp.Eye, sp.Accent)
	}
	if c.W >= 2 {
		dst.SetCell(c.Right()-1, mid, sp.Beak, sp.Accent)
	}
}

// drawGround draws the patterned top row, shifted by the scroll offset,
// and fills the rows below it.
func drawGround(rc RenderContext, s Snapshot, dst *core.Screen) {
	g := rc.Assets.Ground
	vp := rc.Viewport
	cells := vp.RectToCells(core.NewRectF(0, s.GroundY, s.World.W, s.World.H-s.GroundY))
	if cells.H <= 0 {
		return
	}

	pattern := []rune(g.Pattern)
	if len(pattern) > 0 && s.GroundTile > 0 {
		for col := 0; col < vp.Cols; col++ {
			x, _ := vp.ToWorld(col, cells.Y)
			phase := math.Mod(x-s.GroundShift, s.GroundTile) / s.GroundTile
			i := int(phase*float64(len(pattern))) % len(pattern)
			dst.SetCell(col, cells.Y, pattern[i], g.Color)
		}
	}

	for row := cells.Y + 1; row < cells.Bottom(); row++ {
		dst.DrawHLine(0, row, vp.Cols, g.Fill, g.FillColor)
	}
}

// drawScore draws the score near the top, in three-row digits when the
// grid is tall enough.
func drawScore(rc RenderContext, s Snapshot, dst *core.Screen) {
	vp := rc.Viewport
	_, row := vp.ToCell(0, scoreY)
	color := rc.Assets.TextColor

	if vp.Rows < bigDigitRows {
		dst.DrawTextCentered(row, strconv.Itoa(s.Score), color)
		return
	}

	digits := s.ScoreDigits()
	width := len(digits)*4 - 1
	x := (vp.Cols - width) / 2
	for i, d := range digits {
		for r, line := range rc.Assets.Digits[d] {
			drawGlyph(dst, x+i*4, row+r, line, color)
		}
	}
}

// drawGlyph writes text but leaves cells under spaces untouched.
func drawGlyph(dst *core.Screen, x, y int, text string, c core.Color) {
	i := 0
	for _, r := range text {
		if r != ' ' {
			dst.SetCell(x+i, y, r, c)
		}
		i++
	}
}

// drawButton clears the button's cells and centers its label.
func drawButton(rc RenderContext, region core.RectF, label string, c core.Color, dst *core.Screen) {
	cells := rc.Viewport.RectToCells(region)
	dst.DrawRect(cells, ' ', core.ColorDefault)
	if cells.H >= 3 {
		dst.DrawBox(cells, c)
	}
	text := "[" + label + "]"
	x := cells.X + (cells.W-len([]rune(text)))/2
	dst.DrawTextColor(x, cells.Y+cells.H/2, text, c)
}

func drawCentered(rc RenderContext, y float64, text string, c core.Color, dst *core.Screen) {
	_, row := rc.Viewport.ToCell(0, y)
	dst.DrawTextCentered(row, text, c)
}

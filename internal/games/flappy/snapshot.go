package flappy

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeView is a pipe together with its barrier boxes.
type PipeView struct {
	Pipe
	Lower, Upper core.RectF
}

// Snapshot is a read-only copy of everything the presentation layer needs
// for one frame. It shares no memory with the game.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	Bird      Bird
	BirdShape core.RectF
	Pipes     []PipeView

	Score     int
	HighScore int
	Session   int

	Background string
	Skin       string

	World       core.RectF
	GroundY     float64
	GroundTile  float64
	GroundShift float64

	PauseButton   core.RectF
	RestartButton core.RectF
}

// Snapshot returns the current game state for rendering.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeView, 0, g.stream.Len())
	for _, p := range g.stream.pipes {
		lower, upper := p.Shapes(g.cfg.Obstacles)
		pipes = append(pipes, PipeView{Pipe: p, Lower: lower, Upper: upper})
	}

	w := g.cfg.World
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Bird:          g.bird,
		BirdShape:     g.bird.Shape(g.cfg.Bird),
		Pipes:         pipes,
		Score:         g.score,
		HighScore:     g.highScore,
		Session:       g.sessions,
		Background:    g.background,
		Skin:          g.skin,
		World:         core.NewRectF(0, 0, w.Width, w.Height),
		GroundY:       w.GroundY(),
		GroundTile:    w.GroundTile,
		GroundShift:   g.groundShift,
		PauseButton:   g.pauseButton(),
		RestartButton: g.restartButton(),
	}
}

// ScoreDigits returns the decimal digits of the score, most significant
// first.
func (s Snapshot) ScoreDigits() []int {
	text := strconv.Itoa(s.Score)
	digits := make([]int, len(text))
	for i, r := range text {
		digits[i] = int(r - '0')
	}
	return digits
}

// PauseVisible reports whether the pause button is shown and clickable.
func (s Snapshot) PauseVisible() bool {
	return s.Phase.Active()
}

// RestartVisible reports whether the restart button is shown and clickable.
func (s Snapshot) RestartVisible() bool {
	return s.Phase == GameOver
}

package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeShapes holds one pipe's barrier boxes.
type PipeShapes struct {
	Lower, Upper core.RectF
}

// Frame is the set of collision shapes for one tick, built once after
// everything has moved.
type Frame struct {
	Bird  core.RectF
	Pipes []PipeShapes
}

// NewFrame computes the collision shapes for the current positions.
func NewFrame(b Bird, pipes []Pipe, cfg config.FlappyConfig) Frame {
	f := Frame{
		Bird:  b.Shape(cfg.Bird),
		Pipes: make([]PipeShapes, len(pipes)),
	}
	for i, p := range pipes {
		f.Pipes[i].Lower, f.Pipes[i].Upper = p.Shapes(cfg.Obstacles)
	}
	return f
}

// Verdict is the outcome of resolving one tick.
type Verdict struct {
	HitPipe    bool
	HitGround  bool
	HitCeiling bool
	Passed     int // Pipes that scored this tick
}

// Collided reports whether the tick ends the session.
func (v Verdict) Collided() bool {
	return v.HitPipe || v.HitGround || v.HitCeiling
}

// Cause names the collision, pipe taking precedence over ground.
func (v Verdict) Cause() string {
	switch {
	case v.HitPipe:
		return "pipe"
	case v.HitGround:
		return "ground"
	case v.HitCeiling:
		return "ceiling"
	default:
		return ""
	}
}

// Resolve checks the frame for collisions and marks passed pipes in s.
// Collision and scoring are evaluated independently, so a single tick can
// both score and end the game.
func Resolve(f Frame, s *Stream, cfg config.FlappyConfig) Verdict {
	var v Verdict
	for _, p := range f.Pipes {
		if f.Bird.Intersects(p.Lower) || f.Bird.Intersects(p.Upper) {
			v.HitPipe = true
			break
		}
	}
	v.HitGround = f.Bird.Bottom() >= cfg.World.GroundY()
	v.HitCeiling = cfg.Rules.CeilingKills && f.Bird.Y < 0
	v.Passed = s.DetectPassed(f.Bird.X)
	return v
}

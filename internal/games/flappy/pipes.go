package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is a pair of barriers with a vertical gap between them.
type Pipe struct {
	X      float64 // Left edge
	GapTop float64 // Top of the lower barrier
	Passed bool    // Set once the pipe has scored; never cleared
}

// NewPipe spawns a pipe just right of the screen with a random gap height
// drawn from whole units in [GapMin, GapMax).
func NewPipe(world config.World, o config.Obstacles, rng *rand.Rand) Pipe {
	span := int(o.GapMax - o.GapMin)
	return Pipe{
		X:      world.Width + o.SpawnOffset,
		GapTop: o.GapMin + float64(rng.Intn(max(span, 1))),
	}
}

// Advance scrolls the pipe left by one tick.
func (p Pipe) Advance(o config.Obstacles) Pipe {
	p.X -= o.ScrollSpeed
	return p
}

// Shapes returns the lower and upper barrier boxes. They are separated
// vertically by exactly GapSize.
func (p Pipe) Shapes(o config.Obstacles) (lower, upper core.RectF) {
	lower = core.NewRectF(p.X, p.GapTop, o.PipeWidth, o.PipeHeight)
	upper = core.NewRectF(p.X, p.GapTop-o.GapSize-o.PipeHeight, o.PipeWidth, o.PipeHeight)
	return lower, upper
}

// Stream holds the live pipes in spawn order, which is also left-to-right
// order since every pipe scrolls at the same speed.
type Stream struct {
	pipes []Pipe
	world config.World
	cfg   config.Obstacles
}

// NewStream creates an empty stream.
func NewStream(world config.World, o config.Obstacles) *Stream {
	return &Stream{
		pipes: make([]Pipe, 0, 8),
		world: world,
		cfg:   o,
	}
}

// Reset removes all pipes.
func (s *Stream) Reset() {
	s.pipes = s.pipes[:0]
}

// SpawnIfNeeded appends one pipe when the stream is empty or the newest
// pipe has scrolled left of the spawn threshold.
func (s *Stream) SpawnIfNeeded(rng *rand.Rand) bool {
	if n := len(s.pipes); n > 0 && s.pipes[n-1].X >= s.world.Width-s.cfg.SpawnGap {
		return false
	}
	s.pipes = append(s.pipes, NewPipe(s.world, s.cfg, rng))
	return true
}

// Advance scrolls every pipe and drops those at or past the eviction line.
func (s *Stream) Advance() {
	kept := s.pipes[:0]
	for _, p := range s.pipes {
		p = p.Advance(s.cfg)
		if p.X > s.cfg.EvictX {
			kept = append(kept, p)
		}
	}
	s.pipes = kept
}

// DetectPassed marks every unscored pipe whose right edge is left of birdX
// and returns how many were marked.
func (s *Stream) DetectPassed(birdX float64) int {
	passed := 0
	for i := range s.pipes {
		p := &s.pipes[i]
		if !p.Passed && p.X+s.cfg.PipeWidth < birdX {
			p.Passed = true
			passed++
		}
	}
	return passed
}

// Pipes returns a copy of the live pipes.
func (s *Stream) Pipes() []Pipe {
	out := make([]Pipe, len(s.pipes))
	copy(out, s.pipes)
	return out
}

// Len returns the number of live pipes.
func (s *Stream) Len() int {
	return len(s.pipes)
}

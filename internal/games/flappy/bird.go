package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled body. Transitions return a new value;
// X never changes after spawn and velocity is not clamped.
type Bird struct {
	X, Y  float64
	Vel   float64 // Positive is downward
	Ticks int     // Update calls since spawn
	Frame int     // Animation frame index
}

// NewBird places a bird at rest at its spawn point.
func NewBird(cfg config.Bird) Bird {
	return Bird{X: cfg.X, Y: cfg.Y}
}

// Flap replaces the velocity with the flap impulse.
func (b Bird) Flap(p config.Physics) Bird {
	b.Vel = p.FlapImpulse
	return b
}

// Update integrates one tick of gravity and advances the wing animation
// every FrameTicks calls.
func (b Bird) Update(p config.Physics, anim config.Bird) Bird {
	b.Ticks++
	b.Vel += p.Gravity
	b.Y += b.Vel
	if b.Ticks%anim.FrameTicks == 0 {
		b.Frame = (b.Frame + 1) % anim.FrameCount
	}
	return b
}

// Shape returns the collision box at the bird's position.
func (b Bird) Shape(size config.Bird) core.RectF {
	return core.NewRectF(b.X, b.Y, size.Width, size.Height)
}

package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// flashTicks is how long a cue stays on the HUD.
const flashTicks = 30

// CueSink receives the cues a tick produced. The terminal has no mixer, so
// cues become a debug log line, a short HUD flash and, when enabled, the
// terminal bell on hit and die.
type CueSink struct {
	logger *log.Logger
	bell   io.Writer // nil disables the bell

	flash     core.Cue
	flashLeft int
}

// NewCueSink creates a sink. A nil bell writer keeps the terminal quiet.
func NewCueSink(logger *log.Logger, bell io.Writer) *CueSink {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CueSink{logger: logger, bell: bell}
}

// Play handles the cues of one tick, in order.
func (s *CueSink) Play(cues []core.Cue) {
	for _, c := range cues {
		s.logger.Debug("cue", "name", c)
		s.flash = c
		s.flashLeft = flashTicks

		if s.bell != nil && (c == flappy.CueHit || c == flappy.CueDie) {
			if _, err := io.WriteString(s.bell, "\a"); err != nil {
				s.logger.Debug("bell failed", "err", err)
			}
		}
	}
}

// Tick ages the current flash by one tick.
func (s *CueSink) Tick() {
	if s.flashLeft > 0 {
		s.flashLeft--
	}
}

// Flash returns the cue to show on the HUD, if any.
func (s *CueSink) Flash() (core.Cue, bool) {
	if s.flashLeft == 0 {
		return "", false
	}
	return s.flash, true
}

// Draw writes the current flash into the top-left corner of dst.
func (s *CueSink) Draw(dst *core.Screen) {
	if c, ok := s.Flash(); ok {
		dst.DrawTextColor(1, 0, "♪ "+string(c), core.ColorGray)
	}
}

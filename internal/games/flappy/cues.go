package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Cues emitted by Step, in the order they happen within a tick.
const (
	CueFlap  core.Cue = "flap"   // Bird flapped
	CueHit   core.Cue = "hit"    // Bird struck a pipe
	CueDie   core.Cue = "die"    // Bird reached the ground or ceiling
	CuePoint core.Cue = "point"  // A pipe was passed
	CuePause core.Cue = "swoosh" // Game entered pause
)

package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:        288,
			Height:       512,
			GroundHeight: 112,
			GroundTile:   48,
			GroundScroll: 2,
		},
		Physics: Physics{
			Gravity:     0.25,
			FlapImpulse: -4.5,
		},
		Bird: Bird{
			X:          50,
			Y:          200,
			Width:      34,
			Height:     24,
			FrameTicks: 5,
			FrameCount: 3,
			Skin:       "yellow",
		},
		Obstacles: Obstacles{
			PipeWidth:   52,
			PipeHeight:  320,
			GapSize:     100,
			GapMin:      100,
			GapMax:      300,
			ScrollSpeed: 2,
			SpawnOffset: 30,
			SpawnGap:    150,
			EvictX:      -50,
		},
		UI: UI{
			PauseButton:   Button{X: 218, Y: 10, W: 60, H: 30},
			RestartButton: Button{X: 94, Y: 350, W: 100, H: 40},
			Background:    "random",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

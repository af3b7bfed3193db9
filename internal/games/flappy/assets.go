package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Assets bundles every glyph and color the renderer draws with. It is
// built once and handed to the renderer through a RenderContext.
type Assets struct {
	Birds  map[string]BirdSprite // Keyed by skin
	Skies  map[string]Sky        // Keyed by background
	Pipe   PipeSprite
	Ground GroundSprite
	Digits [10][3]string // Three-row score digits

	TextColor    core.Color
	AlertColor   core.Color
	PauseColor   core.Color
	RestartColor core.Color
}

// BirdSprite draws the bird as wing, body, eye and beak.
type BirdSprite struct {
	Wings  [3]rune // Indexed by animation frame
	Body   rune
	Eye    rune
	Beak   rune
	Color  core.Color
	Accent core.Color // Eye and beak
}

// PipeSprite draws a barrier with a cap on the edge facing the gap.
type PipeSprite struct {
	Body      rune
	CapTop    rune // Bottom row of the upper barrier
	CapBottom rune // Top row of the lower barrier
	Color     core.Color
	CapColor  core.Color
}

// GroundSprite draws the scrolling ground strip.
type GroundSprite struct {
	Pattern   string // Repeats once per ground tile along the top row
	Fill      rune
	Color     core.Color
	FillColor core.Color
}

// Sky is the scenery behind the pipes.
type Sky struct {
	Decor []Decor
}

// Decor is a fixed piece of scenery in world units.
type Decor struct {
	X, Y  float64
	Glyph string
	Color core.Color
}

// DefaultAssets returns the built-in glyph set.
func DefaultAssets() Assets {
	wings := [3]rune{'⌃', '-', '⌄'}
	return Assets{
		Birds: map[string]BirdSprite{
			"yellow": {Wings: wings, Body: '█', Eye: 'o', Beak: '>', Color: core.ColorBrightYellow, Accent: core.ColorOrange},
			"blue":   {Wings: wings, Body: '█', Eye: 'o', Beak: '>', Color: core.ColorBrightBlue, Accent: core.ColorOrange},
			"red":    {Wings: wings, Body: '█', Eye: 'o', Beak: '>', Color: core.ColorBrightRed, Accent: core.ColorYellow},
		},
		Skies: map[string]Sky{
			"day": {Decor: []Decor{
				{X: 20, Y: 60, Glyph: "(~~)", Color: core.ColorBrightWhite},
				{X: 150, Y: 110, Glyph: "(~~~)", Color: core.ColorBrightWhite},
				{X: 230, Y: 180, Glyph: "(~)", Color: core.ColorWhite},
			}},
			"night": {Decor: []Decor{
				{X: 15, Y: 40, Glyph: "·", Color: core.ColorGray},
				{X: 90, Y: 90, Glyph: "*", Color: core.ColorWhite},
				{X: 140, Y: 30, Glyph: "·", Color: core.ColorGray},
				{X: 200, Y: 140, Glyph: "·", Color: core.ColorGray},
				{X: 250, Y: 70, Glyph: "(", Color: core.ColorBrightYellow},
				{X: 60, Y: 250, Glyph: "*", Color: core.ColorGray},
			}},
		},
		Pipe: PipeSprite{
			Body:      '█',
			CapTop:    '▄',
			CapBottom: '▀',
			Color:     core.ColorGreen,
			CapColor:  core.ColorBrightGreen,
		},
		Ground: GroundSprite{
			Pattern:   "═╤══╧═",
			Fill:      '░',
			Color:     core.ColorBrightGreen,
			FillColor: core.ColorYellow,
		},
		Digits: [10][3]string{
			{" _ ", "| |", "|_|"},
			{"   ", "  |", "  |"},
			{" _ ", " _|", "|_ "},
			{" _ ", " _|", " _|"},
			{"   ", "|_|", "  |"},
			{" _ ", "|_ ", " _|"},
			{" _ ", "|_ ", "|_|"},
			{" _ ", "  |", "  |"},
			{" _ ", "|_|", "|_|"},
			{" _ ", "|_|", " _|"},
		},
		TextColor:    core.ColorBrightWhite,
		AlertColor:   core.ColorBrightRed,
		PauseColor:   core.ColorGray,
		RestartColor: core.ColorBrightGreen,
	}
}

// Bird returns the sprite for a skin, falling back to yellow.
func (a Assets) Bird(skin string) BirdSprite {
	if s, ok := a.Birds[skin]; ok {
		return s
	}
	return a.Birds["yellow"]
}

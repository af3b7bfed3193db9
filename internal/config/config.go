// Package config provides YAML-based game configuration loading and
// validation for tui-flappy.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
// Every length is in world units of the fixed logical screen.
type FlappyConfig struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Obstacles Obstacles `yaml:"obstacles"`
	Rules     Rules     `yaml:"rules"`
	UI        UI        `yaml:"ui"`
}

// World defines the logical screen and the scrolling ground strip.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundTile   float64 `yaml:"ground_tile"`   // Period of the ground scroll pattern
	GroundScroll float64 `yaml:"ground_scroll"` // Ground shift per tick
}

// GroundY returns the y-coordinate of the top of the ground strip.
func (w World) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// Physics defines the bird's vertical motion.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap, negative is up
}

// Bird defines the bird's spawn point, size and animation.
type Bird struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FrameTicks int     `yaml:"frame_ticks"` // Updates per animation frame
	FrameCount int     `yaml:"frame_count"`
	Skin       string  `yaml:"skin"` // yellow, blue, red or random
}

// Obstacles defines pipe geometry and the spawn cadence.
type Obstacles struct {
	PipeWidth   float64 `yaml:"pipe_width"`
	PipeHeight  float64 `yaml:"pipe_height"`
	GapSize     float64 `yaml:"gap_size"`
	GapMin      float64 `yaml:"gap_min"` // Lowest gap top, inclusive
	GapMax      float64 `yaml:"gap_max"` // Highest gap top, exclusive
	ScrollSpeed float64 `yaml:"scroll_speed"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance right of the screen edge
	SpawnGap    float64 `yaml:"spawn_gap"`    // Spawn once the last pipe is this far from the right edge
	EvictX      float64 `yaml:"evict_x"`      // Pipes at or left of this x are dropped
}

// Rules toggles optional gameplay rules.
type Rules struct {
	CeilingKills bool `yaml:"ceiling_kills"`
}

// UI defines the clickable regions and the scenery.
type UI struct {
	PauseButton   Button `yaml:"pause_button"`
	RestartButton Button `yaml:"restart_button"`
	Background    string `yaml:"background"` // day, night or random
}

// Button is a clickable region in world units.
type Button struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Skins lists the bird color variants.
var Skins = []string{"yellow", "blue", "red"}

// Backgrounds lists the scenery variants.
var Backgrounds = []string{"day", "night"}

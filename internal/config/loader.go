package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other candidates are skipped when they fail.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultFlappyYAML); err == nil {
		return cfg, nil
	}
	return DefaultFlappyConfig(), nil
}

// parse decodes YAML over the built-in defaults and validates the result.
func parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every setting that would break the simulation.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w, o, b := c.World, c.Obstacles, c.Bird
	check(w.Width > 0 && w.Height > 0, "world size must be positive, got %vx%v", w.Width, w.Height)
	check(w.GroundHeight >= 0 && w.GroundHeight < w.Height, "ground_height %v must be within [0, %v)", w.GroundHeight, w.Height)
	check(w.GroundTile > 0, "ground_tile must be positive, got %v", w.GroundTile)
	check(w.GroundScroll >= 0, "ground_scroll must not be negative, got %v", w.GroundScroll)

	check(c.Physics.Gravity > 0, "gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapImpulse < 0, "flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)

	check(b.Width > 0 && b.Height > 0, "bird size must be positive, got %vx%v", b.Width, b.Height)
	check(b.Y+b.Height < w.GroundY(), "bird must spawn above the ground")
	check(b.FrameTicks > 0, "frame_ticks must be positive, got %d", b.FrameTicks)
	check(b.FrameCount > 0, "frame_count must be positive, got %d", b.FrameCount)
	check(b.Skin == "random" || slices.Contains(Skins, b.Skin), "unknown skin %q", b.Skin)

	check(o.PipeWidth > 0 && o.PipeHeight > 0, "pipe size must be positive, got %vx%v", o.PipeWidth, o.PipeHeight)
	check(o.GapSize > 0, "gap_size must be positive, got %v", o.GapSize)
	check(o.GapMin < o.GapMax, "gap_min %v must be below gap_max %v", o.GapMin, o.GapMax)
	check(o.ScrollSpeed > 0, "scroll_speed must be positive, got %v", o.ScrollSpeed)
	check(o.SpawnGap > 0 && o.SpawnGap < w.Width, "spawn_gap %v must be within (0, %v)", o.SpawnGap, w.Width)
	check(o.EvictX <= -o.PipeWidth+o.ScrollSpeed, "evict_x %v would drop pipes that are still visible", o.EvictX)

	check(c.UI.PauseButton.W > 0 && c.UI.PauseButton.H > 0, "pause_button must have a positive size")
	check(c.UI.RestartButton.W > 0 && c.UI.RestartButton.H > 0, "restart_button must have a positive size")
	check(c.UI.Background == "random" || slices.Contains(Backgrounds, c.UI.Background), "unknown background %q", c.UI.Background)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

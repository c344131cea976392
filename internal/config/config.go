// Package config provides YAML-based game configuration loading and
// speed preset management.
package config

import "fmt"

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Speed  SpeedConfig  `yaml:"speed"`
	Render RenderConfig `yaml:"render"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the simulation pace.
type SpeedConfig struct {
	TickRate int `yaml:"tick_rate"` // Snake moves per second
}

// RenderConfig toggles the cosmetic layers of the playfield.
// None of these affect the game rules.
type RenderConfig struct {
	Gradient     bool `yaml:"gradient"`     // Body darkens toward the tail
	HeadMarker   bool `yaml:"head_marker"`  // Direction glyph on the head
	Trail        bool `yaml:"trail"`        // Dim marker on the just-vacated cell
	Checkerboard bool `yaml:"checkerboard"` // Faint background lattice
}

// Supported value ranges. Out-of-range values are clamped, not rejected.
const (
	MinGridSize = 8
	MinTickRate = 1
	MaxTickRate = 60
)

// Normalize clamps out-of-range values to the supported bounds.
func (c *SnakeConfig) Normalize() {
	if c.Grid.Width < MinGridSize {
		c.Grid.Width = MinGridSize
	}
	if c.Grid.Height < MinGridSize {
		c.Grid.Height = MinGridSize
	}
	if c.Speed.TickRate < MinTickRate {
		c.Speed.TickRate = MinTickRate
	}
	if c.Speed.TickRate > MaxTickRate {
		c.Speed.TickRate = MaxTickRate
	}
}

// SpeedPreset represents a named game speed.
type SpeedPreset string

const (
	SpeedClassic SpeedPreset = "classic"
	SpeedFast    SpeedPreset = "fast"
)

// ParseSpeedPreset validates a preset name from the command line.
func ParseSpeedPreset(name string) (SpeedPreset, error) {
	switch SpeedPreset(name) {
	case SpeedClassic, SpeedFast:
		return SpeedPreset(name), nil
	}
	return "", fmt.Errorf("unknown speed preset %q (valid: classic, fast)", name)
}

// TickRateForPreset returns the tick rate for a speed preset.
func TickRateForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedFast:
		return 20
	default:
		return 10
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	cfg.Speed.TickRate = TickRateForPreset(preset)
}

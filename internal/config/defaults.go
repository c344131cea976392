package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the default game configuration. It matches the
// embedded defaults/snake.yaml.
func Default() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Speed: SpeedConfig{
			TickRate: 10,
		},
		Render: RenderConfig{
			Gradient:     true,
			HeadMarker:   true,
			Trail:        false,
			Checkerboard: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

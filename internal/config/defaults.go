package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration: a 32x32 grid
// on a 480 unit field, five starting squares and a 100ms movement interval.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:       32,
			WindowSize: 480,
		},
		Snake: StartConfig{
			StartingSquares: 5,
			StartX:          0,
			StartY:          0,
			Heading:         "right",
		},
		Timing: TimingConfig{
			MoveIntervalMS: 100,
			FrameRate:      60,
		},
		Colors: ColorConfig{
			Background: "#000000",
			Snake:      "#FF0000",
			Treat:      "#0000FF",
			Text:       "#AAAAAA",
		},
	}
}

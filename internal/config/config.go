// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  StartConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Colors ColorConfig  `yaml:"colors"`
}

// GridConfig defines the play field.
type GridConfig struct {
	Size       int `yaml:"size"`        // Cells per side
	WindowSize int `yaml:"window_size"` // Field side in pixel units
}

// StartConfig defines the initial snake.
type StartConfig struct {
	StartingSquares int    `yaml:"starting_squares"`
	StartX          int    `yaml:"start_x"`
	StartY          int    `yaml:"start_y"`
	Heading         string `yaml:"heading"`
}

// TimingConfig defines movement and refresh cadence.
type TimingConfig struct {
	MoveIntervalMS int `yaml:"move_interval_ms"`
	FrameRate      int `yaml:"frame_rate"`
}

// ColorConfig holds terminal colors (hex or ANSI codes) for each cell role.
type ColorConfig struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Treat      string `yaml:"treat"`
	Text       string `yaml:"text"`
}

// CellSize returns the size of one cell in pixel units.
func (c SnakeConfig) CellSize() int {
	if c.Grid.Size <= 0 {
		return 0
	}
	return c.Grid.WindowSize / c.Grid.Size
}

// MoveInterval returns the movement interval as a duration.
func (c SnakeConfig) MoveInterval() time.Duration {
	return time.Duration(c.Timing.MoveIntervalMS) * time.Millisecond
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size <= 0:
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.CellSize() <= 0:
		return fmt.Errorf("%w: grid.window_size %d too small for %d cells", ErrInvalidConfig, c.Grid.WindowSize, c.Grid.Size)
	case c.Snake.StartingSquares < 0:
		return fmt.Errorf("%w: snake.starting_squares must not be negative, got %d", ErrInvalidConfig, c.Snake.StartingSquares)
	case c.Timing.MoveIntervalMS <= 0:
		return fmt.Errorf("%w: timing.move_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.MoveIntervalMS)
	case c.Timing.FrameRate <= 0:
		return fmt.Errorf("%w: timing.frame_rate must be positive, got %d", ErrInvalidConfig, c.Timing.FrameRate)
	}

	switch c.Snake.Heading {
	case "left", "right", "up", "down":
	default:
		return fmt.Errorf("%w: snake.heading must be left, right, up or down, got %q", ErrInvalidConfig, c.Snake.Heading)
	}
	return nil
}

// Runtime converts the config into the values a session is started with.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridSize:        c.Grid.Size,
		CellSize:        c.CellSize(),
		StartingSquares: c.Snake.StartingSquares,
		StartX:          c.Snake.StartX,
		StartY:          c.Snake.StartY,
		StartHeading:    c.Snake.Heading,
		MoveInterval:    c.MoveInterval(),
		FrameRate:       c.Timing.FrameRate,
		Seed:            seed,
	}
}

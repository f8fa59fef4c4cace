package core

import "time"

// RuntimeConfig contains configuration passed to a session at initialization.
// Values here are already resolved from the YAML config and CLI flags.
type RuntimeConfig struct {
	GridSize        int           // Cells per side of the square play field
	CellSize        int           // Size of one cell in pixel units
	StartingSquares int           // Segments appended behind the head at start
	StartX, StartY  int           // Head start position in pixel units
	StartHeading    string        // "left", "right", "up" or "down"
	MoveInterval    time.Duration // Minimum time between two movements
	FrameRate       int           // Host loop iterations per second
	Seed            int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching the classic 480px board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridSize:        32,
		CellSize:        15,
		StartingSquares: 5,
		StartHeading:    "right",
		MoveInterval:    100 * time.Millisecond,
		FrameRate:       60,
		Seed:            0, // 0 means use current time in platform layer
	}
}

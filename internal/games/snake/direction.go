package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// delta returns the unit step for d in screen coordinates (y grows downward).
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "left", "right", "up" or "down" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}

// DirectionFromAction maps a directional action to a Direction.
// The second result is false for non-directional actions.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	}
	return DirRight, false
}

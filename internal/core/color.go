package core

// Color is the role a screen cell plays when drawn.
// The platform layer maps each role to a concrete terminal color.
type Color uint8

// Color roles used by the game and the status line.
const (
	ColorDefault Color = iota
	ColorField         // empty play-field cell
	ColorSnake         // snake segment
	ColorTreat         // treat
	ColorText          // HUD text
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorField:
		return "field"
	case ColorSnake:
		return "snake"
	case ColorTreat:
		return "treat"
	case ColorText:
		return "text"
	default:
		return "unknown"
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette maps cell color roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds a palette from configured colors. Styles are created
// through r so that SSH sessions get their own color profile.
func NewPalette(r *lipgloss.Renderer, colors config.ColorConfig) Palette {
	return Palette{
		core.ColorDefault: r.NewStyle(),
		core.ColorField:   r.NewStyle().Background(lipgloss.Color(colors.Background)),
		core.ColorSnake:   r.NewStyle().Background(lipgloss.Color(colors.Snake)),
		core.ColorTreat:   r.NewStyle().Background(lipgloss.Color(colors.Treat)),
		core.ColorText:    r.NewStyle().Foreground(lipgloss.Color(colors.Text)),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, palette Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := palette[startColor]
			if !ok {
				style = palette[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

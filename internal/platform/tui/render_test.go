package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Fill(core.Cell{Rune: ' ', Color: core.ColorField})
	s.DrawText(0, 1, "hi", core.ColorText)
	s.SetCell(4, 0, core.Cell{Rune: ' ', Color: core.ColorSnake})

	palette := NewPalette(lipgloss.DefaultRenderer(), config.DefaultSnakeConfig().Colors)
	out := RenderScreen(s, palette)

	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.DrawText(0, 0, "abc", core.Color(99))

	out := RenderScreen(s, Palette{core.ColorDefault: lipgloss.NewStyle()})
	if !strings.Contains(out, "abc") {
		t.Errorf("RenderScreen() = %q, want text rendered with default style", out)
	}
}

func TestNewPaletteCoversRoles(t *testing.T) {
	palette := NewPalette(lipgloss.DefaultRenderer(), config.DefaultSnakeConfig().Colors)
	for _, c := range []core.Color{core.ColorDefault, core.ColorField, core.ColorSnake, core.ColorTreat, core.ColorText} {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing style for %v", c)
		}
	}
}

package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellWidth is the number of terminal columns used for one grid cell, so
// that cells look square in a typical terminal font.
const CellWidth = 2

// hudHeight is the number of rows below the field.
const hudHeight = 1

// ScreenSize returns the screen dimensions needed to render a grid of
// gridSize cells per side plus the HUD.
func ScreenSize(gridSize int) (w, h int) {
	return gridSize * CellWidth, gridSize + hudHeight
}

// RenderSnapshot draws snap into dst: the empty field, every segment and
// then the treat. Segments outside the field are clipped.
func RenderSnapshot(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	grid := NewGrid(snap.GridSize, snap.CellSize)
	dst.FillRect(core.NewRect(0, 0, grid.Size*CellWidth, grid.Size), core.Cell{Rune: ' ', Color: core.ColorField})

	for _, p := range snap.Segments {
		drawCell(dst, grid, p, core.ColorSnake)
	}
	if snap.HasTreat {
		drawCell(dst, grid, snap.Treat, core.ColorTreat)
	}

	renderHUD(snap, dst, grid.Size)
}

func drawCell(dst *core.Screen, grid Grid, p core.Point, color core.Color) {
	col, row := grid.CellOf(p)
	if col < 0 || col >= grid.Size || row < 0 || row >= grid.Size {
		return
	}
	dst.FillRect(core.NewRect(col*CellWidth, row, CellWidth, 1), core.Cell{Rune: ' ', Color: color})
}

// renderHUD draws the status line under the field.
func renderHUD(snap Snapshot, dst *core.Screen, y int) {
	var hud string
	switch snap.Status {
	case StatusDead:
		hud = fmt.Sprintf(" Game over (%s)  Length: %d", snap.Reason, snap.Length)
	case StatusBoardFull:
		hud = fmt.Sprintf(" Board full!  Length: %d", snap.Length)
	default:
		hud = fmt.Sprintf(" Length: %d  Treats: %d", snap.Length, snap.Eaten)
	}
	dst.DrawText(0, y, hud, core.ColorText)
}

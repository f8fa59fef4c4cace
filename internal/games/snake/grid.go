package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid is the square play field. Positions are in pixel units, one cell
// being CellSize pixels wide.
type Grid struct {
	Size     int // Cells per side
	CellSize int
}

// NewGrid creates a grid of size×size cells.
func NewGrid(size, cellSize int) Grid {
	return Grid{Size: size, CellSize: cellSize}
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Extent returns the side length of the field in pixel units.
func (g Grid) Extent() int {
	return g.Size * g.CellSize
}

// Bounds returns the play field rectangle in pixel units.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Extent(), g.Extent())
}

// CellPoint converts a linear cell index in [0, Cells()) to the top-left
// corner of that cell.
func (g Grid) CellPoint(index int) core.Point {
	return core.Point{
		X: (index % g.Size) * g.CellSize,
		Y: (index / g.Size) * g.CellSize,
	}
}

// CellOf returns the column and row containing p. Points outside the field
// yield coordinates outside [0, Size).
func (g Grid) CellOf(p core.Point) (col, row int) {
	return core.FloorDiv(p.X, g.CellSize), core.FloorDiv(p.Y, g.CellSize)
}

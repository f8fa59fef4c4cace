package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGridCellPoint(t *testing.T) {
	g := NewGrid(32, 15)

	tests := []struct {
		index    int
		expected core.Point
	}{
		{0, core.Point{X: 0, Y: 0}},
		{1, core.Point{X: 15, Y: 0}},
		{31, core.Point{X: 465, Y: 0}},
		{32, core.Point{X: 0, Y: 15}},
		{33, core.Point{X: 15, Y: 15}},
		{1023, core.Point{X: 465, Y: 465}},
	}

	for _, tc := range tests {
		if got := g.CellPoint(tc.index); got != tc.expected {
			t.Errorf("CellPoint(%d) = %+v, expected %+v", tc.index, got, tc.expected)
		}
	}
}

func TestGridDimensions(t *testing.T) {
	g := NewGrid(32, 15)

	if g.Cells() != 1024 {
		t.Errorf("Cells() = %d, expected 1024", g.Cells())
	}
	if g.Extent() != 480 {
		t.Errorf("Extent() = %d, expected 480", g.Extent())
	}
	b := g.Bounds()
	if b.Right() != 480 || b.Bottom() != 480 || b.X != 0 || b.Y != 0 {
		t.Errorf("Bounds() = %+v, expected 480x480 at origin", b)
	}
}

func TestGridCellOf(t *testing.T) {
	g := NewGrid(32, 15)

	tests := []struct {
		p        core.Point
		col, row int
	}{
		{core.Point{X: 0, Y: 0}, 0, 0},
		{core.Point{X: 465, Y: 30}, 31, 2},
		{core.Point{X: 100, Y: 100}, 6, 6},
		{core.Point{X: -15, Y: 0}, -1, 0},
		{core.Point{X: 0, Y: 480}, 0, 32},
	}

	for _, tc := range tests {
		col, row := g.CellOf(tc.p)
		if col != tc.col || row != tc.row {
			t.Errorf("CellOf(%+v) = (%d, %d), expected (%d, %d)", tc.p, col, row, tc.col, tc.row)
		}
	}
}

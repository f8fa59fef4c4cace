package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by PlaceTreat when every cell is occupied.
var ErrBoardFull = errors.New("snake: no free cell left for a treat")

// sampleAttempts bounds the rejection-sampling phase of PlaceTreat.
const sampleAttempts = 64

// PlaceTreat returns a uniformly random cell of grid that is not in occupied.
//
// Random cells are drawn first; on a crowded board that keeps missing, the
// free cells are enumerated and one is picked by index. Both phases are
// uniform over the free cells, so the result is too.
func PlaceTreat(rng *rand.Rand, grid Grid, occupied map[core.Point]bool) (core.Point, error) {
	cells := grid.Cells()
	if cells <= 0 {
		return core.Point{}, ErrBoardFull
	}

	for i := 0; i < sampleAttempts; i++ {
		p := grid.CellPoint(rng.Intn(cells))
		if !occupied[p] {
			return p, nil
		}
	}

	free := make([]core.Point, 0, cells)
	for i := 0; i < cells; i++ {
		p := grid.CellPoint(i)
		if !occupied[p] {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return core.Point{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}

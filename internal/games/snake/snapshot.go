package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a render-ready copy of the session state. It shares no
// memory with the session.
type Snapshot struct {
	Tick     uint64
	Segments []core.Point // head first
	Treat    core.Point
	HasTreat bool
	CellSize int
	GridSize int
	Heading  Direction
	Length   int
	Eaten    int
	Pending  int // queued direction intents
	Status   Status
	Reason   DeathReason
}

// Snapshot returns the current state for rendering and determinism checks.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Segments: s.snake.Positions(),
		Treat:    s.treat,
		HasTreat: s.hasTreat,
		CellSize: s.grid.CellSize,
		GridSize: s.grid.Size,
		Heading:  s.snake.Heading(),
		Length:   s.snake.Len(),
		Eaten:    s.eaten,
		Pending:  s.queue.Len(),
		Status:   s.status,
		Reason:   s.reason,
	}
}

// Head returns the head position of the snapshot.
func (snap Snapshot) Head() core.Point {
	if len(snap.Segments) == 0 {
		return core.Point{}
	}
	return snap.Segments[0]
}

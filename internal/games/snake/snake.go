package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Segment is one body square and the direction it last moved in.
type Segment struct {
	Pos core.Point
	Dir Direction
}

// Snake is the ordered body, head at index 0 and tail last.
// Only the head's direction is authoritative.
type Snake struct {
	segments []Segment
	cellSize int
}

// NewSnake creates a snake with a head at head and grows it startingSquares
// times, so it starts with startingSquares+1 segments trailing away from heading.
func NewSnake(head core.Point, heading Direction, cellSize, startingSquares int) *Snake {
	s := &Snake{
		segments: make([]Segment, 1, max(1, startingSquares+1)),
		cellSize: cellSize,
	}
	s.segments[0] = Segment{Pos: head, Dir: heading}
	for i := 0; i < startingSquares; i++ {
		s.Grow()
	}
	return s
}

// Advance moves the snake one cell in heading. Each body segment takes the
// place of its predecessor and the head steps forward. Length is unchanged.
func (s *Snake) Advance(heading Direction) {
	s.segments[0].Dir = heading

	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}

	dx, dy := heading.delta()
	s.segments[0].Pos = s.segments[0].Pos.Add(dx*s.cellSize, dy*s.cellSize)
}

// Grow appends a segment one cell behind the tail.
// "Behind" is measured against the head's heading, not the tail's own
// direction, so after a turn the new segment may not continue the tail's line.
func (s *Snake) Grow() {
	tail := s.segments[len(s.segments)-1]
	dx, dy := s.segments[0].Dir.delta()
	tail.Pos = tail.Pos.Add(-dx*s.cellSize, -dy*s.cellSize)
	s.segments = append(s.segments, tail)
}

// SelfCollision reports whether the head shares a position with any other segment.
func (s *Snake) SelfCollision() bool {
	head := s.segments[0].Pos
	for _, seg := range s.segments[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

// BoundaryCollision reports whether the head left the [0, extent) square.
func (s *Snake) BoundaryCollision(extent int) bool {
	return !core.NewRect(0, 0, extent, extent).ContainsPoint(s.segments[0].Pos)
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.segments[0].Pos
}

// Heading returns the head's direction.
func (s *Snake) Heading() Direction {
	return s.segments[0].Dir
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Positions returns the segment positions, head first.
func (s *Snake) Positions() []core.Point {
	out := make([]core.Point, len(s.segments))
	for i, seg := range s.segments {
		out[i] = seg.Pos
	}
	return out
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.segments {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// Occupied returns the set of positions covered by the body.
func (s *Snake) Occupied() map[core.Point]bool {
	occupied := make(map[core.Point]bool, len(s.segments))
	for _, seg := range s.segments {
		occupied[seg.Pos] = true
	}
	return occupied
}

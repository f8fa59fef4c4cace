package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusAlive     Status = iota
	StatusDead             // collided with itself or the border
	StatusBoardFull        // no free cell left for a treat
	StatusQuit             // ended by the player
)

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s != StatusAlive
}

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	case StatusBoardFull:
		return "board_full"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// DeathReason tells which collision ended a dead session.
type DeathReason string

const (
	ReasonNone   DeathReason = ""
	ReasonSelf   DeathReason = "self"
	ReasonBorder DeathReason = "border"
)

// StepResult describes what one Update did.
type StepResult struct {
	Moved  bool // the movement interval elapsed and the snake advanced
	Turned bool // the advance used a new heading from the queue
	Ate    bool // the head reached the treat
	Status Status
}

// Session owns all mutable state of one game: the snake, the treat, the
// pending input and the movement timer.
type Session struct {
	grid         Grid
	snake        *Snake
	treat        core.Point
	hasTreat     bool
	queue        DirectionQueue
	clock        Clock
	rng          *rand.Rand
	moveInterval time.Duration
	lastMove     time.Time
	tick         uint64
	eaten        int
	status       Status
	reason       DeathReason
}

// NewSession creates a session from cfg. The movement timer starts at
// clock.Now(), so the first move happens one interval later.
func NewSession(cfg core.RuntimeConfig, clock Clock) (*Session, error) {
	if cfg.GridSize <= 0 || cfg.CellSize <= 0 {
		return nil, fmt.Errorf("snake: invalid grid %dx%d with cell size %d", cfg.GridSize, cfg.GridSize, cfg.CellSize)
	}
	if cfg.MoveInterval <= 0 {
		return nil, fmt.Errorf("snake: move interval must be positive, got %s", cfg.MoveInterval)
	}
	heading, err := ParseDirection(cfg.StartHeading)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}

	s := &Session{
		grid:         NewGrid(cfg.GridSize, cfg.CellSize),
		snake:        NewSnake(core.Point{X: cfg.StartX, Y: cfg.StartY}, heading, cfg.CellSize, cfg.StartingSquares),
		clock:        clock,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		moveInterval: cfg.MoveInterval,
		lastMove:     clock.Now(),
	}
	if !s.respawnTreat() {
		s.status = StatusBoardFull
	}
	return s, nil
}

// Input feeds one player action into the session. Directions are queued
// for the next movement; quit ends the session at once.
func (s *Session) Input(a core.Action) {
	if a == core.ActionQuit {
		s.Quit()
		return
	}
	if d, ok := DirectionFromAction(a); ok {
		s.Enqueue(d)
	}
}

// Enqueue buffers a directional intent. Ignored once the session has ended.
func (s *Session) Enqueue(d Direction) {
	if s.status.Terminal() {
		return
	}
	s.queue.Enqueue(d)
}

// Quit ends the session without touching the game state.
func (s *Session) Quit() {
	if !s.status.Terminal() {
		s.status = StatusQuit
	}
}

// Update runs one loop iteration: move if the interval has elapsed, eat
// the treat if the head is on it, then check for collisions.
// It does nothing once the session has ended.
func (s *Session) Update() StepResult {
	var res StepResult
	if s.status.Terminal() {
		res.Status = s.status
		return res
	}

	now := s.clock.Now()
	if now.Sub(s.lastMove) >= s.moveInterval {
		current := s.snake.Heading()
		heading := s.queue.ConsumeOne(current)
		s.snake.Advance(heading)
		s.lastMove = now
		s.tick++
		res.Moved = true
		res.Turned = heading != current
	}

	boardFull := false
	if s.hasTreat && s.snake.Head() == s.treat {
		s.snake.Grow()
		s.eaten++
		res.Ate = true
		boardFull = !s.respawnTreat()
	}

	// Collisions are checked against the grown body; eating does not save a crash.
	switch {
	case s.snake.SelfCollision():
		s.die(ReasonSelf)
	case s.snake.BoundaryCollision(s.grid.Extent()):
		s.die(ReasonBorder)
	case boardFull:
		s.status = StatusBoardFull
	}

	res.Status = s.status
	return res
}

// respawnTreat places a new treat off the current body.
// It returns false when the board is full.
func (s *Session) respawnTreat() bool {
	treat, err := PlaceTreat(s.rng, s.grid, s.snake.Occupied())
	if err != nil {
		s.hasTreat = false
		return false
	}
	s.treat = treat
	s.hasTreat = true
	return true
}

func (s *Session) die(reason DeathReason) {
	s.status = StatusDead
	s.reason = reason
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Reason returns the collision that ended a dead session.
func (s *Session) Reason() DeathReason {
	return s.reason
}

// Grid returns the play field.
func (s *Session) Grid() Grid {
	return s.grid
}

// Len returns the snake length.
func (s *Session) Len() int {
	return s.snake.Len()
}

// Eaten returns the number of treats consumed.
func (s *Session) Eaten() int {
	return s.eaten
}

// Ticks returns the number of movements so far.
func (s *Session) Ticks() uint64 {
	return s.tick
}

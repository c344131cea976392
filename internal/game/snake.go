package game

// Snake is the player-controlled body. body[0] is the head; segments
// follow in order toward the tail. At most one queued turn is held
// between ticks and the last queued turn wins.
type Snake struct {
	body    []Point
	heading Direction

	pending    Direction
	hasPending bool

	target int

	lastTail Point
	hasLast  bool
}

// NewSnake creates a length-1 snake at start heading right.
func NewSnake(start Point) *Snake {
	s := &Snake{}
	s.Reset(start)
	return s
}

// Reset returns the snake to a single segment at start, heading right,
// with no queued turn and no vacated cell.
func (s *Snake) Reset(start Point) {
	s.body = s.body[:0]
	s.body = append(s.body, start)
	s.heading = DirRight
	s.hasPending = false
	s.target = 1
	s.hasLast = false
}

// QueueTurn records d as the turn to apply on the next tick. Calling it
// again before the tick replaces the previous request.
func (s *Snake) QueueTurn(d Direction) {
	s.pending = d
	s.hasPending = true
}

// UpdateDirection applies the queued turn if one is set. A turn that
// exactly reverses the current heading is ignored, but the queued slot
// is cleared either way.
func (s *Snake) UpdateDirection() {
	if !s.hasPending {
		return
	}
	if !s.heading.IsOpposite(s.pending) {
		s.heading = s.pending
	}
	s.hasPending = false
}

// Move advances the snake one cell along its heading on b and reports
// whether the new head collided with the body. The tail counts: a head
// that lands on the cell the tail is about to vacate is a collision.
// On growth ticks the tail stays put; otherwise the vacated cell is
// remembered for LastVacated.
func (s *Snake) Move(b Board) (head Point, collided bool) {
	head = b.Step(s.body[0], s.heading)
	for _, p := range s.body[1:] {
		if p == head {
			return head, true
		}
	}
	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	if len(s.body) > s.target {
		s.lastTail = s.body[len(s.body)-1]
		s.hasLast = true
		s.body = s.body[:len(s.body)-1]
	}
	return head, false
}

// Grow extends the target length by one; the tail catches up on the
// next Move.
func (s *Snake) Grow() {
	s.target++
}

// Head returns the current head cell.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the current number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Target returns the length the snake is growing toward.
func (s *Snake) Target() int {
	return s.target
}

// Heading returns the current movement direction.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Contains reports whether p is occupied by any body segment.
func (s *Snake) Contains(p Point) bool {
	for _, q := range s.body {
		if q == p {
			return true
		}
	}
	return false
}

// Body returns the segments head-first. The slice is owned by the
// snake; callers must not retain or mutate it.
func (s *Snake) Body() []Point {
	return s.body
}

// LastVacated returns the cell the tail left on the most recent Move,
// if any. No cell is vacated on growth ticks or right after Reset.
func (s *Snake) LastVacated() (Point, bool) {
	return s.lastTail, s.hasLast
}

package board

// Snake is an ordered chain of segments, the head is segment 0. A snake only
// ever grows during a round; it is thrown away as a whole on restart.
type Snake struct {
	Name   string
	Color  Color
	Dead   bool
	Moving bool
	Cause  string

	grid     Grid
	segments []Segment
}

// NewSnake builds a snake of length segments with its head at head, laid out
// backwards against dir. Every initial segment gets the base color darkened
// by darken.
func NewSnake(grid Grid, name string, head Point, dir Direction, color Color, length int, darken uint8) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		Name:     name,
		Color:    color,
		Moving:   true,
		grid:     grid,
		segments: make([]Segment, 0, length),
	}
	body := color.Darken(darken)
	p := head
	for i := 0; i < length; i++ {
		s.segments = append(s.segments, Segment{Pos: p, Dir: dir, Color: body})
		p = grid.Wrap(p.Sub(dir))
	}
	return s
}

// Head returns the first segment.
func (s *Snake) Head() Segment {
	return s.segments[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() Segment {
	return s.segments[len(s.segments)-1]
}

// Segments returns a copy of the chain, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Score is the number of segments.
func (s *Snake) Score() int {
	return len(s.segments)
}

// SetHeadDirection turns the head. Turning straight back into the neck is
// ignored, as is anything that is not a unit direction. It reports whether
// the turn was accepted.
func (s *Snake) SetHeadDirection(d Direction) bool {
	if len(s.segments) == 0 || !d.Valid() {
		return false
	}
	if d == s.segments[0].Dir.Opposite() {
		return false
	}
	s.segments[0].Dir = d
	return true
}

// Update moves the whole chain one step, wraps it onto the board and checks
// for self collision. Directions then follow the leader: every segment takes
// the direction its predecessor moved with this frame.
func (s *Snake) Update() {
	if s.Dead || !s.Moving || len(s.segments) == 0 {
		return
	}

	for i := range s.segments {
		s.segments[i].Advance()
		s.segments[i].Pos = s.grid.Wrap(s.segments[i].Pos)
	}

	seen := make(map[Point]struct{}, len(s.segments))
	for _, seg := range s.segments {
		if _, ok := seen[seg.Pos]; ok {
			s.Kill(DeathCauseSelfCollision)
			break
		}
		seen[seg.Pos] = struct{}{}
	}

	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i].Dir = s.segments[i-1].Dir
	}
}

// Grow appends count segments behind the tail. Each new segment trails the
// current tail by one step, shares its direction and has the base color.
func (s *Snake) Grow(count int) {
	for i := 0; i < count; i++ {
		tail := s.segments[len(s.segments)-1]
		s.segments = append(s.segments, Segment{
			Pos:   s.grid.Wrap(tail.Pos.Sub(tail.Dir)),
			Dir:   tail.Dir,
			Color: s.Color,
		})
	}
}

// Kill marks the snake dead. The first cause sticks; it reports whether the
// snake was alive before the call.
func (s *Snake) Kill(cause string) bool {
	if s.Dead {
		return false
	}
	s.Dead = true
	s.Cause = cause
	return true
}

// Freeze stops the snake from moving, dead or not.
func (s *Snake) Freeze() {
	s.Moving = false
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.segments {
		if seg.Pos.Equal(p) {
			return true
		}
	}
	return false
}

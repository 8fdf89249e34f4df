package board

// Segment is one body cell of a snake.
type Segment struct {
	Pos   Point
	Dir   Direction
	Color Color
}

// Advance moves the segment one step along its direction. The result may be
// off the board, wrapping is up to the owning snake.
func (s *Segment) Advance() {
	s.Pos = s.Pos.Add(s.Dir)
}

package board

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

var testGrid = Grid{Cols: 20, Rows: 20}

func positions(s *Snake) []Point {
	out := []Point{}
	for _, seg := range s.Segments() {
		out = append(out, seg.Pos)
	}
	return out
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(testGrid, "red", Point{X: 5, Y: 2}, Right, Color{R: 255}, 3, 25)

	require.Equal(t, 3, s.Score())
	require.True(t, s.Moving)
	require.False(t, s.Dead)
	require.Equal(t, []Point{{X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}}, positions(s))
	for _, seg := range s.Segments() {
		require.Equal(t, Right, seg.Dir)
		require.Equal(t, Color{R: 230}, seg.Color)
	}
}

func TestNewSnake_WrapsBody(t *testing.T) {
	s := NewSnake(testGrid, "blue", Point{X: 3, Y: 1}, Down, Color{B: 255}, 4, 50)
	require.Equal(t, []Point{{X: 3, Y: 1}, {X: 3, Y: 0}, {X: 3, Y: 19}, {X: 3, Y: 18}}, positions(s))
}

func TestSnake_UpdateWrapsAllEdges(t *testing.T) {
	tests := []struct {
		Head     Point
		Dir      Direction
		Expected Point
	}{
		{Head: Point{X: 19, Y: 5}, Dir: Right, Expected: Point{X: 0, Y: 5}},
		{Head: Point{X: 0, Y: 5}, Dir: Left, Expected: Point{X: 19, Y: 5}},
		{Head: Point{X: 5, Y: 19}, Dir: Down, Expected: Point{X: 5, Y: 0}},
		{Head: Point{X: 5, Y: 0}, Dir: Up, Expected: Point{X: 5, Y: 19}},
	}

	for _, test := range tests {
		s := NewSnake(testGrid, "s", test.Head, test.Dir, Color{}, 3, 0)
		s.Update()
		require.Equal(t, test.Expected, s.Head().Pos, "Dir: %s", test.Dir)
		require.False(t, s.Dead, spew.Sdump(s.Segments()))
	}
}

func TestSnake_UpdatePropagatesDirections(t *testing.T) {
	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{}, 4, 0)
	require.True(t, s.SetHeadDirection(Up))

	before := s.Segments()
	s.Update()
	after := s.Segments()

	require.Equal(t, Up, after[0].Dir)
	for i := 1; i < len(after); i++ {
		require.Equal(t, before[i-1].Dir, after[i].Dir, "segment %d", i)
	}
	require.Equal(t, []Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, positions(s))

	s.Update()
	require.Equal(t, []Point{{X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}}, positions(s))
	require.False(t, s.Dead)
}

func TestSnake_SetHeadDirectionRejectsReversal(t *testing.T) {
	tests := []Direction{Up, Down, Left, Right}

	for _, d := range tests {
		s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, d, Color{}, 3, 0)
		require.False(t, s.SetHeadDirection(d.Opposite()), d.String())
		require.Equal(t, d, s.Head().Dir)
	}

	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{}, 3, 0)
	require.False(t, s.SetHeadDirection(Direction{}))
	require.Equal(t, Right, s.Head().Dir)
	require.True(t, s.SetHeadDirection(Right))
	require.True(t, s.SetHeadDirection(Down))
	require.Equal(t, Down, s.Head().Dir)
}

func TestSnake_SelfCollision(t *testing.T) {
	s := &Snake{
		Moving: true,
		grid:   testGrid,
		segments: []Segment{
			{Pos: Point{X: 1, Y: 1}, Dir: Down},
			{Pos: Point{X: 0, Y: 1}, Dir: Right},
			{Pos: Point{X: 0, Y: 2}, Dir: Right},
			{Pos: Point{X: 0, Y: 3}, Dir: Up},
		},
	}
	s.Update()
	require.True(t, s.Dead, spew.Sdump(s.Segments()))
	require.Equal(t, DeathCauseSelfCollision, s.Cause)
	require.Equal(t, s.Segments()[0].Pos, s.Segments()[2].Pos)
}

func TestSnake_NoCollisionStaysAlive(t *testing.T) {
	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{}, 6, 0)
	for i := 0; i < 50; i++ {
		s.Update()
	}
	require.False(t, s.Dead, spew.Sdump(s.Segments()))
}

func TestSnake_UpdateNoopWhenDeadOrFrozen(t *testing.T) {
	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{}, 3, 0)
	s.Freeze()
	s.Update()
	require.Equal(t, Point{X: 5, Y: 5}, s.Head().Pos)

	s = NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{}, 3, 0)
	require.True(t, s.Kill(DeathCauseSnakeCollision))
	require.False(t, s.Kill(DeathCauseHeadToHeadCollision))
	require.Equal(t, DeathCauseSnakeCollision, s.Cause)
	s.Update()
	require.Equal(t, Point{X: 5, Y: 5}, s.Head().Pos)
}

func TestSnake_Grow(t *testing.T) {
	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{R: 255}, 3, 25)
	before := s.Segments()

	s.Grow(3)
	require.Equal(t, 6, s.Score())
	require.Equal(t, before, s.Segments()[:3])

	s.Grow(5)
	require.Equal(t, 11, s.Score())
	require.Equal(t, before, s.Segments()[:3])

	tail := s.Tail()
	require.Equal(t, Point{X: 15, Y: 5}, tail.Pos)
	require.Equal(t, Right, tail.Dir)
	require.Equal(t, Color{R: 255}, tail.Color)
}

func TestSnake_GrowTrailsTail(t *testing.T) {
	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Down, Color{}, 1, 0)
	s.Grow(1)
	require.Equal(t, Point{X: 5, Y: 4}, s.Tail().Pos)
	require.Equal(t, Down, s.Tail().Dir)
}

func TestSnake_Occupies(t *testing.T) {
	s := NewSnake(testGrid, "s", Point{X: 5, Y: 5}, Right, Color{}, 3, 0)
	require.True(t, s.Occupies(Point{X: 3, Y: 5}))
	require.False(t, s.Occupies(Point{X: 6, Y: 5}))
}

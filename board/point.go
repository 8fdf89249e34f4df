package board

import "fmt"

// Point is a cell coordinate on the board, not a pixel.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add moves the point one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub moves the point one step against direction d.
func (p Point) Sub(d Direction) Point {
	return Point{X: p.X - d.X, Y: p.Y - d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is the size of the board in cells. The board is a torus: leaving one
// edge re-enters from the opposite one.
type Grid struct {
	Cols int
	Rows int
}

// MaxX is the largest valid column index.
func (g Grid) MaxX() int { return g.Cols - 1 }

// MaxY is the largest valid row index.
func (g Grid) MaxY() int { return g.Rows - 1 }

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X <= g.MaxX() && p.Y >= 0 && p.Y <= g.MaxY()
}

// Wrap brings a point that stepped off an edge back in from the opposite
// edge. Points are only ever one step outside the board.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.MaxX()
	}
	if p.Y < 0 {
		p.Y = g.MaxY()
	}
	if p.X > g.MaxX() {
		p.X = 0
	}
	if p.Y > g.MaxY() {
		p.Y = 0
	}
	return p
}

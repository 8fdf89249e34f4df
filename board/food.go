package board

import "golang.org/x/exp/rand"

// Food is the single collectible cell on the board.
type Food struct {
	Color Color

	pos  Point
	grid Grid
	rng  *rand.Rand
}

// NewFood places food on a random cell of grid.
func NewFood(grid Grid, color Color, rng *rand.Rand) *Food {
	f := &Food{Color: color, grid: grid, rng: rng}
	f.Relocate()
	return f
}

// Relocate moves the food to a uniformly random cell. It does not look at
// what else is on the board, callers retry until the cell suits them.
func (f *Food) Relocate() Point {
	f.pos = Point{
		X: f.rng.Intn(f.grid.Cols),
		Y: f.rng.Intn(f.grid.Rows),
	}
	return f.pos
}

// Position returns the cell the food is on.
func (f *Food) Position() Point {
	return f.pos
}

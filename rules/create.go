package rules

import (
	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/config"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// maxJitter is how many rows a duel snake may start away from the middle.
const maxJitter = 3

// headings are the start directions of each player. The initial body is laid
// out straight behind the head along the same axis.
var headings = map[GameMode][]board.Direction{
	GameModeSinglePlayer: {board.Right},
	GameModeTwoPlayer:    {board.Up, board.Down},
}

type start struct {
	Head board.Point
	Dir  board.Direction
}

// startPositions returns where each player's head starts. A single snake
// starts near the top left heading right. In a duel the snakes start on the
// left and right third, vertically centered with some jitter, red heading up
// and blue heading down so their bodies never overlap at the start.
func startPositions(mode GameMode, grid board.Grid, rng *rand.Rand) []start {
	if mode == GameModeSinglePlayer {
		return []start{
			{Head: board.Point{X: 5 % grid.Cols, Y: 2 % grid.Rows}, Dir: headings[mode][0]},
		}
	}

	jitter := func() int { return rng.Intn(2*maxJitter+1) - maxJitter }
	row := func(y int) int { return ((y % grid.Rows) + grid.Rows) % grid.Rows }

	return []start{
		{
			Head: board.Point{X: grid.Cols / 3, Y: row(grid.Rows/2 + jitter())},
			Dir:  headings[mode][0],
		},
		{
			Head: board.Point{X: grid.Cols - 1 - grid.Cols/3, Y: row(grid.Rows/2 + jitter())},
			Dir:  headings[mode][1],
		},
	}
}

// createSnakes builds a fresh set of snakes for a round.
func createSnakes(mode GameMode, r Rules, grid board.Grid, length int, rng *rand.Rand) []*board.Snake {
	starts := startPositions(mode, grid, rng)
	snakes := make([]*board.Snake, 0, len(r.Players))
	for i, p := range r.Players {
		snakes = append(snakes, board.NewSnake(grid, p.Name, starts[i].Head, starts[i].Dir, p.Color, length, r.Darken))
	}
	return snakes
}

// occupiedPoints is the set of cells covered by any snake.
func occupiedPoints(snakes []*board.Snake) map[board.Point]struct{} {
	occupied := map[board.Point]struct{}{}
	for _, s := range snakes {
		for _, seg := range s.Segments() {
			occupied[seg.Pos] = struct{}{}
		}
	}
	return occupied
}

// placeFood relocates f until it is off every snake. It gives up and leaves
// the food where it is when the snakes cover the whole board.
func placeFood(grid board.Grid, f *board.Food, snakes []*board.Snake) bool {
	occupied := occupiedPoints(snakes)
	if len(occupied) >= grid.Cols*grid.Rows {
		return false
	}
	for {
		if _, ok := occupied[f.Position()]; !ok {
			return true
		}
		f.Relocate()
	}
}

// Validate checks cfg for a mode. On top of config.Config.Validate, the
// initial snakes must fit in a single row or column, a longer body would be
// laid over itself and die on the first frame.
func Validate(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode := GameMode(cfg.Mode)
	if _, err := RulesFor(mode); err != nil {
		return err
	}
	grid := cfg.Grid()
	for _, dir := range headings[mode] {
		room := grid.Rows
		if dir.X != 0 {
			room = grid.Cols
		}
		if cfg.Length > room {
			return errors.Wrapf(config.ErrInvalid, "snake length %d does not fit in %d cells heading %s", cfg.Length, room, dir)
		}
	}
	return nil
}

package rules

import (
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/stretchr/testify/require"
)

var testGrid = board.Grid{Cols: 40, Rows: 40}

// snakeOf builds a straight snake of the given length, optionally dead.
func snakeOf(name string, row, length int, dead bool) *board.Snake {
	s := board.NewSnake(testGrid, name, board.Point{X: length, Y: row}, board.Right, board.Color{}, length, 0)
	if dead {
		s.Kill(board.DeathCauseSnakeCollision)
	}
	return s
}

func TestCheckForGameOver_SinglePlayer(t *testing.T) {
	s := snakeOf("red", 1, 3, false)
	_, over := CheckForGameOver(GameModeSinglePlayer, []*board.Snake{s})
	require.False(t, over)

	s.Kill(board.DeathCauseSelfCollision)
	o, over := CheckForGameOver(GameModeSinglePlayer, []*board.Snake{s})
	require.True(t, over)
	require.Nil(t, o.Winner)
	require.False(t, o.Draw)
	require.Equal(t, "over", o.String())
}

func TestCheckForGameOver_TwoPlayer(t *testing.T) {
	tests := []struct {
		Name      string
		A         *board.Snake
		B         *board.Snake
		Over      bool
		Winner    string
		Draw      bool
		Slaughter bool
	}{
		{
			Name: "BothAlive",
			A:    snakeOf("red", 1, 10, false),
			B:    snakeOf("blue", 2, 10, false),
		},
		{
			Name:      "BothDeadSameScore",
			A:         snakeOf("red", 1, 10, true),
			B:         snakeOf("blue", 2, 10, true),
			Over:      true,
			Draw:      true,
			Slaughter: true,
		},
		{
			Name:      "BothDeadLongerWins",
			A:         snakeOf("red", 1, 8, true),
			B:         snakeOf("blue", 2, 12, true),
			Over:      true,
			Winner:    "blue",
			Slaughter: true,
		},
		{
			Name:      "BothDeadRedLonger",
			A:         snakeOf("red", 1, 13, true),
			B:         snakeOf("blue", 2, 12, true),
			Over:      true,
			Winner:    "red",
			Slaughter: true,
		},
		{
			Name:   "SurvivorWinsRegardlessOfScore",
			A:      snakeOf("red", 1, 30, true),
			B:      snakeOf("blue", 2, 5, false),
			Over:   true,
			Winner: "blue",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			o, over := CheckForGameOver(GameModeTwoPlayer, []*board.Snake{test.A, test.B})
			require.Equal(t, test.Over, over)
			require.Equal(t, test.Draw, o.Draw)
			require.Equal(t, test.Slaughter, o.Slaughter)
			if test.Winner == "" {
				require.Nil(t, o.Winner)
			} else {
				require.NotNil(t, o.Winner)
				require.Equal(t, test.Winner, o.Winner.Name)
				require.Equal(t, test.Winner, o.String())
			}
		})
	}
}

func TestMatch_BannerSlaughter(t *testing.T) {
	m, _ := newTestMatch(t, duelConfig)
	m.Snakes = []*board.Snake{snakeOf("red", 1, 8, true), snakeOf("blue", 2, 12, true)}
	o, over := CheckForGameOver(m.Mode, m.Snakes)
	require.True(t, over)
	m.end(o)

	text, bg := m.Banner()
	require.Equal(t, " SLAUGHTER!\nBLUE WINS ! ", text)
	require.Equal(t, colorBlueDark, bg)
	for _, s := range m.Snakes {
		require.False(t, s.Moving)
	}
}

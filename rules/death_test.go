package rules

import (
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/stretchr/testify/require"
)

func TestCheckForDeath_NoCollision(t *testing.T) {
	updates := checkForDeath([]*board.Snake{
		snakeOf("red", 1, 5, false),
		snakeOf("blue", 3, 5, false),
	})
	require.Len(t, updates, 0)
}

func TestCheckForDeath_HeadToHead(t *testing.T) {
	red := board.NewSnake(testGrid, "red", board.Point{X: 5, Y: 5}, board.Right, board.Color{}, 3, 0)
	blue := board.NewSnake(testGrid, "blue", board.Point{X: 5, Y: 5}, board.Left, board.Color{}, 3, 0)

	updates := checkForDeath([]*board.Snake{red, blue})
	require.Len(t, updates, 2)
	require.Equal(t, board.DeathCauseHeadToHeadCollision, updates[0].Cause)
	require.Equal(t, board.DeathCauseHeadToHeadCollision, updates[1].Cause)
}

func TestCheckForDeath_OtherBody(t *testing.T) {
	red := board.NewSnake(testGrid, "red", board.Point{X: 5, Y: 5}, board.Right, board.Color{}, 3, 0)
	blue := board.NewSnake(testGrid, "blue", board.Point{X: 5, Y: 4}, board.Up, board.Color{}, 3, 0)

	updates := checkForDeath([]*board.Snake{red, blue})
	require.Len(t, updates, 1)
	require.Equal(t, red, updates[0].Snake)
	require.Equal(t, board.DeathCauseSnakeCollision, updates[0].Cause)
}

func TestCheckForDeath_OwnBody(t *testing.T) {
	red := board.NewSnake(testGrid, "red", board.Point{X: 5, Y: 5}, board.Right, board.Color{}, 3, 0)
	red.Grow(2)
	red.SetHeadDirection(board.Down)
	red.Update()
	red.SetHeadDirection(board.Left)
	red.Update()
	red.SetHeadDirection(board.Up)
	red.Update()

	blue := snakeOf("blue", 20, 3, false)
	updates := checkForDeath([]*board.Snake{red, blue})
	require.Len(t, updates, 1)
	require.Equal(t, board.DeathCauseSelfCollision, updates[0].Cause)
}

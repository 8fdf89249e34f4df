package rules

import (
	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	"github.com/pkg/errors"
)

// GameMode represents the mode the game is running in
type GameMode string

const (
	// GameModeSinglePlayer is one snake that plays until it dies
	GameModeSinglePlayer GameMode = "single-player"
	// GameModeTwoPlayer is two snakes on one keyboard, the round ends as soon as
	// one of them dies
	GameModeTwoPlayer GameMode = "two-player"
)

// Binding maps a held key to a heading.
type Binding struct {
	Key input.Key
	Dir board.Direction
}

// Player describes one snake of a mode.
type Player struct {
	Name     string
	Color    board.Color
	Bindings []Binding
	// ScoreAnchor is the board corner the score is printed in.
	ScoreAnchor render.Anchor
	// WinColor backs the banner when this player wins outright, SlaughterColor
	// when both died and this player was longer.
	WinColor       board.Color
	SlaughterColor board.Color
}

// Rules are the fixed parameters of a mode.
type Rules struct {
	Players []Player
	// Growth is how many segments a snake gains per food.
	Growth int
	// Darken is subtracted from every channel of the initial segments.
	Darken uint8
	Length int
	FPS    int
	// Restart starts a new round once the current one has ended.
	Restart input.Key
}

var (
	wasd = []Binding{
		{Key: input.KeyW, Dir: board.Up},
		{Key: input.KeyA, Dir: board.Left},
		{Key: input.KeyS, Dir: board.Down},
		{Key: input.KeyD, Dir: board.Right},
	}
	arrows = []Binding{
		{Key: input.KeyUp, Dir: board.Up},
		{Key: input.KeyLeft, Dir: board.Left},
		{Key: input.KeyDown, Dir: board.Down},
		{Key: input.KeyRight, Dir: board.Right},
	}
)

var modes = map[GameMode]Rules{
	GameModeSinglePlayer: {
		Players: []Player{
			{
				Name:        "red",
				Color:       colorRed,
				Bindings:    wasd,
				ScoreAnchor: render.TopLeft,
				WinColor:    colorRed,
			},
		},
		Growth:  1,
		Darken:  25,
		Length:  3,
		FPS:     20,
		Restart: input.KeySpace,
	},
	GameModeTwoPlayer: {
		Players: []Player{
			{
				Name:           "red",
				Color:          colorRed,
				Bindings:       arrows,
				ScoreAnchor:    render.TopLeft,
				WinColor:       colorRed,
				SlaughterColor: colorRedDark,
			},
			{
				Name:           "blue",
				Color:          colorBlue,
				Bindings:       wasd,
				ScoreAnchor:    render.TopRight,
				WinColor:       colorBlue,
				SlaughterColor: colorBlueDark,
			},
		},
		Growth:  5,
		Darken:  50,
		Length:  20,
		FPS:     30,
		Restart: input.KeySpace,
	},
}

// RulesFor returns the rules of mode.
func RulesFor(mode GameMode) (Rules, error) {
	r, ok := modes[mode]
	if !ok {
		return Rules{}, errors.Errorf("rules: unknown game mode %q", mode)
	}
	return r, nil
}

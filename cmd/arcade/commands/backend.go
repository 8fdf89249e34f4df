package commands

import (
	"sort"
	"strings"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/render"
	"github.com/battlesnakeio/arcade/render/tcell"
	"github.com/battlesnakeio/arcade/render/termbox"
	"github.com/battlesnakeio/arcade/rules"
)

const windowTitle = "SNAKE"

type layout struct {
	window config.Size
	cell   config.Size
}

type backend struct {
	// layouts are the sizes used when --window and --cell are not given.
	layouts map[rules.GameMode]layout
	open    func(window config.Size) (render.Backend, error)
}

// Terminal cells are about twice as tall as they are wide, two characters
// make a square cell.
var terminalLayouts = map[rules.GameMode]layout{
	rules.GameModeSinglePlayer: {window: config.Size{W: 80, H: 30}, cell: config.Size{W: 2, H: 1}},
	rules.GameModeTwoPlayer:    {window: config.Size{W: 100, H: 36}, cell: config.Size{W: 2, H: 1}},
}

var backends = map[string]backend{
	"termbox": {
		layouts: terminalLayouts,
		open: func(window config.Size) (render.Backend, error) {
			b, err := termbox.New(window.W, window.H)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	},
	"tcell": {
		layouts: terminalLayouts,
		open: func(window config.Size) (render.Backend, error) {
			b, err := tcell.New(window.W, window.H)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	},
}

func backendNames() string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return "[" + strings.Join(names, ", ") + "]"
}

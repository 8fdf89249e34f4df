//go:build raylib

package commands

import (
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/render"
	"github.com/battlesnakeio/arcade/render/raylib"
	"github.com/battlesnakeio/arcade/rules"
)

func init() {
	backends["raylib"] = backend{
		layouts: map[rules.GameMode]layout{
			rules.GameModeSinglePlayer: {window: config.Size{W: 600, H: 600}, cell: config.Size{W: 30, H: 30}},
			rules.GameModeTwoPlayer:    {window: config.Size{W: 1200, H: 600}, cell: config.Size{W: 20, H: 20}},
		},
		open: func(window config.Size) (render.Backend, error) {
			b, err := raylib.New(window.W, window.H, windowTitle)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	}
}

// Package config holds the startup settings of a match. Settings are fixed
// once the loop starts.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/battlesnakeio/arcade/board"
	"github.com/pkg/errors"
)

// ErrInvalid is returned for settings that can never produce a playable board.
var ErrInvalid = errors.New("config: invalid settings")

// Size is a width and height in pixels.
type Size struct {
	W int
	H int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// ParseSize reads a WxH string.
func ParseSize(v string) (Size, error) {
	var s Size
	if _, err := fmt.Sscanf(v, "%dx%d", &s.W, &s.H); err != nil {
		return Size{}, errors.Wrapf(err, "config: bad size %q, want WIDTHxHEIGHT", v)
	}
	return s, nil
}

// Config is everything a match needs before it starts.
type Config struct {
	Mode   string
	Window Size
	Cell   Size
	FPS    int
	Length int
	Seed   int64
}

// GridError is returned when the window cannot be split into whole cells.
type GridError struct {
	Window    Size
	Cell      Size
	Remainder Size
}

func (e *GridError) Error() string {
	return fmt.Sprintf("config: incompatible window and cell size: (%d, %d) %% (%d, %d) => (%d, %d)",
		e.Window.W, e.Window.H, e.Cell.W, e.Cell.H, e.Remainder.W, e.Remainder.H)
}

// Validate checks the settings. It must pass before a match is built.
func (c Config) Validate() error {
	if c.Window.W <= 0 || c.Window.H <= 0 {
		return errors.Wrapf(ErrInvalid, "window size %s", c.Window)
	}
	if c.Cell.W <= 0 || c.Cell.H <= 0 {
		return errors.Wrapf(ErrInvalid, "cell size %s", c.Cell)
	}
	xr, yr := c.Window.W%c.Cell.W, c.Window.H%c.Cell.H
	if xr != 0 || yr != 0 {
		return &GridError{Window: c.Window, Cell: c.Cell, Remainder: Size{W: xr, H: yr}}
	}
	if c.FPS <= 0 {
		return errors.Wrapf(ErrInvalid, "frame rate %d", c.FPS)
	}
	if c.Length < 1 {
		return errors.Wrapf(ErrInvalid, "snake length %d", c.Length)
	}
	return nil
}

// Grid is the board size in cells.
func (c Config) Grid() board.Grid {
	return board.Grid{
		Cols: c.Window.W / c.Cell.W,
		Rows: c.Window.H / c.Cell.H,
	}
}

// FromEnv overrides c with any ARCADE_* variables that are set.
func FromEnv(c Config) Config {
	c.Window.W = getEnvInt("ARCADE_WINDOW_WIDTH", c.Window.W)
	c.Window.H = getEnvInt("ARCADE_WINDOW_HEIGHT", c.Window.H)
	c.Cell.W = getEnvInt("ARCADE_CELL_WIDTH", c.Cell.W)
	c.Cell.H = getEnvInt("ARCADE_CELL_HEIGHT", c.Cell.H)
	c.FPS = getEnvInt("ARCADE_FPS", c.FPS)
	c.Length = getEnvInt("ARCADE_LENGTH", c.Length)
	return c
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

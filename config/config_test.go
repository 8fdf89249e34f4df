package config

import (
	"os"
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var valid = Config{
	Mode:   "single-player",
	Window: Size{W: 600, H: 600},
	Cell:   Size{W: 30, H: 30},
	FPS:    20,
	Length: 3,
}

func TestValidate(t *testing.T) {
	require.NoError(t, valid.Validate())
	require.Equal(t, board.Grid{Cols: 20, Rows: 20}, valid.Grid())
}

func TestValidate_GridMismatch(t *testing.T) {
	c := valid
	c.Window = Size{W: 610, H: 600}
	c.Cell = Size{W: 30, H: 25}

	err := c.Validate()
	require.Error(t, err)
	ge, ok := err.(*GridError)
	require.True(t, ok, "expected *GridError, got %T", err)
	require.Equal(t, Size{W: 10, H: 0}, ge.Remainder)
	require.Equal(t,
		"config: incompatible window and cell size: (610, 600) % (30, 25) => (10, 0)",
		err.Error(),
	)
}

func TestValidate_Invalid(t *testing.T) {
	tests := map[string]func(c *Config){
		"NoWindow": func(c *Config) { c.Window = Size{} },
		"NoCell":   func(c *Config) { c.Cell = Size{W: 0, H: 30} },
		"NoFPS":    func(c *Config) { c.FPS = 0 },
		"NoLength": func(c *Config) { c.Length = 0 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			require.Equal(t, ErrInvalid, errors.Cause(err))
		})
	}
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("1200x600")
	require.NoError(t, err)
	require.Equal(t, Size{W: 1200, H: 600}, s)

	_, err = ParseSize("big")
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	require.NoError(t, os.Setenv("ARCADE_FPS", "45"))
	require.NoError(t, os.Setenv("ARCADE_LENGTH", "nope"))
	defer func() {
		_ = os.Unsetenv("ARCADE_FPS")
		_ = os.Unsetenv("ARCADE_LENGTH")
	}()

	c := FromEnv(valid)
	require.Equal(t, 45, c.FPS)
	require.Equal(t, 3, c.Length)
	require.Equal(t, valid.Window, c.Window)
}

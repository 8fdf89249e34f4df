// Package render draws the board onto whatever surface a backend provides.
// Coordinates handed to a Canvas are pixels of the configured window, the
// Painter converts board cells into them.
package render

import (
	"image"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/input"
)

// Canvas is the drawing side of a backend.
type Canvas interface {
	// Size is the drawable area in pixels.
	Size() (width, height int)
	Fill(c board.Color)
	Rect(r image.Rectangle, c board.Color)
	Line(from, to image.Point, c board.Color)
	// Text renders a possibly multi-line label. Nothing is drawn until the
	// label is placed.
	Text(text string, fg, bg board.Color) Label
	// Present shows everything drawn since the previous Present.
	Present() error
}

// Label is rendered text that can be measured before it is placed.
type Label interface {
	Size() image.Point
	Draw(at image.Point)
}

// Backend is a window or terminal that can be drawn on and read keys from.
type Backend interface {
	Canvas
	input.Source
	Close() error
}

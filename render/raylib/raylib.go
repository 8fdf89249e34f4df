//go:build raylib

// Package raylib is a windowed backend. Canvas pixels are window pixels and
// keys are read as held, not latched.
package raylib

import (
	"image"
	"strings"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FontSize is the pixel height of one line of text.
const FontSize = 40

var keys = []struct {
	key int32
	k   input.Key
}{
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeyW, input.KeyW},
	{rl.KeyA, input.KeyA},
	{rl.KeyS, input.KeyS},
	{rl.KeyD, input.KeyD},
	{rl.KeySpace, input.KeySpace},
}

// Backend is a raylib window. It must be used from the goroutine that
// created it.
type Backend struct {
	width   int
	height  int
	drawing bool
}

var _ render.Backend = &Backend{}

// New opens a window of the given size.
func New(width, height int, title string) (*Backend, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	// Esc closes the window the same way the close button does.
	rl.SetExitKey(rl.KeyEscape)
	return &Backend{width: width, height: height}, nil
}

func color(c board.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func (b *Backend) begin() {
	if !b.drawing {
		rl.BeginDrawing()
		b.drawing = true
	}
}

// Size implements render.Canvas.
func (b *Backend) Size() (int, int) { return b.width, b.height }

// Fill implements render.Canvas.
func (b *Backend) Fill(c board.Color) {
	b.begin()
	rl.ClearBackground(color(c))
}

// Rect implements render.Canvas.
func (b *Backend) Rect(r image.Rectangle, c board.Color) {
	b.begin()
	rl.DrawRectangle(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()), color(c))
}

// Line implements render.Canvas.
func (b *Backend) Line(from, to image.Point, c board.Color) {
	b.begin()
	rl.DrawLine(int32(from.X), int32(from.Y), int32(to.X), int32(to.Y), color(c))
}

// Text implements render.Canvas.
func (b *Backend) Text(text string, fg, bg board.Color) render.Label {
	return &label{b: b, lines: strings.Split(text, "\n"), fg: fg, bg: bg}
}

// Present implements render.Canvas. It also lets raylib collect input for
// the next Poll.
func (b *Backend) Present() error {
	b.begin()
	rl.EndDrawing()
	b.drawing = false
	return nil
}

// Poll implements input.Source.
func (b *Backend) Poll() (input.Set, bool) {
	var held input.Set
	for _, k := range keys {
		if rl.IsKeyDown(k.key) {
			held = held.With(k.k)
		}
	}
	return held, rl.WindowShouldClose()
}

// Close closes the window.
func (b *Backend) Close() error {
	if b.drawing {
		rl.EndDrawing()
	}
	rl.CloseWindow()
	return nil
}

type label struct {
	b      *Backend
	lines  []string
	fg, bg board.Color
}

func (l *label) Size() image.Point {
	var w int32
	for _, line := range l.lines {
		if lw := rl.MeasureText(line, FontSize); lw > w {
			w = lw
		}
	}
	return image.Pt(int(w), FontSize*len(l.lines))
}

func (l *label) Draw(at image.Point) {
	l.b.begin()
	size := l.Size()
	rl.DrawRectangle(int32(at.X), int32(at.Y), int32(size.X), int32(size.Y), color(l.bg))
	for i, line := range l.lines {
		rl.DrawText(line, int32(at.X), int32(at.Y+i*FontSize), FontSize, color(l.fg))
	}
}

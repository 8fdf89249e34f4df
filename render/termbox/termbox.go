// Package termbox is a terminal backend on top of termbox-go. One window
// pixel is one terminal character, so cells are usually two characters wide
// and one high.
package termbox

import (
	"image"
	"strings"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	"github.com/mattn/go-runewidth"
	tb "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	lineHoriz = '▔'
	lineVert  = '▏'
)

// Backend draws into the terminal and latches key presses. Terminals only
// report presses, a key counts as held for the frame after it was pressed
// (auto-repeat keeps it held).
type Backend struct {
	input.Latch

	width  int
	height int
	done   chan struct{}
}

var _ render.Backend = &Backend{}

// New takes over the terminal. Close must be called to give it back.
func New(width, height int) (*Backend, error) {
	if err := tb.Init(); err != nil {
		return nil, errors.Wrap(err, "termbox: init")
	}
	tb.SetOutputMode(tb.OutputRGB)
	tb.SetInputMode(tb.InputEsc)

	b := &Backend{width: width, height: height, done: make(chan struct{})}
	go b.pollEvents()
	return b, nil
}

func (b *Backend) pollEvents() {
	defer close(b.done)
	for {
		ev := tb.PollEvent()
		switch ev.Type {
		case tb.EventInterrupt:
			return
		case tb.EventError:
			log.WithError(ev.Err).Warn("termbox: event error")
			b.Latch.Quit()
			return
		case tb.EventKey:
			k, ok, quit := translate(ev)
			if quit {
				b.Latch.Quit()
			}
			if ok {
				b.Latch.Press(k)
			}
		}
	}
}

// translate maps a termbox key event onto a game key.
func translate(ev tb.Event) (k input.Key, ok bool, quit bool) {
	switch ev.Key {
	case tb.KeyArrowUp:
		return input.KeyUp, true, false
	case tb.KeyArrowDown:
		return input.KeyDown, true, false
	case tb.KeyArrowLeft:
		return input.KeyLeft, true, false
	case tb.KeyArrowRight:
		return input.KeyRight, true, false
	case tb.KeySpace:
		return input.KeySpace, true, false
	case tb.KeyEsc, tb.KeyCtrlC:
		return 0, false, true
	}
	switch ev.Ch {
	case 'w', 'W':
		return input.KeyW, true, false
	case 'a', 'A':
		return input.KeyA, true, false
	case 's', 'S':
		return input.KeyS, true, false
	case 'd', 'D':
		return input.KeyD, true, false
	case ' ':
		return input.KeySpace, true, false
	case 'q', 'Q':
		return 0, false, true
	}
	return 0, false, false
}

func attr(c board.Color) tb.Attribute {
	return tb.RGBToAttribute(c.R, c.G, c.B)
}

// Size implements render.Canvas.
func (b *Backend) Size() (int, int) { return b.width, b.height }

// Fill implements render.Canvas.
func (b *Backend) Fill(c board.Color) {
	if err := tb.Clear(tb.ColorDefault, tb.ColorDefault); err != nil {
		log.WithError(err).Warn("termbox: clear")
	}
	b.Rect(image.Rect(0, 0, b.width, b.height), c)
}

// Rect implements render.Canvas.
func (b *Backend) Rect(r image.Rectangle, c board.Color) {
	r = r.Intersect(image.Rect(0, 0, b.width, b.height))
	a := attr(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			tb.SetCell(x, y, ' ', a, a)
		}
	}
}

// Line implements render.Canvas. A character cannot show a line between
// two pixels, so lines are drawn as thin block characters on top of whatever
// background the characters already have.
func (b *Backend) Line(from, to image.Point, c board.Color) {
	r := image.Rectangle{Min: from, Max: to}.Canon()
	ch := lineHoriz
	if r.Dx() == 0 {
		ch = lineVert
		r.Max.X++
	} else {
		r.Max.Y++
	}
	r = r.Intersect(image.Rect(0, 0, b.width, b.height))

	w, h := tb.Size()
	buf := tb.CellBuffer()
	fg := attr(c)
	for y := r.Min.Y; y < r.Max.Y && y < h; y++ {
		for x := r.Min.X; x < r.Max.X && x < w; x++ {
			cell := buf[y*w+x]
			if ch == lineHoriz && cell.Ch == lineVert {
				continue
			}
			tb.SetCell(x, y, ch, fg, cell.Bg)
		}
	}
}

// Text implements render.Canvas.
func (b *Backend) Text(text string, fg, bg board.Color) render.Label {
	return &label{lines: strings.Split(text, "\n"), fg: attr(fg), bg: attr(bg)}
}

// Present implements render.Canvas.
func (b *Backend) Present() error {
	return errors.Wrap(tb.Flush(), "termbox: flush")
}

// Close stops the event loop and restores the terminal.
func (b *Backend) Close() error {
	select {
	case <-b.done:
		// the event loop already gave up on an error
	default:
		tb.Interrupt()
		<-b.done
	}
	tb.Close()
	return nil
}

type label struct {
	lines []string
	fg    tb.Attribute
	bg    tb.Attribute
}

func (l *label) Size() image.Point {
	w := 0
	for _, line := range l.lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return image.Pt(w, len(l.lines))
}

func (l *label) Draw(at image.Point) {
	for i, line := range l.lines {
		tbprint(at.X, at.Y+i, l.fg, l.bg, line)
	}
}

func tbprint(x, y int, fg, bg tb.Attribute, msg string) {
	for _, c := range msg {
		tb.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

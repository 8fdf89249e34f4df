// Package tcell is a terminal backend on top of tcell. Like the termbox
// backend, one window pixel is one terminal character.
package tcell

import (
	"image"
	"strings"
	"sync"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	tc "github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const (
	lineHoriz = '▔'
	lineVert  = '▏'
)

// Backend draws onto a tcell screen and latches key presses the same way
// the termbox backend does.
type Backend struct {
	input.Latch

	screen tc.Screen
	width  int
	height int
	wg     sync.WaitGroup
}

var _ render.Backend = &Backend{}

// New opens the terminal screen.
func New(width, height int) (*Backend, error) {
	s, err := tc.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell: new screen")
	}
	return NewWithScreen(s, width, height)
}

// NewWithScreen uses an existing, uninitialized screen, such as a
// tcell.SimulationScreen.
func NewWithScreen(s tc.Screen, width, height int) (*Backend, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "tcell: init screen")
	}
	s.HideCursor()

	b := &Backend{screen: s, width: width, height: height}
	b.wg.Add(1)
	go b.pollEvents()
	return b, nil
}

func (b *Backend) pollEvents() {
	defer b.wg.Done()
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		if kev, ok := ev.(*tc.EventKey); ok {
			k, ok, quit := translate(kev)
			if quit {
				b.Latch.Quit()
			}
			if ok {
				b.Latch.Press(k)
			}
		}
	}
}

func translate(ev *tc.EventKey) (k input.Key, ok bool, quit bool) {
	switch ev.Key() {
	case tc.KeyUp:
		return input.KeyUp, true, false
	case tc.KeyDown:
		return input.KeyDown, true, false
	case tc.KeyLeft:
		return input.KeyLeft, true, false
	case tc.KeyRight:
		return input.KeyRight, true, false
	case tc.KeyEscape, tc.KeyCtrlC:
		return 0, false, true
	case tc.KeyRune:
	default:
		return 0, false, false
	}
	switch ev.Rune() {
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

func color(c board.Color) tc.Color {
	return tc.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (b *Backend) bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Size implements render.Canvas.
func (b *Backend) Size() (int, int) { return b.width, b.height }

// Fill implements render.Canvas.
func (b *Backend) Fill(c board.Color) {
	b.screen.Clear()
	b.Rect(b.bounds(), c)
}

// Rect implements render.Canvas.
func (b *Backend) Rect(r image.Rectangle, c board.Color) {
	r = r.Intersect(b.bounds())
	style := tc.StyleDefault.Background(color(c))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Line implements render.Canvas, see the termbox backend for how lines map
// onto characters.
func (b *Backend) Line(from, to image.Point, c board.Color) {
	r := image.Rectangle{Min: from, Max: to}.Canon()
	ch := lineHoriz
	if r.Dx() == 0 {
		ch = lineVert
		r.Max.X++
	} else {
		r.Max.Y++
	}
	r = r.Intersect(b.bounds())

	fg := color(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cur, _, style, _ := b.screen.GetContent(x, y)
			if ch == lineHoriz && cur == lineVert {
				continue
			}
			b.screen.SetContent(x, y, ch, nil, style.Foreground(fg))
		}
	}
}

// Text implements render.Canvas.
func (b *Backend) Text(text string, fg, bg board.Color) render.Label {
	return &label{
		screen: b.screen,
		lines:  strings.Split(text, "\n"),
		style:  tc.StyleDefault.Foreground(color(fg)).Background(color(bg)),
	}
}

// Present implements render.Canvas.
func (b *Backend) Present() error {
	b.screen.Show()
	return nil
}

// Close restores the terminal and waits for the event loop to finish.
func (b *Backend) Close() error {
	b.screen.Fini()
	b.wg.Wait()
	return nil
}

type label struct {
	screen tc.Screen
	lines  []string
	style  tc.Style
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
		x := at.X
		for _, c := range line {
			l.screen.SetContent(x, at.Y+i, c, nil, l.style)
			x += runewidth.RuneWidth(c)
		}
	}
}

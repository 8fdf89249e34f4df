// Package rendertest provides an in-memory canvas for tests.
package rendertest

import (
	"image"
	"strings"
	"sync"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/render"
)

// Op kinds recorded by a Recorder.
const (
	OpFill    = "fill"
	OpRect    = "rect"
	OpLine    = "line"
	OpText    = "text"
	OpPresent = "present"
)

// Op is one recorded canvas call.
type Op struct {
	Kind  string
	Rect  image.Rectangle
	From  image.Point
	To    image.Point
	Color board.Color
	Bg    board.Color
	Text  string
}

// Recorder is a render.Canvas that remembers what was drawn. Text is one
// pixel per character and line.
type Recorder struct {
	sync.Mutex
	Width      int
	Height     int
	PresentErr error

	ops    []Op
	frames int
}

// New returns a recorder of the given pixel size.
func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) record(op Op) {
	r.Lock()
	defer r.Unlock()

	r.ops = append(r.ops, op)
}

// Size implements render.Canvas.
func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// Fill implements render.Canvas.
func (r *Recorder) Fill(c board.Color) {
	r.record(Op{Kind: OpFill, Color: c})
}

// Rect implements render.Canvas.
func (r *Recorder) Rect(rect image.Rectangle, c board.Color) {
	r.record(Op{Kind: OpRect, Rect: rect, Color: c})
}

// Line implements render.Canvas.
func (r *Recorder) Line(from, to image.Point, c board.Color) {
	r.record(Op{Kind: OpLine, From: from, To: to, Color: c})
}

// Text implements render.Canvas.
func (r *Recorder) Text(text string, fg, bg board.Color) render.Label {
	return &label{r: r, text: text, fg: fg, bg: bg}
}

// Present implements render.Canvas.
func (r *Recorder) Present() error {
	r.record(Op{Kind: OpPresent})
	r.Lock()
	r.frames++
	r.Unlock()
	return r.PresentErr
}

// Ops returns everything recorded since the last Reset.
func (r *Recorder) Ops() []Op {
	r.Lock()
	defer r.Unlock()

	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Kinds returns the kinds of the recorded ops, in order.
func (r *Recorder) Kinds() []string {
	kinds := []string{}
	for _, op := range r.Ops() {
		kinds = append(kinds, op.Kind)
	}
	return kinds
}

// Texts returns the text of every placed label.
func (r *Recorder) Texts() []string {
	texts := []string{}
	for _, op := range r.Ops() {
		if op.Kind == OpText {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// Frames is the number of Present calls.
func (r *Recorder) Frames() int {
	r.Lock()
	defer r.Unlock()

	return r.frames
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() {
	r.Lock()
	defer r.Unlock()

	r.ops = nil
}

type label struct {
	r    *Recorder
	text string
	fg   board.Color
	bg   board.Color
}

func (l *label) Size() image.Point {
	lines := strings.Split(l.text, "\n")
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	return image.Pt(w, len(lines))
}

func (l *label) Draw(at image.Point) {
	l.r.record(Op{
		Kind:  OpText,
		Rect:  image.Rectangle{Min: at, Max: at.Add(l.Size())},
		Color: l.fg,
		Bg:    l.bg,
		Text:  l.text,
	})
}

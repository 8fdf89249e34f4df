package render

import (
	"image"

	"github.com/battlesnakeio/arcade/board"
)

// Anchor says which point of a label a position refers to.
type Anchor int

// Label anchors.
const (
	TopLeft Anchor = iota
	TopRight
	Center
)

// Painter draws board entities as cells on a canvas.
type Painter struct {
	Canvas Canvas
	Cell   image.Point
	Grid   board.Grid
}

// NewPainter returns a painter for a grid of cells of the given pixel size.
func NewPainter(c Canvas, grid board.Grid, cellWidth, cellHeight int) *Painter {
	return &Painter{
		Canvas: c,
		Cell:   image.Pt(cellWidth, cellHeight),
		Grid:   grid,
	}
}

// Bounds is the window area covered by the grid.
func (p *Painter) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Grid.Cols*p.Cell.X, p.Grid.Rows*p.Cell.Y)
}

// CellRect is the pixel rectangle of a board cell.
func (p *Painter) CellRect(pt board.Point) image.Rectangle {
	min := image.Pt(pt.X*p.Cell.X, pt.Y*p.Cell.Y)
	return image.Rectangle{Min: min, Max: min.Add(p.Cell)}
}

// Background clears the window.
func (p *Painter) Background(c board.Color) {
	p.Canvas.Fill(c)
}

// Paint fills a single cell.
func (p *Painter) Paint(pt board.Point, c board.Color) {
	p.Canvas.Rect(p.CellRect(pt), c)
}

// Food draws the food cell.
func (p *Painter) Food(f *board.Food) {
	p.Paint(f.Position(), f.Color)
}

// Snake draws every segment in its own color.
func (p *Painter) Snake(s *board.Snake) {
	for _, seg := range s.Segments() {
		p.Paint(seg.Pos, seg.Color)
	}
}

// GridLines draws the top and left edge of every cell.
func (p *Painter) GridLines(c board.Color) {
	b := p.Bounds()
	for x := 0; x < b.Max.X; x += p.Cell.X {
		for y := 0; y < b.Max.Y; y += p.Cell.Y {
			p.Canvas.Line(image.Pt(x, y), image.Pt(x+p.Cell.X, y), c)
			p.Canvas.Line(image.Pt(x, y), image.Pt(x, y+p.Cell.Y), c)
		}
	}
}

// Text renders text and places it so that anchor sits on at. It returns the
// area the label covers.
func (p *Painter) Text(text string, fg, bg board.Color, anchor Anchor, at image.Point) image.Rectangle {
	l := p.Canvas.Text(text, fg, bg)
	size := l.Size()
	min := at
	switch anchor {
	case TopRight:
		min = image.Pt(at.X-size.X, at.Y)
	case Center:
		min = image.Pt(at.X-size.X/2, at.Y-size.Y/2)
	}
	l.Draw(min)
	return image.Rectangle{Min: min, Max: min.Add(size)}
}
